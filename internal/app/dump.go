package app

import (
	"context"
	"strings"

	assert "github.com/ZanzyTHEbar/assert-lib"

	"rosmsg-flatten/internal/adapters"
	"rosmsg-flatten/internal/core"
)

// dumped message files carry the flattened closure; raw dumps keep the
// plain .msg suffix.
const (
	rawDumpSuffix  = ".msg"
	flatDumpSuffix = ".flat.msg"
)

func (s Service) List(ctx context.Context, req ListRequest) (ListResult, error) {
	index, err := s.loadIndex(req.SearchPaths, req.IndexFile)
	if err != nil {
		return ListResult{}, err
	}
	return ListResult{Types: index.Keys()}, nil
}

func (s Service) Dump(ctx context.Context, req DumpRequest) (DumpResult, error) {
	assert.NotEmpty(ctx, req.OutputDir, "output directory must be set")

	index, err := s.loadIndex(req.SearchPaths, req.IndexFile)
	if err != nil {
		return DumpResult{}, err
	}

	flattener := core.NewFlattener(index, s.Reader)

	var messages map[string]string
	if req.Raw {
		messages, err = flattener.ResolveAll(ctx)
	} else {
		messages, err = flattener.FlattenAll(ctx)
	}
	if err != nil {
		return DumpResult{}, err
	}

	output := adapters.NewOutputFileAdapter(req.OutputDir)
	suffix := flatDumpSuffix
	if req.Raw {
		suffix = rawDumpSuffix
	}
	if _, err := output.WriteMessages(messages, suffix); err != nil {
		return DumpResult{}, err
	}
	if manifest := strings.TrimSpace(req.Manifest); manifest != "" {
		if err := output.WriteManifest(manifest, messages); err != nil {
			return DumpResult{}, err
		}
	}

	return DumpResult{
		Count:     len(messages),
		OutputDir: req.OutputDir,
	}, nil
}
