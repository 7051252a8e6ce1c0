package app

import (
	"context"
	"strings"

	"github.com/ZanzyTHEbar/errbuilder-go"
)

func (s Service) BuildIndex(ctx context.Context, req BuildIndexRequest) (BuildIndexResult, error) {
	output := strings.TrimSpace(req.Output)
	if output == "" {
		return BuildIndexResult{}, errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg("index output path is required")
	}

	index, err := s.loadIndex(req.SearchPaths, "")
	if err != nil {
		return BuildIndexResult{}, err
	}
	if err := s.IndexWriter.Write(output, index, req.SearchPaths); err != nil {
		return BuildIndexResult{}, err
	}

	return BuildIndexResult{
		Count:  index.Len(),
		Output: output,
	}, nil
}
