package app

import (
	"context"
	"os"
	"strings"

	"github.com/ZanzyTHEbar/errbuilder-go"
	"github.com/rs/zerolog/log"

	"rosmsg-flatten/internal/core"
	"rosmsg-flatten/internal/shared"
	"rosmsg-flatten/internal/types"
)

const amentPrefixPath = "AMENT_PREFIX_PATH"

func (s Service) Flatten(ctx context.Context, req FlattenRequest) (FlattenResult, error) {
	typeName := strings.TrimSpace(req.Type)
	if typeName == "" {
		return FlattenResult{}, errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg("message type is required")
	}

	index, err := s.loadIndex(req.SearchPaths, req.IndexFile)
	if err != nil {
		return FlattenResult{}, err
	}

	flattener := core.NewFlattener(index, s.Reader)
	flattened, err := flattener.Flatten(ctx, typeName)
	if err != nil {
		return FlattenResult{}, err
	}

	return FlattenResult{
		Type:      typeName,
		Flattened: flattened,
	}, nil
}

func (s Service) Resolve(ctx context.Context, req ResolveRequest) (ResolveResult, error) {
	typeName := strings.TrimSpace(req.Type)
	if typeName == "" {
		return ResolveResult{}, errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg("message type is required")
	}

	index, err := s.loadIndex(req.SearchPaths, req.IndexFile)
	if err != nil {
		return ResolveResult{}, err
	}

	flattener := core.NewFlattener(index, s.Reader)
	schema, err := flattener.Resolve(ctx, typeName)
	if err != nil {
		return ResolveResult{}, err
	}

	return ResolveResult{
		Type:   typeName,
		Schema: schema,
	}, nil
}

// loadIndex produces the message index for one operation: either by
// loading a previously written manifest, or by walking the given search
// paths.  With neither given, the AMENT_PREFIX_PATH environment
// variable supplies the search paths.
func (s Service) loadIndex(searchPaths []string, indexFile string) (*types.MsgIndex, error) {
	if indexFile = strings.TrimSpace(indexFile); indexFile != "" {
		return s.IndexLoader.Load(indexFile)
	}

	if len(searchPaths) == 0 {
		env, ok := os.LookupEnv(amentPrefixPath)
		if !ok {
			return nil, errbuilder.New().
				WithCode(errbuilder.CodeInvalidArgument).
				WithMsg(amentPrefixPath + " is not set and no search path was given")
		}
		searchPaths = shared.SplitSearchPath(env)
	}

	index, err := s.IndexBuilder.Build(searchPaths)
	if err != nil {
		return nil, err
	}
	if index.Len() == 0 {
		return nil, errbuilder.New().
			WithCode(errbuilder.CodeNotFound).
			WithMsg("no .msg files found under the search paths")
	}

	log.Debug().
		Int("messages", index.Len()).
		Strs("search_paths", searchPaths).
		Msg("message index ready")
	return index, nil
}
