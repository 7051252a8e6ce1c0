package adapters

import (
	"os"

	"github.com/ZanzyTHEbar/errbuilder-go"
	"gopkg.in/yaml.v3"

	"rosmsg-flatten/internal/ports"
	"rosmsg-flatten/internal/types"
)

const indexSchemaVersion = "v1"

// IndexFileAdapter persists a built message index as a YAML manifest
// and loads it back, so the search-path walk can run once and its
// result be reused by later invocations.
type IndexFileAdapter struct{}

func NewIndexFileAdapter() IndexFileAdapter {
	return IndexFileAdapter{}
}

func (a IndexFileAdapter) Write(path string, index *types.MsgIndex, searchPaths []string) error {
	messages := make(map[string]string, index.Len())
	for _, key := range index.Keys() {
		location, _ := index.Lookup(key)
		messages[key] = location
	}

	file := types.IndexFile{
		SchemaVersion: indexSchemaVersion,
		SearchPaths:   searchPaths,
		Messages:      messages,
	}

	data, err := yaml.Marshal(file)
	if err != nil {
		return errbuilder.New().
			WithCode(errbuilder.CodeInternal).
			WithMsg("failed to encode index manifest").
			WithCause(err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return errbuilder.New().
			WithCode(errbuilder.CodeInternal).
			WithMsg("failed to write index manifest: " + path).
			WithCause(err)
	}
	return nil
}

func (a IndexFileAdapter) Load(path string) (*types.MsgIndex, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errbuilder.New().
			WithCode(errbuilder.CodeNotFound).
			WithMsg("failed to read index manifest: " + path).
			WithCause(err)
	}

	var file types.IndexFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg("failed to parse index manifest: " + path).
			WithCause(err)
	}
	if file.SchemaVersion == "" {
		return nil, errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg("index manifest missing schema_version: " + path)
	}

	index := types.NewMsgIndex()
	for key, location := range file.Messages {
		index.Insert(key, location)
	}
	return index, nil
}

var (
	_ ports.IndexWriterPort = IndexFileAdapter{}
	_ ports.IndexLoaderPort = IndexFileAdapter{}
)
