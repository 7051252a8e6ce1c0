package adapters

import (
	"os"

	"github.com/ZanzyTHEbar/errbuilder-go"

	"rosmsg-flatten/internal/ports"
)

// SourceFileReader reads schema text straight from the filesystem.
type SourceFileReader struct{}

func NewSourceFileReader() SourceFileReader {
	return SourceFileReader{}
}

func (r SourceFileReader) ReadSchema(location string) (string, error) {
	data, err := os.ReadFile(location)
	if err != nil {
		return "", errbuilder.New().
			WithCode(errbuilder.CodeInternal).
			WithMsg("failed to read schema source: " + location).
			WithCause(err)
	}
	return string(data), nil
}

var _ ports.SourceReaderPort = SourceFileReader{}
