package adapters

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/ZanzyTHEbar/errbuilder-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSourceFileReaderReadsRawText(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "Header.msg")
	require.NoError(t, os.WriteFile(path, []byte("\nstring frame_id\n\n"), 0644))

	reader := NewSourceFileReader()
	text, err := reader.ReadSchema(path)
	require.NoError(t, err)
	// Trimming is the flattening core's job, not the reader's.
	assert.Equal(t, "\nstring frame_id\n\n", text)
}

func TestSourceFileReaderMissingFile(t *testing.T) {
	reader := NewSourceFileReader()
	_, err := reader.ReadSchema(filepath.Join(t.TempDir(), "missing.msg"))
	require.Error(t, err)
	assert.Equal(t, errbuilder.CodeInternal, errbuilder.CodeOf(err))
}
