package adapters

import (
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/ZanzyTHEbar/errbuilder-go"
	"gopkg.in/yaml.v3"

	"rosmsg-flatten/internal/ports"
)

// OutputFileAdapter writes dump results under a single output
// directory.  Per-message files mirror the fully-qualified name layout:
// "std_msgs/msg/Header" lands in <dir>/std_msgs/msg/Header<suffix>.
type OutputFileAdapter struct {
	Dir string
}

func NewOutputFileAdapter(dir string) OutputFileAdapter {
	return OutputFileAdapter{Dir: dir}
}

func (a OutputFileAdapter) WriteMessages(messages map[string]string, suffix string) ([]string, error) {
	if a.Dir == "" {
		return nil, errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg("output directory is empty")
	}

	keys := make([]string, 0, len(messages))
	for key := range messages {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	var written []string
	for _, key := range keys {
		path := filepath.Join(a.Dir, filepath.FromSlash(key)+suffix)
		if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
			return nil, errbuilder.New().
				WithCode(errbuilder.CodeInternal).
				WithMsg("failed to create output directory: " + filepath.Dir(path)).
				WithCause(err)
		}
		text := messages[key]
		if !strings.HasSuffix(text, "\n") {
			text += "\n"
		}
		if err := os.WriteFile(path, []byte(text), 0644); err != nil {
			return nil, errbuilder.New().
				WithCode(errbuilder.CodeInternal).
				WithMsg("failed to write output file: " + path).
				WithCause(err)
		}
		written = append(written, path)
	}

	return written, nil
}

func (a OutputFileAdapter) WriteManifest(filename string, messages map[string]string) error {
	if a.Dir == "" {
		return errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg("output directory is empty")
	}
	if err := os.MkdirAll(a.Dir, 0755); err != nil {
		return errbuilder.New().
			WithCode(errbuilder.CodeInternal).
			WithMsg("failed to create output directory").
			WithCause(err)
	}

	data, err := yaml.Marshal(messages)
	if err != nil {
		return errbuilder.New().
			WithCode(errbuilder.CodeInternal).
			WithMsg("failed to encode dump manifest").
			WithCause(err)
	}
	path := filepath.Join(a.Dir, filename)
	if err := os.WriteFile(path, data, 0644); err != nil {
		return errbuilder.New().
			WithCode(errbuilder.CodeInternal).
			WithMsg("failed to write dump manifest: " + path).
			WithCause(err)
	}
	return nil
}

var _ ports.OutputPort = OutputFileAdapter{}
