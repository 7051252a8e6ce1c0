package adapters

import (
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/ZanzyTHEbar/errbuilder-go"
	"github.com/rs/zerolog/log"

	"rosmsg-flatten/internal/ports"
	"rosmsg-flatten/internal/types"
)

// AmentIndexBuilder builds a message index by walking ament install
// prefixes: each immediate subdirectory of <root>/share/ is a package,
// and every *.msg file in that package's msg/ subdirectory becomes an
// entry keyed "<package>/msg/<file-stem>".
//
// Roots are sorted before the walk and packages are registered in
// directory-name order, so a type defined under multiple roots always
// resolves to the lexicographically last root's copy (last-wins over a
// deterministic order).
type AmentIndexBuilder struct{}

func NewAmentIndexBuilder() AmentIndexBuilder {
	return AmentIndexBuilder{}
}

func (b AmentIndexBuilder) Build(roots []string) (*types.MsgIndex, error) {
	index := types.NewMsgIndex()

	sorted := append([]string(nil), roots...)
	sort.Strings(sorted)

	for _, root := range sorted {
		shareDir := filepath.Join(root, "share")
		info, err := os.Stat(shareDir)
		if err != nil || !info.IsDir() {
			// Prefixes without a share layout are not an error.
			continue
		}

		entries, err := os.ReadDir(shareDir)
		if err != nil {
			return nil, errbuilder.New().
				WithCode(errbuilder.CodeInternal).
				WithMsg("failed to scan share directory: " + shareDir).
				WithCause(err)
		}

		for _, entry := range entries {
			if !entry.IsDir() {
				continue
			}
			msgDir := filepath.Join(shareDir, entry.Name(), "msg")
			msgInfo, err := os.Stat(msgDir)
			if err != nil || !msgInfo.IsDir() {
				continue
			}
			if err := b.RegisterMsgDir(index, entry.Name(), msgDir); err != nil {
				return nil, err
			}
		}

		log.Debug().
			Str("root", root).
			Int("total", index.Len()).
			Msg("search path registered")
	}

	return index, nil
}

// RegisterMsgDir registers every .msg file in one package's msg
// directory.  A later registration for an already-known type name
// overwrites the earlier one.
func (b AmentIndexBuilder) RegisterMsgDir(index *types.MsgIndex, pkg string, dir string) error {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return errbuilder.New().
			WithCode(errbuilder.CodeInternal).
			WithMsg("failed to scan msg directory: " + dir).
			WithCause(err)
	}

	for _, entry := range entries {
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), ".msg") {
			continue
		}
		stem := strings.TrimSuffix(entry.Name(), ".msg")
		index.Insert(pkg+"/msg/"+stem, filepath.Join(dir, entry.Name()))
	}

	return nil
}

var _ ports.IndexBuilderPort = AmentIndexBuilder{}
