package adapters

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"rosmsg-flatten/internal/types"
)

func writeMsg(t *testing.T, root string, pkg string, name string, body string) string {
	t.Helper()
	dir := filepath.Join(root, "share", pkg, "msg")
	require.NoError(t, os.MkdirAll(dir, 0755))
	path := filepath.Join(dir, name+".msg")
	require.NoError(t, os.WriteFile(path, []byte(body), 0644))
	return path
}

func TestAmentIndexBuild(t *testing.T) {
	root := t.TempDir()
	headerPath := writeMsg(t, root, "std_msgs", "Header", "builtin_interfaces/Time stamp\nstring frame_id\n")
	writeMsg(t, root, "geometry_msgs", "Vector3", "float64 x\nfloat64 y\nfloat64 z\n")

	// Non-msg files and packages without a msg dir are ignored.
	require.NoError(t, os.WriteFile(filepath.Join(root, "share", "std_msgs", "msg", "notes.txt"), []byte("x"), 0644))
	require.NoError(t, os.MkdirAll(filepath.Join(root, "share", "plain_pkg"), 0755))

	builder := NewAmentIndexBuilder()
	index, err := builder.Build([]string{root})
	require.NoError(t, err)

	assert.Equal(t, 2, index.Len())
	assert.Equal(t, []string{"geometry_msgs/msg/Vector3", "std_msgs/msg/Header"}, index.Keys())

	path, ok := index.Lookup("std_msgs/msg/Header")
	require.True(t, ok)
	assert.Equal(t, headerPath, path)

	_, ok = index.Lookup("std_msgs/msg/notes")
	assert.False(t, ok)
}

func TestAmentIndexSkipsRootsWithoutShare(t *testing.T) {
	root := t.TempDir()
	empty := t.TempDir()
	writeMsg(t, root, "std_msgs", "Header", "string frame_id\n")

	builder := NewAmentIndexBuilder()
	index, err := builder.Build([]string{empty, root, filepath.Join(empty, "missing")})
	require.NoError(t, err)
	assert.Equal(t, 1, index.Len())
}

func TestAmentIndexLaterRootWins(t *testing.T) {
	base := t.TempDir()
	rootA := filepath.Join(base, "a-root")
	rootB := filepath.Join(base, "b-root")
	writeMsg(t, rootA, "shared_pkg", "State", "int32 a\n")
	winning := writeMsg(t, rootB, "shared_pkg", "State", "int32 b\n")

	builder := NewAmentIndexBuilder()

	// Roots are sorted before the walk, so the argument order does not
	// matter: the lexicographically last root's entry wins.
	for _, roots := range [][]string{{rootA, rootB}, {rootB, rootA}} {
		index, err := builder.Build(roots)
		require.NoError(t, err)
		path, ok := index.Lookup("shared_pkg/msg/State")
		require.True(t, ok)
		assert.Equal(t, winning, path)
	}
}

func TestRegisterMsgDir(t *testing.T) {
	root := t.TempDir()
	path := writeMsg(t, root, "custom_pkg", "Command", "uint8 mode\n")

	index := types.NewMsgIndex()
	builder := NewAmentIndexBuilder()
	require.NoError(t, builder.RegisterMsgDir(index, "custom_pkg", filepath.Dir(path)))

	got, ok := index.Lookup("custom_pkg/msg/Command")
	require.True(t, ok)
	assert.Equal(t, path, got)

	err := builder.RegisterMsgDir(index, "custom_pkg", filepath.Join(root, "nope"))
	assert.Error(t, err)
}
