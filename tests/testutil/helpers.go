// Package testutil provides shared test helpers used across unit and
// integration test packages.
package testutil

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

// WriteMsg writes one schema file into an ament-layout tree rooted at
// root (<root>/share/<pkg>/msg/<name>.msg) and returns its path.
func WriteMsg(t *testing.T, root string, pkg string, name string, body string) string {
	t.Helper()
	dir := filepath.Join(root, "share", pkg, "msg")
	require.NoError(t, os.MkdirAll(dir, 0755))
	path := filepath.Join(dir, name+".msg")
	require.NoError(t, os.WriteFile(path, []byte(body), 0644))
	return path
}

// TransformTree writes the geometry/transform message fixture set used
// by the flattening integration tests and returns the tree root.
func TransformTree(t *testing.T) string {
	t.Helper()
	root := t.TempDir()

	WriteMsg(t, root, "tf2_msgs", "TFMessage",
		"geometry_msgs/TransformStamped[] transforms\n")
	WriteMsg(t, root, "geometry_msgs", "TransformStamped",
		"# A transform with reference frame and timestamp.\n\nstd_msgs/Header header\nstring child_frame_id\nTransform transform\n")
	WriteMsg(t, root, "std_msgs", "Header",
		"builtin_interfaces/Time stamp\nstring frame_id\n")
	WriteMsg(t, root, "builtin_interfaces", "Time",
		"int32 sec\nuint32 nanosec\n")
	WriteMsg(t, root, "geometry_msgs", "Transform",
		"Vector3 translation\nQuaternion rotation\n")
	WriteMsg(t, root, "geometry_msgs", "Vector3",
		"float64 x\nfloat64 y\nfloat64 z\n")
	WriteMsg(t, root, "geometry_msgs", "Quaternion",
		"float64 x 0\nfloat64 y 0\nfloat64 z 0\nfloat64 w 1\n")

	return root
}
