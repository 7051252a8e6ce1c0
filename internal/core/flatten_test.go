package core

import (
	"errors"
	"sort"
	"strings"
	"testing"

	"github.com/ZanzyTHEbar/errbuilder-go"
	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"
)

// testMsgIndex keys locations by the type name itself so the fake
// reader can serve schema text per type.
type testMsgIndex struct {
	defs map[string]string
}

func (t testMsgIndex) Lookup(typeName string) (string, bool) {
	_, ok := t.defs[typeName]
	return typeName, ok
}

func (t testMsgIndex) Keys() []string {
	keys := make([]string, 0, len(t.defs))
	for key := range t.defs {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	return keys
}

func (t testMsgIndex) Len() int {
	return len(t.defs)
}

type testReader struct {
	defs    map[string]string
	failing map[string]error
}

func (t testReader) ReadSchema(location string) (string, error) {
	if err, ok := t.failing[location]; ok {
		return "", err
	}
	return t.defs[location], nil
}

func newTestFlattener(defs map[string]string) Flattener {
	return NewFlattener(testMsgIndex{defs: defs}, testReader{defs: defs})
}

func separator(displayName string) string {
	return strings.Repeat("=", 80) + "\nMSG: " + displayName + "\n"
}

func TestFlattenEndToEnd(t *testing.T) {
	defs := map[string]string{
		"tf2_msgs/msg/TFMessage":             "geometry_msgs/TransformStamped[] transforms",
		"geometry_msgs/msg/TransformStamped": "std_msgs/Header header\nstring child_frame_id\nTransform transform",
		"std_msgs/msg/Header":                "builtin_interfaces/Time stamp\nstring frame_id",
		"builtin_interfaces/msg/Time":        "int32 sec\nuint32 nanosec",
		"geometry_msgs/msg/Transform":        "Vector3 translation\nQuaternion rotation",
		"geometry_msgs/msg/Vector3":          "float64 x\nfloat64 y\nfloat64 z",
		"geometry_msgs/msg/Quaternion":       "float64 x 0\nfloat64 y 0\nfloat64 z 0\nfloat64 w 1",
	}
	flattener := newTestFlattener(defs)

	got, err := flattener.Flatten(t.Context(), "tf2_msgs/msg/TFMessage")
	require.NoError(t, err)

	want := strings.Join([]string{
		defs["tf2_msgs/msg/TFMessage"],
		separator("geometry_msgs/TransformStamped") + defs["geometry_msgs/msg/TransformStamped"],
		separator("std_msgs/Header") + defs["std_msgs/msg/Header"],
		separator("builtin_interfaces/Time") + defs["builtin_interfaces/msg/Time"],
		separator("geometry_msgs/Transform") + defs["geometry_msgs/msg/Transform"],
		separator("geometry_msgs/Vector3") + defs["geometry_msgs/msg/Vector3"],
		separator("geometry_msgs/Quaternion") + defs["geometry_msgs/msg/Quaternion"],
	}, "\n\n")
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("unexpected flattened output (-want +got):\n%s", diff)
	}
}

func TestFlattenCycleTerminates(t *testing.T) {
	defs := map[string]string{
		"pkg/msg/A": "pkg/B b",
		"pkg/msg/B": "pkg/A a",
	}
	flattener := newTestFlattener(defs)

	got, err := flattener.Flatten(t.Context(), "pkg/msg/A")
	require.NoError(t, err)

	// Root A is the bare first block; B gets the only MSG header and
	// its back-reference to A is not followed again.
	require.True(t, strings.HasPrefix(got, "pkg/B b"))
	require.Equal(t, 1, strings.Count(got, "MSG: pkg/B"))
	require.NotContains(t, got, "MSG: pkg/A")
}

func TestFlattenSharedDependencyEmittedOnce(t *testing.T) {
	defs := map[string]string{
		"pkg/msg/Root":        "std_msgs/Header first\nstd_msgs/Header second\npkg/Child child",
		"std_msgs/msg/Header": "uint32 seq",
		"pkg/msg/Child":       "std_msgs/Header header",
	}
	flattener := newTestFlattener(defs)

	got, err := flattener.Flatten(t.Context(), "pkg/msg/Root")
	require.NoError(t, err)

	require.Equal(t, 1, strings.Count(got, "MSG: std_msgs/Header"))
	// First discovery wins: Header precedes Child.
	require.Less(t, strings.Index(got, "MSG: std_msgs/Header"), strings.Index(got, "MSG: pkg/Child"))
}

func TestFlattenSkipsMalformedLines(t *testing.T) {
	defs := map[string]string{
		"pkg/msg/Root": "# comment line\n\nlonetoken\na/b/c/D field\nint32 value",
	}
	flattener := newTestFlattener(defs)

	got, err := flattener.Flatten(t.Context(), "pkg/msg/Root")
	require.NoError(t, err)
	require.Equal(t, defs["pkg/msg/Root"], got)
}

func TestResolveUnknownType(t *testing.T) {
	flattener := newTestFlattener(map[string]string{})

	_, err := flattener.Resolve(t.Context(), "nonexistent/msg/Foo")
	require.Error(t, err)
	require.Equal(t, errbuilder.CodeNotFound, errbuilder.CodeOf(err))

	var builder *errbuilder.ErrBuilder
	require.True(t, errors.As(err, &builder))
	require.Contains(t, builder.Msg, "nonexistent/msg/Foo")
}

func TestFlattenMissingDependencyFailsWhole(t *testing.T) {
	defs := map[string]string{
		"pkg/msg/Root": "pkg/Missing field",
	}
	flattener := newTestFlattener(defs)

	out, err := flattener.Flatten(t.Context(), "pkg/msg/Root")
	require.Error(t, err)
	require.Equal(t, errbuilder.CodeNotFound, errbuilder.CodeOf(err))
	require.Empty(t, out)
}

func TestFlattenPropagatesReadError(t *testing.T) {
	defs := map[string]string{
		"pkg/msg/Root":  "pkg/Child child",
		"pkg/msg/Child": "int32 value",
	}
	readErr := errbuilder.New().
		WithCode(errbuilder.CodeInternal).
		WithMsg("failed to read schema source: pkg/msg/Child")
	flattener := NewFlattener(
		testMsgIndex{defs: defs},
		testReader{defs: defs, failing: map[string]error{"pkg/msg/Child": readErr}},
	)

	out, err := flattener.Flatten(t.Context(), "pkg/msg/Root")
	require.Error(t, err)
	require.Equal(t, errbuilder.CodeInternal, errbuilder.CodeOf(err))
	require.Empty(t, out)
}

func TestResolveAllLexicographicOrder(t *testing.T) {
	defs := map[string]string{
		"b_pkg/msg/B": "int32 b",
		"a_pkg/msg/A": "int32 a",
	}
	flattener := newTestFlattener(defs)

	out, err := flattener.ResolveAll(t.Context())
	require.NoError(t, err)
	if diff := cmp.Diff(defs, out); diff != "" {
		t.Fatalf("unexpected resolve-all output (-want +got):\n%s", diff)
	}
}

func TestFlattenAllFailsFast(t *testing.T) {
	defs := map[string]string{
		"a_pkg/msg/Broken": "a_pkg/Missing field",
		"b_pkg/msg/Fine":   "int32 value",
	}
	flattener := newTestFlattener(defs)

	out, err := flattener.FlattenAll(t.Context())
	require.Error(t, err)
	require.Equal(t, errbuilder.CodeNotFound, errbuilder.CodeOf(err))
	require.Nil(t, out)
}

func TestFlattenTrimsResolvedText(t *testing.T) {
	defs := map[string]string{
		"pkg/msg/Root":  "pkg/Child child",
		"pkg/msg/Child": "\n\nint32 value\n\n",
	}
	flattener := newTestFlattener(defs)

	got, err := flattener.Flatten(t.Context(), "pkg/msg/Root")
	require.NoError(t, err)
	require.True(t, strings.HasSuffix(got, "MSG: pkg/Child\nint32 value"))
}
