package types

import "sort"

// MsgIndex maps fully-qualified message type names ("package/msg/Type")
// to the filesystem path of their .msg schema source.
//
// The index is built once by an IndexBuilderPort implementation and is
// treated as read-only afterwards.  Insert uses last-write-wins per key,
// so builders that register entries in a deterministic order produce a
// deterministic index regardless of filesystem enumeration order.
type MsgIndex struct {
	entries map[string]string
}

// NewMsgIndex returns an empty index ready for registration.
func NewMsgIndex() *MsgIndex {
	return &MsgIndex{entries: make(map[string]string)}
}

// Insert registers a type name with its source path.  A later Insert for
// the same key overwrites the earlier one.
func (i *MsgIndex) Insert(typeName string, path string) {
	i.entries[typeName] = path
}

// Lookup returns the source path for a fully-qualified type name.
func (i *MsgIndex) Lookup(typeName string) (string, bool) {
	path, ok := i.entries[typeName]
	return path, ok
}

// Keys returns all registered type names in lexicographic order.  Bulk
// operations iterate this slice so their output order is reproducible.
func (i *MsgIndex) Keys() []string {
	keys := make([]string, 0, len(i.entries))
	for key := range i.entries {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	return keys
}

// Len reports the number of registered types.
func (i *MsgIndex) Len() int {
	return len(i.entries)
}

// IndexFile is the YAML manifest form of a built index.  It lets a
// search-path walk run once and the result be reloaded by later
// invocations without re-scanning the filesystem.
type IndexFile struct {
	// SchemaVersion identifies the manifest format version.
	SchemaVersion string `yaml:"schema_version"`

	// SearchPaths records the roots the index was built from, in the
	// order they were processed.  Informational only.
	SearchPaths []string `yaml:"search_paths,omitempty"`

	// Messages maps fully-qualified type names to schema source paths.
	Messages map[string]string `yaml:"messages"`
}
