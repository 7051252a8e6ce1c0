package ports

import "rosmsg-flatten/internal/types"

// MsgIndexPort is the read side of a built message index: the mapping
// from fully-qualified type names to schema source locations that the
// flattening core resolves against.
type MsgIndexPort interface {
	// Lookup returns the source location for a fully-qualified type
	// name ("package/msg/Type"), or false when the type is unknown.
	Lookup(typeName string) (string, bool)

	// Keys returns every known type name in lexicographic order.
	Keys() []string

	// Len reports the number of known types.
	Len() int
}

// SourceReaderPort reads the raw schema text behind an index entry.
type SourceReaderPort interface {
	// ReadSchema returns the full raw schema text at a source
	// location.  The flattening core trims it before use.
	ReadSchema(location string) (string, error)
}

// IndexBuilderPort walks a list of search-path roots and produces a
// populated message index.  Each root is expected to follow the ament
// install layout: <root>/share/<package>/msg/<Name>.msg.
type IndexBuilderPort interface {
	// Build scans the given roots and returns the resulting index.
	// Roots are processed in a deterministic order; a later entry for
	// an already-registered type name overwrites the earlier one.
	Build(roots []string) (*types.MsgIndex, error)

	// RegisterMsgDir registers every .msg file in a single package's
	// msg directory into an existing index.
	RegisterMsgDir(index *types.MsgIndex, pkg string, dir string) error
}

// IndexWriterPort persists a built index as a YAML manifest.
type IndexWriterPort interface {
	Write(path string, index *types.MsgIndex, searchPaths []string) error
}

// IndexLoaderPort loads a previously written YAML manifest back into an
// index.
type IndexLoaderPort interface {
	Load(path string) (*types.MsgIndex, error)
}
