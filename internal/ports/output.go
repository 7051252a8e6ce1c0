package ports

// OutputPort writes resolved or flattened schema text for downstream
// consumers.
type OutputPort interface {
	// WriteMessages writes one file per fully-qualified type name under
	// the adapter's output directory, mirroring the package/msg/Name
	// layout, with the given filename suffix.  It returns the written
	// paths in lexicographic key order.
	WriteMessages(messages map[string]string, suffix string) ([]string, error)

	// WriteManifest writes the whole mapping as a single YAML document.
	WriteManifest(filename string, messages map[string]string) error
}
