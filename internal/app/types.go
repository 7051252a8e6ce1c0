package app

type FlattenRequest struct {
	Type        string
	SearchPaths []string
	IndexFile   string
}

type FlattenResult struct {
	Type      string
	Flattened string
}

type ResolveRequest struct {
	Type        string
	SearchPaths []string
	IndexFile   string
}

type ResolveResult struct {
	Type   string
	Schema string
}

type ListRequest struct {
	SearchPaths []string
	IndexFile   string
}

type ListResult struct {
	Types []string
}

type DumpRequest struct {
	SearchPaths []string
	IndexFile   string
	OutputDir   string
	Manifest    string
	Raw         bool
}

type DumpResult struct {
	Count     int
	OutputDir string
}

type BuildIndexRequest struct {
	SearchPaths []string
	Output      string
}

type BuildIndexResult struct {
	Count  int
	Output string
}
