package app

import (
	"rosmsg-flatten/internal/adapters"
	"rosmsg-flatten/internal/ports"
)

type Service struct {
	IndexBuilder ports.IndexBuilderPort
	IndexWriter  ports.IndexWriterPort
	IndexLoader  ports.IndexLoaderPort
	Reader       ports.SourceReaderPort
}

func NewService() Service {
	indexFile := adapters.NewIndexFileAdapter()

	var reader ports.SourceReaderPort = adapters.NewSourceFileReader()
	if cached, err := adapters.NewCachedSourceReader(reader, 0); err == nil {
		reader = cached
	}

	return Service{
		IndexBuilder: adapters.NewAmentIndexBuilder(),
		IndexWriter:  indexFile,
		IndexLoader:  indexFile,
		Reader:       reader,
	}
}
