package adapters

import (
	lru "github.com/hashicorp/golang-lru/v2"

	"rosmsg-flatten/internal/ports"
)

// defaultSourceCacheSize bounds the schema-text cache.  A full ROS 2
// desktop install ships well under a thousand message definitions.
const defaultSourceCacheSize = 1024

// CachedSourceReader wraps another SourceReaderPort with an LRU cache
// keyed by source location.  Bulk operations like FlattenAll re-resolve
// shared types (Header, Time, the geometry primitives) for almost every
// root, so caching the raw text avoids rereading the same files.
//
// Only successful reads are cached; errors always hit the inner reader
// again.
type CachedSourceReader struct {
	inner ports.SourceReaderPort
	cache *lru.Cache[string, string]
}

func NewCachedSourceReader(inner ports.SourceReaderPort, size int) (*CachedSourceReader, error) {
	if size <= 0 {
		size = defaultSourceCacheSize
	}
	cache, err := lru.New[string, string](size)
	if err != nil {
		return nil, err
	}
	return &CachedSourceReader{
		inner: inner,
		cache: cache,
	}, nil
}

func (r *CachedSourceReader) ReadSchema(location string) (string, error) {
	if text, ok := r.cache.Get(location); ok {
		return text, nil
	}
	text, err := r.inner.ReadSchema(location)
	if err != nil {
		return "", err
	}
	r.cache.Add(location, text)
	return text, nil
}

var _ ports.SourceReaderPort = (*CachedSourceReader)(nil)
