package tmpl

import (
	"context"
	"log/slog"
	"strconv"
	"sync"

	"github.com/zeebo/xxh3"
)

// globalCache stores parsed templates keyed by source hash.
// Parsing and compiling a template is pure, so identical sources share
// one cached result across concurrent renders.
//
//nolint:gochecknoglobals
var globalCache sync.Map

// state holds the parse-once result for a cached source.
type state struct {
	once sync.Once
	tmpl *Template
	err  error
}

// parseCached parses a template with caching. Hashing uses xxh3 for
// performance; only option-free parses are cached, since options change
// the compiled result.
func parseCached(ctx context.Context, source string) (*Template, error) {
	key := strconv.FormatUint(xxh3.Hash([]byte(source)), 36)

	entry := new(state)

	value, hit := globalCache.LoadOrStore(key, entry)
	if cached, ok := value.(*state); ok {
		entry = cached
	}

	entry.once.Do(func() {
		entry.tmpl, entry.err = parse(ctx, source)
	})

	if entry.err != nil {
		return nil, entry.err
	}

	entry.tmpl.logger.TraceContext(ctx, "template cache",
		slog.String("cache_key", key),
		slog.Bool("cache_hit", hit))

	return entry.tmpl, nil
}

// ClearCache removes all cached templates.
// This is primarily useful for testing or when memory needs reclaiming.
func ClearCache() {
	globalCache = sync.Map{}
}
