package bm25index

import (
	"context"
	"log/slog"
)

// SearchOptions configures Search.
type SearchOptions struct {
	// Limit caps the number of results returned. Must be >= 1.
	Limit int
	// Filter restricts matches to documents whose metadata satisfies it.
	Filter Filter
	// StopWords are excluded when tokenizing the query. This is
	// independent of the build-time stop-word set: a query may be
	// filtered differently than the corpus was indexed.
	StopWords map[string]struct{}
}

// DefaultSearchOptions returns the standard search configuration: the top
// 10 results, no filter.
func DefaultSearchOptions() SearchOptions {
	return SearchOptions{Limit: 10}
}

// Index is a built, queryable BM25 corpus. All queries against one Index
// are serialized through a single background worker goroutine so the
// underlying indexState never needs locking of its own. An Index must be
// disposed with Dispose when no longer needed.
type Index struct {
	state  *indexState
	worker *worker
	logger *slog.Logger
}

// Build tokenizes and indexes inputs, returning a ready-to-query Index.
// Build itself runs synchronously on the calling goroutine; the worker
// that later serializes Search calls is spawned lazily on first use.
func Build(inputs []Input, opts BuildOptions) (*Index, error) {
	logger := slog.Default()
	state, err := newIndexState(inputs, opts, logger)
	if err != nil {
		return nil, err
	}
	return &Index{
		state:  state,
		worker: newWorker(logger),
		logger: logger,
	}, nil
}

// Search tokenizes query with the same tokenizer used at build time,
// dropping opts.StopWords (not the build-time stop words), and returns up
// to opts.Limit ranked results.
func (idx *Index) Search(ctx context.Context, query string, opts SearchOptions) ([]Result, error) {
	if opts.Limit < 1 {
		return nil, ErrInvalidLimit
	}

	if err := idx.worker.ensureSpawned(ctx, idx.state); err != nil {
		return nil, err
	}

	allowed, err := idx.state.resolveFilter(opts.Filter)
	if err != nil {
		return nil, err
	}

	terms := Tokenize(query, opts.StopWords)
	result, err := idx.worker.submit(ctx, func(s *indexState) any {
		return s.score(terms, allowed, opts.Limit)
	})
	if err != nil {
		return nil, err
	}
	return result.([]Result), nil
}

// Dispose tears down the background worker. It is idempotent and safe to
// call even if the worker was never spawned or is mid-spawn.
func (idx *Index) Dispose() {
	idx.worker.dispose()
}
