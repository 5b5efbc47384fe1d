// Package bm25index is an in-memory full-text search engine built around
// the Okapi BM25 ranking function.
//
// A fixed corpus of documents is tokenized and inverted once at Build time
// into a packed, gap-encoded postings array with a per-term dictionary
// carrying precomputed IDF. Queries are served by a single background
// worker per index, so callers never block each other's scheduling loop
// while the index itself stays a read-only, lock-free structure shared
// across every query.
//
// The index is immutable once built: there is no incremental add or
// remove. Construct a new Index (or Partitioned) when the corpus changes.
package bm25index

// BM25 tuning constants. These are compile-time, matching the classic
// Okapi BM25 defaults used throughout the literature.
const (
	k1 = 1.2
	b  = 0.75
)
