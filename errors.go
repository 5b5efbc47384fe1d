package bm25index

import "errors"

// Sentinel errors. Compare with errors.Is; additional context is wrapped
// with fmt.Errorf("...: %w", ...) around these where the failure needs to
// name specifics (e.g. which fields a filter got wrong).
var (
	// ErrInvalidCorpus is returned by Build when the input document
	// sequence is empty.
	ErrInvalidCorpus = errors.New("bm25index: corpus is empty")

	// ErrInvalidDocument is returned by Build when an input element is
	// neither a TextInput nor a DocInput.
	ErrInvalidDocument = errors.New("bm25index: document is neither text nor a document record")

	// ErrInvalidLimit is returned by Search when limit < 1.
	ErrInvalidLimit = errors.New("bm25index: limit must be >= 1")

	// ErrUnknownField is returned when a filter references a field that
	// was not declared in BuildOptions.IndexFields.
	ErrUnknownField = errors.New("bm25index: filter references a field that is not indexed")

	// ErrDisposed is returned by any operation attempted after Dispose.
	ErrDisposed = errors.New("bm25index: index has been disposed")

	// ErrCancelled is returned to a waiter whose operation raced against
	// Dispose and lost.
	ErrCancelled = errors.New("bm25index: operation cancelled by dispose")

	// ErrWorkerTimeout is returned when worker spawn, handshake, or a
	// reply exceeds its time budget.
	ErrWorkerTimeout = errors.New("bm25index: worker did not respond within its time budget")

	// ErrInternal wraps a scoring error that crossed the worker boundary.
	ErrInternal = errors.New("bm25index: internal scoring error")
)
