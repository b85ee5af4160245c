package lazyseq

import "errors"

var (
	// ErrCanceled is raised inside a producer whose generator was
	// closed while it was suspended, and when a yield is attempted on a
	// completed or canceled generator.
	ErrCanceled = errors.New("lazyseq: generator canceled")

	// ErrNoValue is raised when a value is read from a generator that
	// has not produced one: before the first Advance, after
	// exhaustion, or from a moved-from generator.
	ErrNoValue = errors.New("lazyseq: no current value")

	// ErrNotRoot is raised when a Recursive is driven directly while it
	// is delegated into another generator's tree.
	ErrNotRoot = errors.New("lazyseq: generator is not a root")

	// ErrNotRunning is raised when a yield is attempted from outside the
	// producer that owns it.
	ErrNotRunning = errors.New("lazyseq: yield outside of running producer")

	// ErrRunning is raised when a generator is resumed or closed from
	// inside its own producer.
	ErrRunning = errors.New("lazyseq: generator is already running")
)
