// Package lazyseq provides cooperative, single-threaded lazy sequences
// built on suspendable computations. A producer is an ordinary Go
// function that yields values; each call to Advance resumes it until
// the next yield or until it returns.
//
// Three generator kinds are provided, in increasing order of power:
//
//   - Generator produces one value per Advance and exposes it through
//     Current.
//   - Range wraps the same single-frame model in a Begin/End iterator
//     pair and in an iter.Seq, so it composes with range loops.
//   - Recursive may yield either a value or another Recursive. The
//     nested generator's output is spliced into the parent's sequence
//     in place. A root keeps a direct link to the frame currently
//     producing values, so one Advance resumes exactly that frame no
//     matter how deep it sits.
//
// Every generator starts suspended: constructing one runs no user code.
// Generators are not safe for concurrent use. A generator and every
// generator delegated to it must be driven from a single call path.
//
// A panic inside a producer is recovered in the coroutine, wrapped with
// the producer's stack, and re-raised in the goroutine that resumed it.
// Unless the caller recovers it, the process terminates. Misuse, such
// as reading a value after the generator is exhausted, panics with an
// error matching one of the package's sentinel errors.
package lazyseq
