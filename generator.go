package lazyseq

import "fmt"

// Generator is the simplest lazy sequence: one producer, one value per
// Advance. The zero value and a nil *Generator are empty.
type Generator[T any] struct {
	f *frame[T]
}

// New returns a generator driven by body. The body does not run until
// the first Advance. Each call to yield publishes a value and suspends
// the body until the next Advance.
func New[T any](body func(yield func(T))) *Generator[T] {
	return &Generator[T]{f: newFrame(func(f *frame[T]) { body(f.yield) })}
}

// Advance resumes the producer once. It returns false once the producer
// has returned, and keeps returning false without resuming anything
// afterwards. After a fault, Advance raises the fault again.
func (g *Generator[T]) Advance() bool {
	if g == nil || g.f == nil {
		return false
	}
	return g.f.resume()
}

// Current returns the value published by the last successful Advance.
// It panics with ErrNoValue if there is none.
func (g *Generator[T]) Current() T {
	if g == nil || g.f == nil {
		panic(fmt.Errorf("%w: empty generator", ErrNoValue))
	}
	return g.f.current()
}

// Done reports whether the generator is exhausted, closed or empty.
func (g *Generator[T]) Done() bool {
	return g == nil || g.f == nil || g.f.done()
}

// State returns the state of the producer. Empty generators report
// StateCompleted.
func (g *Generator[T]) State() State {
	if g == nil || g.f == nil {
		return StateCompleted
	}
	return g.f.task.state
}

// Resumes returns how many times the producer has been resumed.
func (g *Generator[T]) Resumes() uint64 {
	if g == nil || g.f == nil {
		return 0
	}
	return g.f.resumes
}

// Move transfers the producer to a new generator and leaves g empty.
func (g *Generator[T]) Move() *Generator[T] {
	if g == nil {
		return &Generator[T]{}
	}
	m := &Generator[T]{f: g.f}
	g.f = nil
	return m
}

// Close cancels the producer if it is suspended and leaves g empty.
// A panic raised by the producer while unwinding is propagated.
func (g *Generator[T]) Close() {
	if g == nil || g.f == nil {
		return
	}
	f := g.f
	g.f = nil
	f.close()
}
