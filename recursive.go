package lazyseq

import (
	"fmt"
	"iter"
)

// Recursive is a generator whose producer can yield values or hand
// production over to another Recursive. The nested generator's values
// appear in place, before the producer continues past the delegation.
//
// The generator being driven from outside is the root of a tree of
// frames. The root tracks the frame that currently produces values,
// so Advance resumes that frame directly instead of passing through
// every enclosing producer.
type Recursive[T any] struct {
	f *frame[T]
}

// Yielder is handed to a recursive producer. It is only valid inside
// that producer.
type Yielder[T any] struct {
	f *frame[T]
}

// NewRecursive returns a recursive generator driven by body. The body
// does not run until the first Advance, or until a parent delegates to
// the generator.
func NewRecursive[T any](body func(y *Yielder[T])) *Recursive[T] {
	return &Recursive[T]{f: newFrame(func(f *frame[T]) { body(&Yielder[T]{f: f}) })}
}

// Yield publishes v and suspends the producer.
func (y *Yielder[T]) Yield(v T) {
	y.f.yield(v)
}

// Delegate splices g's values into the sequence at this point. The
// nested producer is resumed immediately; Delegate returns once g has
// completed. An empty or already exhausted g contributes nothing.
//
// g must not be driven from anywhere else while it is delegated to.
func (y *Yielder[T]) Delegate(g *Recursive[T]) {
	p := y.f
	p.task.check()
	if p.delegating {
		panic(fmt.Errorf("%w: producer is waiting on a delegated generator", ErrNotRunning))
	}
	if g == nil || g.f == nil || g.f.done() {
		return
	}

	child := g.f
	if child.root != child || child.leaf != child {
		panic(fmt.Errorf("%w: delegated generator is already part of a tree", ErrNotRoot))
	}

	r := p.root
	r.leaf = child
	child.root = r
	child.leaf = p
	if debugEnabled() {
		Log().Debug("delegate", "root_resumes", r.resumes)
	}

	p.delegating = true
	child.resume()
	p.delegating = false

	if !child.done() {
		// Suspend until the collapsing walk in pull comes back to p.
		p.task.suspend()
		return
	}

	// The nested generator produced nothing.
	r.leaf = p
}

// pull resumes the current leaf, then walks back over every completed
// frame toward the root, resuming each frame it lands on, until it
// reaches a live producer or the root itself.
func (f *frame[T]) pull() {
	f.leaf.resume()

	popped := 0
	for f.leaf != f && f.leaf.done() {
		f.leaf = f.leaf.leaf
		f.leaf.resume()
		popped++
	}
	if popped > 0 && debugEnabled() {
		Log().Debug("collapse", "frames", popped, "root_done", f.done())
	}
}

// Advance produces the next value of the whole tree. It returns false
// once the root's producer has returned, and keeps returning false
// afterwards. If a producer anywhere in the tree faulted, every later
// Advance raises that fault again. Advance panics with ErrNotRoot if g is currently
// delegated to by another producer.
func (g *Recursive[T]) Advance() bool {
	if g == nil || g.f == nil {
		return false
	}
	f := g.f
	if f.done() {
		return f.resume()
	}
	if f.root != f {
		panic(fmt.Errorf("%w: advance of a delegated generator", ErrNotRoot))
	}
	f.pull()
	return !f.done()
}

// Value returns the value produced by the last successful Advance,
// wherever in the tree it was yielded.
func (g *Recursive[T]) Value() T {
	if g == nil || g.f == nil {
		panic(fmt.Errorf("%w: empty generator", ErrNoValue))
	}
	f := g.f
	if f.root != f && !f.done() {
		panic(fmt.Errorf("%w: value of a delegated generator", ErrNotRoot))
	}
	if f.done() {
		panic(fmt.Errorf("%w: generator is exhausted", ErrNoValue))
	}
	return f.leaf.current()
}

// All returns the remaining values as an iter.Seq.
func (g *Recursive[T]) All() iter.Seq[T] {
	return func(yield func(T) bool) {
		for g.Advance() {
			if !yield(g.Value()) {
				return
			}
		}
	}
}

// Done reports whether the generator is exhausted, closed or empty.
func (g *Recursive[T]) Done() bool {
	return g == nil || g.f == nil || g.f.done()
}

// State returns the state of the generator's own producer.
func (g *Recursive[T]) State() State {
	if g == nil || g.f == nil {
		return StateCompleted
	}
	return g.f.task.state
}

// Resumes returns how many producer resumptions have been driven
// through g as a root, counting every frame in its tree.
func (g *Recursive[T]) Resumes() uint64 {
	if g == nil || g.f == nil {
		return 0
	}
	return g.f.resumes
}

// Move transfers the producer to a new generator and leaves g empty.
// Links held by other frames refer to the frame, not to g, so moving a
// generator in the middle of a delegation is safe.
func (g *Recursive[T]) Move() *Recursive[T] {
	if g == nil {
		return &Recursive[T]{}
	}
	m := &Recursive[T]{f: g.f}
	g.f = nil
	return m
}

// Swap exchanges the producers of g and other.
func (g *Recursive[T]) Swap(other *Recursive[T]) {
	g.f, other.f = other.f, g.f
}

// Close tears down the generator and leaves g empty. On a root every
// frame still producing on its behalf is canceled first, innermost
// first, so producers unwind in reverse order of delegation.
//
// Closing a generator while it is delegated to from a live tree cancels
// only that generator; the tree continues with the producer that
// delegated to it.
func (g *Recursive[T]) Close() {
	if g == nil || g.f == nil {
		return
	}
	f := g.f
	g.f = nil

	if f.root == f {
		n := 0
		for l := f.leaf; l != f; n++ {
			next := l.leaf
			l.close()
			l = next
		}
		if n > 0 {
			Log().Debug("teardown", "frames", n+1)
		}
		f.leaf = f
	}
	f.close()
}
