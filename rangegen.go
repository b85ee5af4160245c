package lazyseq

import (
	"fmt"
	"iter"
)

// Range is a single-producer sequence exposed through an iterator pair.
// Begin starts (or continues) the producer; iterating from Begin until
// the iterator equals End visits every remaining value once.
//
// A Range always owns the frame it was created with. It can be moved,
// never duplicated.
type Range[T any] struct {
	f *frame[T]
}

// NewRange returns a Range driven by body. The body does not run until
// Begin is called.
func NewRange[T any](body func(yield func(T))) *Range[T] {
	return &Range[T]{f: newFrame(func(f *frame[T]) { body(f.yield) })}
}

// Begin resumes the producer once. It returns End if the Range is empty
// or the producer returned without yielding.
func (r *Range[T]) Begin() Iterator[T] {
	if r == nil || r.f == nil || !r.f.resume() {
		return Iterator[T]{}
	}
	return Iterator[T]{f: r.f}
}

// End returns the sentinel iterator, bound to no producer.
func (r *Range[T]) End() Iterator[T] {
	return Iterator[T]{}
}

// All returns the remaining values as an iter.Seq. Breaking out of the
// loop leaves the producer suspended; the Range can still be closed or
// iterated further.
func (r *Range[T]) All() iter.Seq[T] {
	return func(yield func(T) bool) {
		for it, end := r.Begin(), r.End(); !it.Equal(end); it.Next() {
			if !yield(it.Value()) {
				return
			}
		}
	}
}

// Resumes returns how many times the producer has been resumed.
func (r *Range[T]) Resumes() uint64 {
	if r == nil || r.f == nil {
		return 0
	}
	return r.f.resumes
}

// Move transfers the producer to a new Range and leaves r empty.
func (r *Range[T]) Move() *Range[T] {
	if r == nil {
		return &Range[T]{}
	}
	m := &Range[T]{f: r.f}
	r.f = nil
	return m
}

// Close cancels the producer and leaves r empty. Outstanding iterators
// must not be used afterwards.
func (r *Range[T]) Close() {
	if r == nil || r.f == nil {
		return
	}
	f := r.f
	r.f = nil
	f.close()
}

// Iterator is a forward-only input iterator over a Range.
type Iterator[T any] struct {
	f *frame[T]
}

// Next resumes the producer. When the producer returns, the iterator
// becomes equal to End.
func (it *Iterator[T]) Next() {
	if it.f == nil {
		panic(fmt.Errorf("%w: increment past end", ErrNoValue))
	}
	if !it.f.resume() {
		it.f = nil
	}
}

// Value returns the value the producer yielded last. It panics with
// ErrNoValue on the End iterator.
func (it Iterator[T]) Value() T {
	if it.f == nil {
		panic(fmt.Errorf("%w: dereference of end", ErrNoValue))
	}
	return it.f.current()
}

// Equal reports whether both iterators are bound to the same producer.
// All exhausted iterators are equal to End.
func (it Iterator[T]) Equal(other Iterator[T]) bool {
	return it.f == other.f
}

// Done reports whether it equals End.
func (it Iterator[T]) Done() bool {
	return it.f == nil
}
