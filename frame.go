package lazyseq

import "fmt"

// frame is the suspended state of one generator instance. The producer
// copies each yielded value into the frame, so the value stays valid
// until the frame is resumed again.
//
// root and leaf route production through a tree of recursive frames.
// A frame starts as its own root and its own leaf. On a root, leaf is
// the frame currently producing values for the whole tree. On a frame
// that has been delegated into, leaf points back at the frame that
// delegated to it, which is where production continues once it
// completes. Both links are lookups only: every frame is owned by the
// generator value that created it.
type frame[T any] struct {
	task     *task
	value    T
	hasValue bool

	root *frame[T]
	leaf *frame[T]

	// delegating is set while the producer is blocked on the first
	// resume of a generator it delegated to.
	delegating bool

	// resumes counts resumptions driven through this frame while it is
	// a root.
	resumes uint64
}

func newFrame[T any](body func(f *frame[T])) *frame[T] {
	f := &frame[T]{}
	f.root, f.leaf = f, f
	f.task = newTask(func() { body(f) })
	return f
}

func (f *frame[T]) done() bool {
	return f.task.state == StateCompleted
}

// resume runs the producer to its next suspension point and reports
// whether it is still live. The previous value is dropped first. A
// frame whose producer faulted raises the fault again.
func (f *frame[T]) resume() bool {
	if f.done() {
		return f.task.resume()
	}
	f.clear()
	f.root.resumes++
	return f.task.resume()
}

// yield is called by the producer to publish v and suspend.
func (f *frame[T]) yield(v T) {
	f.task.check()
	if f.delegating {
		panic(fmt.Errorf("%w: producer is waiting on a delegated generator", ErrNotRunning))
	}
	f.value, f.hasValue = v, true
	f.task.suspend()
}

func (f *frame[T]) current() T {
	if !f.hasValue || f.done() {
		panic(fmt.Errorf("%w: producer is %s", ErrNoValue, f.task.state))
	}
	return f.value
}

func (f *frame[T]) clear() {
	var zero T
	f.value, f.hasValue = zero, false
}

func (f *frame[T]) close() {
	f.clear()
	f.task.cancel()
}
