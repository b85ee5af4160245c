package lazyseq

import (
	"fmt"
	"iter"
)

// State is the lifecycle state of a producer.
type State uint8

// Producer states. A producer moves from StateCreated to StateRunning on
// its first resume, alternates between StateRunning and StateSuspended at
// each yield, and ends in StateCompleted. StateCompleted is terminal.
const (
	StateCreated State = iota
	StateRunning
	StateSuspended
	StateCompleted
)

func (s State) String() string {
	switch s {
	case StateCreated:
		return "created"
	case StateRunning:
		return "running"
	case StateSuspended:
		return "suspended"
	case StateCompleted:
		return "completed"
	default:
		return fmt.Sprintf("State(%d)", uint8(s))
	}
}

// cancelSignal unwinds a suspended producer whose generator was closed.
// The coroutine swallows exactly this value; anything else escaping the
// producer is a fault.
var cancelSignal = fmt.Errorf("%w", ErrCanceled)

// task runs a producer on its own coroutine. It carries no values; the
// frame that owns it stores whatever the producer yields.
type task struct {
	next  func() (struct{}, bool)
	stop  func()
	yield func(struct{}) bool
	state State
	fault error
}

func newTask(body func()) *task {
	t := &task{}
	t.next, t.stop = iter.Pull(func(yield func(struct{}) bool) {
		t.yield = yield
		defer func() {
			if p := recover(); p != nil && p != cancelSignal {
				panic(newProducerFault(p))
			}
		}()
		body()
	})
	return t
}

// resume runs the producer until it suspends or returns. It reports
// whether the producer is still live. Resuming a completed task is a
// no-op, unless the task completed by faulting, in which case the fault
// is raised again.
func (t *task) resume() bool {
	switch t.state {
	case StateCompleted:
		if t.fault != nil {
			panic(t.fault)
		}
		return false
	case StateRunning:
		panic(fmt.Errorf("%w: resume from inside the producer", ErrRunning))
	}

	t.state = StateRunning
	defer func() {
		if p := recover(); p != nil {
			t.state = StateCompleted
			t.fault = asError(p)
			panic(p)
		}
	}()

	if _, ok := t.next(); ok {
		t.state = StateSuspended
		return true
	}
	t.state = StateCompleted
	return false
}

// check panics unless the calling producer is allowed to suspend now.
func (t *task) check() {
	switch t.state {
	case StateRunning:
	case StateCompleted:
		panic(cancelSignal)
	default:
		panic(fmt.Errorf("%w: producer is %s", ErrNotRunning, t.state))
	}
}

// suspend is called from inside the producer and returns when the task
// is resumed again. If the task is canceled instead, suspend unwinds
// the producer with cancelSignal.
func (t *task) suspend() {
	t.check()
	if !t.yield(struct{}{}) {
		panic(cancelSignal)
	}
}

// cancel tears the producer down. A suspended producer observes
// ErrCanceled from the point where it suspended; a producer that never
// ran is discarded without running.
func (t *task) cancel() {
	switch t.state {
	case StateCompleted:
		return
	case StateRunning:
		panic(fmt.Errorf("%w: close from inside the producer", ErrRunning))
	}

	t.state = StateCompleted
	defer func() {
		if p := recover(); p != nil {
			t.fault = asError(p)
			panic(p)
		}
	}()
	t.stop()
}

func asError(p any) error {
	if err, ok := p.(error); ok {
		return err
	}
	return fmt.Errorf("%v", p)
}
