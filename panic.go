package lazyseq

import (
	"errors"
	"fmt"
	"runtime/debug"
	"strings"
)

// producerFault carries a panic out of a producer's coroutine together
// with the producer's stack at the point of the panic.
type producerFault struct {
	value any
	stack []byte
}

func newProducerFault(v any) error {
	return &producerFault{
		value: v,
		stack: debug.Stack(),
	}
}

func (f *producerFault) Error() string {
	return fmt.Sprint(f.value)
}

// Value returns the value the producer panicked with.
func (f *producerFault) Value() any {
	return f.value
}

func (f *producerFault) ErrorWithStack() string {
	return fmt.Sprintf("%v\n\n%s", f.value, f.stack)
}

func (f *producerFault) Unwrap() error {
	err, _ := f.value.(error)
	return err
}

// DebugString renders the fault and everything it wraps. Nested faults,
// from a producer that panicked while resuming another generator,
// contribute their own stacks.
func (f *producerFault) DebugString() string {
	var (
		sb    strings.Builder
		seen  = make(map[error]bool)
		queue = []error{f}
	)
	for len(queue) > 0 {
		e := queue[0]
		queue = queue[1:]
		if e == nil || seen[e] {
			continue
		}
		seen[e] = true

		if sb.Len() > 0 {
			sb.WriteString("\n")
		}
		if pf, ok := e.(*producerFault); ok {
			sb.WriteString(pf.ErrorWithStack())
		} else {
			sb.WriteString(e.Error())
		}

		switch u := e.(type) {
		case interface{ Unwrap() []error }:
			queue = append(queue, u.Unwrap()...)
		default:
			queue = append(queue, errors.Unwrap(e))
		}
	}
	return sb.String()
}
