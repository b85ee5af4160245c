package lazyseq

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func letters(s string) *Range[rune] {
	return NewRange(func(yield func(rune)) {
		for _, c := range s {
			yield(c)
		}
	})
}

func TestRangeBeginEqualsEnd(t *testing.T) {
	tests := []struct {
		name  string
		input string
		empty bool
	}{
		{"empty", "", true},
		{"single", "a", false},
		{"multiple", "abc", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rg := letters(tt.input)
			defer rg.Close()
			require.Equal(t, tt.empty, rg.Begin().Equal(rg.End()))
		})
	}

	var nilRange *Range[rune]
	require.True(t, nilRange.Begin().Equal(nilRange.End()))
}

func TestRangeMatchesManualDriving(t *testing.T) {
	r := require.New(t)

	var manual []rune
	g := New(func(yield func(rune)) {
		for _, c := range "generator" {
			yield(c)
		}
	})
	for g.Advance() {
		manual = append(manual, g.Current())
	}

	var iterated []rune
	rg := letters("generator")
	for it := rg.Begin(); !it.Equal(rg.End()); it.Next() {
		iterated = append(iterated, it.Value())
	}

	r.Equal(manual, iterated)
	r.Equal("generator", string(iterated))
}

func TestRangeLazyStart(t *testing.T) {
	r := require.New(t)

	ran := false
	rg := NewRange(func(yield func(int)) {
		ran = true
		yield(1)
	})
	defer rg.Close()

	end := rg.End()
	r.False(ran)
	r.True(end.Done())

	it := rg.Begin()
	r.True(ran)
	r.False(it.Done())
	r.Equal(1, it.Value())
}

func TestRangeAll(t *testing.T) {
	r := require.New(t)

	rg := letters("abcdef")
	defer rg.Close()

	var head []rune
	for c := range rg.All() {
		head = append(head, c)
		if c == 'c' {
			break
		}
	}
	r.Equal("abc", string(head))

	var tail []rune
	for c := range rg.All() {
		tail = append(tail, c)
	}
	r.Equal("def", string(tail))

	for range rg.All() {
		t.Error("exhausted range should yield nothing")
	}
}

func TestRangeIteratorContract(t *testing.T) {
	r := require.New(t)

	rg := letters("a")
	it := rg.Begin()
	r.Equal('a', it.Value())

	it.Next()
	r.True(it.Equal(rg.End()))
	r.ErrorIs(catch(func() { it.Value() }), ErrNoValue)
	r.ErrorIs(catch(func() { it.Next() }), ErrNoValue)
}

func TestRangeMove(t *testing.T) {
	r := require.New(t)

	src := letters("xyz")
	first := src.Begin()
	r.Equal('x', first.Value())

	dst := src.Move()
	defer dst.Close()

	r.True(src.Begin().Equal(src.End()))

	var rest []rune
	for c := range dst.All() {
		rest = append(rest, c)
	}
	r.Equal("yz", string(rest))

	var nilRange *Range[int]
	r.True(nilRange.Move().Begin().Done())
}

func TestRangeFault(t *testing.T) {
	r := require.New(t)

	rg := NewRange(func(yield func(int)) {
		yield(1)
		panic("range fault")
	})

	it := rg.Begin()
	r.Equal(1, it.Value())
	r.EqualError(catch(func() { it.Next() }), "range fault")
	r.EqualError(catch(func() { rg.Begin() }), "range fault")
	// Raising the fault again does not resume the producer.
	r.Equal(uint64(2), rg.Resumes())
}

func TestRangeResumes(t *testing.T) {
	r := require.New(t)

	rg := letters("abc")
	for range rg.All() {
	}
	r.Equal(uint64(4), rg.Resumes())

	var nilRange *Range[int]
	r.Zero(nilRange.Resumes())
}

func TestRangeClose(t *testing.T) {
	r := require.New(t)

	var cleaned bool
	rg := NewRange(func(yield func(int)) {
		defer func() { cleaned = true }()
		for i := 0; ; i++ {
			yield(i)
		}
	})

	it := rg.Begin()
	it.Next()
	r.Equal(1, it.Value())

	rg.Close()
	r.True(cleaned)
	r.ErrorIs(catch(func() { it.Value() }), ErrNoValue)
	r.True(rg.Begin().Equal(rg.End()))
	rg.Close()
}
