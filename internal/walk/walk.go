// Package walk builds traversals on top of recursive generators.
package walk

import "github.com/webriots/lazyseq"

// Node is a binary tree node.
type Node struct {
	Value       int
	Left, Right *Node
}

// Complete returns a complete binary tree of the given depth with
// values numbered in pre-order from 0. A depth of 0 returns nil.
func Complete(depth int) *Node {
	next := 0
	var build func(d int) *Node
	build = func(d int) *Node {
		if d == 0 {
			return nil
		}
		n := &Node{Value: next}
		next++
		n.Left = build(d - 1)
		n.Right = build(d - 1)
		return n
	}
	return build(depth)
}

// PreOrder yields the values of the tree rooted at n in pre-order.
func PreOrder(n *Node) *lazyseq.Recursive[int] {
	return lazyseq.NewRecursive(func(y *lazyseq.Yielder[int]) {
		if n == nil {
			return
		}
		y.Yield(n.Value)
		y.Delegate(PreOrder(n.Left))
		y.Delegate(PreOrder(n.Right))
	})
}

// InOrder yields the values of the tree rooted at n in order.
func InOrder(n *Node) *lazyseq.Recursive[int] {
	return lazyseq.NewRecursive(func(y *lazyseq.Yielder[int]) {
		if n == nil {
			return
		}
		y.Delegate(InOrder(n.Left))
		y.Yield(n.Value)
		y.Delegate(InOrder(n.Right))
	})
}

// Chain returns a generator that delegates depth times before the
// innermost level yields 0 through n-1.
func Chain(depth, n int) *lazyseq.Recursive[int] {
	if depth <= 0 {
		return lazyseq.NewRecursive(func(y *lazyseq.Yielder[int]) {
			for i := 0; i < n; i++ {
				y.Yield(i)
			}
		})
	}
	return lazyseq.NewRecursive(func(y *lazyseq.Yielder[int]) {
		y.Delegate(Chain(depth-1, n))
	})
}

// Naturals yields 0, 1, 2, ... without end.
func Naturals() *lazyseq.Generator[int] {
	return lazyseq.New(func(yield func(int)) {
		for n := 0; ; n++ {
			yield(n)
		}
	})
}

// Upto yields 0 through n-1.
func Upto(n int) *lazyseq.Range[int] {
	return lazyseq.NewRange(func(yield func(int)) {
		for i := 0; i < n; i++ {
			yield(i)
		}
	})
}
