// Package boolmat is a Boolean matrix algebra kernel: dense matrices over
// the (OR, AND) semiring and two ways to multiply them.
//
// What is inside?
//
//	bitmatrix/    BitMatrix (word-packed, immutable), Add, Mul,
//	              MulFourRussians, Power, TransitiveClosure
//	internal/cli/ cobra commands behind the boolmat binary
//	cmd/boolmat/  entry point: multiply, verify, closure
//
// The standard product walks i-k-j and ORs whole packed rows, O(n³/64)
// word operations. The Four Russians product splits the inner dimension
// into blocks of ⌊log₂ n⌋ columns, tabulates every OR-combination of the
// matching rows of B once per block, and replaces the inner loop with a
// single table lookup per row, O(n³/(64·log n)).
//
// Quick example:
//
//	a, _ := bitmatrix.NewFromInts([][]int{{1, 0}, {1, 1}})
//	b, _ := bitmatrix.NewFromInts([][]int{{1, 1}, {0, 0}})
//	p, _ := bitmatrix.MulFourRussians(a, b)
//	fmt.Println(p)
//	// 1 1
//	// 1 1
//
// From the command line:
//
//	boolmat multiply --a "1,0;1,1" --b "1,1;0,0"
//	boolmat verify --size 128 --count 20
//	boolmat closure --a "0,1,0;0,0,1;0,0,0"
package boolmat
