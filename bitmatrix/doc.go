// Package bitmatrix implements dense Boolean matrices and their algebra over
// the Boolean semiring (OR as addition, AND as multiplication).
//
// The package provides:
//
//   - BitMatrix, an immutable, word-packed, row-major matrix with bounds-checked
//     access (At), zero-default access (AtOrZero), SubMatrix and FillZeros.
//   - Add (element-wise OR) and Mul, the standard Boolean product.
//   - MulFourRussians, the block-table product that replaces the inner scalar
//     loop with lookups into a 2^w-entry table per block (w = floor(log2 n)).
//   - Power and TransitiveClosure built on either product.
//
// Every operation returns a new matrix; nothing is mutated after
// construction, so values may be shared freely between goroutines.
// Errors are package sentinels (ErrBadShape, ErrOutOfRange,
// ErrDimensionMismatch, ...) matched with errors.Is.
//
// Quick example:
//
//	a, _ := bitmatrix.NewFromInts([][]int{{1, 0}, {1, 1}})
//	b, _ := bitmatrix.NewFromInts([][]int{{1, 1}, {0, 0}})
//	p, _ := bitmatrix.MulFourRussians(a, b)
//	fmt.Println(p) // 1 1\n1 1
package bitmatrix
