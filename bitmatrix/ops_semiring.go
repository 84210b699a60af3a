// SPDX-License-Identifier: MIT
// Package bitmatrix provides the Boolean semiring operations on BitMatrix:
// element-wise addition (OR) and the standard matrix product (AND-OR
// contraction). All functions perform strict fail-fast validation and
// return new matrices; operands are never modified.
package bitmatrix

// Operation name constants for unified error wrapping.
const (
	opAdd             = "Add"
	opMul             = "Mul"
	opMulFourRussians = "MulFourRussians"
	opPower           = "Power"
	opClosure         = "TransitiveClosure"
)

// Add returns the element-wise logical OR of a and b.
// Stage 1 (Validate): nil-checks and shape match (height AND width).
// Stage 2 (Prepare): allocate result.
// Stage 3 (Execute): OR the flat word buffers.
// Commutative, associative, idempotent; identity is the zero matrix.
// Complexity: O(r·c/64) time and memory.
func Add(a, b *BitMatrix) (*BitMatrix, error) {
	// Stage 1: Validate inputs
	if err := ValidateBinaryNotNil(a, b); err != nil {
		return nil, opErrorf(opAdd, err)
	}
	if err := ValidateSameShape(a, b); err != nil {
		return nil, opErrorf(opAdd, err)
	}

	// Stage 2: Allocate result
	res := newZeroed(a.r, a.c)

	// Stage 3: both operands share stride, so the buffers line up word by word
	for x := range res.data {
		res.data[x] = a.data[x] | b.data[x]
	}

	return res, nil
}

// Mul performs the standard Boolean product a × b:
// res[i,j] = OR_k (a[i,k] AND b[k,j]).
// Stage 1 (Validate): nil-checks and inner-dimension match.
// Stage 2 (Prepare): allocate a.Height()×b.Width() result.
// Stage 3 (Execute): i-k-j order; for every set a[i,k], OR row k of b into
// row i of the result (zero cells of a are skipped).
// This is the reference product that MulFourRussians is validated against.
// Complexity: O(r·n·c/64) time, O(r·c/64) memory.
func Mul(a, b *BitMatrix) (*BitMatrix, error) {
	// Stage 1: Validate inputs
	if err := ValidateBinaryNotNil(a, b); err != nil {
		return nil, opErrorf(opMul, err)
	}
	if err := ValidateMulCompatible(a, b); err != nil {
		return nil, opErrorf(opMul, err)
	}

	// Stage 2: Allocate result
	res := newZeroed(a.r, b.c)

	// Stage 3: row-OR accumulation
	var (
		i, k, x  int
		dst, src []uint64
	)
	for i = 0; i < a.r; i++ {
		dst = res.row(i)
		for k = 0; k < a.c; k++ {
			if !a.get(i, k) {
				continue // AND with false contributes nothing
			}
			src = b.row(k)
			for x = range dst {
				dst[x] |= src[x]
			}
		}
	}

	return res, nil
}
