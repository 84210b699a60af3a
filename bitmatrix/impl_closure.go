// SPDX-License-Identifier: MIT
// Package: bitmatrix
//
// Purpose:
//   - Boolean powers and reachability closure on top of the semiring product.
//   - The multiplier is selected by options: MulFourRussians by default,
//     Mul with WithStandardMultiplier().
//
// Contract:
//   - Square operands only (ErrDimensionMismatch otherwise).
//   - A square adjacency matrix A reads as a directed graph: A[i,j] = edge i→j.
//     A^k[i,j] = walk of exactly k edges; TransitiveClosure(A)[i,j] = walk of ≥1 edge.

package bitmatrix

import "fmt"

// mulFunc is the product used by Power and TransitiveClosure.
type mulFunc func(a, b *BitMatrix) (*BitMatrix, error)

// multiplier resolves the configured product. Block options are forwarded.
func multiplier(o Options, opts []Option) mulFunc {
	if !o.useFourRussians {
		return Mul
	}

	return func(a, b *BitMatrix) (*BitMatrix, error) {
		return MulFourRussians(a, b, opts...)
	}
}

// Power returns a^k by binary exponentiation. a^0 is the identity.
// Stage 1 (Validate): non-nil, square, k ≥ 0.
// Stage 2 (Execute): square-and-multiply over the bits of k.
// Complexity: O(log k) products.
func Power(a *BitMatrix, k int, opts ...Option) (*BitMatrix, error) {
	if err := ValidateNotNil(a); err != nil {
		return nil, opErrorf(opPower, err)
	}
	if err := ValidateSquare(a); err != nil {
		return nil, opErrorf(opPower, err)
	}
	if k < 0 {
		return nil, fmt.Errorf("%s(k=%d): %w", opPower, k, ErrNegativePower)
	}

	mul := multiplier(gatherOptions(opts...), opts)
	res, _ := NewIdentity(a.r) // a.r ≥ 1
	base := a.clone()
	var err error
	for k > 0 {
		if k&1 == 1 {
			if res, err = mul(res, base); err != nil {
				return nil, opErrorf(opPower, err)
			}
		}
		k >>= 1
		if k > 0 {
			if base, err = mul(base, base); err != nil {
				return nil, opErrorf(opPower, err)
			}
		}
	}

	return res, nil
}

// TransitiveClosure returns A⁺ = A + A² + … + Aⁿ (no reflexive diagonal
// unless a cycle reaches back).
// Stage 1 (Validate): non-nil, square.
// Stage 2 (Execute): R ← R + R·R from R = A until R stops changing; after
// round t, R covers walks of length 1..2^t, so at most ceil(log2 n)+1
// rounds run.
// Complexity: O(log n) products.
func TransitiveClosure(a *BitMatrix, opts ...Option) (*BitMatrix, error) {
	if err := ValidateNotNil(a); err != nil {
		return nil, opErrorf(opClosure, err)
	}
	if err := ValidateSquare(a); err != nil {
		return nil, opErrorf(opClosure, err)
	}

	mul := multiplier(gatherOptions(opts...), opts)
	r := a.clone()
	for {
		sq, err := mul(r, r)
		if err != nil {
			return nil, opErrorf(opClosure, err)
		}
		next, err := Add(r, sq)
		if err != nil {
			return nil, opErrorf(opClosure, err)
		}
		if next.Equal(r) {
			return r, nil
		}
		r = next
	}
}
