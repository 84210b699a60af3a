// SPDX-License-Identifier: MIT
// Package bitmatrix: public API facades.
//
// Purpose:
//   - Thin, intention-revealing entry points that delegate to the canonical
//     implementation; no logic is duplicated here.

package bitmatrix

// Sum is an alias for Add: element-wise a OR b.
// Complexity: O(rc/64).
func Sum(a, b *BitMatrix) (*BitMatrix, error) { return Add(a, b) }

// Product is an alias for Mul: the standard Boolean product a × b.
// Complexity: O(r*n*c/64).
func Product(a, b *BitMatrix) (*BitMatrix, error) { return Mul(a, b) }

// FastProduct is an alias for MulFourRussians.
func FastProduct(a, b *BitMatrix, opts ...Option) (*BitMatrix, error) {
	return MulFourRussians(a, b, opts...)
}

// ZerosLike returns the all-false matrix with m's shape.
func ZerosLike(m *BitMatrix) (*BitMatrix, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, opErrorf("ZerosLike", err)
	}

	return NewZeros(m.r, m.c)
}

// IdentityLike returns I with dimension Height(m); requires square m.
func IdentityLike(m *BitMatrix) (*BitMatrix, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, opErrorf("IdentityLike", err)
	}
	if err := ValidateSquare(m); err != nil {
		return nil, opErrorf("IdentityLike", err)
	}

	return NewIdentity(m.r)
}
