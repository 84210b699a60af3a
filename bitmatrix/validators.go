// SPDX-License-Identifier: MIT
// Package: bitmatrix
//
// Purpose:
//  - Provide a single source of truth for operand checks (nil, shape, square).
//  - Keep kernels minimal by delegating guard logic here.
//  - Return sentinel errors tagged with the validator name so call sites can
//    wrap uniformly with their operation tag.
//
// Determinism & Performance:
//  - All checks are pure, O(1), and allocate nothing on success.

package bitmatrix

import "fmt"

// validatorErrorf wraps an underlying error with the given validator tag.
func validatorErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// ValidateNotNil ensures the matrix reference is non-nil.
// Returns ErrNilMatrix if m == nil. Complexity: O(1).
func ValidateNotNil(m *BitMatrix) error {
	if m == nil {
		return validatorErrorf("ValidateNotNil", ErrNilMatrix)
	}

	return nil
}

// ValidateSameShape ensures a and b have equal height AND equal width.
// Assumes both are non-nil. Complexity: O(1).
func ValidateSameShape(a, b *BitMatrix) error {
	if a.r != b.r {
		return validatorErrorf("ValidateSameShape: Height", ErrDimensionMismatch)
	}
	if a.c != b.c {
		return validatorErrorf("ValidateSameShape: Width", ErrDimensionMismatch)
	}

	return nil
}

// ValidateMulCompatible ensures a.Width() == b.Height().
// Assumes both are non-nil. Complexity: O(1).
func ValidateMulCompatible(a, b *BitMatrix) error {
	if a.c != b.r {
		return validatorErrorf(
			fmt.Sprintf("ValidateMulCompatible: %dx%d * %dx%d", a.r, a.c, b.r, b.c),
			ErrDimensionMismatch,
		)
	}

	return nil
}

// ValidateSquare checks Height == Width. Assumes m is non-nil.
func ValidateSquare(m *BitMatrix) error {
	if m.r != m.c {
		return validatorErrorf(fmt.Sprintf("ValidateSquare: %dx%d", m.r, m.c), ErrDimensionMismatch)
	}

	return nil
}

// ValidateBinaryNotNil is the composite NotNil(a) → NotNil(b).
func ValidateBinaryNotNil(a, b *BitMatrix) error {
	if err := ValidateNotNil(a); err != nil {
		return err
	}

	return ValidateNotNil(b)
}

// ValidateSquarePair is the composite used by the Four Russians path:
// NotNil(a) → NotNil(b) → Square(a) → Square(b) → SameShape(a, b).
func ValidateSquarePair(a, b *BitMatrix) error {
	if err := ValidateBinaryNotNil(a, b); err != nil {
		return validatorErrorf("ValidateSquarePair", err)
	}
	if err := ValidateSquare(a); err != nil {
		return validatorErrorf("ValidateSquarePair", err)
	}
	if err := ValidateSquare(b); err != nil {
		return validatorErrorf("ValidateSquarePair", err)
	}
	if err := ValidateSameShape(a, b); err != nil {
		return validatorErrorf("ValidateSquarePair", err)
	}

	return nil
}
