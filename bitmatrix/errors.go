// SPDX-License-Identifier: MIT
// Package bitmatrix: sentinel error set.
// This file defines ONLY package-level sentinel errors used across the
// bitmatrix package. All operations MUST return these sentinels (optionally
// wrapped with call-site context) and tests MUST check them via errors.Is.
// No operation panics on user-triggered error conditions; panics are
// reserved for invalid Option values (programmer error).

package bitmatrix

import (
	"errors"
	"fmt"
)

// Every message is prefixed with "bitmatrix: ..." for easy grepping.
// Call sites wrap with fmt.Errorf("<Op>: %w", ErrX); callers still match
// with errors.Is.
//
// ERROR PRIORITY (enforced in tests):
// nil operand -> shape/index -> dimension mismatch.

var (
	// ErrBadShape is returned when a requested or supplied shape is invalid:
	// empty grid, ragged rows, non-positive dimensions, empty ranges, or a
	// FillZeros target smaller than the source.
	ErrBadShape = errors.New("bitmatrix: invalid shape")

	// ErrOutOfRange indicates that an index or range lies outside the matrix.
	ErrOutOfRange = errors.New("bitmatrix: index out of range")

	// ErrDimensionMismatch indicates incompatible operand shapes, e.g. Add on
	// different shapes, Mul where a.Width != b.Height, or non-square operands
	// of MulFourRussians.
	ErrDimensionMismatch = errors.New("bitmatrix: dimension mismatch")

	// ErrNilMatrix indicates that a nil *BitMatrix was used as an operand.
	ErrNilMatrix = errors.New("bitmatrix: nil matrix")

	// ErrNotBinary is returned by NewFromInts for cells other than 0 or 1.
	ErrNotBinary = errors.New("bitmatrix: value is not 0 or 1")

	// ErrNilGenerator is returned by NewFunc when the generator is nil.
	ErrNilGenerator = errors.New("bitmatrix: nil generator")

	// ErrNegativePower is returned by Power for k < 0 (Boolean matrices
	// have no inverses in general).
	ErrNegativePower = errors.New("bitmatrix: negative power")
)

// ErrIndexOutOfBounds names the same condition as ErrOutOfRange, so
// errors.Is(err, ErrIndexOutOfBounds) holds for every index failure.
var ErrIndexOutOfBounds = ErrOutOfRange

// opErrorf wraps err with an operation tag ("Add: bitmatrix: ...").
func opErrorf(op string, err error) error {
	return fmt.Errorf("%s: %w", op, err)
}

// atErrorf wraps err with an accessor tag and coordinates.
func atErrorf(op string, row, col int, err error) error {
	return fmt.Errorf("BitMatrix.%s(%d,%d): %w", op, row, col, err)
}
