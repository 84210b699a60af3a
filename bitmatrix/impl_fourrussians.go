// SPDX-License-Identifier: MIT
// Package: bitmatrix
//
// Purpose:
//   - Four Russians Boolean matrix product: same result as Mul, with the
//     inner scalar work replaced by lookups into a per-block table.
//
// Algorithm (shared dimension n, block width w = floor(log2 n)):
//   1. Split [0,n) into m = ceil(n/w) contiguous blocks; block k spans
//      [k·w, min((k+1)·w, n)). The last block absorbs the remainder.
//   2. A-block k = A[:, block] zero-padded to n×w;
//      B-block k = B[block, :] zero-padded to w×n.
//   3. Table k has 2^w rows: table[p] = OR of the B-block rows whose bit is
//      set in p. Built incrementally, one row-OR per entry.
//   4. Row i of the partial product is table[pattern(A-block row i)].
//   5. result = OR over k of the partial products (via Add).
//
// Contract:
//   - Square operands of identical size; n == 1 delegates to Mul.
//   - MulFourRussians(a, b) == Mul(a, b) for every valid input.
//
// Complexity:
//   - O(m·(2^w + n)·n/64) word operations; with w = log2 n this is
//     O(n³/(64·log n)) against O(n³/64) for Mul.

package bitmatrix

import (
	"fmt"
	"math/bits"
)

// lookupTable holds all 2^w OR-combinations of the rows of one B-block.
type lookupTable struct {
	patternBits int      // w: bits per pattern (B-block height)
	width       int      // columns per entry (B-block width)
	stride      int      // words per entry
	rows        []uint64 // (1<<patternBits)*stride words; entry 0 is all-false
}

// buildLookupTable precomputes table[p] for p in [0, 2^w) from the w rows of
// block. Bit t of p selects row t. Each entry reuses the entry with the
// lowest set bit cleared, so the build costs one row-OR per entry.
// Requires block.Height() ≤ MaxBlockSize.
// Complexity: O(2^w · n/64) time and space.
func buildLookupTable(block *BitMatrix) *lookupTable {
	t := &lookupTable{
		patternBits: block.r,
		width:       block.c,
		stride:      block.stride,
		rows:        make([]uint64, (1<<uint(block.r))*block.stride),
	}

	size := 1 << uint(block.r)
	var (
		p, x           int
		lowestBit      int
		prev, src, dst []uint64
	)
	for p = 1; p < size; p++ {
		lowestBit = bits.TrailingZeros(uint(p))
		prev = t.entry(p & (p - 1)) // p without its lowest set bit
		src = block.row(lowestBit)
		dst = t.entry(p)
		for x = range dst {
			dst[x] = prev[x] | src[x]
		}
	}

	return t
}

// entry returns the words of table[p] (shared, internal use only).
func (t *lookupTable) entry(p int) []uint64 {
	base := p * t.stride

	return t.rows[base : base+t.stride]
}

// multiply returns block × B-block by table lookup: row i of the result is
// table[pattern of block row i]. block must be h×patternBits with
// patternBits ≤ 64, so each row pattern fits in its single word.
// Complexity: O(h · n/64).
func (t *lookupTable) multiply(block *BitMatrix) *BitMatrix {
	res := newZeroed(block.r, t.width)
	for i := 0; i < block.r; i++ {
		copy(res.row(i), t.entry(int(block.data[i*block.stride])))
	}

	return res
}

// blockWidth resolves the block width for operand size n.
// configured == 0 ⇒ floor(log2 n). The result lies in [1, min(n, MaxBlockSize)].
func blockWidth(n, configured int) int {
	w := configured
	if w == 0 {
		w = bits.Len(uint(n)) - 1 // floor(log2 n)
	}
	if w > MaxBlockSize {
		w = MaxBlockSize
	}
	if w > n {
		w = n
	}
	if w < 1 {
		w = 1
	}

	return w
}

// blockRange returns the half-open span of block k for width w over [0,n).
func blockRange(k, w, n int) Range {
	from := k * w
	to := from + w
	if to > n {
		to = n // last block absorbs the remainder
	}

	return Span(from, to)
}

// MulFourRussians returns the Boolean product a × b computed with the Four
// Russians block-table method.
// MAIN DESCRIPTION:
//   - Same result as Mul; asymptotically fewer word operations.
//
// Implementation:
//   - Stage 1: validate non-nil square operands of identical size.
//   - Stage 2: n == 1 ⇒ delegate to Mul.
//   - Stage 3: per block, SubMatrix + FillZeros both operands, build the
//     lookup table and derive the partial product.
//   - Stage 4: accumulate partial products with Add and return the sum.
//
// Inputs:
//   - a, b: square n×n operands.
//   - opts: WithBlockSize overrides the default floor(log2 n) width.
//
// Errors:
//   - ErrNilMatrix, ErrDimensionMismatch (raised before any block work).
//
// Determinism:
//   - Fixed block order k = 0..m-1; OR accumulation is order-independent.
//
// Complexity:
//   - Time O(m·(2^w + n)·n/64), Space O(2^w·n/64 + n²/64).
func MulFourRussians(a, b *BitMatrix, opts ...Option) (*BitMatrix, error) {
	// Stage 1: Validate
	if err := ValidateSquarePair(a, b); err != nil {
		return nil, opErrorf(opMulFourRussians, err)
	}

	// Stage 2: degenerate size
	n := a.r
	if n == 1 {
		return Mul(a, b)
	}

	// Stage 3 + 4: block decomposition and accumulation
	o := gatherOptions(opts...)
	w := blockWidth(n, o.blockSize)
	blocks := (n + w - 1) / w
	all := Span(0, n)

	res := newZeroed(n, n)
	var (
		k            int
		span         Range
		aPart, bPart *BitMatrix
		err          error
	)
	for k = 0; k < blocks; k++ {
		span = blockRange(k, w, n)

		if aPart, err = a.SubMatrix(all, span); err != nil {
			return nil, blockErrorf(k, err)
		}
		if aPart, err = aPart.FillZeros(n, w); err != nil {
			return nil, blockErrorf(k, err)
		}
		if bPart, err = b.SubMatrix(span, all); err != nil {
			return nil, blockErrorf(k, err)
		}
		if bPart, err = bPart.FillZeros(w, n); err != nil {
			return nil, blockErrorf(k, err)
		}

		partial := buildLookupTable(bPart).multiply(aPart)
		if res, err = Add(res, partial); err != nil {
			return nil, blockErrorf(k, err)
		}
	}

	return res, nil
}

// blockErrorf tags an internal failure with the block index.
func blockErrorf(k int, err error) error {
	return fmt.Errorf("%s: block %d: %w", opMulFourRussians, k, err)
}
