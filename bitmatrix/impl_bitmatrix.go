// SPDX-License-Identifier: MIT

// Package bitmatrix - BitMatrix storage (row-major, word-packed) & safe accessors.
//
// Purpose:
//   - Provide a cache-friendly row-major buffer: each row occupies `stride`
//     uint64 words, column j lives at bit j%64 of word j/64.
//   - Guarantee safety at the public surface: At/SubMatrix/FillZeros return
//     errors instead of panicking.
//   - Keep the canonical form: bits past Width() in the last word of a row are
//     always zero, so word-level Equal/Hash are content-based.
//   - Immutable value semantics: there is no exported mutator; every derived
//     matrix owns a fresh buffer.
//
// Complexity quicksheet:
//   - New/NewFunc: O(r*c); At/AtOrZero: O(1); SubMatrix: O(r'*c'/64);
//     FillZeros: O(r*c/64); Equal: O(r*c/64); Hash: O(r*c/64).

package bitmatrix

import (
	"encoding/binary"
	"fmt"
	"hash/fnv"
	"math/bits"
	"strings"
)

// ---------- word geometry ----------

const (
	wordBits     = 64 // bits per storage word
	log2WordBits = 6  // log2(wordBits)
	wordMask     = wordBits - 1
)

// ---------- error context tags ----------

const (
	ctxAt        = "At"
	ctxRow       = "Row"
	ctxNew       = "New"
	ctxNewInts   = "NewFromInts"
	ctxNewFunc   = "NewFunc"
	ctxSub       = "SubMatrix"
	ctxFillZeros = "FillZeros"
)

// ---------- formatting literals ----------

const (
	_fmtZero   = "0"
	_fmtOne    = "1"
	_fmtSep    = " "
	_fmtRowEnd = "\n"
)

// wordsFor returns the number of words needed for a row of cols bits.
func wordsFor(cols int) int {
	return (cols + wordMask) >> log2WordBits
}

// tailMask returns the mask of valid bits in the last word of a row of cols bits.
func tailMask(cols int) uint64 {
	if rem := cols & wordMask; rem != 0 {
		return (uint64(1) << uint(rem)) - 1
	}

	return ^uint64(0)
}

// BitMatrix is an immutable dense Boolean matrix.
//   - r,c hold dimensions (height, width), both ≥ 1 for public values.
//   - stride is the number of words per row, wordsFor(c).
//   - data is a flat buffer of length r*stride in row-major order.
type BitMatrix struct {
	r, c   int      // height and width
	stride int      // words per row
	data   []uint64 // row-major packed bits, canonical zero tails
}

// Compile-time assertion for fmt.Stringer conformance.
var _ fmt.Stringer = (*BitMatrix)(nil)

// newZeroed allocates an r×c all-false matrix. Callers validate the shape.
// Complexity: O(r*c/64).
func newZeroed(rows, cols int) *BitMatrix {
	stride := wordsFor(cols)

	return &BitMatrix{
		r:      rows,
		c:      cols,
		stride: stride,
		data:   make([]uint64, rows*stride),
	}
}

// row returns the word slice backing row i (shared, internal use only).
func (m *BitMatrix) row(i int) []uint64 {
	base := i * m.stride

	return m.data[base : base+m.stride]
}

// get reads (i,j) without bounds checks.
func (m *BitMatrix) get(i, j int) bool {
	return (m.data[i*m.stride+(j>>log2WordBits)]>>(uint(j)&wordMask))&1 == 1
}

// set raises (i,j) without bounds checks. Only used while building a fresh
// matrix that has not escaped yet.
func (m *BitMatrix) set(i, j int) {
	m.data[i*m.stride+(j>>log2WordBits)] |= uint64(1) << (uint(j) & wordMask)
}

// clone returns a deep copy.
func (m *BitMatrix) clone() *BitMatrix {
	cp := make([]uint64, len(m.data))
	copy(cp, m.data)

	return &BitMatrix{r: m.r, c: m.c, stride: m.stride, data: cp}
}

// New builds a matrix from explicit rows of booleans.
// MAIN DESCRIPTION:
//   - Public constructor from literal row data with rectangularity check.
//
// Implementation:
//   - Stage 1: reject an empty grid or an empty first row.
//   - Stage 2: verify that every row has exactly len(rows[0]) cells.
//   - Stage 3: pack cells into words.
//
// Errors:
//   - ErrBadShape (empty grid or ragged rows).
//
// Complexity:
//   - Time O(r*c), Space O(r*c/64).
func New(rows [][]bool) (*BitMatrix, error) {
	if len(rows) == 0 || len(rows[0]) == 0 {
		return nil, opErrorf(ctxNew, ErrBadShape)
	}
	width := len(rows[0])
	for i := range rows {
		if len(rows[i]) != width {
			return nil, fmt.Errorf("%s: row %d has %d cells, want %d: %w", ctxNew, i, len(rows[i]), width, ErrBadShape)
		}
	}

	m := newZeroed(len(rows), width)
	var i, j int
	for i = 0; i < m.r; i++ {
		for j = 0; j < width; j++ {
			if rows[i][j] {
				m.set(i, j)
			}
		}
	}

	return m, nil
}

// NewFromInts builds a matrix from rows of 0/1 integers.
// Any value other than 0 or 1 is rejected with ErrNotBinary; shape rules
// are the same as New.
// Complexity: O(r*c).
func NewFromInts(rows [][]int) (*BitMatrix, error) {
	if len(rows) == 0 || len(rows[0]) == 0 {
		return nil, opErrorf(ctxNewInts, ErrBadShape)
	}
	width := len(rows[0])
	for i := range rows {
		if len(rows[i]) != width {
			return nil, fmt.Errorf("%s: row %d has %d cells, want %d: %w", ctxNewInts, i, len(rows[i]), width, ErrBadShape)
		}
	}

	m := newZeroed(len(rows), width)
	var i, j int
	for i = 0; i < m.r; i++ {
		for j = 0; j < width; j++ {
			switch rows[i][j] {
			case 0:
			case 1:
				m.set(i, j)
			default:
				return nil, fmt.Errorf("%s: cell (%d,%d)=%d: %w", ctxNewInts, i, j, rows[i][j], ErrNotBinary)
			}
		}
	}

	return m, nil
}

// NewFunc builds a height×width matrix whose cell (i,j) is gen(i,j).
// MAIN DESCRIPTION:
//   - Generator-based construction; gen is called exactly once per cell.
//
// Implementation:
//   - Stage 1: validate height ≥ 1, width ≥ 1 and gen != nil.
//   - Stage 2: evaluate gen in row-major order and pack the result.
//
// Behavior highlights:
//   - gen must be pure; the evaluation order is not part of the contract.
//
// Errors:
//   - ErrBadShape, ErrNilGenerator.
//
// Complexity:
//   - Time O(r*c) calls, Space O(r*c/64).
func NewFunc(height, width int, gen func(i, j int) bool) (*BitMatrix, error) {
	if height < 1 || width < 1 {
		return nil, fmt.Errorf("%s(%d,%d): %w", ctxNewFunc, height, width, ErrBadShape)
	}
	if gen == nil {
		return nil, opErrorf(ctxNewFunc, ErrNilGenerator)
	}

	m := newZeroed(height, width)
	var i, j int
	for i = 0; i < height; i++ {
		for j = 0; j < width; j++ {
			if gen(i, j) {
				m.set(i, j)
			}
		}
	}

	return m, nil
}

// NewZeros returns the height×width all-false matrix (additive identity).
func NewZeros(height, width int) (*BitMatrix, error) {
	if height < 1 || width < 1 {
		return nil, fmt.Errorf("NewZeros(%d,%d): %w", height, width, ErrBadShape)
	}

	return newZeroed(height, width), nil
}

// NewOnes returns the height×width all-true matrix.
func NewOnes(height, width int) (*BitMatrix, error) {
	if height < 1 || width < 1 {
		return nil, fmt.Errorf("NewOnes(%d,%d): %w", height, width, ErrBadShape)
	}
	m := newZeroed(height, width)
	last := tailMask(width)
	for i := 0; i < height; i++ {
		row := m.row(i)
		for x := range row {
			row[x] = ^uint64(0)
		}
		row[len(row)-1] = last // keep the tail canonical
	}

	return m, nil
}

// NewIdentity returns I_n (true on the diagonal, false elsewhere), the
// multiplicative identity of the Boolean semiring.
func NewIdentity(n int) (*BitMatrix, error) {
	if n < 1 {
		return nil, fmt.Errorf("NewIdentity(%d): %w", n, ErrBadShape)
	}
	m := newZeroed(n, n)
	for i := 0; i < n; i++ {
		m.set(i, i)
	}

	return m, nil
}

// Height returns the number of rows. Complexity: O(1).
func (m *BitMatrix) Height() int { return m.r }

// Width returns the number of columns. Complexity: O(1).
func (m *BitMatrix) Width() int { return m.c }

// Shape packs Height() and Width() into a single call.
func (m *BitMatrix) Shape() (height, width int) { return m.r, m.c }

// IsSquare reports whether Height() == Width().
func (m *BitMatrix) IsSquare() bool { return m.r == m.c }

// inBounds reports whether (i,j) addresses a cell.
func (m *BitMatrix) inBounds(i, j int) bool {
	return i >= 0 && i < m.r && j >= 0 && j < m.c
}

// At returns the cell at (i, j) or ErrOutOfRange.
// MAIN DESCRIPTION:
//   - Safe element read at coordinates.
//
// Errors:
//   - ErrOutOfRange (alias ErrIndexOutOfBounds) when i ∉ [0,Height) or j ∉ [0,Width).
//
// Complexity:
//   - Time O(1), Space O(1).
func (m *BitMatrix) At(i, j int) (bool, error) {
	if !m.inBounds(i, j) {
		return false, atErrorf(ctxAt, i, j, ErrOutOfRange)
	}

	return m.get(i, j), nil
}

// AtOrZero returns the cell at (i, j), or false when (i, j) is outside the
// matrix. It never fails; out-of-range cells read as zero by contract.
func (m *BitMatrix) AtOrZero(i, j int) bool {
	if !m.inBounds(i, j) {
		return false
	}

	return m.get(i, j)
}

// Row returns a copy of row i as booleans.
func (m *BitMatrix) Row(i int) ([]bool, error) {
	if i < 0 || i >= m.r {
		return nil, atErrorf(ctxRow, i, 0, ErrOutOfRange)
	}
	out := make([]bool, m.c)
	for j := range out {
		out[j] = m.get(i, j)
	}

	return out, nil
}

// ToBools exports the content as a fresh [][]bool.
func (m *BitMatrix) ToBools() [][]bool {
	out := make([][]bool, m.r)
	for i := range out {
		out[i], _ = m.Row(i) // i is in range
	}

	return out
}

// ToInts exports the content as a fresh [][]int of 0/1 values.
func (m *BitMatrix) ToInts() [][]int {
	out := make([][]int, m.r)
	var i, j int
	for i = 0; i < m.r; i++ {
		out[i] = make([]int, m.c)
		for j = 0; j < m.c; j++ {
			if m.get(i, j) {
				out[i][j] = 1
			}
		}
	}

	return out
}

// Count returns the number of true cells.
// Complexity: O(r*c/64) popcounts.
func (m *BitMatrix) Count() int {
	n := 0
	for _, w := range m.data {
		n += bits.OnesCount64(w)
	}

	return n
}

// Transpose returns mᵀ as a new Width()×Height() matrix.
// Complexity: O(r*c).
func (m *BitMatrix) Transpose() *BitMatrix {
	t := newZeroed(m.c, m.r)
	var i, j int
	for i = 0; i < m.r; i++ {
		for j = 0; j < m.c; j++ {
			if m.get(i, j) {
				t.set(j, i)
			}
		}
	}

	return t
}

// Range is a half-open index interval [From, To).
type Range struct {
	From int // first index, inclusive
	To   int // last index, exclusive
}

// Span returns the half-open range [from, to).
func Span(from, to int) Range { return Range{From: from, To: to} }

// Len returns the number of indices covered by r (negative when inverted).
func (r Range) Len() int { return r.To - r.From }

// String renders r as "[From,To)".
func (r Range) String() string { return fmt.Sprintf("[%d,%d)", r.From, r.To) }

// checkRange validates r against a dimension of size limit.
func checkRange(r Range, limit int) error {
	if r.From < 0 || r.To > limit {
		return ErrOutOfRange
	}
	if r.Len() <= 0 {
		return ErrBadShape
	}

	return nil
}

// extractBits copies n bits starting at bit offset from of src into dst,
// starting at bit 0, and clears dst's tail bits past n.
// len(dst) must be wordsFor(n); src must hold bits [from, from+n).
func extractBits(dst, src []uint64, from, n int) {
	var k, w, word, shift int
	var v uint64
	for k = 0; k < len(dst); k++ {
		w = from + k*wordBits
		word = w >> log2WordBits
		shift = w & wordMask
		v = src[word] >> uint(shift)
		if shift != 0 && word+1 < len(src) {
			v |= src[word+1] << uint(wordBits-shift)
		}
		dst[k] = v
	}
	dst[len(dst)-1] &= tailMask(n)
}

// SubMatrix materializes the contiguous block rows×cols as a new matrix.
// MAIN DESCRIPTION:
//   - Copy-based extraction; the result has no back-reference to m.
//
// Implementation:
//   - Stage 1: validate both ranges against the matrix bounds.
//   - Stage 2: allocate the rows.Len()×cols.Len() result.
//   - Stage 3: copy each selected row with word-level bit extraction.
//
// Errors:
//   - ErrOutOfRange when a range exceeds the matrix bounds.
//   - ErrBadShape when a range is empty or inverted.
//
// Complexity:
//   - Time O(r'*c'/64), Space O(r'*c'/64).
func (m *BitMatrix) SubMatrix(rows, cols Range) (*BitMatrix, error) {
	if err := checkRange(rows, m.r); err != nil {
		return nil, fmt.Errorf("BitMatrix.%s(rows=%s): %w", ctxSub, rows, err)
	}
	if err := checkRange(cols, m.c); err != nil {
		return nil, fmt.Errorf("BitMatrix.%s(cols=%s): %w", ctxSub, cols, err)
	}

	res := newZeroed(rows.Len(), cols.Len())
	for i := 0; i < res.r; i++ {
		extractBits(res.row(i), m.row(rows.From+i), cols.From, res.c)
	}

	return res, nil
}

// FillZeros returns a height×width matrix holding m in its top-left corner
// and false everywhere else.
// MAIN DESCRIPTION:
//   - Zero-padding used to give decomposition blocks a uniform geometry.
//
// Implementation:
//   - Stage 1: reject targets smaller than m in either dimension.
//   - Stage 2: same shape ⇒ independent copy of m.
//   - Stage 3: allocate the target and copy each source row word-wise.
//
// Behavior highlights:
//   - Never truncates: shrinking is an error, not a silent drop of data.
//   - Source tails are canonical (zero), so a plain word copy pads with false.
//
// Errors:
//   - ErrBadShape when height < Height() or width < Width().
//
// Complexity:
//   - Time O(height*width/64), Space O(height*width/64).
func (m *BitMatrix) FillZeros(height, width int) (*BitMatrix, error) {
	if height < m.r || width < m.c {
		return nil, fmt.Errorf("BitMatrix.%s(%d,%d) on %dx%d: %w", ctxFillZeros, height, width, m.r, m.c, ErrBadShape)
	}
	if height == m.r && width == m.c {
		return m.clone(), nil
	}

	res := newZeroed(height, width)
	for i := 0; i < m.r; i++ {
		copy(res.row(i), m.row(i))
	}

	return res, nil
}

// Equal reports structural equality: same shape and identical cells.
// Two nil matrices are equal; a nil and a non-nil matrix are not.
// Complexity: O(r*c/64).
func (m *BitMatrix) Equal(other *BitMatrix) bool {
	if m == nil || other == nil {
		return m == other
	}
	if m.r != other.r || m.c != other.c {
		return false
	}
	for x := range m.data {
		if m.data[x] != other.data[x] {
			return false
		}
	}

	return true
}

// Hash returns a content-based 64-bit FNV-1a hash consistent with Equal.
// Complexity: O(r*c/64).
func (m *BitMatrix) Hash() uint64 {
	h := fnv.New64a()
	var buf [8]byte
	binary.LittleEndian.PutUint64(buf[:], uint64(m.r))
	_, _ = h.Write(buf[:])
	binary.LittleEndian.PutUint64(buf[:], uint64(m.c))
	_, _ = h.Write(buf[:])
	for _, w := range m.data {
		binary.LittleEndian.PutUint64(buf[:], w)
		_, _ = h.Write(buf[:])
	}

	return h.Sum64()
}

// String renders rows of space-separated 0/1 tokens, one row per line,
// without a trailing newline. Intended for debugging and golden tests only.
// Complexity: O(r*c).
func (m *BitMatrix) String() string {
	var b strings.Builder
	b.Grow(m.r * m.c * 2)
	var i, j int
	for i = 0; i < m.r; i++ {
		if i > 0 {
			b.WriteString(_fmtRowEnd)
		}
		for j = 0; j < m.c; j++ {
			if j > 0 {
				b.WriteString(_fmtSep)
			}
			if m.get(i, j) {
				b.WriteString(_fmtOne)
			} else {
				b.WriteString(_fmtZero)
			}
		}
	}

	return b.String()
}
