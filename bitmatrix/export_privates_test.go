// SPDX-License-Identifier: MIT

package bitmatrix

// Test-Bridge (White-Box) for private kernels.
//
// Purpose:
//   - Expose the UNEXPORTED lookup-table kernel and block geometry helpers to
//     bitmatrix_test ONLY, without widening the production API.
//   - Compiled only with the package tests (file ends in _test.go).

var (
	// BlockWidth_TestOnly exposes blockWidth.
	BlockWidth_TestOnly = blockWidth
	// BlockRange_TestOnly exposes blockRange.
	BlockRange_TestOnly = blockRange
)

// PanicBlockSizeInvalid_TestOnly exports the WithBlockSize panic message.
const PanicBlockSizeInvalid_TestOnly = panicBlockSizeInvalid

// LookupTableEntries_TestOnly builds the table for block and returns every
// entry as a 1×Width() matrix, indexed by pattern.
func LookupTableEntries_TestOnly(block *BitMatrix) []*BitMatrix {
	t := buildLookupTable(block)
	out := make([]*BitMatrix, 1<<uint(t.patternBits))
	for p := range out {
		m := newZeroed(1, t.width)
		copy(m.row(0), t.entry(p))
		out[p] = m
	}

	return out
}

// LookupMultiply_TestOnly multiplies the n×w pattern block by the w×n block
// through the lookup table.
func LookupMultiply_TestOnly(patterns, block *BitMatrix) *BitMatrix {
	return buildLookupTable(block).multiply(patterns)
}

// Words_TestOnly returns a copy of the packed storage (canonical-form checks).
func Words_TestOnly(m *BitMatrix) (stride int, data []uint64) {
	data = make([]uint64, len(m.data))
	copy(data, m.data)

	return m.stride, data
}

// SharesStorage_TestOnly reports whether a and b alias the same buffer.
func SharesStorage_TestOnly(a, b *BitMatrix) bool {
	return len(a.data) > 0 && len(b.data) > 0 && &a.data[0] == &b.data[0]
}
