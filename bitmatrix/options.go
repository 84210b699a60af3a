// SPDX-License-Identifier: MIT

// Package bitmatrix: functional configuration for the multipliers.
// This file defines:
//   - Option / Options (functional options with internal state),
//   - documented defaults (constants),
//   - WithX constructors with strong validation (panic on nonsensical values),
//   - gatherOptions helper (internal) that applies setters over defaults.
//
// Design goals:
//   - Deterministic behavior: no global state, no implicit randomness.
//   - Safe by construction: panic only on invalid parameters (programmer error).
//   - Options fields are unexported; public APIs consume ...Option.
package bitmatrix

// ---------- Defaults (single source of truth) ----------

const (
	// DefaultBlockSize selects the Four Russians block width.
	// 0 means "derive from n": floor(log2 n).
	DefaultBlockSize = 0

	// MaxBlockSize bounds the block width, and therefore the lookup table
	// size 2^w, for explicit WithBlockSize values.
	MaxBlockSize = 16

	// DefaultUseFourRussians makes Power and TransitiveClosure square with
	// MulFourRussians. false ⇒ the standard Mul is used.
	DefaultUseFourRussians = true
)

const panicBlockSizeInvalid = "bitmatrix: WithBlockSize: size must be in [1, MaxBlockSize]"

// Option mutates internal options. Safe to apply repeatedly.
type Option func(*Options)

// Options stores the effective configuration after applying Option setters.
type Options struct {
	blockSize       int  // 0 ⇒ floor(log2 n); else fixed width in [1, MaxBlockSize]
	useFourRussians bool // multiplier used by Power / TransitiveClosure
}

// WithBlockSize fixes the Four Russians block width to w.
// Implementation:
//   - Stage 1: validate 1 ≤ w ≤ MaxBlockSize.
//   - Stage 2: return a setter writing w into Options.
//
// Behavior highlights:
//   - A width larger than the operand size n is clamped to n at call time.
//   - The lookup table holds 2^w rows; keep w small for large n.
//
// Errors:
//   - Panics with a stable message when w is out of range.
//
// Complexity:
//   - Time O(1), Space O(1).
func WithBlockSize(w int) Option {
	if w < 1 || w > MaxBlockSize {
		panic(panicBlockSizeInvalid)
	}

	return func(o *Options) { o.blockSize = w }
}

// WithStandardMultiplier makes Power and TransitiveClosure use Mul.
func WithStandardMultiplier() Option {
	return func(o *Options) { o.useFourRussians = false }
}

// WithFourRussiansMultiplier makes Power and TransitiveClosure use
// MulFourRussians (the default).
func WithFourRussiansMultiplier() Option {
	return func(o *Options) { o.useFourRussians = true }
}

// gatherOptions applies user-provided setters on top of the defaults.
// Last writer wins. Complexity: O(len(user)).
func gatherOptions(user ...Option) Options {
	o := Options{
		blockSize:       DefaultBlockSize,
		useFourRussians: DefaultUseFourRussians,
	}
	for _, set := range user {
		if set != nil {
			set(&o) // apply in order; last-writer-wins semantics
		}
	}

	return o
}

// BlockSize reports the configured block width (0 = derived from n).
func (o Options) BlockSize() int { return o.blockSize }

// UseFourRussians reports whether closure helpers square with MulFourRussians.
func (o Options) UseFourRussians() bool { return o.useFourRussians }

// NewOptions resolves opts into an Options snapshot (read-only accessors).
func NewOptions(opts ...Option) Options {
	return gatherOptions(opts...)
}
