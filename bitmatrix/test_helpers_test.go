// SPDX-License-Identifier: MIT
// Package bitmatrix_test contains test helpers.
//
// Purpose:
//   - Provide small, deterministic fixtures and utilities for kernels.

package bitmatrix_test

import (
	"math/rand"
	"os"
	"strconv"
	"strings"
	"testing"

	"github.com/katalvlaran/boolmat/bitmatrix"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

// MustInts BUILDS a matrix from 0/1 rows or fails the test.
func MustInts(t testing.TB, rows [][]int) *bitmatrix.BitMatrix {
	t.Helper()
	m, err := bitmatrix.NewFromInts(rows)
	require.NoError(t, err)

	return m
}

// MustRows BUILDS a matrix from rows written as space-separated 0/1 tokens,
// the same layout String() produces.
func MustRows(t testing.TB, rows []string) *bitmatrix.BitMatrix {
	t.Helper()
	grid := make([][]int, len(rows))
	for i, line := range rows {
		for _, tok := range strings.Fields(line) {
			v, err := strconv.Atoi(tok)
			require.NoError(t, err, "row %d token %q", i, tok)
			grid[i] = append(grid[i], v)
		}
	}

	return MustInts(t, grid)
}

// RandomMatrix BUILDS an r×c matrix with cells true with probability density,
// deterministic for a fixed rng.
func RandomMatrix(t testing.TB, rng *rand.Rand, r, c int, density float64) *bitmatrix.BitMatrix {
	t.Helper()
	m, err := bitmatrix.NewFunc(r, c, func(_, _ int) bool { return rng.Float64() < density })
	require.NoError(t, err)

	return m
}

// MustMul RETURNS Mul(a, b) or fails the test.
func MustMul(t testing.TB, a, b *bitmatrix.BitMatrix) *bitmatrix.BitMatrix {
	t.Helper()
	p, err := bitmatrix.Mul(a, b)
	require.NoError(t, err)

	return p
}

// MustAdd RETURNS Add(a, b) or fails the test.
func MustAdd(t testing.TB, a, b *bitmatrix.BitMatrix) *bitmatrix.BitMatrix {
	t.Helper()
	s, err := bitmatrix.Add(a, b)
	require.NoError(t, err)

	return s
}

// RequireSameMatrix asserts structural equality with a readable diff.
func RequireSameMatrix(t testing.TB, want, got *bitmatrix.BitMatrix) {
	t.Helper()
	require.NotNil(t, got)
	require.Truef(t, want.Equal(got), "want:\n%s\ngot:\n%s", want, got)
}

// scenario is one golden product case from testdata/scenarios.yaml.
type scenario struct {
	Name    string   `yaml:"name"`
	A       []string `yaml:"a"`
	B       []string `yaml:"b"`
	Product []string `yaml:"product"`
}

// scenarioFile is the top-level layout of testdata/scenarios.yaml.
type scenarioFile struct {
	Scenarios []scenario `yaml:"scenarios"`
}

// LoadScenarios READS the golden product scenarios.
func LoadScenarios(t testing.TB) []scenario {
	t.Helper()
	raw, err := os.ReadFile("testdata/scenarios.yaml")
	require.NoError(t, err)

	var f scenarioFile
	require.NoError(t, yaml.Unmarshal(raw, &f))
	require.NotEmpty(t, f.Scenarios)

	return f.Scenarios
}
