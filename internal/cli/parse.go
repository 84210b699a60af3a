package cli

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/katalvlaran/boolmat/bitmatrix"
)

// ParseMatrix reads a matrix literal: rows separated by ';' or newlines,
// cells separated by ',' or whitespace, every cell 0 or 1.
//
//	"1,0;1,1"  "1 0; 1 1"
func ParseMatrix(literal string) (*bitmatrix.BitMatrix, error) {
	lines := strings.FieldsFunc(literal, func(r rune) bool { return r == ';' || r == '\n' })

	var rows [][]int
	for i, line := range lines {
		if strings.TrimSpace(line) == "" {
			continue
		}
		fields := strings.FieldsFunc(line, func(r rune) bool { return r == ',' || r == ' ' || r == '\t' })
		row := make([]int, 0, len(fields))
		for _, f := range fields {
			v, err := strconv.Atoi(f)
			if err != nil {
				return nil, fmt.Errorf("row %d: invalid cell %q", i, f)
			}
			row = append(row, v)
		}
		rows = append(rows, row)
	}

	m, err := bitmatrix.NewFromInts(rows)
	if err != nil {
		return nil, fmt.Errorf("parse matrix: %w", err)
	}

	return m, nil
}
