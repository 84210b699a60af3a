package cli

import (
	"fmt"

	"github.com/katalvlaran/boolmat/bitmatrix"
)

// blockSizeOptions turns the --block-size flag into multiplier options.
// 0 keeps the default floor(log2 n) width.
func blockSizeOptions(size int) ([]bitmatrix.Option, error) {
	if size == 0 {
		return nil, nil
	}
	if size < 1 || size > bitmatrix.MaxBlockSize {
		return nil, fmt.Errorf("--block-size must be 0 or in [1, %d], got %d", bitmatrix.MaxBlockSize, size)
	}

	return []bitmatrix.Option{bitmatrix.WithBlockSize(size)}, nil
}
