package cli

import (
	"errors"
	"fmt"
	"log/slog"
	"math/rand"
	"time"

	"github.com/fatih/color"
	"github.com/katalvlaran/boolmat/bitmatrix"
	"github.com/spf13/cobra"
)

// ErrProductsDiffer is returned by verify when any random pair disagrees.
var ErrProductsDiffer = errors.New("four russians product differs from standard product")

// verifyConfig holds the verify flags.
type verifyConfig struct {
	size      int
	count     int
	seed      int64
	density   float64
	blockSize int
}

func (c verifyConfig) validate() error {
	if c.size < 1 {
		return fmt.Errorf("--size must be >= 1, got %d", c.size)
	}
	if c.count < 1 {
		return fmt.Errorf("--count must be >= 1, got %d", c.count)
	}
	if c.density < 0 || c.density > 1 {
		return fmt.Errorf("--density must be in [0, 1], got %g", c.density)
	}

	return nil
}

func NewVerifyCommand() *cobra.Command {
	cfg := verifyConfig{}

	cmd := &cobra.Command{
		Use:   "verify",
		Short: "Cross-check Four Russians against the standard product",
		Long: `Generate random square pairs and check that the Four Russians product
equals the standard product for each of them. Generation is deterministic
for a given --seed.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if err := cfg.validate(); err != nil {
				return err
			}
			opts, err := blockSizeOptions(cfg.blockSize)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			green := color.New(color.FgGreen)
			red := color.New(color.FgRed, color.Bold)
			yellow := color.New(color.FgYellow, color.Bold)

			rng := rand.New(rand.NewSource(cfg.seed))
			failures := 0
			var stdTotal, fastTotal time.Duration
			for i := 0; i < cfg.count; i++ {
				a := randomSquare(rng, cfg.size, cfg.density)
				b := randomSquare(rng, cfg.size, cfg.density)

				start := time.Now()
				std, err := bitmatrix.Mul(a, b)
				if err != nil {
					return err
				}
				stdTotal += time.Since(start)

				start = time.Now()
				fast, err := bitmatrix.MulFourRussians(a, b, opts...)
				if err != nil {
					return err
				}
				fastTotal += time.Since(start)

				if std.Equal(fast) {
					green.Fprintf(out, "✓ pair %d (n=%d)\n", i+1, cfg.size)
					continue
				}
				failures++
				red.Fprintf(out, "✗ pair %d (n=%d)\n", i+1, cfg.size)
				slog.Debug("mismatch", "pair", i+1, "a", a.String(), "b", b.String())
			}

			slog.Debug("verify finished",
				"size", cfg.size,
				"count", cfg.count,
				"standard_total", stdTotal,
				"four_russians_total", fastTotal,
			)

			fmt.Fprintln(out)
			if failures > 0 {
				red.Fprintf(out, "%d of %d pairs differ\n", failures, cfg.count)
				return fmt.Errorf("%d pairs: %w", failures, ErrProductsDiffer)
			}
			yellow.Fprintf(out, "All %d pairs agree\n", cfg.count)

			return nil
		},
	}

	cmd.Flags().IntVarP(&cfg.size, "size", "n", 64, "Matrix size n (square n×n operands)")
	cmd.Flags().IntVarP(&cfg.count, "count", "c", 10, "Number of random pairs")
	cmd.Flags().Int64Var(&cfg.seed, "seed", 1, "Random seed")
	cmd.Flags().Float64Var(&cfg.density, "density", 0.5, "Probability of a true cell")
	cmd.Flags().IntVar(&cfg.blockSize, "block-size", 0, "Four Russians block width (0 = floor(log2 n))")

	return cmd
}

// randomSquare builds an n×n matrix with cells true with probability density.
func randomSquare(rng *rand.Rand, n int, density float64) *bitmatrix.BitMatrix {
	m, _ := bitmatrix.NewFunc(n, n, func(_, _ int) bool { return rng.Float64() < density }) // n ≥ 1 validated

	return m
}
