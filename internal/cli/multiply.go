package cli

import (
	"fmt"
	"log/slog"
	"time"

	"github.com/fatih/color"
	"github.com/katalvlaran/boolmat/bitmatrix"
	"github.com/spf13/cobra"
)

const (
	algoStandard     = "standard"
	algoFourRussians = "four-russians"
	algoBoth         = "both"
)

func NewMultiplyCommand() *cobra.Command {
	var (
		aLit, bLit string
		algo       string
		blockSize  int
	)

	cmd := &cobra.Command{
		Use:   "multiply",
		Short: "Multiply two Boolean matrices",
		Long: `Multiply A × B over the Boolean semiring and print the product.

--algo selects the algorithm: standard, four-russians (square operands only)
or both, which prints both products and whether they agree.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			a, err := ParseMatrix(aLit)
			if err != nil {
				return fmt.Errorf("--a: %w", err)
			}
			b, err := ParseMatrix(bLit)
			if err != nil {
				return fmt.Errorf("--b: %w", err)
			}
			opts, err := blockSizeOptions(blockSize)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			cyan := color.New(color.FgCyan, color.Bold)

			switch algo {
			case algoStandard:
				p, err := timedProduct(algoStandard, a, b, nil)
				if err != nil {
					return err
				}
				fmt.Fprintln(out, p)
			case algoFourRussians:
				p, err := timedProduct(algoFourRussians, a, b, opts)
				if err != nil {
					return err
				}
				fmt.Fprintln(out, p)
			case algoBoth:
				std, err := timedProduct(algoStandard, a, b, nil)
				if err != nil {
					return err
				}
				fast, err := timedProduct(algoFourRussians, a, b, opts)
				if err != nil {
					return err
				}
				cyan.Fprintln(out, "standard:")
				fmt.Fprintln(out, std)
				cyan.Fprintln(out, "four-russians:")
				fmt.Fprintln(out, fast)
				printVerdict(out, std.Equal(fast))
			default:
				return fmt.Errorf("unknown --algo %q (want %s, %s or %s)", algo, algoStandard, algoFourRussians, algoBoth)
			}

			return nil
		},
	}

	cmd.Flags().StringVar(&aLit, "a", "", "Left operand literal, e.g. \"1,0;1,1\"")
	cmd.Flags().StringVar(&bLit, "b", "", "Right operand literal")
	cmd.Flags().StringVar(&algo, "algo", algoBoth, "Algorithm: standard, four-russians or both")
	cmd.Flags().IntVar(&blockSize, "block-size", 0, "Four Russians block width (0 = floor(log2 n))")
	_ = cmd.MarkFlagRequired("a")
	_ = cmd.MarkFlagRequired("b")

	return cmd
}

// timedProduct runs one algorithm and logs its duration at debug level.
func timedProduct(algo string, a, b *bitmatrix.BitMatrix, opts []bitmatrix.Option) (*bitmatrix.BitMatrix, error) {
	start := time.Now()

	var (
		p   *bitmatrix.BitMatrix
		err error
	)
	if algo == algoFourRussians {
		p, err = bitmatrix.MulFourRussians(a, b, opts...)
	} else {
		p, err = bitmatrix.Mul(a, b)
	}
	if err != nil {
		return nil, fmt.Errorf("%s product: %w", algo, err)
	}

	slog.Debug("product computed",
		"algo", algo,
		"a_height", a.Height(), "a_width", a.Width(),
		"b_height", b.Height(), "b_width", b.Width(),
		"elapsed", time.Since(start),
	)

	return p, nil
}
