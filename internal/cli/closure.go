package cli

import (
	"fmt"
	"log/slog"

	"github.com/katalvlaran/boolmat/bitmatrix"
	"github.com/spf13/cobra"
)

func NewClosureCommand() *cobra.Command {
	var (
		aLit      string
		standard  bool
		blockSize int
	)

	cmd := &cobra.Command{
		Use:   "closure",
		Short: "Print the transitive closure of a square matrix",
		Long: `Read A as a directed graph (A[i][j] = 1 means an edge i→j) and print
A⁺ = A + A² + … + Aⁿ, the pairs connected by a walk of at least one edge.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			a, err := ParseMatrix(aLit)
			if err != nil {
				return fmt.Errorf("--a: %w", err)
			}
			opts, err := blockSizeOptions(blockSize)
			if err != nil {
				return err
			}
			if standard {
				opts = append(opts, bitmatrix.WithStandardMultiplier())
			}

			r, err := bitmatrix.TransitiveClosure(a, opts...)
			if err != nil {
				return err
			}
			slog.Debug("closure computed", "n", a.Height(), "edges", a.Count(), "reachable_pairs", r.Count())

			fmt.Fprintln(cmd.OutOrStdout(), r)

			return nil
		},
	}

	cmd.Flags().StringVar(&aLit, "a", "", "Square adjacency literal, e.g. \"0,1;0,0\"")
	cmd.Flags().BoolVar(&standard, "standard", false, "Square with the standard product instead of Four Russians")
	cmd.Flags().IntVar(&blockSize, "block-size", 0, "Four Russians block width (0 = floor(log2 n))")
	_ = cmd.MarkFlagRequired("a")

	return cmd
}
