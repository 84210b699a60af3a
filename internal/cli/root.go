package cli

import (
	"log/slog"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

// NewRootCommand assembles the boolmat command tree.
func NewRootCommand(version string) *cobra.Command {
	var (
		verbose bool
		noColor bool
	)

	rootCmd := &cobra.Command{
		Use:   "boolmat",
		Short: "Boolean matrix products: standard and Four Russians",
		Long: `boolmat multiplies Boolean matrices over the (OR, AND) semiring.

It is a debugging companion for the bitmatrix package:
- multiply two literal matrices with either algorithm
- cross-check the Four Russians product against the standard one
- compute reachability (transitive closure)

Matrix literals use ';' between rows and ',' or spaces between cells:
  boolmat multiply --a "1,0;1,1" --b "1,1;0,0"`,
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, _ []string) {
			level := slog.LevelWarn
			if verbose {
				level = slog.LevelDebug
			}
			slog.SetDefault(slog.New(slog.NewJSONHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{
				Level: level,
			})))
			if noColor {
				color.NoColor = true
			}
		},
	}

	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose logging")
	rootCmd.PersistentFlags().BoolVar(&noColor, "no-color", false, "Disable colored output")

	rootCmd.AddCommand(
		NewMultiplyCommand(),
		NewVerifyCommand(),
		NewClosureCommand(),
	)

	return rootCmd
}
