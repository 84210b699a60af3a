package cli

import (
	"fmt"
	"io"

	"github.com/fatih/color"
)

// printVerdict prints a colored agreement line for the two products.
func printVerdict(out io.Writer, equal bool) {
	green := color.New(color.FgGreen, color.Bold)
	red := color.New(color.FgRed, color.Bold)

	if equal {
		green.Fprintln(out, "✓ products agree")
		return
	}
	red.Fprintln(out, "✗ products differ")
	fmt.Fprintln(out, "This is a bug in the Four Russians multiplier; please report the operands.")
}
