package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-tetris/internal/tetris"
)

var shapesCmd = &cobra.Command{
	Use:   "shapes",
	Short: "Show the piece catalog",
	Long:  `Lists the seven pieces with their color and spawn orientation.`,
	Args:  cobra.NoArgs,
	Run:   runShapes,
}

func runShapes(cmd *cobra.Command, args []string) {
	out := cmd.OutOrStdout()

	fmt.Fprintln(out, "Pieces:")
	fmt.Fprintln(out)
	fmt.Fprintf(out, "  %-4s  %-7s  %s\n", "Kind", "Color", "Shape")
	fmt.Fprintf(out, "  %-4s  %-7s  %s\n", "----", "-----", "-----")

	for _, k := range tetris.Kinds() {
		rows := shapeRows(tetris.ShapeOf(k))
		fmt.Fprintf(out, "  %-4s  %-7s  %s\n", k, k.Color(), rows[0])
		for _, row := range rows[1:] {
			fmt.Fprintf(out, "  %-4s  %-7s  %s\n", "", "", row)
		}
	}
}

// shapeRows draws a shape matrix, one string per row.
func shapeRows(s tetris.Shape) []string {
	rows := make([]string, 0, s.Height())
	for _, row := range s {
		var b strings.Builder
		for _, filled := range row {
			if filled {
				b.WriteString("██")
			} else {
				b.WriteString("  ")
			}
		}
		rows = append(rows, strings.TrimRight(b.String(), " "))
	}
	return rows
}
