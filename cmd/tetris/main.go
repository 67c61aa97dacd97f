// tetris is a falling-block puzzle for the terminal.
//
// Usage:
//
//	tetris                   - Play with the effective configuration
//	tetris play              - Same as above
//	tetris config            - Print the effective configuration as YAML
//	tetris shapes            - Print the piece catalog
//
// Global flags:
//
//	--config <path>      - Custom config YAML
//	--width, --height    - Board size in cells (default: 10x20)
//	--fall <ms>          - Gravity interval in milliseconds (default: 500)
//	--fps <rate>         - Set tick rate (default: 60)
//	--seed <value>       - Set RNG seed for reproducible gameplay
//	--log-level <level>  - debug, info, warn or error
//	--log-file <path>    - Write in-game logs to a file
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	// Global flags
	flagConfig   string
	flagWidth    int
	flagHeight   int
	flagFall     int
	flagFPS      int
	flagSeed     int64
	flagLogLevel string
	flagLogFile  string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "tetris",
	Short: "Tetris - falling blocks in your terminal",
	Long: `Tetris drops one of seven shapes at a time into a well. Steer and
rotate it, fill complete rows to clear them, and score 10 points per row.
The game ends when a new piece cannot enter the well.

Available commands:
  play     - Start a game (default)
  config   - Show the effective configuration
  shapes   - Show the piece catalog

Examples:
  tetris
  tetris --width 12 --height 24
  tetris play --seed 42 --fall 300
  tetris config --config ./my-tetris.yaml`,
	SilenceErrors: true,
	SilenceUsage:  true,
	Run:           runPlay,
}

func init() {
	pf := rootCmd.PersistentFlags()
	pf.StringVar(&flagConfig, "config", "", "Path to custom config YAML")
	pf.IntVar(&flagWidth, "width", 10, "Board width in cells")
	pf.IntVar(&flagHeight, "height", 20, "Board height in cells")
	pf.IntVar(&flagFall, "fall", 500, "Gravity interval in milliseconds")
	pf.IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	pf.Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	pf.StringVar(&flagLogLevel, "log-level", "warn", "Log level: debug, info, warn, error")
	pf.StringVar(&flagLogFile, "log-file", "", "Write in-game logs to this file")

	// Add subcommands
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(configCmd)
	rootCmd.AddCommand(shapesCmd)
}
