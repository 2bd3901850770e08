// dash is a terminal auto-runner: steer a cube over spikes and through
// portals by timing a single jump button.
//
// Usage:
//
//	dash list                - List available levels
//	dash play <level>        - Play a level ("endless" for a procedural run)
//	dash menu                - Start the interactive level picker
//	dash edit <file>         - Edit a level file
//	dash validate <file>     - Check a level file for structural problems
//	dash scores <level>      - Show attempt history for a level
//	dash serve               - Start SSH server for remote play
//
// Global flags:
//
//	--fps <rate>      - Set tick rate (default: 60)
//	--seed <value>    - Set RNG seed for reproducible endless runs
//	--db <path>       - Set database path (default: ~/.dash/attempts.db)
//	--levels <dir>    - Directory of extra level files
//	--mute            - Disable sound
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	// Global flags
	flagFPS       int
	flagSeed      int64
	flagDBPath    string
	flagLevelsDir string
	flagMute      bool
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "dash",
	Short: "Dash - a rhythm auto-runner for your terminal",
	Long: `Dash is a terminal auto-runner. The cube moves on its own; you time
jumps to clear spikes, bounce off orbs, and survive gravity portals.

Available commands:
  list      - Show all available levels
  play      - Play a level directly
  menu      - Interactive level picker
  edit      - Level editor with in-place test runs
  validate  - Check a level file
  scores    - View attempt history
  serve     - Start SSH server for remote play

Examples:
  dash list
  dash play first-steps
  dash play endless --seed 42
  dash edit my-level.yaml
  dash serve --ssh :2222
  dash scores first-steps`,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (simulation steps per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.dash/attempts.db", "Path to attempts database")
	rootCmd.PersistentFlags().StringVar(&flagLevelsDir, "levels", "", "Directory of extra level files")
	rootCmd.PersistentFlags().BoolVar(&flagMute, "mute", false, "Disable sound")

	// Add subcommands
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(editCmd)
	rootCmd.AddCommand(validateCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(scoresCmd)
}
