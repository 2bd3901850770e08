package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-dash/internal/level"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List all available levels",
	Long:  `Shows the built-in levels plus anything found in the --levels directory.`,
	Run:   runList,
}

func runList(cmd *cobra.Command, args []string) {
	type row struct {
		name   string
		mode   level.GameMode
		length int
		source string
	}

	var rows []row
	for _, l := range level.Builtin() {
		rows = append(rows, row{l.Name, l.GameMode, l.Length, "built-in"})
	}

	if flagLevelsDir != "" {
		entries, err := level.NewLoader(flagLevelsDir).LoadAll()
		if err != nil {
			fmt.Fprintf(os.Stderr, "Warning: %v\n", err)
		}
		for _, e := range entries {
			rows = append(rows, row{e.Level.Name, e.Level.GameMode, e.Level.Length, e.FilePath})
		}
	}

	fmt.Println("Available levels:")
	fmt.Println()

	maxNameLen := 4 // "Name" header
	for _, r := range rows {
		if len(r.name) > maxNameLen {
			maxNameLen = len(r.name)
		}
	}

	fmt.Printf("  %-*s  %-8s  %-6s  %s\n", maxNameLen, "Name", "Mode", "Length", "Source")
	fmt.Printf("  %-*s  %-8s  %-6s  %s\n", maxNameLen, "----", "----", "------", "------")

	for _, r := range rows {
		fmt.Printf("  %-*s  %-8s  %-6d  %s\n", maxNameLen, r.name, r.mode, r.length, r.source)
	}
	fmt.Printf("  %-*s  %-8s  %-6s  %s\n", maxNameLen, "endless", "classic", "-", "procedural")

	fmt.Println()
	fmt.Println("Run 'dash play <name>' to play a level.")
}

var validateCmd = &cobra.Command{
	Use:   "validate <file>",
	Short: "Check a level file for structural problems",
	Long: `Parse and validate a level file without playing it.

Examples:
  dash validate ./levels/custom.yaml
  dash validate my-level.json`,
	Args: cobra.ExactArgs(1),
	Run:  runValidate,
}

func runValidate(cmd *cobra.Command, args []string) {
	path := args[0]

	lvl, err := level.LoadFile(path)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	if err := level.Validate(lvl); err != nil {
		fmt.Fprintf(os.Stderr, "Invalid: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("OK: %s (%s, %d objects, length %d)\n",
		lvl.Name, lvl.GameMode, len(lvl.Objects), lvl.Length)
}
