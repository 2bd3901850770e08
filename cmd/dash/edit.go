package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-dash/internal/level"
	"github.com/vovakirdan/tui-dash/internal/platform/tui"
)

var editCmd = &cobra.Command{
	Use:   "edit <file>",
	Short: "Edit a level file",
	Long: `Open the level editor on a .json or .yaml level file. A missing file
starts a fresh level named after it.

Controls:
  WASD/Arrows  - Move cursor
  Enter/Space  - Place entity
  E/Backspace  - Remove entity
  R            - Rotate entity
  Tab / [      - Cycle brush
  T            - Test run (Esc returns to the editor with the trail)
  +/-          - Lengthen/shorten the level
  G            - Toggle classic/free mode
  Ctrl+S       - Save
  Q/Ctrl+C     - Quit

Examples:
  dash edit my-level.yaml
  dash edit ./levels/tower.json`,
	Args: cobra.ExactArgs(1),
	Run:  runEdit,
}

func runEdit(cmd *cobra.Command, args []string) {
	path := args[0]

	if !level.SupportedExtension(filepath.Ext(path)) {
		fmt.Fprintf(os.Stderr, "Error: unsupported level format %q (use .json or .yaml)\n", filepath.Ext(path))
		os.Exit(1)
	}

	dashCfg := loadDashConfig()
	rt := runtimeConfig()
	sound := newSound()
	defer func() {
		if sound != nil {
			sound.Close()
		}
	}()

	if err := tui.RunEditor(dashCfg, rt, path, sound); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
