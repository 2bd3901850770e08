package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-dash/internal/platform/tui"
)

var menuCmd = &cobra.Command{
	Use:   "menu",
	Short: "Start dash with a level picker menu",
	Long: `Start dash in interactive menu mode.

Use arrow keys or j/k to navigate, Enter to start a run.
After a run ends, you return to the menu.

Controls:
  Up/Down/j/k  - Navigate menu
  Enter/Space  - Start level
  Tab          - Attempt history
  Q            - Quit

Examples:
  dash menu
  dash menu --fps 30
  dash menu --levels ./levels --db ./attempts.db`,
	Run: runMenu,
}

func runMenu(_ *cobra.Command, _ []string) {
	dashCfg := loadDashConfig()
	rt := runtimeConfig()
	store := openStore()
	sound := newSound()
	defer func() {
		if store != nil {
			store.Close()
		}
		if sound != nil {
			sound.Close()
		}
	}()

	// Menu loop
	for {
		menuResult, err := tui.RunMenu(store, rt, flagLevelsDir)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			break
		}

		// Pick up any size changes seen by the menu
		rt = menuResult.Config

		if menuResult.Quit {
			break
		}

		if menuResult.WantsScoreboard {
			goBack, sbErr := tui.RunScoreboard(store, rt.ScreenW, rt.ScreenH)
			if sbErr != nil {
				fmt.Fprintf(os.Stderr, "Error: %v\n", sbErr)
			}
			if goBack {
				continue // Back to menu
			}
			break // User quit from scoreboard
		}

		var runErr error
		if menuResult.Endless {
			// Fresh seed for each endless run from the menu
			runErr = tui.RunEndless(dashCfg, rt, time.Now().UnixNano(), store, sound)
		} else if menuResult.Level != nil {
			runErr = tui.Run(dashCfg, rt, menuResult.Level, store, sound)
		} else {
			break
		}

		if runErr != nil {
			fmt.Fprintf(os.Stderr, "Error running level: %v\n", runErr)
		}

		// Loop back to menu
	}
}
