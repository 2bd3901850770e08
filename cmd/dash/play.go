package main

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-dash/internal/audio"
	"github.com/vovakirdan/tui-dash/internal/config"
	"github.com/vovakirdan/tui-dash/internal/core"
	"github.com/vovakirdan/tui-dash/internal/level"
	"github.com/vovakirdan/tui-dash/internal/platform/tui"
	"github.com/vovakirdan/tui-dash/internal/storage"
)

var (
	flagConfig     string
	flagDifficulty string
)

var playCmd = &cobra.Command{
	Use:   "play <level>",
	Short: "Play a level",
	Long: `Start a run on the specified level. The level can be a built-in name,
a level file path, or a name from the --levels directory. Use "endless"
for a seeded procedural run.

Controls:
  Space/Up/W  - Jump (hold to buffer the next jump)
  R           - Restart
  P           - Pause
  X           - Toggle hitbox display
  Q/Ctrl+C    - Quit

Difficulty options (endless only):
  easy   - Start at lowest difficulty, progresses to max
  normal - Start at 30% difficulty, progresses to max
  hard   - Start at 70% difficulty, progresses to max
  fixed  - No progression, stays at config's initial level

Examples:
  dash play first-steps
  dash play ./levels/custom.yaml
  dash play endless --seed 42 --difficulty hard
  dash play first-steps --config ./my-physics.yaml`,
	Args: cobra.ExactArgs(1),
	Run:  runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom physics config YAML")
	playCmd.Flags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard, fixed")
}

func runPlay(cmd *cobra.Command, args []string) {
	name := args[0]

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

	var runErr error
	if name == "endless" {
		runErr = tui.RunEndless(dashCfg, rt, rt.Seed, store, sound)
	} else {
		lvl := resolveLevel(name)
		runErr = tui.Run(dashCfg, rt, lvl, store, sound)
	}

	if runErr != nil {
		fmt.Fprintf(os.Stderr, "Error running level: %v\n", runErr)
		os.Exit(1)
	}
}

// loadDashConfig loads physics tuning, applying --config and --difficulty.
func loadDashConfig() *config.DashConfig {
	cfg, err := config.LoadDash(flagConfig)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
		os.Exit(1)
	}
	if flagDifficulty != "" {
		config.ApplyDashPreset(cfg, config.DifficultyPreset(flagDifficulty))
	}
	return cfg
}

// runtimeConfig builds a RuntimeConfig from the terminal size and global flags.
func runtimeConfig() core.RuntimeConfig {
	width, height := 80, 24 // Defaults
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		width = w
		height = h
	}

	seed := flagSeed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	return core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: flagFPS,
		Seed:     seed,
	}
}

// openStore opens the attempts database, or returns nil to play without one.
func openStore() *storage.Store {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open attempts database: %v\n", err)
		return nil
	}
	return store
}

// newSound creates and starts the audio manager, or returns nil when muted
// or when no audio device is available.
func newSound() *audio.Manager {
	if flagMute {
		return nil
	}
	sound := audio.NewManager(0.8)
	if err := sound.Init(); err != nil {
		fmt.Fprintf(os.Stderr, "Warning: sound disabled: %v\n", err)
		return nil
	}
	return sound
}

// resolveLevel finds a level by built-in name, file path, or --levels name.
// Exits with a message when nothing matches.
func resolveLevel(name string) *level.Level {
	if lvl := level.BuiltinByName(name); lvl != nil {
		return lvl
	}

	if level.SupportedExtension(filepath.Ext(name)) {
		if _, err := os.Stat(name); err == nil {
			lvl, err := level.LoadFile(name)
			if err != nil {
				fmt.Fprintf(os.Stderr, "Error: %v\n", err)
				os.Exit(1)
			}
			if err := level.Validate(lvl); err != nil {
				fmt.Fprintf(os.Stderr, "Error: invalid level: %v\n", err)
				os.Exit(1)
			}
			return lvl
		}
	}

	if flagLevelsDir != "" {
		if lvl, err := level.NewLoader(flagLevelsDir).LoadByName(name); err == nil {
			return lvl
		}
	}

	fmt.Fprintf(os.Stderr, "Error: unknown level %q\n", name)
	fmt.Fprintln(os.Stderr, "Run 'dash list' to see available levels.")
	os.Exit(1)
	return nil
}
