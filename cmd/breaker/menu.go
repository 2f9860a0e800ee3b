package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/rayraychen2011/tui-breaker/internal/core"
	"github.com/rayraychen2011/tui-breaker/internal/games/breaker"
	"github.com/rayraychen2011/tui-breaker/internal/platform/tui"
	"github.com/rayraychen2011/tui-breaker/internal/registry"
	"github.com/rayraychen2011/tui-breaker/internal/storage"
)

var menuCmd = &cobra.Command{
	Use:   "menu",
	Short: "Start with the interactive menu",
	Long: `Start in interactive menu mode.

Pick a difficulty before each run. After a run ends, you return to the
menu to play again. Tab opens the scoreboard.

Controls:
  Up/Down/j/k  - Navigate menu
  Enter/Space  - Select
  Tab          - Scoreboard
  Q            - Quit

Examples:
  breaker menu
  breaker menu --fps 30
  breaker menu --db ./scores.db`,
	Run: runMenu,
}

func init() {
	menuCmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom game config YAML")
	menuCmd.Flags().BoolVar(&flagNoAudio, "no-audio", false, "Disable sound")
}

func runMenu(cmd *cobra.Command, _ []string) {
	// Open score storage
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open scores database: %v\n", err)
		store = nil
	}

	width, height := terminalSize()
	cfg := core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: flagFPS,
		Seed:     flagSeed,
	}

	audioMgr := newAudioManager(cmd)

	// Menu loop
	for {
		// Show menu and get selection
		menuResult, err := tui.RunMenu(store, cfg)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			break
		}

		// Update config with any size changes
		cfg = menuResult.Config

		// Check if user quit
		if menuResult.Quit {
			break
		}

		// Check if user wants scoreboard
		if menuResult.WantsScoreboard {
			goBack, sbErr := tui.RunScoreboard(store, cfg.ScreenW, cfg.ScreenH)
			if sbErr != nil {
				fmt.Fprintf(os.Stderr, "Error: %v\n", sbErr)
			}
			if goBack {
				continue // Back to menu
			}
			break // User quit from scoreboard
		}

		gameID := menuResult.GameID
		if gameID == "" {
			break
		}

		// Pick a difficulty for this run
		preset, updatedCfg, diffErr := tui.RunDifficultyMenu(cfg)
		if diffErr != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", diffErr)
			continue
		}
		cfg = updatedCfg

		// User backed out or quit
		if preset == "" {
			continue
		}

		breaker.SetConfigPath(flagConfig)
		breaker.SetDifficultyPreset(preset)

		// Create game instance
		game, err := registry.Create(gameID)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error creating game: %v\n", err)
			continue
		}

		// Fresh seed for each run
		cfg.Seed = time.Now().UnixNano()

		// Run the game
		runErr := tui.Run(game, store, cfg, tui.RunOptions{
			Audio:  audioMgr,
			Preset: preset,
		})
		if runErr != nil {
			fmt.Fprintf(os.Stderr, "Error running game: %v\n", runErr)
		}

		// Loop back to menu
	}

	// Cleanup
	audioMgr.Close()
	if store != nil {
		store.Close()
	}
}
