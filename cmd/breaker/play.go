package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/rayraychen2011/tui-breaker/internal/config"
	"github.com/rayraychen2011/tui-breaker/internal/core"
	"github.com/rayraychen2011/tui-breaker/internal/games/breaker"
	"github.com/rayraychen2011/tui-breaker/internal/platform/audio"
	"github.com/rayraychen2011/tui-breaker/internal/platform/tui"
	"github.com/rayraychen2011/tui-breaker/internal/registry"
	"github.com/rayraychen2011/tui-breaker/internal/storage"
)

var (
	flagConfig     string
	flagDifficulty string
	flagNoAudio    bool
	flagVolume     float64
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play the game",
	Long: `Start a run directly, skipping the menu.

Controls:
  A/D, Left/Right  - Move paddle
  Space            - Launch ball
  B                - Toggle speed boost
  T                - Toggle autopilot
  V                - Toggle trajectory preview
  P                - Pause
  R                - Restart (after game over)
  Q/Ctrl+C         - Quit

Difficulty options:
  easy   - Start at lowest difficulty, progresses to max
  normal - Start at 30% difficulty, progresses to max
  hard   - Start at 70% difficulty, progresses to max
  fixed  - No progression, stays at config's initial level

Examples:
  breaker play
  breaker play --difficulty hard
  breaker play --config ./my-breaker.yaml
  breaker play --no-audio`,
	Args: cobra.NoArgs,
	Run:  runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom game config YAML")
	playCmd.Flags().StringVar(&flagDifficulty, "difficulty", "normal", "Difficulty preset: easy, normal, hard, fixed")
	playCmd.Flags().BoolVar(&flagNoAudio, "no-audio", false, "Disable sound")
	playCmd.Flags().Float64Var(&flagVolume, "volume", 0, "Sound volume from 0.0 to 1.0 (default from config)")
}

// parseDifficulty validates a preset name from the command line.
func parseDifficulty(s string) (config.DifficultyPreset, error) {
	preset := config.DifficultyPreset(strings.ToLower(s))
	switch preset {
	case config.DifficultyEasy, config.DifficultyNormal, config.DifficultyHard, config.DifficultyFixed:
		return preset, nil
	}
	return "", fmt.Errorf("unknown difficulty %q (want easy, normal, hard, or fixed)", s)
}

// terminalSize returns the current terminal dimensions, falling back to
// 80x24 when stdout is not a terminal.
func terminalSize() (int, int) {
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		return w, h
	}
	return 80, 24
}

// newAudioManager builds the sound manager from the game config and the
// command-line overrides, and tries to open the output device.
func newAudioManager(cmd *cobra.Command) *audio.Manager {
	cfg, err := config.LoadBreaker(flagConfig)
	if err != nil {
		cfg = config.DefaultBreakerConfig()
	}

	enabled := cfg.Audio.Enabled && !flagNoAudio
	volume := cfg.Audio.Volume
	if cmd.Flags().Changed("volume") {
		volume = flagVolume
	}

	mgr := audio.NewManager(enabled, volume)
	if err := mgr.Init(); err != nil {
		fmt.Fprintf(os.Stderr, "Warning: no audio device: %v\n", err)
	}
	return mgr
}

func runPlay(cmd *cobra.Command, _ []string) {
	preset, err := parseDifficulty(flagDifficulty)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	breaker.SetConfigPath(flagConfig)
	breaker.SetDifficultyPreset(preset)

	width, height := terminalSize()
	cfg := core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: flagFPS,
		Seed:     flagSeed,
	}

	game, err := registry.Create("breaker")
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating game: %v\n", err)
		os.Exit(1)
	}

	// Open score storage
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open scores database: %v\n", err)
		// Continue without storage - game still works
		store = nil
	}

	audioMgr := newAudioManager(cmd)

	// Run the game
	runErr := tui.Run(game, store, cfg, tui.RunOptions{
		Audio:  audioMgr,
		Preset: preset,
	})

	audioMgr.Close()
	if store != nil {
		store.Close()
	}

	if runErr != nil {
		fmt.Fprintf(os.Stderr, "Error running game: %v\n", runErr)
		os.Exit(1)
	}
}
