package tui

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/rayraychen2011/tui-breaker/internal/config"
	"github.com/rayraychen2011/tui-breaker/internal/core"
	"github.com/rayraychen2011/tui-breaker/internal/platform/audio"
	"github.com/rayraychen2011/tui-breaker/internal/registry"
	"github.com/rayraychen2011/tui-breaker/internal/storage"
)

// RunOptions carries platform concerns that sit outside the game simulation.
type RunOptions struct {
	// Audio plays sound cues for game events. Nil runs the game silent.
	Audio *audio.Manager

	// Preset is recorded with saved scores so runs on different
	// difficulties stay comparable.
	Preset config.DifficultyPreset
}

// Model is the Bubble Tea model that runs a single game.
type Model struct {
	game       registry.Game
	screen     *core.Screen
	store      *storage.Store
	audio      *audio.Manager
	config     core.RuntimeConfig
	preset     config.DifficultyPreset
	keyMapper  *KeyMapper
	inputFrame core.InputFrame
	gameState  core.GameState
	runStart   time.Time
	embedded   bool // True when driven by a SessionModel instead of its own program
	quitting   bool
	backToMenu bool
	scoreSaved bool // Whether the score has been saved for the current run
}

// NewModel creates a new Bubble Tea model for the given game.
func NewModel(game registry.Game, store *storage.Store, cfg core.RuntimeConfig, opts RunOptions) Model {
	// Use time-based seed if not specified
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}
	preset := opts.Preset
	if preset == "" {
		preset = config.DifficultyNormal
	}

	return Model{
		game:       game,
		screen:     core.NewScreen(cfg.ScreenW, cfg.ScreenH),
		store:      store,
		audio:      opts.Audio,
		config:     cfg,
		preset:     preset,
		keyMapper:  NewKeyMapper(),
		inputFrame: core.NewInputFrame(),
		runStart:   time.Now(),
	}
}

// Init initializes the model and starts the game.
func (m Model) Init() tea.Cmd {
	// Initialize the game
	m.game.Reset(m.config)
	// Note: gameState will be set on first tick (value receiver limitation)

	// Start the tick loop
	return tickCmd(m.config.TickRate)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case TickMsg:
		return m.handleTick()
	}

	return m, nil
}

// runOver reports whether the current run has ended, by loss or by win.
func (m Model) runOver() bool {
	return m.gameState.GameOver || m.gameState.Win
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.String() == "ctrl+s" {
		m.saveScreenshot()
		return m, nil
	}

	action, isQuit := m.keyMapper.MapKey(msg)
	if isQuit {
		m.quitting = true
		return m, tea.Quit
	}

	switch action {
	case core.ActionBack:
		// Escape pauses a live run. Once the run is paused or over it
		// means leave: back to the menu when embedded in a session,
		// otherwise end the program.
		if m.runOver() || m.gameState.Paused {
			m.backToMenu = true
			if !m.embedded {
				m.quitting = true
				return m, tea.Quit
			}
			return m, nil
		}
		m.inputFrame.Set(core.ActionPause)

	case core.ActionRestart:
		if m.runOver() {
			m.inputFrame.Set(core.ActionRestart)
		}

	case core.ActionNone:
		// Unbound key

	default:
		m.inputFrame.Set(action)
	}

	return m, nil
}

// handleResize processes window resize events.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.config.ScreenW = msg.Width
	m.config.ScreenH = msg.Height
	m.screen.Resize(msg.Width, msg.Height)

	// The field layout depends on the screen size, so a resize rebuilds
	// the level and the run in progress starts over.
	if !m.runOver() {
		m.game.Reset(m.config)
		m.runStart = time.Now()
	}

	return m, nil
}

// handleTick processes simulation ticks.
func (m Model) handleTick() (tea.Model, tea.Cmd) {
	// Check for restart
	if m.inputFrame.Has(core.ActionRestart) && m.runOver() {
		// Reset seed so the new run gets a fresh brick layout
		m.config.Seed = time.Now().UnixNano()
		m.game.Reset(m.config)
		m.gameState = m.game.State()
		m.runStart = time.Now()
		m.scoreSaved = false
		m.inputFrame.Clear()
		return m, tickCmd(m.config.TickRate)
	}

	// Run game simulation
	result := m.game.Step(m.inputFrame)
	m.gameState = result.State

	if m.audio != nil {
		m.audio.HandleEvents(result.Events)
	}

	// Save the score once when the run ends, won or lost
	if m.runOver() && !m.scoreSaved && m.gameState.Score > 0 {
		if m.store != nil {
			entry := storage.ScoreEntry{
				GameID:   m.game.ID(),
				Score:    m.gameState.Score,
				Stage:    m.gameState.Level,
				Preset:   string(m.preset),
				Duration: int(time.Since(m.runStart).Seconds()),
			}
			//nolint:errcheck // Best-effort save, game continues regardless
			m.store.SaveScore(entry)
		}
		m.scoreSaved = true
	}

	// Clear input for next frame
	m.inputFrame.Clear()

	// Continue ticking
	return m, tickCmd(m.config.TickRate)
}

// saveScreenshot saves the current screen to a file.
func (m *Model) saveScreenshot() {
	// Render current state
	m.game.Render(m.screen)

	home, err := os.UserHomeDir()
	if err != nil {
		return
	}
	dir := filepath.Join(home, ".breaker", "screenshots")
	//nolint:errcheck // Best-effort directory creation
	os.MkdirAll(dir, 0o755)

	timestamp := time.Now().Format("20060102_150405")
	filename := fmt.Sprintf("%s_%s.txt", m.game.ID(), timestamp)
	path := filepath.Join(dir, filename)

	//nolint:errcheck // Best-effort save, game continues regardless
	os.WriteFile(path, []byte(m.screen.String()), 0o600)
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	// Render game to screen buffer
	m.game.Render(m.screen)

	// Convert screen to string
	return RenderScreen(m.screen)
}

// IsQuitting returns true if the user requested to quit entirely.
func (m Model) IsQuitting() bool {
	return m.quitting
}

// BackToMenu returns true if the user requested to go back to the menu.
func (m Model) BackToMenu() bool {
	return m.backToMenu
}

// Run starts the Bubble Tea program with the given model and blocks until
// the game ends.
func Run(game registry.Game, store *storage.Store, cfg core.RuntimeConfig, opts RunOptions) error {
	model := NewModel(game, store, cfg, opts)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(), // Use alternate screen buffer
	)

	_, err := p.Run()
	return err
}
