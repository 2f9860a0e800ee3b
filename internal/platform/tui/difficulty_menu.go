package tui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/rayraychen2011/tui-breaker/internal/config"
	"github.com/rayraychen2011/tui-breaker/internal/core"
)

// difficultyOption pairs a preset with its menu label and description.
type difficultyOption struct {
	preset config.DifficultyPreset
	label  string
	desc   string
}

var difficultyOptions = []difficultyOption{
	{config.DifficultyEasy, "Easy", "starts slow, ramps up as you score"},
	{config.DifficultyNormal, "Normal", "starts at 30% difficulty"},
	{config.DifficultyHard, "Hard", "starts at 70% difficulty"},
	{config.DifficultyFixed, "Fixed", "no ramp, constant speed"},
}

// DifficultyMenuModel lets the player choose a difficulty preset before a run.
type DifficultyMenuModel struct {
	cursor    int
	width     int
	height    int
	keyMapper *KeyMapper
	selection config.DifficultyPreset
	choosing  bool
	quitting  bool
	back      bool
}

// NewDifficultyMenuModel creates a new difficulty selection model.
func NewDifficultyMenuModel(width, height int) DifficultyMenuModel {
	return DifficultyMenuModel{
		cursor:    1, // Default to Normal
		width:     width,
		height:    height,
		keyMapper: NewKeyMapper(),
		choosing:  true,
	}
}

// Init initializes the model.
func (m DifficultyMenuModel) Init() tea.Cmd {
	return nil
}

// Update handles messages.
func (m DifficultyMenuModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil
	}
	return m, nil
}

func (m DifficultyMenuModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch m.keyMapper.MapKeyToMenuAction(msg) {
	case MenuActionQuit:
		m.quitting = true
		return m, tea.Quit
	case MenuActionUp:
		if m.cursor > 0 {
			m.cursor--
		}
	case MenuActionDown:
		if m.cursor < len(difficultyOptions)-1 {
			m.cursor++
		}
	case MenuActionSelect:
		m.choosing = false
		m.selection = difficultyOptions[m.cursor].preset
		return m, tea.Quit
	case MenuActionBack:
		m.back = true
		return m, tea.Quit
	}

	return m, nil
}

// View renders the difficulty selection.
func (m DifficultyMenuModel) View() string {
	if m.quitting {
		return ""
	}

	var b strings.Builder

	b.WriteString("\n")
	b.WriteString(centerText("B R E A K E R", m.width))
	b.WriteString("\n\n")
	b.WriteString(centerText("Select difficulty:", m.width))
	b.WriteString("\n\n")

	for i, opt := range difficultyOptions {
		cursor := "  "
		if i == m.cursor {
			cursor = "> "
		}
		line := fmt.Sprintf("%s%-8s %s", cursor, opt.label, opt.desc)
		b.WriteString(centerText(line, m.width))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(centerText("Enter: Select  |  Esc: Back  |  Q: Quit", m.width))

	return b.String()
}

// Selected returns the chosen preset, or empty if still choosing.
func (m DifficultyMenuModel) Selected() config.DifficultyPreset {
	if m.choosing {
		return ""
	}
	return m.selection
}

// IsQuitting returns true if user wants to quit.
func (m DifficultyMenuModel) IsQuitting() bool {
	return m.quitting
}

// WantsBack returns true if user pressed back.
func (m DifficultyMenuModel) WantsBack() bool {
	return m.back
}

// RunDifficultyMenu runs the difficulty selector and returns the chosen
// preset. An empty preset means the user backed out or quit.
func RunDifficultyMenu(cfg core.RuntimeConfig) (config.DifficultyPreset, core.RuntimeConfig, error) {
	model := NewDifficultyMenuModel(cfg.ScreenW, cfg.ScreenH)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
	)

	finalModel, err := p.Run()
	if err != nil {
		return "", cfg, err
	}

	m, ok := finalModel.(DifficultyMenuModel)
	if !ok {
		return "", cfg, nil
	}

	cfg.ScreenW = m.width
	cfg.ScreenH = m.height

	if m.IsQuitting() || m.WantsBack() {
		return "", cfg, nil
	}

	return m.Selected(), cfg, nil
}
