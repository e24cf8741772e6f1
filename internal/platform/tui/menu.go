package tui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/void-runner/internal/config"
	"github.com/vovakirdan/void-runner/internal/core"
)

// MenuChoice is what the launcher menu resolved to.
type MenuChoice int

const (
	MenuNone MenuChoice = iota
	MenuPlay
	MenuRuns
	MenuQuit
)

// menuItem is one launcher row.
type menuItem struct {
	title  string
	choice MenuChoice
}

var menuItems = []menuItem{
	{"Play", MenuPlay},
	{"Difficulty", MenuNone},
	{"Run journal", MenuRuns},
	{"Quit", MenuQuit},
}

// difficultyRow is the index of the difficulty selector in menuItems.
const difficultyRow = 1

var presetCycle = []config.DifficultyPreset{
	config.DifficultyEasy,
	config.DifficultyNormal,
	config.DifficultyHard,
	config.DifficultyFixed,
}

// MenuModel is the Bubble Tea model for the launcher menu.
type MenuModel struct {
	cursor   int
	preset   int // Index into presetCycle
	width    int
	height   int
	config   core.RuntimeConfig
	choice   MenuChoice
	embedded bool
}

// NewMenuModel creates a launcher preselecting the given difficulty preset.
func NewMenuModel(cfg core.RuntimeConfig, preset config.DifficultyPreset) MenuModel {
	m := MenuModel{
		width:  cfg.ScreenW,
		height: cfg.ScreenH,
		config: cfg,
		preset: 1,
	}
	for i, p := range presetCycle {
		if p == preset {
			m.preset = i
		}
	}
	return m
}

// Init initializes the menu model.
func (m MenuModel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the menu.
func (m MenuModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.config.ScreenW = msg.Width
		m.config.ScreenH = msg.Height
		return m, nil
	}

	return m, nil
}

// handleKey processes keyboard input for menu navigation.
func (m MenuModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "ctrl+c", "q", "esc":
		return m.choose(MenuQuit)

	case "up", "k", "w":
		if m.cursor > 0 {
			m.cursor--
		}

	case "down", "j", "s":
		if m.cursor < len(menuItems)-1 {
			m.cursor++
		}

	case "left", "a":
		if m.cursor == difficultyRow {
			m.preset = (m.preset + len(presetCycle) - 1) % len(presetCycle)
		}

	case "right", "d":
		if m.cursor == difficultyRow {
			m.preset = (m.preset + 1) % len(presetCycle)
		}

	case "enter", " ", "space":
		if m.cursor == difficultyRow {
			m.preset = (m.preset + 1) % len(presetCycle)
			return m, nil
		}
		return m.choose(menuItems[m.cursor].choice)

	case "tab":
		return m.choose(MenuRuns)
	}

	return m, nil
}

func (m MenuModel) choose(c MenuChoice) (tea.Model, tea.Cmd) {
	m.choice = c
	if m.embedded {
		return m, nil
	}
	return m, tea.Quit
}

// View renders the menu.
func (m MenuModel) View() string {
	if m.choice != MenuNone && !m.embedded {
		return ""
	}

	var b strings.Builder

	b.WriteString("\n")
	b.WriteString(centerText("  V O I D   R U N N E R  ", m.width))
	b.WriteString("\n\n")
	b.WriteString(centerText("Outrun the black hole", m.width))
	b.WriteString("\n\n")

	for i, item := range menuItems {
		cursor := "  "
		if i == m.cursor {
			cursor = "> "
		}

		line := cursor + item.title
		if i == difficultyRow {
			line = fmt.Sprintf("%s%s: < %s >", cursor, item.title, m.Preset())
		}
		b.WriteString(centerText(line, m.width))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	controls := "Up/Down: Navigate  |  Left/Right: Difficulty  |  Enter: Select  |  Tab: Runs  |  Q: Quit"
	b.WriteString(centerText(controls, m.width))
	b.WriteString("\n")

	return b.String()
}

// Choice returns what the user picked, MenuNone while still choosing.
func (m MenuModel) Choice() MenuChoice {
	return m.choice
}

// Preset returns the selected difficulty preset.
func (m MenuModel) Preset() config.DifficultyPreset {
	return presetCycle[m.preset]
}

// Config returns the current runtime config (may have been updated by resize).
func (m MenuModel) Config() core.RuntimeConfig {
	return m.config
}

// MenuResult holds the result of running the menu.
type MenuResult struct {
	Choice MenuChoice
	Preset config.DifficultyPreset
	Config core.RuntimeConfig
}

// RunMenu runs the launcher and returns the selection result.
func RunMenu(cfg core.RuntimeConfig, preset config.DifficultyPreset) (MenuResult, error) {
	model := NewMenuModel(cfg, preset)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
	)

	finalModel, err := p.Run()
	if err != nil {
		return MenuResult{}, err
	}

	m, ok := finalModel.(MenuModel)
	if !ok {
		return MenuResult{Choice: MenuQuit}, nil
	}

	choice := m.Choice()
	if choice == MenuNone {
		choice = MenuQuit
	}
	return MenuResult{
		Choice: choice,
		Preset: m.Preset(),
		Config: m.Config(),
	}, nil
}
