package tui

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/void-runner/internal/core"
)

func runeKey(r rune) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}}
}

func TestKeyMapAction(t *testing.T) {
	km := DefaultKeyMap()

	tests := []struct {
		name   string
		msg    tea.KeyMsg
		action core.Action
		quit   bool
	}{
		{"a", runeKey('a'), core.ActionLeft, false},
		{"left arrow", tea.KeyMsg{Type: tea.KeyLeft}, core.ActionLeft, false},
		{"d", runeKey('d'), core.ActionRight, false},
		{"right arrow", tea.KeyMsg{Type: tea.KeyRight}, core.ActionRight, false},
		{"space", tea.KeyMsg{Type: tea.KeySpace}, core.ActionJump, false},
		{"w", runeKey('w'), core.ActionJump, false},
		{"up arrow", tea.KeyMsg{Type: tea.KeyUp}, core.ActionJump, false},
		{"c", runeKey('c'), core.ActionCamera, false},
		{"enter", tea.KeyMsg{Type: tea.KeyEnter}, core.ActionConfirm, false},
		{"r", runeKey('r'), core.ActionRestart, false},
		{"p", runeKey('p'), core.ActionPause, false},
		{"esc", tea.KeyMsg{Type: tea.KeyEscape}, core.ActionBack, false},
		{"q", runeKey('q'), core.ActionQuit, true},
		{"ctrl+c", tea.KeyMsg{Type: tea.KeyCtrlC}, core.ActionQuit, true},
		{"unbound", runeKey('z'), core.ActionNone, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			action, quit := km.Action(tt.msg)
			if action != tt.action {
				t.Errorf("Action(%q) action = %v, want %v", tt.msg.String(), action, tt.action)
			}
			if quit != tt.quit {
				t.Errorf("Action(%q) quit = %v, want %v", tt.msg.String(), quit, tt.quit)
			}
		})
	}
}

func TestApplyAccumulates(t *testing.T) {
	km := DefaultKeyMap()
	frame := core.NewInputFrame()

	km.Apply(runeKey('a'), &frame)
	km.Apply(tea.KeyMsg{Type: tea.KeySpace}, &frame)
	km.Apply(runeKey('z'), &frame)

	if !frame.Has(core.ActionLeft) || !frame.Has(core.ActionJump) {
		t.Errorf("frame missing actions: %v", frame.List())
	}
	if len(frame.List()) != 2 {
		t.Errorf("frame should hold exactly two actions, got %v", frame.List())
	}
	if !km.Apply(runeKey('q'), &frame) {
		t.Error("q should request quit")
	}
}

func TestKeyMapHelp(t *testing.T) {
	bindings := DefaultKeyMap().ShortHelp()
	if len(bindings) != int(core.ActionQuit) {
		t.Fatalf("help lists %d bindings, want one per action (%d)", len(bindings), core.ActionQuit)
	}
	for _, b := range bindings {
		if b.Help().Desc == "" || len(b.Keys()) == 0 {
			t.Errorf("binding %v has no help or keys", b.Keys())
		}
	}
}

func TestKeyMapHelpLine(t *testing.T) {
	line := DefaultKeyMap().HelpLine()
	for _, want := range []string{"q quit", "a lane left", "p pause", "esc back"} {
		if !strings.Contains(line, want) {
			t.Errorf("HelpLine() = %q, missing %q", line, want)
		}
	}
}
