package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/void-runner/internal/core"
)

// actionBinding ties a key binding to the game action it produces.
type actionBinding struct {
	action  core.Action
	binding key.Binding
}

// KeyMap translates key presses into runner actions.
type KeyMap struct {
	bindings []actionBinding
}

// DefaultKeyMap returns the standard runner controls.
func DefaultKeyMap() KeyMap {
	bind := func(a core.Action, help string, keys ...string) actionBinding {
		return actionBinding{a, key.NewBinding(key.WithKeys(keys...), key.WithHelp(keys[0], help))}
	}
	return KeyMap{bindings: []actionBinding{
		bind(core.ActionQuit, "quit", "q", "ctrl+c"),
		bind(core.ActionLeft, "lane left", "a", "left"),
		bind(core.ActionRight, "lane right", "d", "right"),
		bind(core.ActionJump, "jump", "space", " ", "w", "up"),
		bind(core.ActionCamera, "camera", "c"),
		bind(core.ActionConfirm, "start", "enter"),
		bind(core.ActionRestart, "restart", "r"),
		bind(core.ActionPause, "pause", "p"),
		bind(core.ActionBack, "back", "esc", "b"),
	}}
}

// Action returns the action bound to msg, or ActionNone.
// quit reports whether the key asks to leave the program.
func (km KeyMap) Action(msg tea.KeyMsg) (action core.Action, quit bool) {
	for _, b := range km.bindings {
		if key.Matches(msg, b.binding) {
			return b.action, b.action == core.ActionQuit
		}
	}
	return core.ActionNone, false
}

// Apply records the action bound to msg in frame and reports a quit request.
func (km KeyMap) Apply(msg tea.KeyMsg, frame *core.InputFrame) bool {
	action, quit := km.Action(msg)
	if action != core.ActionNone {
		frame.Set(action)
	}
	return quit
}

// ShortHelp lists the bindings shown under the game screen.
func (km KeyMap) ShortHelp() []key.Binding {
	out := make([]key.Binding, 0, len(km.bindings))
	for _, b := range km.bindings {
		out = append(out, b.binding)
	}
	return out
}

// FullHelp returns the bindings as a single column.
func (km KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{km.ShortHelp()}
}

// HelpLine renders the bindings as plain "key desc" pairs for the screen buffer.
func (km KeyMap) HelpLine() string {
	parts := make([]string, 0, len(km.bindings))
	for _, b := range km.bindings {
		h := b.binding.Help()
		parts = append(parts, h.Key+" "+h.Desc)
	}
	return strings.Join(parts, " · ")
}
