package keymap

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
)

// HelpKeys adapts bindings to bubbles/help.
type HelpKeys struct {
	short []key.Binding
	full  [][]key.Binding
}

// shortHelpActions are shown in the one-line help.
var shortHelpActions = []Action{
	ActionPlayPause,
	ActionNextTrack,
	ActionBack,
	ActionEnqueue,
	ActionEnqueueNext,
	ActionSwitchFocus,
	ActionHelp,
	ActionQuit,
}

// NewHelpKeys builds help bindings for the given contexts, in order.
func NewHelpKeys(contexts ...string) HelpKeys {
	var h HelpKeys
	seen := make(map[Action]bool)
	for _, ctx := range contexts {
		var column []key.Binding
		for _, b := range ByContext(ctx) {
			kb := toKeyBinding(b)
			column = append(column, kb)
			if !seen[b.Action] && isShortHelp(b.Action) {
				seen[b.Action] = true
				h.short = append(h.short, kb)
			}
		}
		if len(column) > 0 {
			h.full = append(h.full, column)
		}
	}
	return h
}

// ShortHelp implements help.KeyMap.
func (h HelpKeys) ShortHelp() []key.Binding { return h.short }

// FullHelp implements help.KeyMap.
func (h HelpKeys) FullHelp() [][]key.Binding { return h.full }

func isShortHelp(a Action) bool {
	for _, s := range shortHelpActions {
		if s == a {
			return true
		}
	}
	return false
}

func toKeyBinding(b Binding) key.Binding {
	return key.NewBinding(
		key.WithKeys(b.Keys...),
		key.WithHelp(helpKey(b.Keys), b.Description),
	)
}

// helpKey renders the keys of a binding for display, skipping aliases that
// only exist for terminal compatibility.
func helpKey(keys []string) string {
	shown := make([]string, 0, len(keys))
	for _, k := range keys {
		if k == " " {
			continue
		}
		shown = append(shown, k)
	}
	return strings.Join(shown, "/")
}
