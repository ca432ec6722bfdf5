package keymap

// Binding describes a single key binding.
type Binding struct {
	Action      Action
	Keys        []string
	Description string
	Context     string // "global", "playback", "navigator", "library", "queue"
}

// Bindings contains all key bindings, used for dispatch and help.
var Bindings = []Binding{
	// Global
	{ActionQuit, []string{"q", "ctrl+c"}, "Quit", "global"},
	{ActionSwitchFocus, []string{"tab"}, "Switch panel", "global"},
	{ActionOpenFolder, []string{"o"}, "Open folder", "global"},
	{ActionRescan, []string{"r"}, "Rescan folder", "global"},
	{ActionHelp, []string{"?"}, "Toggle help", "global"},

	// Playback
	{ActionPlayPause, []string{" ", "space"}, "Play/pause", "playback"},
	{ActionStop, []string{"s"}, "Stop", "playback"},
	{ActionNextTrack, []string{"n"}, "Next track", "playback"},
	{ActionBack, []string{"b"}, "Restart (twice: previous)", "playback"},
	{ActionSeekBack, []string{"left", "h"}, "Seek -5s", "playback"},
	{ActionSeekForward, []string{"right", "l"}, "Seek +5s", "playback"},
	{ActionVolumeDown, []string{"-"}, "Volume down", "playback"},
	{ActionVolumeUp, []string{"+", "="}, "Volume up", "playback"},

	// Navigator
	{ActionMoveUp, []string{"k", "up"}, "Move up", "navigator"},
	{ActionMoveDown, []string{"j", "down"}, "Move down", "navigator"},
	{ActionPageUp, []string{"pgup", "ctrl+u"}, "Page up", "navigator"},
	{ActionPageDown, []string{"pgdown", "ctrl+d"}, "Page down", "navigator"},
	{ActionJumpStart, []string{"g", "home"}, "First item", "navigator"},
	{ActionJumpEnd, []string{"G", "end"}, "Last item", "navigator"},

	// Library panel
	{ActionSelect, []string{"enter"}, "Play from here", "library"},
	{ActionEnqueue, []string{"a"}, "Queue", "library"},
	{ActionEnqueueNext, []string{"A"}, "Play next", "library"},

	// Queue panel
	{ActionSelect, []string{"enter"}, "Play from here", "queue"},
	{ActionEnqueue, []string{"a"}, "Queue", "queue"},
	{ActionEnqueueNext, []string{"A"}, "Play next", "queue"},
	{ActionDelete, []string{"d", "delete"}, "Remove", "queue"},
	{ActionMoveItemDown, []string{"J", "shift+down"}, "Move track down", "queue"},
	{ActionMoveItemUp, []string{"K", "shift+up"}, "Move track up", "queue"},
	{ActionJumpCurrent, []string{"."}, "Go to playing", "queue"},
}

// Contexts lists binding contexts in help display order.
var Contexts = []string{"global", "playback", "navigator", "library", "queue"}

// ByContext returns key bindings filtered by context.
func ByContext(context string) []Binding {
	var result []Binding
	for _, kb := range Bindings {
		if kb.Context == context {
			result = append(result, kb)
		}
	}
	return result
}
