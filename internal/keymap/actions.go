// Package keymap defines key bindings and action dispatch for the application.
package keymap

// Action represents a user-triggerable action.
type Action string

const (
	// Global actions
	ActionQuit        Action = "quit"
	ActionSwitchFocus Action = "switch_focus"
	ActionHelp        Action = "help"
	ActionOpenFolder  Action = "open_folder"
	ActionRescan      Action = "rescan"

	// Playback actions
	ActionPlayPause   Action = "play_pause"
	ActionStop        Action = "stop"
	ActionNextTrack   Action = "next_track"
	ActionBack        Action = "back" // restart, or previous track on double press
	ActionSeekForward Action = "seek_forward"
	ActionSeekBack    Action = "seek_back"
	ActionVolumeUp    Action = "volume_up"
	ActionVolumeDown  Action = "volume_down"

	// Navigation actions
	ActionMoveUp    Action = "move_up"
	ActionMoveDown  Action = "move_down"
	ActionJumpStart Action = "jump_start"
	ActionJumpEnd   Action = "jump_end"
	ActionPageUp    Action = "page_up"
	ActionPageDown  Action = "page_down"

	// Track actions, shared by the library and queue panels
	ActionSelect      Action = "select"       // enter - play from here
	ActionEnqueue     Action = "enqueue"      // a - end of the queued tracks
	ActionEnqueueNext Action = "enqueue_next" // A - right after the current track

	// Queue-specific actions
	ActionDelete       Action = "delete"         // d/delete
	ActionMoveItemUp   Action = "move_item_up"   // shift+k
	ActionMoveItemDown Action = "move_item_down" // shift+j
	ActionJumpCurrent  Action = "jump_current"   // .
)
