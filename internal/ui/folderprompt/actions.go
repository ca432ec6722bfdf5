package folderprompt

import "github.com/llehouerou/simplicity/internal/ui/action"

const source = "folderprompt"

// Submit carries the folder the user entered.
type Submit struct {
	Path string
}

// ActionType implements action.Action.
func (a Submit) ActionType() string { return "folderprompt.submit" }

// Cancel is sent when the prompt is dismissed.
type Cancel struct{}

// ActionType implements action.Action.
func (a Cancel) ActionType() string { return "folderprompt.cancel" }

var (
	_ action.Action = Submit{}
	_ action.Action = Cancel{}
)
