// Package cursor provides a reusable cursor component for scrollable lists.
package cursor

import "github.com/llehouerou/simplicity/internal/keymap"

// Cursor tracks the selected row and the scroll offset of a list.
// List length and viewport height are passed to each call since both
// change as tracks are scanned, queued and removed.
type Cursor struct {
	pos    int
	offset int // first visible row
	margin int // rows kept visible above and below the cursor
}

// New creates a cursor with the given scroll margin.
func New(margin int) Cursor {
	return Cursor{margin: margin}
}

func (c Cursor) Pos() int    { return c.pos }
func (c Cursor) Offset() int { return c.offset }

// Move moves the cursor by delta rows, clamped to the list.
func (c *Cursor) Move(delta, listLen, height int) {
	c.Jump(c.pos+delta, listLen, height)
}

// Jump moves the cursor to pos, clamped to the list.
func (c *Cursor) Jump(pos, listLen, height int) {
	if listLen == 0 {
		c.Reset()
		return
	}
	c.pos = clamp(pos, listLen-1)
	c.EnsureVisible(listLen, height)
}

// JumpStart moves the cursor to the first row.
func (c *Cursor) JumpStart() {
	c.Reset()
}

// JumpEnd moves the cursor to the last row.
func (c *Cursor) JumpEnd(listLen, height int) {
	c.Jump(listLen-1, listLen, height)
}

// EnsureVisible scrolls so the cursor stays inside the margins.
func (c *Cursor) EnsureVisible(listLen, height int) {
	if height <= 0 || listLen == 0 {
		return
	}
	margin := min(c.margin, (height-1)/2)

	if c.pos < c.offset+margin {
		c.offset = c.pos - margin
	}
	if c.pos >= c.offset+height-margin {
		c.offset = c.pos - height + margin + 1
	}
	c.offset = clamp(c.offset, max(listLen-height, 0))
}

// Center scrolls so the cursor sits in the middle of the viewport.
func (c *Cursor) Center(listLen, height int) {
	if height <= 0 || listLen == 0 {
		return
	}
	c.offset = clamp(c.pos-height/2, max(listLen-height, 0))
}

// ClampToBounds pulls the cursor back inside a list that shrank.
// Returns true if the cursor moved.
func (c *Cursor) ClampToBounds(listLen int) bool {
	old := c.pos
	if listLen == 0 {
		c.Reset()
		return old != 0
	}
	c.pos = clamp(c.pos, listLen-1)
	return c.pos != old
}

// VisibleRange returns the half-open range [start, end) of visible rows.
func (c Cursor) VisibleRange(listLen, height int) (start, end int) {
	if listLen == 0 || height <= 0 {
		return 0, 0
	}
	return c.offset, min(c.offset+height, listLen)
}

// Reset moves the cursor and the scroll offset back to the top.
func (c *Cursor) Reset() {
	c.pos = 0
	c.offset = 0
}

// HandleAction applies a navigation action. Returns false for actions
// that are not about navigation.
func (c *Cursor) HandleAction(a keymap.Action, listLen, height int) bool {
	switch a {
	case keymap.ActionMoveDown:
		c.Move(1, listLen, height)
	case keymap.ActionMoveUp:
		c.Move(-1, listLen, height)
	case keymap.ActionPageDown:
		c.Move(max(height-1, 1), listLen, height)
	case keymap.ActionPageUp:
		c.Move(-max(height-1, 1), listLen, height)
	case keymap.ActionJumpStart:
		c.JumpStart()
	case keymap.ActionJumpEnd:
		c.JumpEnd(listLen, height)
	default:
		return false
	}
	return true
}

func clamp(v, maxVal int) int {
	return min(max(v, 0), maxVal)
}
