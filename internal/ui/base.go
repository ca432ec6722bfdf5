package ui

// Base provides focus and size management for panel models.
// Embed it in a model to get the standard methods.
type Base struct {
	width, height int
	focused       bool
}

func (b *Base) SetFocused(focused bool) { b.focused = focused }

func (b Base) IsFocused() bool { return b.focused }

// SetSize sets the outer dimensions, borders included.
func (b *Base) SetSize(width, height int) {
	b.width = width
	b.height = height
}

func (b Base) Width() int  { return b.width }
func (b Base) Height() int { return b.height }

// ListHeight returns the rows available to a list below the panel header.
func (b Base) ListHeight() int {
	return max(b.height-PanelOverhead, 0)
}

// InnerWidth returns the width inside the panel border.
func (b Base) InnerWidth() int {
	return max(b.width-BorderHeight, 0)
}
