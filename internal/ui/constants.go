// Package ui provides shared UI constants and utilities.
package ui

// Layout constants shared by the panels.
const (
	// ScrollMargin is the number of rows kept visible above/below the cursor.
	ScrollMargin = 3

	// BorderHeight is the vertical space consumed by a panel border.
	BorderHeight = 2

	// HeaderHeight is the space for header + separator in panels.
	HeaderHeight = 2

	// PanelOverhead is the total vertical overhead of a list panel:
	// listHeight = panelHeight - PanelOverhead.
	PanelOverhead = BorderHeight + HeaderHeight

	// MinProgressBarWidth is the narrowest progress bar still drawn.
	MinProgressBarWidth = 5
)
