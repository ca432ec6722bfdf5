// Package scanbar displays folder scan progress at the bottom of the screen.
package scanbar

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/lipgloss"
	"github.com/dustin/go-humanize"

	"github.com/llehouerou/simplicity/internal/scanner"
	"github.com/llehouerou/simplicity/internal/ui/render"
	"github.com/llehouerou/simplicity/internal/ui/styles"
)

// Height is the height of an active scan bar, borders included.
const Height = 3

const (
	indicator   = "◦"
	minBarWidth = 10
)

func labelStyle() lipgloss.Style {
	return styles.T().S().Title
}

func countStyle() lipgloss.Style {
	return styles.T().S().Muted
}

func indicatorStyle() lipgloss.Style {
	return lipgloss.NewStyle().Foreground(styles.T().Primary)
}

// Model tracks one running scan.
type Model struct {
	bar      progress.Model
	folder   string
	progress scanner.Progress
	active   bool
}

// New creates an idle scan bar.
func New() Model {
	return Model{
		bar: progress.New(
			progress.WithGradient(string(styles.T().GradientFrom), string(styles.T().GradientTo)),
			progress.WithoutPercentage(),
		),
	}
}

// Start shows the bar for a scan of folder.
func (m *Model) Start(folder string) {
	m.folder = folder
	m.progress = scanner.Progress{Phase: scanner.PhaseDiscovering}
	m.active = true
}

// SetProgress records the latest progress report.
func (m *Model) SetProgress(p scanner.Progress) {
	m.progress = p
	if p.Phase == scanner.PhaseDone {
		m.active = false
	}
}

// Finish hides the bar.
func (m *Model) Finish() {
	m.active = false
}

// Active reports whether a scan is being displayed.
func (m Model) Active() bool { return m.active }

// Progress returns the latest progress report.
func (m Model) Progress() scanner.Progress { return m.progress }

// Height returns the rendered height: Height while active, 0 otherwise.
func (m Model) Height() int {
	if !m.active {
		return 0
	}
	return Height
}

// View renders the bar for the given outer width, or "" when idle.
func (m Model) View(width int) string {
	if !m.active {
		return ""
	}
	inner := max(width-2, 0)

	var line string
	if m.progress.Phase == scanner.PhaseReading && m.progress.Total > 0 {
		line = m.renderWithBar(inner)
	} else {
		line = m.renderDiscovering(inner)
	}

	return styles.PanelStyle(false).Width(inner).Render(line)
}

func (m Model) label() string {
	return "Scanning " + render.OrDefault(m.folder, ".")
}

// renderWithBar renders: "◦ Scanning ~/Music  ━━━━━━──── 42/100"
func (m Model) renderWithBar(width int) string {
	count := fmt.Sprintf("%s/%s", humanize.Comma(int64(m.progress.Current)), humanize.Comma(int64(m.progress.Total)))
	fixed := 2 + 2 + 1 + lipgloss.Width(count) // "◦ ", gap, space before count

	labelWidth := max(width-fixed-minBarWidth, minBarWidth)
	labelWidth = min(labelWidth, lipgloss.Width(m.label()))
	barWidth := max(width-fixed-labelWidth, minBarWidth)

	bar := m.bar
	bar.Width = barWidth
	ratio := min(float64(m.progress.Current)/float64(m.progress.Total), 1)

	var b strings.Builder
	b.WriteString(indicatorStyle().Render(indicator))
	b.WriteString(" ")
	b.WriteString(labelStyle().Render(render.Fit(m.label(), labelWidth)))
	b.WriteString("  ")
	b.WriteString(bar.ViewAs(ratio))
	b.WriteString(" ")
	b.WriteString(countStyle().Render(count))
	return b.String()
}

// renderDiscovering renders: "◦ Scanning ~/Music        123 files found"
func (m Model) renderDiscovering(width int) string {
	var count string
	if m.progress.Current > 0 {
		count = humanize.Comma(int64(m.progress.Current)) + " files found"
	}
	left := indicatorStyle().Render(indicator) + " " +
		labelStyle().Render(render.Truncate(m.label(), max(width-lipgloss.Width(count)-4, 1)))
	return render.Row(left, countStyle().Render(count), width)
}
