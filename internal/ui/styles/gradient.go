package styles

import (
	"image/color"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/lucasb-eyer/go-colorful"
	"github.com/rivo/uniseg"
)

// ApplyGradient renders text with a horizontal color gradient, one color
// step per grapheme cluster.
func ApplyGradient(text string, from, to lipgloss.Color) string {
	clusters := graphemes(text)
	switch len(clusters) {
	case 0:
		return ""
	case 1:
		return lipgloss.NewStyle().Foreground(from).Render(text)
	}

	colors := blendColors(len(clusters), from, to)

	var b strings.Builder
	for i, cluster := range clusters {
		b.WriteString(lipgloss.NewStyle().Foreground(lipgloss.Color(colors[i].Hex())).Render(cluster))
	}
	return b.String()
}

// GradientBar renders width cells of fill, the first filled of them with a
// gradient spanning the whole bar and the rest with empty in the subtle
// color. The gradient is laid over the full width so the color of a cell
// does not change as the bar fills.
func GradientBar(filled, width int, fill, empty string) string {
	if width <= 0 {
		return ""
	}
	filled = min(max(filled, 0), width)

	colors := blendColors(width, T().GradientFrom, T().GradientTo)

	var b strings.Builder
	for i := range filled {
		b.WriteString(lipgloss.NewStyle().Foreground(lipgloss.Color(colors[i].Hex())).Render(fill))
	}
	if filled < width {
		b.WriteString(T().S().Subtle.Render(strings.Repeat(empty, width-filled)))
	}
	return b.String()
}

func graphemes(text string) []string {
	var clusters []string
	gr := uniseg.NewGraphemes(text)
	for gr.Next() {
		clusters = append(clusters, gr.Str())
	}
	return clusters
}

// blendColors blends from into to in HCL space, which keeps perceived
// brightness even along the ramp.
func blendColors(size int, from, to lipgloss.Color) []colorful.Color {
	c1 := toColorful(from)
	if size < 2 {
		return []colorful.Color{c1}
	}
	c2 := toColorful(to)

	colors := make([]colorful.Color, size)
	for i := range size {
		colors[i] = c1.BlendHcl(c2, float64(i)/float64(size-1)).Clamped()
	}
	return colors
}

// toColorful parses a #rrggbb lipgloss color. ANSI palette indexes have no
// fixed RGB value and fall back to gray.
func toColorful(c lipgloss.Color) colorful.Color {
	if col, err := colorful.Hex(string(c)); err == nil {
		return col
	}
	gray, _ := colorful.MakeColor(color.Gray{Y: 128})
	return gray
}
