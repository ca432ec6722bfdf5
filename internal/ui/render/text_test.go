package render

import (
	"testing"
	"time"

	"github.com/charmbracelet/lipgloss"
)

func TestSanitize(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"plain ascii", "Hello", "Hello"},
		{"keeps tab", "a\tb", "a\tb"},
		{"drops newline", "line\nbreak", "linebreak"},
		{"drops escape", "red\x1b[31m", "red[31m"},
		{"nbsp becomes space", "a\u00a0b", "a b"},
		{"drops invalid byte", "ab\xffc", "abc"},
		{"keeps unicode", "Café 日本", "Café 日本"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Sanitize(tt.input); got != tt.want {
				t.Errorf("Sanitize(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestTruncate(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		maxWidth int
		want     string
	}{
		{"fits", "Hello", 10, "Hello"},
		{"exact", "Hello", 5, "Hello"},
		{"cut", "Hello World", 8, "Hello W…"},
		{"zero width", "Hello", 0, ""},
		{"negative width", "Hello", -1, ""},
		{"wide chars", "日本語テキスト", 7, "日本語…"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Truncate(tt.input, tt.maxWidth)
			if got != tt.want {
				t.Errorf("Truncate(%q, %d) = %q, want %q", tt.input, tt.maxWidth, got, tt.want)
			}
			if lipgloss.Width(got) > max(tt.maxWidth, 0) {
				t.Errorf("Truncate(%q, %d) width = %d", tt.input, tt.maxWidth, lipgloss.Width(got))
			}
		})
	}
}

func TestFit(t *testing.T) {
	tests := []struct {
		input string
		width int
	}{
		{"short", 10},
		{"exactly ten", 11},
		{"much longer than the width", 8},
		{"日本語", 10},
		{"", 4},
	}

	for _, tt := range tests {
		if got := lipgloss.Width(Fit(tt.input, tt.width)); got != tt.width {
			t.Errorf("Fit(%q, %d) width = %d, want %d", tt.input, tt.width, got, tt.width)
		}
	}
}

func TestRow(t *testing.T) {
	if got := Row("left", "right", 20); lipgloss.Width(got) != 20 {
		t.Errorf("Row width = %d, want 20", lipgloss.Width(got))
	}
	if got := Row("left", "right", 5); got != "left right" {
		t.Errorf("Row too narrow = %q, want single space gap", got)
	}
}

func TestSeparatorAndEmptyLine(t *testing.T) {
	if got := Separator(3); got != "───" {
		t.Errorf("Separator(3) = %q", got)
	}
	if got := EmptyLine(3); got != "   " {
		t.Errorf("EmptyLine(3) = %q", got)
	}
	if Separator(-1) != "" || EmptyLine(-1) != "" {
		t.Error("negative widths should render empty")
	}
}

func TestDuration(t *testing.T) {
	tests := []struct {
		d    time.Duration
		want string
	}{
		{0, "0:00"},
		{-time.Second, "0:00"},
		{59 * time.Second, "0:59"},
		{3*time.Minute + 5*time.Second, "3:05"},
		{3*time.Minute + 4500*time.Millisecond, "3:05"},
		{time.Hour + 2*time.Minute + 3*time.Second, "1:02:03"},
	}

	for _, tt := range tests {
		if got := Duration(tt.d); got != tt.want {
			t.Errorf("Duration(%v) = %q, want %q", tt.d, got, tt.want)
		}
	}
}

func TestOrDefault(t *testing.T) {
	if got := OrDefault("  ", "Unknown Artist"); got != "Unknown Artist" {
		t.Errorf("OrDefault(blank) = %q", got)
	}
	if got := OrDefault("Artist", "Unknown Artist"); got != "Artist" {
		t.Errorf("OrDefault(value) = %q", got)
	}
}
