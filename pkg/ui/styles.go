package ui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// ══════════════════════════════════════════════════════════════════════════════
// COLOR PALETTE - Dracula-inspired
// ══════════════════════════════════════════════════════════════════════════════

var (
	ColorBgHighlight = lipgloss.Color("#44475A")
	ColorText        = lipgloss.Color("#F8F8F2")
	ColorSubtext     = lipgloss.Color("#BFBFBF")
	ColorMuted       = lipgloss.Color("#6272A4")
	ColorPrimary     = lipgloss.Color("#BD93F9")
	ColorDanger      = lipgloss.Color("#FF5555")
)

// Theme bundles the adaptive colours used by every widget in this package.
type Theme struct {
	Renderer *lipgloss.Renderer

	Primary lipgloss.AdaptiveColor
	Text    lipgloss.AdaptiveColor
	Subtext lipgloss.AdaptiveColor
	Muted   lipgloss.AdaptiveColor
	Border  lipgloss.AdaptiveColor
	Danger  lipgloss.AdaptiveColor
}

// DefaultTheme returns the Dracula theme bound to r.
// A nil renderer uses lipgloss's default renderer.
func DefaultTheme(r *lipgloss.Renderer) Theme {
	if r == nil {
		r = lipgloss.DefaultRenderer()
	}
	return Theme{
		Renderer: r,
		Primary:  lipgloss.AdaptiveColor{Light: "#7C3AED", Dark: string(ColorPrimary)},
		Text:     lipgloss.AdaptiveColor{Light: "#1F2937", Dark: string(ColorText)},
		Subtext:  lipgloss.AdaptiveColor{Light: "#4B5563", Dark: string(ColorSubtext)},
		Muted:    lipgloss.AdaptiveColor{Light: "#9CA3AF", Dark: string(ColorMuted)},
		Border:   lipgloss.AdaptiveColor{Light: "#D1D5DB", Dark: string(ColorBgHighlight)},
		Danger:   lipgloss.AdaptiveColor{Light: "#DC2626", Dark: string(ColorDanger)},
	}
}

// RenderDivider renders a horizontal divider line
func (t Theme) RenderDivider(width int) string {
	if width <= 0 {
		return ""
	}
	return t.Renderer.NewStyle().
		Foreground(t.Border).
		Render(strings.Repeat("─", width))
}
