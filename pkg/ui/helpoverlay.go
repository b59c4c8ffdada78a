package ui

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/Dicklesworthstone/restricted_input/pkg/keyfilter"
	"github.com/Dicklesworthstone/restricted_input/pkg/model"
)

// HelpOverlayModel shows form shortcuts and each field's allowed keys
type HelpOverlayModel struct {
	visible bool
	fields  []model.Field
	width   int
	height  int
	theme   Theme
}

// NewHelpOverlayModel creates a new help overlay
func NewHelpOverlayModel(theme Theme) HelpOverlayModel {
	return HelpOverlayModel{
		theme: theme,
	}
}

// SetFields replaces the field list shown in the overlay
func (m *HelpOverlayModel) SetFields(fields []model.Field) {
	m.fields = fields
}

// Toggle toggles visibility
func (m *HelpOverlayModel) Toggle() {
	m.visible = !m.visible
}

// IsVisible returns true if overlay is showing
func (m HelpOverlayModel) IsVisible() bool {
	return m.visible
}

// SetSize sets dimensions
func (m *HelpOverlayModel) SetSize(width, height int) {
	m.width = width
	m.height = height
}

// Update handles input
func (m HelpOverlayModel) Update(msg tea.Msg) (HelpOverlayModel, tea.Cmd) {
	if !m.visible {
		return m, nil
	}

	switch msg.(type) {
	case tea.KeyMsg:
		// Any key closes help
		m.visible = false
	}

	return m, nil
}

// View renders the help overlay
func (m HelpOverlayModel) View() string {
	if !m.visible {
		return ""
	}

	var b strings.Builder

	titleStyle := m.theme.Renderer.NewStyle().
		Bold(true).
		Foreground(m.theme.Primary)
	b.WriteString(titleStyle.Render("Form Help"))
	b.WriteString("\n\n")

	sectionStyle := m.theme.Renderer.NewStyle().Bold(true).Foreground(m.theme.Muted)
	keyStyle := m.theme.Renderer.NewStyle().Foreground(m.theme.Primary).Width(12)
	descStyle := m.theme.Renderer.NewStyle().Foreground(m.theme.Subtext)

	b.WriteString(sectionStyle.Render("NAVIGATION") + "\n")
	shortcuts := []struct{ key, desc string }{
		{"Tab", "Next field"},
		{"Shift+Tab", "Previous field (if allowed)"},
		{"Enter", "Next field / submit on last"},
		{"Ctrl+G", "Toggle this help"},
		{"Esc", "Cancel"},
	}
	for _, s := range shortcuts {
		b.WriteString("  " + keyStyle.Render(s.key) + descStyle.Render(s.desc) + "\n")
	}

	if len(m.fields) > 0 {
		b.WriteString("\n")
		b.WriteString(sectionStyle.Render("FIELDS") + "\n")
		for _, f := range m.fields {
			caretSide := "caret right"
			if f.StickLeft() {
				caretSide = "caret left"
			}
			keys := SummarizeKeys(f.AllowedKeys)
			for i, k := range keys {
				keys[i] = displayKey(k)
			}
			desc := caretSide
			if len(keys) > 0 {
				desc += " · " + strings.Join(keys, " ")
			} else {
				desc += " · control keys only"
			}
			b.WriteString("  " + keyStyle.Render(f.DisplayLabel()) + descStyle.Render(desc) + "\n")
		}
	}

	b.WriteString("\n")
	b.WriteString(descStyle.Render("Always allowed: " + strings.Join(keyfilter.DefaultKeys(), " ")))
	b.WriteString("\n\n")
	hintStyle := m.theme.Renderer.NewStyle().Faint(true).Italic(true)
	b.WriteString(hintStyle.Render("[Press any key to close]"))

	boxStyle := m.theme.Renderer.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(m.theme.Border).
		Padding(1, 2)

	box := boxStyle.Render(b.String())
	if m.width > 0 && m.height > 0 {
		return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, box)
	}
	return box
}
