package ui

import (
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/Dicklesworthstone/restricted_input/pkg/model"
)

// ConfigReloadedMsg carries a form definition re-read from disk
type ConfigReloadedMsg struct {
	Form model.Form
	Err  error
}

// FormModel is a vertical stack of restricted inputs with focus handling
type FormModel struct {
	title  string
	fields []RestrictedInputModel
	focus  int
	opts   []Option

	help  HelpOverlayModel
	theme Theme

	width  int
	height int

	reloadErr error

	// Result
	submitted bool
	cancelled bool
}

// NewFormModel builds a form from its definition. Options apply to every field.
func NewFormModel(form model.Form, theme Theme, opts ...Option) FormModel {
	m := FormModel{
		opts:  opts,
		help:  NewHelpOverlayModel(theme),
		theme: theme,
	}
	m.applyForm(form)
	return m
}

// applyForm rebuilds the inputs, carrying over values of fields that survive.
// The returned command restarts the cursor blink on the focused input.
func (m *FormModel) applyForm(form model.Form) tea.Cmd {
	focusedName := ""
	values := make(map[string]string, len(m.fields))
	for i, f := range m.fields {
		values[f.Name()] = f.Value()
		if i == m.focus {
			focusedName = f.Name()
		}
	}

	m.title = form.Title
	m.fields = make([]RestrictedInputModel, len(form.Fields))
	m.focus = 0
	for i, def := range form.Fields {
		if v, ok := values[def.Name]; ok {
			def.Value = v
		}
		m.fields[i] = NewRestrictedInput(def, m.theme, m.opts...)
		if def.Name == focusedName {
			m.focus = i
		}
	}

	labelWidth := 0
	for _, f := range m.fields {
		if w := f.LabelWidth(); w > labelWidth {
			labelWidth = w
		}
	}
	for i := range m.fields {
		m.fields[i].SetLabelWidth(labelWidth)
		if m.width > 0 {
			m.fields[i].SetSize(m.width)
		}
	}
	m.help.SetFields(form.Fields)
	if len(m.fields) == 0 {
		return nil
	}
	return m.fields[m.focus].Focus()
}

// Init implements tea.Model
func (m FormModel) Init() tea.Cmd {
	return textinput.Blink
}

// Update implements tea.Model
func (m FormModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.SetSize(msg.Width, msg.Height)
		return m, nil

	case ConfigReloadedMsg:
		if msg.Err != nil {
			m.reloadErr = msg.Err
			return m, nil
		}
		m.reloadErr = nil
		return m, m.applyForm(msg.Form)

	case tea.KeyMsg:
		if m.help.IsVisible() {
			m.help, _ = m.help.Update(msg)
			return m, nil
		}
		switch msg.String() {
		case "esc", "ctrl+c":
			m.cancelled = true
			return m, tea.Quit
		case "ctrl+g":
			m.help.Toggle()
			return m, nil
		}
		if len(m.fields) == 0 {
			return m, nil
		}

		if _, ok := m.fields[m.focus].Check(msg); ok {
			switch msg.Type {
			case tea.KeyTab:
				return m, m.moveFocus(1)
			case tea.KeyShiftTab:
				return m, m.moveFocus(-1)
			case tea.KeyEnter:
				if m.focus == len(m.fields)-1 {
					m.submitted = true
					return m, tea.Quit
				}
				return m, m.moveFocus(1)
			}
		}
	}

	if len(m.fields) == 0 {
		return m, nil
	}
	var cmd tea.Cmd
	m.fields[m.focus], cmd = m.fields[m.focus].Update(msg)
	return m, cmd
}

func (m *FormModel) moveFocus(delta int) tea.Cmd {
	n := len(m.fields)
	m.fields[m.focus].Blur()
	m.focus = ((m.focus+delta)%n + n) % n
	return m.fields[m.focus].Focus()
}

// View implements tea.Model
func (m FormModel) View() string {
	if m.help.IsVisible() {
		return m.help.View()
	}

	var b strings.Builder

	width := m.width
	if width <= 0 {
		width = 60
	}

	if m.title != "" {
		titleStyle := m.theme.Renderer.NewStyle().
			Bold(true).
			Foreground(m.theme.Primary)
		b.WriteString(titleStyle.Render(m.title))
		b.WriteString("\n")
		b.WriteString(m.theme.RenderDivider(width))
		b.WriteString("\n\n")
	}

	for i, f := range m.fields {
		b.WriteString(f.View())
		b.WriteString("\n")
		if i < len(m.fields)-1 {
			b.WriteString("\n")
		}
	}

	if m.reloadErr != nil {
		errStyle := m.theme.Renderer.NewStyle().Foreground(m.theme.Danger)
		b.WriteString("\n")
		b.WriteString(errStyle.Render("Reload failed: " + m.reloadErr.Error()))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	hintStyle := m.theme.Renderer.NewStyle().Faint(true)
	b.WriteString(hintStyle.Render("[Tab] Next  [Enter] Submit  [Ctrl+G] Help  [Esc] Cancel"))

	return lipgloss.NewStyle().Padding(1, 2).Render(b.String())
}

// SetSize sets the form dimensions
func (m *FormModel) SetSize(width, height int) {
	m.width = width
	m.height = height
	m.help.SetSize(width, height)

	fieldWidth := width - 4 // padding
	for i := range m.fields {
		m.fields[i].SetSize(fieldWidth)
	}
}

// Fields returns the inputs in display order
func (m FormModel) Fields() []RestrictedInputModel {
	return m.fields
}

// FocusedName returns the name of the field with focus
func (m FormModel) FocusedName() string {
	if len(m.fields) == 0 {
		return ""
	}
	return m.fields[m.focus].Name()
}

// Values returns the current value of every field by name
func (m FormModel) Values() map[string]string {
	out := make(map[string]string, len(m.fields))
	for _, f := range m.fields {
		out[f.Name()] = f.Value()
	}
	return out
}

// ReloadError returns the last config reload failure, if any
func (m FormModel) ReloadError() error {
	return m.reloadErr
}

// HelpVisible returns true if the help overlay is showing
func (m FormModel) HelpVisible() bool {
	return m.help.IsVisible()
}

// IsSubmitted returns true if the user submitted the form
func (m FormModel) IsSubmitted() bool {
	return m.submitted
}

// IsCancelled returns true if the user cancelled
func (m FormModel) IsCancelled() bool {
	return m.cancelled
}
