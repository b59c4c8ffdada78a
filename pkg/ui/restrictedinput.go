package ui

import (
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/mattn/go-runewidth"

	"github.com/Dicklesworthstone/restricted_input/pkg/caret"
	"github.com/Dicklesworthstone/restricted_input/pkg/keyfilter"
	"github.com/Dicklesworthstone/restricted_input/pkg/model"
)

// ChangeEvent is delivered to the change hook after a key altered the value.
type ChangeEvent struct {
	Name  string
	field inputField
}

// Target implements caret.Event
func (e ChangeEvent) Target() caret.Field {
	return e.field
}

// inputField exposes a textinput as a caret.Field. The textinput has no
// selection, so a range collapses to its start.
type inputField struct {
	input *textinput.Model
}

func (f inputField) Value() string {
	return f.input.Value()
}

func (f inputField) SetSelectionRange(start, _ int) {
	f.input.SetCursor(start)
}

// Option configures a RestrictedInputModel
type Option func(*RestrictedInputModel)

// WithOnChange installs a hook that runs before the caret is repositioned.
// It receives a ChangeEvent.
func WithOnChange(fn func(caret.Event)) Option {
	return func(m *RestrictedInputModel) {
		m.onChange = fn
	}
}

// RestrictedInputModel is a single-line input that drops keys outside its
// allow-list and keeps the caret pinned to one edge.
type RestrictedInputModel struct {
	input    textinput.Model
	field    model.Field
	filter   keyfilter.Filter
	fixer    caret.Fixer
	onChange func(caret.Event)
	theme    Theme

	width      int
	labelWidth int

	rejected     int
	lastRejected string
}

// NewRestrictedInput creates an input for the given field definition
func NewRestrictedInput(field model.Field, theme Theme, opts ...Option) RestrictedInputModel {
	ti := textinput.New()
	ti.Prompt = "› "
	ti.Placeholder = field.Placeholder
	ti.CharLimit = field.CharLimit
	ti.PromptStyle = theme.Renderer.NewStyle().Foreground(theme.Muted)
	ti.TextStyle = theme.Renderer.NewStyle().Foreground(theme.Text)

	m := RestrictedInputModel{
		input: ti,
		theme: theme,
	}
	for _, opt := range opts {
		opt(&m)
	}
	m.configure(field)
	m.SetValue(field.Value)
	return m
}

func (m *RestrictedInputModel) configure(field model.Field) {
	m.field = field.Clone()
	m.filter = keyfilter.New(field.AllowedKeys)
	m.fixer = caret.New(m.onChange, field.StickLeft())
	m.input.Placeholder = field.Placeholder
	m.input.CharLimit = field.CharLimit
}

// Reconfigure swaps the field definition but keeps the current value
func (m *RestrictedInputModel) Reconfigure(field model.Field) {
	value := m.input.Value()
	m.configure(field)
	m.SetValue(value)
}

// Init implements tea.Model
func (m RestrictedInputModel) Init() tea.Cmd {
	return textinput.Blink
}

// Check returns the first identifier of msg that the filter rejects.
// ok is true when every identifier passes.
func (m RestrictedInputModel) Check(msg tea.KeyMsg) (rejected string, ok bool) {
	return m.check(KeyIdentifiers(msg))
}

func (m RestrictedInputModel) check(ids []string) (string, bool) {
	for _, id := range ids {
		ev := &keyEvent{key: id}
		m.filter.Handle(ev)
		if ev.prevented {
			return id, false
		}
	}
	return "", true
}

func (m *RestrictedInputModel) reject(id string) {
	m.rejected++
	m.lastRejected = id
}

// Update implements tea.Model
func (m RestrictedInputModel) Update(msg tea.Msg) (RestrictedInputModel, tea.Cmd) {
	var cmd tea.Cmd
	before := m.input.Value()

	key, isKey := msg.(tea.KeyMsg)
	if isKey {
		if id, ok := m.Check(key); !ok {
			m.reject(id)
			return m, nil
		}
		m.lastRejected = ""
	}

	m.input, cmd = m.input.Update(msg)
	after := m.input.Value()
	if after == before {
		return m, cmd
	}

	if !isKey && !m.admitChange(before) {
		return m, cmd
	}

	m.fixer.Handle(ChangeEvent{Name: m.field.Name, field: inputField{input: &m.input}})
	return m, cmd
}

// admitChange vets text that appeared without a key press (clipboard paste).
// Only the runes inserted since before are checked, so text already in the
// field, such as a value kept across Reconfigure, never blocks the change.
// A rejected change is undone.
func (m *RestrictedInputModel) admitChange(before string) bool {
	if id, ok := m.check(insertedKeys(before, m.input.Value())); !ok {
		m.reject(id)
		m.SetValue(before)
		return false
	}
	return true
}

// insertedKeys returns, one identifier per rune, the text that after has in
// place of before once their common prefix and suffix are removed.
func insertedKeys(before, after string) []string {
	b, a := []rune(before), []rune(after)

	prefix := 0
	for prefix < len(b) && prefix < len(a) && b[prefix] == a[prefix] {
		prefix++
	}
	suffix := 0
	for suffix < len(b)-prefix && suffix < len(a)-prefix &&
		b[len(b)-1-suffix] == a[len(a)-1-suffix] {
		suffix++
	}

	inserted := a[prefix : len(a)-suffix]
	ids := make([]string, len(inserted))
	for i, r := range inserted {
		ids[i] = string(r)
	}
	return ids
}

// View implements tea.Model
func (m RestrictedInputModel) View() string {
	var b strings.Builder

	labelStyle := m.theme.Renderer.NewStyle().Foreground(m.theme.Subtext)
	if m.input.Focused() {
		labelStyle = labelStyle.Foreground(m.theme.Primary).Bold(true)
	}
	b.WriteString(labelStyle.Render(padLabel(m.field.DisplayLabel(), m.labelWidth)))
	b.WriteString(" ")
	b.WriteString(m.input.View())

	if !m.input.Focused() {
		return b.String()
	}

	b.WriteString("\n")
	b.WriteString(strings.Repeat(" ", m.labelWidth+1))
	hintStyle := m.theme.Renderer.NewStyle().Faint(true)
	if m.lastRejected != "" {
		errStyle := m.theme.Renderer.NewStyle().Foreground(m.theme.Danger)
		b.WriteString(errStyle.Render("✗ " + displayKey(m.lastRejected) + " not allowed"))
		b.WriteString("  ")
	}
	hint := "caret " + caret.AlignmentName(m.fixer.StickLeft())
	if keys := SummarizeKeys(m.field.AllowedKeys); len(keys) > 0 {
		shown := make([]string, len(keys))
		for i, k := range keys {
			shown[i] = displayKey(k)
		}
		hint = "keys " + strings.Join(shown, " ") + " · " + hint
	}
	if m.width > 0 {
		hint = runewidth.Truncate(hint, m.width-m.labelWidth-1, "…")
	}
	b.WriteString(hintStyle.Render(hint))

	return b.String()
}

func padLabel(label string, width int) string {
	w := runewidth.StringWidth(label)
	if w >= width {
		return label
	}
	return label + strings.Repeat(" ", width-w)
}

func displayKey(k string) string {
	if k == " " {
		return "Space"
	}
	return k
}

// SetSize sets the available width
func (m *RestrictedInputModel) SetSize(width int) {
	m.width = width
	inputWidth := width - m.labelWidth - 1 - runewidth.StringWidth(m.input.Prompt) - 1
	if inputWidth < 8 {
		inputWidth = 8
	}
	m.input.Width = inputWidth
}

// SetLabelWidth aligns this input's label column with its siblings
func (m *RestrictedInputModel) SetLabelWidth(width int) {
	m.labelWidth = width
}

// LabelWidth returns the display width of this input's label
func (m RestrictedInputModel) LabelWidth() int {
	return runewidth.StringWidth(m.field.DisplayLabel())
}

// Focus gives the input keyboard focus
func (m *RestrictedInputModel) Focus() tea.Cmd {
	return m.input.Focus()
}

// Blur removes keyboard focus
func (m *RestrictedInputModel) Blur() {
	m.input.Blur()
}

// Focused returns true if the input has focus
func (m RestrictedInputModel) Focused() bool {
	return m.input.Focused()
}

// Value returns the current text
func (m RestrictedInputModel) Value() string {
	return m.input.Value()
}

// SetValue replaces the text and pins the caret
func (m *RestrictedInputModel) SetValue(value string) {
	m.input.SetValue(value)
	m.input.SetCursor(m.fixer.Offset(m.input.Value()))
}

// Position returns the caret offset
func (m RestrictedInputModel) Position() int {
	return m.input.Position()
}

// Name returns the field name
func (m RestrictedInputModel) Name() string {
	return m.field.Name
}

// Field returns a copy of the field definition
func (m RestrictedInputModel) Field() model.Field {
	return m.field.Clone()
}

// Filter returns the key filter in effect
func (m RestrictedInputModel) Filter() keyfilter.Filter {
	return m.filter
}

// Rejected returns how many key presses were dropped
func (m RestrictedInputModel) Rejected() int {
	return m.rejected
}

// LastRejected returns the identifier of the most recent dropped key,
// cleared once an allowed key arrives.
func (m RestrictedInputModel) LastRejected() string {
	return m.lastRejected
}

// Reset clears the text and rejection state
func (m *RestrictedInputModel) Reset() {
	m.SetValue("")
	m.rejected = 0
	m.lastRejected = ""
}
