// Package caret pins a text field's caret to one edge after every change.
package caret

import (
	"fmt"
	"unicode/utf8"
)

// Field is the editable target of a change event.
type Field interface {
	Value() string
	SetSelectionRange(start, end int)
}

// Event is a change notification carrying its field.
type Event interface {
	Target() Field
}

// Fixer runs a change handler and then collapses the selection at one edge.
type Fixer struct {
	onChange  func(Event)
	stickLeft bool
}

// New returns a Fixer. A nil onChange is allowed.
func New(onChange func(Event), stickLeft bool) Fixer {
	return Fixer{onChange: onChange, stickLeft: stickLeft}
}

// StickLeft reports whether the caret is pinned to the start.
func (f Fixer) StickLeft() bool {
	return f.stickLeft
}

// Offset returns the caret position for value, counted in characters.
func (f Fixer) Offset(value string) int {
	if f.stickLeft {
		return 0
	}
	return utf8.RuneCountInString(value)
}

// Handle invokes the change handler, then moves the caret.
// The value is read after onChange so that state it applied is observed.
func (f Fixer) Handle(ev Event) {
	if f.onChange != nil {
		f.onChange(ev)
	}
	target := ev.Target()
	off := f.Offset(target.Value())
	target.SetSelectionRange(off, off)
}

// NewHandler returns an event handler suitable for binding to change.
func NewHandler(onChange func(Event), stickLeft bool) func(Event) {
	return New(onChange, stickLeft).Handle
}

// Alignment names used in configuration files.
const (
	AlignLeft  = "left"
	AlignRight = "right"
)

// ParseAlignment maps an alignment name to the stickLeft flag.
// An empty name means right.
func ParseAlignment(name string) (bool, error) {
	switch name {
	case AlignLeft:
		return true, nil
	case AlignRight, "":
		return false, nil
	}
	return false, fmt.Errorf("invalid caret alignment: %q (want %q or %q)", name, AlignLeft, AlignRight)
}

// AlignmentName is the inverse of ParseAlignment.
func AlignmentName(stickLeft bool) string {
	if stickLeft {
		return AlignLeft
	}
	return AlignRight
}
