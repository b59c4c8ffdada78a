package model

import (
	"fmt"

	"github.com/Dicklesworthstone/restricted_input/pkg/caret"
)

// Form is an ordered group of restricted fields
type Form struct {
	Title  string  `yaml:"title"`
	Fields []Field `yaml:"fields"`
}

// Field describes one restricted text input
type Field struct {
	Name        string   `yaml:"name"`
	Label       string   `yaml:"label,omitempty"`
	Placeholder string   `yaml:"placeholder,omitempty"`
	AllowedKeys []string `yaml:"allowed_keys,omitempty"`
	Caret       string   `yaml:"caret,omitempty"` // "left" or "right" (default)
	CharLimit   int      `yaml:"char_limit,omitempty"`
	Value       string   `yaml:"value,omitempty"`
}

// Clone creates a deep copy of the field
func (f Field) Clone() Field {
	clone := f
	if f.AllowedKeys != nil {
		clone.AllowedKeys = make([]string, len(f.AllowedKeys))
		copy(clone.AllowedKeys, f.AllowedKeys)
	}
	return clone
}

// StickLeft returns true if the caret is pinned to the start of the field
func (f Field) StickLeft() bool {
	left, _ := caret.ParseAlignment(f.Caret)
	return left
}

// DisplayLabel returns the label, falling back to the name
func (f Field) DisplayLabel() string {
	if f.Label != "" {
		return f.Label
	}
	return f.Name
}

// Validate checks if the field definition is usable
func (f *Field) Validate() error {
	if f.Name == "" {
		return fmt.Errorf("field name cannot be empty")
	}
	if _, err := caret.ParseAlignment(f.Caret); err != nil {
		return fmt.Errorf("field %s: %w", f.Name, err)
	}
	if f.CharLimit < 0 {
		return fmt.Errorf("field %s: char_limit cannot be negative (%d)", f.Name, f.CharLimit)
	}
	return nil
}

// Clone creates a deep copy of the form
func (f Form) Clone() Form {
	clone := f
	if f.Fields != nil {
		clone.Fields = make([]Field, len(f.Fields))
		for i, field := range f.Fields {
			clone.Fields[i] = field.Clone()
		}
	}
	return clone
}

// Validate checks every field and rejects duplicate names
func (f *Form) Validate() error {
	if len(f.Fields) == 0 {
		return fmt.Errorf("form has no fields")
	}
	seen := make(map[string]bool, len(f.Fields))
	for i := range f.Fields {
		if err := f.Fields[i].Validate(); err != nil {
			return err
		}
		if seen[f.Fields[i].Name] {
			return fmt.Errorf("duplicate field name: %s", f.Fields[i].Name)
		}
		seen[f.Fields[i].Name] = true
	}
	return nil
}

// Field returns the field with the given name
func (f Form) Field(name string) (Field, bool) {
	for _, field := range f.Fields {
		if field.Name == name {
			return field, true
		}
	}
	return Field{}, false
}
