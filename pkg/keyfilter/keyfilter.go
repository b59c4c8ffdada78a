// Package keyfilter decides which key presses may reach a text field.
//
// A Filter holds an allow-list of key identifiers. Every filter also carries
// a fixed set of control keys, so a field can always be left, submitted or
// edited even when the caller allows nothing else.
package keyfilter

import "sort"

// Key identifiers of the default set.
const (
	KeyTab       = "Tab"
	KeyReturn    = "Return"
	KeyDelete    = "Delete"
	KeyBackspace = "Backspace"
	KeyMeta      = "Meta"
	KeyControl   = "Control"
	KeyAlt       = "Alt"
	KeyF5        = "F5"
)

// defaultKeys is never mutated; callers only get copies.
var defaultKeys = [...]string{
	KeyTab,
	KeyReturn,
	KeyDelete,
	KeyBackspace,
	KeyMeta,
	KeyControl,
	KeyAlt,
	KeyF5,
}

// DefaultKeys returns a copy of the keys every filter allows.
func DefaultKeys() []string {
	out := make([]string, len(defaultKeys))
	copy(out, defaultKeys[:])
	return out
}

// IsDefault reports whether key belongs to the default set.
func IsDefault(key string) bool {
	for _, k := range defaultKeys {
		if k == key {
			return true
		}
	}
	return false
}

// Event is a key press that can be cancelled.
type Event interface {
	Key() string
	PreventDefault()
}

// Filter is an immutable allow-list. The zero value allows only the default set.
type Filter struct {
	allowed map[string]struct{}
}

// New returns a filter allowing the default keys plus allowedKeys.
// Membership is exact string equality.
func New(allowedKeys []string) Filter {
	allowed := make(map[string]struct{}, len(defaultKeys)+len(allowedKeys))
	for _, k := range defaultKeys {
		allowed[k] = struct{}{}
	}
	for _, k := range allowedKeys {
		allowed[k] = struct{}{}
	}
	return Filter{allowed: allowed}
}

// Allows reports whether key may reach the field.
func (f Filter) Allows(key string) bool {
	if f.allowed == nil {
		return IsDefault(key)
	}
	_, ok := f.allowed[key]
	return ok
}

// Handle cancels ev unless its key is allowed.
func (f Filter) Handle(ev Event) {
	if f.Allows(ev.Key()) {
		return
	}
	ev.PreventDefault()
}

// Keys returns the effective allow-list, sorted.
func (f Filter) Keys() []string {
	if f.allowed == nil {
		keys := DefaultKeys()
		sort.Strings(keys)
		return keys
	}
	keys := make([]string, 0, len(f.allowed))
	for k := range f.allowed {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// NewHandler returns an event handler suitable for binding to key-down.
func NewHandler(allowedKeys []string) func(Event) {
	return New(allowedKeys).Handle
}
