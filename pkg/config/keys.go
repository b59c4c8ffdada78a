package config

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/sahilm/fuzzy"

	"github.com/Dicklesworthstone/restricted_input/pkg/keyfilter"
	"github.com/Dicklesworthstone/restricted_input/pkg/model"
)

var modifierPrefixes = []string{"ctrl+", "alt+", "shift+"}

// ExpandKeys replaces range shorthands such as "0-9" or "a-f" with the
// single-character keys they cover. Order is preserved and duplicates dropped.
func ExpandKeys(keys []string) []string {
	if keys == nil {
		return nil
	}
	out := make([]string, 0, len(keys))
	seen := make(map[string]bool, len(keys))
	add := func(k string) {
		if !seen[k] {
			seen[k] = true
			out = append(out, k)
		}
	}
	for _, k := range keys {
		lo, hi, ok := parseRange(k)
		if !ok {
			add(k)
			continue
		}
		for r := lo; r <= hi; r++ {
			add(string(r))
		}
	}
	return out
}

// parseRange recognizes "x-y" where x and y are single characters and x <= y.
func parseRange(k string) (rune, rune, bool) {
	runes := []rune(k)
	if len(runes) != 3 || runes[1] != '-' {
		return 0, 0, false
	}
	if runes[0] > runes[2] {
		return 0, 0, false
	}
	return runes[0], runes[2], true
}

// CheckKeys returns warnings for identifiers that can never match a key press.
// Single characters, named keys and modifier combos are accepted.
func CheckKeys(keys []string) []string {
	var warnings []string
	for _, k := range keys {
		if k == "" {
			warnings = append(warnings, "empty key identifier")
			continue
		}
		if utf8.RuneCountInString(k) == 1 || keyfilter.IsNamed(k) || isCombo(k) {
			continue
		}
		if s := Suggest(k); s != "" {
			warnings = append(warnings, fmt.Sprintf("unknown key %q (did you mean %q?)", k, s))
		} else {
			warnings = append(warnings, fmt.Sprintf("unknown key %q", k))
		}
	}
	return warnings
}

func isCombo(k string) bool {
	for _, p := range modifierPrefixes {
		if strings.HasPrefix(k, p) && len(k) > len(p) {
			return true
		}
	}
	return false
}

// Suggest returns the named key closest to k, or "" if nothing matches.
func Suggest(k string) string {
	matches := fuzzy.Find(k, keyfilter.NamedKeys())
	if len(matches) == 0 {
		return ""
	}
	return matches[0].Str
}

// CheckValue returns a warning when a preset value holds a character the
// field's own allow-list would never let the user type, or "" otherwise.
func CheckValue(f model.Field) string {
	filter := keyfilter.New(f.AllowedKeys)
	for _, r := range f.Value {
		if !filter.Allows(string(r)) {
			return fmt.Sprintf("value %q contains %q, which allowed_keys does not permit", f.Value, string(r))
		}
	}
	return ""
}
