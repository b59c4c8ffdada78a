package ui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/Dicklesworthstone/restricted_input/pkg/keyfilter"
)

var keyNames = map[tea.KeyType]string{
	tea.KeyTab:       keyfilter.KeyTab,
	tea.KeyEnter:     keyfilter.KeyReturn,
	tea.KeyDelete:    keyfilter.KeyDelete,
	tea.KeyBackspace: keyfilter.KeyBackspace,
	tea.KeyEsc:       keyfilter.KeyEscape,
	tea.KeySpace:     keyfilter.KeySpace,
	tea.KeyUp:        keyfilter.KeyArrowUp,
	tea.KeyDown:      keyfilter.KeyArrowDown,
	tea.KeyLeft:      keyfilter.KeyArrowLeft,
	tea.KeyRight:     keyfilter.KeyArrowRight,
	tea.KeyHome:      keyfilter.KeyHome,
	tea.KeyEnd:       keyfilter.KeyEnd,
	tea.KeyPgUp:      keyfilter.KeyPageUp,
	tea.KeyPgDown:    keyfilter.KeyPageDown,
	tea.KeyInsert:    keyfilter.KeyInsert,
	tea.KeyF1:        keyfilter.KeyF1,
	tea.KeyF2:        keyfilter.KeyF2,
	tea.KeyF3:        keyfilter.KeyF3,
	tea.KeyF4:        keyfilter.KeyF4,
	tea.KeyF5:        keyfilter.KeyF5,
	tea.KeyF6:        keyfilter.KeyF6,
	tea.KeyF7:        keyfilter.KeyF7,
	tea.KeyF8:        keyfilter.KeyF8,
	tea.KeyF9:        keyfilter.KeyF9,
	tea.KeyF10:       keyfilter.KeyF10,
	tea.KeyF11:       keyfilter.KeyF11,
	tea.KeyF12:       keyfilter.KeyF12,
}

// KeyIdentifiers translates a terminal key press into filter identifiers.
//
// A plain key yields one identifier. Pastes and rune bursts yield one
// identifier per rune so that each character is checked on its own.
// Modified keys without a name fall back to bubbletea's form ("ctrl+v").
func KeyIdentifiers(msg tea.KeyMsg) []string {
	if msg.Type == tea.KeyRunes && !msg.Alt && len(msg.Runes) > 0 {
		ids := make([]string, 0, len(msg.Runes))
		for _, r := range msg.Runes {
			ids = append(ids, string(r))
		}
		return ids
	}
	if !msg.Alt {
		if name, ok := keyNames[msg.Type]; ok {
			return []string{name}
		}
	}
	return []string{msg.String()}
}

// keyEvent adapts a single identifier to keyfilter.Event.
type keyEvent struct {
	key       string
	prevented bool
}

func (e *keyEvent) Key() string      { return e.key }
func (e *keyEvent) PreventDefault() { e.prevented = true }

// SummarizeKeys collapses runs of three or more consecutive single-rune keys
// into ranges ("0", "1", "2", "3" becomes "0-3"). Other keys pass through.
func SummarizeKeys(keys []string) []string {
	out := make([]string, 0, len(keys))
	for i := 0; i < len(keys); {
		start, ok := singleRune(keys[i])
		if !ok {
			out = append(out, keys[i])
			i++
			continue
		}
		j := i + 1
		prev := start
		for j < len(keys) {
			r, ok := singleRune(keys[j])
			if !ok || r != prev+1 {
				break
			}
			prev = r
			j++
		}
		if j-i >= 3 {
			out = append(out, string(start)+"-"+string(prev))
		} else {
			out = append(out, keys[i:j]...)
		}
		i = j
	}
	return out
}

func singleRune(s string) (rune, bool) {
	runes := []rune(s)
	if len(runes) != 1 {
		return 0, false
	}
	return runes[0], true
}
