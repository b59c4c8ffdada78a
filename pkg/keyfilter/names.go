package keyfilter

// Named key identifiers beyond the default set. Values follow the
// KeyboardEvent.key names used by browsers, except Return.
const (
	KeyEscape     = "Escape"
	KeySpace      = " "
	KeyArrowUp    = "ArrowUp"
	KeyArrowDown  = "ArrowDown"
	KeyArrowLeft  = "ArrowLeft"
	KeyArrowRight = "ArrowRight"
	KeyHome       = "Home"
	KeyEnd        = "End"
	KeyPageUp     = "PageUp"
	KeyPageDown   = "PageDown"
	KeyInsert     = "Insert"
	KeyShift      = "Shift"
	KeyF1         = "F1"
	KeyF2         = "F2"
	KeyF3         = "F3"
	KeyF4         = "F4"
	KeyF6         = "F6"
	KeyF7         = "F7"
	KeyF8         = "F8"
	KeyF9         = "F9"
	KeyF10        = "F10"
	KeyF11        = "F11"
	KeyF12        = "F12"
)

var namedKeys = [...]string{
	KeyTab, KeyReturn, KeyDelete, KeyBackspace, KeyMeta, KeyControl, KeyAlt, KeyShift,
	KeyEscape, KeyArrowUp, KeyArrowDown, KeyArrowLeft, KeyArrowRight,
	KeyHome, KeyEnd, KeyPageUp, KeyPageDown, KeyInsert,
	KeyF1, KeyF2, KeyF3, KeyF4, KeyF5, KeyF6, KeyF7, KeyF8, KeyF9, KeyF10, KeyF11, KeyF12,
}

// NamedKeys returns every multi-character identifier this package knows,
// in declaration order.
func NamedKeys() []string {
	out := make([]string, len(namedKeys))
	copy(out, namedKeys[:])
	return out
}

// IsNamed reports whether key is a known multi-character identifier.
func IsNamed(key string) bool {
	for _, k := range namedKeys {
		if k == key {
			return true
		}
	}
	return false
}
