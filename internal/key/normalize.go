package key

import "strings"

// specialKeys maps raw key identifiers (lowercase) to their canonical tokens.
// The lookup takes priority over every other normalization rule.
var specialKeys = map[string]string{
	" ":          "space",
	"space":      "space",
	"spacebar":   "space",
	"escape":     "escape",
	"esc":        "escape",
	"enter":      "enter",
	"return":     "enter",
	"tab":        "tab",
	"backspace":  "backspace",
	"delete":     "delete",
	"del":        "delete",
	"arrowup":    "arrowup",
	"arrowdown":  "arrowdown",
	"arrowleft":  "arrowleft",
	"arrowright": "arrowright",
	"home":       "home",
	"end":        "end",
	"pageup":     "pageup",
	"pagedown":   "pagedown",
}

// Normalize canonicalizes a raw key identifier into a stable lowercase
// token: the special-key table takes priority, then everything else is
// lowercased unchanged, which covers single characters and function keys
// F1-F12 alike. Normalize is deterministic and idempotent.
func Normalize(raw string) string {
	lower := strings.ToLower(raw)
	if tok, ok := specialKeys[lower]; ok {
		return tok
	}
	return lower
}

// shiftRequiredChars is the set of punctuation characters that require Shift
// on a US layout. Typing one of these inherently holds Shift, which is why
// the matcher relaxes its shift comparison for them.
const shiftRequiredChars = `!@#$%^&*()_+{}|:"<>?~`

// IsShiftRequired returns true if the raw key is a character that cannot be
// typed without Shift on a US layout.
func IsShiftRequired(raw string) bool {
	runes := []rune(raw)
	return len(runes) == 1 && strings.ContainsRune(shiftRequiredChars, runes[0])
}
