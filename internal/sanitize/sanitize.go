// Package sanitize neutralizes user-supplied text before it is rendered.
// Terminal output strips control characters and escape sequences; HTML
// output escapes markup. User text never reaches a display surface raw.
package sanitize

import (
	"strings"
	"unicode"
)

// Text returns s safe for terminal rendering: ANSI escape sequences are
// removed and control characters (except space) are dropped. Tabs and
// newlines collapse to single spaces so card layouts stay intact.
func Text(s string) string {
	var b strings.Builder
	b.Grow(len(s))

	inEscape := false
	for _, r := range s {
		if inEscape {
			// CSI sequences end on a letter (0x40-0x7E final byte)
			if (r >= '@' && r <= '~') && r != '[' {
				inEscape = false
			}
			continue
		}
		switch {
		case r == 0x1B:
			inEscape = true
		case r == '\n' || r == '\t' || r == '\r':
			b.WriteRune(' ')
		case unicode.IsControl(r):
			// dropped
		default:
			b.WriteRune(r)
		}
	}
	return b.String()
}

// htmlReplacer escapes the five characters significant in HTML text and
// attribute contexts.
var htmlReplacer = strings.NewReplacer(
	"&", "&amp;",
	"<", "&lt;",
	">", "&gt;",
	`"`, "&quot;",
	"'", "&#39;",
)

// HTML escapes s for embedding in HTML output. Markup in user text is
// rendered literally, never interpreted.
func HTML(s string) string {
	return htmlReplacer.Replace(s)
}
