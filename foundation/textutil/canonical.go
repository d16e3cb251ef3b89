package textutil

import (
	"strings"
	"unicode"

	"golang.org/x/text/unicode/norm"
)

// SingleLine returns s in NFC with control and format characters removed,
// every whitespace run (newlines included) collapsed to one space, and trimmed.
func SingleLine(s string) string {
	s = norm.NFC.String(s)

	var b strings.Builder
	b.Grow(len(s))
	prevSpace := false
	for _, r := range s {
		switch {
		case unicode.IsSpace(r):
			if !prevSpace {
				b.WriteByte(' ')
				prevSpace = true
			}
			continue
		case unicode.IsControl(r), unicode.In(r, unicode.Cf):
			continue
		}
		prevSpace = false
		b.WriteRune(r)
	}
	return strings.TrimSpace(b.String())
}

// Multiline keeps line structure: NFC, "\r\n" and "\r" become "\n", trailing
// spaces per line and surrounding blank lines are dropped, control characters
// other than '\n' and '\t' are removed.
func Multiline(s string) string {
	s = norm.NFC.String(s)
	s = strings.ReplaceAll(s, "\r\n", "\n")
	s = strings.ReplaceAll(s, "\r", "\n")

	lines := strings.Split(s, "\n")
	for i, line := range lines {
		lines[i] = strings.TrimRightFunc(strings.Map(dropControl, line), unicode.IsSpace)
	}
	return strings.Trim(strings.Join(lines, "\n"), "\n")
}

func dropControl(r rune) rune {
	if r == '\t' {
		return r
	}
	if unicode.IsControl(r) || unicode.In(r, unicode.Cf) {
		return -1
	}
	return r
}
