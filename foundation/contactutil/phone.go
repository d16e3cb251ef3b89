package contactutil

import (
	"slices"
	"strings"
)

// PhoneScheme describes a regional phone mask of the shape
// "(AA) PPPP-SSSS" that widens to "(AA) PPPPP-SSSS" at LongLength digits.
type PhoneScheme struct {
	AreaDigits  int
	ShortPrefix int
	LongPrefix  int
	// LongLength is the digit count that switches to LongPrefix. Extra digits are dropped.
	LongLength int
	// Lengths lists the digit counts accepted as a complete number.
	Lengths []int
}

// BR is the Brazilian convention: two-digit area code, 8 or 9 local digits.
var BR = PhoneScheme{
	AreaDigits:  2,
	ShortPrefix: 4,
	LongPrefix:  5,
	LongLength:  11,
	Lengths:     []int{10, 11},
}

// FormatPhoneBR applies the BR mask to whatever digits s contains.
//
//	""                -> ""
//	"1"               -> "(1"
//	"119876"          -> "(11) 9876"
//	"1198765432"      -> "(11) 9876-5432"
//	"11987654321"     -> "(11) 98765-4321"
//	"119876543210000" -> "(11) 98765-4321"
func FormatPhoneBR(s string) string {
	return BR.Format(s)
}

// Format strips s to digits and applies the scheme's mask.
func (p PhoneScheme) Format(s string) string {
	d := Digits(s)
	n := len(d)
	area := p.AreaDigits

	switch {
	case n == 0:
		return ""
	case n <= area:
		return "(" + d
	case n <= area+p.ShortPrefix:
		return "(" + d[:area] + ") " + d[area:]
	case n < p.LongLength:
		return "(" + d[:area] + ") " + d[area:area+p.ShortPrefix] + "-" + d[area+p.ShortPrefix:]
	}

	d = d[:p.LongLength]
	return "(" + d[:area] + ") " + d[area:area+p.LongPrefix] + "-" + d[area+p.LongPrefix:]
}

// ValidLength reports whether n digits form a complete number.
func (p PhoneScheme) ValidLength(n int) bool {
	return slices.Contains(p.Lengths, n)
}

// WithLengths returns a copy of the scheme accepting the given digit counts.
func (p PhoneScheme) WithLengths(lengths ...int) PhoneScheme {
	p.Lengths = append([]int(nil), lengths...)
	return p
}

// Pattern is the mask rendered with placeholder nines, e.g. "(99) 99999-9999".
func (p PhoneScheme) Pattern() string {
	return p.Format(strings.Repeat("9", p.LongLength))
}
