package piiutil

import (
	"fmt"
	"unicode/utf8"
)

const (
	shortDigitCountThreshold = 4
	keepShortDigits          = 1
	keepLongDigits           = 4
)

// Redact replaces free text with its rune count.
func Redact(s string) string {
	return fmt.Sprintf("[%d chars]", utf8.RuneCountInString(s))
}

// maskKeepEnds keeps the first and last rune; two runes keep only the first.
func maskKeepEnds(runes []rune) string {
	n := len(runes)
	switch n {
	case 0, 1:
		return string(runes)
	case 2:
		return string(runes[0]) + "*"
	}

	out := make([]rune, n)
	out[0] = runes[0]
	for i := 1; i < n-1; i++ {
		out[i] = '*'
	}
	out[n-1] = runes[n-1]
	return string(out)
}

// maskDigitsKeepTail masks ASCII digits in place, keeping the last 4
// (or the last 1 when there are 4 or fewer).
func maskDigitsKeepTail(b []byte) string {
	total := 0
	for _, c := range b {
		if c >= '0' && c <= '9' {
			total++
		}
	}

	keep := keepLongDigits
	if total <= shortDigitCountThreshold {
		keep = keepShortDigits
	}

	seen := 0
	for i := len(b) - 1; i >= 0; i-- {
		if b[i] >= '0' && b[i] <= '9' {
			seen++
			if seen > keep {
				b[i] = '*'
			}
		}
	}
	return string(b)
}
