package piiutil

import "strings"

// MaskPhone hides all but the trailing digits of a phone value and keeps the
// mask punctuation in place, so a formatted number stays recognisable in logs.
//
//	"(11) 98765-4321" -> "(**) *****-4321"
//	"(11) 9"          -> "(**) 9"
//	"123"             -> "**3"
//	"(-)"             -> "(-)"
func MaskPhone(phone string) string {
	phone = strings.TrimSpace(phone)
	if phone == "" {
		return ""
	}
	return maskDigitsKeepTail([]byte(phone))
}
