package contactutil

import "strings"

// NormalizeEmail приводит e-mail к нижнему регистру и обрезает пробелы.
// Не валидирует формат, только нормализует.
func NormalizeEmail(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}

// Digits оставляет только ASCII-цифры 0-9.
// Любые другие символы (включая цифры других письменностей) отбрасываются.
func Digits(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	for i := 0; i < len(s); i++ {
		if c := s[i]; c >= '0' && c <= '9' {
			b.WriteByte(c)
		}
	}
	return b.String()
}
