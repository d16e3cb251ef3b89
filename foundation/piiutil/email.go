package piiutil

import "strings"

// MaskEmail hides the local part of an address, keeping its first and last rune.
//
//	"maria@exemplo.com.br" -> "m***a@exemplo.com.br"
//	"ab@exemplo.com"       -> "a*@exemplo.com"
//	"a@exemplo.com"        -> "a@exemplo.com"
//	"sem-arroba"           -> "s********a"
func MaskEmail(email string) string {
	email = strings.TrimSpace(email)
	if email == "" {
		return ""
	}

	at := strings.IndexByte(email, '@')
	if at <= 0 {
		return maskKeepEnds([]rune(email))
	}

	local := []rune(email[:at])
	if len(local) < 2 {
		return email
	}
	return maskKeepEnds(local) + email[at:]
}
