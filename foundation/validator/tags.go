package validator

import (
	"regexp"
	"strconv"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/go-playground/validator/v10"

	"github.com/vortex-fintech/go-contactform/foundation/contactutil"
)

// emailRX accepts local@domain.tld shapes: no whitespace (BOM included), exactly one '@', a dot after it.
var emailRX = regexp.MustCompile(`^[^\s\v\p{Z}\x{FEFF}@]+@[^\s\v\p{Z}\x{FEFF}@]+\.[^\s\v\p{Z}\x{FEFF}@]+$`)

// isSpace is unicode.IsSpace plus U+FEFF, which browsers also trim.
func isSpace(r rune) bool {
	return unicode.IsSpace(r) || r == '\uFEFF'
}

func trim(s string) string {
	return strings.TrimFunc(s, isSpace)
}

func registerTags(v *validator.Validate) {
	must(v.RegisterValidation("notblank", notBlank))
	must(v.RegisterValidation("trimmin", trimMin))
	must(v.RegisterValidation("simple_email", simpleEmail))
	must(v.RegisterValidation("phone_digits", phoneDigits))
}

func must(err error) {
	if err != nil {
		panic(err)
	}
}

func notBlank(fl validator.FieldLevel) bool {
	return trim(fl.Field().String()) != ""
}

// trimMin counts runes, not UTF-16 units, after trimming surrounding whitespace.
func trimMin(fl validator.FieldLevel) bool {
	n, err := strconv.Atoi(fl.Param())
	if err != nil {
		return false
	}
	return utf8.RuneCountInString(trim(fl.Field().String())) >= n
}

func simpleEmail(fl validator.FieldLevel) bool {
	return emailRX.MatchString(fl.Field().String())
}

// phoneDigits takes a space separated list of accepted digit counts: "phone_digits=10 11".
func phoneDigits(fl validator.FieldLevel) bool {
	n := len(contactutil.Digits(fl.Field().String()))
	for _, p := range strings.Fields(fl.Param()) {
		if want, err := strconv.Atoi(p); err == nil && want == n {
			return true
		}
	}
	return false
}
