package validator

import "github.com/vortex-fintech/go-contactform/messages"

var tagMap = map[string]string{
	"required":     messages.ReasonRequired,
	"notblank":     messages.ReasonRequired,
	"trimmin":      messages.ReasonTooShort,
	"simple_email": messages.ReasonInvalidEmail,
	"phone_digits": messages.ReasonInvalidPhone,
}

func mapTagToCode(tag string) string {
	if code, ok := tagMap[tag]; ok {
		return code
	}
	return messages.ReasonInvalid
}
