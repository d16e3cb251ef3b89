// Package messages holds the user-facing validation texts of the contact form.
package messages

import (
	"fmt"

	"golang.org/x/text/language"
)

// Reason codes shared with the validator.
const (
	ReasonRequired     = "required"
	ReasonTooShort     = "too_short"
	ReasonInvalidEmail = "invalid_email"
	ReasonInvalidPhone = "invalid_phone"
	ReasonInvalid      = "invalid"
)

// Keys of texts that are not tied to a validation reason.
const (
	FormInvalid = "form.invalid"
	PromptRetry = "prompt.retry"
	PromptPhone = "prompt.phone_help"
)

// Label returns the key of a field's input label.
func Label(field string) string { return "label." + field }

// supported lists the catalogs in matcher order. The first entry is the default.
var supported = []language.Tag{
	language.BrazilianPortuguese,
	language.English,
}

var matcher = language.NewMatcher(supported)

var texts = map[language.Tag]map[string]string{
	language.BrazilianPortuguese: {
		"name.required":       "Nome é obrigatório",
		"name.too_short":      "Nome deve ter no mínimo %d caracteres",
		"email.required":      "Email é obrigatório",
		"email.invalid_email": "Email inválido",
		"phone.invalid_phone": "Telefone inválido (use formato: %s)",
		"subject.required":    "Assunto é obrigatório",
		"subject.too_short":   "Assunto deve ter no mínimo %d caracteres",
		"message.required":    "Mensagem é obrigatória",
		"message.too_short":   "Mensagem deve ter no mínimo %d caracteres",
		FormInvalid:           "Formulário contém erros",
		PromptRetry:           "Corrigir os campos e enviar novamente?",
		PromptPhone:           "Informe o DDD, formato %s",
		"label.name":          "Nome",
		"label.email":         "Email",
		"label.phone":         "Telefone (opcional)",
		"label.subject":       "Assunto",
		"label.message":       "Mensagem",
	},
	language.English: {
		"name.required":       "Name is required",
		"name.too_short":      "Name must be at least %d characters",
		"email.required":      "Email is required",
		"email.invalid_email": "Invalid email",
		"phone.invalid_phone": "Invalid phone (use format: %s)",
		"subject.required":    "Subject is required",
		"subject.too_short":   "Subject must be at least %d characters",
		"message.required":    "Message is required",
		"message.too_short":   "Message must be at least %d characters",
		FormInvalid:           "Form has errors",
		PromptRetry:           "Fix the fields and submit again?",
		PromptPhone:           "Include the area code, format %s",
		"label.name":          "Name",
		"label.email":         "Email",
		"label.phone":         "Phone (optional)",
		"label.subject":       "Subject",
		"label.message":       "Message",
	},
}

// Catalog resolves validation texts for one language.
type Catalog struct {
	tag language.Tag
}

// Default returns the pt-BR catalog.
func Default() Catalog {
	return Catalog{tag: supported[0]}
}

// For picks the closest supported catalog for a BCP 47 locale.
// Unparsable or unsupported locales fall back to Default.
func For(locale string) Catalog {
	tag, err := language.Parse(locale)
	if err != nil {
		return Default()
	}
	_, idx, conf := matcher.Match(tag)
	if conf == language.No {
		return Default()
	}
	return Catalog{tag: supported[idx]}
}

// Tag returns the catalog language.
func (c Catalog) Tag() language.Tag {
	if c.tag == language.Und {
		return supported[0]
	}
	return c.tag
}

// Field formats the text for a field and reason code.
func (c Catalog) Field(field, reason string, args ...any) string {
	return c.Text(field+"."+reason, args...)
}

// Text formats the text stored under key, falling back to the default
// catalog and finally to the key itself.
func (c Catalog) Text(key string, args ...any) string {
	tmpl, ok := texts[c.Tag()][key]
	if !ok {
		if tmpl, ok = texts[supported[0]][key]; !ok {
			return key
		}
	}
	if len(args) == 0 {
		return tmpl
	}
	return fmt.Sprintf(tmpl, args...)
}
