package messages

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"golang.org/x/text/language"
)

func TestFor(t *testing.T) {
	tests := []struct {
		locale string
		want   language.Tag
	}{
		{"pt-BR", language.BrazilianPortuguese},
		{"pt", language.BrazilianPortuguese},
		{"en", language.English},
		{"en-US", language.English},
		{"ja", language.BrazilianPortuguese},
		{"", language.BrazilianPortuguese},
		{"!!", language.BrazilianPortuguese},
	}

	for _, tt := range tests {
		t.Run(tt.locale, func(t *testing.T) {
			assert.Equal(t, tt.want, For(tt.locale).Tag())
		})
	}
}

func TestCatalog_Field(t *testing.T) {
	pt := Default()
	assert.Equal(t, "Nome é obrigatório", pt.Field("name", ReasonRequired))
	assert.Equal(t, "Mensagem deve ter no mínimo 10 caracteres", pt.Field("message", ReasonTooShort, 10))
	assert.Equal(t, "Telefone inválido (use formato: (99) 99999-9999)", pt.Field("phone", ReasonInvalidPhone, "(99) 99999-9999"))

	en := For("en")
	assert.Equal(t, "Invalid email", en.Field("email", ReasonInvalidEmail))
	assert.Equal(t, "Subject must be at least 3 characters", en.Field("subject", ReasonTooShort, 3))
}

func TestCatalog_UnknownKey(t *testing.T) {
	assert.Equal(t, "phone.required", Default().Field("phone", ReasonRequired))
	assert.Equal(t, "Form has errors", For("en").Text(FormInvalid))
}

func TestCatalog_ZeroValueIsDefault(t *testing.T) {
	var c Catalog
	assert.Equal(t, language.BrazilianPortuguese, c.Tag())
	assert.Equal(t, "Email é obrigatório", c.Field("email", ReasonRequired))
}
