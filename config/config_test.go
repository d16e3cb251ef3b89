package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/text/language"

	"github.com/vortex-fintech/go-contactform/form"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "production", cfg.Env)
	assert.Equal(t, "pt-BR", cfg.Locale)
	assert.Equal(t, 3, cfg.NameMin)
	assert.Equal(t, 3, cfg.SubjectMin)
	assert.Equal(t, 10, cfg.MessageMin)
	assert.Equal(t, []int{10, 11}, cfg.PhoneLengths)
	assert.Empty(t, cfg.LogLevel)
}

func TestLoad_FromEnv(t *testing.T) {
	t.Setenv("CONTACTFORM_ENV", "Development")
	t.Setenv("CONTACTFORM_LOG_LEVEL", "warn")
	t.Setenv("CONTACTFORM_LOCALE", "en-US")
	t.Setenv("CONTACTFORM_MESSAGE_MIN", "20")
	t.Setenv("CONTACTFORM_PHONE_LENGTHS", "11")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "Development", cfg.Env)
	assert.Equal(t, "warn", cfg.LogLevel)
	assert.Len(t, cfg.LoggerOptions(), 1)
	assert.Equal(t, language.English, cfg.Catalog().Tag())
	assert.Equal(t, 20, cfg.MessageMin)
	assert.Equal(t, []int{11}, cfg.PhoneLengths)
}

func TestLoad_ParseError(t *testing.T) {
	t.Setenv("CONTACTFORM_NAME_MIN", "three")

	_, err := Load()
	require.Error(t, err)
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr bool
	}{
		{name: "defaults", mutate: func(*Config) {}},
		{name: "zero name min", mutate: func(c *Config) { c.NameMin = 0 }, wantErr: true},
		{name: "negative message min", mutate: func(c *Config) { c.MessageMin = -1 }, wantErr: true},
		{name: "no phone lengths", mutate: func(c *Config) { c.PhoneLengths = nil }, wantErr: true},
		{name: "phone length beyond mask", mutate: func(c *Config) { c.PhoneLengths = []int{12} }, wantErr: true},
		{name: "known log level", mutate: func(c *Config) { c.LogLevel = "debug" }},
		{name: "unknown log level", mutate: func(c *Config) { c.LogLevel = "loud" }, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Config{NameMin: 3, SubjectMin: 3, MessageMin: 10, PhoneLengths: []int{10, 11}}
			tt.mutate(&cfg)
			err := cfg.Validate()
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrInvalidConfig)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestFormOptions(t *testing.T) {
	cfg := Config{Locale: "en", Domain: "site", NameMin: 2, SubjectMin: 3, MessageMin: 4, PhoneLengths: []int{11}}

	c := form.New(cfg.FormOptions()...)
	c.UpdateField(form.Name, "Al")
	c.UpdateField(form.Email, "al@x.io")
	c.UpdateField(form.Phone, "1198765432")
	c.UpdateField(form.Subject, "Hey")
	c.UpdateField(form.Message, "Yo!!")

	require.False(t, c.ValidateForm())
	assert.Equal(t, map[string]string{"phone": "Invalid phone (use format: (99) 99999-9999)"}, c.Errors().Map())
}
