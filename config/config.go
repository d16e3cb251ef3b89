package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/caarlos0/env/v11"

	"github.com/vortex-fintech/go-contactform/form"
	"github.com/vortex-fintech/go-contactform/foundation/contactutil"
	"github.com/vortex-fintech/go-contactform/foundation/logger"
	"github.com/vortex-fintech/go-contactform/messages"
)

var ErrInvalidConfig = errors.New("config: invalid")

// Config holds the contact form settings loaded from environment variables.
type Config struct {
	Env      string `env:"CONTACTFORM_ENV" envDefault:"production"`
	LogLevel string `env:"CONTACTFORM_LOG_LEVEL"`
	Locale   string `env:"CONTACTFORM_LOCALE" envDefault:"pt-BR"`
	Domain   string `env:"CONTACTFORM_DOMAIN" envDefault:"contact-form"`

	NameMin    int `env:"CONTACTFORM_NAME_MIN" envDefault:"3"`
	SubjectMin int `env:"CONTACTFORM_SUBJECT_MIN" envDefault:"3"`
	MessageMin int `env:"CONTACTFORM_MESSAGE_MIN" envDefault:"10"`

	// Accepted phone digit counts for the BR mask.
	PhoneLengths []int `env:"CONTACTFORM_PHONE_LENGTHS" envDefault:"10,11" envSeparator:","`
}

// Load parses environment variables and validates the result.
func Load() (*Config, error) {
	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c Config) Validate() error {
	var problems []string

	if !logger.ValidLevel(c.LogLevel) {
		problems = append(problems, fmt.Sprintf("CONTACTFORM_LOG_LEVEL: unknown level %q", c.LogLevel))
	}

	if c.NameMin < 1 {
		problems = append(problems, "CONTACTFORM_NAME_MIN must be positive")
	}
	if c.SubjectMin < 1 {
		problems = append(problems, "CONTACTFORM_SUBJECT_MIN must be positive")
	}
	if c.MessageMin < 1 {
		problems = append(problems, "CONTACTFORM_MESSAGE_MIN must be positive")
	}
	if len(c.PhoneLengths) == 0 {
		problems = append(problems, "CONTACTFORM_PHONE_LENGTHS must list at least one length")
	}
	for _, n := range c.PhoneLengths {
		if n < 1 || n > contactutil.BR.LongLength {
			problems = append(problems, fmt.Sprintf("CONTACTFORM_PHONE_LENGTHS: %d out of range 1..%d", n, contactutil.BR.LongLength))
		}
	}

	if len(problems) > 0 {
		return fmt.Errorf("%w: %s", ErrInvalidConfig, strings.Join(problems, "; "))
	}
	return nil
}

// LoggerOptions applies CONTACTFORM_LOG_LEVEL on top of the CONTACTFORM_ENV preset.
func (c Config) LoggerOptions() []logger.Option {
	return []logger.Option{logger.WithLevel(c.LogLevel)}
}

func (c Config) Catalog() messages.Catalog {
	return messages.For(c.Locale)
}

// FormOptions translates the config into controller options.
func (c Config) FormOptions() []form.Option {
	return []form.Option{
		form.WithCatalog(c.Catalog()),
		form.WithMinLengths(c.NameMin, c.SubjectMin, c.MessageMin),
		form.WithPhoneScheme(contactutil.BR.WithLengths(c.PhoneLengths...)),
		form.WithDomain(c.Domain),
	}
}
