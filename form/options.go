package form

import (
	"github.com/vortex-fintech/go-contactform/foundation/contactutil"
	"github.com/vortex-fintech/go-contactform/foundation/logger"
	"github.com/vortex-fintech/go-contactform/foundation/validator"
	"github.com/vortex-fintech/go-contactform/messages"
)

// DefaultDomain tags validation errors produced by Submit.
const DefaultDomain = "contact-form"

// Logger is the subset of the zap sugared logger the controller writes to.
type Logger interface {
	Debugw(msg string, keysAndValues ...any)
}

type Option func(*options)

type options struct {
	rules    *validator.Validator
	ruleOpts []validator.Option
	phone    contactutil.PhoneScheme
	log      Logger
	observer Observer
	domain   string
}

// WithRules replaces the rule set otherwise built from WithMinLengths,
// WithCatalog and WithPhoneScheme. WithPhoneScheme still drives the input mask.
func WithRules(v *validator.Validator) Option {
	return func(o *options) { o.rules = v }
}

// WithPhoneScheme sets both the input mask and the accepted digit counts.
func WithPhoneScheme(s contactutil.PhoneScheme) Option {
	return func(o *options) {
		o.phone = s
		o.ruleOpts = append(o.ruleOpts, validator.WithPhoneScheme(s))
	}
}

func WithMinLengths(name, subject, message int) Option {
	return func(o *options) {
		o.ruleOpts = append(o.ruleOpts, validator.WithMinLengths(name, subject, message))
	}
}

func WithCatalog(c messages.Catalog) Option {
	return func(o *options) {
		o.ruleOpts = append(o.ruleOpts, validator.WithCatalog(c))
	}
}

func WithLogger(l Logger) Option {
	return func(o *options) {
		if l != nil {
			o.log = l
		}
	}
}

func WithObserver(obs Observer) Option {
	return func(o *options) {
		if obs != nil {
			o.observer = obs
		}
	}
}

func WithDomain(d string) Option {
	return func(o *options) { o.domain = d }
}

func buildOptions(opts []Option) options {
	o := options{
		phone:    contactutil.BR,
		log:      logger.Nop(),
		observer: nopObserver{},
		domain:   DefaultDomain,
	}
	for _, opt := range opts {
		opt(&o)
	}
	if o.rules == nil {
		o.rules = validator.New(o.ruleOpts...)
	}
	return o
}
