package validator

import (
	"errors"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/vortex-fintech/go-contactform/foundation/contactutil"
	"github.com/vortex-fintech/go-contactform/messages"
)

// Field names understood by the rule set.
const (
	FieldName    = "name"
	FieldEmail   = "email"
	FieldPhone   = "phone"
	FieldSubject = "subject"
	FieldMessage = "message"
)

// Default minimum lengths, counted in runes after trimming.
const (
	DefaultNameMin    = 3
	DefaultSubjectMin = 3
	DefaultMessageMin = 10
)

var v *validator.Validate

var std *Validator

func init() {
	v = validator.New()
	registerTags(v)
	std = New()
}

func Instance() *validator.Validate {
	return v
}

// Issue is the outcome of checking one value. The zero Issue means "no error".
type Issue struct {
	Reason  string
	Message string
}

func (i Issue) OK() bool { return i.Reason == "" }

// Validator holds the per-field rules of the contact form.
// It is immutable after New and safe to share.
type Validator struct {
	nameMin    int
	subjectMin int
	messageMin int
	phone      contactutil.PhoneScheme
	catalog    messages.Catalog
	rules      map[string]string
}

type Option func(*Validator)

// WithMinLengths overrides the rune thresholds; non-positive values keep the default.
func WithMinLengths(name, subject, message int) Option {
	return func(x *Validator) {
		if name > 0 {
			x.nameMin = name
		}
		if subject > 0 {
			x.subjectMin = subject
		}
		if message > 0 {
			x.messageMin = message
		}
	}
}

func WithPhoneScheme(s contactutil.PhoneScheme) Option {
	return func(x *Validator) { x.phone = s }
}

func WithCatalog(c messages.Catalog) Option {
	return func(x *Validator) { x.catalog = c }
}

func New(opts ...Option) *Validator {
	x := &Validator{
		nameMin:    DefaultNameMin,
		subjectMin: DefaultSubjectMin,
		messageMin: DefaultMessageMin,
		phone:      contactutil.BR,
		catalog:    messages.Default(),
	}
	for _, opt := range opts {
		opt(x)
	}

	lengths := make([]string, 0, len(x.phone.Lengths))
	for _, n := range x.phone.Lengths {
		lengths = append(lengths, strconv.Itoa(n))
	}

	x.rules = map[string]string{
		FieldName:    "notblank,trimmin=" + strconv.Itoa(x.nameMin),
		FieldEmail:   "notblank,simple_email",
		FieldPhone:   "omitempty,phone_digits=" + strings.Join(lengths, " "),
		FieldSubject: "notblank,trimmin=" + strconv.Itoa(x.subjectMin),
		FieldMessage: "notblank,trimmin=" + strconv.Itoa(x.messageMin),
	}
	return x
}

// Rule returns the validation tag applied to field, or "" for unknown fields.
func (x *Validator) Rule(field string) string {
	return x.rules[field]
}

func (x *Validator) Catalog() messages.Catalog {
	return x.catalog
}

// Check runs the field's rules left to right and reports the first failure.
// Unknown fields have no rules and always pass.
func (x *Validator) Check(field, value string) Issue {
	rule, ok := x.rules[field]
	if !ok {
		return Issue{}
	}

	err := v.Var(value, rule)
	if err == nil {
		return Issue{}
	}

	var errs validator.ValidationErrors
	if !errors.As(err, &errs) || len(errs) == 0 {
		return Issue{Reason: messages.ReasonInvalid, Message: messages.ReasonInvalid}
	}

	fe := errs[0]
	reason := mapTagToCode(fe.Tag())
	return Issue{Reason: reason, Message: x.message(field, reason, fe.Param())}
}

// Message returns the localized error for value, or "" when it passes.
func (x *Validator) Message(field, value string) string {
	return x.Check(field, value).Message
}

func (x *Validator) message(field, reason, param string) string {
	switch reason {
	case messages.ReasonTooShort:
		n, _ := strconv.Atoi(param)
		return x.catalog.Field(field, reason, n)
	case messages.ReasonInvalidPhone:
		return x.catalog.Field(field, reason, x.phone.Pattern())
	default:
		return x.catalog.Field(field, reason)
	}
}

// ValidateField checks value against the default pt-BR rule set.
func ValidateField(field, value string) string {
	return std.Message(field, value)
}

func Name(value string) string    { return std.Message(FieldName, value) }
func Email(value string) string   { return std.Message(FieldEmail, value) }
func Phone(value string) string   { return std.Message(FieldPhone, value) }
func Subject(value string) string { return std.Message(FieldSubject, value) }
func Message(value string) string { return std.Message(FieldMessage, value) }
