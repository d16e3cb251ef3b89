// Package form holds the state of a contact form: values, validation errors and
// per-field touched flags, plus the transitions a view layer drives on user events.
package form

import (
	"errors"
	"fmt"

	errs "github.com/vortex-fintech/go-contactform/foundation/errors"
	"github.com/vortex-fintech/go-contactform/foundation/validator"
)

// ErrUnknownField is returned by the string-keyed entry points for keys outside
// the five form fields. The returned error also wraps an errors.ErrorResponse
// with reason "unknown_field".
var ErrUnknownField = errors.New("form: unknown field")

// Field identifies one of the five contact form inputs.
type Field string

const (
	Name    Field = validator.FieldName
	Email   Field = validator.FieldEmail
	Phone   Field = validator.FieldPhone
	Subject Field = validator.FieldSubject
	Message Field = validator.FieldMessage
)

var fields = [...]Field{Name, Email, Phone, Subject, Message}

// Fields returns all fields in display order.
func Fields() []Field {
	return fields[:]
}

func (f Field) Valid() bool {
	switch f {
	case Name, Email, Phone, Subject, Message:
		return true
	}
	return false
}

func (f Field) String() string { return string(f) }

func ParseField(s string) (Field, error) {
	f := Field(s)
	if !f.Valid() {
		return "", fmt.Errorf("%w: %w", ErrUnknownField, errs.UnknownField(s))
	}
	return f, nil
}
