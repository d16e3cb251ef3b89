package form

import (
	errs "github.com/vortex-fintech/go-contactform/foundation/errors"
	"github.com/vortex-fintech/go-contactform/foundation/piiutil"
	"github.com/vortex-fintech/go-contactform/foundation/validator"
)

// Controller owns the values, errors and touched flags of one form session.
// All methods run synchronously; a Controller is not safe for concurrent use.
type Controller struct {
	values  Values
	errors  Errors
	touched Touched

	opts options
}

// New returns a controller in the initial state: empty values, no errors,
// nothing touched.
func New(opts ...Option) *Controller {
	return &Controller{opts: buildOptions(opts)}
}

// UpdateField stores a new value for f. Phone input is masked first.
// Once f has been touched the value is re-validated immediately; before
// that, errors are left as they are.
func (c *Controller) UpdateField(f Field, raw string) {
	if !f.Valid() {
		c.opts.log.Debugw("update ignored", "field", f)
		return
	}

	value := raw
	if f == Phone {
		value = c.opts.phone.Format(raw)
	}
	c.values.Set(f, value)

	touched := c.touched.Get(f)
	c.opts.log.Debugw("field updated", "field", f, "value", redact(f, value), "touched", touched)
	if touched {
		c.check(f, value)
	}
}

// HandleBlur marks f as touched and validates its stored value. This is what
// switches on live validation for f.
func (c *Controller) HandleBlur(f Field) {
	if !f.Valid() {
		c.opts.log.Debugw("blur ignored", "field", f)
		return
	}
	c.touched.Mark(f)
	c.check(f, c.values.Get(f))
}

// UpdateFieldByName is UpdateField for views that key inputs by string.
func (c *Controller) UpdateFieldByName(name, raw string) error {
	f, err := ParseField(name)
	if err != nil {
		return err
	}
	c.UpdateField(f, raw)
	return nil
}

func (c *Controller) HandleBlurByName(name string) error {
	f, err := ParseField(name)
	if err != nil {
		return err
	}
	c.HandleBlur(f)
	return nil
}

// ValidateForm runs every validator and replaces Errors with exactly the
// failing fields. Touched flags are not changed.
func (c *Controller) ValidateForm() bool {
	_, ok := c.validateAll(false)
	return ok
}

// ValidateField checks value against f's rules without touching any state.
func (c *Controller) ValidateField(f Field, value string) string {
	return c.opts.rules.Message(string(f), value)
}

// ResetForm returns the controller to its initial state.
func (c *Controller) ResetForm() {
	c.values = Values{}
	c.errors = Errors{}
	c.touched = Touched{}
	c.opts.log.Debugw("form reset")
}

func (c *Controller) Values() Values   { return c.values }
func (c *Controller) Errors() Errors   { return c.errors }
func (c *Controller) Touched() Touched { return c.touched }

func (c *Controller) Value(f Field) string   { return c.values.Get(f) }
func (c *Controller) Error(f Field) string   { return c.errors.Get(f) }
func (c *Controller) IsTouched(f Field) bool { return c.touched.Get(f) }

// VisibleError is the message a view should render next to f: errors stay
// hidden until the field has been touched.
func (c *Controller) VisibleError(f Field) string {
	if !c.touched.Get(f) {
		return ""
	}
	return c.errors.Get(f)
}

func (c *Controller) check(f Field, value string) validator.Issue {
	issue := c.opts.rules.Check(string(f), value)
	c.errors.Set(f, issue.Message)
	c.opts.observer.FieldChecked(f, issue.Reason)
	if !issue.OK() {
		c.opts.log.Debugw("field invalid", "field", f, "reason", issue.Reason)
	}
	return issue
}

// validateAll checks every field. With submitted set, a field that passes on
// its raw value is checked again on the text a Submission would carry.
func (c *Controller) validateAll(submitted bool) ([]errs.FieldViolation, bool) {
	var next Errors
	var violations []errs.FieldViolation

	for _, f := range fields {
		raw := c.values.Get(f)
		issue := c.opts.rules.Check(string(f), raw)
		if submitted && issue.OK() {
			if text, ok := submittedText(f, raw); ok {
				issue = c.opts.rules.Check(string(f), text)
			}
		}
		c.opts.observer.FieldChecked(f, issue.Reason)
		if issue.OK() {
			continue
		}
		next.Set(f, issue.Message)
		violations = append(violations, errs.FieldViolation{
			Field:       string(f),
			Reason:      issue.Reason,
			Description: issue.Message,
		})
	}

	c.errors = next
	valid := len(violations) == 0
	c.opts.observer.FormChecked(valid)
	c.opts.log.Debugw("form validated", "valid", valid, "invalid_fields", len(violations))
	return violations, valid
}

// redact keeps contact data out of logs.
func redact(f Field, value string) string {
	switch f {
	case Email:
		return piiutil.MaskEmail(value)
	case Phone:
		return piiutil.MaskPhone(value)
	default:
		return piiutil.Redact(value)
	}
}
