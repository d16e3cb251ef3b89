package form

import (
	"html"

	"github.com/microcosm-cc/bluemonday"

	"github.com/vortex-fintech/go-contactform/foundation/contactutil"
	errs "github.com/vortex-fintech/go-contactform/foundation/errors"
	"github.com/vortex-fintech/go-contactform/foundation/idutil"
	"github.com/vortex-fintech/go-contactform/foundation/textutil"
	"github.com/vortex-fintech/go-contactform/messages"
)

var textPolicy = bluemonday.StrictPolicy()

type submissionKind struct{}

// SubmissionID is a UUIDv7, so IDs sort by creation time.
type SubmissionID = idutil.ID[submissionKind]

// Submission is the normalized payload a view hands to whatever sends the
// message. Phone holds digits only and is empty when not provided.
type Submission struct {
	ID      SubmissionID `json:"id"`
	Name    string       `json:"name"`
	Email   string       `json:"email"`
	Phone   string       `json:"phone,omitempty"`
	Subject string       `json:"subject"`
	Message string       `json:"message"`
}

// Submit validates the whole form like ValidateForm, and additionally checks
// name, subject and message after markup and invisible characters are
// stripped, so a Submission never carries an empty required field. On failure
// it returns an InvalidArgument errors.ErrorResponse with one violation per
// failing field, in field order.
func (c *Controller) Submit() (Submission, error) {
	violations, ok := c.validateAll(true)
	if !ok {
		return Submission{}, errs.ValidationViolations(violations).
			WithMessage(c.opts.rules.Catalog().Text(messages.FormInvalid)).
			WithDomain(c.opts.domain)
	}

	id, err := idutil.New[submissionKind]()
	if err != nil {
		return Submission{}, errs.Internal().WithDomain(c.opts.domain).WithDetail("cause", err.Error())
	}
	sub := newSubmission(id, c.values)
	c.opts.log.Debugw("form submitted", "id", sub.ID.String())
	return sub, nil
}

func newSubmission(id SubmissionID, v Values) Submission {
	return Submission{
		ID:      id,
		Name:    singleLine(v.Name),
		Email:   contactutil.NormalizeEmail(v.Email),
		Phone:   contactutil.Digits(v.Phone),
		Subject: singleLine(v.Subject),
		Message: multiline(v.Message),
	}
}

// submittedText returns the free text a Submission carries for f.
func submittedText(f Field, raw string) (string, bool) {
	switch f {
	case Name, Subject:
		return singleLine(raw), true
	case Message:
		return multiline(raw), true
	}
	return "", false
}

func singleLine(s string) string { return textutil.SingleLine(plainText(s)) }
func multiline(s string) string  { return textutil.Multiline(plainText(s)) }

// plainText strips markup and returns the unescaped text.
func plainText(s string) string {
	return html.UnescapeString(textPolicy.Sanitize(s))
}
