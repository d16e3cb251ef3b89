package errors

import (
	"encoding/json"
	"maps"

	"google.golang.org/grpc/codes"
)

// Reason is a stable machine-readable code.
type Reason string

// FieldViolation reports one invalid input field.
// Reason is the machine code ("required", "too_short", ...), Description the localized text.
type FieldViolation struct {
	Field       string `json:"field"`
	Reason      string `json:"reason,omitempty"`
	Description string `json:"description,omitempty"`
}

// ErrorResponse is an immutable error value: builders return modified copies.
type ErrorResponse struct {
	Code       codes.Code
	Reason     Reason
	Domain     string
	Message    string
	Details    map[string]string
	Violations []FieldViolation
}

func New(message string, code codes.Code, details map[string]string) ErrorResponse {
	return ErrorResponse{Code: code, Message: message, Details: cloneDetails(details)}
}

func (e ErrorResponse) WithReason(r string) ErrorResponse  { e.Reason = Reason(r); return e }
func (e ErrorResponse) WithDomain(d string) ErrorResponse  { e.Domain = d; return e }
func (e ErrorResponse) WithMessage(m string) ErrorResponse { e.Message = m; return e }

func (e ErrorResponse) WithDetail(k, v string) ErrorResponse {
	details := make(map[string]string, len(e.Details)+1)
	maps.Copy(details, e.Details)
	details[k] = v
	e.Details = details
	return e
}

func (e ErrorResponse) WithViolations(v []FieldViolation) ErrorResponse {
	if len(v) == 0 {
		return e
	}
	e.Violations = append([]FieldViolation(nil), v...)
	return e
}

// Violation returns the first violation reported for field.
func (e ErrorResponse) Violation(field string) (FieldViolation, bool) {
	for _, v := range e.Violations {
		if v.Field == field {
			return v, true
		}
	}
	return FieldViolation{}, false
}

// MarshalJSON renders the code by name ("InvalidArgument") instead of number.
func (e ErrorResponse) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		Code       string            `json:"code"`
		Reason     Reason            `json:"reason,omitempty"`
		Domain     string            `json:"domain,omitempty"`
		Message    string            `json:"message"`
		Details    map[string]string `json:"details,omitempty"`
		Violations []FieldViolation  `json:"violations,omitempty"`
	}{
		Code:       e.Code.String(),
		Reason:     e.Reason,
		Domain:     e.Domain,
		Message:    e.Message,
		Details:    e.Details,
		Violations: e.Violations,
	})
}

func (e ErrorResponse) Error() string {
	b, _ := e.MarshalJSON()
	return string(b)
}

func cloneDetails(in map[string]string) map[string]string {
	if len(in) == 0 {
		return nil
	}
	return maps.Clone(in)
}
