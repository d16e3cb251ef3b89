package errors

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/grpc/codes"
)

func TestErrorResponse_JSON(t *testing.T) {
	e := ValidationViolations([]FieldViolation{
		{Field: "email", Reason: "invalid_email", Description: "Email inválido"},
	}).WithDomain("contact-form").WithMessage("Formulário contém erros")

	b, err := json.Marshal(e)
	require.NoError(t, err)
	assert.JSONEq(t, `{
		"code": "InvalidArgument",
		"reason": "validation_failed",
		"domain": "contact-form",
		"message": "Formulário contém erros",
		"violations": [{"field": "email", "reason": "invalid_email", "description": "Email inválido"}]
	}`, string(b))
	assert.Equal(t, string(b), e.Error())
}

func TestNew_ClonesDetailsMap(t *testing.T) {
	details := map[string]string{"email": "invalid_email"}
	e := New("Invalid argument", codes.InvalidArgument, details)
	details["email"] = "mutated"

	assert.Equal(t, "invalid_email", e.Details["email"])
}

func TestWithDetail_DoesNotMutateSource(t *testing.T) {
	base := InvalidArgument().WithDetail("email", "invalid_email")
	derived := base.WithDetail("phone", "invalid_phone")

	assert.NotContains(t, base.Details, "phone")
	assert.Equal(t, "invalid_phone", derived.Details["phone"])
	assert.Equal(t, "invalid_email", derived.Details["email"])
}

func TestWithViolations_Copies(t *testing.T) {
	src := []FieldViolation{{Field: "name", Reason: "required"}}
	e := ValidationViolations(src)
	src[0].Reason = "mutated"

	v, ok := e.Violation("name")
	assert.True(t, ok)
	assert.Equal(t, "required", v.Reason)

	_, ok = e.Violation("email")
	assert.False(t, ok)
	assert.Nil(t, InvalidArgument().WithViolations(nil).Violations)
}

func TestPresets(t *testing.T) {
	tests := []struct {
		name   string
		e      ErrorResponse
		code   codes.Code
		reason Reason
	}{
		{name: "unknown", e: Unknown(), code: codes.Unknown, reason: "unknown"},
		{name: "invalid argument", e: InvalidArgument(), code: codes.InvalidArgument, reason: "invalid_argument"},
		{name: "internal", e: Internal(), code: codes.Internal, reason: "internal"},
		{name: "validation", e: ValidationViolations(nil), code: codes.InvalidArgument, reason: "validation_failed"},
		{name: "unknown field", e: UnknownField("company"), code: codes.InvalidArgument, reason: "unknown_field"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.code, tt.e.Code)
			assert.Equal(t, tt.reason, tt.e.Reason)
		})
	}
	assert.Equal(t, "company", UnknownField("company").Details["field"])
}
