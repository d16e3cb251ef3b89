package form

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/grpc/codes"

	errs "github.com/vortex-fintech/go-contactform/foundation/errors"
)

func TestParseField(t *testing.T) {
	for _, f := range Fields() {
		got, err := ParseField(string(f))
		assert.NoError(t, err)
		assert.Equal(t, f, got)
	}

	_, err := ParseField("company")
	assert.ErrorIs(t, err, ErrUnknownField)
	_, err = ParseField("Name")
	assert.ErrorIs(t, err, ErrUnknownField)

	var resp errs.ErrorResponse
	require.True(t, errors.As(err, &resp))
	assert.Equal(t, codes.InvalidArgument, resp.Code)
	assert.Equal(t, errs.Reason("unknown_field"), resp.Reason)
	assert.Equal(t, "Name", resp.Details["field"])
}

func TestFields_Order(t *testing.T) {
	assert.Equal(t, []Field{Name, Email, Phone, Subject, Message}, Fields())
}

func TestValues_GetSet(t *testing.T) {
	var v Values
	for _, f := range Fields() {
		v.Set(f, "x-"+string(f))
	}
	assert.Equal(t, Values{Name: "x-name", Email: "x-email", Phone: "x-phone", Subject: "x-subject", Message: "x-message"}, v)

	v.Set(Field("other"), "ignored")
	assert.Equal(t, "", v.Get(Field("other")))
}

func TestErrors_SetClearMap(t *testing.T) {
	var e Errors
	assert.True(t, e.Empty())
	assert.Empty(t, e.Map())

	e.Set(Email, "Email inválido")
	e.Set(Message, "curta")
	assert.False(t, e.Empty())
	assert.True(t, e.Has(Email))
	assert.Equal(t, map[string]string{"email": "Email inválido", "message": "curta"}, e.Map())

	e.Clear(Email)
	e.Set(Message, "")
	assert.True(t, e.Empty())
}

func TestTouched_Mark(t *testing.T) {
	var tf Touched
	tf.Mark(Phone)
	tf.Mark(Phone)

	assert.True(t, tf.Get(Phone))
	assert.False(t, tf.Get(Name))
	assert.Equal(t, map[string]bool{
		"name": false, "email": false, "phone": true, "subject": false, "message": false,
	}, tf.Map())
}
