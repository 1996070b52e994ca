package apierr

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yungbote/person-api/internal/domain/failure"
)

func TestTranslateNotFound(t *testing.T) {
	ae, ok := Translate(fmt.Errorf("get: %w", failure.PersonNotFound(42)))
	require.True(t, ok)
	assert.Equal(t, http.StatusNotFound, ae.Status)
	assert.Equal(t, "NOT_FOUND", ae.ReasonCode)
	assert.Equal(t, []string{"Resource person with id 42 does not exist"}, ae.Errors)

	ae, ok = Translate(failure.AddressNotFound(3))
	require.True(t, ok)
	assert.Equal(t, []string{"Resource address with id 3 does not exist"}, ae.Errors)
}

func TestTranslateValidation(t *testing.T) {
	ae, ok := Translate(&failure.ValidationFailed{Fields: []failure.FieldError{
		{Field: "street", Message: "is mandatory"},
		{Field: "postalCode", Message: "is mandatory"},
	}})
	require.True(t, ok)
	assert.Equal(t, http.StatusBadRequest, ae.Status)
	assert.Equal(t, "BAD_REQUEST", ae.ReasonCode)
	assert.Equal(t, []string{"street: is mandatory", "postalCode: is mandatory"}, ae.Errors)
}

func TestTranslateLeavesOtherErrorsAlone(t *testing.T) {
	for _, err := range []error{
		nil,
		errors.New("connection refused"),
		context.DeadlineExceeded,
		fmt.Errorf("count people: %w", errors.New("db down")),
	} {
		ae, ok := Translate(err)
		assert.False(t, ok, "err=%v", err)
		assert.Nil(t, ae)
	}
}

func TestErrorUnwrap(t *testing.T) {
	cause := failure.PersonNotFound(1)
	ae := New(http.StatusNotFound, ReasonNotFound, cause)
	assert.True(t, errors.Is(ae, cause))
	assert.Equal(t, []string{}, ae.Errors)
	assert.Equal(t, cause.Error(), ae.Error())
}
