package errors

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConnectivity_MessageAndCause(t *testing.T) {
	cause := errors.New("dial tcp: connection refused")
	err := Connectivity(cause)

	assert.Equal(t, "error de conexión con el servidor", err.Error())
	assert.True(t, IsConnectivity(err))
	assert.ErrorIs(t, err, cause)
}

func TestRemote_CarriesStatusAndVerbatimMessage(t *testing.T) {
	err := Remote(409, "Correo ya registrado")

	assert.Equal(t, "Correo ya registrado", err.Error())
	assert.True(t, IsRemote(err))
	assert.Equal(t, 409, RemoteStatus(err))
}

func TestPredicates(t *testing.T) {
	tests := []struct {
		err  error
		pred func(error) bool
		code ErrorCode
	}{
		{Validation("x"), IsValidation, ErrCodeValidation},
		{Validationf("campo %s", "correo"), IsValidation, ErrCodeValidation},
		{Unauthorized("x"), IsUnauthorized, ErrCodeUnauthorized},
		{Forbidden("x"), IsForbidden, ErrCodeForbidden},
		{NotFound("x"), IsNotFound, ErrCodeNotFound},
		{Conflict("x"), IsConflict, ErrCodeConflict},
		{Internal("x"), IsInternal, ErrCodeInternal},
	}
	for _, tt := range tests {
		assert.True(t, tt.pred(tt.err), "predicate for %s", tt.code)
		assert.Equal(t, tt.code, GetCode(tt.err))
	}
}

func TestPredicates_RejectOtherCodes(t *testing.T) {
	err := Validation("x")

	assert.False(t, IsRemote(err))
	assert.False(t, IsConnectivity(err))
	assert.False(t, IsValidation(errors.New("plain")))
	assert.Empty(t, GetCode(errors.New("plain")))
	assert.Zero(t, RemoteStatus(errors.New("plain")))
}

func TestWrap_PreservesCodeThroughFmtWrapping(t *testing.T) {
	inner := Remote(404, "Evento no encontrado")
	wrapped := fmt.Errorf("get evento: %w", inner)

	assert.True(t, IsRemote(wrapped))
	assert.Equal(t, 404, RemoteStatus(wrapped))
}

func TestWrap_NilIsNil(t *testing.T) {
	require.Nil(t, Wrap(nil, ErrCodeInternal, "x"))
	require.Nil(t, Wrapf(nil, ErrCodeInternal, "x %d", 1))
}

func TestWrap_BuildsChain(t *testing.T) {
	cause := errors.New("boom")
	err := Wrapf(cause, ErrCodeValidation, "el pago aún no ha sido confirmado")

	assert.True(t, IsValidation(err))
	assert.Equal(t, "el pago aún no ha sido confirmado", err.Error())
	assert.ErrorIs(t, err, cause)
}
