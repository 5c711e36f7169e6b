package httpx

import (
	"errors"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"

	apperrors "github.com/espacio-evento/espacio-ui/internal/errors"
)

func TestStatusFromError(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{"validation", apperrors.Validation("x"), http.StatusBadRequest},
		{"unauthorized", apperrors.Unauthorized("x"), http.StatusUnauthorized},
		{"forbidden", apperrors.Forbidden("x"), http.StatusForbidden},
		{"not found", apperrors.NotFound("x"), http.StatusNotFound},
		{"conflict", apperrors.Conflict("x"), http.StatusConflict},
		{"remote keeps backend status", apperrors.Remote(409, "x"), http.StatusConflict},
		{"remote without status", apperrors.Remote(0, "x"), http.StatusBadGateway},
		{"connectivity", apperrors.Connectivity(errors.New("boom")), http.StatusBadGateway},
		{"internal", apperrors.Internal("x"), http.StatusInternalServerError},
		{"plain error", errors.New("boom"), http.StatusInternalServerError},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, statusFromError(tt.err))
		})
	}
}
