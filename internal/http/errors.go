package httpx

import (
	"net/http"

	apperrors "github.com/espacio-evento/espacio-ui/internal/errors"
)

// statusFromError maps application error codes to HTTP status codes for
// page responses.
func statusFromError(err error) int {
	switch apperrors.GetCode(err) {
	case apperrors.ErrCodeValidation:
		return http.StatusBadRequest
	case apperrors.ErrCodeUnauthorized:
		return http.StatusUnauthorized
	case apperrors.ErrCodeForbidden:
		return http.StatusForbidden
	case apperrors.ErrCodeNotFound:
		return http.StatusNotFound
	case apperrors.ErrCodeConflict:
		return http.StatusConflict
	case apperrors.ErrCodeRemote:
		if status := apperrors.RemoteStatus(err); status != 0 {
			return status
		}
		return http.StatusBadGateway
	case apperrors.ErrCodeConnectivity:
		return http.StatusBadGateway
	}
	return http.StatusInternalServerError
}
