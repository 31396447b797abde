package services

import (
	"errors"
	"net/http"

	vferrors "visionflow/pkg/errors"
)

// HTTPStatus maps service errors to response codes once, at the handler
// boundary. Not-found and conflict outcomes deliberately map to 400, not
// 404/409: that is the public contract of this API.
func HTTPStatus(err error) int {
	switch {
	case errors.Is(err, vferrors.ErrInvalidInput),
		errors.Is(err, vferrors.ErrInvalidEmail),
		errors.Is(err, vferrors.ErrUserExists),
		errors.Is(err, vferrors.ErrUserNotFound),
		errors.Is(err, vferrors.ErrWrongPassword),
		errors.Is(err, vferrors.ErrNotDeliverable),
		errors.Is(err, vferrors.ErrStore):
		return http.StatusBadRequest
	case errors.Is(err, vferrors.ErrLogoNotAllowed),
		errors.Is(err, vferrors.ErrQuotaExceeded):
		return http.StatusForbidden
	default:
		return http.StatusInternalServerError
	}
}
