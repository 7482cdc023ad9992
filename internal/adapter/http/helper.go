package http

import (
	"errors"
	"net/http"

	"assettrack-backend/internal/domain/asset"
	"assettrack-backend/internal/domain/notification"
	"assettrack-backend/internal/domain/request"

	"github.com/labstack/echo/v4"
)

// writeDomainError maps workflow errors onto HTTP codes. Every failure kind
// stays distinguishable; nothing collapses into a generic 500 unless it
// really is one.
func writeDomainError(c echo.Context, err error) error {
	switch {
	case errors.Is(err, request.ErrNotFound),
		errors.Is(err, asset.ErrNotFound),
		errors.Is(err, notification.ErrNotFound):
		return c.JSON(http.StatusNotFound, ErrorResponse{Error: err.Error()})
	case errors.Is(err, request.ErrDuplicateRequest),
		errors.Is(err, request.ErrInvalidTransition),
		errors.Is(err, request.ErrAssetUnavailable),
		errors.Is(err, asset.ErrReserved):
		return c.JSON(http.StatusConflict, ErrorResponse{Error: err.Error()})
	case errors.Is(err, request.ErrUnauthorized):
		return c.JSON(http.StatusForbidden, ErrorResponse{Error: err.Error()})
	case errors.Is(err, asset.ErrInvalidStatus):
		return c.JSON(http.StatusUnprocessableEntity, ErrorResponse{Error: err.Error()})
	default:
		return c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "internal error"})
	}
}
