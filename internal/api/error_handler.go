package api

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/staffhub/hr-asset-system/internal/api/metrics"
	"github.com/staffhub/hr-asset-system/internal/core/domain"
	"github.com/staffhub/hr-asset-system/internal/core/validation"
)

// errorResponse is the canonical envelope for single-message errors.
type errorResponse struct {
	Error string `json:"error"`
}

// validationResponse is the envelope for accumulated field errors.
type validationResponse struct {
	Errors validation.Errors `json:"errors"`
}

// NewHTTPErrorHandler returns an echo.HTTPErrorHandler that:
//   - Renders validation batches as 400 with the full {field, message} list.
//   - Maps known domain errors to their HTTP status codes; write-time
//     unique-constraint violations land on the same "already exists"
//     response as the validation pre-check.
//   - Logs unexpected errors server-side and returns a generic 500; the
//     underlying cause never reaches the response body.
func NewHTTPErrorHandler(log zerolog.Logger) echo.HTTPErrorHandler {
	return func(err error, c echo.Context) {
		if c.Response().Committed {
			return
		}

		var verrs validation.Errors
		if errors.As(err, &verrs) {
			metrics.ValidationFailuresTotal.WithLabelValues(c.Path()).Inc()
			_ = c.JSON(http.StatusBadRequest, validationResponse{Errors: verrs})
			return
		}

		code, msg := resolveError(err, log, c)
		_ = c.JSON(code, errorResponse{Error: msg})
	}
}

func resolveError(err error, log zerolog.Logger, c echo.Context) (int, string) {
	// Echo's own errors (bind failures, 404 from the router, middleware
	// rejections).
	var he *echo.HTTPError
	if errors.As(err, &he) {
		return he.Code, fmt.Sprintf("%v", he.Message)
	}

	switch {
	case errors.Is(err, domain.ErrInvalidCredentials):
		return http.StatusUnauthorized, "invalid credentials"
	case errors.Is(err, domain.ErrUserNotFound):
		return http.StatusNotFound, "user not found"
	case errors.Is(err, domain.ErrAssetNotFound):
		return http.StatusNotFound, "asset not found"
	case errors.Is(err, domain.ErrDepartmentNotFound):
		return http.StatusNotFound, "department not found"
	case errors.Is(err, domain.ErrEmailExists):
		return http.StatusBadRequest, "email already exists"
	case errors.Is(err, domain.ErrSerialNumberExists):
		return http.StatusBadRequest, "serial number already exists"
	case errors.Is(err, domain.ErrDepartmentExists):
		return http.StatusBadRequest, "department already exists"
	case errors.Is(err, domain.ErrRoleAssignment):
		return http.StatusForbidden, "cannot assign restricted roles"
	}

	// Unexpected error: log the real cause, return a generic message.
	log.Error().
		Err(err).
		Str("method", c.Request().Method).
		Str("path", c.Path()).
		Msg("unhandled error")

	return http.StatusInternalServerError, "internal server error"
}
