// Package handler contains the HTTP handlers for the API.
package handler

import (
	"net/http"

	"huntlog/internal/delivery/api/response"
	"huntlog/internal/delivery/api/validator"
	domainerrors "huntlog/internal/domain/errors"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

// HealthCheck is a simple handler to check if the service is up.
func HealthCheck(c echo.Context) error {
	return response.Success(c, http.StatusOK, map[string]string{"status": "ok"})
}

func bindingFailed(c echo.Context) error {
	return response.BindingError(c, domainerrors.ErrInvalidPayload.ErrorCode(), "Request body is malformed")
}

func validationFailed(c echo.Context, err error) error {
	return response.BadRequestWithDetails(c,
		domainerrors.ErrInvalidPayload.ErrorCode(),
		domainerrors.ErrInvalidPayload.Message(),
		validator.FieldErrors(err),
	)
}

func invalidParam(c echo.Context, name string) error {
	return response.BadRequest(c, domainerrors.ErrInvalidPayload.ErrorCode(), "Invalid "+name)
}

// uuidParam parses a path parameter holding a UUID.
func uuidParam(c echo.Context, name string) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param(name))
	if err != nil {
		return uuid.Nil, false
	}

	return id, true
}
