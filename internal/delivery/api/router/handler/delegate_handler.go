package handler

import (
	"log/slog"
	"net/http"
	"time"

	"huntlog/internal/delivery/api/middleware"
	"huntlog/internal/delivery/api/response"
	"huntlog/internal/domain/entity"
	"huntlog/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// DelegateHandlerParams holds dependencies for DelegateHandler, injected by Fx.
type DelegateHandlerParams struct {
	fx.In

	DelegateUC usecase.DelegateUsecase
	Logger     *slog.Logger
}

// DelegateHandler manages the signed-in owner's delegates
type DelegateHandler struct {
	delegateUC usecase.DelegateUsecase
	logger     *slog.Logger
}

// NewDelegateHandler is the constructor for DelegateHandler
func NewDelegateHandler(params DelegateHandlerParams) *DelegateHandler {
	return &DelegateHandler{
		delegateUC: params.DelegateUC,
		logger:     params.Logger,
	}
}

// GrantDelegateRequest represents the body of a grant upsert
type GrantDelegateRequest struct {
	DelegateHandle string    `json:"delegate_handle" validate:"required,max=64"`
	ExpiresAt      time.Time `json:"expires_at" validate:"required"`
}

// ListDelegates returns all grants of the caller, expired ones included
func (h *DelegateHandler) ListDelegates(c echo.Context) error {
	grants, err := h.delegateUC.ListDelegates(c.Request().Context(), middleware.GetSession(c))
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, grants)
}

// GrantDelegate creates or extends a grant
func (h *DelegateHandler) GrantDelegate(c echo.Context) error {
	delegateID, err := entity.ParseSubjectID(c.Param("delegateId"))
	if err != nil {
		return invalidParam(c, "delegate ID")
	}

	var req GrantDelegateRequest
	if err := c.Bind(&req); err != nil {
		return bindingFailed(c)
	}

	if err := c.Validate(&req); err != nil {
		return validationFailed(c, err)
	}

	grant, err := h.delegateUC.GrantDelegate(c.Request().Context(), middleware.GetSession(c), usecase.GrantDelegateInput{
		DelegateID:     delegateID,
		DelegateHandle: req.DelegateHandle,
		ExpiresAt:      req.ExpiresAt,
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, grant)
}

// RevokeDelegate expires a grant now
func (h *DelegateHandler) RevokeDelegate(c echo.Context) error {
	delegateID, err := entity.ParseSubjectID(c.Param("delegateId"))
	if err != nil {
		return invalidParam(c, "delegate ID")
	}

	if err := h.delegateUC.RevokeDelegate(c.Request().Context(), middleware.GetSession(c), delegateID); err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, map[string]string{"message": "Delegate revoked"})
}
