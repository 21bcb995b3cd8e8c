package handler

import (
	"log/slog"
	"net/http"

	"huntlog/internal/delivery/api/middleware"
	"huntlog/internal/delivery/api/response"
	"huntlog/internal/domain/entity"
	"huntlog/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// HuntHandlerParams holds dependencies for HuntHandler, injected by Fx.
type HuntHandlerParams struct {
	fx.In

	HuntUC          usecase.HuntUsecase
	AuthorizationUC usecase.AuthorizationUsecase
	Logger          *slog.Logger
}

// HuntHandler holds dependencies for hunt-related handlers
type HuntHandler struct {
	huntUC          usecase.HuntUsecase
	authorizationUC usecase.AuthorizationUsecase
	logger          *slog.Logger
}

// NewHuntHandler is the constructor for HuntHandler
func NewHuntHandler(params HuntHandlerParams) *HuntHandler {
	return &HuntHandler{
		huntUC:          params.HuntUC,
		authorizationUC: params.AuthorizationUC,
		logger:          params.Logger,
	}
}

// CreateHuntRequest represents the request body for creating a hunt
type CreateHuntRequest struct {
	Name              string  `json:"name" validate:"required,max=100"`
	TargetEntityIDs   []int64 `json:"target_entity_ids" validate:"dive,gt=0"`
	ExcludedEntityIDs []int64 `json:"excluded_entity_ids" validate:"dive,gt=0"`
	BingoEnabled      bool    `json:"bingo_enabled"`
}

// UpdateHuntSettingsRequest is a partial update; omitted fields stay unchanged.
type UpdateHuntSettingsRequest struct {
	Name              *string `json:"name" validate:"omitempty,min=1,max=100"`
	TargetEntityIDs   []int64 `json:"target_entity_ids" validate:"omitempty,dive,gt=0"`
	ExcludedEntityIDs []int64 `json:"excluded_entity_ids" validate:"omitempty,dive,gt=0"`
	BingoEnabled      *bool   `json:"bingo_enabled"`
}

// ChangeStatusRequest represents the request body for a status transition
type ChangeStatusRequest struct {
	Status entity.HuntStatus `json:"status" validate:"required,oneof=ACTIVE PAUSED COMPLETED ABANDONED"`
}

// PermissionsResponse tells a client which controls to show for a hunt.
type PermissionsResponse struct {
	HuntID             uuid.UUID   `json:"hunt_id"`
	Tier               entity.Tier `json:"tier"`
	CanWriteEncounters bool        `json:"can_write_encounters"`
	CanManageSettings  bool        `json:"can_manage_settings"`
}

// CreateHunt handles hunt creation for the signed-in owner
func (h *HuntHandler) CreateHunt(c echo.Context) error {
	var req CreateHuntRequest
	if err := c.Bind(&req); err != nil {
		return bindingFailed(c)
	}

	if err := c.Validate(&req); err != nil {
		return validationFailed(c, err)
	}

	hunt, err := h.huntUC.CreateHunt(c.Request().Context(), middleware.GetSession(c), usecase.CreateHuntInput{
		Name:              req.Name,
		TargetEntityIDs:   req.TargetEntityIDs,
		ExcludedEntityIDs: req.ExcludedEntityIDs,
		BingoEnabled:      req.BingoEnabled,
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, hunt)
}

// UpdateSettings handles partial settings updates
func (h *HuntHandler) UpdateSettings(c echo.Context) error {
	huntID, ok := uuidParam(c, "huntId")
	if !ok {
		return invalidParam(c, "hunt ID")
	}

	var req UpdateHuntSettingsRequest
	if err := c.Bind(&req); err != nil {
		return bindingFailed(c)
	}

	if err := c.Validate(&req); err != nil {
		return validationFailed(c, err)
	}

	hunt, err := h.huntUC.UpdateSettings(c.Request().Context(), middleware.GetSession(c), usecase.UpdateHuntSettingsInput{
		HuntID:            huntID,
		Name:              req.Name,
		TargetEntityIDs:   req.TargetEntityIDs,
		ExcludedEntityIDs: req.ExcludedEntityIDs,
		BingoEnabled:      req.BingoEnabled,
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, hunt)
}

// ChangeStatus handles hunt lifecycle transitions
func (h *HuntHandler) ChangeStatus(c echo.Context) error {
	huntID, ok := uuidParam(c, "huntId")
	if !ok {
		return invalidParam(c, "hunt ID")
	}

	var req ChangeStatusRequest
	if err := c.Bind(&req); err != nil {
		return bindingFailed(c)
	}

	if err := c.Validate(&req); err != nil {
		return validationFailed(c, err)
	}

	hunt, err := h.huntUC.ChangeStatus(c.Request().Context(), middleware.GetSession(c), huntID, req.Status)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, hunt)
}

// GetHunt returns one hunt. Hunts are public.
func (h *HuntHandler) GetHunt(c echo.Context) error {
	huntID, ok := uuidParam(c, "huntId")
	if !ok {
		return invalidParam(c, "hunt ID")
	}

	hunt, err := h.huntUC.GetHunt(c.Request().Context(), huntID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, hunt)
}

// ListOwnerHunts returns every hunt of an owner, newest first
func (h *HuntHandler) ListOwnerHunts(c echo.Context) error {
	ownerID, err := entity.ParseSubjectID(c.Param("ownerId"))
	if err != nil {
		return invalidParam(c, "owner ID")
	}

	hunts, err := h.huntUC.ListHunts(c.Request().Context(), ownerID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, hunts)
}

// Permissions resolves the caller's tier for a hunt. Anonymous callers get "unauthorized".
func (h *HuntHandler) Permissions(c echo.Context) error {
	huntID, ok := uuidParam(c, "huntId")
	if !ok {
		return invalidParam(c, "hunt ID")
	}

	authz, err := h.authorizationUC.Authorize(c.Request().Context(), middleware.GetSession(c), huntID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, PermissionsResponse{
		HuntID:             huntID,
		Tier:               authz.Tier,
		CanWriteEncounters: authz.Tier.CanWriteEncounters(),
		CanManageSettings:  authz.Tier.CanManageHuntSettings(),
	})
}
