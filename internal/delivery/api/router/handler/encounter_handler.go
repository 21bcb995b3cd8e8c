package handler

import (
	"log/slog"
	"net/http"
	"strconv"

	"huntlog/internal/delivery/api/middleware"
	"huntlog/internal/delivery/api/response"
	"huntlog/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// EncounterHandlerParams holds dependencies for EncounterHandler, injected by Fx.
type EncounterHandlerParams struct {
	fx.In

	EncounterUC usecase.EncounterUsecase
	Logger      *slog.Logger
}

// EncounterHandler holds dependencies for encounter log handlers
type EncounterHandler struct {
	encounterUC usecase.EncounterUsecase
	logger      *slog.Logger
}

// NewEncounterHandler is the constructor for EncounterHandler
func NewEncounterHandler(params EncounterHandlerParams) *EncounterHandler {
	return &EncounterHandler{
		encounterUC: params.EncounterUC,
		logger:      params.Logger,
	}
}

// EncounterRequest is the body for adding or replacing an encounter
type EncounterRequest struct {
	SlotNumber int `json:"slot_number" validate:"required,gt=0"`
	EntityID   int `json:"entity_id" validate:"required,gt=0"`
}

// AddEncounter logs a new find on a slot
func (h *EncounterHandler) AddEncounter(c echo.Context) error {
	huntID, ok := uuidParam(c, "huntId")
	if !ok {
		return invalidParam(c, "hunt ID")
	}

	var req EncounterRequest
	if err := c.Bind(&req); err != nil {
		return bindingFailed(c)
	}

	if err := c.Validate(&req); err != nil {
		return validationFailed(c, err)
	}

	encounter, err := h.encounterUC.AddEncounter(c.Request().Context(), middleware.GetSession(c), usecase.AddEncounterInput{
		HuntID:     huntID,
		SlotNumber: req.SlotNumber,
		EntityID:   req.EntityID,
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, encounter)
}

// UpdateEncounter replaces an encounter and returns the new row
func (h *EncounterHandler) UpdateEncounter(c echo.Context) error {
	encounterID, ok := uuidParam(c, "encounterId")
	if !ok {
		return invalidParam(c, "encounter ID")
	}

	var req EncounterRequest
	if err := c.Bind(&req); err != nil {
		return bindingFailed(c)
	}

	if err := c.Validate(&req); err != nil {
		return validationFailed(c, err)
	}

	encounter, err := h.encounterUC.UpdateEncounter(c.Request().Context(), middleware.GetSession(c), usecase.UpdateEncounterInput{
		EncounterID: encounterID,
		SlotNumber:  req.SlotNumber,
		EntityID:    req.EntityID,
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, encounter)
}

// DeleteEncounter soft-deletes an encounter
func (h *EncounterHandler) DeleteEncounter(c echo.Context) error {
	encounterID, ok := uuidParam(c, "encounterId")
	if !ok {
		return invalidParam(c, "encounter ID")
	}

	if err := h.encounterUC.DeleteEncounter(c.Request().Context(), middleware.GetSession(c), encounterID); err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, map[string]string{"message": "Encounter deleted"})
}

// ListEncounters returns the hunt's log. ?history=true adds superseded and deleted rows.
func (h *EncounterHandler) ListEncounters(c echo.Context) error {
	huntID, ok := uuidParam(c, "huntId")
	if !ok {
		return invalidParam(c, "hunt ID")
	}

	includeHistory := false
	if raw := c.QueryParam("history"); raw != "" {
		parsed, err := strconv.ParseBool(raw)
		if err != nil {
			return invalidParam(c, "history flag")
		}
		includeHistory = parsed
	}

	encounters, err := h.encounterUC.ListEncounters(c.Request().Context(), huntID, includeHistory)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, encounters)
}
