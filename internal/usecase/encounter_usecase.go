package usecase

import (
	"context"

	"huntlog/internal/domain/entity"

	"github.com/google/uuid"
)

// AddEncounterInput defines a new find on a slot.
type AddEncounterInput struct {
	HuntID     uuid.UUID
	SlotNumber int
	EntityID   int
}

// UpdateEncounterInput moves or corrects an existing active encounter.
type UpdateEncounterInput struct {
	EncounterID uuid.UUID
	SlotNumber  int
	EntityID    int
}

// EncounterUsecase defines the encounter log operations.
type EncounterUsecase interface {
	AddEncounter(ctx context.Context, session *entity.Session, input AddEncounterInput) (*entity.Encounter, error)

	// UpdateEncounter supersedes the encounter and returns its replacement.
	UpdateEncounter(ctx context.Context, session *entity.Session, input UpdateEncounterInput) (*entity.Encounter, error)

	// DeleteEncounter is idempotent: deleting a deleted encounter succeeds
	// without touching it.
	DeleteEncounter(ctx context.Context, session *entity.Session, encounterID uuid.UUID) error

	ListEncounters(ctx context.Context, huntID uuid.UUID, includeHistory bool) ([]*entity.Encounter, error)
}
