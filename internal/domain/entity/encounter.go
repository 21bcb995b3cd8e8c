package entity

import (
	"time"

	"github.com/google/uuid"
)

// EncounterState tags where an encounter row sits in its lifecycle.
type EncounterState string

const (
	// EncounterActive rows occupy their slot.
	EncounterActive EncounterState = "active"
	// EncounterSuperseded rows were replaced by an update and released their slot.
	EncounterSuperseded EncounterState = "superseded"
	// EncounterDeleted rows were removed but keep their slot number for history.
	EncounterDeleted EncounterState = "deleted"
)

// Encounter is one logged find: an entity on a numbered slot within a hunt.
type Encounter struct {
	ID         uuid.UUID  `json:"id"`
	HuntID     uuid.UUID  `json:"hunt_id"`
	SlotNumber *int       `json:"slot_number"`
	EntityID   int        `json:"entity_id"`
	CreatedBy  SubjectID  `json:"created_by"`
	OccurredAt time.Time  `json:"occurred_at"`
	IsDeleted  bool       `json:"is_deleted"`
	DeletedBy  *SubjectID `json:"deleted_by,omitempty"`
	DeletedAt  *time.Time `json:"deleted_at,omitempty"`
}

// NewEncounter builds an active encounter created by actor.
func NewEncounter(huntID uuid.UUID, slot, entityID int, actor SubjectID, now time.Time) *Encounter {
	return &Encounter{
		ID:         uuid.Must(uuid.NewV7()),
		HuntID:     huntID,
		SlotNumber: &slot,
		EntityID:   entityID,
		CreatedBy:  actor,
		OccurredAt: now,
	}
}

// State derives the lifecycle tag from the stored columns.
func (e *Encounter) State() EncounterState {
	switch {
	case !e.IsDeleted:
		return EncounterActive
	case e.SlotNumber == nil:
		return EncounterSuperseded
	default:
		return EncounterDeleted
	}
}

// Slot returns the slot number or 0 when it was cleared.
func (e *Encounter) Slot() int {
	if e.SlotNumber == nil {
		return 0
	}

	return *e.SlotNumber
}

// OccupiesSlot reports whether e is active on slot.
func (e *Encounter) OccupiesSlot(slot int) bool {
	return !e.IsDeleted && e.SlotNumber != nil && *e.SlotNumber == slot
}

// MarkDeleted moves an active encounter to the deleted state keeping its slot.
// It returns false when the encounter was already deleted, leaving the first
// deletion untouched.
func (e *Encounter) MarkDeleted(actor SubjectID, now time.Time) bool {
	if e.IsDeleted {
		return false
	}

	e.IsDeleted = true
	e.DeletedBy = &actor
	e.DeletedAt = &now

	return true
}

// Supersede moves an active encounter to the superseded state, clearing its
// slot, and returns the replacement row that takes over the new slot.
func (e *Encounter) Supersede(actor SubjectID, now time.Time, newSlot, newEntityID int) *Encounter {
	e.IsDeleted = true
	e.DeletedBy = &actor
	e.DeletedAt = &now
	e.SlotNumber = nil

	return NewEncounter(e.HuntID, newSlot, newEntityID, actor, now)
}
