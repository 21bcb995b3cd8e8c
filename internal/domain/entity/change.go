package entity

import (
	"time"

	"github.com/google/uuid"
)

// ChangeAction names the mutation that produced a change signal.
type ChangeAction string

const (
	ChangeEncounterAdded    ChangeAction = "encounter_added"
	ChangeEncounterUpdated  ChangeAction = "encounter_updated"
	ChangeEncounterDeleted  ChangeAction = "encounter_deleted"
	ChangeHuntCreated       ChangeAction = "hunt_created"
	ChangeHuntUpdated       ChangeAction = "hunt_updated"
	ChangeHuntStatusChanged ChangeAction = "hunt_status_changed"
)

// IsEncounterAction reports whether the change touched the encounter log.
func (a ChangeAction) IsEncounterAction() bool {
	return a == ChangeEncounterAdded || a == ChangeEncounterUpdated || a == ChangeEncounterDeleted
}

// ChangeEvent is an invalidate-and-refetch signal for one hunt. Receivers never
// apply it as a delta.
type ChangeEvent struct {
	Action      ChangeAction `json:"action"`
	HuntID      uuid.UUID    `json:"hunt_id"`
	OwnerID     SubjectID    `json:"owner_id"`
	EncounterID *uuid.UUID   `json:"encounter_id,omitempty"`
	OccurredAt  time.Time    `json:"occurred_at"`

	// Encounter is carried to the relay only; the durable feed sends ids.
	Encounter *Encounter `json:"-"`
}
