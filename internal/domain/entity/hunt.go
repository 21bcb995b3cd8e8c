package entity

import (
	"time"

	"github.com/google/uuid"
)

// HuntStatus is the lifecycle state of a hunt.
type HuntStatus string

const (
	HuntStatusActive    HuntStatus = "ACTIVE"
	HuntStatusPaused    HuntStatus = "PAUSED"
	HuntStatusCompleted HuntStatus = "COMPLETED"
	HuntStatusAbandoned HuntStatus = "ABANDONED"
)

var huntTransitions = map[HuntStatus][]HuntStatus{
	HuntStatusActive: {HuntStatusPaused, HuntStatusCompleted, HuntStatusAbandoned},
	HuntStatusPaused: {HuntStatusActive, HuntStatusCompleted, HuntStatusAbandoned},
}

// Valid reports whether s is a known status.
func (s HuntStatus) Valid() bool {
	switch s {
	case HuntStatusActive, HuntStatusPaused, HuntStatusCompleted, HuntStatusAbandoned:
		return true
	default:
		return false
	}
}

// CanTransitionTo reports whether the lifecycle allows moving from s to next.
// COMPLETED and ABANDONED are terminal.
func (s HuntStatus) CanTransitionTo(next HuntStatus) bool {
	for _, allowed := range huntTransitions[s] {
		if allowed == next {
			return true
		}
	}

	return false
}

// Hunt is a tracked campaign owned by one creator.
type Hunt struct {
	ID                uuid.UUID  `json:"id"`
	OwnerID           SubjectID  `json:"owner_id"`
	Name              string     `json:"name"`
	Status            HuntStatus `json:"status"`
	TargetEntityIDs   []int64    `json:"target_entity_ids"`
	ExcludedEntityIDs []int64    `json:"excluded_entity_ids"`
	BingoEnabled      bool       `json:"bingo_enabled"`
	CreatedAt         time.Time  `json:"created_at"`
	UpdatedAt         time.Time  `json:"updated_at"`
}

// NewHunt builds an ACTIVE hunt for owner.
func NewHunt(owner SubjectID, name string, now time.Time) *Hunt {
	return &Hunt{
		ID:        uuid.Must(uuid.NewV7()),
		OwnerID:   owner,
		Name:      name,
		Status:    HuntStatusActive,
		CreatedAt: now,
		UpdatedAt: now,
	}
}

// IsOwnedBy reports whether subject created the hunt.
func (h *Hunt) IsOwnedBy(subject SubjectID) bool {
	return h.OwnerID == subject
}
