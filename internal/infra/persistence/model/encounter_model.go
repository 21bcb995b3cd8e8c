package model

import (
	"time"

	"github.com/google/uuid"
)

// EncounterModel is the GORM-specific struct for the 'encounters' table.
// Uniqueness of (hunt_id, slot_number) among live rows is a partial index in
// the migrations, not a GORM tag.
type EncounterModel struct {
	ID         uuid.UUID `gorm:"type:uuid;primaryKey"`
	HuntID     uuid.UUID `gorm:"type:uuid;not null;index"`
	SlotNumber *int
	EntityID   int       `gorm:"not null"`
	CreatedBy  int64     `gorm:"not null"`
	OccurredAt time.Time `gorm:"not null"`
	IsDeleted  bool      `gorm:"not null;default:false"`
	DeletedBy  *int64
	DeletedAt  *time.Time
}

// TableName explicitly sets the table name for GORM.
func (EncounterModel) TableName() string {
	return "encounters"
}
