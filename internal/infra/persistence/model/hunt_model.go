package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// HuntModel is the GORM-specific struct for the 'hunts' table.
type HuntModel struct {
	ID                uuid.UUID                  `gorm:"type:uuid;primaryKey"`
	OwnerID           int64                      `gorm:"not null;index"`
	Name              string                     `gorm:"type:varchar(120);not null;default:''"`
	Status            string                     `gorm:"type:varchar(16);not null"`
	TargetEntityIDs   datatypes.JSONSlice[int64] `gorm:"type:jsonb;not null"`
	ExcludedEntityIDs datatypes.JSONSlice[int64] `gorm:"type:jsonb;not null"`
	BingoEnabled      bool                       `gorm:"not null;default:false"`
	CreatedAt         time.Time
	UpdatedAt         time.Time
}

// TableName explicitly sets the table name for GORM.
func (HuntModel) TableName() string {
	return "hunts"
}
