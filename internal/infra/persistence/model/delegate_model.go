package model

import "time"

// DelegateGrantModel is the GORM-specific struct for the 'delegate_grants' table.
type DelegateGrantModel struct {
	OwnerID        int64     `gorm:"primaryKey"`
	DelegateID     int64     `gorm:"primaryKey"`
	DelegateHandle string    `gorm:"type:varchar(64);not null"`
	ExpiresAt      time.Time `gorm:"not null"`
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

// TableName explicitly sets the table name for GORM.
func (DelegateGrantModel) TableName() string {
	return "delegate_grants"
}
