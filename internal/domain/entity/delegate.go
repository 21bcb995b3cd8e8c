package entity

import "time"

// DelegateGrant is an owner-granted, time-boxed write permission ("temp mod").
// Expired grants are kept and ignored by authorization.
type DelegateGrant struct {
	OwnerID        SubjectID `json:"owner_id"`
	DelegateID     SubjectID `json:"delegate_id"`
	DelegateHandle string    `json:"delegate_handle"`
	ExpiresAt      time.Time `json:"expires_at"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
}

// ActiveAt reports whether the grant is still in force at now.
func (g *DelegateGrant) ActiveAt(now time.Time) bool {
	return g.ExpiresAt.After(now)
}
