package entity

// Tier is the trust level a caller holds against a single hunt.
type Tier int

const (
	TierUnauthorized Tier = iota
	TierDelegateModerator
	TierPlatformModerator
	TierOwner
)

func (t Tier) String() string {
	switch t {
	case TierOwner:
		return "owner"
	case TierPlatformModerator:
		return "platform_moderator"
	case TierDelegateModerator:
		return "delegate_moderator"
	default:
		return "unauthorized"
	}
}

// CanWriteEncounters reports whether the tier may add, update or delete encounters.
func (t Tier) CanWriteEncounters() bool {
	return t == TierOwner || t == TierPlatformModerator || t == TierDelegateModerator
}

// CanManageHuntSettings reports whether the tier may change settings, status and delegates.
func (t Tier) CanManageHuntSettings() bool {
	return t == TierOwner
}

// MarshalText renders the tier name in JSON responses.
func (t Tier) MarshalText() ([]byte, error) {
	return []byte(t.String()), nil
}
