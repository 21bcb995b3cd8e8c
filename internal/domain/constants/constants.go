package constants

// Relay providers
const (
	RelayProviderHTTP   = "http"
	RelayProviderGoogle = "google"
	RelayProviderRedis  = "redis"
)

// Encounter payload bounds
const (
	MinSlotNumber = 1
	MinEntityID   = 1
)
