package db

// Collection names used by the service. Stores reference these constants
// instead of repeating string literals.
const (
	CollectionUsers    = "users"
	CollectionCounters = "counters"
)
