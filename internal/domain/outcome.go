package domain

// Collection names an entity list the console derives from upstream state.
type Collection string

const (
	CollectionAmbulances Collection = "ambulances"
	CollectionCases      Collection = "cases"
	CollectionResolved   Collection = "resolved"
	CollectionProfile    Collection = "profile"
)

// Outcome is the typed result of one user gesture. Instead of a full
// page reload the caller refetches exactly the collections listed in
// Refresh; Resync means the upstream state moved underneath us
// (conflict) and every collection is stale.
type Outcome struct {
	Success   bool         `json:"success"`
	Message   string       `json:"message,omitempty"`
	Refresh   []Collection `json:"refresh,omitempty"`
	Resync    bool         `json:"resync,omitempty"`
	Retryable bool         `json:"retryable,omitempty"`
	// DelayMS is a presentation hint: collapse the profile form or
	// fade the removed card after this many milliseconds.
	DelayMS int `json:"delay_ms,omitempty"`
	// Removed carries the id of an entity whose card should leave the
	// view without a refetch.
	Removed string `json:"removed,omitempty"`
}

func RefreshAll() []Collection {
	return []Collection{CollectionCases, CollectionAmbulances, CollectionResolved, CollectionProfile}
}
