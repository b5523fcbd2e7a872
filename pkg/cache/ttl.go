package cache

import "time"

// Default TTLs per payload kind. Plans are pure functions of their inputs,
// so the TTLs exist only to bound cache growth, not for correctness.
const (
	// TTLPlan is the lifetime of cached layout computations.
	TTLPlan = 7 * 24 * time.Hour

	// TTLArtifact is the lifetime of cached rendered artifacts.
	TTLArtifact = 24 * time.Hour
)
