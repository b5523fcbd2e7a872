// Package cache provides content-addressed caching for plan results and
// rendered wall artifacts. Keys are derived from the inputs that produced a
// value, so a cache hit is always safe to reuse.
package cache

import (
	"context"
	"time"
)

// Cache is the storage backend for cached plan and artifact payloads.
type Cache interface {
	// Get retrieves a value. The second return reports whether the key was
	// present (a miss is not an error).
	Get(ctx context.Context, key string) ([]byte, bool, error)

	// Set stores a value with an optional TTL. A zero TTL means no expiry.
	Set(ctx context.Context, key string, data []byte, ttl time.Duration) error

	// Delete removes a value. Deleting a missing key is not an error.
	Delete(ctx context.Context, key string) error

	// Close releases any resources held by the cache.
	Close() error
}

// PlanKeyOpts are the planning inputs that participate in the plan cache key.
// Any field that changes the computed layout must appear here.
type PlanKeyOpts struct {
	LengthCm  float64
	HeightCm  float64
	Direction string
	MinCm     float64
	MaxCm     float64
	Ratio     float64
	Selection string
}

// ArtifactKeyOpts are the render inputs that participate in the artifact
// cache key.
type ArtifactKeyOpts struct {
	Format       string
	Width        int
	Height       int
	Style        string
	ColoredColor string
	WhiteColor   string

	// Obstacles is a serialized form of the obstacle overlays; they change
	// the drawn scene without changing the plan hash.
	Obstacles string
}

// Keyer generates cache keys. Implementations must be deterministic: the
// same inputs always yield the same key.
type Keyer interface {
	// PlanKey generates a key for a computed layout.
	PlanKey(opts PlanKeyOpts) string

	// ArtifactKey generates a key for a rendered artifact, derived from the
	// hash of the plan it renders.
	ArtifactKey(planHash string, opts ArtifactKeyOpts) string
}

// DefaultKeyer is the standard Keyer implementation.
type DefaultKeyer struct{}

// NewDefaultKeyer creates the standard keyer.
func NewDefaultKeyer() Keyer {
	return &DefaultKeyer{}
}

// PlanKey generates a key for a computed layout.
func (k *DefaultKeyer) PlanKey(opts PlanKeyOpts) string {
	return hashKey("plan", opts)
}

// ArtifactKey generates a key for a rendered artifact.
func (k *DefaultKeyer) ArtifactKey(planHash string, opts ArtifactKeyOpts) string {
	return hashKey("artifact", planHash, opts)
}

// Ensure DefaultKeyer implements Keyer.
var _ Keyer = (*DefaultKeyer)(nil)
