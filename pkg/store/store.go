// Package store provides persistence for saved rooms.
//
// This package defines the Store interface for room storage, with
// implementations for different backends:
//   - memory: In-memory storage for development/testing
//   - file: File-based storage for CLI applications
//   - redis: Redis-backed storage for multi-instance deployments
//   - mongo: MongoDB-backed storage for durable deployments
//
// # Usage
//
// Create a store:
//
//	// Development
//	st := store.NewMemoryStore()
//
//	// CLI
//	st, err := store.NewFileStore("")  // Uses ~/.config/stripeplan/rooms/
//
//	// Production
//	st, err := store.NewRedisStore(ctx, store.RedisConfig{Addr: "localhost:6379"})
//
// Manage rooms:
//
//	r := room.New("living room")
//	if err := st.Put(ctx, r); err != nil {
//	    return err
//	}
//	saved, err := st.Get(ctx, r.ID)
package store

import (
	"context"

	"github.com/jmendler/stripeplan/pkg/room"
)

// Store is the interface for room storage backends.
// All implementations return a ROOM_NOT_FOUND coded error from Get and
// Delete when the room does not exist.
type Store interface {
	// Get retrieves a room by ID.
	Get(ctx context.Context, id string) (*room.Room, error)

	// Put stores a room, normalizing it first. Existing rooms with the
	// same ID are replaced.
	Put(ctx context.Context, r *room.Room) error

	// List returns all stored rooms sorted by name.
	List(ctx context.Context) ([]*room.Room, error)

	// Delete removes a room.
	Delete(ctx context.Context, id string) error

	// Close releases any resources held by the store.
	Close() error
}
