package store

import (
	"context"
	"sync"

	"github.com/jmendler/stripeplan/pkg/errors"
	"github.com/jmendler/stripeplan/pkg/room"
)

// MemoryStore is an in-memory room store for development and testing.
// Rooms are copied on the way in and out so callers cannot mutate stored
// state through shared pointers.
type MemoryStore struct {
	mu    sync.RWMutex
	rooms map[string]room.Room
}

// NewMemoryStore creates an empty in-memory store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{rooms: make(map[string]room.Room)}
}

// Get retrieves a room by ID.
func (s *MemoryStore) Get(ctx context.Context, id string) (*room.Room, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	r, ok := s.rooms[id]
	if !ok {
		return nil, errors.New(errors.ErrCodeRoomNotFound, "room %q not found", id)
	}
	out := r
	return &out, nil
}

// Put stores a room.
func (s *MemoryStore) Put(ctx context.Context, r *room.Room) error {
	if err := r.Validate(); err != nil {
		return err
	}
	r.Normalize()

	s.mu.Lock()
	defer s.mu.Unlock()
	s.rooms[r.ID] = *r
	return nil
}

// List returns all stored rooms sorted by name.
func (s *MemoryStore) List(ctx context.Context) ([]*room.Room, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	rooms := make([]*room.Room, 0, len(s.rooms))
	for _, r := range s.rooms {
		out := r
		rooms = append(rooms, &out)
	}
	sortRooms(rooms)
	return rooms, nil
}

// Delete removes a room.
func (s *MemoryStore) Delete(ctx context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.rooms[id]; !ok {
		return errors.New(errors.ErrCodeRoomNotFound, "room %q not found", id)
	}
	delete(s.rooms, id)
	return nil
}

// Close does nothing for memory stores.
func (s *MemoryStore) Close() error { return nil }

var _ Store = (*MemoryStore)(nil)
