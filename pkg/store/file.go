package store

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"sync"

	"github.com/jmendler/stripeplan/pkg/errors"
	"github.com/jmendler/stripeplan/pkg/room"
)

// FileStore is a file-based room store for CLI applications.
// Rooms are stored as JSON files in a config directory.
type FileStore struct {
	mu      sync.RWMutex
	baseDir string
}

// NewFileStore creates a new file-based room store.
// If baseDir is empty, defaults to ~/.config/stripeplan/rooms/
func NewFileStore(baseDir string) (*FileStore, error) {
	if baseDir == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("get home dir: %w", err)
		}
		baseDir = filepath.Join(home, ".config", "stripeplan", "rooms")
	}
	if err := os.MkdirAll(baseDir, 0700); err != nil {
		return nil, fmt.Errorf("create room dir: %w", err)
	}
	return &FileStore{baseDir: baseDir}, nil
}

func (s *FileStore) roomPath(id string) string {
	return filepath.Join(s.baseDir, id+".json")
}

// Get retrieves a room by ID.
func (s *FileStore) Get(ctx context.Context, id string) (*room.Room, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	data, err := os.ReadFile(s.roomPath(id))
	if err != nil {
		if os.IsNotExist(err) {
			return nil, errors.New(errors.ErrCodeRoomNotFound, "room %q not found", id)
		}
		return nil, errors.Wrap(errors.ErrCodeStore, err, "read room file")
	}

	r, err := room.UnmarshalRoom(data)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeStore, err, "parse room %q", id)
	}
	return r, nil
}

// Put stores a room.
func (s *FileStore) Put(ctx context.Context, r *room.Room) error {
	if err := r.Validate(); err != nil {
		return err
	}
	r.Normalize()

	s.mu.Lock()
	defer s.mu.Unlock()

	data, err := room.MarshalRoom(r)
	if err != nil {
		return errors.Wrap(errors.ErrCodeStore, err, "marshal room")
	}
	if err := os.WriteFile(s.roomPath(r.ID), data, 0600); err != nil {
		return errors.Wrap(errors.ErrCodeStore, err, "write room file")
	}
	return nil
}

// List returns all stored rooms sorted by name.
func (s *FileStore) List(ctx context.Context) ([]*room.Room, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	entries, err := os.ReadDir(s.baseDir)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeStore, err, "read room dir")
	}

	rooms := make([]*room.Room, 0, len(entries))
	for _, entry := range entries {
		if entry.IsDir() || filepath.Ext(entry.Name()) != ".json" {
			continue
		}
		data, err := os.ReadFile(filepath.Join(s.baseDir, entry.Name()))
		if err != nil {
			continue
		}
		r, err := room.UnmarshalRoom(data)
		if err != nil {
			// Skip unreadable entries instead of failing the listing.
			continue
		}
		rooms = append(rooms, r)
	}

	sortRooms(rooms)
	return rooms, nil
}

// Delete removes a room.
func (s *FileStore) Delete(ctx context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	err := os.Remove(s.roomPath(id))
	if os.IsNotExist(err) {
		return errors.New(errors.ErrCodeRoomNotFound, "room %q not found", id)
	}
	if err != nil {
		return errors.Wrap(errors.ErrCodeStore, err, "remove room file")
	}
	return nil
}

// Close does nothing for file stores.
func (s *FileStore) Close() error { return nil }

// Path returns the base directory for room files.
func (s *FileStore) Path() string {
	return s.baseDir
}

// sortRooms orders rooms by name, falling back to ID for stable output.
func sortRooms(rooms []*room.Room) {
	sort.Slice(rooms, func(i, j int) bool {
		if rooms[i].Name != rooms[j].Name {
			return strings.ToLower(rooms[i].Name) < strings.ToLower(rooms[j].Name)
		}
		return rooms[i].ID < rooms[j].ID
	})
}

var _ Store = (*FileStore)(nil)
