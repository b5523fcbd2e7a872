package store

import (
	"context"
	"time"

	"github.com/jmendler/stripeplan/pkg/observability"
	"github.com/jmendler/stripeplan/pkg/room"
)

// Instrument wraps st so every operation is reported through the
// observability store hooks. backend names the implementation ("file",
// "memory", "redis", "mongo") for the hook consumer.
func Instrument(st Store, backend string) Store {
	return &instrumented{inner: st, backend: backend}
}

type instrumented struct {
	inner   Store
	backend string
}

func (s *instrumented) Get(ctx context.Context, id string) (*room.Room, error) {
	start := time.Now()
	r, err := s.inner.Get(ctx, id)
	observability.Store().OnStoreOp(ctx, s.backend, "get", time.Since(start), err)
	return r, err
}

func (s *instrumented) Put(ctx context.Context, r *room.Room) error {
	start := time.Now()
	err := s.inner.Put(ctx, r)
	observability.Store().OnStoreOp(ctx, s.backend, "put", time.Since(start), err)
	return err
}

func (s *instrumented) List(ctx context.Context) ([]*room.Room, error) {
	start := time.Now()
	rooms, err := s.inner.List(ctx)
	observability.Store().OnStoreOp(ctx, s.backend, "list", time.Since(start), err)
	return rooms, err
}

func (s *instrumented) Delete(ctx context.Context, id string) error {
	start := time.Now()
	err := s.inner.Delete(ctx, id)
	observability.Store().OnStoreOp(ctx, s.backend, "delete", time.Since(start), err)
	return err
}

func (s *instrumented) Close() error {
	return s.inner.Close()
}
