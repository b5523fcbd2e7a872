package store

import (
	"context"
	"fmt"

	"github.com/redis/go-redis/v9"

	"github.com/jmendler/stripeplan/pkg/errors"
	"github.com/jmendler/stripeplan/pkg/room"
)

// redisKeyPrefix namespaces room keys so the store can share a database
// with the artifact cache.
const redisKeyPrefix = "stripeplan:room:"

// RedisConfig holds Redis connection settings.
type RedisConfig struct {
	Addr     string
	Password string
	DB       int
}

// RedisStore is a Redis-backed room store for multi-instance deployments.
type RedisStore struct {
	client *redis.Client
}

// NewRedisStore connects to Redis and verifies the connection.
func NewRedisStore(ctx context.Context, cfg RedisConfig) (*RedisStore, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Addr,
		Password: cfg.Password,
		DB:       cfg.DB,
	})
	if err := client.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("connect to redis at %s: %w", cfg.Addr, err)
	}
	return &RedisStore{client: client}, nil
}

func redisKey(id string) string { return redisKeyPrefix + id }

// Get retrieves a room by ID.
func (s *RedisStore) Get(ctx context.Context, id string) (*room.Room, error) {
	data, err := s.client.Get(ctx, redisKey(id)).Bytes()
	if err == redis.Nil {
		return nil, errors.New(errors.ErrCodeRoomNotFound, "room %q not found", id)
	}
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeStore, err, "redis get")
	}

	r, err := room.UnmarshalRoom(data)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeStore, err, "parse room %q", id)
	}
	return r, nil
}

// Put stores a room. Rooms persist without a TTL; they are user documents,
// not cache entries.
func (s *RedisStore) Put(ctx context.Context, r *room.Room) error {
	if err := r.Validate(); err != nil {
		return err
	}
	r.Normalize()

	data, err := room.MarshalRoom(r)
	if err != nil {
		return errors.Wrap(errors.ErrCodeStore, err, "marshal room")
	}
	if err := s.client.Set(ctx, redisKey(r.ID), data, 0).Err(); err != nil {
		return errors.Wrap(errors.ErrCodeStore, err, "redis set")
	}
	return nil
}

// List returns all stored rooms sorted by name.
func (s *RedisStore) List(ctx context.Context) ([]*room.Room, error) {
	var rooms []*room.Room

	iter := s.client.Scan(ctx, 0, redisKeyPrefix+"*", 100).Iterator()
	for iter.Next(ctx) {
		data, err := s.client.Get(ctx, iter.Val()).Bytes()
		if err != nil {
			continue
		}
		r, err := room.UnmarshalRoom(data)
		if err != nil {
			continue
		}
		rooms = append(rooms, r)
	}
	if err := iter.Err(); err != nil {
		return nil, errors.Wrap(errors.ErrCodeStore, err, "redis scan")
	}

	sortRooms(rooms)
	return rooms, nil
}

// Delete removes a room.
func (s *RedisStore) Delete(ctx context.Context, id string) error {
	n, err := s.client.Del(ctx, redisKey(id)).Result()
	if err != nil {
		return errors.Wrap(errors.ErrCodeStore, err, "redis del")
	}
	if n == 0 {
		return errors.New(errors.ErrCodeRoomNotFound, "room %q not found", id)
	}
	return nil
}

// Close closes the Redis connection.
func (s *RedisStore) Close() error {
	return s.client.Close()
}

var _ Store = (*RedisStore)(nil)
