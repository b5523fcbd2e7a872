package store

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/jmendler/stripeplan/pkg/errors"
	"github.com/jmendler/stripeplan/pkg/room"
)

// MongoConfig holds MongoDB connection settings.
type MongoConfig struct {
	URI        string
	Database   string
	Collection string
}

// setDefaults fills empty config fields.
func (c *MongoConfig) setDefaults() {
	if c.Database == "" {
		c.Database = "stripeplan"
	}
	if c.Collection == "" {
		c.Collection = "rooms"
	}
}

// MongoStore is a MongoDB-backed room store for durable deployments.
type MongoStore struct {
	client *mongo.Client
	coll   *mongo.Collection
}

// NewMongoStore connects to MongoDB and verifies the connection.
func NewMongoStore(ctx context.Context, cfg MongoConfig) (*MongoStore, error) {
	cfg.setDefaults()

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(cfg.URI))
	if err != nil {
		return nil, fmt.Errorf("connect to mongodb: %w", err)
	}
	if err := client.Ping(ctx, nil); err != nil {
		_ = client.Disconnect(ctx)
		return nil, fmt.Errorf("ping mongodb: %w", err)
	}

	return &MongoStore{
		client: client,
		coll:   client.Database(cfg.Database).Collection(cfg.Collection),
	}, nil
}

// Get retrieves a room by ID.
func (s *MongoStore) Get(ctx context.Context, id string) (*room.Room, error) {
	var r room.Room
	err := s.coll.FindOne(ctx, bson.M{"_id": id}).Decode(&r)
	if err == mongo.ErrNoDocuments {
		return nil, errors.New(errors.ErrCodeRoomNotFound, "room %q not found", id)
	}
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeStore, err, "mongo find")
	}
	return &r, nil
}

// Put stores a room, upserting on its ID.
func (s *MongoStore) Put(ctx context.Context, r *room.Room) error {
	if err := r.Validate(); err != nil {
		return err
	}
	r.Normalize()

	_, err := s.coll.ReplaceOne(ctx, bson.M{"_id": r.ID}, r, options.Replace().SetUpsert(true))
	if err != nil {
		return errors.Wrap(errors.ErrCodeStore, err, "mongo replace")
	}
	return nil
}

// List returns all stored rooms sorted by name.
func (s *MongoStore) List(ctx context.Context) ([]*room.Room, error) {
	cur, err := s.coll.Find(ctx, bson.M{})
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeStore, err, "mongo find")
	}
	defer cur.Close(ctx)

	var rooms []*room.Room
	if err := cur.All(ctx, &rooms); err != nil {
		return nil, errors.Wrap(errors.ErrCodeStore, err, "mongo decode")
	}

	sortRooms(rooms)
	return rooms, nil
}

// Delete removes a room.
func (s *MongoStore) Delete(ctx context.Context, id string) error {
	res, err := s.coll.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return errors.Wrap(errors.ErrCodeStore, err, "mongo delete")
	}
	if res.DeletedCount == 0 {
		return errors.New(errors.ErrCodeRoomNotFound, "room %q not found", id)
	}
	return nil
}

// Close disconnects from MongoDB.
func (s *MongoStore) Close() error {
	return s.client.Disconnect(context.Background())
}

var _ Store = (*MongoStore)(nil)
