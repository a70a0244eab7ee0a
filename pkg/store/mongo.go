package store

import (
	"context"
	"fmt"
	"sort"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/versedeck/versedeck/pkg/deck"
)

// MongoConfig configures the mongo backend.
type MongoConfig struct {
	URI      string
	Database string
}

// MongoStore is a MongoDB-backed store, used when a verse library is
// shared across machines.
type MongoStore struct {
	client    *mongo.Client
	packs     *mongo.Collection
	health    *mongo.Collection
	reminders *mongo.Collection
}

// NewMongoStore connects to MongoDB and verifies the connection.
// If cfg.Database is empty, "versedeck" is used.
func NewMongoStore(ctx context.Context, cfg MongoConfig) (*MongoStore, error) {
	client, err := mongo.Connect(ctx, options.Client().ApplyURI(cfg.URI))
	if err != nil {
		return nil, fmt.Errorf("connect to mongo: %w", err)
	}
	if err := client.Ping(ctx, nil); err != nil {
		return nil, fmt.Errorf("ping mongo: %w", err)
	}

	name := cfg.Database
	if name == "" {
		name = "versedeck"
	}
	db := client.Database(name)
	return &MongoStore{
		client:    client,
		packs:     db.Collection("packs"),
		health:    db.Collection("health"),
		reminders: db.Collection("reminders"),
	}, nil
}

func (s *MongoStore) ListPacks(ctx context.Context) ([]deck.Pack, error) {
	cur, err := s.packs.Find(ctx, bson.M{})
	if err != nil {
		return nil, fmt.Errorf("find packs: %w", err)
	}
	var packs []deck.Pack
	if err := cur.All(ctx, &packs); err != nil {
		return nil, fmt.Errorf("decode packs: %w", err)
	}

	sort.Slice(packs, func(i, j int) bool { return packs[i].CreatedAt.Before(packs[j].CreatedAt) })
	return packs, nil
}

func (s *MongoStore) GetPack(ctx context.Context, id string) (deck.Pack, error) {
	var p deck.Pack
	err := s.packs.FindOne(ctx, bson.M{"id": id}).Decode(&p)
	if err == mongo.ErrNoDocuments {
		return deck.Pack{}, fmt.Errorf("pack %s: %w", id, ErrNotFound)
	}
	if err != nil {
		return deck.Pack{}, fmt.Errorf("find pack: %w", err)
	}
	return p, nil
}

func (s *MongoStore) PutPack(ctx context.Context, p deck.Pack) error {
	opts := options.Replace().SetUpsert(true)
	if _, err := s.packs.ReplaceOne(ctx, bson.M{"id": p.ID}, p, opts); err != nil {
		return fmt.Errorf("put pack: %w", err)
	}
	return nil
}

func (s *MongoStore) DeletePack(ctx context.Context, id string) error {
	res, err := s.packs.DeleteOne(ctx, bson.M{"id": id})
	if err != nil {
		return fmt.Errorf("delete pack: %w", err)
	}
	if res.DeletedCount == 0 {
		return fmt.Errorf("pack %s: %w", id, ErrNotFound)
	}
	return nil
}

func (s *MongoStore) GetHealth(ctx context.Context, verseID string) (deck.Health, error) {
	var h deck.Health
	err := s.health.FindOne(ctx, bson.M{"verse_id": verseID}).Decode(&h)
	if err == mongo.ErrNoDocuments {
		return deck.Health{VerseID: verseID}, nil
	}
	if err != nil {
		return deck.Health{}, fmt.Errorf("find health: %w", err)
	}
	return h, nil
}

func (s *MongoStore) PutHealth(ctx context.Context, h deck.Health) error {
	opts := options.Replace().SetUpsert(true)
	if _, err := s.health.ReplaceOne(ctx, bson.M{"verse_id": h.VerseID}, h, opts); err != nil {
		return fmt.Errorf("put health: %w", err)
	}
	return nil
}

func (s *MongoStore) ListHealth(ctx context.Context) (map[string]deck.Health, error) {
	cur, err := s.health.Find(ctx, bson.M{})
	if err != nil {
		return nil, fmt.Errorf("find health: %w", err)
	}
	var records []deck.Health
	if err := cur.All(ctx, &records); err != nil {
		return nil, fmt.Errorf("decode health: %w", err)
	}

	out := make(map[string]deck.Health, len(records))
	for _, h := range records {
		out[h.VerseID] = h
	}
	return out, nil
}

func (s *MongoStore) ListReminders(ctx context.Context) ([]deck.Reminder, error) {
	cur, err := s.reminders.Find(ctx, bson.M{})
	if err != nil {
		return nil, fmt.Errorf("find reminders: %w", err)
	}
	var reminders []deck.Reminder
	if err := cur.All(ctx, &reminders); err != nil {
		return nil, fmt.Errorf("decode reminders: %w", err)
	}

	sort.Slice(reminders, func(i, j int) bool { return reminders[i].CreatedAt.Before(reminders[j].CreatedAt) })
	return reminders, nil
}

func (s *MongoStore) PutReminder(ctx context.Context, r deck.Reminder) error {
	opts := options.Replace().SetUpsert(true)
	if _, err := s.reminders.ReplaceOne(ctx, bson.M{"id": r.ID}, r, opts); err != nil {
		return fmt.Errorf("put reminder: %w", err)
	}
	return nil
}

func (s *MongoStore) DeleteReminder(ctx context.Context, id string) error {
	if _, err := s.reminders.DeleteOne(ctx, bson.M{"id": id}); err != nil {
		return fmt.Errorf("delete reminder: %w", err)
	}
	return nil
}

// Close disconnects from MongoDB.
func (s *MongoStore) Close() error {
	return s.client.Disconnect(context.Background())
}

// Ensure MongoStore implements Store.
var _ Store = (*MongoStore)(nil)
