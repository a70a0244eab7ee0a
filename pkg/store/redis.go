package store

import (
	"context"
	"encoding/json"
	"fmt"
	"sort"
	"strings"

	"github.com/redis/go-redis/v9"

	"github.com/versedeck/versedeck/pkg/deck"
)

// Key prefixes for the redis backend. Records are stored as JSON values
// under one key per record.
const (
	redisPackPrefix     = "versedeck:pack:"
	redisHealthPrefix   = "versedeck:health:"
	redisReminderPrefix = "versedeck:reminder:"
)

// RedisConfig configures the redis backend.
type RedisConfig struct {
	Addr     string
	Password string
	DB       int
}

// RedisStore is a redis-backed store.
type RedisStore struct {
	client *redis.Client
}

// NewRedisStore connects to redis and verifies the connection.
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

func (s *RedisStore) ListPacks(ctx context.Context) ([]deck.Pack, error) {
	var packs []deck.Pack
	iter := s.client.Scan(ctx, 0, redisPackPrefix+"*", 0).Iterator()
	for iter.Next(ctx) {
		data, err := s.client.Get(ctx, iter.Val()).Bytes()
		if err == redis.Nil {
			continue // deleted between scan and get
		}
		if err != nil {
			return nil, fmt.Errorf("get %s: %w", iter.Val(), err)
		}
		var p deck.Pack
		if err := json.Unmarshal(data, &p); err != nil {
			return nil, fmt.Errorf("parse pack %s: %w", iter.Val(), err)
		}
		packs = append(packs, p)
	}
	if err := iter.Err(); err != nil {
		return nil, fmt.Errorf("scan packs: %w", err)
	}

	sort.Slice(packs, func(i, j int) bool { return packs[i].CreatedAt.Before(packs[j].CreatedAt) })
	return packs, nil
}

func (s *RedisStore) GetPack(ctx context.Context, id string) (deck.Pack, error) {
	data, err := s.client.Get(ctx, redisPackPrefix+id).Bytes()
	if err == redis.Nil {
		return deck.Pack{}, fmt.Errorf("pack %s: %w", id, ErrNotFound)
	}
	if err != nil {
		return deck.Pack{}, fmt.Errorf("get pack: %w", err)
	}

	var p deck.Pack
	if err := json.Unmarshal(data, &p); err != nil {
		return deck.Pack{}, fmt.Errorf("parse pack: %w", err)
	}
	return p, nil
}

func (s *RedisStore) PutPack(ctx context.Context, p deck.Pack) error {
	data, err := json.Marshal(p)
	if err != nil {
		return fmt.Errorf("marshal pack: %w", err)
	}
	return s.client.Set(ctx, redisPackPrefix+p.ID, data, 0).Err()
}

func (s *RedisStore) DeletePack(ctx context.Context, id string) error {
	n, err := s.client.Del(ctx, redisPackPrefix+id).Result()
	if err != nil {
		return fmt.Errorf("delete pack: %w", err)
	}
	if n == 0 {
		return fmt.Errorf("pack %s: %w", id, ErrNotFound)
	}
	return nil
}

func (s *RedisStore) GetHealth(ctx context.Context, verseID string) (deck.Health, error) {
	data, err := s.client.Get(ctx, redisHealthPrefix+verseID).Bytes()
	if err == redis.Nil {
		return deck.Health{VerseID: verseID}, nil
	}
	if err != nil {
		return deck.Health{}, fmt.Errorf("get health: %w", err)
	}

	var h deck.Health
	if err := json.Unmarshal(data, &h); err != nil {
		return deck.Health{}, fmt.Errorf("parse health: %w", err)
	}
	return h, nil
}

func (s *RedisStore) PutHealth(ctx context.Context, h deck.Health) error {
	data, err := json.Marshal(h)
	if err != nil {
		return fmt.Errorf("marshal health: %w", err)
	}
	return s.client.Set(ctx, redisHealthPrefix+h.VerseID, data, 0).Err()
}

func (s *RedisStore) ListHealth(ctx context.Context) (map[string]deck.Health, error) {
	out := make(map[string]deck.Health)
	iter := s.client.Scan(ctx, 0, redisHealthPrefix+"*", 0).Iterator()
	for iter.Next(ctx) {
		data, err := s.client.Get(ctx, iter.Val()).Bytes()
		if err == redis.Nil {
			continue
		}
		if err != nil {
			return nil, fmt.Errorf("get %s: %w", iter.Val(), err)
		}
		var h deck.Health
		if err := json.Unmarshal(data, &h); err != nil {
			return nil, fmt.Errorf("parse health %s: %w", iter.Val(), err)
		}
		out[strings.TrimPrefix(iter.Val(), redisHealthPrefix)] = h
	}
	if err := iter.Err(); err != nil {
		return nil, fmt.Errorf("scan health: %w", err)
	}
	return out, nil
}

func (s *RedisStore) ListReminders(ctx context.Context) ([]deck.Reminder, error) {
	var reminders []deck.Reminder
	iter := s.client.Scan(ctx, 0, redisReminderPrefix+"*", 0).Iterator()
	for iter.Next(ctx) {
		data, err := s.client.Get(ctx, iter.Val()).Bytes()
		if err == redis.Nil {
			continue
		}
		if err != nil {
			return nil, fmt.Errorf("get %s: %w", iter.Val(), err)
		}
		var r deck.Reminder
		if err := json.Unmarshal(data, &r); err != nil {
			return nil, fmt.Errorf("parse reminder %s: %w", iter.Val(), err)
		}
		reminders = append(reminders, r)
	}
	if err := iter.Err(); err != nil {
		return nil, fmt.Errorf("scan reminders: %w", err)
	}

	sort.Slice(reminders, func(i, j int) bool { return reminders[i].CreatedAt.Before(reminders[j].CreatedAt) })
	return reminders, nil
}

func (s *RedisStore) PutReminder(ctx context.Context, r deck.Reminder) error {
	data, err := json.Marshal(r)
	if err != nil {
		return fmt.Errorf("marshal reminder: %w", err)
	}
	return s.client.Set(ctx, redisReminderPrefix+r.ID, data, 0).Err()
}

func (s *RedisStore) DeleteReminder(ctx context.Context, id string) error {
	return s.client.Del(ctx, redisReminderPrefix+id).Err()
}

// Close closes the redis connection.
func (s *RedisStore) Close() error {
	return s.client.Close()
}

// Ensure RedisStore implements Store.
var _ Store = (*RedisStore)(nil)
