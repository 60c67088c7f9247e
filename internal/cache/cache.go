package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/qbmille/trivia-api/internal/config"
	"github.com/qbmille/trivia-api/internal/domain"
)

const (
	stagesKeyPrefix = "catalog:stages:"
	jeuKeyPrefix    = "catalog:jeu:"
)

// Cache is a read-through JSON cache for hot catalog reads. A nil *Cache
// is valid and turns every operation into a no-op, so callers never need
// to branch on whether Redis is configured.
type Cache struct {
	client *redis.Client
	ttl    time.Duration
}

func New(conf *config.RedisConfig) *Cache {
	if conf == nil || conf.Addr == "" {
		return nil
	}

	client := redis.NewClient(&redis.Options{
		Addr:     conf.Addr,
		Password: conf.Password,
		DB:       conf.DB,
	})

	ttl := time.Duration(conf.TTLSeconds) * time.Second
	if ttl <= 0 {
		ttl = 5 * time.Minute
	}

	return &Cache{
		client: client,
		ttl:    ttl,
	}
}

// NewWithClient lets tests back the cache with miniredis.
func NewWithClient(client *redis.Client, ttl time.Duration) *Cache {
	return &Cache{
		client: client,
		ttl:    ttl,
	}
}

func (c *Cache) GetStages(ctx context.Context, langue string) ([]domain.Stage, bool) {
	if c == nil {
		return nil, false
	}

	data, err := c.client.Get(ctx, stagesKeyPrefix+langue).Bytes()
	if err != nil {
		return nil, false
	}

	var stages []domain.Stage
	if err = json.Unmarshal(data, &stages); err != nil {
		return nil, false
	}

	return stages, true
}

func (c *Cache) SetStages(ctx context.Context, langue string, stages []domain.Stage) error {
	if c == nil {
		return nil
	}

	data, err := json.Marshal(stages)
	if err != nil {
		return fmt.Errorf("json.Marshal -> %w", err)
	}

	return c.client.Set(ctx, stagesKeyPrefix+langue, data, c.ttl).Err()
}

func (c *Cache) GetJeu(ctx context.Context, id uint) (domain.Jeu, bool) {
	if c == nil {
		return domain.Jeu{}, false
	}

	data, err := c.client.Get(ctx, fmt.Sprintf("%v%v", jeuKeyPrefix, id)).Bytes()
	if err != nil {
		return domain.Jeu{}, false
	}

	var jeu domain.Jeu
	if err = json.Unmarshal(data, &jeu); err != nil {
		return domain.Jeu{}, false
	}

	return jeu, true
}

func (c *Cache) SetJeu(ctx context.Context, jeu domain.Jeu) error {
	if c == nil {
		return nil
	}

	data, err := json.Marshal(jeu)
	if err != nil {
		return fmt.Errorf("json.Marshal -> %w", err)
	}

	return c.client.Set(ctx, fmt.Sprintf("%v%v", jeuKeyPrefix, jeu.ID), data, c.ttl).Err()
}

// InvalidateCatalog drops every cached catalog key. Called after any
// catalog write; coarse on purpose, writes are rare.
func (c *Cache) InvalidateCatalog(ctx context.Context) error {
	if c == nil {
		return nil
	}

	var cursor uint64
	for {
		keys, next, err := c.client.Scan(ctx, cursor, "catalog:*", 100).Result()
		if err != nil {
			if errors.Is(err, redis.ErrClosed) {
				return nil
			}

			return fmt.Errorf("c.client.Scan -> %w", err)
		}

		if len(keys) > 0 {
			if err = c.client.Del(ctx, keys...).Err(); err != nil {
				return fmt.Errorf("c.client.Del -> %w", err)
			}
		}

		cursor = next
		if cursor == 0 {
			return nil
		}
	}
}
