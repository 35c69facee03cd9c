// Package redis は session.Store の Redis 実装です。
package redis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	goredis "github.com/redis/go-redis/v9"

	"github.com/ogurasousui/sistemadp/internal/core/session"
)

const keyPrefix = "sistemadp:selection:"

// Store は Selection を JSON として TTL 付きで保存します。
type Store struct {
	client *goredis.Client
	ttl    time.Duration
}

// NewStore は Store を生成します。ttl が 0 以下の場合は期限なしです。
func NewStore(client *goredis.Client, ttl time.Duration) *Store {
	if ttl < 0 {
		ttl = 0
	}
	return &Store{client: client, ttl: ttl}
}

func (s *Store) Load(ctx context.Context, actor string) (session.Selection, error) {
	key, err := session.Key(actor)
	if err != nil {
		return session.Selection{}, err
	}

	payload, err := s.client.Get(ctx, keyPrefix+key).Bytes()
	if errors.Is(err, goredis.Nil) {
		return session.Selection{}, nil
	}
	if err != nil {
		return session.Selection{}, fmt.Errorf("session/redis: get: %w", err)
	}

	var sel session.Selection
	if err := json.Unmarshal(payload, &sel); err != nil {
		return session.Selection{}, fmt.Errorf("session/redis: decode: %w", err)
	}
	return sel, nil
}

func (s *Store) Save(ctx context.Context, actor string, sel session.Selection) error {
	key, err := session.Key(actor)
	if err != nil {
		return err
	}

	payload, err := json.Marshal(sel)
	if err != nil {
		return fmt.Errorf("session/redis: encode: %w", err)
	}
	if err := s.client.Set(ctx, keyPrefix+key, payload, s.ttl).Err(); err != nil {
		return fmt.Errorf("session/redis: set: %w", err)
	}
	return nil
}
