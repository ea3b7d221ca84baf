package session

import (
	"context"
	"io"
	"log"
	"strconv"
	"time"

	"tienda/internal/domain"
	"github.com/redis/go-redis/v9"
)

// RedisStore keeps each cart in a redis hash keyed cart:<session id>, with a
// TTL so abandoned sessions expire on their own.
type RedisStore struct {
	client *redis.Client
	ttl    time.Duration
	logger *log.Logger
}

func NewRedis(client *redis.Client, ttl time.Duration, logger *log.Logger) *RedisStore {
	if logger == nil {
		logger = log.New(io.Discard, "", 0)
	}
	return &RedisStore{client: client, ttl: ttl, logger: logger}
}

func (s *RedisStore) key(sessionID string) string {
	return "cart:" + sessionID
}

func (s *RedisStore) Load(ctx context.Context, sessionID string) (*domain.Cart, error) {
	fields, err := s.client.HGetAll(ctx, s.key(sessionID)).Result()
	if err != nil {
		return nil, err
	}
	cart := domain.NewCart()
	for field, value := range fields {
		productID, err := strconv.ParseInt(field, 10, 64)
		if err != nil {
			s.logger.Printf("session %s: dropping cart field %q: %v", sessionID, field, err)
			continue
		}
		qty, err := strconv.Atoi(value)
		if err != nil {
			s.logger.Printf("session %s: dropping cart field %q with quantity %q: %v", sessionID, field, value, err)
			continue
		}
		cart.SetQuantity(productID, qty)
	}
	return cart, nil
}

func (s *RedisStore) Save(ctx context.Context, sessionID string, c *domain.Cart) error {
	key := s.key(sessionID)
	if c.Empty() {
		return s.client.Del(ctx, key).Err()
	}
	fields := make(map[string]interface{}, c.Len())
	for productID, qty := range c.Snapshot() {
		fields[strconv.FormatInt(productID, 10)] = strconv.Itoa(qty)
	}
	pipe := s.client.TxPipeline()
	pipe.Del(ctx, key)
	pipe.HSet(ctx, key, fields)
	pipe.Expire(ctx, key, s.ttl)
	_, err := pipe.Exec(ctx)
	return err
}

func (s *RedisStore) Clear(ctx context.Context, sessionID string) error {
	return s.client.Del(ctx, s.key(sessionID)).Err()
}
