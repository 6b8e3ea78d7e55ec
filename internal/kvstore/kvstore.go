package kvstore

import (
	"context"

	"github.com/go-redis/redis/v8"
)

// Store é a fronteira de armazenamento chave-valor do aplicativo, o único
// estado que sobrevive a um restart.
type Store interface {
	// Get devolve o valor e se a chave existe. Chave ausente não é erro.
	Get(ctx context.Context, key string) (string, bool, error)
	Set(ctx context.Context, key, value string) error
}

// ===============================
// Redis
// ===============================

type RedisStore struct {
	client *redis.Client
}

func NewRedis(addr, password string) *RedisStore {
	return &RedisStore{
		client: redis.NewClient(&redis.Options{
			Addr:     addr,
			Password: password,
		}),
	}
}

// NewRedisWithClient permite injetar um cliente já configurado (testes).
func NewRedisWithClient(client *redis.Client) *RedisStore {
	return &RedisStore{client: client}
}

func (s *RedisStore) Get(ctx context.Context, key string) (string, bool, error) {
	value, err := s.client.Get(ctx, key).Result()
	if err == redis.Nil {
		return "", false, nil
	}
	if err != nil {
		return "", false, err
	}
	return value, true, nil
}

func (s *RedisStore) Set(ctx context.Context, key, value string) error {
	return s.client.Set(ctx, key, value, 0).Err()
}
