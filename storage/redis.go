package storage

import (
	"context"

	"github.com/go-redis/redis/v8"
)

// RedisStorage keeps the document under one Redis key, for running the
// companion process against an existing Redis instead of local disk.
type RedisStorage struct {
	client *redis.Client
	key    string
}

func NewRedisStorage(addr, password string, db int, key string) *RedisStorage {
	return &RedisStorage{
		client: redis.NewClient(&redis.Options{
			Addr:     addr,
			Password: password,
			DB:       db,
		}),
		key: key,
	}
}

func (rs *RedisStorage) Get() ([]byte, error) {
	data, err := rs.client.Get(context.Background(), rs.key).Bytes()
	if err == redis.Nil {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return data, nil
}

func (rs *RedisStorage) Set(data []byte) error {
	// No expiration: the document lives until overwritten.
	return rs.client.Set(context.Background(), rs.key, data, 0).Err()
}

func (rs *RedisStorage) Close() error {
	return rs.client.Close()
}
