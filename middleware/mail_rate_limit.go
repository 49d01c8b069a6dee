package middleware

import (
	"context"
	"time"

	"github.com/go-redis/redis/v8"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/limiter"

	"github.com/EasonYD88/SURF-application-website/config"
	"github.com/EasonYD88/SURF-application-website/utils"
)

// MailRateLimiter caps how often the mail-send endpoint can fire, so a
// misbehaving client tab can't hammer the SMTP account.
func MailRateLimiter() fiber.Handler {
	return limiter.New(limiter.Config{
		Max:        config.AppConfig.RateLimitMailSend,
		Expiration: 1 * time.Minute,
		KeyGenerator: func(c *fiber.Ctx) string {
			return utils.GenerateRateLimitKey(c.IP(), c.Path())
		},
		LimitReached: func(c *fiber.Ctx) error {
			utils.LogEvent("rate_limit_hit", map[string]interface{}{
				"endpoint": c.Path(),
				"ip":       c.IP(),
			})
			return c.Status(fiber.StatusTooManyRequests).JSON(fiber.Map{
				"success":     false,
				"error":       "Too many mail requests. Please wait before sending again.",
				"retry_after": "1 minute",
			})
		},
		Storage: createRateLimitStorage(),
	})
}

// createRateLimitStorage returns a Redis-backed store when Redis is
// enabled; nil falls back to Fiber's in-memory limiter store.
func createRateLimitStorage() fiber.Storage {
	if config.AppConfig.Redis.Enabled {
		return NewRedisLimiterStorage(config.AppConfig.Redis)
	}
	return nil
}

// RedisLimiterStorage implements fiber.Storage for Redis
type RedisLimiterStorage struct {
	client *redis.Client
}

func NewRedisLimiterStorage(cfg config.RedisConfig) *RedisLimiterStorage {
	return &RedisLimiterStorage{
		client: redis.NewClient(&redis.Options{
			Addr:     cfg.Address,
			Password: cfg.Password,
			DB:       cfg.DB,
		}),
	}
}

func (s *RedisLimiterStorage) Get(key string) ([]byte, error) {
	val, err := s.client.Get(context.Background(), key).Bytes()
	if err == redis.Nil {
		return nil, nil
	}
	return val, err
}

func (s *RedisLimiterStorage) Set(key string, val []byte, exp time.Duration) error {
	return s.client.Set(context.Background(), key, val, exp).Err()
}

func (s *RedisLimiterStorage) Delete(key string) error {
	return s.client.Del(context.Background(), key).Err()
}

func (s *RedisLimiterStorage) Reset() error {
	return s.client.FlushDB(context.Background()).Err()
}

func (s *RedisLimiterStorage) Close() error {
	return s.client.Close()
}
