package cache

import (
	"context"
	"errors"
	"time"

	"github.com/IPampurin/LinkShortener/pkg/db"
	"github.com/wb-go/wbf/redis"
	"github.com/wb-go/wbf/retry"
)

// cacheKey формирует ключ кэша для короткого кода
func cacheKey(shortCode string) string {
	return "url:" + shortCode
}

// LoadDataToCache загружает данные за последнее время в кэш при старте
// (просроченные записи в прогрев не попадают - кэш хранит только живые ссылки)
func (c *Cache) LoadDataToCache(ctx context.Context, lastShortURLs []*db.ShortURL) error {

	strategy := retry.Strategy{Attempts: 3, Delay: 100 * time.Millisecond, Backoff: 2}

	now := time.Now()

	for _, s := range lastShortURLs {

		if s.ExpiresAt != nil && !s.ExpiresAt.After(now) {
			continue
		}

		err := c.redis.SetWithExpirationAndRetry(ctx, strategy, cacheKey(s.ShortCode), s.OriginalURL, c.ttl)
		if err != nil {
			c.log.Warn("ошибка добавления ссылки при прогреве кэша", "short_code", s.ShortCode, "error", err)
			continue
		}
	}

	return nil
}

// GetURL возвращает оригинальный URL из кэша по короткому коду
// (любая ошибка транспорта считается промахом)
func (c *Cache) GetURL(ctx context.Context, shortCode string) (string, bool) {

	data, err := c.redis.Get(ctx, cacheKey(shortCode))
	if err != nil {
		if !errors.Is(err, redis.NoMatches) {
			c.log.Warn("ошибка получения из кэша", "short_code", shortCode, "error", err)
		}
		return "", false
	}

	return data, true
}

// SetURL сохраняет пару код - оригинальный URL в кэш с внутренним TTL
// (ошибка записи гасится - кэш вспомогательный и не должен ронять основную операцию)
func (c *Cache) SetURL(ctx context.Context, shortCode, originalURL string) {

	err := c.redis.SetWithExpiration(ctx, cacheKey(shortCode), originalURL, c.ttl)
	if err != nil {
		c.log.Warn("ошибка сохранения в кэш", "short_code", shortCode, "error", err)
	}
}

// RemoveURL удаляет пару из кэша
func (c *Cache) RemoveURL(ctx context.Context, shortCode string) {

	err := c.redis.Del(ctx, cacheKey(shortCode))
	if err != nil {
		c.log.Warn("ошибка удаления из кэша", "short_code", shortCode, "error", err)
	}
}

// ExistsURL проверяет наличие кода в кэше
// (реализована через Get - при ошибке транспорта считаем, что ключа нет)
func (c *Cache) ExistsURL(ctx context.Context, shortCode string) bool {

	_, ok := c.GetURL(ctx, shortCode)

	return ok
}
