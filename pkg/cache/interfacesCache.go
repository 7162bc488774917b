package cache

import (
	"context"

	"github.com/IPampurin/LinkShortener/pkg/db"
)

// CacheMethods - контракт кэша для горячего пути резолва.
// Кэш носит строго вспомогательный характер: любая ошибка транспорта
// гасится внутри и превращается в промах (Get/Exists) или no-op (Set/Remove),
// наружу ошибки не отдаются. Решение о сроке действия ссылки кэшу не доверяется.
type CacheMethods interface {
	// GetURL возвращает оригинальный URL по короткому коду (false - промах)
	GetURL(ctx context.Context, shortCode string) (string, bool)

	// SetURL сохраняет пару код - оригинальный URL с предустановленным TTL
	SetURL(ctx context.Context, shortCode, originalURL string)

	// RemoveURL удаляет пару из кэша
	RemoveURL(ctx context.Context, shortCode string)

	// ExistsURL проверяет наличие кода в кэше
	ExistsURL(ctx context.Context, shortCode string) bool

	// LoadDataToCache выполняет прогрев кэша, сохраняя переданный список записей
	LoadDataToCache(ctx context.Context, lastShortURLs []*db.ShortURL) error
}
