package db

import (
	"context"
	"time"
)

// методы по таблице shorturls
type ShortURLMethods interface {
	// CreateShortURL создаёт новую запись в таблице shorturls
	CreateShortURL(ctx context.Context, originalURL, shortCode string, expiresAt *time.Time) (*ShortURL, error)

	// GetByShortCode возвращает запись по её короткому коду (nil, nil - если записи нет)
	GetByShortCode(ctx context.Context, shortCode string) (*ShortURL, error)

	// ExistsByShortCode проверяет, занят ли короткий код
	ExistsByShortCode(ctx context.Context, shortCode string) (bool, error)

	// IncrementAccess атомарно увеличивает счётчик переходов и обновляет момент последнего перехода
	IncrementAccess(ctx context.Context, shortCode string, accessedAt time.Time) error

	// GetLastShortURLs возвращает последние 20 созданных записей
	GetLastShortURLs(ctx context.Context) ([]*ShortURL, error)

	// GetShortURLsOfPeriod возвращает записи, созданные за указанный период времени
	GetShortURLsOfPeriod(ctx context.Context, period time.Duration) ([]*ShortURL, error)
}

// методы по таблице clicks
type ClickMethods interface {
	// SaveClick сохраняет информацию о переходе по ссылке
	SaveClick(ctx context.Context, click *Click) error

	// CountClicks возвращает общее количество переходов по коду за всё время
	CountClicks(ctx context.Context, shortCode string) (int, error)

	// CountClicksByDate возвращает количество переходов, сгруппированных по календарным датам (UTC)
	// в диапазоне [from, to), по возрастанию даты; даты без переходов не включаются
	CountClicksByDate(ctx context.Context, shortCode string, from, to time.Time) ([]DateCount, error)

	// CountClicksByBrowser возвращает количество переходов по семействам браузеров за всё время
	// (строки с нераспознанным браузером не учитываются)
	CountClicksByBrowser(ctx context.Context, shortCode string) ([]CategoryCount, error)

	// CountClicksByDevice возвращает количество переходов по семействам устройств за всё время
	// (строки с нераспознанным устройством не учитываются)
	CountClicksByDevice(ctx context.Context, shortCode string) ([]CategoryCount, error)
}
