package service

import (
	"context"
)

type ServiceMethods interface {
	// CreateShortLink создаёт новую короткую ссылку
	// (customCode - необязательный пользовательский код, expiryDays - необязательный срок действия в днях)
	CreateShortLink(ctx context.Context, originalURL, customCode string, expiryDays *int) (*ResponseShortURL, error)

	// ResolveShortLink возвращает оригинальный URL по коду для редиректа
	// и ставит в очередь фоновые эффекты (инкремент счётчика, запись о переходе);
	// параметры трассировки (ip/userAgent/referer) необязательны и могут быть пустыми
	ResolveShortLink(ctx context.Context, shortCode, ipAddress, userAgent, referer string) (string, error)

	// ShortLinkStats возвращает статистику по ссылке (без фильтра по сроку действия)
	ShortLinkStats(ctx context.Context, shortCode string) (*ResponseStats, error)

	// ShortLinkAnalytics возвращает агрегированную аналитику переходов по ссылке
	// (windowDays - окно в днях для группировки по датам)
	ShortLinkAnalytics(ctx context.Context, shortCode string, windowDays int) (*ResponseAnalytics, error)

	// LastLinks возвращает список последних сокращённых ссылок
	LastLinks(ctx context.Context) ([]*ResponseShortURL, error)

	// BuildShortURL собирает полный короткий URL для кода (для ответов и QR-кода)
	BuildShortURL(shortCode string) string
}
