package service

import (
	"context"
	"sort"
	"time"

	"github.com/IPampurin/LinkShortener/pkg/db"
)

const (
	// defaultWindowDays - окно группировки по датам по умолчанию
	defaultWindowDays = 30

	// maxWindowDays - верхняя граница окна
	maxWindowDays = 365

	// topCategories - максимум категорий в выдаче по браузерам и устройствам
	topCategories = 10
)

// ShortLinkAnalytics возвращает агрегированную аналитику по ссылке:
// общее число переходов, распределение по датам в заданном окне
// и топ-10 браузеров и устройств за всё время.
// Срок действия ссылки не проверяется - аналитика видна и по просроченным кодам.
func (s *Service) ShortLinkAnalytics(ctx context.Context, shortCode string, windowDays int) (*ResponseAnalytics, error) {

	shortURL, err := s.link.GetByShortCode(ctx, shortCode)
	if err != nil {
		return nil, err
	}
	if shortURL == nil {
		s.log.Ctx(ctx).Info("ссылка не найдена при запросе аналитики", "short_code", shortCode)
		return nil, ErrNotFound
	}

	if windowDays <= 0 {
		windowDays = defaultWindowDays
	}
	if windowDays > maxWindowDays {
		windowDays = maxWindowDays
	}

	total, err := s.clicks.CountClicks(ctx, shortCode)
	if err != nil {
		return nil, err
	}

	// агрегаты не фатальны: при ошибке отдаём пустой срез и пишем в лог
	to := time.Now()
	from := to.AddDate(0, 0, -windowDays)

	byDate, err := s.clicks.CountClicksByDate(ctx, shortCode, from, to)
	if err != nil {
		s.log.Ctx(ctx).Error("ошибка агрегации по датам", "error", err, "short_code", shortCode)
	}

	byBrowser, err := s.clicks.CountClicksByBrowser(ctx, shortCode)
	if err != nil {
		s.log.Ctx(ctx).Error("ошибка агрегации по браузерам", "error", err, "short_code", shortCode)
	}

	byDevice, err := s.clicks.CountClicksByDevice(ctx, shortCode)
	if err != nil {
		s.log.Ctx(ctx).Error("ошибка агрегации по устройствам", "error", err, "short_code", shortCode)
	}

	// БД отдаёт даты уже по возрастанию; категории сортируем и срезаем здесь,
	// чтобы порядок был детерминированным независимо от планировщика запросов
	dateClicks := make([]DateClicks, len(byDate))
	for i, dc := range byDate {
		dateClicks[i] = DateClicks{Date: dc.Date, Count: dc.Count}
	}

	topBrowsers := topCategoryCounts(byBrowser)
	browserClicks := make([]BrowserClicks, len(topBrowsers))
	for i, cc := range topBrowsers {
		browserClicks[i] = BrowserClicks{Browser: cc.Label, Count: cc.Count}
	}

	topDevices := topCategoryCounts(byDevice)
	deviceClicks := make([]DeviceClicks, len(topDevices))
	for i, cc := range topDevices {
		deviceClicks[i] = DeviceClicks{Device: cc.Label, Count: cc.Count}
	}

	s.log.Ctx(ctx).Info("аналитика по ссылке получена", "short_code", shortCode, "total_clicks", total)

	return &ResponseAnalytics{
		ShortCode:       shortCode,
		TotalClicks:     total,
		ClicksByDate:    dateClicks,
		ClicksByBrowser: browserClicks,
		ClicksByDevice:  deviceClicks,
	}, nil
}

// topCategoryCounts сортирует категории по убыванию количества
// (при равенстве - по возрастанию метки, чтобы порядок был стабильным)
// и оставляет не более topCategories строк
func topCategoryCounts(counts []db.CategoryCount) []db.CategoryCount {

	sorted := make([]db.CategoryCount, len(counts))
	copy(sorted, counts)

	sort.Slice(sorted, func(i, j int) bool {
		if sorted[i].Count != sorted[j].Count {
			return sorted[i].Count > sorted[j].Count
		}
		return sorted[i].Label < sorted[j].Label
	})

	if len(sorted) > topCategories {
		sorted = sorted[:topCategories]
	}

	return sorted
}
