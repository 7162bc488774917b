package service

import "time"

// ResponseShortURL - ответ на успешное создание (POST /shorten выход)
// или элемент списка последних ссылок (GET /links выход)
type ResponseShortURL struct {
	ID          int        `json:"-"`
	ShortCode   string     `json:"short_code"`
	ShortURL    string     `json:"short_url"`
	OriginalURL string     `json:"original_url"`
	CreatedAt   time.Time  `json:"created_at"`
	ExpiresAt   *time.Time `json:"expires_at,omitempty"`
}

// ResponseStats - ответ для GET /stats/:short_code
// (статистика отдаётся и по просроченным ссылкам - срок действия скрывает только редирект)
type ResponseStats struct {
	ShortCode      string     `json:"short_code"`
	OriginalURL    string     `json:"original_url"`
	AccessCount    int        `json:"access_count"`
	CreatedAt      time.Time  `json:"created_at"`
	LastAccessedAt *time.Time `json:"last_accessed_at,omitempty"`
	ExpiresAt      *time.Time `json:"expires_at,omitempty"`
}

// DateClicks - переходы за календарную дату (UTC)
type DateClicks struct {
	Date  string `json:"date"`
	Count int    `json:"count"`
}

// BrowserClicks - переходы по семейству браузера
type BrowserClicks struct {
	Browser string `json:"browser"`
	Count   int    `json:"count"`
}

// DeviceClicks - переходы по семейству устройства
type DeviceClicks struct {
	Device string `json:"device"`
	Count  int    `json:"count"`
}

// ResponseAnalytics - полный ответ для GET /analytics/:short_code
type ResponseAnalytics struct {
	ShortCode       string           `json:"short_code"`
	TotalClicks     int              `json:"total_clicks"`
	ClicksByDate    []DateClicks     `json:"clicks_by_date"`
	ClicksByBrowser []BrowserClicks  `json:"clicks_by_browser"`
	ClicksByDevice  []DeviceClicks   `json:"clicks_by_device"`
}
