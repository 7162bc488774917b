package service

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/IPampurin/LinkShortener/pkg/db"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestTopCategoryCounts тестирует сортировку категорий по убыванию количества
// со стабильным порядком при равных значениях
func TestTopCategoryCounts(t *testing.T) {

	tests := []struct {
		name     string
		input    []db.CategoryCount
		expected []db.CategoryCount
	}{
		{
			name:     "пустой вход",
			input:    nil,
			expected: []db.CategoryCount{},
		},
		{
			name: "сортировка по убыванию",
			input: []db.CategoryCount{
				{Label: "Firefox", Count: 3},
				{Label: "Chrome", Count: 10},
				{Label: "Safari", Count: 7},
			},
			expected: []db.CategoryCount{
				{Label: "Chrome", Count: 10},
				{Label: "Safari", Count: 7},
				{Label: "Firefox", Count: 3},
			},
		},
		{
			name: "равные значения идут по алфавиту",
			input: []db.CategoryCount{
				{Label: "Safari", Count: 5},
				{Label: "Chrome", Count: 5},
				{Label: "Firefox", Count: 5},
			},
			expected: []db.CategoryCount{
				{Label: "Chrome", Count: 5},
				{Label: "Firefox", Count: 5},
				{Label: "Safari", Count: 5},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := topCategoryCounts(tt.input)
			assert.Equal(t, len(tt.expected), len(result))
			for i, exp := range tt.expected {
				assert.Equal(t, exp, result[i])
			}
		})
	}
}

// TestTopCategoryCountsLimit тестирует срез выдачи до десяти категорий
func TestTopCategoryCountsLimit(t *testing.T) {

	input := make([]db.CategoryCount, 15)
	for i := range input {
		input[i] = db.CategoryCount{Label: fmt.Sprintf("browser-%02d", i), Count: 100 - i}
	}

	result := topCategoryCounts(input)

	require.Len(t, result, topCategories)
	assert.Equal(t, "browser-00", result[0].Label)
	assert.Equal(t, 100, result[0].Count)
	assert.Equal(t, "browser-09", result[topCategories-1].Label)
}

// TestTopCategoryCountsDoesNotMutate тестирует, что исходный срез не переставляется
func TestTopCategoryCountsDoesNotMutate(t *testing.T) {

	input := []db.CategoryCount{
		{Label: "Firefox", Count: 1},
		{Label: "Chrome", Count: 9},
	}

	_ = topCategoryCounts(input)

	assert.Equal(t, "Firefox", input[0].Label)
	assert.Equal(t, "Chrome", input[1].Label)
}

// TestShortLinkAnalytics тестирует сборку полного ответа аналитики
func TestShortLinkAnalytics(t *testing.T) {

	store := newFakeStorage()
	store.byDate = []db.DateCount{
		{Date: "2026-08-30", Count: 2},
		{Date: "2026-09-01", Count: 5},
	}
	store.byBrowser = []db.CategoryCount{
		{Label: "Firefox", Count: 2},
		{Label: "Chrome", Count: 5},
	}
	store.byDevice = []db.CategoryCount{
		{Label: "Desktop", Count: 6},
		{Label: "Mobile", Count: 1},
	}

	svc := newTestService(t, store)

	resp, err := svc.CreateShortLink(context.Background(), "https://example.com/analytics", "", nil)
	require.NoError(t, err)

	// фиксируем несколько переходов, чтобы total считался из хранилища
	for i := 0; i < 7; i++ {
		_, err := svc.ResolveShortLink(context.Background(), resp.ShortCode, "", chromeUA, "")
		require.NoError(t, err)
	}
	svc.Close()

	analytics, err := svc.ShortLinkAnalytics(context.Background(), resp.ShortCode, 0)
	require.NoError(t, err)

	assert.Equal(t, resp.ShortCode, analytics.ShortCode)
	assert.Equal(t, 7, analytics.TotalClicks)

	// даты приходят в порядке БД (по возрастанию), без перестановок
	require.Len(t, analytics.ClicksByDate, 2)
	assert.Equal(t, DateClicks{Date: "2026-08-30", Count: 2}, analytics.ClicksByDate[0])
	assert.Equal(t, DateClicks{Date: "2026-09-01", Count: 5}, analytics.ClicksByDate[1])

	// категории пересортированы по убыванию
	require.Len(t, analytics.ClicksByBrowser, 2)
	assert.Equal(t, BrowserClicks{Browser: "Chrome", Count: 5}, analytics.ClicksByBrowser[0])
	assert.Equal(t, BrowserClicks{Browser: "Firefox", Count: 2}, analytics.ClicksByBrowser[1])

	require.Len(t, analytics.ClicksByDevice, 2)
	assert.Equal(t, DeviceClicks{Device: "Desktop", Count: 6}, analytics.ClicksByDevice[0])
	assert.Equal(t, DeviceClicks{Device: "Mobile", Count: 1}, analytics.ClicksByDevice[1])
}

// TestShortLinkAnalyticsNotFound тестирует аналитику по несуществующему коду
func TestShortLinkAnalyticsNotFound(t *testing.T) {

	store := newFakeStorage()
	svc := newTestService(t, store)
	defer svc.Close()

	analytics, err := svc.ShortLinkAnalytics(context.Background(), "missing3", 30)
	assert.Nil(t, analytics)
	assert.ErrorIs(t, err, ErrNotFound)
}

// TestShortLinkAnalyticsExpired тестирует, что аналитика остаётся видимой
// по просроченной ссылке
func TestShortLinkAnalyticsExpired(t *testing.T) {

	store := newFakeStorage()
	svc := newTestService(t, store)
	defer svc.Close()

	expired := time.Now().Add(-time.Hour)
	_, err := store.CreateShortURL(context.Background(), "https://example.com/old", "expired3", &expired)
	require.NoError(t, err)

	analytics, err := svc.ShortLinkAnalytics(context.Background(), "expired3", 30)
	require.NoError(t, err)
	assert.Equal(t, "expired3", analytics.ShortCode)
	assert.Equal(t, 0, analytics.TotalClicks)
}

// TestShortLinkAnalyticsEmpty тестирует ссылку без единого перехода:
// нулевой счётчик и пустые срезы агрегатов
func TestShortLinkAnalyticsEmpty(t *testing.T) {

	store := newFakeStorage()
	svc := newTestService(t, store)
	defer svc.Close()

	resp, err := svc.CreateShortLink(context.Background(), "https://example.com/quiet", "", nil)
	require.NoError(t, err)

	analytics, err := svc.ShortLinkAnalytics(context.Background(), resp.ShortCode, 30)
	require.NoError(t, err)

	assert.Equal(t, 0, analytics.TotalClicks)
	assert.Empty(t, analytics.ClicksByDate)
	assert.Empty(t, analytics.ClicksByBrowser)
	assert.Empty(t, analytics.ClicksByDevice)
}
