package service

import (
	"context"
	"errors"
	"fmt"
	"net/url"
	"time"

	"github.com/IPampurin/LinkShortener/pkg/db"
	"github.com/IPampurin/LinkShortener/pkg/metrics"
)

// maxGenerateAttempts - бюджет попыток подбора свободного кода
const maxGenerateAttempts = 10

// CreateShortLink создаёт новую короткую ссылку
// (если customCode не пуст, проверяет его занятость без повторных попыток,
// иначе генерирует случайный код с бюджетом в 10 попыток;
// гонку одновременных созданий одного кода отсекает уникальный индекс БД)
func (s *Service) CreateShortLink(ctx context.Context, originalURL, customCode string, expiryDays *int) (*ResponseShortURL, error) {

	// 1. Проверяем, что URL абсолютный (схема + хост)
	if err := validateOriginalURL(originalURL); err != nil {
		return nil, err
	}

	// 2. Считаем срок действия, если он задан
	var expiresAt *time.Time
	if expiryDays != nil {
		if *expiryDays <= 0 {
			return nil, fmt.Errorf("%w: срок действия должен быть положительным числом дней", ErrInvalidInput)
		}
		t := time.Now().AddDate(0, 0, *expiryDays)
		expiresAt = &t
	}

	// 3. Создаём запись с кастомным или сгенерированным кодом
	var created *db.ShortURL
	var err error

	if customCode != "" {
		created, err = s.createWithCustomCode(ctx, originalURL, customCode, expiresAt)
	} else {
		created, err = s.createWithGeneratedCode(ctx, originalURL, expiresAt)
	}
	if err != nil {
		return nil, err
	}

	// 4. Прогреваем кэш (ошибка записи в кэш создание не роняет)
	if s.cache != nil {
		s.cache.SetURL(ctx, created.ShortCode, created.OriginalURL)
	}

	metrics.ShortURLsCreated.Inc()

	s.log.Ctx(ctx).Info("новая короткая ссылка создана",
		"short_code", created.ShortCode,
		"original_url", originalURL,
		"is_custom", customCode != "")

	return s.toResponseShortURL(created), nil
}

// createWithCustomCode создаёт запись с пользовательским кодом (без повторных попыток)
func (s *Service) createWithCustomCode(ctx context.Context, originalURL, customCode string, expiresAt *time.Time) (*db.ShortURL, error) {

	// предварительная проверка занятости (финальное слово за уникальным индексом)
	exists, err := s.link.ExistsByShortCode(ctx, customCode)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, ErrCodeTaken
	}

	created, err := s.link.CreateShortURL(ctx, originalURL, customCode, expiresAt)
	if err != nil {
		if errors.Is(err, db.ErrShortCodeExists) {
			return nil, ErrCodeTaken
		}
		return nil, err
	}

	return created, nil
}

// createWithGeneratedCode подбирает свободный случайный код с ограниченным бюджетом попыток
func (s *Service) createWithGeneratedCode(ctx context.Context, originalURL string, expiresAt *time.Time) (*db.ShortURL, error) {

	for attempt := 1; attempt <= maxGenerateAttempts; attempt++ {

		shortCode := NewShortCode()

		exists, err := s.link.ExistsByShortCode(ctx, shortCode)
		if err != nil {
			return nil, err
		}
		if exists {
			continue
		}

		created, err := s.link.CreateShortURL(ctx, originalURL, shortCode, expiresAt)
		if err != nil {
			// проигранная гонка с таким же сгенерированным кодом - пробуем ещё раз
			if errors.Is(err, db.ErrShortCodeExists) {
				continue
			}
			return nil, err
		}

		return created, nil
	}

	// при пространстве в 62^7 кодов сюда попадаем только при неисправности
	// генератора или проверки занятости - повод для алерта, а не штатный исход
	s.log.Ctx(ctx).Error("исчерпан бюджет попыток генерации кода", "attempts", maxGenerateAttempts)

	return nil, ErrGenerationExhausted
}

// ResolveShortLink возвращает оригинальный URL по короткому коду.
// Источником истины о существовании и сроке действия всегда выступает БД:
// кэш хранит только строку URL и ускоряет горячий путь, но не решает судьбу ссылки.
func (s *Service) ResolveShortLink(ctx context.Context, shortCode, ipAddress, userAgent, referer string) (string, error) {

	shortURL, err := s.link.GetByShortCode(ctx, shortCode)
	if err != nil {
		return "", err
	}
	if shortURL == nil {
		s.log.Ctx(ctx).Info("ссылка не найдена в БД", "short_code", shortCode)
		return "", ErrNotFound
	}

	// просроченная ссылка снаружи неотличима от несуществующей
	if shortURL.ExpiresAt != nil && !shortURL.ExpiresAt.After(time.Now()) {
		s.log.Ctx(ctx).Info("ссылка просрочена", "short_code", shortCode)
		return "", ErrNotFound
	}

	// кэш пополняется на промахе тем же TTL, ответ при этом всегда из записи БД
	if s.cache != nil {
		if _, ok := s.cache.GetURL(ctx, shortCode); ok {
			s.log.Ctx(ctx).Debug("попадание в кэш", "short_code", shortCode)
		} else {
			s.log.Ctx(ctx).Debug("промах кэша", "short_code", shortCode)
			s.cache.SetURL(ctx, shortCode, shortURL.OriginalURL)
		}
	}

	// фоновые эффекты (инкремент счётчика и запись о переходе) отвязаны
	// от жизненного цикла запроса и не задерживают ответ
	s.enqueueClick(clickJob{
		shortURLID: shortURL.ID,
		shortCode:  shortURL.ShortCode,
		clickedAt:  time.Now(),
		ipAddress:  ipAddress,
		userAgent:  userAgent,
		referer:    referer,
	})

	metrics.Redirects.Inc()

	return shortURL.OriginalURL, nil
}

// ShortLinkStats возвращает статистику по ссылке.
// Срок действия здесь не проверяется: статистика остаётся видимой
// и после истечения ссылки, скрывается только редирект.
func (s *Service) ShortLinkStats(ctx context.Context, shortCode string) (*ResponseStats, error) {

	shortURL, err := s.link.GetByShortCode(ctx, shortCode)
	if err != nil {
		return nil, err
	}
	if shortURL == nil {
		s.log.Ctx(ctx).Info("ссылка не найдена при запросе статистики", "short_code", shortCode)
		return nil, ErrNotFound
	}

	return &ResponseStats{
		ShortCode:      shortURL.ShortCode,
		OriginalURL:    shortURL.OriginalURL,
		AccessCount:    shortURL.AccessCount,
		CreatedAt:      shortURL.CreatedAt,
		LastAccessedAt: shortURL.LastAccessedAt,
		ExpiresAt:      shortURL.ExpiresAt,
	}, nil
}

// LastLinks возвращает последние ссылки (по умолчанию 20 строк)
func (s *Service) LastLinks(ctx context.Context) ([]*ResponseShortURL, error) {

	shortURLs, err := s.link.GetLastShortURLs(ctx)
	if err != nil {
		s.log.Ctx(ctx).Error("ошибка получения последних ссылок", "error", err)
		return nil, err
	}

	result := make([]*ResponseShortURL, len(shortURLs))
	for i, u := range shortURLs {
		result[i] = s.toResponseShortURL(u)
	}

	s.log.Ctx(ctx).Info("последние ссылки запрошены", "count", len(result))

	return result, nil
}

// validateOriginalURL проверяет, что строка является абсолютным URL (схема + хост)
func validateOriginalURL(originalURL string) error {

	if originalURL == "" {
		return fmt.Errorf("%w: пустой URL", ErrInvalidInput)
	}

	parsed, err := url.Parse(originalURL)
	if err != nil {
		return fmt.Errorf("%w: некорректный формат URL", ErrInvalidInput)
	}
	if parsed.Scheme == "" || parsed.Host == "" {
		return fmt.Errorf("%w: URL должен быть абсолютным (схема и хост)", ErrInvalidInput)
	}

	return nil
}

// toResponseShortURL преобразует db.ShortURL в service.ResponseShortURL
func (s *Service) toResponseShortURL(u *db.ShortURL) *ResponseShortURL {

	return &ResponseShortURL{
		ID:          u.ID,
		ShortCode:   u.ShortCode,
		ShortURL:    s.BuildShortURL(u.ShortCode),
		OriginalURL: u.OriginalURL,
		CreatedAt:   u.CreatedAt,
		ExpiresAt:   u.ExpiresAt,
	}
}
