package db

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

// ErrShortCodeExists возвращается при нарушении уникальности short_code
// (гонка двух одновременных созданий отсекается ограничением БД, а не предварительной проверкой)
var ErrShortCodeExists = errors.New("короткий код уже существует")

// uniqueViolation - код ошибки PostgreSQL о нарушении уникального ограничения
const uniqueViolation = "23505"

// isUniqueViolation проверяет, является ли ошибка нарушением уникального индекса
func isUniqueViolation(err error) bool {

	var pgErr *pgconn.PgError
	if !errors.As(err, &pgErr) {
		return false
	}

	return pgErr.Code == uniqueViolation
}

// CreateShortURL добавляет новую запись в таблицу shorturls БД
func (d *DataBase) CreateShortURL(ctx context.Context, originalURL, shortCode string, expiresAt *time.Time) (*ShortURL, error) {

	query := `   INSERT INTO shorturls (short_code, original_url, created_at, expires_at, access_count)
                 VALUES ($1, $2, NOW(), $3, $4)
			  RETURNING id, created_at`

	shortURL := &ShortURL{
		ShortCode:   shortCode,
		OriginalURL: originalURL,
		ExpiresAt:   expiresAt,
		AccessCount: 0,
	}

	err := d.Pool.QueryRow(ctx, query, shortCode, originalURL, expiresAt, 0).
		Scan(&shortURL.ID, &shortURL.CreatedAt)
	if err != nil {
		if isUniqueViolation(err) {
			return nil, ErrShortCodeExists
		}
		return nil, fmt.Errorf("ошибка добавления записи о ссылке в CreateShortURL: %w", err)
	}

	return shortURL, nil
}

// GetByShortCode получает из таблицы shorturls БД запись по короткому коду
func (d *DataBase) GetByShortCode(ctx context.Context, shortCode string) (*ShortURL, error) {

	query := `SELECT *
	            FROM shorturls
			   WHERE short_code = $1`

	shortURL := &ShortURL{}

	err := d.Pool.QueryRow(ctx, query, shortCode).
		Scan(&shortURL.ID,
			&shortURL.ShortCode,
			&shortURL.OriginalURL,
			&shortURL.CreatedAt,
			&shortURL.ExpiresAt,
			&shortURL.AccessCount,
			&shortURL.LastAccessedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("ошибка получения записи о ссылке в GetByShortCode: %w", err)
	}

	return shortURL, nil
}

// ExistsByShortCode проверяет занятость короткого кода
// (проверка носит предварительный характер - истиной в последней инстанции остаётся уникальный индекс)
func (d *DataBase) ExistsByShortCode(ctx context.Context, shortCode string) (bool, error) {

	query := `SELECT EXISTS (SELECT 1
	                           FROM shorturls
			                  WHERE short_code = $1)`

	var exists bool

	err := d.Pool.QueryRow(ctx, query, shortCode).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("ошибка проверки занятости кода в ExistsByShortCode: %w", err)
	}

	return exists, nil
}

// IncrementAccess атомарно увеличивает счётчик переходов по ссылке
// и выставляет момент последнего перехода (инкремент выполняется на стороне БД,
// чтобы одновременные переходы не теряли обновления)
func (d *DataBase) IncrementAccess(ctx context.Context, shortCode string, accessedAt time.Time) error {

	query := `UPDATE shorturls
	             SET access_count = access_count + 1,
			         last_accessed_at = $2
			   WHERE short_code = $1`

	_, err := d.Pool.Exec(ctx, query, shortCode, accessedAt)
	if err != nil {
		return fmt.Errorf("ошибка увеличения счётчика переходов в IncrementAccess: %w", err)
	}

	return nil
}

// GetLastShortURLs получает крайние по времени 20 записей по сокращению ссылок
func (d *DataBase) GetLastShortURLs(ctx context.Context) ([]*ShortURL, error) {

	const limitGetShortURLs = 20

	query := `SELECT *
	            FROM shorturls
			   ORDER BY created_at DESC
			   LIMIT $1`

	rows, err := d.Pool.Query(ctx, query, limitGetShortURLs)
	if err != nil {
		return nil, fmt.Errorf("ошибка при получении списка ссылок в GetLastShortURLs: %w", err)
	}
	defer rows.Close()

	var shortURLs []*ShortURL
	for rows.Next() {
		var s ShortURL
		err := rows.Scan(
			&s.ID,
			&s.ShortCode,
			&s.OriginalURL,
			&s.CreatedAt,
			&s.ExpiresAt,
			&s.AccessCount,
			&s.LastAccessedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("ошибка при сканировании строки списка ссылок в GetLastShortURLs: %w", err)
		}

		shortURLs = append(shortURLs, &s)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("ошибка при итерации по списку ссылок в GetLastShortURLs: %w", err)
	}

	return shortURLs, nil
}

// GetShortURLsOfPeriod возвращает записи за крайний period времени (для прогрева кэша)
func (d *DataBase) GetShortURLsOfPeriod(ctx context.Context, period time.Duration) ([]*ShortURL, error) {

	threshold := time.Now().Add(-period)

	query := `SELECT *
	            FROM shorturls
			   WHERE created_at >= $1`

	rows, err := d.Pool.Query(ctx, query, threshold)
	if err != nil {
		return nil, fmt.Errorf("ошибка при получении списка ссылок в GetShortURLsOfPeriod: %w", err)
	}
	defer rows.Close()

	var shortURLs []*ShortURL
	for rows.Next() {
		var s ShortURL
		err := rows.Scan(
			&s.ID,
			&s.ShortCode,
			&s.OriginalURL,
			&s.CreatedAt,
			&s.ExpiresAt,
			&s.AccessCount,
			&s.LastAccessedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("ошибка при сканировании строки списка ссылок в GetShortURLsOfPeriod: %w", err)
		}

		shortURLs = append(shortURLs, &s)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("ошибка при итерации по списку ссылок в GetShortURLsOfPeriod: %w", err)
	}

	return shortURLs, nil
}
