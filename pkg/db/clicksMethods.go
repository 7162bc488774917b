package db

import (
	"context"
	"fmt"
	"time"
)

// SaveClick записывает каждый переход по ссылке
func (d *DataBase) SaveClick(ctx context.Context, click *Click) error {

	query := `INSERT INTO clicks (short_url_id, short_code, clicked_at, ip_address, user_agent, referer, browser, device, os)
              VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`

	_, err := d.Pool.Exec(ctx, query,
		click.ShortURLID,
		click.ShortCode,
		click.ClickedAt,
		click.IPAddress, // если IP не передан, будет nil и в колонку запишется NULL
		click.UserAgent,
		click.Referer,
		click.Browser,
		click.Device,
		click.OS)
	if err != nil {
		return fmt.Errorf("ошибка добавления записи о переходе в SaveClick: %w", err)
	}

	return nil
}

// CountClicks возвращает общее число переходов по коду за всё время
func (d *DataBase) CountClicks(ctx context.Context, shortCode string) (int, error) {

	query := `SELECT COUNT(*)
	            FROM clicks
			   WHERE short_code = $1`

	var count int

	err := d.Pool.QueryRow(ctx, query, shortCode).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("ошибка подсчёта переходов в CountClicks: %w", err)
	}

	return count, nil
}

// агрегация

// CountClicksByDate - группировка по календарным датам (UTC) в диапазоне [from, to)
// (даты без переходов в выборку не попадают)
func (d *DataBase) CountClicksByDate(ctx context.Context, shortCode string, from, to time.Time) ([]DateCount, error) {

	query := `SELECT TO_CHAR(DATE(clicked_at AT TIME ZONE 'UTC'), 'YYYY-MM-DD') AS day,
	                 COUNT(*) AS count
                FROM clicks
               WHERE short_code = $1
                 AND clicked_at >= $2 AND clicked_at < $3
               GROUP BY day
			   ORDER BY day`

	rows, err := d.Pool.Query(ctx, query, shortCode, from, to)
	if err != nil {
		return nil, fmt.Errorf("ошибка при выполнении запроса в CountClicksByDate: %w", err)
	}
	defer rows.Close()

	var dateCounts []DateCount
	for rows.Next() {
		var dc DateCount
		err := rows.Scan(
			&dc.Date,
			&dc.Count,
		)
		if err != nil {
			return nil, fmt.Errorf("ошибка при сканировании строки запроса в CountClicksByDate: %w", err)
		}

		dateCounts = append(dateCounts, dc)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("ошибка при итерации по списку записей в CountClicksByDate: %w", err)
	}

	return dateCounts, nil
}

// CountClicksByBrowser - группировка по семействам браузеров за всё время
// (строки с нераспознанным браузером исключаются)
func (d *DataBase) CountClicksByBrowser(ctx context.Context, shortCode string) ([]CategoryCount, error) {

	query := `SELECT browser,
	                 COUNT(*) AS count
                FROM clicks
               WHERE short_code = $1
			     AND browser IS NOT NULL
			   GROUP BY browser`

	return d.queryCategoryCounts(ctx, query, shortCode, "CountClicksByBrowser")
}

// CountClicksByDevice - группировка по семействам устройств за всё время
// (строки с нераспознанным устройством исключаются)
func (d *DataBase) CountClicksByDevice(ctx context.Context, shortCode string) ([]CategoryCount, error) {

	query := `SELECT device,
	                 COUNT(*) AS count
                FROM clicks
               WHERE short_code = $1
			     AND device IS NOT NULL
			   GROUP BY device`

	return d.queryCategoryCounts(ctx, query, shortCode, "CountClicksByDevice")
}

// queryCategoryCounts выполняет запрос группировки по категориям и собирает результат
func (d *DataBase) queryCategoryCounts(ctx context.Context, query, shortCode, method string) ([]CategoryCount, error) {

	rows, err := d.Pool.Query(ctx, query, shortCode)
	if err != nil {
		return nil, fmt.Errorf("ошибка при выполнении запроса в %s: %w", method, err)
	}
	defer rows.Close()

	var categoryCounts []CategoryCount
	for rows.Next() {
		var cc CategoryCount
		err := rows.Scan(
			&cc.Label,
			&cc.Count,
		)
		if err != nil {
			return nil, fmt.Errorf("ошибка при сканировании строки запроса в %s: %w", method, err)
		}

		categoryCounts = append(categoryCounts, cc)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("ошибка при итерации по списку записей в %s: %w", method, err)
	}

	return categoryCounts, nil
}
