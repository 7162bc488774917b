package db

import (
	"context"
	"fmt"
)

const (
	shortURLsSchema = `CREATE TABLE IF NOT EXISTS shorturls (
			               id SERIAL PRIMARY KEY,
		           short_code VARCHAR(10) UNIQUE NOT NULL,
		         original_url TEXT NOT NULL,
		           created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
		           expires_at TIMESTAMPTZ,
		         access_count INT NOT NULL DEFAULT 0,
		     last_accessed_at TIMESTAMPTZ);

			 CREATE INDEX IF NOT EXISTS idx_shorturls_short_code ON shorturls(short_code);
		     CREATE INDEX IF NOT EXISTS idx_shorturls_created_at ON shorturls(created_at);`

	clicksSchema = `CREATE TABLE IF NOT EXISTS clicks (
			            id SERIAL PRIMARY KEY,
		      short_url_id INT NOT NULL REFERENCES shorturls(id) ON DELETE CASCADE,
		        short_code VARCHAR(10) NOT NULL,
		        clicked_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
		        ip_address INET,
		        user_agent TEXT,
		           referer TEXT,
		           browser TEXT,
		            device TEXT,
		                os TEXT);

				 CREATE INDEX IF NOT EXISTS idx_clicks_short_code_clicked_at ON clicks(short_code, clicked_at);
		         CREATE INDEX IF NOT EXISTS idx_clicks_clicked_at ON clicks(clicked_at);`
)

// Migration создаёт таблицы shorturls и clicks, если они ещё не существуют, добавляет индексы
func (d *DataBase) Migration(ctx context.Context) error {

	// создаём таблицу shorturls с индексами
	query := shortURLsSchema
	_, err := d.Pool.Exec(ctx, query)
	if err != nil {
		return fmt.Errorf("ошибка создания таблицы shorturls: %w", err)
	}

	// создаём таблицу clicks с индексами
	query = clicksSchema
	_, err = d.Pool.Exec(ctx, query)
	if err != nil {
		return fmt.Errorf("ошибка создания таблицы clicks: %w", err)
	}

	return nil
}
