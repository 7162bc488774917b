package db

import (
	"net"
	"time"
)

// ShortURL представляет запись в таблице shorturls
type ShortURL struct {
	ID             int        // внутренний идентификатор записи (автоинкремент)
	ShortCode      string     // короткий код (например, "aZ3k9Qx"), уникален в пределах таблицы
	OriginalURL    string     // исходный длинный URL
	CreatedAt      time.Time  // дата и время создания записи
	ExpiresAt      *time.Time // срок действия ссылки (nil - бессрочная)
	AccessCount    int        // количество успешных переходов по ссылке
	LastAccessedAt *time.Time // момент последнего перехода (nil - переходов не было)
}

// Click представляет запись о переходе по короткой ссылке
type Click struct {
	ID         int       // уникальный идентификатор записи о переходе (автоинкремент)
	ShortURLID int       // идентификатор ссылки, по которой совершён переход
	ShortCode  string    // денормализованная копия кода ссылки (для выборок без JOIN)
	ClickedAt  time.Time // момент времени, когда произошёл переход
	IPAddress  net.IP    // IP-адрес посетителя (nil - не передан)
	UserAgent  string    // строка User-Agent браузера или клиента
	Referer    string    // URL источника перехода
	Browser    *string   // семейство браузера из User-Agent (nil - не распознано)
	Device     *string   // семейство устройства из User-Agent (nil - не распознано)
	OS         *string   // семейство ОС из User-Agent (nil - не распознано)
}

// DateCount - количество переходов за календарную дату (UTC)
type DateCount struct {
	Date  string // дата в формате YYYY-MM-DD
	Count int
}

// CategoryCount - количество переходов по категории (браузер или устройство)
type CategoryCount struct {
	Label string
	Count int
}
