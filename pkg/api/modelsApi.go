package api

// CreateRequest - запрос на создание короткой ссылки (POST /shorten вход)
type CreateRequest struct {
	OriginalURL     string `json:"original_url" binding:"required,url"`
	CustomShortCode string `json:"custom_short_code" binding:"omitempty,alphanum,max=10"`
	ExpiryDays      *int   `json:"expiry_days" binding:"omitempty,gt=0"`
}

// ErrorResponse - стандартный ответ с ошибкой
type ErrorResponse struct {
	Error string `json:"error"`
}
