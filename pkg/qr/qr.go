package qr

import (
	"fmt"

	qrcode "github.com/skip2/go-qrcode"
)

const (
	// MinSize и MaxSize ограничивают размер картинки в пикселях
	MinSize = 64
	MaxSize = 1024

	// DefaultSize - размер по умолчанию, если клиент его не указал
	DefaultSize = 256
)

// Encode кодирует переданный текст (короткий URL) в PNG-картинку QR-кода
// размером size x size пикселей (размер приводится к допустимому диапазону)
func Encode(text string, size int) ([]byte, error) {

	if size <= 0 {
		size = DefaultSize
	}
	if size < MinSize {
		size = MinSize
	}
	if size > MaxSize {
		size = MaxSize
	}

	png, err := qrcode.Encode(text, qrcode.Medium, size)
	if err != nil {
		return nil, fmt.Errorf("ошибка кодирования QR-кода: %w", err)
	}

	return png, nil
}
