package qr

import (
	"bytes"
	"image/png"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// pngSignature - первые байты любого корректного PNG-файла
var pngSignature = []byte{0x89, 'P', 'N', 'G', '\r', '\n', 0x1a, '\n'}

// TestEncode тестирует генерацию PNG-картинки с QR-кодом
func TestEncode(t *testing.T) {

	data, err := Encode("http://localhost:8080/s/abc1234", DefaultSize)
	require.NoError(t, err)
	require.NotEmpty(t, data)

	assert.True(t, bytes.HasPrefix(data, pngSignature), "ответ должен быть PNG-файлом")

	img, err := png.Decode(bytes.NewReader(data))
	require.NoError(t, err)
	assert.Equal(t, DefaultSize, img.Bounds().Dx())
	assert.Equal(t, DefaultSize, img.Bounds().Dy())
}

// TestEncodeSizeClamping тестирует приведение размера к допустимому диапазону
func TestEncodeSizeClamping(t *testing.T) {

	tests := []struct {
		name     string
		size     int
		expected int
	}{
		{name: "нулевой размер даёт размер по умолчанию", size: 0, expected: DefaultSize},
		{name: "отрицательный размер даёт размер по умолчанию", size: -5, expected: DefaultSize},
		{name: "слишком маленький поднимается до минимума", size: 10, expected: MinSize},
		{name: "слишком большой опускается до максимума", size: 5000, expected: MaxSize},
		{name: "размер в диапазоне остаётся как есть", size: 512, expected: 512},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			data, err := Encode("http://localhost:8080/s/abc1234", tt.size)
			require.NoError(t, err)

			img, err := png.Decode(bytes.NewReader(data))
			require.NoError(t, err)
			assert.Equal(t, tt.expected, img.Bounds().Dx())
		})
	}
}

// TestEncodeEmptyText тестирует, что пустой текст не приводит к панике
func TestEncodeEmptyText(t *testing.T) {

	_, err := Encode("", DefaultSize)
	// библиотека сама решает, кодировать ли пустую строку - важно отсутствие паники
	_ = err
}
