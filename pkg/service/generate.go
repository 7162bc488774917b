package service

import (
	"math/rand/v2"
)

const (
	// codeLength - длина генерируемого короткого кода
	codeLength = 7

	// codeAlphabet - 62-символьный алфавит коротких кодов (62^7 вариантов)
	codeAlphabet = "abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"
)

// NewShortCode возвращает случайный короткий код из 7 алфавитно-цифровых символов.
// Глобальный источник math/rand/v2 синхронизирован внутри, поэтому функцию
// можно звать из любого числа горутин без внешних блокировок.
func NewShortCode() string {

	b := make([]byte, codeLength)
	for i := range b {
		b[i] = codeAlphabet[rand.N(len(codeAlphabet))]
	}

	return string(b)
}
