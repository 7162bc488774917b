package service

import "errors"

// типизированные ошибки бизнес-логики - обработчики сопоставляют их
// с HTTP-статусами через errors.Is
var (
	// ErrInvalidInput - некорректные входные данные (не абсолютный URL, неверный срок действия)
	ErrInvalidInput = errors.New("некорректные входные данные")

	// ErrCodeTaken - запрошенный короткий код уже занят
	ErrCodeTaken = errors.New("короткий код уже занят")

	// ErrGenerationExhausted - не удалось подобрать свободный код за отведённое число попыток
	// (при пространстве в 62^7 кодов это сигнал о неисправности генератора или БД, а не о дефиците)
	ErrGenerationExhausted = errors.New("не удалось сгенерировать уникальный короткий код")

	// ErrNotFound - ссылка не существует или просрочена (случаи намеренно неразличимы)
	ErrNotFound = errors.New("ссылка не найдена")
)
