package gamefile

import "errors"

var (
	// ErrInput — документ прочитан, но поле payload отсутствует или не строка.
	ErrInput = errors.New("input error")
	// ErrIO — файл не удалось прочитать, декодировать как UTF-8 или разобрать как JSON.
	ErrIO = errors.New("io error")
)
