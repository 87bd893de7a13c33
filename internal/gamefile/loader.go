// Package gamefile читает экспортированный JSON игры и достаёт из него payload.
//
// Ожидаемый формат:
//
//	{
//	  "payload": "mines|[0,0,...,-1]|...",
//	  ...
//	}
//
// payload уже сериализован сервером и возвращается байт в байт: пробелы,
// регистр и разделители внутри него сохраняются.
package gamefile

import (
	"fmt"
	"os"
	"unicode/utf8"

	"github.com/tidwall/gjson"
	"go.uber.org/zap"

	"github.com/KurepinVladimir/provably-fair-verify.git/internal/logger"
)

const payloadField = "payload"

// LoadPayload читает файл path и возвращает значение строкового поля payload.
func LoadPayload(path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("%w: failed to read JSON file '%s': %v", ErrIO, path, err)
	}
	logger.Log.Debug("game file read", zap.String("path", path), zap.Int("size", len(data)))

	payload, err := ParsePayload(data)
	if err != nil {
		return "", fmt.Errorf("file '%s': %w", path, err)
	}
	return payload, nil
}

// ParsePayload применяет те же правила, что и LoadPayload, к содержимому документа.
// При повторяющихся ключах побеждает последний payload.
func ParsePayload(data []byte) (string, error) {
	if !utf8.Valid(data) {
		return "", fmt.Errorf("%w: content is not valid UTF-8", ErrIO)
	}
	if !gjson.ValidBytes(data) {
		return "", fmt.Errorf("%w: malformed JSON", ErrIO)
	}

	doc := gjson.ParseBytes(data)
	if !doc.IsObject() {
		return "", fmt.Errorf(`%w: JSON file must contain "payload" field (string)`, ErrInput)
	}

	var (
		field gjson.Result
		found bool
	)
	doc.ForEach(func(key, value gjson.Result) bool {
		if key.String() == payloadField {
			field = value
			found = true
		}
		return true
	})

	if !found || field.Type == gjson.Null {
		return "", fmt.Errorf(`%w: JSON file must contain "payload" field (string)`, ErrInput)
	}
	if field.Type != gjson.String {
		return "", fmt.Errorf(`%w: JSON "payload" field must be a string`, ErrInput)
	}
	return field.Str, nil
}
