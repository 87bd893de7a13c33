package cryptohelpers

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"strings"
)

// Sign возвращает HMAC-SHA256 (в hex, нижний регистр) от данных data с ключом key.
func Sign(data []byte, key []byte) string {
	h := hmac.New(sha256.New, key)
	_, _ = h.Write(data)
	return hex.EncodeToString(h.Sum(nil))
}

// Compare возвращает true, если указанная hex‑подпись signedHex соответствует
// HMAC-SHA256 от данных data с ключом key. Регистр hex-строки не важен.
func Compare(data []byte, key []byte, signedHex string) bool {
	expected := Sign(data, key)
	return hmac.Equal([]byte(expected), []byte(strings.ToLower(signedHex)))
}
