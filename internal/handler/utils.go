package handler

import (
	"bytes"
	"encoding/json"
	"net/http"

	"github.com/KurepinVladimir/provably-fair-verify.git/internal/cryptohelpers"
)

// HashHeader — заголовок с HMAC-SHA256 подписью тела запроса или ответа.
const HashHeader = "HashSHA256"

// WriteSignedJSONResponse — сериализует m, подписывает его ключом key (если задан)
// и отправляет как JSON-ответ со статусом 200.
func WriteSignedJSONResponse(w http.ResponseWriter, m any, key string) error {
	var buf bytes.Buffer
	if err := json.NewEncoder(&buf).Encode(m); err != nil {
		return err
	}

	if key != "" {
		w.Header().Set(HashHeader, cryptohelpers.Sign(buf.Bytes(), []byte(key)))
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	_, err := w.Write(buf.Bytes())
	return err
}
