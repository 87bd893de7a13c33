package middleware

import (
	"bytes"
	"io"
	"net/http"

	"go.uber.org/zap"

	"github.com/KurepinVladimir/provably-fair-verify.git/internal/cryptohelpers"
	"github.com/KurepinVladimir/provably-fair-verify.git/internal/logger"
)

// ValidateHashSHA256 проверяет подпись тела запроса в заголовке HashSHA256.
// Без ключа или без заголовка запрос пропускается как есть.
func ValidateHashSHA256(key string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if key == "" {
				next.ServeHTTP(w, r)
				return
			}

			sentHash := r.Header.Get("HashSHA256")
			if sentHash == "" {
				next.ServeHTTP(w, r)
				return
			}

			// тело уже распаковано gzip-мидлварью
			bodyBytes, err := io.ReadAll(r.Body)
			if err != nil {
				http.Error(w, "unable to read body", http.StatusInternalServerError)
				return
			}
			r.Body = io.NopCloser(bytes.NewBuffer(bodyBytes))

			if !cryptohelpers.Compare(bodyBytes, []byte(key), sentHash) {
				logger.Log.Debug("request signature mismatch", zap.String("uri", r.RequestURI))
				http.Error(w, "invalid signature", http.StatusBadRequest)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}
