package middleware

import (
	"compress/gzip"
	"io"
	"net/http"
	"strings"

	chimw "github.com/go-chi/chi/v5/middleware"
)

// GzipResponse сжимает JSON и текстовые ответы, если клиент прислал Accept-Encoding: gzip.
func GzipResponse(next http.Handler) http.Handler {
	return chimw.Compress(gzip.DefaultCompression, "application/json", "text/plain")(next)
}

// GzipRequest распаковывает тела запросов с Content-Encoding: gzip.
func GzipRequest(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if !strings.EqualFold(r.Header.Get("Content-Encoding"), "gzip") {
			next.ServeHTTP(w, r)
			return
		}

		gr, err := gzip.NewReader(r.Body)
		if err != nil {
			http.Error(w, "failed to read gzip body", http.StatusBadRequest)
			return
		}
		defer gr.Close()

		r.Body = io.NopCloser(gr)
		r.Header.Del("Content-Encoding")
		r.ContentLength = -1
		next.ServeHTTP(w, r)
	})
}
