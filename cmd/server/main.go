// Command server — сервис проверки provably-fair коммитов по HTTP.
// Состояния не хранит: каждый запрос проверяется независимо.
package main

import (
	"log"
	"net/http"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"github.com/KurepinVladimir/provably-fair-verify.git/internal/handler"
	"github.com/KurepinVladimir/provably-fair-verify.git/internal/logger"
	"github.com/KurepinVladimir/provably-fair-verify.git/internal/middleware"
)

func main() {
	parseFlags()

	if err := run(); err != nil {
		log.Fatalf("Server failed: %v", err)
	}
}

func run() error {
	if err := logger.Initialize(flagLogLevel); err != nil {
		return err
	}
	defer logger.Sync()

	logger.Log.Info("Running server", zap.String("address", flagRunAddr), zap.Bool("signed", flagKey != ""))

	return http.ListenAndServe(flagRunAddr, newRouter(flagKey))
}

// newRouter собирает маршруты сервиса; key включает проверку и подпись HashSHA256.
func newRouter(key string) chi.Router {
	r := chi.NewRouter()

	r.Use(logger.RequestLogger)
	r.Use(middleware.GzipRequest)
	r.Use(middleware.GzipResponse)

	hashMiddleware := middleware.ValidateHashSHA256(key)

	r.With(hashMiddleware).Post("/verify", handler.VerifyHandler(key))
	r.With(hashMiddleware).Post("/verify/", handler.VerifyHandler(key))
	r.With(hashMiddleware).Post("/verify/batch", handler.VerifyBatchHandler(key))

	r.Get("/ping", handler.PingHandler)

	return r
}
