package logger

import (
	"net/http"
	"time"

	"go.uber.org/zap"

	"github.com/go-chi/chi/v5/middleware"
)

// Log доступен всему коду как синглтон; менять его может только Initialize.
// По умолчанию — no-op-логер.
var Log *zap.Logger = zap.NewNop()

// Initialize создаёт production-логер zap с уровнем level ("debug", "info", "error"...).
// Логи пишутся в stderr, чтобы не смешиваться с отчётом CLI в stdout.
func Initialize(level string) error {
	lvl, err := zap.ParseAtomicLevel(level)
	if err != nil {
		return err
	}
	cfg := zap.NewProductionConfig()
	cfg.Level = lvl
	cfg.OutputPaths = []string{"stderr"}
	zl, err := cfg.Build()
	if err != nil {
		return err
	}
	Log = zl
	return nil
}

// Sync сбрасывает буферы логера; ошибку sync для stderr игнорируем.
func Sync() {
	_ = Log.Sync()
}

// RequestLogger логирует каждый запрос к сервису проверки.
func RequestLogger(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)

		start := time.Now()
		next.ServeHTTP(ww, r)

		Log.Info("incoming request",
			zap.String("method", r.Method),
			zap.String("uri", r.RequestURI),
			zap.Int("status", ww.Status()),
			zap.Int("size", ww.BytesWritten()),
			zap.Duration("duration", time.Since(start)),
		)
	})
}
