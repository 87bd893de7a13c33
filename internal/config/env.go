package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"
)

// VerifierEnv — переменные окружения CLI. Непустые значения перекрывают флаги.
type VerifierEnv struct {
	Seed      string `env:"VERIFY_SEED"`
	Hash      string `env:"VERIFY_HASH"`
	JSONPath  string `env:"VERIFY_JSON"`
	ServerURL string `env:"VERIFY_SERVER"`
	LogLevel  string `env:"LOG_LEVEL"`
}

// ServerEnv — переменные окружения сервиса проверки.
type ServerEnv struct {
	Address  string `env:"ADDRESS"`
	Key      string `env:"KEY"`
	LogLevel string `env:"LOG_LEVEL"`
}

// ParseEnv загружает конфигурацию из переменных окружения.
func ParseEnv(target any) error {
	if err := env.Parse(target); err != nil {
		return fmt.Errorf("parse env: %w", err)
	}
	return nil
}

// Override присваивает *dst значение v, если оно не пустое.
func Override(dst *string, v string) {
	if v != "" {
		*dst = v
	}
}
