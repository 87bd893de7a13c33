package main

import (
	"flag"
	"log"

	"github.com/KurepinVladimir/provably-fair-verify.git/internal/config"
)

var (
	flagRunAddr  string // адрес и порт сервиса проверки
	flagKey      string // ключ подписи запросов и ответов (HashSHA256)
	flagLogLevel string
)

// parseFlags обрабатывает аргументы командной строки; переменные окружения
// ADDRESS, KEY и LOG_LEVEL имеют приоритет над флагами.
func parseFlags() {
	flag.StringVar(&flagRunAddr, "a", ":8080", "address and port to run server")
	flag.StringVar(&flagKey, "k", "", "key for HashSHA256 signatures")
	flag.StringVar(&flagLogLevel, "l", "info", "log level")
	flag.Parse()

	if len(flag.Args()) > 0 {
		log.Fatalf("Неизвестные аргументы: %v", flag.Args())
	}

	var env config.ServerEnv
	if err := config.ParseEnv(&env); err != nil {
		log.Fatalf("Ошибка чтения окружения: %v", err)
	}
	config.Override(&flagRunAddr, env.Address)
	config.Override(&flagKey, env.Key)
	config.Override(&flagLogLevel, env.LogLevel)
}
