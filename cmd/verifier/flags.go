package main

import (
	"errors"
	"flag"
	"fmt"
	"io"

	"github.com/KurepinVladimir/provably-fair-verify.git/internal/config"
)

var errMissingFlag = errors.New("missing required flag")

// options — параметры одного запуска проверки.
type options struct {
	seed      string // serverSeed, раскрытый после окончания игры
	hash      string // коммит, показанный при старте игры
	jsonPath  string // путь к JSON игры с полем payload
	serverURL string // если задан, проверка выполняется удалённым сервисом
	logLevel  string
}

// parseFlags обрабатывает аргументы командной строки, затем применяет
// переменные окружения: непустые значения окружения перекрывают флаги.
func parseFlags(args []string, output io.Writer) (options, error) {
	var opts options

	fs := flag.NewFlagSet("verifier", flag.ContinueOnError)
	fs.SetOutput(output)
	fs.Usage = func() {
		fmt.Fprintln(output, "Verify provably-fair commitment (payload is pre-serialized)")
		fmt.Fprintln(output)
		fmt.Fprintln(output, "Usage: verifier --seed <serverSeed> --hash <commitment> --json <game.json>")
		fs.PrintDefaults()
	}

	fs.StringVar(&opts.seed, "seed", "", "serverSeed revealed after game ends")
	fs.StringVar(&opts.hash, "hash", "", "hash/commitment shown at game start")
	fs.StringVar(&opts.jsonPath, "json", "", "path to game JSON file")
	fs.StringVar(&opts.serverURL, "server", "", "verification service URL (verify remotely)")
	fs.StringVar(&opts.logLevel, "log-level", "error", "log level")

	if err := fs.Parse(args); err != nil {
		return options{}, err
	}

	// проверка на неизвестные аргументы
	if len(fs.Args()) > 0 {
		return options{}, fmt.Errorf("unknown arguments: %v", fs.Args())
	}

	var env config.VerifierEnv
	if err := config.ParseEnv(&env); err != nil {
		return options{}, err
	}
	config.Override(&opts.seed, env.Seed)
	config.Override(&opts.hash, env.Hash)
	config.Override(&opts.jsonPath, env.JSONPath)
	config.Override(&opts.serverURL, env.ServerURL)
	config.Override(&opts.logLevel, env.LogLevel)

	switch {
	case opts.hash == "":
		return options{}, fmt.Errorf("%w: --hash", errMissingFlag)
	case opts.jsonPath == "":
		return options{}, fmt.Errorf("%w: --json", errMissingFlag)
	}
	return opts, nil
}
