// Command verifier проверяет provably-fair коммит: HMAC-SHA256(serverSeed, payload)
// должен совпасть с хэшем, опубликованным до начала игры.
//
// Пример:
//
//	verifier --seed e3c0... --hash f12a... --json game.json
//
// Игра не пересчитывается: проверяется только опубликованный коммит.
// Код выхода 0 — коммит верен, 1 — не совпал или произошла ошибка.
package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"

	"go.uber.org/zap"

	"github.com/KurepinVladimir/provably-fair-verify.git/internal/client"
	"github.com/KurepinVladimir/provably-fair-verify.git/internal/commitment"
	"github.com/KurepinVladimir/provably-fair-verify.git/internal/gamefile"
	"github.com/KurepinVladimir/provably-fair-verify.git/internal/logger"
	"github.com/KurepinVladimir/provably-fair-verify.git/internal/models"
)

const (
	exitValid   = 0
	exitInvalid = 1
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	code := run(ctx, os.Args[1:], os.Stdout, os.Stderr)
	stop()
	os.Exit(code)
}

func run(ctx context.Context, args []string, stdout, stderr io.Writer) int {
	opts, err := parseFlags(args, stderr)
	if err != nil {
		fmt.Fprintln(stderr, err)
		return exitInvalid
	}

	if err := logger.Initialize(opts.logLevel); err != nil {
		fmt.Fprintf(stderr, "invalid log level %q: %v\n", opts.logLevel, err)
		return exitInvalid
	}
	defer logger.Sync()

	if err := commitment.ValidateSeed(opts.seed); err != nil {
		fmt.Fprintf(stderr, "%v: %v\n", gamefile.ErrInput, err)
		return exitInvalid
	}

	// 1. payload из JSON
	payload, err := gamefile.LoadPayload(opts.jsonPath)
	if err != nil {
		logger.Log.Debug("cannot load payload", zap.Error(err))
		fmt.Fprintln(stderr, err)
		return exitInvalid
	}

	// 2-3. вычисляем коммит и сравниваем без учёта регистра
	res, err := verify(ctx, opts, payload)
	if err != nil {
		fmt.Fprintf(stderr, "remote verification failed: %v\n", err)
		return exitInvalid
	}

	// 4. отчёт
	printReport(stdout, res)
	if res.Valid {
		return exitValid
	}
	return exitInvalid
}

func verify(ctx context.Context, opts options, payload string) (models.VerifyResult, error) {
	if opts.serverURL == "" {
		return commitment.Check(opts.seed, payload, opts.hash), nil
	}

	logger.Log.Info("verifying remotely", zap.String("server", opts.serverURL))
	res, err := client.New(opts.serverURL).Verify(ctx, opts.seed, opts.hash, payload)
	if err != nil {
		return models.VerifyResult{}, err
	}
	if res.Payload != payload {
		return models.VerifyResult{}, errors.New("server echoed a different payload")
	}
	return res, nil
}

func printReport(w io.Writer, res models.VerifyResult) {
	result := "INVALID ❌"
	if res.Valid {
		result = "VALID ✅"
	}
	fmt.Fprintln(w, "=== Provably Fair Verification ===")
	fmt.Fprintln(w, "Message :", res.Payload)
	fmt.Fprintln(w, "Computed:", res.Computed)
	fmt.Fprintln(w, "Provided:", res.Provided)
	fmt.Fprintln(w, "Result  :", result)
}
