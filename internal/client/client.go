// Package client обращается к сервису проверки коммитов по HTTP.
package client

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/go-resty/resty/v2"
	"go.uber.org/zap"

	"github.com/KurepinVladimir/provably-fair-verify.git/internal/cryptohelpers"
	"github.com/KurepinVladimir/provably-fair-verify.git/internal/logger"
	"github.com/KurepinVladimir/provably-fair-verify.git/internal/models"
	"github.com/KurepinVladimir/provably-fair-verify.git/internal/retry"
)

const hashHeader = "HashSHA256"

var (
	// ErrRejected — сервер отклонил запрос (4xx), повтор не поможет.
	ErrRejected = errors.New("request rejected by server")
	// ErrBadSignature — подпись ответа не совпала с ключом клиента.
	ErrBadSignature = errors.New("invalid response signature")

	errServer = errors.New("server error")
)

type Client struct {
	http   *resty.Client
	key    string
	delays []time.Duration
}

type Option func(*Client)

// WithKey включает подпись запросов и проверку подписи ответов.
func WithKey(key string) Option {
	return func(c *Client) { c.key = key }
}

// WithDelays задаёт паузы между повторами вместо retry.DefaultDelays.
func WithDelays(delays []time.Duration) Option {
	return func(c *Client) { c.delays = delays }
}

func New(baseURL string, opts ...Option) *Client {
	c := &Client{
		http:   resty.New().SetBaseURL(baseURL).SetTimeout(10 * time.Second),
		delays: retry.DefaultDelays,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Verify отправляет seed, hash и payload на POST /verify и возвращает результат сервера.
// Ошибки транспорта и 5xx повторяются, 4xx возвращается сразу как ErrRejected.
func (c *Client) Verify(ctx context.Context, seed, hash, payload string) (models.VerifyResult, error) {
	body, err := json.Marshal(models.VerifyRequest{Seed: &seed, Hash: &hash, Payload: &payload})
	if err != nil {
		return models.VerifyResult{}, err
	}

	var result models.VerifyResult
	err = retry.DoIf(ctx, c.delays, func(ctx context.Context) error {
		return c.post(ctx, body, &result)
	}, isRetriable)
	if err != nil {
		return models.VerifyResult{}, err
	}
	return result, nil
}

func (c *Client) post(ctx context.Context, body []byte, out *models.VerifyResult) error {
	req := c.http.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(body)
	if c.key != "" {
		req.SetHeader(hashHeader, cryptohelpers.Sign(body, []byte(c.key)))
	}

	resp, err := req.Post("/verify")
	if err != nil {
		logger.Log.Debug("send error", zap.Error(err))
		return err
	}

	switch {
	case resp.StatusCode() >= http.StatusInternalServerError:
		logger.Log.Debug("server returned error", zap.Int("status", resp.StatusCode()), zap.String("body", resp.String()))
		return fmt.Errorf("%w: %s", errServer, resp.Status())
	case resp.IsError():
		return fmt.Errorf("%w: %d %s", ErrRejected, resp.StatusCode(), resp.String())
	}

	if sig := resp.Header().Get(hashHeader); c.key != "" && sig != "" {
		if !cryptohelpers.Compare(resp.Body(), []byte(c.key), sig) {
			return ErrBadSignature
		}
	}

	if err := json.Unmarshal(resp.Body(), out); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}
	return nil
}

// isRetriable: повторяем сетевые ошибки и 5xx, но не 4xx, не отмену и не ошибки разбора.
func isRetriable(err error) bool {
	switch {
	case errors.Is(err, ErrRejected), errors.Is(err, ErrBadSignature):
		return false
	case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
		return false
	case errors.Is(err, errServer):
		return true
	}
	var syntaxErr *json.SyntaxError
	var typeErr *json.UnmarshalTypeError
	if errors.As(err, &syntaxErr) || errors.As(err, &typeErr) {
		return false
	}
	return true
}
