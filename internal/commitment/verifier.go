// Package commitment проверяет provably-fair коммиты вида HMAC-SHA256(seed, payload).
package commitment

import (
	"errors"

	"github.com/KurepinVladimir/provably-fair-verify.git/internal/cryptohelpers"
	"github.com/KurepinVladimir/provably-fair-verify.git/internal/models"
)

var ErrEmptySeed = errors.New("seed must not be empty")

// Verify возвращает true, если hex(HMAC-SHA256(seed, payload)) совпадает
// с expectedHex без учёта регистра.
func Verify(seed, payload []byte, expectedHex string) bool {
	return cryptohelpers.Compare(payload, seed, expectedHex)
}

// Check выполняет ту же проверку, что и Verify, и возвращает все детали для вывода.
func Check(seed, payload, expectedHex string) models.VerifyResult {
	computed := cryptohelpers.Sign([]byte(payload), []byte(seed))
	return models.VerifyResult{
		Payload:  payload,
		Computed: computed,
		Provided: expectedHex,
		Valid:    cryptohelpers.Compare([]byte(payload), []byte(seed), expectedHex),
	}
}

// ValidateSeed проверяет, что seed не пустой.
func ValidateSeed(seed string) error {
	if seed == "" {
		return ErrEmptySeed
	}
	return nil
}
