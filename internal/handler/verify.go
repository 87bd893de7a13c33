package handler

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"

	"go.uber.org/zap"

	"github.com/KurepinVladimir/provably-fair-verify.git/internal/commitment"
	"github.com/KurepinVladimir/provably-fair-verify.git/internal/logger"
	"github.com/KurepinVladimir/provably-fair-verify.git/internal/models"
)

const maxBodySize = 10 << 20 // 10MB

var errMissingField = errors.New("missing field")

// checkRequest проверяет запрос и выполняет проверку коммита.
func checkRequest(req models.VerifyRequest) (models.VerifyResult, error) {
	if req.Seed == nil {
		return models.VerifyResult{}, fmt.Errorf(`%w: "seed"`, errMissingField)
	}
	if err := commitment.ValidateSeed(*req.Seed); err != nil {
		return models.VerifyResult{}, err
	}
	if req.Hash == nil {
		return models.VerifyResult{}, fmt.Errorf(`%w: "hash"`, errMissingField)
	}
	if req.Payload == nil {
		return models.VerifyResult{}, fmt.Errorf(`%w: "payload" (string)`, errMissingField)
	}
	return commitment.Check(*req.Seed, *req.Payload, *req.Hash), nil
}

func requireJSON(w http.ResponseWriter, r *http.Request) bool {
	if ct := r.Header.Get("Content-Type"); ct != "" && ct != "application/json" {
		http.Error(w, "Content-Type must be application/json", http.StatusUnsupportedMediaType)
		return false
	}
	return true
}

// VerifyHandler обрабатывает POST /verify.
// Несовпадение коммита — это обычный ответ 200 с valid=false.
func VerifyHandler(key string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		defer r.Body.Close()
		if !requireJSON(w, r) {
			return
		}

		var req models.VerifyRequest
		if err := json.NewDecoder(io.LimitReader(r.Body, maxBodySize)).Decode(&req); err != nil {
			logger.Log.Debug("cannot decode request JSON body", zap.Error(err))
			http.Error(w, "bad json", http.StatusBadRequest)
			return
		}

		res, err := checkRequest(req)
		if err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		logger.Log.Debug("commitment checked", zap.Bool("valid", res.Valid), zap.String("computed", res.Computed))

		if err := WriteSignedJSONResponse(w, res, key); err != nil {
			logger.Log.Debug("error writing signed response", zap.Error(err))
		}
	}
}

// VerifyBatchHandler обрабатывает POST /verify/batch: массив запросов, ответ в том же порядке.
func VerifyBatchHandler(key string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		defer r.Body.Close()
		if !requireJSON(w, r) {
			return
		}

		var batch []models.VerifyRequest
		if err := json.NewDecoder(io.LimitReader(r.Body, maxBodySize)).Decode(&batch); err != nil {
			http.Error(w, "bad json", http.StatusBadRequest)
			return
		}
		if len(batch) == 0 {
			http.Error(w, "empty batch", http.StatusBadRequest)
			return
		}

		results := make([]models.VerifyResult, 0, len(batch))
		for i, req := range batch {
			res, err := checkRequest(req)
			if err != nil {
				http.Error(w, fmt.Sprintf("item %d: %v", i, err), http.StatusBadRequest)
				return
			}
			results = append(results, res)
		}

		if err := WriteSignedJSONResponse(w, results, key); err != nil {
			logger.Log.Debug("error writing signed response", zap.Error(err))
		}
	}
}

// PingHandler обрабатывает GET /ping.
func PingHandler(w http.ResponseWriter, _ *http.Request) {
	w.WriteHeader(http.StatusOK)
	_, _ = io.WriteString(w, "pong")
}
