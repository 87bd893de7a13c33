package logger

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
)

func TestInitialize(t *testing.T) {
	prev := Log
	t.Cleanup(func() { Log = prev })

	assert.NoError(t, Initialize("debug"))
	assert.True(t, Log.Core().Enabled(zap.DebugLevel))

	assert.Error(t, Initialize("loud"))
}

func TestRequestLogger(t *testing.T) {
	prev := Log
	t.Cleanup(func() { Log = prev })

	core, logs := observer.New(zap.InfoLevel)
	Log = zap.New(core)

	h := RequestLogger(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTeapot)
		_, _ = w.Write([]byte("abc"))
	}))

	req := httptest.NewRequest(http.MethodPost, "/verify", nil)
	w := httptest.NewRecorder()
	h.ServeHTTP(w, req)

	entries := logs.FilterMessage("incoming request").All()
	if assert.Len(t, entries, 1) {
		fields := entries[0].ContextMap()
		assert.Equal(t, "POST", fields["method"])
		assert.Equal(t, "/verify", fields["uri"])
		assert.EqualValues(t, http.StatusTeapot, fields["status"])
		assert.EqualValues(t, 3, fields["size"])
	}
}
