package main

import (
	"bytes"
	"compress/gzip"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/KurepinVladimir/provably-fair-verify.git/internal/cryptohelpers"
	"github.com/KurepinVladimir/provably-fair-verify.git/internal/models"
)

const helloS1 = "9720d0ec2f511dea6650f664740f357853a720f1d3f20d40dddfb00183158db8"

func TestRouter_TableDriven(t *testing.T) {
	const key = "server-key"
	valid := `{"seed":"s1","hash":"` + helloS1 + `","payload":"hello"}`

	tests := []struct {
		name       string
		method     string
		url        string
		body       string
		hash       string
		wantStatus int
	}{
		{"verify unsigned", http.MethodPost, "/verify", valid, "", http.StatusOK},
		{"verify trailing slash", http.MethodPost, "/verify/", valid, "", http.StatusOK},
		{"verify signed", http.MethodPost, "/verify", valid, cryptohelpers.Sign([]byte(valid), []byte(key)), http.StatusOK},
		{"verify bad signature", http.MethodPost, "/verify", valid, "deadbeef", http.StatusBadRequest},
		{"verify missing payload", http.MethodPost, "/verify", `{"seed":"s1","hash":"ab"}`, "", http.StatusBadRequest},
		{"batch", http.MethodPost, "/verify/batch", "[" + valid + "]", "", http.StatusOK},
		{"ping", http.MethodGet, "/ping", "", "", http.StatusOK},
		{"get verify not allowed", http.MethodGet, "/verify", "", "", http.StatusMethodNotAllowed},
		{"unknown route", http.MethodGet, "/verify/history", "", "", http.StatusNotFound},
	}

	r := newRouter(key)
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			req := httptest.NewRequest(tc.method, tc.url, strings.NewReader(tc.body))
			if tc.hash != "" {
				req.Header.Set("HashSHA256", tc.hash)
			}
			w := httptest.NewRecorder()
			r.ServeHTTP(w, req)

			resp := w.Result()
			defer resp.Body.Close()
			assert.Equal(t, tc.wantStatus, resp.StatusCode)
		})
	}
}

func TestRouter_GzipRoundTrip(t *testing.T) {
	var buf bytes.Buffer
	gz := gzip.NewWriter(&buf)
	_, err := gz.Write([]byte(`{"seed":"s1","hash":"` + strings.ToUpper(helloS1) + `","payload":"hello"}`))
	require.NoError(t, err)
	require.NoError(t, gz.Close())

	req := httptest.NewRequest(http.MethodPost, "/verify", &buf)
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Content-Encoding", "gzip")
	req.Header.Set("Accept-Encoding", "gzip")
	w := httptest.NewRecorder()
	newRouter("").ServeHTTP(w, req)

	resp := w.Result()
	defer resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)
	require.Equal(t, "gzip", resp.Header.Get("Content-Encoding"))

	gr, err := gzip.NewReader(resp.Body)
	require.NoError(t, err)
	defer gr.Close()
	body, err := io.ReadAll(gr)
	require.NoError(t, err)

	var res models.VerifyResult
	require.NoError(t, json.Unmarshal(body, &res))
	assert.True(t, res.Valid)
	assert.Equal(t, helloS1, res.Computed)
}
