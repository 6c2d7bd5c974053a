package middleware

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAccessLog(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewJSONHandler(&buf, nil))

	h := AccessLog(logger)(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusTeapot)
	}))
	req := httptest.NewRequest(http.MethodGet, "/heartbeat", nil)
	req.RemoteAddr = "10.0.0.7:5123"
	h.ServeHTTP(httptest.NewRecorder(), req)

	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "request served", entry["msg"])
	assert.Equal(t, "/heartbeat", entry["path"])
	assert.Equal(t, float64(http.StatusTeapot), entry["status"])
	assert.Equal(t, "10.0.0.7", entry["client_ip"])
}

func TestClientIP(t *testing.T) {
	tests := []struct {
		name    string
		headers map[string]string
		remote  string
		want    string
	}{
		{"forwarded chain", map[string]string{"X-Forwarded-For": "1.2.3.4, 10.0.0.1"}, "", "1.2.3.4"},
		{"forwarded single", map[string]string{"X-Forwarded-For": " 1.2.3.4 "}, "", "1.2.3.4"},
		{"real ip", map[string]string{"X-Real-IP": "5.6.7.8"}, "", "5.6.7.8"},
		{"remote addr", nil, "9.9.9.9:80", "9.9.9.9"},
		{"ipv6 remote addr", nil, "[::1]:80", "[::1]"},
		{"nothing", nil, "", "unknown"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/", nil)
			req.RemoteAddr = tt.remote
			for k, v := range tt.headers {
				req.Header.Set(k, v)
			}
			assert.Equal(t, tt.want, ClientIP(req))
		})
	}
}
