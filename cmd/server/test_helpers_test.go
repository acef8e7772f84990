package main

import (
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/phrazzld/flashcards-api/internal/config"
	"github.com/phrazzld/flashcards-api/internal/platform/memory"
)

// newTestConfig returns a valid configuration backed by the memory driver.
func newTestConfig() *config.Config {
	return &config.Config{
		Server: config.ServerConfig{
			Port:                   0,
			LogLevel:               "debug",
			LogFormat:              "json",
			ShutdownTimeoutSeconds: 2,
		},
		Database: config.DatabaseConfig{
			Driver:       config.DriverMemory,
			MaxOpenConns: 1,
		},
		CORS: config.CORSConfig{AllowedOrigins: []string{"*"}},
	}
}

func newTestApp(t *testing.T) *application {
	t.Helper()

	logger := slog.New(slog.NewJSONHandler(io.Discard, nil))
	return &application{
		config:         newTestConfig(),
		logger:         logger,
		flashcardStore: memory.NewFlashcardStore(logger),
	}
}

func newTestServer(t *testing.T) *httptest.Server {
	t.Helper()

	app := newTestApp(t)
	server := httptest.NewServer(app.setupRouter())
	t.Cleanup(func() {
		server.Close()
		app.cleanup()
	})
	return server
}

func sendRequest(t *testing.T, method, url, body string) *http.Response {
	t.Helper()

	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	req, err := http.NewRequest(method, url, reader)
	if err != nil {
		t.Fatalf("failed to build request: %v", err)
	}
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		t.Fatalf("request %s %s failed: %v", method, url, err)
	}
	t.Cleanup(func() { _ = resp.Body.Close() })
	return resp
}
