package aiclient_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"bookjournal/internal/journal/adapters/aiclient"
	"bookjournal/internal/journal/domain/services"
	"bookjournal/pkg/logger"
)

func testContext(t *testing.T) context.Context {
	t.Helper()
	testLogger, err := logger.NewLogger(logger.Development, "debug")
	require.NoError(t, err)
	return logger.NewContext(logger.NewRequestIDContext(context.Background(), "req-1"), testLogger)
}

func testRequest() *services.AIAnalysisRequest {
	return &services.AIAnalysisRequest{
		UserID:         "3",
		BookID:         "10",
		BookTitle:      "Dune",
		BookAuthor:     "Herbert",
		Genre:          "FICTION",
		ReadingContent: "spice",
	}
}

func TestGenerateAnalysis(t *testing.T) {
	ctx := testContext(t)

	t.Run("successful generation", func(t *testing.T) {
		var received map[string]string
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, http.MethodPost, r.Method)
			assert.Equal(t, "/api/v1/generate", r.URL.Path)
			assert.Equal(t, "application/json", r.Header.Get("Content-Type"))
			assert.Equal(t, "req-1", r.Header.Get("X-Request-ID"))
			assert.NoError(t, json.NewDecoder(r.Body).Decode(&received))

			w.Header().Set("Content-Type", "application/json")
			_, _ = w.Write([]byte(`{"status":"success","data":{"content":"a deep analysis"}}`))
		}))
		defer server.Close()

		client := aiclient.New(aiclient.Config{BaseURL: server.URL + "/"})

		content, err := client.GenerateAnalysis(ctx, testRequest())

		require.NoError(t, err)
		assert.Equal(t, "a deep analysis", content)
		assert.Equal(t, map[string]string{
			"user_id":         "3",
			"book_id":         "10",
			"book_title":      "Dune",
			"book_author":     "Herbert",
			"genre":           "FICTION",
			"reading_content": "spice",
		}, received)
	})

	invalid := []struct {
		name    string
		status  int
		payload string
	}{
		{name: "non-200 status", status: http.StatusInternalServerError, payload: `{"data":{"content":"x"}}`},
		{name: "malformed body", status: http.StatusOK, payload: `not json`},
		{name: "missing data", status: http.StatusOK, payload: `{"status":"error"}`},
		{name: "empty content", status: http.StatusOK, payload: `{"data":{"content":""}}`},
	}
	for _, tt := range invalid {
		t.Run(tt.name, func(t *testing.T) {
			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
				w.WriteHeader(tt.status)
				_, _ = w.Write([]byte(tt.payload))
			}))
			defer server.Close()

			_, err := aiclient.New(aiclient.Config{BaseURL: server.URL}).GenerateAnalysis(ctx, testRequest())

			require.ErrorIs(t, err, services.ErrAIService)
			assert.Contains(t, err.Error(), "no valid response from AI service")
		})
	}

	t.Run("connection refused", func(t *testing.T) {
		server := httptest.NewServer(http.NotFoundHandler())
		url := server.URL
		server.Close()

		_, err := aiclient.New(aiclient.Config{BaseURL: url}).GenerateAnalysis(ctx, testRequest())

		require.ErrorIs(t, err, services.ErrAIService)
		assert.Contains(t, err.Error(), "cannot connect to AI service")
	})

	t.Run("request timeout", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			time.Sleep(200 * time.Millisecond)
			w.WriteHeader(http.StatusOK)
		}))
		defer server.Close()

		_, err := aiclient.New(aiclient.Config{BaseURL: server.URL, Timeout: 20 * time.Millisecond}).GenerateAnalysis(ctx, testRequest())

		require.ErrorIs(t, err, services.ErrAIService)
		assert.Contains(t, err.Error(), "cannot connect to AI service")
	})
}

func TestIsHealthy(t *testing.T) {
	ctx := testContext(t)

	t.Run("healthy on 200", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, http.MethodGet, r.Method)
			assert.Equal(t, "/api/v1/", r.URL.Path)
			w.WriteHeader(http.StatusOK)
		}))
		defer server.Close()

		assert.True(t, aiclient.New(aiclient.Config{BaseURL: server.URL}).IsHealthy(ctx))
	})

	t.Run("unhealthy on 503", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			w.WriteHeader(http.StatusServiceUnavailable)
		}))
		defer server.Close()

		assert.False(t, aiclient.New(aiclient.Config{BaseURL: server.URL}).IsHealthy(ctx))
	})

	t.Run("unhealthy when unreachable", func(t *testing.T) {
		server := httptest.NewServer(http.NotFoundHandler())
		url := server.URL
		server.Close()

		assert.False(t, aiclient.New(aiclient.Config{BaseURL: url, HealthTimeout: 100 * time.Millisecond}).IsHealthy(ctx))
	})
}
