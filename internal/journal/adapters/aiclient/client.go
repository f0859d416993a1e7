// Package aiclient реализует клиент внешнего сервиса генерации текста (FastAPI).
package aiclient

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"go.uber.org/zap"

	"bookjournal/internal/journal/domain/services"
	svc "bookjournal/internal/journal/ports/services"
	"bookjournal/pkg/logger"
)

// Значения по умолчанию.
const (
	DefaultBaseURL       = "http://localhost:8000"
	DefaultTimeout       = 60 * time.Second
	DefaultHealthTimeout = 3 * time.Second
)

const (
	generatePath = "/api/v1/generate"
	healthPath   = "/api/v1/"

	methodGenerateAnalysis = "GenerateAnalysis"
	methodIsHealthy        = "IsHealthy"

	msgCallingAI       = "calling AI service"
	msgAIResponded     = "AI service responded"
	msgAIUnreachable   = "AI service unreachable"
	msgAIBadResponse   = "AI service returned invalid response"
	msgHealthCheckFail = "AI service health check failed"

	errCtxConnect      = "cannot connect to AI service"
	errCtxNoResponse   = "no valid response from AI service"
	errCtxEncodeBody   = "failed to encode AI request"
	errCtxBuildRequest = "failed to build AI request"
)

// Config - настройки клиента.
type Config struct {
	BaseURL       string
	Timeout       time.Duration
	HealthTimeout time.Duration
}

type generateResponse struct {
	Data *struct {
		Content string `json:"content"`
	} `json:"data"`
}

// Client ходит в FastAPI-сервис генерации анализов. Повторов нет.
type Client struct {
	baseURL       string
	healthTimeout time.Duration
	httpClient    *http.Client
}

// New создает клиента, подставляя значения по умолчанию для пустых полей.
func New(cfg Config) svc.AIClient {
	baseURL := strings.TrimRight(strings.TrimSpace(cfg.BaseURL), "/")
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	healthTimeout := cfg.HealthTimeout
	if healthTimeout <= 0 {
		healthTimeout = DefaultHealthTimeout
	}

	return &Client{
		baseURL:       baseURL,
		healthTimeout: healthTimeout,
		httpClient:    &http.Client{Timeout: timeout},
	}
}

// GenerateAnalysis отправляет запрос на генерацию и возвращает текст анализа.
func (c *Client) GenerateAnalysis(ctx context.Context, req *services.AIAnalysisRequest) (string, error) {
	log := logger.Log(ctx).With(
		zap.String("method", methodGenerateAnalysis),
		zap.String("book_id", req.BookID),
	)

	body, err := json.Marshal(req)
	if err != nil {
		return "", fmt.Errorf("%s: %w: %w", errCtxEncodeBody, services.ErrAIService, err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+generatePath, bytes.NewReader(body))
	if err != nil {
		return "", fmt.Errorf("%s: %w: %w", errCtxBuildRequest, services.ErrAIService, err)
	}
	httpReq.Header.Set("Content-Type", "application/json")
	httpReq.Header.Set("Accept", "application/json")
	if requestID, ok := logger.GetRequestID(ctx); ok {
		httpReq.Header.Set("X-Request-ID", requestID)
	}

	log.Debug(ctx, msgCallingAI, zap.String("url", httpReq.URL.String()))
	start := time.Now()

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		log.Error(ctx, msgAIUnreachable, zap.Error(err))
		return "", fmt.Errorf("%s: %w: %w", errCtxConnect, services.ErrAIService, err)
	}
	defer func() {
		_, _ = io.Copy(io.Discard, resp.Body)
		_ = resp.Body.Close()
	}()

	if resp.StatusCode != http.StatusOK {
		log.Error(ctx, msgAIBadResponse, zap.Int("status", resp.StatusCode))
		return "", fmt.Errorf("%s: %w", errCtxNoResponse, services.ErrAIService)
	}

	var out generateResponse
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		log.Error(ctx, msgAIBadResponse, zap.Error(err))
		return "", fmt.Errorf("%s: %w", errCtxNoResponse, services.ErrAIService)
	}
	if out.Data == nil || out.Data.Content == "" {
		log.Error(ctx, msgAIBadResponse, zap.String("reason", "empty content"))
		return "", fmt.Errorf("%s: %w", errCtxNoResponse, services.ErrAIService)
	}

	log.Info(ctx, msgAIResponded, zap.Duration("elapsed", time.Since(start)))
	return out.Data.Content, nil
}

// IsHealthy проверяет доступность сервиса. Ошибки не возвращаются.
func (c *Client) IsHealthy(ctx context.Context) bool {
	log := logger.Log(ctx).With(zap.String("method", methodIsHealthy))

	ctx, cancel := context.WithTimeout(ctx, c.healthTimeout)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+healthPath, nil)
	if err != nil {
		log.Warn(ctx, msgHealthCheckFail, zap.Error(err))
		return false
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		log.Warn(ctx, msgHealthCheckFail, zap.Error(err))
		return false
	}
	defer func() {
		_, _ = io.Copy(io.Discard, resp.Body)
		_ = resp.Body.Close()
	}()

	if resp.StatusCode != http.StatusOK {
		log.Warn(ctx, msgHealthCheckFail, zap.Int("status", resp.StatusCode))
		return false
	}
	return true
}
