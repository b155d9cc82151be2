package upstream

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"time"

	"listing-service/internal/contextkeys"
	"listing-service/internal/core/domain"
	"listing-service/internal/core/port"
)

// Client - адаптер источника объявлений поверх публичного product-style API.
// Выполняет запрос с ограниченным числом повторов и нормализует ответ
// в канонические PropertyItem.
type Client struct {
	url        string
	httpClient *http.Client
	maxRetries int
	random     port.RandomSourcePort
	nowFn      func() time.Time
}

type ClientConfig struct {
	URL        string
	Timeout    time.Duration
	MaxRetries int
}

func NewClient(cfg ClientConfig, random port.RandomSourcePort) *Client {
	if cfg.MaxRetries < 1 {
		cfg.MaxRetries = 1
	}
	return &Client{
		url: cfg.URL,
		httpClient: &http.Client{
			Timeout: cfg.Timeout,
		},
		maxRetries: cfg.MaxRetries,
		random:     random,
		nowFn:      time.Now,
	}
}

// doRequest - внутренний хелпер для выполнения запросов
func (c *Client) doRequest(ctx context.Context) (*http.Response, error) {
	traceID := contextkeys.TraceIDFromContext(ctx)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.url, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	if traceID != "" {
		req.Header.Set("X-Trace-ID", traceID)
	}
	req.Header.Set("Accept", "application/json")

	return c.httpClient.Do(req)
}

// FetchListings запрашивает апстрим и возвращает нормализованные объявления.
// Повторяет запрос с линейным бэкоффом; после исчерпания попыток возвращает
// domain.ErrUpstreamUnavailable, обернутую в причину последней неудачи.
func (c *Client) FetchListings(ctx context.Context) ([]domain.PropertyItem, error) {
	logger := contextkeys.LoggerFromContext(ctx)
	clientLogger := logger.WithFields(port.Fields{
		"component": "UpstreamClient",
		"url":       c.url,
	})

	var lastErr error
	for attempt := 1; attempt <= c.maxRetries; attempt++ {
		body, err := c.fetchOnce(ctx, clientLogger, attempt)
		if err == nil {
			items := normalizeProducts(body, c.random, c.nowFn())
			clientLogger.Info("Upstream fetch succeeded", port.Fields{
				"attempt": attempt, "listings": len(items),
			})
			return items, nil
		}

		lastErr = err
		clientLogger.Warn("Upstream fetch attempt failed", port.Fields{
			"attempt": attempt, "max_retries": c.maxRetries, "error": err.Error(),
		})

		if attempt == c.maxRetries {
			break
		}

		// Линейный бэкофф; отмена контекста прерывает ожидание
		select {
		case <-ctx.Done():
			return nil, fmt.Errorf("upstream fetch cancelled: %w", ctx.Err())
		case <-time.After(time.Duration(attempt) * 500 * time.Millisecond):
		}
	}

	return nil, fmt.Errorf("%w: %v", domain.ErrUpstreamUnavailable, lastErr)
}

func (c *Client) fetchOnce(ctx context.Context, logger port.LoggerPort, attempt int) ([]byte, error) {
	logger.Debug("Sending request to upstream", port.Fields{"attempt": attempt})

	resp, err := c.doRequest(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to perform request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		bodyBytes, _ := io.ReadAll(resp.Body)
		return nil, fmt.Errorf("upstream returned non-success status code %d: %s", resp.StatusCode, string(bodyBytes))
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response body: %w", err)
	}
	return body, nil
}

var _ port.UpstreamSourcePort = (*Client)(nil)
