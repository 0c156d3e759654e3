package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/ocopmarket/order-gateway/internal/config"
	"github.com/ocopmarket/order-gateway/internal/domain"
	"github.com/ocopmarket/order-gateway/internal/infrastructure/metrics"
	"go.uber.org/zap"
)

// BackendClient is the one HTTP client for the OCOP backend REST API. Every
// call carries the caller's bearer token; a 401 from any endpoint means the
// token is dead and the caller gets sent back to login. No retries, no
// backoff: failed mutations are re-triggered by the user, never by us.
type BackendClient struct {
	baseURL    string
	httpClient *http.Client
	logger     *zap.Logger
	metrics    *metrics.GatewayMetrics
}

func NewBackendClient(cfg config.BackendAPI, logger *zap.Logger, m *metrics.GatewayMetrics) *BackendClient {
	return &BackendClient{
		baseURL: strings.TrimRight(cfg.BaseURL, "/"),
		httpClient: &http.Client{
			Timeout: time.Duration(cfg.TimeoutSeconds) * time.Second,
		},
		logger:  logger,
		metrics: m,
	}
}

type backendError struct {
	Message string `json:"message"`
	Error   string `json:"error"`
}

func (e backendError) text() string {
	if e.Message != "" {
		return e.Message
	}
	return e.Error
}

// do issues one request and maps the response onto the error taxonomy.
// out may be nil for calls whose body we do not care about.
func (c *BackendClient) do(ctx context.Context, method, path, token string, body any, out any) error {
	var reqBody io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("marshal request: %w", err)
		}
		reqBody = bytes.NewBuffer(raw)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reqBody)
	if err != nil {
		return fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	start := time.Now()
	resp, err := c.httpClient.Do(req)
	c.metrics.BackendRequestDuration.WithLabelValues(method + " " + routeLabel(path)).Observe(time.Since(start).Seconds())
	if err != nil {
		c.metrics.BackendErrorsTotal.WithLabelValues("network").Inc()
		return fmt.Errorf("%w: %v", domain.ErrNetwork, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 200 && resp.StatusCode < 300 {
		if out == nil {
			return nil
		}
		if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
			return fmt.Errorf("decode response: %w", err)
		}
		return nil
	}

	raw, _ := io.ReadAll(resp.Body)
	var backendErr backendError
	_ = json.Unmarshal(raw, &backendErr)

	mapped := c.mapStatus(resp.StatusCode, backendErr.text())
	c.logger.Warn("backend call failed",
		zap.String("method", method),
		zap.String("path", path),
		zap.Int("status", resp.StatusCode),
		zap.Error(mapped))
	return mapped
}

func (c *BackendClient) mapStatus(status int, message string) error {
	switch {
	case status == http.StatusUnauthorized:
		c.metrics.BackendErrorsTotal.WithLabelValues("auth_expired").Inc()
		return domain.ErrAuthExpired
	case status == http.StatusForbidden:
		c.metrics.BackendErrorsTotal.WithLabelValues("forbidden").Inc()
		return domain.ErrForbidden
	case status == http.StatusNotFound:
		c.metrics.BackendErrorsTotal.WithLabelValues("not_found").Inc()
		return domain.ErrNotFound
	case status == http.StatusBadRequest:
		c.metrics.BackendErrorsTotal.WithLabelValues("validation").Inc()
		if message != "" {
			return fmt.Errorf("%w: %s", domain.ErrValidation, message)
		}
		return domain.ErrValidation
	default:
		// 5xx and anything unexpected. The raw status never reaches the
		// end user.
		c.metrics.BackendErrorsTotal.WithLabelValues("server").Inc()
		return domain.ErrServer
	}
}

// routeLabel collapses concrete IDs out of the path so the duration metric
// keeps a bounded label set.
func routeLabel(path string) string {
	parts := strings.Split(path, "/")
	for i, p := range parts {
		if p != "" && strings.IndexFunc(p, func(r rune) bool { return r < '0' || r > '9' }) == -1 {
			parts[i] = ":id"
		}
	}
	label := strings.Join(parts, "/")
	if i := strings.Index(label, "?"); i >= 0 {
		label = label[:i]
	}
	return label
}
