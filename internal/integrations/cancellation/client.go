package cancellation

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"
)

const metricsTarget = "cancellation"

// Client клиент внешнего сервиса отмены резерваций
type Client struct {
	baseURL    string
	httpClient *http.Client
	log        Logger
	metrics    MetricsRecorder
}

// NewClient создает новый экземпляр клиента сервиса отмены.
// metrics может быть nil, если сбор метрик выключен.
func NewClient(baseURL string, timeout time.Duration, log Logger, metrics MetricsRecorder) *Client {
	return &Client{
		baseURL: baseURL,
		httpClient: &http.Client{
			Timeout: timeout,
		},
		log:     log,
		metrics: metrics,
	}
}

// Cancel выполняет ровно один POST /api/cancel с токеном резервации.
// Решение о возврате депозита (порог 24 часа) принимает внешний сервис,
// сюда возвращается только человекочитаемый текст результата.
func (c *Client) Cancel(ctx context.Context, req *Request) (*Result, error) {
	url := fmt.Sprintf("%s/api/cancel", c.baseURL)

	body, err := json.Marshal(req)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to marshal request: %v", ErrInternal, err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("%w: failed to create request: %v", ErrInternal, err)
	}
	httpReq.Header.Set("Content-Type", "application/json")

	started := time.Now()
	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		c.record("transport_error", started)
		return nil, fmt.Errorf("%w: failed to execute request: %v", ErrUnavailable, err)
	}
	defer resp.Body.Close()

	var result Result
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		c.record("transport_error", started)
		return nil, fmt.Errorf("%w: failed to decode response (status %d): %v",
			ErrInvalidResponse, resp.StatusCode, err)
	}

	c.record("ok", started)
	return &result, nil
}

func (c *Client) record(outcome string, started time.Time) {
	if c.metrics == nil {
		return
	}
	c.metrics.RecordOutbound(metricsTarget, outcome, time.Since(started).Seconds())
}
