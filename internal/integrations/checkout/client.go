package checkout

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"
)

const metricsTarget = "checkout"

// Client клиент внешнего checkout-сервиса
type Client struct {
	baseURL    string
	httpClient *http.Client
	log        Logger
	metrics    MetricsRecorder
}

// NewClient создает новый экземпляр клиента checkout-сервиса.
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

// Submit выполняет ровно один POST /api/checkout. Повторов и отмены запроса
// нет: вызов либо завершается ответом сервиса, либо транспортной ошибкой.
func (c *Client) Submit(ctx context.Context, req *Request) (*Result, error) {
	url := fmt.Sprintf("%s/api/checkout", c.baseURL)

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
		c.record(OutcomeTransport, started)
		return nil, fmt.Errorf("%w: failed to execute request: %v", ErrUnavailable, err)
	}
	defer resp.Body.Close()

	// Контракт сервиса: и успех {url}, и отказ {error} приходят JSON-телом.
	// Статус-код вторичен, интерпретация по полям тела.
	var result Result
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		c.record(OutcomeTransport, started)
		raw, _ := io.ReadAll(resp.Body)
		return nil, fmt.Errorf("%w: failed to decode response (status %d): %v %s",
			ErrInvalidResponse, resp.StatusCode, err, string(raw))
	}

	if result.URL != "" {
		c.record(OutcomeOK, started)
	} else {
		c.record(OutcomeRejected, started)
	}
	return &result, nil
}

// Outcome labels
const (
	OutcomeOK        = "ok"
	OutcomeRejected  = "rejected"
	OutcomeTransport = "transport_error"
)

func (c *Client) record(outcome string, started time.Time) {
	if c.metrics == nil {
		return
	}
	c.metrics.RecordOutbound(metricsTarget, outcome, time.Since(started).Seconds())
}
