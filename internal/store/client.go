package store

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"receipt-insights/internal/models"
)

const (
	defaultTimeout    = 10 * time.Second
	defaultMaxRetries = 2
	retryBackoff      = 250 * time.Millisecond
)

// ClientConfig configures the remote receipt store client
type ClientConfig struct {
	BaseURL    string
	Timeout    time.Duration
	MaxRetries int
}

// Client talks to an upstream receipt store over HTTP. It implements
// ReceiptSource, retries transient failures a bounded number of times and
// reports outcomes to the circuit breaker.
type Client struct {
	baseURL    string
	httpClient *http.Client
	breaker    Breaker
	maxRetries int
}

func NewClient(cfg ClientConfig, breaker Breaker) *Client {
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = defaultTimeout
	}
	maxRetries := cfg.MaxRetries
	if maxRetries < 0 {
		maxRetries = defaultMaxRetries
	}
	return &Client{
		baseURL:    cfg.BaseURL,
		httpClient: &http.Client{Timeout: timeout},
		breaker:    breaker,
		maxRetries: maxRetries,
	}
}

func (c *Client) FetchReceipts(ctx context.Context, offset, limit int) ([]models.Receipt, error) {
	query := url.Values{}
	query.Set("skip", strconv.Itoa(offset))
	query.Set("limit", strconv.Itoa(limit))

	var receipts []models.Receipt
	if err := c.doJSON(ctx, http.MethodGet, "/api/receipts?"+query.Encode(), nil, &receipts); err != nil {
		return nil, err
	}
	return receipts, nil
}

func (c *Client) UpdateReceipt(ctx context.Context, id uint, update *models.ReceiptUpdate) (*models.Receipt, error) {
	var receipt models.Receipt
	path := fmt.Sprintf("/api/receipts/%d", id)
	if err := c.doJSON(ctx, http.MethodPut, path, update, &receipt); err != nil {
		return nil, err
	}
	return &receipt, nil
}

func (c *Client) DeleteReceipt(ctx context.Context, id uint) error {
	path := fmt.Sprintf("/api/receipts/%d", id)
	return c.doJSON(ctx, http.MethodDelete, path, nil, nil)
}

// doJSON performs one store call with bounded retries. Only network
// failures and 5xx responses are retried; 4xx responses are terminal.
func (c *Client) doJSON(ctx context.Context, method, path string, body, out interface{}) error {
	if c.breaker != nil && c.breaker.IsOpen() {
		return ErrCircuitOpen
	}

	var lastErr error
	for attempt := 0; attempt <= c.maxRetries; attempt++ {
		if attempt > 0 {
			select {
			case <-ctx.Done():
				return ctx.Err()
			case <-time.After(retryBackoff * time.Duration(attempt)):
			}
		}

		retryable, err := c.attempt(ctx, method, path, body, out)
		if err == nil {
			c.recordSuccess()
			return nil
		}
		lastErr = err
		if !retryable {
			break
		}
		slog.Warn("receipt store request failed, retrying",
			"method", method,
			"path", path,
			"attempt", attempt+1,
			"error", err)
	}

	c.recordFailure()
	return lastErr
}

func (c *Client) attempt(ctx context.Context, method, path string, body, out interface{}) (retryable bool, err error) {
	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return false, fmt.Errorf("failed to encode request body: %w", err)
		}
		reader = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return false, fmt.Errorf("failed to build store request: %w", err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		if isTimeout(err) {
			return true, fmt.Errorf("%w: %v", ErrStoreTimeout, err)
		}
		return true, fmt.Errorf("%w: %v", ErrStoreUnavailable, err)
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode == http.StatusNotFound:
		return false, ErrReceiptNotFound
	case resp.StatusCode >= 500:
		return true, fmt.Errorf("%w: status %d", ErrStoreUnavailable, resp.StatusCode)
	case resp.StatusCode >= 400:
		return false, fmt.Errorf("%w: status %d", ErrBadResponse, resp.StatusCode)
	}

	if out == nil {
		return false, nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return false, fmt.Errorf("%w: %v", ErrBadResponse, err)
	}
	return false, nil
}

func isTimeout(err error) bool {
	if errors.Is(err, context.DeadlineExceeded) {
		return true
	}
	var netErr net.Error
	return errors.As(err, &netErr) && netErr.Timeout()
}

func (c *Client) recordSuccess() {
	if c.breaker != nil {
		c.breaker.RecordSuccess()
	}
}

func (c *Client) recordFailure() {
	if c.breaker != nil {
		c.breaker.RecordFailure()
	}
}
