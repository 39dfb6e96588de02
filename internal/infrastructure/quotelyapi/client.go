// Package quotelyapi talks to the quotely REST backend: subdomain checks,
// product listings and PDF generation.
package quotelyapi

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/go-resty/resty/v2"
	"go.uber.org/zap"
)

var (
	ErrUnexpectedStatus = errors.New("quotely api: unexpected status")
	ErrMalformedBody    = errors.New("quotely api: malformed response body")
)

// Client is safe for concurrent use. Requests are never retried.
type Client struct {
	http   *resty.Client
	logger *zap.Logger
}

func NewClient(baseURL string, timeout time.Duration, logger *zap.Logger) *Client {
	if logger == nil {
		logger = zap.NewNop()
	}
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	http := resty.New().
		SetBaseURL(strings.TrimRight(baseURL, "/")).
		SetTimeout(timeout).
		SetHeader("Accept", "application/json")
	return &Client{http: http, logger: logger}
}

func statusError(resp *resty.Response) error {
	body := strings.TrimSpace(string(resp.Body()))
	if len(body) > 256 {
		body = body[:256]
	}
	return fmt.Errorf("%w: %d %s", ErrUnexpectedStatus, resp.StatusCode(), body)
}

func decodeJSON(resp *resty.Response, out any) error {
	if err := json.Unmarshal(resp.Body(), out); err != nil {
		return fmt.Errorf("%w: %v", ErrMalformedBody, err)
	}
	return nil
}
