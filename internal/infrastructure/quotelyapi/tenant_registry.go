package quotelyapi

import (
	"context"
	"fmt"
	"strings"

	"quotely/internal/usecase/interfaces"

	"go.uber.org/zap"
)

var _ interfaces.ITenantRegistry = (*Client)(nil)

type checkSubdomainResponse struct {
	Valid *bool `json:"valid"`
}

// CheckSubdomain calls GET /check-subdomain?subdomain=. A body without a
// "valid" field counts as not valid.
func (c *Client) CheckSubdomain(ctx context.Context, subdomain string) (bool, error) {
	resp, err := c.http.R().
		SetContext(ctx).
		SetQueryParam("subdomain", strings.TrimSpace(subdomain)).
		Get("/check-subdomain")
	if err != nil {
		c.logger.Warn("[tenant][client] check-subdomain request failed", zap.String("subdomain", subdomain), zap.Error(err))
		return false, fmt.Errorf("check-subdomain: %w", err)
	}
	if !resp.IsSuccess() {
		c.logger.Warn("[tenant][client] check-subdomain non-2xx", zap.String("subdomain", subdomain), zap.Int("status", resp.StatusCode()))
		return false, statusError(resp)
	}

	var body checkSubdomainResponse
	if err := decodeJSON(resp, &body); err != nil {
		return false, err
	}
	return body.Valid != nil && *body.Valid, nil
}
