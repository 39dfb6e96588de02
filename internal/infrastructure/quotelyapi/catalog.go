package quotelyapi

import (
	"context"
	"fmt"

	"quotely/internal/domain/entities"
	"quotely/internal/usecase/interfaces"

	"github.com/go-resty/resty/v2"
	"go.uber.org/zap"
)

var _ interfaces.ICatalogClient = (*Client)(nil)

// ListByFactory calls GET /products?id= with the session bearer token.
func (c *Client) ListByFactory(ctx context.Context, factoryID, token string) ([]entities.Product, error) {
	req := c.http.R().
		SetContext(ctx).
		SetQueryParam("id", factoryID).
		SetAuthToken(token)
	return c.listProducts(req, zap.String("factory_id", factoryID))
}

// ListByShop calls GET /products?shopname= without credentials.
func (c *Client) ListByShop(ctx context.Context, shopname string) ([]entities.Product, error) {
	req := c.http.R().
		SetContext(ctx).
		SetQueryParam("shopname", shopname)
	return c.listProducts(req, zap.String("shopname", shopname))
}

func (c *Client) listProducts(req *resty.Request, scope zap.Field) ([]entities.Product, error) {
	resp, err := req.Get("/products")
	if err != nil {
		c.logger.Warn("[catalog][client] products request failed", scope, zap.Error(err))
		return nil, fmt.Errorf("products: %w", err)
	}
	if !resp.IsSuccess() {
		c.logger.Warn("[catalog][client] products non-2xx", scope, zap.Int("status", resp.StatusCode()))
		return nil, statusError(resp)
	}

	var products []entities.Product
	if err := decodeJSON(resp, &products); err != nil {
		return nil, err
	}
	if products == nil {
		products = []entities.Product{}
	}
	c.logger.Debug("[catalog][client] products loaded", scope, zap.Int("count", len(products)))
	return products, nil
}
