package quotelyapi

import (
	"context"
	"fmt"
	"io"

	"quotely/internal/domain/entities"
	"quotely/internal/usecase/interfaces"

	"go.uber.org/zap"
)

var _ interfaces.IQuotationRenderer = (*Client)(nil)

type pdfLine struct {
	entities.Product
	SelectedVariation entities.ProductVariation `json:"selectedVariation"`
	Quantity          int                       `json:"quantity"`
	Fees              []entities.Fee            `json:"fees"`
	LineTotal         string                    `json:"lineTotal"`
}

type pdfSummary struct {
	Subtotal       string `json:"subtotal"`
	DiscountRate   string `json:"discountRate"`
	DiscountAmount string `json:"discountAmount"`
	FinalTotal     string `json:"finalTotal"`
}

type pdfRequest struct {
	FactoryName string                    `json:"factoryName"`
	Data        []pdfLine                 `json:"data"`
	Details     entities.QuotationDetails `json:"details"`
	Summary     pdfSummary                `json:"summary"`
}

func newPDFRequest(doc entities.QuotationDocument) pdfRequest {
	req := pdfRequest{
		FactoryName: doc.FactoryName,
		Data:        make([]pdfLine, 0, len(doc.Lines)),
		Details:     doc.Details,
		Summary: pdfSummary{
			Subtotal:       doc.Subtotal.StringFixed(2),
			DiscountRate:   doc.DiscountRate.String(),
			DiscountAmount: doc.DiscountAmount.StringFixed(2),
			FinalTotal:     doc.FinalTotal.StringFixed(2),
		},
	}
	for i, l := range doc.Lines {
		fees := l.Fees
		if fees == nil {
			fees = []entities.Fee{}
		}
		line := pdfLine{
			Product:           l.Product,
			SelectedVariation: l.SelectedVariation,
			Quantity:          l.Quantity,
			Fees:              fees,
		}
		if i < len(doc.LineTotals) {
			line.LineTotal = doc.LineTotals[i].StringFixed(2)
		}
		req.Data = append(req.Data, line)
	}
	return req
}

// GeneratePDF posts the document to /factory/generate-pdf and returns the raw
// response stream. The caller must close it.
func (c *Client) GeneratePDF(ctx context.Context, token string, doc entities.QuotationDocument) (io.ReadCloser, error) {
	resp, err := c.http.R().
		SetContext(ctx).
		SetAuthToken(token).
		SetHeader("Accept", "application/pdf").
		SetBody(newPDFRequest(doc)).
		SetDoNotParseResponse(true).
		Post("/factory/generate-pdf")
	if err != nil {
		c.logger.Warn("[quotation][client] generate-pdf request failed", zap.Error(err))
		return nil, fmt.Errorf("generate-pdf: %w", err)
	}

	body := resp.RawBody()
	if !resp.IsSuccess() {
		if body != nil {
			_ = body.Close()
		}
		c.logger.Warn("[quotation][client] generate-pdf non-2xx", zap.Int("status", resp.StatusCode()))
		return nil, fmt.Errorf("%w: %d", ErrUnexpectedStatus, resp.StatusCode())
	}
	return body, nil
}
