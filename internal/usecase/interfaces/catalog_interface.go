package interfaces

import (
	"context"
	"io"
	"quotely/internal/domain/entities"
)

// ICatalogClient reads product records from the quotely backend.
type ICatalogClient interface {
	// ListByFactory is the admin-scoped listing; token is forwarded as bearer.
	ListByFactory(ctx context.Context, factoryID, token string) ([]entities.Product, error)
	// ListByShop is the public listing for a tenant storefront.
	ListByShop(ctx context.Context, shopname string) ([]entities.Product, error)
}

// IQuotationRenderer turns a computed quotation into a PDF stream.
type IQuotationRenderer interface {
	GeneratePDF(ctx context.Context, token string, doc entities.QuotationDocument) (io.ReadCloser, error)
}
