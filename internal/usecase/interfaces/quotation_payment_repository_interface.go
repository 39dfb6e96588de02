package interfaces

import (
	"context"
	"quotely/internal/domain/entities"
)

// IQuotationPaymentRepository abstracts DynamoDB persistence for QuotationPayment.
type IQuotationPaymentRepository interface {
	Create(ctx context.Context, p entities.QuotationPayment) (entities.QuotationPayment, error)
	GetByID(ctx context.Context, id string) (entities.QuotationPayment, error)
	ListByQuotationID(ctx context.Context, quotationID string) ([]entities.QuotationPayment, error)
}
