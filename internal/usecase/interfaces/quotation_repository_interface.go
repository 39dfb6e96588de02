package interfaces

import (
	"context"
	"quotely/internal/domain/entities"
)

// IQuotationRepository abstracts DynamoDB persistence for saved quotations.
//
// Lookups return a zero value (empty ID) and a nil error when nothing matches.
type IQuotationRepository interface {
	Create(ctx context.Context, q entities.SavedQuotation) (entities.SavedQuotation, error)
	GetByID(ctx context.Context, id string) (entities.SavedQuotation, error)
	UpdateStatusByID(ctx context.Context, id string, status entities.QuotationStatus) (entities.SavedQuotation, error)
}
