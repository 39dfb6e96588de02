package interfaces

import (
	"context"
	"quotely/internal/domain/entities"
)

// IDraftStore keeps the in-progress quotation of a session.
//
// Load returns an empty quotation when the session has no draft.
type IDraftStore interface {
	Load(ctx context.Context, sessionID string) (entities.Quotation, error)
	Save(ctx context.Context, sessionID string, q entities.Quotation) error
	Clear(ctx context.Context, sessionID string) error
}
