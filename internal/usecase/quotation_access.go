package usecase

import (
	"context"
	"strings"

	"quotely/internal/domain/entities"
	"quotely/internal/usecase/interfaces"
)

// callerFactory returns the factory a signed-in session acts for.
func callerFactory(session entities.Session) (string, error) {
	if !session.Authenticated() {
		return "", ErrUnauthenticated
	}
	return session.RequireFactoryID()
}

// ownedQuotation loads a saved quotation visible to the caller. A quotation of
// another factory or another tenant reads as not found.
func ownedQuotation(ctx context.Context, repo interfaces.IQuotationRepository, session entities.Session, tenant entities.TenantContext, id string) (entities.SavedQuotation, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.SavedQuotation{}, ErrInvalidQuotationID
	}
	factoryID, err := callerFactory(session)
	if err != nil {
		return entities.SavedQuotation{}, err
	}
	if repo == nil {
		return entities.SavedQuotation{}, ErrQuotationRepoUnavailable
	}

	q, err := repo.GetByID(ctx, id)
	if err != nil {
		return entities.SavedQuotation{}, err
	}
	if q.ID == "" || q.FactoryID != factoryID || q.Tenant != tenant.Subdomain {
		return entities.SavedQuotation{}, ErrQuotationNotFound
	}
	return q, nil
}
