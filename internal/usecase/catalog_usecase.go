package usecase

import (
	"context"
	"fmt"
	"strings"

	"quotely/internal/domain/entities"
	"quotely/internal/usecase/interfaces"

	"go.uber.org/zap"
)

// CatalogUnavailableNotice is shown instead of the product list when the backend
// cannot be reached.
const CatalogUnavailableNotice = "Products could not be loaded."

// CatalogScope tells which listing produced a ProductListing.
type CatalogScope string

const (
	CatalogScopeFactory CatalogScope = "factory"
	CatalogScopeShop    CatalogScope = "shop"
	CatalogScopeNone    CatalogScope = "none"
)

type ProductListing struct {
	Scope    CatalogScope
	Products []entities.Product
	Notice   string
}

// ICatalogUseCase lists the products visible to a session on a tenant host.
type ICatalogUseCase interface {
	ListProducts(ctx context.Context, session entities.Session, tenant entities.TenantContext) (ProductListing, error)
	FindProduct(ctx context.Context, session entities.Session, tenant entities.TenantContext, productID string) (entities.Product, error)
}

type CatalogUseCase struct {
	client interfaces.ICatalogClient
	logger *zap.Logger
}

var _ ICatalogUseCase = (*CatalogUseCase)(nil)

func NewCatalogUseCase(client interfaces.ICatalogClient, logger *zap.Logger) *CatalogUseCase {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &CatalogUseCase{client: client, logger: logger}
}

// ListProducts uses the admin listing for signed-in sessions and the public shop
// listing otherwise. A signed-in session without a factoryId claim fails with
// *entities.MissingClaimError rather than falling back to an unscoped listing.
// Backend failures yield an empty listing with a notice.
func (u *CatalogUseCase) ListProducts(ctx context.Context, session entities.Session, tenant entities.TenantContext) (ProductListing, error) {
	products, scope, err := u.fetch(ctx, session, tenant)
	if err != nil {
		if isUpstream(err) {
			return ProductListing{Scope: scope, Products: []entities.Product{}, Notice: CatalogUnavailableNotice}, nil
		}
		return ProductListing{}, err
	}
	return ProductListing{Scope: scope, Products: products}, nil
}

// FindProduct looks a product up in the listing the session is allowed to see.
func (u *CatalogUseCase) FindProduct(ctx context.Context, session entities.Session, tenant entities.TenantContext, productID string) (entities.Product, error) {
	productID = strings.TrimSpace(productID)
	if productID == "" {
		return entities.Product{}, ErrProductNotFound
	}
	products, scope, err := u.fetch(ctx, session, tenant)
	if err != nil {
		return entities.Product{}, err
	}
	if scope == CatalogScopeNone {
		return entities.Product{}, ErrTenantRequired
	}
	for _, p := range products {
		if p.ID == productID {
			return p, nil
		}
	}
	return entities.Product{}, ErrProductNotFound
}

// fetch lists nothing unless the host is a confirmed tenant, whoever is signed in.
func (u *CatalogUseCase) fetch(ctx context.Context, session entities.Session, tenant entities.TenantContext) ([]entities.Product, CatalogScope, error) {
	if tenant.State != entities.ValidationValid || !tenant.HasCandidate() {
		return []entities.Product{}, CatalogScopeNone, nil
	}

	if session.Authenticated() {
		factoryID, err := session.RequireFactoryID()
		if err != nil {
			return nil, CatalogScopeFactory, err
		}
		products, err := u.client.ListByFactory(ctx, factoryID, session.RawToken)
		if err != nil {
			u.logger.Warn("[catalog][usecase] factory listing failed", zap.String("factory_id", factoryID), zap.Error(err))
			return nil, CatalogScopeFactory, fmt.Errorf("%w: %v", ErrUpstreamUnavailable, err)
		}
		return nonNil(products), CatalogScopeFactory, nil
	}

	products, err := u.client.ListByShop(ctx, tenant.Subdomain)
	if err != nil {
		u.logger.Warn("[catalog][usecase] shop listing failed", zap.String("shopname", tenant.Subdomain), zap.Error(err))
		return nil, CatalogScopeShop, fmt.Errorf("%w: %v", ErrUpstreamUnavailable, err)
	}
	return nonNil(products), CatalogScopeShop, nil
}

func nonNil(products []entities.Product) []entities.Product {
	if products == nil {
		return []entities.Product{}
	}
	return products
}
