package usecase

import (
	"context"

	"quotely/internal/domain/entities"
	"quotely/internal/domain/tenancy"
	"quotely/internal/usecase/interfaces"

	"go.uber.org/zap"
)

// ITenantResolverUseCase decides which route tree a host gets.
type ITenantResolverUseCase interface {
	Resolve(ctx context.Context, host interfaces.HostProvider) entities.TenantContext
	ValidateCandidate(ctx context.Context, candidate string) entities.ValidationState
}

type TenantResolverUseCase struct {
	registry interfaces.ITenantRegistry
	logger   *zap.Logger
}

var _ ITenantResolverUseCase = (*TenantResolverUseCase)(nil)

func NewTenantResolverUseCase(registry interfaces.ITenantRegistry, logger *zap.Logger) *TenantResolverUseCase {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &TenantResolverUseCase{registry: registry, logger: logger}
}

// Resolve runs one resolution cycle. Hosts without a candidate become
// NotApplicable without touching the network; otherwise exactly one registry
// lookup is made and any failure is treated as an invalid tenant. No retries.
func (u *TenantResolverUseCase) Resolve(ctx context.Context, host interfaces.HostProvider) entities.TenantContext {
	tc := entities.TenantContext{State: entities.ValidationPending}
	if host != nil {
		tc.Hostname = host.Hostname()
	}

	subdomain, ok := tenancy.ResolveCandidate(tc.Hostname)
	if !ok {
		tc.State = entities.ValidationNotApplicable
		return tc
	}
	tc.Subdomain = subdomain

	tc.State = u.ValidateCandidate(ctx, subdomain)
	if tc.State == entities.ValidationValid {
		tc.Title = entities.DashboardTitle(subdomain)
	}
	return tc
}

// ValidateCandidate makes one registry lookup. Any failure is Invalid.
func (u *TenantResolverUseCase) ValidateCandidate(ctx context.Context, candidate string) entities.ValidationState {
	log := u.logger.With(zap.String("subdomain", candidate))
	if u.registry == nil {
		log.Warn("[tenant][usecase] registry not configured; failing closed")
		return entities.ValidationInvalid
	}

	valid, err := u.registry.CheckSubdomain(ctx, candidate)
	if err != nil {
		log.Warn("[tenant][usecase] subdomain check failed; failing closed", zap.Error(err))
		return entities.ValidationInvalid
	}
	if !valid {
		log.Info("[tenant][usecase] unknown subdomain")
		return entities.ValidationInvalid
	}
	log.Debug("[tenant][usecase] subdomain resolved")
	return entities.ValidationValid
}
