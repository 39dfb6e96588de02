package usecase

import (
	"context"
	"errors"
	"strings"
	"time"

	"quotely/internal/domain/entities"
	"quotely/internal/domain/pricing"
	"quotely/internal/usecase/interfaces"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

var (
	ErrQuotationNotFound        = errors.New("quotation not found")
	ErrInvalidQuotationID       = errors.New("invalid quotation id")
	ErrQuotationNotPending      = errors.New("quotation is no longer pending")
	ErrQuotationRepoUnavailable = errors.New("quotation repository not configured")
)

// IQuotationUseCase manages saved (priced, persisted) quotations.
//
//   - SaveDraft snapshots the session draft with its computed totals.
//   - Approve/Reject/Cancel move a pending quotation to its terminal status.
//
// Every operation is scoped to the caller's factory and tenant; status changes
// need an admin session.
type IQuotationUseCase interface {
	SaveDraft(ctx context.Context, sessionID string, session entities.Session, tenant entities.TenantContext) (entities.SavedQuotation, error)
	GetByID(ctx context.Context, session entities.Session, tenant entities.TenantContext, id string) (entities.SavedQuotation, error)
	ApproveByID(ctx context.Context, session entities.Session, tenant entities.TenantContext, id string) (entities.SavedQuotation, error)
	RejectByID(ctx context.Context, session entities.Session, tenant entities.TenantContext, id string) (entities.SavedQuotation, error)
	CancelByID(ctx context.Context, session entities.Session, tenant entities.TenantContext, id string) (entities.SavedQuotation, error)
}

type QuotationUseCase struct {
	repo   interfaces.IQuotationRepository
	drafts interfaces.IDraftStore
	logger *zap.Logger
	now    func() time.Time
}

var _ IQuotationUseCase = (*QuotationUseCase)(nil)

func NewQuotationUseCase(repo interfaces.IQuotationRepository, drafts interfaces.IDraftStore, logger *zap.Logger) *QuotationUseCase {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &QuotationUseCase{repo: repo, drafts: drafts, logger: logger, now: time.Now}
}

func (u *QuotationUseCase) SaveDraft(ctx context.Context, sessionID string, session entities.Session, tenant entities.TenantContext) (entities.SavedQuotation, error) {
	sessionID = strings.TrimSpace(sessionID)
	if sessionID == "" {
		return entities.SavedQuotation{}, ErrInvalidSessionID
	}
	if !session.Authenticated() {
		return entities.SavedQuotation{}, ErrUnauthenticated
	}
	factoryID, err := session.RequireFactoryID()
	if err != nil {
		return entities.SavedQuotation{}, err
	}
	if !session.Can(entities.CapabilitySaveQuotation) {
		return entities.SavedQuotation{}, ErrForbidden
	}
	if u.repo == nil {
		return entities.SavedQuotation{}, ErrQuotationRepoUnavailable
	}

	draft, err := u.drafts.Load(ctx, sessionID)
	if err != nil {
		return entities.SavedQuotation{}, err
	}
	if len(draft.Lines) == 0 {
		return entities.SavedQuotation{}, ErrEmptyQuotation
	}

	b := pricing.Summarize(draft)
	now := u.now().UTC()
	q := entities.SavedQuotation{
		ID:             uuid.NewString(),
		FactoryID:      factoryID,
		Tenant:         tenant.Subdomain,
		Details:        draft.Details,
		Lines:          draft.Lines,
		Subtotal:       b.Subtotal,
		DiscountRate:   b.DiscountRate,
		DiscountAmount: b.DiscountAmount,
		FinalTotal:     b.FinalTotal,
		Status:         entities.QuotationStatusPending,
		CreatedAt:      now,
		UpdatedAt:      now,
	}
	created, err := u.repo.Create(ctx, q)
	if err != nil {
		u.logger.Error("[quotation][usecase] save failed", zap.String("factory_id", factoryID), zap.Error(err))
		return entities.SavedQuotation{}, err
	}
	u.logger.Info("[quotation][usecase] saved",
		zap.String("quotation_id", created.ID),
		zap.String("factory_id", factoryID),
		zap.String("final_total", created.FinalTotal.StringFixed(2)),
	)
	return created, nil
}

func (u *QuotationUseCase) GetByID(ctx context.Context, session entities.Session, tenant entities.TenantContext, id string) (entities.SavedQuotation, error) {
	return ownedQuotation(ctx, u.repo, session, tenant, id)
}

func (u *QuotationUseCase) ApproveByID(ctx context.Context, session entities.Session, tenant entities.TenantContext, id string) (entities.SavedQuotation, error) {
	return u.updateStatusByID(ctx, session, tenant, id, entities.QuotationStatusApproved)
}

func (u *QuotationUseCase) RejectByID(ctx context.Context, session entities.Session, tenant entities.TenantContext, id string) (entities.SavedQuotation, error) {
	return u.updateStatusByID(ctx, session, tenant, id, entities.QuotationStatusRejected)
}

func (u *QuotationUseCase) CancelByID(ctx context.Context, session entities.Session, tenant entities.TenantContext, id string) (entities.SavedQuotation, error) {
	return u.updateStatusByID(ctx, session, tenant, id, entities.QuotationStatusCancelled)
}

func (u *QuotationUseCase) updateStatusByID(ctx context.Context, session entities.Session, tenant entities.TenantContext, id string, status entities.QuotationStatus) (entities.SavedQuotation, error) {
	if strings.TrimSpace(id) == "" {
		return entities.SavedQuotation{}, ErrInvalidQuotationID
	}
	if !session.Authenticated() {
		return entities.SavedQuotation{}, ErrUnauthenticated
	}
	if session.Role() != entities.RoleAdmin {
		return entities.SavedQuotation{}, ErrForbidden
	}

	current, err := ownedQuotation(ctx, u.repo, session, tenant, id)
	if err != nil {
		return entities.SavedQuotation{}, err
	}
	if current.Status != entities.QuotationStatusPending {
		return entities.SavedQuotation{}, ErrQuotationNotPending
	}

	updated, err := u.repo.UpdateStatusByID(ctx, current.ID, status)
	if err != nil {
		return entities.SavedQuotation{}, err
	}
	if updated.ID == "" {
		return entities.SavedQuotation{}, ErrQuotationNotFound
	}
	u.logger.Info("[quotation][usecase] status updated",
		zap.String("quotation_id", updated.ID),
		zap.String("factory_id", updated.FactoryID),
		zap.String("status", string(status)),
	)
	return updated, nil
}
