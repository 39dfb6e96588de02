package usecase

import (
	"context"
	"fmt"
	"io"
	"strings"

	"quotely/internal/domain/entities"
	"quotely/internal/domain/pricing"
	"quotely/internal/usecase/interfaces"

	"go.uber.org/zap"
)

const defaultFactoryName = "My Factory"

// DraftView is a draft together with its freshly computed totals.
type DraftView struct {
	Quotation entities.Quotation
	Breakdown pricing.Breakdown
}

// IQuotationDraftUseCase edits the quotation a session is building.
type IQuotationDraftUseCase interface {
	View(ctx context.Context, sessionID string) (DraftView, error)
	AddLine(ctx context.Context, sessionID string, session entities.Session, tenant entities.TenantContext, productID, variationKey string) (DraftView, error)
	RemoveLine(ctx context.Context, sessionID string, index int) (DraftView, error)
	StepQuantity(ctx context.Context, sessionID string, index int, up bool) (DraftView, error)
	UpdateDetails(ctx context.Context, sessionID string, details entities.QuotationDetails) (DraftView, error)
	Clear(ctx context.Context, sessionID string) error
	ExportPDF(ctx context.Context, sessionID string, session entities.Session, factoryName string) (io.ReadCloser, error)
}

// QuotationDraftUseCase serializes the load-modify-save cycles of each session,
// so two requests of the same session never interleave their edits. Sessions
// do not wait on each other. The lock is per instance.
type QuotationDraftUseCase struct {
	drafts   interfaces.IDraftStore
	catalog  ICatalogUseCase
	renderer interfaces.IQuotationRenderer
	logger   *zap.Logger

	locks sessionLocks
}

var _ IQuotationDraftUseCase = (*QuotationDraftUseCase)(nil)

func NewQuotationDraftUseCase(drafts interfaces.IDraftStore, catalog ICatalogUseCase, renderer interfaces.IQuotationRenderer, logger *zap.Logger) *QuotationDraftUseCase {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &QuotationDraftUseCase{drafts: drafts, catalog: catalog, renderer: renderer, logger: logger}
}

func (u *QuotationDraftUseCase) View(ctx context.Context, sessionID string) (DraftView, error) {
	sessionID = strings.TrimSpace(sessionID)
	if sessionID == "" {
		return DraftView{}, ErrInvalidSessionID
	}
	q, err := u.drafts.Load(ctx, sessionID)
	if err != nil {
		return DraftView{}, err
	}
	return newDraftView(q), nil
}

// AddLine appends the product at its MOQ, then applies the product's own fee
// schedule to the new line.
func (u *QuotationDraftUseCase) AddLine(ctx context.Context, sessionID string, session entities.Session, tenant entities.TenantContext, productID, variationKey string) (DraftView, error) {
	sessionID = strings.TrimSpace(sessionID)
	if sessionID == "" {
		return DraftView{}, ErrInvalidSessionID
	}

	product, err := u.catalog.FindProduct(ctx, session, tenant, productID)
	if err != nil {
		return DraftView{}, err
	}
	variation, ok := product.Variation(strings.TrimSpace(variationKey))
	if !ok {
		return DraftView{}, ErrVariationNotFound
	}

	return u.mutate(ctx, sessionID, func(q entities.Quotation) (entities.Quotation, error) {
		next, err := pricing.AddLine(q, product, variation)
		if err != nil {
			return q, err
		}
		if len(product.Fees) == 0 {
			return next, nil
		}
		return pricing.SetLineFees(next, len(next.Lines)-1, product.Fees)
	})
}

func (u *QuotationDraftUseCase) RemoveLine(ctx context.Context, sessionID string, index int) (DraftView, error) {
	sessionID = strings.TrimSpace(sessionID)
	if sessionID == "" {
		return DraftView{}, ErrInvalidSessionID
	}
	return u.mutate(ctx, sessionID, func(q entities.Quotation) (entities.Quotation, error) {
		return pricing.RemoveLine(q, index)
	})
}

// StepQuantity moves the line quantity one product increment up or down.
func (u *QuotationDraftUseCase) StepQuantity(ctx context.Context, sessionID string, index int, up bool) (DraftView, error) {
	sessionID = strings.TrimSpace(sessionID)
	if sessionID == "" {
		return DraftView{}, ErrInvalidSessionID
	}
	return u.mutate(ctx, sessionID, func(q entities.Quotation) (entities.Quotation, error) {
		if index < 0 || index >= len(q.Lines) {
			return q, fmt.Errorf("%w: %d (lines: %d)", pricing.ErrIndexOutOfRange, index, len(q.Lines))
		}
		delta := q.Lines[index].Product.Increment
		if !up {
			delta = -delta
		}
		return pricing.AdjustLineQuantity(q, index, delta)
	})
}

func (u *QuotationDraftUseCase) UpdateDetails(ctx context.Context, sessionID string, details entities.QuotationDetails) (DraftView, error) {
	sessionID = strings.TrimSpace(sessionID)
	if sessionID == "" {
		return DraftView{}, ErrInvalidSessionID
	}
	return u.mutate(ctx, sessionID, func(q entities.Quotation) (entities.Quotation, error) {
		q.Details = details
		return q, nil
	})
}

func (u *QuotationDraftUseCase) Clear(ctx context.Context, sessionID string) error {
	sessionID = strings.TrimSpace(sessionID)
	if sessionID == "" {
		return ErrInvalidSessionID
	}
	unlock := u.locks.lock(sessionID)
	defer unlock()
	return u.drafts.Clear(ctx, sessionID)
}

// ExportPDF sends the computed draft to the renderer with the session's bearer
// token. The caller owns the returned stream.
func (u *QuotationDraftUseCase) ExportPDF(ctx context.Context, sessionID string, session entities.Session, factoryName string) (io.ReadCloser, error) {
	sessionID = strings.TrimSpace(sessionID)
	if sessionID == "" {
		return nil, ErrInvalidSessionID
	}
	if !session.Authenticated() {
		return nil, ErrUnauthenticated
	}

	q, err := u.drafts.Load(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	if len(q.Lines) == 0 {
		return nil, ErrEmptyQuotation
	}

	factoryName = strings.TrimSpace(factoryName)
	if factoryName == "" {
		factoryName = defaultFactoryName
	}
	doc := BuildDocument(factoryName, q)

	pdf, err := u.renderer.GeneratePDF(ctx, session.RawToken, doc)
	if err != nil {
		u.logger.Warn("[quotation][usecase] pdf generation failed", zap.String("session_id", sessionID), zap.Error(err))
		return nil, fmt.Errorf("%w: %v", ErrUpstreamUnavailable, err)
	}
	u.logger.Info("[quotation][usecase] pdf generated", zap.String("session_id", sessionID), zap.Int("lines", len(q.Lines)))
	return pdf, nil
}

func (u *QuotationDraftUseCase) mutate(ctx context.Context, sessionID string, fn func(entities.Quotation) (entities.Quotation, error)) (DraftView, error) {
	unlock := u.locks.lock(sessionID)
	defer unlock()

	q, err := u.drafts.Load(ctx, sessionID)
	if err != nil {
		return DraftView{}, err
	}
	next, err := fn(q)
	if err != nil {
		return DraftView{}, err
	}
	if err := u.drafts.Save(ctx, sessionID, next); err != nil {
		return DraftView{}, err
	}
	return newDraftView(next), nil
}

func newDraftView(q entities.Quotation) DraftView {
	if q.Lines == nil {
		q.Lines = []entities.QuotationLine{}
	}
	return DraftView{Quotation: q, Breakdown: pricing.Summarize(q)}
}

// BuildDocument computes the data array the PDF renderer expects.
func BuildDocument(factoryName string, q entities.Quotation) entities.QuotationDocument {
	b := pricing.Summarize(q)
	doc := entities.QuotationDocument{
		FactoryName:    factoryName,
		Details:        q.Details,
		Lines:          q.Lines,
		Subtotal:       b.Subtotal,
		DiscountRate:   b.DiscountRate,
		DiscountAmount: b.DiscountAmount,
		FinalTotal:     b.FinalTotal,
	}
	for _, l := range b.Lines {
		doc.LineTotals = append(doc.LineTotals, l.Total)
	}
	return doc
}
