package usecase

import (
	"context"
	"errors"
	"io"
	"strings"
	"testing"
	"time"

	"quotely/internal/domain/entities"
	"quotely/internal/domain/pricing"
	mock_interfaces "quotely/internal/usecase/interfaces/mocks"

	"github.com/shopspring/decimal"
	"go.uber.org/mock/gomock"
)

func dec(s string) decimal.Decimal { return decimal.RequireFromString(s) }

func teeProduct() entities.Product {
	return entities.Product{
		ID:        "p1",
		Name:      "Tee",
		MOQ:       100,
		Increment: 50,
		Variations: []entities.ProductVariation{
			{ID: "v-s", Size: "S", BasePrice: dec("45.00")},
			{ID: "v-l", Size: "L", BasePrice: dec("50.00")},
		},
		Fees: []entities.Fee{{Name: "Setup", Amount: dec("50.00")}},
	}
}

// backDrafts makes the mock store behave like a single in-memory draft.
func backDrafts(store *mock_interfaces.MockIDraftStore, initial entities.Quotation) *entities.Quotation {
	current := initial
	store.EXPECT().Load(gomock.Any(), "sid").DoAndReturn(func(context.Context, string) (entities.Quotation, error) {
		return current, nil
	}).AnyTimes()
	store.EXPECT().Save(gomock.Any(), "sid", gomock.Any()).DoAndReturn(func(_ context.Context, _ string, q entities.Quotation) error {
		current = q
		return nil
	}).AnyTimes()
	return &current
}

func newDraftFixture(t *testing.T) (*QuotationDraftUseCase, *mock_interfaces.MockICatalogClient, *mock_interfaces.MockIDraftStore, *mock_interfaces.MockIQuotationRenderer) {
	t.Helper()
	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)
	client := mock_interfaces.NewMockICatalogClient(ctrl)
	drafts := mock_interfaces.NewMockIDraftStore(ctrl)
	renderer := mock_interfaces.NewMockIQuotationRenderer(ctrl)
	uc := NewQuotationDraftUseCase(drafts, NewCatalogUseCase(client, nil), renderer, nil)
	return uc, client, drafts, renderer
}

func TestQuotationDraftUseCase_AddLine(t *testing.T) {
	uc, client, drafts, _ := newDraftFixture(t)
	state := backDrafts(drafts, entities.Quotation{})
	client.EXPECT().ListByShop(gomock.Any(), "acme").Return([]entities.Product{teeProduct()}, nil)

	view, err := uc.AddLine(context.Background(), "sid", entities.Session{}, validTenant, "p1", "L")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(state.Lines) != 1 {
		t.Fatalf("expected one stored line, got %d", len(state.Lines))
	}
	line := view.Quotation.Lines[0]
	if line.Quantity != 100 || line.SelectedVariation.Size != "L" {
		t.Fatalf("unexpected line: %+v", line)
	}
	if len(line.Fees) != 1 || !line.Fees[0].Amount.Equal(dec("50")) {
		t.Fatalf("expected product fees on the line, got %+v", line.Fees)
	}
	// 100*50 + 50 = 5050 -> 10% -> 4545
	if !view.Breakdown.FinalTotal.Equal(dec("4545")) {
		t.Fatalf("unexpected final total %s", view.Breakdown.FinalTotal)
	}
}

func TestQuotationDraftUseCase_AddLine_UnknownVariation(t *testing.T) {
	uc, client, _, _ := newDraftFixture(t)
	client.EXPECT().ListByShop(gomock.Any(), "acme").Return([]entities.Product{teeProduct()}, nil)

	_, err := uc.AddLine(context.Background(), "sid", entities.Session{}, validTenant, "p1", "XXL")
	if !errors.Is(err, ErrVariationNotFound) {
		t.Fatalf("expected ErrVariationNotFound, got %v", err)
	}
}

func TestQuotationDraftUseCase_AddLine_EmptySessionID(t *testing.T) {
	uc, _, _, _ := newDraftFixture(t)
	if _, err := uc.AddLine(context.Background(), " ", entities.Session{}, validTenant, "p1", "L"); !errors.Is(err, ErrInvalidSessionID) {
		t.Fatalf("expected ErrInvalidSessionID, got %v", err)
	}
}

func TestQuotationDraftUseCase_StepQuantity(t *testing.T) {
	p := teeProduct()
	initial, err := pricing.AddLine(entities.Quotation{}, p, p.Variations[0])
	if err != nil {
		t.Fatalf("setup: %v", err)
	}

	uc, _, drafts, _ := newDraftFixture(t)
	state := backDrafts(drafts, initial)

	if _, err := uc.StepQuantity(context.Background(), "sid", 0, true); err != nil {
		t.Fatalf("step up: %v", err)
	}
	if state.Lines[0].Quantity != 150 {
		t.Fatalf("expected 150, got %d", state.Lines[0].Quantity)
	}

	for i := 0; i < 3; i++ {
		if _, err := uc.StepQuantity(context.Background(), "sid", 0, false); err != nil {
			t.Fatalf("step down: %v", err)
		}
	}
	if state.Lines[0].Quantity != 100 {
		t.Fatalf("expected quantity clamped at moq, got %d", state.Lines[0].Quantity)
	}

	if _, err := uc.StepQuantity(context.Background(), "sid", 3, true); !errors.Is(err, pricing.ErrIndexOutOfRange) {
		t.Fatalf("expected ErrIndexOutOfRange, got %v", err)
	}
}

func TestQuotationDraftUseCase_RemoveLine(t *testing.T) {
	p := teeProduct()
	q, _ := pricing.AddLine(entities.Quotation{}, p, p.Variations[0])
	q, _ = pricing.AddLine(q, p, p.Variations[1])

	uc, _, drafts, _ := newDraftFixture(t)
	state := backDrafts(drafts, q)

	view, err := uc.RemoveLine(context.Background(), "sid", 0)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(view.Quotation.Lines) != 1 || state.Lines[0].SelectedVariation.Size != "L" {
		t.Fatalf("unexpected remaining lines: %+v", state.Lines)
	}
	if _, err := uc.RemoveLine(context.Background(), "sid", 5); !errors.Is(err, pricing.ErrIndexOutOfRange) {
		t.Fatalf("expected ErrIndexOutOfRange, got %v", err)
	}
}

func TestQuotationDraftUseCase_UpdateDetailsAndView(t *testing.T) {
	uc, _, drafts, _ := newDraftFixture(t)
	backDrafts(drafts, entities.Quotation{})

	if _, err := uc.UpdateDetails(context.Background(), "sid", entities.QuotationDetails{ClientName: "ACME"}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	view, err := uc.View(context.Background(), "sid")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if view.Quotation.Details.ClientName != "ACME" {
		t.Fatalf("details not stored: %+v", view.Quotation.Details)
	}
	if view.Quotation.Lines == nil || !view.Breakdown.FinalTotal.IsZero() {
		t.Fatalf("expected empty quotation with zero totals, got %+v", view)
	}
}

func TestQuotationDraftUseCase_SaveFailure(t *testing.T) {
	uc, _, drafts, _ := newDraftFixture(t)
	drafts.EXPECT().Load(gomock.Any(), "sid").Return(entities.Quotation{}, nil)
	drafts.EXPECT().Save(gomock.Any(), "sid", gomock.Any()).Return(errors.New("redis down"))

	if _, err := uc.UpdateDetails(context.Background(), "sid", entities.QuotationDetails{}); err == nil {
		t.Fatalf("expected error")
	}
}

func TestQuotationDraftUseCase_SessionsDoNotBlockEachOther(t *testing.T) {
	uc, _, drafts, _ := newDraftFixture(t)

	release := make(chan struct{})
	loading := make(chan struct{})
	drafts.EXPECT().Load(gomock.Any(), "slow").DoAndReturn(func(context.Context, string) (entities.Quotation, error) {
		close(loading)
		<-release
		return entities.Quotation{}, nil
	})
	drafts.EXPECT().Save(gomock.Any(), "slow", gomock.Any()).Return(nil)
	drafts.EXPECT().Load(gomock.Any(), "fast").Return(entities.Quotation{}, nil)
	drafts.EXPECT().Save(gomock.Any(), "fast", gomock.Any()).Return(nil)

	slowDone := make(chan error, 1)
	go func() {
		_, err := uc.UpdateDetails(context.Background(), "slow", entities.QuotationDetails{})
		slowDone <- err
	}()
	<-loading

	fastDone := make(chan error, 1)
	go func() {
		_, err := uc.UpdateDetails(context.Background(), "fast", entities.QuotationDetails{})
		fastDone <- err
	}()
	select {
	case err := <-fastDone:
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	case <-time.After(time.Second):
		t.Fatalf("edit of another session waited on the slow one")
	}

	close(release)
	if err := <-slowDone; err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestQuotationDraftUseCase_Clear(t *testing.T) {
	uc, _, drafts, _ := newDraftFixture(t)
	drafts.EXPECT().Clear(gomock.Any(), "sid").Return(nil)

	if err := uc.Clear(context.Background(), "sid"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestQuotationDraftUseCase_ExportPDF(t *testing.T) {
	p := teeProduct()
	q, _ := pricing.AddLine(entities.Quotation{}, p, p.Variations[1])

	t.Run("requires authentication", func(t *testing.T) {
		uc, _, _, _ := newDraftFixture(t)
		if _, err := uc.ExportPDF(context.Background(), "sid", entities.Session{}, ""); !errors.Is(err, ErrUnauthenticated) {
			t.Fatalf("expected ErrUnauthenticated, got %v", err)
		}
	})

	t.Run("empty draft", func(t *testing.T) {
		uc, _, drafts, _ := newDraftFixture(t)
		drafts.EXPECT().Load(gomock.Any(), "sid").Return(entities.Quotation{}, nil)
		if _, err := uc.ExportPDF(context.Background(), "sid", adminSession, ""); !errors.Is(err, ErrEmptyQuotation) {
			t.Fatalf("expected ErrEmptyQuotation, got %v", err)
		}
	})

	t.Run("sends computed document with bearer", func(t *testing.T) {
		uc, _, drafts, renderer := newDraftFixture(t)
		drafts.EXPECT().Load(gomock.Any(), "sid").Return(q, nil)
		renderer.EXPECT().GeneratePDF(gomock.Any(), "h.p.s", gomock.Any()).DoAndReturn(
			func(_ context.Context, _ string, doc entities.QuotationDocument) (io.ReadCloser, error) {
				if doc.FactoryName != "My Factory" {
					t.Fatalf("expected default factory name, got %q", doc.FactoryName)
				}
				if len(doc.LineTotals) != 1 || !doc.LineTotals[0].Equal(dec("5000")) {
					t.Fatalf("unexpected line totals: %v", doc.LineTotals)
				}
				if !doc.FinalTotal.Equal(dec("4750")) {
					t.Fatalf("unexpected final total: %s", doc.FinalTotal)
				}
				return io.NopCloser(strings.NewReader("%PDF")), nil
			})

		pdf, err := uc.ExportPDF(context.Background(), "sid", adminSession, "")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		defer pdf.Close()
		body, _ := io.ReadAll(pdf)
		if string(body) != "%PDF" {
			t.Fatalf("unexpected body %q", body)
		}
	})

	t.Run("renderer failure", func(t *testing.T) {
		uc, _, drafts, renderer := newDraftFixture(t)
		drafts.EXPECT().Load(gomock.Any(), "sid").Return(q, nil)
		renderer.EXPECT().GeneratePDF(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil, errors.New("503"))

		if _, err := uc.ExportPDF(context.Background(), "sid", adminSession, "Acme"); !errors.Is(err, ErrUpstreamUnavailable) {
			t.Fatalf("expected ErrUpstreamUnavailable, got %v", err)
		}
	})
}
