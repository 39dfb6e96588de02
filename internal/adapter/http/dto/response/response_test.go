package response

import (
	"encoding/json"
	"testing"
	"time"

	"quotely/internal/domain/entities"
	"quotely/internal/domain/pricing"
	"quotely/internal/usecase"

	"github.com/shopspring/decimal"
)

func TestFromTenantContext(t *testing.T) {
	valid := FromTenantContext(entities.TenantContext{Hostname: "acme.quotely.shop", Subdomain: "acme", State: entities.ValidationValid, Title: "acme - Dashboard"}, "https://quotely.shop")
	if valid.View != "tenant-dashboard" || valid.Title != "acme - Dashboard" || valid.RecoveryURL != "" || valid.PublicRoutes != nil {
		t.Fatalf("unexpected valid response: %+v", valid)
	}

	invalid := FromTenantContext(entities.TenantContext{Hostname: "nope.quotely.shop", Subdomain: "nope", State: entities.ValidationInvalid}, "https://quotely.shop")
	if invalid.View != "invalid-tenant" || invalid.RecoveryURL != "https://quotely.shop" {
		t.Fatalf("unexpected invalid response: %+v", invalid)
	}

	public := FromTenantContext(entities.TenantContext{Hostname: "localhost", State: entities.ValidationNotApplicable}, "https://quotely.shop")
	if public.View != "public" || len(public.PublicRoutes) != 6 || public.PublicRoutes[0] != "/" {
		t.Fatalf("unexpected public response: %+v", public)
	}
}

func TestFromSession(t *testing.T) {
	anon := FromSession(entities.Session{Notice: "signed out"})
	if anon.Authenticated || anon.Role != "customer" || len(anon.Capabilities) != 2 || anon.Notice != "signed out" {
		t.Fatalf("unexpected anonymous session: %+v", anon)
	}

	admin := FromSession(entities.Session{Claims: &entities.Claims{FactoryID: "f-1", Role: entities.RoleAdmin, Email: "a@b.c"}})
	if !admin.Authenticated || admin.Role != "admin" || admin.FactoryID != "f-1" || admin.Email != "a@b.c" {
		t.Fatalf("unexpected admin session: %+v", admin)
	}
	for _, c := range admin.Capabilities {
		if c == string(entities.CapabilityBrowseProducts) {
			t.Fatalf("admin must not carry customer capabilities: %v", admin.Capabilities)
		}
	}
}

func TestFromProductListing(t *testing.T) {
	res := FromProductListing(usecase.ProductListing{
		Scope: usecase.CatalogScopeShop,
		Products: []entities.Product{{
			ID: "p1", Name: "Tee", MOQ: 100, Increment: 50,
			Variations: []entities.ProductVariation{{Size: "L", BasePrice: decimal.RequireFromString("49.5")}},
		}},
	})
	if res.Scope != "shop" || len(res.Products) != 1 {
		t.Fatalf("unexpected listing: %+v", res)
	}
	p := res.Products[0]
	if p.Variations[0].BasePrice != "49.50" || p.Fees == nil {
		t.Fatalf("unexpected product: %+v", p)
	}

	empty := FromProductListing(usecase.ProductListing{Scope: usecase.CatalogScopeNone})
	b, _ := json.Marshal(empty)
	if string(b) != `{"scope":"none","products":[]}` {
		t.Fatalf("unexpected empty listing json: %s", b)
	}
}

func TestFromDraftView(t *testing.T) {
	q := entities.Quotation{Lines: []entities.QuotationLine{{
		Product:           entities.Product{ID: "p1", Name: "Tee", MOQ: 100, Increment: 50},
		SelectedVariation: entities.ProductVariation{Size: "L", BasePrice: decimal.NewFromInt(50)},
		Quantity:          100,
		Fees:              []entities.Fee{{Name: "Setup", Amount: decimal.NewFromInt(50)}},
	}}}
	res := FromDraftView(usecase.DraftView{Quotation: q, Breakdown: pricing.Summarize(q)})

	if len(res.Lines) != 1 {
		t.Fatalf("expected one line, got %d", len(res.Lines))
	}
	l := res.Lines[0]
	if l.Base != "5000.00" || l.FeesTotal != "50.00" || l.LineTotal != "5050.00" {
		t.Fatalf("unexpected line figures: %+v", l)
	}
	if res.Subtotal != "5050.00" || res.DiscountRate != "0.10" || res.DiscountAmount != "505.00" || res.FinalTotal != "4545.00" {
		t.Fatalf("unexpected totals: %+v", res.TotalsResponse)
	}
}

func TestFromSavedQuotation_UsesStoredTotals(t *testing.T) {
	now := time.Now().UTC()
	res := FromSavedQuotation(entities.SavedQuotation{
		ID:         "q1",
		FactoryID:  "f-1",
		Status:     entities.QuotationStatusApproved,
		Subtotal:   decimal.RequireFromString("100.005"),
		FinalTotal: decimal.RequireFromString("100.005"),
		CreatedAt:  now,
	})
	if res.ID != "q1" || res.Status != "approved" || res.Subtotal != "100.01" || res.FinalTotal != "100.01" {
		t.Fatalf("unexpected saved quotation: %+v", res)
	}
	if res.Lines == nil || !res.CreatedAt.Equal(now) {
		t.Fatalf("unexpected fields: %+v", res)
	}
}

func TestFromQuotationPayment(t *testing.T) {
	now := time.Now().UTC()
	raw := json.RawMessage(`{"id":123}`)

	res := FromQuotationPayment(entities.QuotationPayment{
		ID:           "pay-1",
		QuotationID:  "q-1",
		Amount:       "4545.00",
		Date:         now,
		Status:       entities.PaymentStatusApproved,
		MPPayloadRaw: raw,
		MPPayload:    map[string]interface{}{"a": "b"},
	})
	if res.PaymentID != "pay-1" || res.QuotationID != "q-1" || res.Amount != "4545.00" || res.Status != "approved" {
		t.Fatalf("unexpected fields: %+v", res)
	}
	if !res.PaymentDate.Equal(now) || res.MPPayloadRaw != string(raw) || res.MPPayload["a"] != "b" {
		t.Fatalf("unexpected payload: %+v", res)
	}
}
