package response

import (
	"time"

	"quotely/internal/domain/entities"
	"quotely/internal/domain/pricing"
	"quotely/internal/usecase"

	"github.com/shopspring/decimal"
)

// Money leaves the service as strings rounded to cents; rates keep two decimals.

type QuotationLineResponse struct {
	Index     int               `json:"index"`
	ProductID string            `json:"productId"`
	Name      string            `json:"name"`
	Unit      string            `json:"unit,omitempty"`
	Image     string            `json:"image,omitempty"`
	MOQ       int               `json:"moq"`
	Increment int               `json:"increment"`
	Variation VariationResponse `json:"variation"`
	Quantity  int               `json:"quantity"`
	Fees      []FeeResponse     `json:"fees"`
	Base      string            `json:"base"`
	FeesTotal string            `json:"feesTotal"`
	LineTotal string            `json:"lineTotal"`
}

type QuotationDetailsResponse struct {
	ClientName string `json:"clientName,omitempty"`
	ClientLogo string `json:"clientLogo,omitempty"`
	SalesRep   string `json:"salesRep,omitempty"`
	Notes      string `json:"notes,omitempty"`
}

type TotalsResponse struct {
	Subtotal       string `json:"subtotal"`
	DiscountRate   string `json:"discountRate"`
	DiscountAmount string `json:"discountAmount"`
	FinalTotal     string `json:"finalTotal"`
}

type DraftResponse struct {
	Lines   []QuotationLineResponse  `json:"lines"`
	Details QuotationDetailsResponse `json:"details"`
	TotalsResponse
}

type SavedQuotationResponse struct {
	ID        string                   `json:"id"`
	FactoryID string                   `json:"factoryId"`
	Tenant    string                   `json:"tenant,omitempty"`
	Status    string                   `json:"status"`
	Lines     []QuotationLineResponse  `json:"lines"`
	Details   QuotationDetailsResponse `json:"details"`
	TotalsResponse
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

func FromDraftView(v usecase.DraftView) DraftResponse {
	return DraftResponse{
		Lines:          fromLines(v.Quotation.Lines, v.Breakdown.Lines),
		Details:        fromDetails(v.Quotation.Details),
		TotalsResponse: fromTotals(v.Breakdown.Subtotal, v.Breakdown.DiscountRate, v.Breakdown.DiscountAmount, v.Breakdown.FinalTotal),
	}
}

// FromSavedQuotation reports the stored totals; line figures are recomputed
// from the stored lines for display only.
func FromSavedQuotation(q entities.SavedQuotation) SavedQuotationResponse {
	b := pricing.Summarize(entities.Quotation{Lines: q.Lines})
	return SavedQuotationResponse{
		ID:             q.ID,
		FactoryID:      q.FactoryID,
		Tenant:         q.Tenant,
		Status:         string(q.Status),
		Lines:          fromLines(q.Lines, b.Lines),
		Details:        fromDetails(q.Details),
		TotalsResponse: fromTotals(q.Subtotal, q.DiscountRate, q.DiscountAmount, q.FinalTotal),
		CreatedAt:      q.CreatedAt,
		UpdatedAt:      q.UpdatedAt,
	}
}

func fromLines(lines []entities.QuotationLine, totals []pricing.LineBreakdown) []QuotationLineResponse {
	out := make([]QuotationLineResponse, 0, len(lines))
	for i, l := range lines {
		row := QuotationLineResponse{
			Index:     i,
			ProductID: l.Product.ID,
			Name:      l.Product.Name,
			Unit:      l.Product.Unit,
			Image:     l.Product.Image,
			MOQ:       l.Product.MOQ,
			Increment: l.Product.Increment,
			Variation: FromVariation(l.SelectedVariation),
			Quantity:  l.Quantity,
			Fees:      FromFees(l.Fees),
		}
		if i < len(totals) {
			row.Base = totals[i].Base.StringFixed(2)
			row.FeesTotal = totals[i].Fees.StringFixed(2)
			row.LineTotal = totals[i].Total.StringFixed(2)
		}
		out = append(out, row)
	}
	return out
}

func fromDetails(d entities.QuotationDetails) QuotationDetailsResponse {
	return QuotationDetailsResponse{ClientName: d.ClientName, ClientLogo: d.ClientLogo, SalesRep: d.SalesRep, Notes: d.Notes}
}

func fromTotals(subtotal, rate, discount, final decimal.Decimal) TotalsResponse {
	return TotalsResponse{
		Subtotal:       subtotal.StringFixed(2),
		DiscountRate:   rate.StringFixed(2),
		DiscountAmount: discount.StringFixed(2),
		FinalTotal:     final.StringFixed(2),
	}
}
