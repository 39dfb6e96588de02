package entities

import (
	"time"

	"github.com/shopspring/decimal"
)

// QuotationLine is one product+variation+quantity+fees entry of a draft.
//
// Product is a reference copy; the line does not own the catalog record.
type QuotationLine struct {
	Product           Product          `json:"product"`
	SelectedVariation ProductVariation `json:"selectedVariation"`
	Quantity          int              `json:"quantity"`
	Fees              []Fee            `json:"fees"`
}

// QuotationDetails is the free-form header of a quotation draft.
type QuotationDetails struct {
	ClientName string `json:"clientName,omitempty"`
	ClientLogo string `json:"clientLogo,omitempty"`
	SalesRep   string `json:"salesRep,omitempty"`
	Notes      string `json:"notes,omitempty"`
}

// Quotation is the ephemeral aggregate held in session memory.
//
// Lines keep insertion order. Totals are never stored here; see pricing.Summarize.
type Quotation struct {
	Lines   []QuotationLine  `json:"lines"`
	Details QuotationDetails `json:"details"`
}

// QuotationStatus is the lifecycle of a saved quotation.
type QuotationStatus string

const (
	QuotationStatusPending   QuotationStatus = "pending"
	QuotationStatusApproved  QuotationStatus = "approved"
	QuotationStatusRejected  QuotationStatus = "rejected"
	QuotationStatusCancelled QuotationStatus = "cancelled"
)

// SavedQuotation is a priced snapshot of a draft persisted in DynamoDB.
//
// Storage model (DynamoDB):
//   - PK: id
//
// Monetary fields are the figures computed at snapshot time; they are stored as
// decimal strings and never recomputed from the lines.
type SavedQuotation struct {
	ID             string
	FactoryID      string
	Tenant         string
	Details        QuotationDetails
	Lines          []QuotationLine
	Subtotal       decimal.Decimal
	DiscountRate   decimal.Decimal
	DiscountAmount decimal.Decimal
	FinalTotal     decimal.Decimal
	Status         QuotationStatus
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

// QuotationDocument is the computed payload handed to the PDF renderer.
//
// LineTotals is index-aligned with Lines.
type QuotationDocument struct {
	FactoryName    string
	Details        QuotationDetails
	Lines          []QuotationLine
	LineTotals     []decimal.Decimal
	Subtotal       decimal.Decimal
	DiscountRate   decimal.Decimal
	DiscountAmount decimal.Decimal
	FinalTotal     decimal.Decimal
}
