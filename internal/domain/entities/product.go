package entities

import "github.com/shopspring/decimal"

// ProductVariation is a purchasable size option with its own base price.
type ProductVariation struct {
	ID        string          `json:"_id,omitempty"`
	Size      string          `json:"size"`
	BasePrice decimal.Decimal `json:"basePrice"`
}

// Fee is a flat add-on charged once per quotation line, never per unit.
type Fee struct {
	Name   string          `json:"name"`
	Amount decimal.Decimal `json:"amount"`
}

// Product is a catalog record as served by the quotely REST backend.
//
// The pricing engine only reads MOQ, Increment, Variations and Fees; the rest is
// carried through so the shell can render it.
type Product struct {
	ID          string             `json:"_id"`
	FactoryID   string             `json:"factoryId,omitempty"`
	Name        string             `json:"name"`
	Description string             `json:"description,omitempty"`
	Category    string             `json:"category,omitempty"`
	LeadTime    string             `json:"leadTime,omitempty"`
	Unit        string             `json:"unit,omitempty"`
	Image       string             `json:"image,omitempty"`
	MOQ         int                `json:"moq"`
	Increment   int                `json:"increment"`
	Variations  []ProductVariation `json:"variations"`
	Fees        []Fee              `json:"fees,omitempty"`
}

// Variation looks up a variation by id, falling back to size for records that
// were created before variations carried ids.
func (p Product) Variation(key string) (ProductVariation, bool) {
	for _, v := range p.Variations {
		if v.ID != "" && v.ID == key {
			return v, true
		}
	}
	for _, v := range p.Variations {
		if v.Size == key {
			return v, true
		}
	}
	return ProductVariation{}, false
}
