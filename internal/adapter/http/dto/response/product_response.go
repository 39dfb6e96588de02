package response

import (
	"quotely/internal/domain/entities"
	"quotely/internal/usecase"
)

type VariationResponse struct {
	ID        string `json:"id,omitempty"`
	Size      string `json:"size"`
	BasePrice string `json:"basePrice"`
}

type FeeResponse struct {
	Name   string `json:"name"`
	Amount string `json:"amount"`
}

type ProductResponse struct {
	ID          string              `json:"id"`
	Name        string              `json:"name"`
	Description string              `json:"description,omitempty"`
	Category    string              `json:"category,omitempty"`
	LeadTime    string              `json:"leadTime,omitempty"`
	Unit        string              `json:"unit,omitempty"`
	Image       string              `json:"image,omitempty"`
	MOQ         int                 `json:"moq"`
	Increment   int                 `json:"increment"`
	Variations  []VariationResponse `json:"variations"`
	Fees        []FeeResponse       `json:"fees"`
}

type ProductListingResponse struct {
	Scope    string            `json:"scope"`
	Products []ProductResponse `json:"products"`
	Notice   string            `json:"notice,omitempty"`
}

func FromVariation(v entities.ProductVariation) VariationResponse {
	return VariationResponse{ID: v.ID, Size: v.Size, BasePrice: v.BasePrice.StringFixed(2)}
}

func FromFees(fees []entities.Fee) []FeeResponse {
	out := make([]FeeResponse, 0, len(fees))
	for _, f := range fees {
		out = append(out, FeeResponse{Name: f.Name, Amount: f.Amount.StringFixed(2)})
	}
	return out
}

func FromProduct(p entities.Product) ProductResponse {
	res := ProductResponse{
		ID:          p.ID,
		Name:        p.Name,
		Description: p.Description,
		Category:    p.Category,
		LeadTime:    p.LeadTime,
		Unit:        p.Unit,
		Image:       p.Image,
		MOQ:         p.MOQ,
		Increment:   p.Increment,
		Variations:  make([]VariationResponse, 0, len(p.Variations)),
		Fees:        FromFees(p.Fees),
	}
	for _, v := range p.Variations {
		res.Variations = append(res.Variations, FromVariation(v))
	}
	return res
}

func FromProductListing(l usecase.ProductListing) ProductListingResponse {
	res := ProductListingResponse{
		Scope:    string(l.Scope),
		Products: make([]ProductResponse, 0, len(l.Products)),
		Notice:   l.Notice,
	}
	for _, p := range l.Products {
		res.Products = append(res.Products, FromProduct(p))
	}
	return res
}
