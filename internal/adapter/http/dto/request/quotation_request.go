package request

import (
	"strings"

	"quotely/internal/domain/entities"
)

type AddLineRequest struct {
	ProductID string `json:"productId" binding:"required"`
	// Variation is a variation id or, for older records, its size label.
	Variation string `json:"variation" binding:"required"`
}

type QuotationDetailsRequest struct {
	ClientName string `json:"clientName"`
	ClientLogo string `json:"clientLogo"`
	SalesRep   string `json:"salesRep"`
	Notes      string `json:"notes"`
}

func (r QuotationDetailsRequest) ToEntity() entities.QuotationDetails {
	return entities.QuotationDetails{
		ClientName: strings.TrimSpace(r.ClientName),
		ClientLogo: strings.TrimSpace(r.ClientLogo),
		SalesRep:   strings.TrimSpace(r.SalesRep),
		Notes:      strings.TrimSpace(r.Notes),
	}
}

type ExportPDFRequest struct {
	FactoryName string `json:"factoryName"`
}
