package response

import (
	"time"

	"quotely/internal/domain/entities"
)

type QuotationPaymentResponse struct {
	PaymentID   string    `json:"payment_id"`
	QuotationID string    `json:"quotation_id"`
	Amount      string    `json:"amount"`
	PaymentDate time.Time `json:"payment_date"`
	Status      string    `json:"status"`

	MPPayloadRaw string                 `json:"mp_payload_raw,omitempty"`
	MPPayload    map[string]interface{} `json:"mp_payload,omitempty"`
}

func FromQuotationPayment(p entities.QuotationPayment) QuotationPaymentResponse {
	return QuotationPaymentResponse{
		PaymentID:    p.ID,
		QuotationID:  p.QuotationID,
		Amount:       p.Amount,
		PaymentDate:  p.Date,
		Status:       string(p.Status),
		MPPayloadRaw: string(p.MPPayloadRaw),
		MPPayload:    p.MPPayload,
	}
}
