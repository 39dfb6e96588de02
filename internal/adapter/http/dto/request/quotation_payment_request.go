package request

import "encoding/json"

// QuotationPaymentCreateRequest is the wrapped form of the payment route body.
//
// `mp_payload` is forwarded as-is so any Mercado Pago schema is accepted; a bare
// Mercado Pago body without the wrapper is accepted too.
type QuotationPaymentCreateRequest struct {
	MPPayload json.RawMessage `json:"mp_payload"`
}
