package interfaces

import (
	"context"
	"encoding/json"
)

// PaymentResult is the provider's answer to a charge. Response is kept verbatim
// and stored next to the payment.
type PaymentResult struct {
	ProviderPaymentID string
	ProviderStatus    string
	Response          json.RawMessage
}

// IPaymentGateway charges a quotation through an external provider (Mercado Pago).
type IPaymentGateway interface {
	CreatePayment(ctx context.Context, requestPayload json.RawMessage) (PaymentResult, error)
}
