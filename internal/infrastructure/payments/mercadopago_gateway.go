package payments

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"quotely/internal/usecase/interfaces"

	"github.com/mercadopago/sdk-go/pkg/config"
	"github.com/mercadopago/sdk-go/pkg/payment"
	"go.uber.org/zap"
)

var (
	ErrMissingMercadoPagoAccessToken   = errors.New("missing MERCADOPAGO_ACCESS_TOKEN")
	ErrMercadoPagoGatewayNotConfigured = errors.New("mercado pago gateway not configured")
)

// MercadoPagoGateway charges quotation payments through the Mercado Pago SDK.
type MercadoPagoGateway struct {
	client payment.Client
	logger *zap.Logger
}

var _ interfaces.IPaymentGateway = (*MercadoPagoGateway)(nil)

func NewMercadoPagoGateway(accessToken string, logger *zap.Logger) (*MercadoPagoGateway, error) {
	if logger == nil {
		logger = zap.NewNop()
	}
	if accessToken == "" {
		return nil, ErrMissingMercadoPagoAccessToken
	}
	cfg, err := config.New(accessToken)
	if err != nil {
		logger.Error("[payment][gateway] sdk config failed", zap.Error(err))
		return nil, err
	}
	logger.Info("[payment][gateway] mercado pago client initialized")
	return &MercadoPagoGateway{client: payment.NewClient(cfg), logger: logger}, nil
}

// CreatePayment forwards the enriched payload and returns the provider's view
// of the payment, raw, for persistence.
func (g *MercadoPagoGateway) CreatePayment(ctx context.Context, requestPayload json.RawMessage) (interfaces.PaymentResult, error) {
	if g == nil || g.client == nil {
		return interfaces.PaymentResult{}, ErrMercadoPagoGatewayNotConfigured
	}

	var req payment.Request
	if err := json.Unmarshal(requestPayload, &req); err != nil {
		g.logger.Warn("[payment][gateway] payload unmarshal failed", zap.Error(err))
		return interfaces.PaymentResult{}, err
	}

	resp, err := g.client.Create(ctx, req)
	if err != nil {
		g.logger.Warn("[payment][gateway] sdk create failed", zap.Error(err))
		return interfaces.PaymentResult{}, err
	}
	raw, err := json.Marshal(resp)
	if err != nil {
		return interfaces.PaymentResult{}, err
	}

	id := fmt.Sprintf("%d", resp.ID)
	g.logger.Info("[payment][gateway] payment created",
		zap.String("provider_payment_id", id),
		zap.String("provider_status", resp.Status),
	)
	return interfaces.PaymentResult{ProviderPaymentID: id, ProviderStatus: resp.Status, Response: raw}, nil
}
