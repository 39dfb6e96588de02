package usecase

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"quotely/internal/domain/entities"
	"quotely/internal/usecase/interfaces"

	"go.uber.org/zap"
)

var (
	ErrPaymentNotFound                = errors.New("quotation payment not found")
	ErrInvalidPaymentID               = errors.New("invalid payment id")
	ErrInvalidMPPayload               = errors.New("invalid mercado pago payload")
	ErrQuotationNotApproved           = errors.New("quotation not approved")
	ErrPaymentGatewayNotConfigured    = errors.New("payment gateway not configured")
	ErrPaymentGatewayBadRequest       = errors.New("payment gateway bad request")
	ErrPaymentGatewayUnauthorized     = errors.New("payment gateway unauthorized")
	ErrPaymentGatewayCustomerNotFound = errors.New("payment gateway customer not found")
)

// IQuotationPaymentUseCase pays approved quotations through the payment gateway.
// Payments are only visible through a quotation the caller owns.
type IQuotationPaymentUseCase interface {
	CreateAndApprove(ctx context.Context, session entities.Session, tenant entities.TenantContext, quotationID string, mpPayload json.RawMessage) (entities.QuotationPayment, error)
	GetByID(ctx context.Context, session entities.Session, tenant entities.TenantContext, id string) (entities.QuotationPayment, error)
	ListByQuotationID(ctx context.Context, session entities.Session, tenant entities.TenantContext, quotationID string) ([]entities.QuotationPayment, error)
}

// PaymentOptions come from config.Config.
type PaymentOptions struct {
	// MockGateway approves every charge locally.
	MockGateway bool
	// TestPayerEmail fills in the payer of sandbox charges that carry none.
	TestPayerEmail string
}

type QuotationPaymentUseCase struct {
	repo          interfaces.IQuotationPaymentRepository
	quotationRepo interfaces.IQuotationRepository
	gateway       interfaces.IPaymentGateway
	opts          PaymentOptions
	logger        *zap.Logger
}

var _ IQuotationPaymentUseCase = (*QuotationPaymentUseCase)(nil)

func NewQuotationPaymentUseCase(repo interfaces.IQuotationPaymentRepository, quotationRepo interfaces.IQuotationRepository, gateway interfaces.IPaymentGateway, opts PaymentOptions, logger *zap.Logger) *QuotationPaymentUseCase {
	if logger == nil {
		logger = zap.NewNop()
	}
	opts.TestPayerEmail = strings.TrimSpace(opts.TestPayerEmail)
	return &QuotationPaymentUseCase{repo: repo, quotationRepo: quotationRepo, gateway: gateway, opts: opts, logger: logger}
}

// CreateAndApprove charges the stored final total of an approved quotation.
// Whatever amount the caller sends is overwritten.
func (u *QuotationPaymentUseCase) CreateAndApprove(ctx context.Context, session entities.Session, tenant entities.TenantContext, quotationID string, mpPayload json.RawMessage) (entities.QuotationPayment, error) {
	mockMode := u.opts.MockGateway
	quotationID = strings.TrimSpace(quotationID)
	log := u.logger.With(zap.String("quotation_id", quotationID))
	log.Info("[payment][usecase] create-and-approve start", zap.Int("payload_len", len(mpPayload)))

	if quotationID == "" {
		return entities.QuotationPayment{}, ErrInvalidQuotationID
	}
	if _, err := callerFactory(session); err != nil {
		return entities.QuotationPayment{}, err
	}
	if len(mpPayload) == 0 || !json.Valid(mpPayload) {
		if !mockMode {
			log.Info("[payment][usecase] invalid payload")
			return entities.QuotationPayment{}, ErrInvalidMPPayload
		}
		mpPayload = json.RawMessage("{}")
	}
	if u.gateway == nil && !mockMode {
		return entities.QuotationPayment{}, ErrPaymentGatewayNotConfigured
	}

	q, err := ownedQuotation(ctx, u.quotationRepo, session, tenant, quotationID)
	if err != nil {
		if !errors.Is(err, ErrQuotationNotFound) && !errors.Is(err, ErrQuotationRepoUnavailable) {
			log.Error("[payment][usecase] failed loading quotation", zap.Error(err))
		}
		return entities.QuotationPayment{}, err
	}
	if q.Status != entities.QuotationStatusApproved {
		log.Info("[payment][usecase] quotation not approved", zap.String("status", string(q.Status)))
		return entities.QuotationPayment{}, ErrQuotationNotApproved
	}

	amount := q.FinalTotal.Round(2)

	var reqMap map[string]any
	if err := json.Unmarshal(mpPayload, &reqMap); err != nil || reqMap == nil {
		if !mockMode {
			return entities.QuotationPayment{}, ErrInvalidMPPayload
		}
		reqMap = map[string]any{}
	}
	if !mockMode && !hasNonEmptyString(reqMap, "payment_method_id") {
		log.Info("[payment][usecase] missing payment_method_id")
		return entities.QuotationPayment{}, ErrInvalidMPPayload
	}
	if !mockMode {
		ensurePayerDefaults(reqMap, u.opts.TestPayerEmail)
		if !hasPayer(reqMap) {
			log.Info("[payment][usecase] missing payer")
			return entities.QuotationPayment{}, ErrInvalidMPPayload
		}
	}
	if _, ok := reqMap["external_reference"]; !ok {
		reqMap["external_reference"] = quotationID
	}
	if _, ok := reqMap["description"]; !ok {
		reqMap["description"] = fmt.Sprintf("Quotation %s", quotationID)
	}
	// The saved quotation is the source of truth for the amount.
	reqMap["transaction_amount"] = amount.InexactFloat64()
	enriched, err := json.Marshal(reqMap)
	if err != nil {
		return entities.QuotationPayment{}, err
	}

	var result interfaces.PaymentResult
	if mockMode {
		log.Info("[payment][usecase] mock mode enabled; skipping payment gateway")
		result.ProviderPaymentID = strconv.FormatInt(time.Now().UTC().UnixNano(), 10)
		result.ProviderStatus = "approved"
		now := time.Now().UTC().Format(time.RFC3339Nano)
		reqMap["id"] = result.ProviderPaymentID
		reqMap["status"] = result.ProviderStatus
		reqMap["status_detail"] = "accredited"
		reqMap["date_created"] = now
		reqMap["date_approved"] = now
		result.Response, err = json.Marshal(reqMap)
		if err != nil {
			return entities.QuotationPayment{}, err
		}
	} else {
		result, err = u.gateway.CreatePayment(ctx, enriched)
		if err != nil {
			log.Warn("[payment][usecase] payment gateway failed", zap.Error(err))
			switch {
			case isGatewayCustomerNotFound(err):
				return entities.QuotationPayment{}, ErrPaymentGatewayCustomerNotFound
			case isGatewayUnauthorized(err):
				return entities.QuotationPayment{}, ErrPaymentGatewayUnauthorized
			case isGatewayBadRequest(err):
				return entities.QuotationPayment{}, ErrPaymentGatewayBadRequest
			}
			return entities.QuotationPayment{}, err
		}
	}
	log.Info("[payment][usecase] payment gateway success",
		zap.String("provider_payment_id", result.ProviderPaymentID),
		zap.String("provider_status", result.ProviderStatus),
	)

	var parsed map[string]interface{}
	if err := json.Unmarshal(result.Response, &parsed); err != nil {
		log.Warn("[payment][usecase] provider response unmarshal failed", zap.Error(err))
	}

	p := entities.QuotationPayment{
		ID:           result.ProviderPaymentID,
		QuotationID:  quotationID,
		Amount:       amount.StringFixed(2),
		Date:         time.Now().UTC(),
		Status:       paymentStatusFromProvider(result.ProviderStatus),
		MPPayloadRaw: result.Response,
		MPPayload:    parsed,
	}

	created, err := u.repo.Create(ctx, p)
	if err != nil {
		log.Error("[payment][usecase] payment repository create failed", zap.String("payment_id", p.ID), zap.Error(err))
		return entities.QuotationPayment{}, err
	}
	log.Info("[payment][usecase] create-and-approve success", zap.String("payment_id", created.ID), zap.String("status", string(created.Status)))
	return created, nil
}

// GetByID returns a payment whose quotation the caller owns.
func (u *QuotationPaymentUseCase) GetByID(ctx context.Context, session entities.Session, tenant entities.TenantContext, id string) (entities.QuotationPayment, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.QuotationPayment{}, ErrInvalidPaymentID
	}
	if _, err := callerFactory(session); err != nil {
		return entities.QuotationPayment{}, err
	}
	if u.repo == nil {
		return entities.QuotationPayment{}, ErrQuotationRepoUnavailable
	}

	p, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return entities.QuotationPayment{}, err
	}
	if p.ID == "" {
		return entities.QuotationPayment{}, ErrPaymentNotFound
	}
	if _, err := ownedQuotation(ctx, u.quotationRepo, session, tenant, p.QuotationID); err != nil {
		if errors.Is(err, ErrQuotationNotFound) || errors.Is(err, ErrInvalidQuotationID) {
			return entities.QuotationPayment{}, ErrPaymentNotFound
		}
		return entities.QuotationPayment{}, err
	}
	return p, nil
}

func (u *QuotationPaymentUseCase) ListByQuotationID(ctx context.Context, session entities.Session, tenant entities.TenantContext, quotationID string) ([]entities.QuotationPayment, error) {
	quotationID = strings.TrimSpace(quotationID)
	if quotationID == "" {
		return nil, ErrInvalidQuotationID
	}
	if u.repo == nil {
		return nil, ErrQuotationRepoUnavailable
	}
	if _, err := ownedQuotation(ctx, u.quotationRepo, session, tenant, quotationID); err != nil {
		return nil, err
	}
	return u.repo.ListByQuotationID(ctx, quotationID)
}

func paymentStatusFromProvider(status string) entities.PaymentStatus {
	switch strings.ToLower(strings.TrimSpace(status)) {
	case "approved", "authorized":
		return entities.PaymentStatusApproved
	case "rejected", "cancelled", "refunded", "charged_back":
		return entities.PaymentStatusDenied
	default:
		return entities.PaymentStatusPending
	}
}

func hasNonEmptyString(m map[string]any, key string) bool {
	v, ok := m[key]
	if !ok {
		return false
	}
	s, ok := v.(string)
	if !ok {
		return false
	}
	return strings.TrimSpace(s) != ""
}

func hasPayer(m map[string]any) bool {
	v, ok := m["payer"]
	if !ok {
		return false
	}
	payer, ok := v.(map[string]any)
	if !ok {
		return false
	}
	return hasNonEmptyString(payer, "email") || hasPayerID(payer)
}

func hasPayerID(payer map[string]any) bool {
	v, ok := payer["id"]
	if !ok || v == nil {
		return false
	}
	s := strings.TrimSpace(fmt.Sprintf("%v", v))
	return s != "" && s != "<nil>"
}

func ensurePayerDefaults(m map[string]any, testPayerEmail string) {
	v, ok := m["payer"]
	if !ok || v == nil {
		v = map[string]any{}
		m["payer"] = v
	}
	payer, ok := v.(map[string]any)
	if !ok {
		return
	}
	if _, ok := payer["type"]; !ok {
		payer["type"] = "customer"
	}
	// Sandbox accounts accept a configured test payer when none was sent.
	if testPayerEmail != "" && !hasPayerID(payer) && !hasNonEmptyString(payer, "email") {
		payer["email"] = testPayerEmail
	}
}

func isGatewayBadRequest(err error) bool {
	msg := strings.ToLower(err.Error())
	return strings.Contains(msg, "\"error\":\"bad_request\"") || strings.Contains(msg, "\"status\":400")
}

func isGatewayUnauthorized(err error) bool {
	msg := strings.ToLower(err.Error())
	return strings.Contains(msg, "\"error\":\"unauthorized\"") || strings.Contains(msg, "\"status\":401")
}

func isGatewayCustomerNotFound(err error) bool {
	msg := strings.ToLower(err.Error())
	return strings.Contains(msg, "customer not found") || strings.Contains(msg, "\"code\":2002")
}
