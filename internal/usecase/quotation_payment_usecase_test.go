package usecase

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"quotely/internal/domain/entities"
	"quotely/internal/usecase/interfaces"
	mock_interfaces "quotely/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
)

func approvedQuotation() entities.SavedQuotation {
	return entities.SavedQuotation{ID: "q1", FactoryID: "f-1", Tenant: "acme", Status: entities.QuotationStatusApproved, FinalTotal: dec("4545.004")}
}

func TestQuotationPaymentUseCase_CreateAndApprove_ChargesStoredTotal(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	repo := mock_interfaces.NewMockIQuotationPaymentRepository(ctrl)
	quotations := mock_interfaces.NewMockIQuotationRepository(ctrl)
	gateway := mock_interfaces.NewMockIPaymentGateway(ctrl)
	uc := NewQuotationPaymentUseCase(repo, quotations, gateway, PaymentOptions{}, nil)

	quotations.EXPECT().GetByID(gomock.Any(), "q1").Return(approvedQuotation(), nil)
	gateway.EXPECT().CreatePayment(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, payload json.RawMessage) (interfaces.PaymentResult, error) {
		var m map[string]any
		if err := json.Unmarshal(payload, &m); err != nil {
			t.Fatalf("payload not json: %v", err)
		}
		if m["transaction_amount"] != 4545.0 {
			t.Fatalf("expected stored total, got %v", m["transaction_amount"])
		}
		if m["external_reference"] != "q1" {
			t.Fatalf("unexpected external_reference %v", m["external_reference"])
		}
		return interfaces.PaymentResult{ProviderPaymentID: "mp-1", ProviderStatus: "approved", Response: json.RawMessage(`{"id":"mp-1","status":"approved"}`)}, nil
	})
	repo.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, p entities.QuotationPayment) (entities.QuotationPayment, error) {
		return p, nil
	})

	payload := json.RawMessage(`{"payment_method_id":"pix","transaction_amount":1,"payer":{"email":"a@b.c"}}`)
	got, err := uc.CreateAndApprove(context.Background(), adminSession, validTenant, "q1", payload)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got.ID != "mp-1" || got.Amount != "4545.00" || got.Status != entities.PaymentStatusApproved {
		t.Fatalf("unexpected payment: %+v", got)
	}
}

func TestQuotationPaymentUseCase_CreateAndApprove_Validation(t *testing.T) {
	t.Run("empty quotation id", func(t *testing.T) {
		uc := NewQuotationPaymentUseCase(nil, nil, nil, PaymentOptions{}, nil)
		if _, err := uc.CreateAndApprove(context.Background(), adminSession, validTenant, " ", json.RawMessage(`{}`)); !errors.Is(err, ErrInvalidQuotationID) {
			t.Fatalf("expected ErrInvalidQuotationID, got %v", err)
		}
	})

	t.Run("invalid payload", func(t *testing.T) {
		uc := NewQuotationPaymentUseCase(nil, nil, nil, PaymentOptions{}, nil)
		if _, err := uc.CreateAndApprove(context.Background(), adminSession, validTenant, "q1", json.RawMessage(`{`)); !errors.Is(err, ErrInvalidMPPayload) {
			t.Fatalf("expected ErrInvalidMPPayload, got %v", err)
		}
	})

	t.Run("gateway not configured", func(t *testing.T) {
		uc := NewQuotationPaymentUseCase(nil, nil, nil, PaymentOptions{}, nil)
		if _, err := uc.CreateAndApprove(context.Background(), adminSession, validTenant, "q1", json.RawMessage(`{}`)); !errors.Is(err, ErrPaymentGatewayNotConfigured) {
			t.Fatalf("expected ErrPaymentGatewayNotConfigured, got %v", err)
		}
	})

	t.Run("quotation not approved", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		quotations := mock_interfaces.NewMockIQuotationRepository(ctrl)
		gateway := mock_interfaces.NewMockIPaymentGateway(ctrl)
		uc := NewQuotationPaymentUseCase(nil, quotations, gateway, PaymentOptions{}, nil)

		quotations.EXPECT().GetByID(gomock.Any(), "q1").Return(entities.SavedQuotation{ID: "q1", FactoryID: "f-1", Tenant: "acme", Status: entities.QuotationStatusPending}, nil)

		if _, err := uc.CreateAndApprove(context.Background(), adminSession, validTenant, "q1", json.RawMessage(`{"payment_method_id":"pix"}`)); !errors.Is(err, ErrQuotationNotApproved) {
			t.Fatalf("expected ErrQuotationNotApproved, got %v", err)
		}
	})

	t.Run("quotation not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		quotations := mock_interfaces.NewMockIQuotationRepository(ctrl)
		gateway := mock_interfaces.NewMockIPaymentGateway(ctrl)
		uc := NewQuotationPaymentUseCase(nil, quotations, gateway, PaymentOptions{}, nil)

		quotations.EXPECT().GetByID(gomock.Any(), "q1").Return(entities.SavedQuotation{}, nil)

		if _, err := uc.CreateAndApprove(context.Background(), adminSession, validTenant, "q1", json.RawMessage(`{}`)); !errors.Is(err, ErrQuotationNotFound) {
			t.Fatalf("expected ErrQuotationNotFound, got %v", err)
		}
	})

	t.Run("missing payment method", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		quotations := mock_interfaces.NewMockIQuotationRepository(ctrl)
		gateway := mock_interfaces.NewMockIPaymentGateway(ctrl)
		uc := NewQuotationPaymentUseCase(nil, quotations, gateway, PaymentOptions{}, nil)

		quotations.EXPECT().GetByID(gomock.Any(), "q1").Return(approvedQuotation(), nil)

		if _, err := uc.CreateAndApprove(context.Background(), adminSession, validTenant, "q1", json.RawMessage(`{"payer":{"email":"a@b.c"}}`)); !errors.Is(err, ErrInvalidMPPayload) {
			t.Fatalf("expected ErrInvalidMPPayload, got %v", err)
		}
	})
}

func TestQuotationPaymentUseCase_CreateAndApprove_GatewayErrors(t *testing.T) {
	cases := map[string]struct {
		gatewayErr error
		want       error
	}{
		"bad request":        {errors.New(`mercadopago: {"error":"bad_request","status":400}`), ErrPaymentGatewayBadRequest},
		"unauthorized":       {errors.New(`mercadopago: {"error":"unauthorized","status":401}`), ErrPaymentGatewayUnauthorized},
		"customer not found": {errors.New(`mercadopago: {"message":"Customer not found","code":2002}`), ErrPaymentGatewayCustomerNotFound},
	}

	for name, tc := range cases {
		t.Run(name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()
			quotations := mock_interfaces.NewMockIQuotationRepository(ctrl)
			gateway := mock_interfaces.NewMockIPaymentGateway(ctrl)
			uc := NewQuotationPaymentUseCase(nil, quotations, gateway, PaymentOptions{}, nil)

			quotations.EXPECT().GetByID(gomock.Any(), "q1").Return(approvedQuotation(), nil)
			gateway.EXPECT().CreatePayment(gomock.Any(), gomock.Any()).Return(interfaces.PaymentResult{}, tc.gatewayErr)

			_, err := uc.CreateAndApprove(context.Background(), adminSession, validTenant, "q1", json.RawMessage(`{"payment_method_id":"pix","payer":{"id":"123"}}`))
			if !errors.Is(err, tc.want) {
				t.Fatalf("expected %v, got %v", tc.want, err)
			}
		})
	}
}

func TestQuotationPaymentUseCase_CreateAndApprove_MockMode(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	repo := mock_interfaces.NewMockIQuotationPaymentRepository(ctrl)
	quotations := mock_interfaces.NewMockIQuotationRepository(ctrl)
	uc := NewQuotationPaymentUseCase(repo, quotations, nil, PaymentOptions{MockGateway: true}, nil)

	quotations.EXPECT().GetByID(gomock.Any(), "q1").Return(approvedQuotation(), nil)
	repo.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, p entities.QuotationPayment) (entities.QuotationPayment, error) {
		return p, nil
	})

	got, err := uc.CreateAndApprove(context.Background(), adminSession, validTenant, "q1", nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got.ID == "" || got.Status != entities.PaymentStatusApproved || got.MPPayload["status_detail"] != "accredited" {
		t.Fatalf("unexpected payment: %+v", got)
	}
}

func TestQuotationPaymentUseCase_CreateAndApprove_Access(t *testing.T) {
	t.Run("anonymous", func(t *testing.T) {
		uc := NewQuotationPaymentUseCase(nil, nil, nil, PaymentOptions{MockGateway: true}, nil)
		if _, err := uc.CreateAndApprove(context.Background(), entities.Session{}, validTenant, "q1", nil); !errors.Is(err, ErrUnauthenticated) {
			t.Fatalf("expected ErrUnauthenticated, got %v", err)
		}
	})

	t.Run("other factory", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		quotations := mock_interfaces.NewMockIQuotationRepository(ctrl)
		uc := NewQuotationPaymentUseCase(nil, quotations, nil, PaymentOptions{MockGateway: true}, nil)

		quotations.EXPECT().GetByID(gomock.Any(), "q1").Return(approvedQuotation(), nil)

		if _, err := uc.CreateAndApprove(context.Background(), otherFactorySession, validTenant, "q1", nil); !errors.Is(err, ErrQuotationNotFound) {
			t.Fatalf("expected ErrQuotationNotFound, got %v", err)
		}
	})

	t.Run("customer of the same factory pays", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIQuotationPaymentRepository(ctrl)
		quotations := mock_interfaces.NewMockIQuotationRepository(ctrl)
		uc := NewQuotationPaymentUseCase(repo, quotations, nil, PaymentOptions{MockGateway: true}, nil)

		quotations.EXPECT().GetByID(gomock.Any(), "q1").Return(approvedQuotation(), nil)
		repo.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, p entities.QuotationPayment) (entities.QuotationPayment, error) {
			return p, nil
		})

		if _, err := uc.CreateAndApprove(context.Background(), customerSession, validTenant, "q1", nil); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})
}

func TestQuotationPaymentUseCase_SandboxPayer(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	repo := mock_interfaces.NewMockIQuotationPaymentRepository(ctrl)
	quotations := mock_interfaces.NewMockIQuotationRepository(ctrl)
	gateway := mock_interfaces.NewMockIPaymentGateway(ctrl)
	uc := NewQuotationPaymentUseCase(repo, quotations, gateway, PaymentOptions{TestPayerEmail: " sandbox@test.com "}, nil)

	quotations.EXPECT().GetByID(gomock.Any(), "q1").Return(approvedQuotation(), nil)
	gateway.EXPECT().CreatePayment(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, payload json.RawMessage) (interfaces.PaymentResult, error) {
		var m map[string]any
		if err := json.Unmarshal(payload, &m); err != nil {
			t.Fatalf("payload not json: %v", err)
		}
		payer, _ := m["payer"].(map[string]any)
		if payer["email"] != "sandbox@test.com" || payer["type"] != "customer" {
			t.Fatalf("unexpected payer %v", m["payer"])
		}
		return interfaces.PaymentResult{ProviderPaymentID: "mp-2", ProviderStatus: "pending", Response: json.RawMessage(`{"id":"mp-2"}`)}, nil
	})
	repo.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, p entities.QuotationPayment) (entities.QuotationPayment, error) {
		return p, nil
	})

	got, err := uc.CreateAndApprove(context.Background(), adminSession, validTenant, "q1", json.RawMessage(`{"payment_method_id":"pix"}`))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got.Status != entities.PaymentStatusPending {
		t.Fatalf("unexpected status %s", got.Status)
	}
}

func TestQuotationPaymentUseCase_GetAndList(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	repo := mock_interfaces.NewMockIQuotationPaymentRepository(ctrl)
	quotations := mock_interfaces.NewMockIQuotationRepository(ctrl)
	uc := NewQuotationPaymentUseCase(repo, quotations, nil, PaymentOptions{}, nil)
	ctx := context.Background()

	if _, err := uc.GetByID(ctx, adminSession, validTenant, ""); !errors.Is(err, ErrInvalidPaymentID) {
		t.Fatalf("expected ErrInvalidPaymentID, got %v", err)
	}
	if _, err := uc.GetByID(ctx, entities.Session{}, validTenant, "p1"); !errors.Is(err, ErrUnauthenticated) {
		t.Fatalf("expected ErrUnauthenticated, got %v", err)
	}

	repo.EXPECT().GetByID(gomock.Any(), "p0").Return(entities.QuotationPayment{}, nil)
	if _, err := uc.GetByID(ctx, adminSession, validTenant, "p0"); !errors.Is(err, ErrPaymentNotFound) {
		t.Fatalf("expected ErrPaymentNotFound, got %v", err)
	}

	repo.EXPECT().GetByID(gomock.Any(), "p1").Return(entities.QuotationPayment{ID: "p1", QuotationID: "q1"}, nil).Times(2)
	quotations.EXPECT().GetByID(gomock.Any(), "q1").Return(approvedQuotation(), nil).Times(2)
	if got, err := uc.GetByID(ctx, adminSession, validTenant, "p1"); err != nil || got.ID != "p1" {
		t.Fatalf("unexpected payment %+v err=%v", got, err)
	}
	if _, err := uc.GetByID(ctx, otherFactorySession, validTenant, "p1"); !errors.Is(err, ErrPaymentNotFound) {
		t.Fatalf("expected ErrPaymentNotFound for another factory, got %v", err)
	}

	quotations.EXPECT().GetByID(gomock.Any(), "q1").Return(approvedQuotation(), nil)
	repo.EXPECT().ListByQuotationID(gomock.Any(), "q1").Return([]entities.QuotationPayment{{ID: "p1"}, {ID: "p2"}}, nil)
	list, err := uc.ListByQuotationID(ctx, adminSession, validTenant, "q1")
	if err != nil || len(list) != 2 {
		t.Fatalf("unexpected list %+v err=%v", list, err)
	}

	otherTenant := entities.TenantContext{Hostname: "globex.quotely.shop", Subdomain: "globex", State: entities.ValidationValid}
	quotations.EXPECT().GetByID(gomock.Any(), "q1").Return(approvedQuotation(), nil)
	if _, err := uc.ListByQuotationID(ctx, adminSession, otherTenant, "q1"); !errors.Is(err, ErrQuotationNotFound) {
		t.Fatalf("expected ErrQuotationNotFound on another tenant, got %v", err)
	}
}

func TestQuotationPaymentUseCase_WithoutRepository(t *testing.T) {
	uc := NewQuotationPaymentUseCase(nil, nil, nil, PaymentOptions{}, nil)

	if _, err := uc.GetByID(context.Background(), adminSession, validTenant, "p1"); !errors.Is(err, ErrQuotationRepoUnavailable) {
		t.Fatalf("expected ErrQuotationRepoUnavailable, got %v", err)
	}
	if _, err := uc.ListByQuotationID(context.Background(), adminSession, validTenant, "q1"); !errors.Is(err, ErrQuotationRepoUnavailable) {
		t.Fatalf("expected ErrQuotationRepoUnavailable, got %v", err)
	}
}
