package routes

import (
	"context"
	"fmt"
	"strconv"

	_ "quotely/docs" // generated by swag init
	"quotely/internal/adapter/http/handlers"
	"quotely/internal/adapter/http/middleware"
	"quotely/internal/adapter/persistence/repository"
	"quotely/internal/infrastructure/config"
	"quotely/internal/infrastructure/database"
	"quotely/internal/infrastructure/payments"
	"quotely/internal/infrastructure/quotelyapi"
	"quotely/internal/usecase"
	"quotely/internal/usecase/interfaces"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.uber.org/zap"
)

// Dependencies are the adapters behind the use cases. Quotations, Payments and
// Gateway may be nil; the matching routes then answer 503.
type Dependencies struct {
	Sessions   interfaces.ISessionStore
	Drafts     interfaces.IDraftStore
	Quotations interfaces.IQuotationRepository
	Payments   interfaces.IQuotationPaymentRepository
	Backend    *quotelyapi.Client
	Gateway    interfaces.IPaymentGateway
}

// Run wires every adapter from cfg and serves until the listener fails.
func Run(cfg config.Config, logger *zap.Logger) error {
	ctx := context.Background()

	deps, closeDeps, err := buildDependencies(ctx, cfg, logger)
	if err != nil {
		return err
	}
	defer closeDeps()

	router := NewRouter(cfg, deps, logger)
	logger.Info("[http][routes] listening", zap.Int("port", cfg.Port))
	if err := router.Run(":" + strconv.Itoa(cfg.Port)); err != nil {
		return fmt.Errorf("failed to startup the application: %w", err)
	}
	return nil
}

// NewRouter builds the gin engine with the session and tenant middlewares in
// front of every /v1 route. Catalog and quotation routes also require a
// confirmed tenant.
func NewRouter(cfg config.Config, deps Dependencies, logger *zap.Logger) *gin.Engine {
	if logger == nil {
		logger = zap.NewNop()
	}

	sessionUseCase := usecase.NewSessionUseCase(deps.Sessions, logger)
	tenantUseCase := usecase.NewTenantResolverUseCase(deps.Backend, logger)
	catalogUseCase := usecase.NewCatalogUseCase(deps.Backend, logger)
	draftUseCase := usecase.NewQuotationDraftUseCase(deps.Drafts, catalogUseCase, deps.Backend, logger)
	quotationUseCase := usecase.NewQuotationUseCase(deps.Quotations, deps.Drafts, logger)
	paymentUseCase := usecase.NewQuotationPaymentUseCase(deps.Payments, deps.Quotations, deps.Gateway, usecase.PaymentOptions{
		MockGateway:    cfg.PaymentGatewayMock,
		TestPayerEmail: cfg.MercadoPagoTestPayerEmail,
	}, logger)

	tenantHandler := handlers.NewTenantHandler(cfg.RootDomainURL)
	sessionHandler := handlers.NewSessionHandler(sessionUseCase)
	productHandler := handlers.NewProductHandler(catalogUseCase)
	draftHandler := handlers.NewQuotationDraftHandler(draftUseCase, logger)
	quotationHandler := handlers.NewQuotationHandler(quotationUseCase)
	paymentHandler := handlers.NewQuotationPaymentHandler(paymentUseCase, logger)

	router := gin.New()
	router.Use(middleware.Recovery(logger))
	router.Use(middleware.RequestLogger(logger))

	// Swagger documentation endpoint
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	v1 := router.Group("/v1")
	addPingRoutes(v1)

	app := v1.Group("",
		middleware.Session(sessionUseCase, middleware.SessionOptions{
			CookieName: cfg.SessionCookie,
			TTL:        cfg.SessionTTL,
			Secure:     cfg.CookieSecure,
		}),
		middleware.ResolveTenant(tenantUseCase, cfg.SessionTTL),
	)
	addStorefrontRoutes(app, tenantHandler, sessionHandler, productHandler)
	addQuotationRoutes(app, draftHandler, quotationHandler, paymentHandler)

	return router
}

func buildDependencies(ctx context.Context, cfg config.Config, logger *zap.Logger) (Dependencies, func(), error) {
	deps := Dependencies{
		Backend: quotelyapi.NewClient(cfg.QuotelyAPIURL, cfg.UpstreamTimeout, logger),
	}
	closeDeps := func() {}

	switch cfg.SessionBackend {
	case config.SessionBackendRedis:
		rdb, err := database.NewRedisClient(ctx, cfg.Redis, logger)
		if err != nil {
			return Dependencies{}, nil, err
		}
		deps.Sessions = repository.NewRedisSessionStore(rdb, cfg.SessionTTL)
		deps.Drafts = repository.NewRedisDraftStore(rdb, cfg.SessionTTL)
		closeDeps = closeRedis(rdb, logger)
	case config.SessionBackendMemory:
		deps.Sessions = repository.NewMemorySessionStore(cfg.SessionTTL)
		deps.Drafts = repository.NewMemoryDraftStore(cfg.SessionTTL)
	default:
		return Dependencies{}, nil, fmt.Errorf("unknown session backend %q", cfg.SessionBackend)
	}

	ddb, err := database.NewDynamoDBClient(ctx, logger)
	if err != nil {
		logger.Warn("[http][routes] dynamodb not configured; saved quotations disabled", zap.Error(err))
	} else {
		deps.Quotations = repository.NewQuotationDynamoRepository(ddb, cfg.QuotationsTable)
		deps.Payments = repository.NewQuotationPaymentDynamoRepository(ddb, cfg.PaymentsTable)
	}

	gateway, err := payments.NewMercadoPagoGateway(cfg.MercadoPagoAccessToken, logger)
	if err != nil {
		logger.Warn("[http][routes] mercado pago gateway not configured", zap.Error(err))
	} else {
		deps.Gateway = gateway
	}

	return deps, closeDeps, nil
}

func closeRedis(rdb *redis.Client, logger *zap.Logger) func() {
	return func() {
		if err := rdb.Close(); err != nil {
			logger.Warn("[http][routes] redis close failed", zap.Error(err))
		}
	}
}
