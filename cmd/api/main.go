package main

import (
	_ "quotely/docs"
	"quotely/internal/adapter/http/routes"
	"quotely/internal/infrastructure/config"
	"quotely/internal/infrastructure/logger"

	_ "github.com/joho/godotenv/autoload"
	"go.uber.org/zap"
)

// @title           Quotely Storefront API
// @version         1.0
// @description     Tenant storefront backend: subdomain resolution, sessions, catalog and quotation pricing.
// @termsOfService  http://swagger.io/terms/

// @contact.name   API Support
// @contact.url    http://www.swagger.io/support
// @contact.email  support@swagger.io

// @license.name  Apache 2.0
// @license.url   http://www.apache.org/licenses/LICENSE-2.0.html

// @host localhost:8080

// @BasePath  /v1

// @securityDefinitions.apikey Bearer
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and JWT token.

func main() {
	log := logger.MustNew()
	defer func() { _ = log.Sync() }()

	if err := routes.Run(config.Load(), log); err != nil {
		log.Fatal("[api][main] server stopped", zap.Error(err))
	}
}
