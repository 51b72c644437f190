package main

import (
	_ "hotel_procurement/docs"
	"hotel_procurement/internal/adapter/http/routes"
	"hotel_procurement/internal/config"
	"hotel_procurement/internal/infrastructure/logging"

	_ "github.com/joho/godotenv/autoload"
)

// @title           Hotel Procurement API
// @version         1.0
// @description     Purchase request approval workflow with invoice reconciliation, backed by DynamoDB.
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
	cfg, err := config.Load()
	if err != nil {
		logging.GetLogger().WithError(err).Fatal("[main] invalid configuration")
	}
	logging.Configure(cfg.LogLevel)

	routes.Run(cfg)
}
