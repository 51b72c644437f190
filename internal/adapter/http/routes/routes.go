package routes

import (
	"context"
	"net/http"

	_ "hotel_procurement/docs"
	"hotel_procurement/internal/adapter/http/handlers"
	"hotel_procurement/internal/adapter/http/middlewares"
	"hotel_procurement/internal/config"
	"hotel_procurement/internal/infrastructure/logging"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// Run will start the server
func Run(cfg config.Config) {
	log := logging.GetLogger()

	ucs, cleanup, err := buildUseCases(context.Background(), cfg)
	if err != nil {
		log.WithError(err).Fatal("[routes] failed to wire dependencies")
	}
	defer cleanup()

	router := NewRouter(ucs, cfg.CORSAllowedOrigins)
	if err := router.Run(":" + cfg.Port); err != nil {
		log.WithError(err).Error("[routes] failed to startup the application")
	}
}

// NewRouter mounts every route on a fresh engine.
func NewRouter(ucs UseCases, allowedOrigins string) *gin.Engine {
	router := gin.New()
	setMiddlewares(router, allowedOrigins)

	// Swagger documentation endpoint
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	v1 := router.Group("/v1")
	addPingRoutes(v1)
	addAuthRoutes(v1, handlers.NewAuthHandler(ucs.Auth))

	// Authenticated routes
	private := v1.Group("", middlewares.AuthMiddleware(ucs.Auth))
	private.GET("/auth/me", handlers.NewAuthHandler(ucs.Auth).Me)
	addRequestRoutes(private,
		handlers.NewPurchaseRequestHandler(ucs.Requests),
		handlers.NewInvoiceHandler(ucs.Invoices),
		handlers.NewQueryHandler(ucs.Queries),
	)
	addRegistryRoutes(private, handlers.NewRegistryHandler(ucs.Registry))
	addReportRoutes(private, handlers.NewReportHandler(ucs.Reports))
	addAdminRoutes(private, handlers.NewAdminHandler(ucs.Admin))
	return router
}

func setMiddlewares(router *gin.Engine, allowedOrigins string) {
	log := logging.GetLogger()
	router.Use(gin.LoggerWithWriter(log.WriterLevel(logrus.DebugLevel)))
	router.Use(gin.CustomRecovery(func(c *gin.Context, recovered any) {
		log.WithFields(logrus.Fields{
			"path":      c.Request.URL.Path,
			"recovered": recovered,
		}).Error("[routes] recovered from panic")
		c.AbortWithStatus(http.StatusInternalServerError)
	}))
	router.Use(middlewares.CORS(allowedOrigins))
}
