package router

import (
	"log/slog"

	"github.com/gin-contrib/gzip"
	"github.com/gin-gonic/gin"

	"github.com/polkiloo/bnplmart/internal/server/http/handlers"
	"github.com/polkiloo/bnplmart/internal/server/http/middleware"
)

// Setup configures gin router with handlers and middleware.
func Setup(facade handlers.BNPLFacade, verifier middleware.KeyVerifier, logger *slog.Logger) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)
	engine := gin.New()

	engine.Use(gin.Recovery())
	engine.Use(middleware.RequestLogger(logger))
	engine.Use(middleware.DecompressRequest(middleware.DefaultMaxRequestBody))
	engine.Use(gzip.Gzip(gzip.DefaultCompression))

	catalogHandler := handlers.NewCatalogHandler(facade)
	userHandler := handlers.NewUserHandler(facade)
	orderHandler := handlers.NewOrderHandler(facade)
	paymentHandler := handlers.NewPaymentHandler(facade)
	healthHandler := handlers.NewHealthHandler(facade)

	api := engine.Group("/api")
	api.GET("/health", healthHandler.Check)

	operator := api.Group("")
	operator.Use(middleware.OperatorRequired(verifier))
	operator.POST("/products", catalogHandler.Stock)
	operator.POST("/users", userHandler.Register)
	operator.POST("/users/:id/token", userHandler.Token)

	api.GET("/products", catalogHandler.List)
	api.GET("/products/:id", catalogHandler.Get)

	users := api.Group("/users/:id")
	users.Use(middleware.UserRequired(facade, verifier))
	users.GET("", userHandler.Status)
	users.GET("/orders", userHandler.Orders)
	users.POST("/orders", orderHandler.Place)
	users.POST("/payments", paymentHandler.Pay)
	users.POST("/defaults", paymentHandler.SettleDefaults)
	users.GET("/events", userHandler.Events)

	return engine
}
