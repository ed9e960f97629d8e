package handler

import (
	"fleet-edi-gateway/internal/adapter/http/middleware"
	redisStore "fleet-edi-gateway/internal/adapter/storage/redis"
	"fleet-edi-gateway/internal/core/ports"
	"fleet-edi-gateway/internal/metrics"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
)

const maxRequestBodySize = 1 << 20 // 1 MiB

// RouterDeps holds everything the router needs.
type RouterDeps struct {
	TokenService   ports.TokenService
	OrderService   ports.OrderService
	WalletService  ports.WalletService
	AdminVerifier  ports.AdminTokenVerifier
	RateLimitStore *redisStore.RateLimitStore
	HealthCheckers []ports.HealthChecker
	Logger         zerolog.Logger
}

// SetupRouter builds the HTTP router with all routes and middleware.
func SetupRouter(deps RouterDeps) *gin.Engine {
	router := gin.New()
	router.Use(middleware.Recovery(deps.Logger))
	router.Use(middleware.RequestLogger(deps.Logger))
	router.Use(middleware.MaxBodySize(maxRequestBodySize))

	router.GET("/health", HealthCheck(deps.HealthCheckers...))
	router.GET("/metrics", gin.WrapH(metrics.Handler()))

	tokenHandler := NewTokenHandler(deps.TokenService)
	orderHandler := NewOrderHandler(deps.OrderService)
	walletHandler := NewWalletHandler(deps.WalletService)

	rules := middleware.DefaultRateLimitRules()
	limit := func(group string) gin.HandlerFunc {
		if deps.RateLimitStore == nil {
			return func(c *gin.Context) { c.Next() }
		}
		return middleware.RateLimiter(deps.RateLimitStore, group, rules[group], deps.Logger)
	}

	admin := router.Group("/admin")
	admin.Use(middleware.AdminAuth(deps.AdminVerifier, deps.Logger))
	{
		tokens := admin.Group("/tokens")
		tokens.Use(limit("admin"))
		{
			tokens.POST("/create", tokenHandler.Create)
			tokens.POST("/revoke", tokenHandler.Revoke)
			tokens.GET("/list", tokenHandler.List)
		}

		wallets := admin.Group("/wallets")
		wallets.Use(limit("wallets"))
		{
			wallets.GET("/driver/:driverId", walletHandler.DriverBalance)
			wallets.POST("/driver/:driverId/adjust", walletHandler.AdjustDriver)
			wallets.GET("/vendor/:entityType", walletHandler.BatchBalances)
		}
	}

	edi := router.Group("/edi")
	edi.Use(middleware.PartnerAuth(deps.TokenService, deps.Logger))
	{
		orders := edi.Group("/orders")
		{
			orders.POST("/create", limit("edi_orders"), orderHandler.CreateDelivery)
			orders.POST("/pickup", limit("edi_orders"), orderHandler.CreatePickup)
			orders.GET("/status/:reference", limit("edi_status"), orderHandler.Track)
			orders.GET("/detail/:reference", limit("edi_status"), orderHandler.Detail)
		}
	}

	return router
}
