package handler

import (
	"yanki-wallet-service/internal/adapter/http/middleware"
	"yanki-wallet-service/internal/core/ports"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
)

// RouterDeps holds all dependencies needed to set up routes.
type RouterDeps struct {
	WalletSvc      ports.WalletService
	TransferSvc    ports.TransferService
	CardLinkSvc    ports.CardLinkService
	TxRepo         ports.TransactionRepository
	TokenSvc       ports.TokenService
	HealthCheckers []ports.HealthChecker
	Logger         zerolog.Logger
}

// SetupRouter initialises the Gin engine with all routes and middleware.
func SetupRouter(deps RouterDeps) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)
	r := gin.New()

	// Global middleware
	r.Use(middleware.Recovery(deps.Logger))
	r.Use(middleware.RequestLogger(deps.Logger))
	r.Use(middleware.MaxBodySize(1 << 20)) // 1 MB request body limit

	// Health check (deep, verifies PostgreSQL + Redis)
	r.GET("/health", HealthCheck(deps.HealthCheckers...))

	// API v1 routes
	v1 := r.Group("/api/v1")

	// --- Public routes (no auth) ---
	authHandler := NewAuthHandler(deps.WalletSvc)
	auth := v1.Group("/auth")
	{
		auth.POST("/register", authHandler.Register)
		auth.POST("/login", authHandler.Login)
	}

	// --- JWT-authenticated routes ---
	jwtAuth := middleware.JWTAuth(deps.TokenSvc, deps.Logger)
	walletHandler := NewWalletHandler(deps.WalletSvc, deps.TxRepo)
	transferHandler := NewTransferHandler(deps.TransferSvc, deps.CardLinkSvc)

	wallets := v1.Group("/wallets", jwtAuth)
	{
		wallets.GET("/:id", walletHandler.GetByID)
		wallets.GET("/phone/:phone", walletHandler.GetByPhoneNumber)
		wallets.GET("/document/:document", walletHandler.GetByDocumentNumber)
		wallets.PUT("/:id", walletHandler.Update)
		wallets.DELETE("/:id", walletHandler.Delete)
	}

	transactions := v1.Group("/transactions", jwtAuth)
	{
		transactions.POST("", transferHandler.Initiate)
		transactions.GET("", walletHandler.ListTransactions)
	}

	cards := v1.Group("/cards", jwtAuth)
	{
		cards.POST("/associate", transferHandler.AssociateCard)
	}

	return r
}
