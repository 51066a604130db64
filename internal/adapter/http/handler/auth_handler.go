package handler

import (
	"net/http"

	"yanki-wallet-service/internal/adapter/http/dto"
	"yanki-wallet-service/internal/core/ports"
	"yanki-wallet-service/pkg/apperror"
	"yanki-wallet-service/pkg/response"

	"github.com/gin-gonic/gin"
)

// AuthHandler handles registration and login endpoints.
type AuthHandler struct {
	walletSvc ports.WalletService
}

// NewAuthHandler creates a new AuthHandler.
func NewAuthHandler(walletSvc ports.WalletService) *AuthHandler {
	return &AuthHandler{walletSvc: walletSvc}
}

// Register handles POST /api/v1/auth/register.
func (h *AuthHandler) Register(c *gin.Context) {
	var req dto.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, apperror.Validation(err.Error()))
		return
	}
	dto.SanitizeStruct(&req)

	wallet, err := h.walletSvc.Register(c.Request.Context(), ports.RegisterWalletRequest{
		PhoneNumber:    req.PhoneNumber,
		DocumentNumber: req.DocumentNumber,
		Imei:           req.Imei,
		Email:          req.Email,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, "Wallet registered", dto.FromWallet(wallet))
}

// Login handles POST /api/v1/auth/login.
func (h *AuthHandler) Login(c *gin.Context) {
	var req dto.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, apperror.Validation(err.Error()))
		return
	}
	dto.SanitizeStruct(&req)

	token, expiry, err := h.walletSvc.Login(c.Request.Context(), req.PhoneNumber, req.DocumentNumber)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Login successful", dto.LoginResponse{
		Token:  token,
		Expiry: expiry.Unix(),
	})
}

// HealthCheck handles GET /health, verifying all external dependencies.
func HealthCheck(checkers ...ports.HealthChecker) gin.HandlerFunc {
	return func(c *gin.Context) {
		type depStatus struct {
			Status string `json:"status"`
			Error  string `json:"error,omitempty"`
		}

		deps := make(map[string]depStatus)
		allHealthy := true

		for _, checker := range checkers {
			if err := checker.Ping(c.Request.Context()); err != nil {
				deps[checker.Name()] = depStatus{Status: "unhealthy", Error: err.Error()}
				allHealthy = false
			} else {
				deps[checker.Name()] = depStatus{Status: "healthy"}
			}
		}

		status := "healthy"
		httpCode := http.StatusOK
		if !allHealthy {
			status = "degraded"
			httpCode = http.StatusServiceUnavailable
		}

		c.JSON(httpCode, gin.H{
			"status":       status,
			"dependencies": deps,
		})
	}
}
