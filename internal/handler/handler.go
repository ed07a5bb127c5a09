package handler

import (
	"context"
	"fmt"
	"net/http"
	"regexp"
	"strings"
	"wallet-service/internal/metrics"
	"wallet-service/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

var versionPattern = regexp.MustCompile(`^\d+$`)

// HealthChecker reports whether a backing dependency is reachable.
type HealthChecker interface {
	Ping(ctx context.Context) error
}

type Handler struct {
	walletService service.WalletService
	health        HealthChecker
	logger        zerolog.Logger
}

// NewHandler wires the HTTP layer. health may be nil, in which case /health
// always reports ok.
func NewHandler(walletService service.WalletService, health HealthChecker, logger zerolog.Logger) *Handler {
	return &Handler{
		walletService: walletService,
		health:        health,
		logger:        logger,
	}
}

// VersionPrefix turns an API version such as "1" into the "/v1" route prefix.
func VersionPrefix(version string) (string, error) {
	v := strings.TrimSpace(version)
	if !versionPattern.MatchString(v) {
		return "", fmt.Errorf("api version must be numeric, got %q", version)
	}
	return "/v" + v, nil
}

func (h *Handler) SetupRoutes(apiVersion string) (*gin.Engine, error) {
	prefix, err := VersionPrefix(apiVersion)
	if err != nil {
		return nil, err
	}

	router := gin.New()

	// Middlewares
	router.Use(
		RequestIDMiddleware(),
		LoggingMiddleware(h.logger),
		MetricsMiddleware(),
		gin.CustomRecovery(h.recoverPanic),
	)

	// Swagger, metrics and health checks
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	router.GET("/metrics", gin.WrapH(metrics.Handler()))
	router.GET("/health", h.Health)

	// API routes
	v := router.Group(prefix)
	v.POST("/wallet/create", h.CreateWallet)
	v.POST("/wallet", h.UpdateWallet)
	v.GET("/wallets/:walletId", h.GetBalance)

	return router, nil
}

// Health
// @Summary Health check
// @Tags health
// @Produce json
// @Success 200 {object} map[string]string
// @Failure 503 {object} map[string]string
// @Router /health [get]
func (h *Handler) Health(c *gin.Context) {
	if h.health != nil {
		if err := h.health.Ping(c.Request.Context()); err != nil {
			h.logger.Error().Err(err).Msg("health check failed")
			c.JSON(http.StatusServiceUnavailable, gin.H{"status": "unavailable"})
			return
		}
	}
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

func (h *Handler) recoverPanic(c *gin.Context, recovered any) {
	h.handleError(c, fmt.Errorf("panic recovered: %v", recovered))
	c.Abort()
}
