package routes

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	_ "quote_relay/docs"
	"quote_relay/internal/adapter/http/handlers"
	"quote_relay/internal/adapter/http/middleware"
	"quote_relay/internal/adapter/persistence/repository"
	"quote_relay/internal/infrastructure/config"
	"quote_relay/internal/infrastructure/database"
	"quote_relay/internal/infrastructure/email"
	"quote_relay/internal/infrastructure/identity"
	"quote_relay/internal/infrastructure/logging"
	"quote_relay/internal/usecase"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

const PORT = 5001

const shutdownTimeout = 20 * time.Second

// Run loads configuration, wires dependencies and serves until SIGINT/SIGTERM.
// Configuration errors are fatal.
func Run() {
	cfg, err := config.Load()
	if err != nil {
		slog.Error("invalid configuration", "error", err)
		os.Exit(1)
	}

	logger := logging.New(os.Stdout, cfg.LogLevel, cfg.LogFormat)
	slog.SetDefault(logger)

	if err := serve(cfg, logger); err != nil {
		logger.Error("failed to run the application", "error", err)
		os.Exit(1)
	}
}

func serve(cfg *config.Config, logger *slog.Logger) error {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	quoteHandler, auth, err := getDependencies(ctx, cfg)
	if err != nil {
		return err
	}

	gin.SetMode(gin.ReleaseMode)
	router := newRouter(logger, cfg.CORSAllowedOrigins, quoteHandler, auth)

	srv := &http.Server{
		Addr:              ":" + strconv.Itoa(PORT),
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
		ReadTimeout:       15 * time.Second,
		WriteTimeout:      30 * time.Second,
		IdleTimeout:       120 * time.Second,
	}

	serverErr := make(chan error, 1)
	go func() {
		logger.Info("server listening", "addr", srv.Addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErr <- err
		}
	}()

	select {
	case <-ctx.Done():
		logger.Info("shutdown signal received")
	case err := <-serverErr:
		return fmt.Errorf("server error: %w", err)
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("server shutdown: %w", err)
	}

	logger.Info("shutdown complete")
	return nil
}

// getDependencies builds the process-wide clients once; handlers share them.
func getDependencies(ctx context.Context, cfg *config.Config) (*handlers.QuoteHandler, usecase.IAuthUseCase, error) {
	ddb, err := database.ConnectDynamoDB(ctx, cfg.DynamoDB)
	if err != nil {
		return nil, nil, err
	}
	quoteRepo := repository.NewQuoteDynamoRepository(ddb, cfg.DynamoDB.QuotesTable)

	gateway, err := email.NewSendGridGateway(cfg.SendGrid.APIKey)
	if err != nil {
		return nil, nil, fmt.Errorf("sendgrid gateway: %w", err)
	}

	verifier := identity.NewFirebaseVerifier(identity.Config{
		ProjectID:          cfg.Firebase.ProjectID,
		JWKSURL:            cfg.Firebase.JWKSURL,
		CacheTTL:           cfg.Firebase.JWKSCacheTTL,
		MinRefreshInterval: cfg.Firebase.JWKSMinRefresh,
	})

	authUseCase := usecase.NewAuthUseCase(verifier)
	accessUseCase := usecase.NewQuoteAccessUseCase(quoteRepo)
	notificationUseCase := usecase.NewQuoteNotificationUseCase(accessUseCase, quoteRepo, gateway, cfg.PublicBaseURL)

	slog.Info("dependencies initialized",
		"firebase_project", cfg.Firebase.ProjectID,
		"quotes_table", cfg.DynamoDB.QuotesTable,
		"public_base_url", cfg.PublicBaseURL,
	)
	return handlers.NewQuoteHandler(notificationUseCase), authUseCase, nil
}

func newRouter(logger *slog.Logger, allowedOrigins []string, quoteHandler *handlers.QuoteHandler, auth usecase.IAuthUseCase) *gin.Engine {
	router := gin.New()
	setMiddlewares(router, logger, allowedOrigins)

	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	root := &router.RouterGroup
	addPingRoutes(root)
	addQuoteRoutes(root, quoteHandler, auth)
	return router
}

func setMiddlewares(router *gin.Engine, logger *slog.Logger, allowedOrigins []string) {
	router.Use(middleware.RequestID())
	router.Use(middleware.Logger(logger))
	router.Use(middleware.Metrics())
	router.Use(middleware.CORS(allowedOrigins))
	router.Use(gin.CustomRecovery(func(c *gin.Context, recovered any) {
		logger.ErrorContext(c.Request.Context(), "recovered from panic", "panic", recovered)
		c.AbortWithStatus(http.StatusInternalServerError)
	}))
}
