package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/erp/order-import/internal/application/orderimport"
	"github.com/erp/order-import/internal/infrastructure/config"
	"github.com/erp/order-import/internal/infrastructure/logger"
	"github.com/erp/order-import/internal/infrastructure/persistence"
	"github.com/erp/order-import/internal/interfaces/http/handler"
	"github.com/erp/order-import/internal/interfaces/http/middleware"
	"github.com/erp/order-import/internal/interfaces/http/router"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		panic("Failed to load configuration: " + err.Error())
	}

	// Initialize logger
	log, err := logger.New(&logger.Config{
		Level:      cfg.Log.Level,
		Format:     cfg.Log.Format,
		Output:     cfg.Log.Output,
		TimeFormat: "2006-01-02T15:04:05.000Z07:00",
	})
	if err != nil {
		panic("Failed to initialize logger: " + err.Error())
	}
	defer func() {
		_ = logger.Sync(log)
	}()

	log.Info("Starting Order Import API",
		zap.String("app", cfg.App.Name),
		zap.String("env", cfg.App.Env),
		zap.String("port", cfg.App.Port),
	)

	// Create GORM logger backed by zap
	gormLogLevel := logger.MapGormLogLevel(cfg.Log.Level)
	gormLog := logger.NewGormLogger(log, gormLogLevel)

	// Initialize database connection with custom logger
	db, err := persistence.NewDatabaseWithLogger(&cfg.Database, gormLog)
	if err != nil {
		log.Fatal("Failed to connect to database", zap.Error(err))
	}
	defer func() {
		if err := db.Close(); err != nil {
			log.Error("Error closing database", zap.Error(err))
		}
	}()
	log.Info("Database connected successfully", zap.String("driver", cfg.Database.Driver))

	// Run schema migration and seed the reference data the importer
	// falls back to (default unit, default payment term)
	if err := db.Migrate(); err != nil {
		log.Fatal("Failed to migrate database schema", zap.Error(err))
	}
	if err := db.Seed(&cfg.Seed); err != nil {
		log.Fatal("Failed to seed reference data", zap.Error(err))
	}

	// Initialize repositories
	partnerRepo := persistence.NewGormPartnerRepository(db.DB)
	productRepo := persistence.NewGormProductRepository(db.DB)
	uomRepo := persistence.NewGormUnitOfMeasureRepository(db.DB)
	salesOrderRepo := persistence.NewGormSalesOrderRepository(db.DB)
	orderLineRepo := persistence.NewGormOrderLineRepository(db.DB)
	paymentTermRepo := persistence.NewGormPaymentTermRepository(db.DB)
	sessionRepo := persistence.NewGormSessionRepository(db.DB)

	// Initialize application services
	importService := orderimport.NewOrderImportService(
		partnerRepo, productRepo, uomRepo,
		salesOrderRepo, orderLineRepo, paymentTermRepo, sessionRepo,
		log,
	)
	batchService := orderimport.NewBatchImportService(
		partnerRepo, productRepo, uomRepo,
		salesOrderRepo, orderLineRepo,
		log,
	)

	// Initialize HTTP handlers
	importHandler := handler.NewImportHandler(importService, batchService, log)
	systemHandler := handler.NewSystemHandler(db)

	// Set Gin mode based on environment
	if cfg.App.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	engine := gin.New()

	// Configure trusted proxies
	if len(cfg.HTTP.TrustedProxies) > 0 {
		if err := engine.SetTrustedProxies(cfg.HTTP.TrustedProxies); err != nil {
			log.Warn("Failed to set trusted proxies", zap.Error(err))
		}
	}

	// Apply middleware stack in order:
	// 1. RequestID - Generate/propagate request ID
	// 2. Recovery - Catch panics
	// 3. Logger - Log requests
	// 4. Security - Add security headers
	// 5. CORS - Handle cross-origin requests
	// 6. BodyLimit - Limit request body size
	// API-key auth is applied per group below, not globally.
	engine.Use(middleware.RequestID())
	engine.Use(logger.Recovery(log))
	engine.Use(logger.GinMiddleware(log))
	engine.Use(middleware.Secure())

	corsConfig := middleware.CORSConfig{
		AllowOrigins:     cfg.HTTP.CORSAllowOrigins,
		AllowMethods:     cfg.HTTP.CORSAllowMethods,
		AllowHeaders:     cfg.HTTP.CORSAllowHeaders,
		ExposeHeaders:    []string{"X-Request-ID"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}
	engine.Use(middleware.CORSWithConfig(corsConfig))

	engine.Use(middleware.BodyLimit(cfg.HTTP.MaxBodySize))

	if len(cfg.Auth.APIKeys) > 0 {
		log.Info("API key authentication enabled", zap.Int("keys", len(cfg.Auth.APIKeys)))
	} else {
		log.Warn("API key authentication disabled: no keys configured")
	}

	// Health check endpoint (outside API versioning) for load balancers
	engine.GET("/health", healthHandler(db))

	// Order domain: the import endpoints, behind API-key auth.
	// System routes stay open so monitoring needs no key.
	orderRoutes := router.NewDomainGroup("order", "/order")
	orderRoutes.Use(middleware.APIKeyAuth(cfg.Auth.APIKeys))
	orderRoutes.POST("/import", importHandler.ImportOrder).
		POST("/import-batch", importHandler.ImportBatch)

	systemRoutes := router.NewDomainGroup("system", "/system")
	systemRoutes.GET("/ping", systemHandler.Ping).
		GET("/health", systemHandler.Health).
		GET("/info", systemHandler.GetSystemInfo)

	r := router.NewRouter(engine, router.WithAPIVersion("v1"))
	r.Register(orderRoutes).
		Register(systemRoutes)
	r.Setup()

	// Create HTTP server with config
	srv := &http.Server{
		Addr:           ":" + cfg.App.Port,
		Handler:        engine,
		ReadTimeout:    cfg.HTTP.ReadTimeout,
		WriteTimeout:   cfg.HTTP.WriteTimeout,
		IdleTimeout:    cfg.HTTP.IdleTimeout,
		MaxHeaderBytes: cfg.HTTP.MaxHeaderBytes,
	}

	// Start server in goroutine
	go func() {
		log.Info("Server starting", zap.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal("Failed to start server", zap.Error(err))
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Info("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Fatal("Server forced to shutdown", zap.Error(err))
	}

	log.Info("Server exited gracefully")
}

// healthHandler returns a handler for health check endpoints
func healthHandler(db *persistence.Database) gin.HandlerFunc {
	return func(c *gin.Context) {
		reqLog := logger.GetGinLogger(c)
		if err := db.Ping(); err != nil {
			reqLog.Warn("Health check failed", zap.Error(err))
			c.JSON(http.StatusServiceUnavailable, gin.H{
				"status":   "unhealthy",
				"time":     time.Now().Format(time.RFC3339),
				"database": "error",
			})
			return
		}
		c.JSON(http.StatusOK, gin.H{
			"status":   "healthy",
			"time":     time.Now().Format(time.RFC3339),
			"database": "ok",
		})
	}
}
