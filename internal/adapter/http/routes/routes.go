package routes

import (
	"context"
	"log"
	"net/http"
	"time"

	_ "hvac_registry/docs" // This will be auto-generated
	"hvac_registry/internal/adapter/http/handlers"
	"hvac_registry/internal/app"
	"hvac_registry/internal/config"
	"hvac_registry/internal/infrastructure/metrics"
	"hvac_registry/internal/usecase"
	"hvac_registry/pkg/logger"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.uber.org/zap"
)

const serviceName = "hvac-registry"

// Run will start the server
func Run() {
	cfg := config.Load()
	if err := cfg.Validate(); err != nil {
		log.Fatalf("Invalid configuration: %v", err)
	}

	zl, err := logger.NewLogger(cfg.Log.Level, cfg.Log.Format, serviceName)
	if err != nil {
		log.Fatalf("Failed to build logger: %v", err)
	}
	defer func() { _ = zl.Sync() }()

	if err := handlers.RegisterBindings(); err != nil {
		zl.Fatal("failed to register request validations", zap.Error(err))
	}

	ctx := context.Background()
	stores, err := app.OpenStores(ctx, cfg, zl)
	if err != nil {
		zl.Fatal("failed to open remote store", zap.String("driver", cfg.Store.Driver), zap.Error(err))
	}
	defer stores.Close()

	m := metrics.New(cfg.Store.Driver)
	catalog := app.NewCatalog(cfg, stores, m, zl)

	loadCtx, cancel := context.WithTimeout(ctx, 30*time.Second)
	if err := catalog.Load(loadCtx); err != nil {
		// The API still serves; POST /v1/sync retries the load.
		zl.Error("initial load failed", zap.Error(err))
	}
	cancel()

	router := newRouter(catalog, m, zl)
	zl.Info("starting server", zap.String("port", cfg.Server.Port), zap.String("driver", cfg.Store.Driver))
	if err := router.Run(":" + cfg.Server.Port); err != nil {
		zl.Fatal("failed to startup the application", zap.Error(err))
	}
}

func newRouter(catalog usecase.ICatalogUseCase, m *metrics.Metrics, zl *zap.Logger) *gin.Engine {
	router := gin.New()
	setMiddlewares(router, m, zl)

	// Swagger documentation endpoint
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	router.GET("/metrics", gin.WrapH(m.Handler()))

	getRoutes(router, catalog, zl)
	return router
}

func getRoutes(router *gin.Engine, catalog usecase.ICatalogUseCase, zl *zap.Logger) {
	equipmentHandler := handlers.NewEquipmentHandler(catalog, zl)
	referenceHandler := handlers.NewReferenceHandler(catalog, zl)
	modelFamilyHandler := handlers.NewModelFamilyHandler(catalog, zl)
	syncHandler := handlers.NewSyncHandler(catalog, zl)

	v1 := router.Group("/v1")
	addPingRoutes(v1)
	addRegistryRoutes(v1, equipmentHandler, referenceHandler, modelFamilyHandler, syncHandler)
}

func setMiddlewares(router *gin.Engine, m *metrics.Metrics, zl *zap.Logger) {
	router.Use(requestLogger(zl))
	router.Use(m.Middleware())
	router.Use(gin.CustomRecovery(func(c *gin.Context, recovered any) {
		zl.Error("recovered from panic", zap.Any("panic", recovered), zap.String("path", c.Request.URL.Path))
		c.AbortWithStatus(http.StatusInternalServerError)
	}))
}

func requestLogger(zl *zap.Logger) gin.HandlerFunc {
	access := zl.Named("http")
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		access.Info("request",
			zap.String("method", c.Request.Method),
			zap.String("path", c.Request.URL.Path),
			zap.Int("status", c.Writer.Status()),
			zap.Duration("latency", time.Since(start)),
			zap.String("client_ip", c.ClientIP()),
		)
	}
}
