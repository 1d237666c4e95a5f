package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"

	httphandlers "github.com/LeandroDeJesus-S/loja-online/internal/handlers/http"
	"github.com/LeandroDeJesus-S/loja-online/internal/handlers/middleware"
	"github.com/LeandroDeJesus-S/loja-online/internal/infrastructure/config"
	"github.com/LeandroDeJesus-S/loja-online/internal/infrastructure/i18n"
	"github.com/LeandroDeJesus-S/loja-online/internal/infrastructure/imaging"
	"github.com/LeandroDeJesus-S/loja-online/internal/infrastructure/logging"
	"github.com/LeandroDeJesus-S/loja-online/internal/infrastructure/persistence/postgres"
	"github.com/LeandroDeJesus-S/loja-online/internal/services"
)

func main() {
	// Carregar configurações
	cfg, err := config.Load()
	if err != nil {
		log.Fatal("Failed to load config:", err)
	}

	// Inicializar logger
	logger := logging.NewSlogLogger(cfg.Logging.Level)
	logger.Info("starting loja-online",
		"env", cfg.Env,
		"version", "dev",
	)

	// Conectar ao banco de dados
	db, err := postgres.NewDatabaseConnection(&cfg.Database, logger)
	if err != nil {
		logger.Error("failed to connect to database", "error", err)
		log.Fatal(err)
	}

	// Migrações (inclui as CHECK constraints de cardinalidade de dono)
	if err := postgres.Migrate(db); err != nil {
		logger.Error("failed to run migrations", "error", err)
		log.Fatal(err)
	}

	// Inicializar i18n
	i18nService, err := i18n.NewService("./internal/infrastructure/i18n/locales", "en")
	if err != nil {
		logger.Error("failed to initialize i18n", "error", err)
		log.Fatal(err)
	}
	logger.Info("i18n initialized",
		"default_language", i18nService.GetDefaultLanguage(),
		"supported_languages", i18nService.GetSupportedLanguages(),
	)

	// Inicializar repositories
	productRepo := postgres.NewProductRepository(db)
	categoryRepo := postgres.NewCategoryRepository(db)
	stockRepo := postgres.NewStockRepository(db)
	storeRepo := postgres.NewStoreRepository(db)
	orderRepo := postgres.NewOrderRepository(db)
	mediaRepo := postgres.NewMediaFileRepository(db)
	addressRepo := postgres.NewAddressRepository(db)
	uow := postgres.NewUnitOfWork(db)

	// Inicializar services
	resizer := imaging.NewResizer()
	catalogService := services.NewCatalogService(productRepo, categoryRepo, stockRepo, resizer, uow, logger)
	storeService := services.NewStoreService(storeRepo, resizer, uow, logger)
	orderService := services.NewOrderService(orderRepo, logger)
	mediaService := services.NewMediaService(mediaRepo, logger)
	addressService := services.NewAddressService(addressRepo, uow, logger)

	// Inicializar handlers
	productHandler := httphandlers.NewProductHandler(catalogService)
	storeHandler := httphandlers.NewStoreHandler(storeService)
	orderHandler := httphandlers.NewOrderHandler(orderService)
	mediaHandler := httphandlers.NewMediaHandler(mediaService)
	addressHandler := httphandlers.NewAddressHandler(addressService)

	// Setup Gin
	if cfg.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.Default()

	// Middleware global para adicionar base URL ao contexto
	router.Use(func(c *gin.Context) {
		c.Set("base_url", cfg.Server.BaseURL)
		c.Next()
	})

	// Middleware i18n
	i18nMiddleware := middleware.NewI18nMiddleware(i18nService)
	router.Use(i18nMiddleware.DetectLanguage())

	// Middleware CORS
	router.Use(middleware.CORS(cfg.CORS.AllowedOrigins))

	// Health check
	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status": "ok",
			"env":    cfg.Env,
		})
	})

	// API routes
	v1 := router.Group("/api/v1")
	{
		products := v1.Group("/products")
		{
			products.GET("", productHandler.ListProducts)
			products.GET("/:slug", productHandler.GetProduct)
		}

		stores := v1.Group("/stores")
		{
			stores.POST("", storeHandler.CreateStore)
			stores.GET("/:id", storeHandler.GetStore)
			stores.PUT("/:id", storeHandler.UpdateStore)
		}

		orders := v1.Group("/orders")
		{
			orders.POST("", orderHandler.PlaceOrder)
			orders.POST("/:id/evaluation", orderHandler.EvaluateOrder)
		}

		v1.POST("/media", mediaHandler.AttachMedia)
		v1.POST("/addresses", addressHandler.RegisterAddress)
	}

	// HTTP Server
	srv := &http.Server{
		Addr:              cfg.Server.Host + ":" + cfg.Server.Port,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	// Graceful shutdown
	go func() {
		logger.Info("server starting",
			"host", cfg.Server.Host,
			"port", cfg.Server.Port,
		)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Error("server failed", "error", err)
			log.Fatal(err)
		}
	}()

	// Wait for interrupt signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logger.Error("server forced to shutdown", "error", err)
	}

	logger.Info("server exited")
}
