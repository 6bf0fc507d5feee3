package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"naraintegration/bootstrap"
	"naraintegration/config"
	"naraintegration/controllers"
	_ "naraintegration/docs"
	"naraintegration/pkg/logger"
	"naraintegration/repository"
	"naraintegration/services/dashboard"
	"naraintegration/services/integration"
	"naraintegration/services/monitoring"
	"naraintegration/services/store"
	"naraintegration/utils"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// @title           naraintegration
// @version         1.0
// @description     Marine research integration store and monitoring API

// @BasePath  /api

func main() {
	// 1) Load config
	if err := config.LoadConfig(); err != nil {
		log.Fatalf("LoadConfig error: %v", err)
	}

	// 2) Init structured logger with config
	logger.Init(logger.Options{
		FilePath:   config.Cfg.LogFile,
		Level:      logger.ParseLogLevel(config.Cfg.LogLevel),
		MaxSize:    config.Cfg.LogMaxSize,
		MaxBackups: config.Cfg.LogMaxBackups,
		MaxAge:     config.Cfg.LogMaxAge,
		Compress:   config.Cfg.LogCompress,
	})
	logger.Infof("Starting NARA integration API with log level: %s", config.Cfg.LogLevel)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// 3) Open the persistence medium
	medium, closeMedium, err := openMedium(ctx, config.Cfg.StoreDriver)
	if err != nil {
		logger.Fatalf("Store %s unavailable: %v", config.Cfg.StoreDriver, err)
	}
	defer closeMedium()

	// 4) Build services
	opts := integration.Options{
		Latency: integration.Latency{Min: config.Cfg.LatencyMin, Max: config.Cfg.LatencyMax},
	}
	registry := integration.NewRegistry(store.New(medium), bootstrap.LoadSamples(config.Cfg.SeedSampleData), opts)
	controllers.SetIntegrationRegistry(registry)

	monitor := monitoring.NewService(registry, opts)
	dash := dashboard.NewService(monitor)
	dash.Start(ctx, config.Cfg.DashboardRefreshInterval)

	// 5) Setup Gin
	router := gin.Default()
	router.Use(utils.LoggerMiddleware())

	v1 := router.Group("/api")
	{
		controllers.RegisterIntegrationRoutes(v1)
		controllers.RegisterMonitoringRoutes(v1, controllers.NewMonitoringController(monitor, dash))
	}

	// 6) Swagger route
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	srv := &http.Server{
		Addr:    "0.0.0.0:" + config.Cfg.Port,
		Handler: router,
	}

	// 7) Setup graceful shutdown
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		<-sigChan
		logger.Infof("Received shutdown signal, stopping dashboard refresh...")
		dash.Stop()
		cancel()

		shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer shutdownCancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			logger.Errorf("HTTP shutdown error: %v", err)
		}
	}()

	// 8) Run
	logger.Infof("Starting server at port %s", config.Cfg.Port)
	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		logger.Fatalf("Server error: %v", err)
	}
	logger.Infof("Application shutdown complete")
}

// openMedium returns the persistence medium for driver and a function releasing it.
// The none driver yields a nil medium, which keeps every collection in memory only.
func openMedium(ctx context.Context, driver string) (store.Medium, func(), error) {
	noop := func() {}
	switch driver {
	case config.StoreDriverMySQL:
		if err := config.ConnectDB(); err != nil {
			return nil, noop, err
		}
		return store.NewDatabaseMedium(repository.NewStoreEntryRepository(config.DB)), noop, nil

	case config.StoreDriverEmbedded:
		embedded, err := config.StartEmbeddedStore(ctx)
		if err != nil {
			return nil, noop, err
		}
		closeEmbedded := func() {
			if err := embedded.Close(); err != nil {
				logger.Warnf("Embedded store close error: %v", err)
			}
		}
		return store.NewDatabaseMedium(repository.NewStoreEntryRepository(config.DB)), closeEmbedded, nil

	case config.StoreDriverBadger:
		badgerMedium, err := store.OpenBadgerMedium(config.Cfg.BadgerPath)
		if err != nil {
			return nil, noop, err
		}
		logger.Infof("Badger store opened at %s", config.Cfg.BadgerPath)
		closeBadger := func() {
			if err := badgerMedium.Close(); err != nil {
				logger.Warnf("Badger store close error: %v", err)
			}
		}
		return badgerMedium, closeBadger, nil

	case config.StoreDriverMemory:
		return store.NewMemoryMedium(), noop, nil

	default:
		return nil, noop, nil
	}
}
