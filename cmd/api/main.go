package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"

	pkgvalidator "github.com/xXxDanya2007xXx/speech-coach/pkg/validator"

	"github.com/xXxDanya2007xXx/speech-coach/internal/adapter/handler"
	"github.com/xXxDanya2007xXx/speech-coach/internal/adapter/repository"
	"github.com/xXxDanya2007xXx/speech-coach/internal/engine"
	"github.com/xXxDanya2007xXx/speech-coach/internal/engine/vad"
	"github.com/xXxDanya2007xXx/speech-coach/internal/infrastructure/cache"
	"github.com/xXxDanya2007xXx/speech-coach/internal/infrastructure/database"
	"github.com/xXxDanya2007xXx/speech-coach/internal/infrastructure/storage"
	aiuse "github.com/xXxDanya2007xXx/speech-coach/internal/usecase/ai"
	analysisuse "github.com/xXxDanya2007xXx/speech-coach/internal/usecase/analysis"
	pkgai "github.com/xXxDanya2007xXx/speech-coach/pkg/ai"
	"github.com/xXxDanya2007xXx/speech-coach/pkg/config"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	// Initialize Echo instance
	e := echo.New()

	// Register validator for request validation
	e.Validator = pkgvalidator.New()

	// Configure Echo
	e.HideBanner = true
	e.HidePort = false

	// Custom logger format
	e.Use(middleware.LoggerWithConfig(middleware.LoggerConfig{
		Format: "${time_rfc3339} | ${status} | ${method} ${uri} | ${latency_human}\n",
	}))

	// Recover from panics
	e.Use(middleware.Recover())

	// CORS middleware
	e.Use(middleware.CORSWithConfig(middleware.CORSConfig{
		AllowOrigins: cfg.Server.AllowedOrigins,
		AllowMethods: []string{http.MethodGet, http.MethodPost, http.MethodDelete},
		AllowHeaders: []string{echo.HeaderOrigin, echo.HeaderContentType, echo.HeaderAccept},
	}))

	// Initialize dependencies
	log.Println("🔧 Initializing dependencies...")

	logger, err := zap.NewProduction()
	if err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}
	defer logger.Sync()

	// Initialize Database
	log.Println("📦 Connecting to database...")
	db, err := database.NewPostgresDB(cfg)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer database.CloseDB(db)

	// Run migrations only when explicitly enabled in config.
	// Production deployments should manage schema via sql-migrate.
	if cfg.Database.AutoMigrate {
		if cfg.Server.Environment == "production" {
			log.Fatalf("AutoMigrate is enabled in production. Disable DB_AUTO_MIGRATE or manage schema with sql-migrate.")
		}
		log.Println("🔄 Applying migrations (development only) ...")
		if err := database.AutoMigrate(db); err != nil {
			log.Fatalf("Failed to apply migrations: %v", err)
		}
	} else {
		log.Println("🔄 Skipping migrations; use sql-migrate for schema migrations in CI/CD/production")
	}

	// Initialize Redis
	log.Println("📦 Connecting to Redis...")
	redisStore, err := cache.NewRedisStore(cfg)
	if err != nil {
		log.Fatalf("Failed to connect to Redis: %v", err)
	}
	defer redisStore.Close()

	// Initialize MinIO
	log.Println("📦 Connecting to object storage...")
	storageClient, err := storage.NewMinIOClient(&cfg.Storage)
	if err != nil {
		log.Fatalf("Failed to connect to object storage: %v", err)
	}

	// Initialize repositories
	log.Println("⚙️  Initializing repositories...")
	analysisRepo := repository.NewAnalysisRepository(db)

	// Initialize AI components
	log.Println("🤖 Initializing AI components...")
	transcriber := pkgai.NewTranscriber(cfg.Transcription, logger)
	groqClient := pkgai.NewGroqClient(&cfg.LLM)
	if !groqClient.Configured() {
		log.Println("⚠️  GROQ_API_KEY not set, contextual filler judgment and narrative feedback disabled")
	}
	aiService := aiuse.NewService(groqClient, redisStore, cfg, logger)

	// Initialize speech engine
	log.Println("🎙️  Initializing speech engine...")
	engineCfg := engine.DefaultConfig()
	engineCfg.MinPauseGap = cfg.Engine.MinPauseGap
	engineCfg.SilenceFactor = cfg.Engine.SilenceFactor
	engineCfg.LongPauseSec = cfg.Engine.LongPauseSec
	engineCfg.PauseTolerance = cfg.Engine.PauseTolerance
	engineCfg.FillerClusterGap = cfg.Engine.FillerClusterGap
	engineCfg.MinComfortWPM = cfg.Engine.MinComfortWPM
	engineCfg.MaxComfortWPM = cfg.Engine.MaxComfortWPM
	speechEngine := engine.New(engineCfg, logger)

	// Voice-activity detectors: silero when a model is configured,
	// energy-based otherwise
	vadChain := vad.NewChain(
		vad.NewSileroDetector(cfg.VAD.SileroModelPath, cfg.VAD.SileroThreshold, logger),
		vad.NewEnergyDetector(),
	)
	if cfg.VAD.SileroModelPath == "" {
		log.Println("⚠️  SILERO_MODEL_PATH not set, using energy-based voice detection")
	}

	// Initialize analysis service
	log.Println("✨ Initializing analysis service...")
	analysisService := analysisuse.NewService(
		analysisRepo,
		storageClient,
		redisStore,
		transcriber,
		aiService,
		speechEngine,
		vadChain,
		cfg.Cache.ResultTTL,
		logger,
	)

	// Initialize analysis handler
	log.Println("🚀 Initializing analysis handler...")
	analysisHandler := handler.NewAnalysisHandler(analysisService, cfg.Server.MaxUploadMB, logger)
	log.Println("✅ Analysis handler initialized successfully")

	// Setup router with handlers
	log.Println("🛣️  Setting up routes...")
	router := handler.NewRouter(cfg, analysisHandler, map[string]handler.Pinger{
		"redis":   redisStore,
		"storage": storageClient,
	})
	router.Setup(e)

	// Start server
	go func() {
		addr := fmt.Sprintf("%s:%s", cfg.Server.Host, cfg.Server.Port)
		log.Printf("🚀 Starting server on %s", addr)
		log.Printf("📝 Environment: %s", cfg.Server.Environment)
		log.Printf("🔗 Health check: http://%s/health", addr)

		if err := e.Start(addr); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Failed to start server: %v", err)
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit

	log.Println("🛑 Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(cfg.Server.ShutdownTimeout)*time.Second)
	defer cancel()

	if err := e.Shutdown(ctx); err != nil {
		log.Fatalf("❌ Server forced to shutdown: %v", err)
	}

	log.Println("✅ Server stopped gracefully")
}
