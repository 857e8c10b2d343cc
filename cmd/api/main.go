// Health Trends API
//
// REST API for longitudinal analysis of patient-reported questionnaire data.
//
//	@title			Health Trends API
//	@version		1.0
//	@description	Longitudinal symptom trends, trajectories, seasonal patterns and risk scoring over questionnaire records.
//
//	@BasePath	/v1
//
//	@tag.name			records
//	@tag.description	Questionnaire record ingest and listing
//
//	@tag.name			analytics
//	@tag.description	Collection-wide trend, trajectory, seasonal and risk reports
//
//	@tag.name			alerts
//	@tag.description	Medication and sleep alerts
//
//	@tag.name			participants
//	@tag.description	Per-participant timeline, report and narrative
package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/blaisecz/health-trends/internal/analytics"
	"github.com/blaisecz/health-trends/internal/api"
	"github.com/blaisecz/health-trends/internal/api/handler"
	"github.com/blaisecz/health-trends/internal/cache"
	"github.com/blaisecz/health-trends/internal/config"
	"github.com/blaisecz/health-trends/internal/domain"
	"github.com/blaisecz/health-trends/internal/llm"
	"github.com/blaisecz/health-trends/internal/repository"
	"github.com/blaisecz/health-trends/internal/seed"
	"github.com/blaisecz/health-trends/internal/service"
	"github.com/blaisecz/health-trends/internal/telemetry"
	"github.com/blaisecz/health-trends/pkg/logger"
	"go.uber.org/zap"
)

const serviceName = "health-trends-api"

func main() {
	// Load configuration
	cfg := config.Load()

	log, err := logger.New(cfg.LogLevel, cfg.LogFormat, serviceName)
	if err != nil {
		panic(err)
	}
	defer log.Sync()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	shutdownTracer, err := telemetry.InitTracer(ctx, cfg, serviceName)
	if err != nil {
		log.Fatal("failed to initialize tracing", zap.Error(err))
	}
	defer func() {
		sctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := shutdownTracer(sctx); err != nil {
			log.Warn("tracer shutdown failed", zap.Error(err))
		}
	}()

	// Connect to database
	db, err := config.NewDatabase(cfg, log)
	if err != nil {
		log.Fatal("failed to connect to database", zap.Error(err))
	}

	// Auto-migrate database schema
	if err := db.AutoMigrate(&domain.Record{}); err != nil {
		log.Fatal("failed to migrate database", zap.Error(err))
	}
	log.Info("database migration completed")

	recordRepo := repository.NewRecordRepository(db)

	if cfg.Seed {
		log.Info("seeding database with sample data (SEED=true)")
		if err := seed.Run(ctx, recordRepo, log); err != nil {
			log.Fatal("failed to seed database", zap.Error(err))
		}
	}

	// Report cache (optional)
	var store cache.KVStore
	if cfg.RedisAddr != "" {
		client, err := cache.NewRedisClient(ctx, cfg.RedisAddr, cfg.RedisPassword, cfg.RedisDB)
		if err != nil {
			log.Fatal("failed to connect to redis", zap.Error(err))
		}
		defer client.Close()
		store = cache.NewRedisStore(client)
		log.Info("report cache enabled", zap.String("addr", cfg.RedisAddr), zap.Duration("ttl", cfg.ReportCacheTTL))
	}
	reports := cache.NewReportCache(store, cfg.ReportCacheTTL, log)

	// Analytics engine
	tables, err := cfg.Tables()
	if err != nil {
		log.Fatal("failed to load vocabulary tables", zap.Error(err))
	}
	engine, err := analytics.NewEngine(tables, log)
	if err != nil {
		log.Fatal("invalid vocabulary tables", zap.Error(err))
	}

	// Initialize OpenAI client (may be nil if not configured)
	var summaryLLM llm.SummaryLLM
	if client := llm.NewOpenAIClient(cfg.OpenAIAPIKey, cfg.OpenAISummaryModel); client != nil {
		prompt, err := llm.LoadPrompt(cfg.SummaryPromptFile)
		if err != nil {
			log.Fatal("failed to load summary prompt", zap.Error(err))
		}
		summaryLLM = client.WithSystemPrompt(prompt)
	} else {
		log.Warn("OpenAI API key not configured, summary endpoint will be unavailable")
	}

	// Initialize services
	recordService := service.NewRecordService(recordRepo, reports, tables.ParticipantField, tables.InstrumentField, log)
	analyticsService := service.NewAnalyticsService(recordRepo, engine, reports, log)
	summaryService := service.NewSummaryService(analyticsService, summaryLLM)

	// Initialize handlers
	recordHandler := handler.NewRecordHandler(recordService)
	analyticsHandler := handler.NewAnalyticsHandler(analyticsService)
	summaryHandler := handler.NewSummaryHandler(summaryService)

	// Setup router
	router := api.NewRouter(recordHandler, analyticsHandler, summaryHandler, log)

	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           router.Setup(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		<-ctx.Done()
		sctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := srv.Shutdown(sctx); err != nil {
			log.Warn("server shutdown failed", zap.Error(err))
		}
	}()

	// Start server
	log.Info("starting server", zap.String("addr", srv.Addr))
	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		log.Fatal("server failed", zap.Error(err))
	}
}
