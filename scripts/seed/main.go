package main

import (
	"context"
	"fmt"

	"github.com/blaisecz/health-trends/internal/config"
	"github.com/blaisecz/health-trends/internal/domain"
	"github.com/blaisecz/health-trends/internal/repository"
	"github.com/blaisecz/health-trends/internal/seed"
	"github.com/blaisecz/health-trends/pkg/logger"
	"go.uber.org/zap"
)

func main() {
	cfg := config.Load()

	log, err := logger.New(cfg.LogLevel, "console", "health-trends-seed")
	if err != nil {
		panic(err)
	}
	defer log.Sync()

	db, err := config.NewDatabase(cfg, log)
	if err != nil {
		log.Fatal("failed to connect to database", zap.Error(err))
	}

	// Auto-migrate
	if err := db.AutoMigrate(&domain.Record{}); err != nil {
		log.Fatal("failed to migrate", zap.Error(err))
	}

	ctx := context.Background()
	repo := repository.NewRecordRepository(db)
	if err := seed.Run(ctx, repo, log); err != nil {
		log.Fatal("seed failed", zap.Error(err))
	}

	participants, err := repo.Participants(ctx)
	if err != nil {
		log.Fatal("failed to list participants", zap.Error(err))
	}
	fmt.Println("\nParticipants available for testing:")
	for _, p := range participants {
		fmt.Printf("  %s (%d records)\n", p.ParticipantID, p.Records)
	}
}
