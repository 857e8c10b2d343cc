package service

import (
	"context"

	"github.com/blaisecz/health-trends/internal/analytics"
	"github.com/blaisecz/health-trends/internal/cache"
	"github.com/blaisecz/health-trends/internal/domain"
	"github.com/blaisecz/health-trends/internal/repository"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
	"go.uber.org/zap"
)

const tracerName = "health-trends/analytics"

// AnalyticsService runs the engine over the stored records.
// Collection-wide reports are cached until the next ingest.
type AnalyticsService interface {
	Trends(ctx context.Context) (*domain.TrendReport, error)
	Trajectories(ctx context.Context) (*domain.TrajectoryReport, error)
	Seasonal(ctx context.Context) (*domain.SeasonalReport, error)
	Risk(ctx context.Context) (*domain.RiskReport, error)
	Medication(ctx context.Context) (*domain.MedicationReport, error)
	Sleep(ctx context.Context) (*domain.SleepReport, error)
	Anomalies(ctx context.Context) (*domain.AnomalyReport, error)
	Timeline(ctx context.Context, participantID, field string) (*domain.Timeline, error)
	ParticipantReport(ctx context.Context, participantID string) (*domain.ParticipantReport, error)
}

type analyticsService struct {
	repo   repository.RecordRepository
	engine *analytics.Engine
	cache  *cache.ReportCache
	logger *zap.Logger
}

func NewAnalyticsService(repo repository.RecordRepository, engine *analytics.Engine, reports *cache.ReportCache, logger *zap.Logger) AnalyticsService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &analyticsService{
		repo:   repo,
		engine: engine,
		cache:  reports,
		logger: logger.Named("analytics_service"),
	}
}

// report serves kind from the cache or computes it from every stored record.
func report[T any](ctx context.Context, s *analyticsService, kind cache.ReportKind, compute func([]domain.RawRecord) T) (*T, error) {
	ctx, span := otel.Tracer(tracerName).Start(ctx, "AnalyticsService."+string(kind),
		trace.WithAttributes(attribute.String("report.kind", string(kind))),
	)
	defer span.End()

	// The generation is read before the records so that an ingest racing this
	// computation makes the write below unreachable.
	var out T
	gen, cacheable := s.cache.Generation(ctx)
	if cacheable && s.cache.Get(ctx, gen, kind, &out) {
		span.SetAttributes(attribute.Bool("cache.hit", true))
		return &out, nil
	}
	span.SetAttributes(attribute.Bool("cache.hit", false))

	records, err := s.repo.ListAll(ctx)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "load records")
		return nil, err
	}
	span.SetAttributes(attribute.Int("records.count", len(records)))

	out = compute(records)

	if cacheable {
		if err := s.cache.Put(ctx, gen, kind, out); err != nil {
			s.logger.Warn("report cache write failed", zap.String("kind", string(kind)), zap.Error(err))
		}
	}
	return &out, nil
}

func (s *analyticsService) Trends(ctx context.Context) (*domain.TrendReport, error) {
	return report(ctx, s, cache.ReportTrends, s.engine.AnalyzeTrends)
}

func (s *analyticsService) Trajectories(ctx context.Context) (*domain.TrajectoryReport, error) {
	return report(ctx, s, cache.ReportTrajectories, s.engine.ClassifyTrajectories)
}

func (s *analyticsService) Seasonal(ctx context.Context) (*domain.SeasonalReport, error) {
	return report(ctx, s, cache.ReportSeasonal, s.engine.SeasonalPatterns)
}

func (s *analyticsService) Risk(ctx context.Context) (*domain.RiskReport, error) {
	return report(ctx, s, cache.ReportRisk, s.engine.ScoreRisk)
}

func (s *analyticsService) Medication(ctx context.Context) (*domain.MedicationReport, error) {
	return report(ctx, s, cache.ReportMedication, s.engine.MedicationAlerts)
}

func (s *analyticsService) Sleep(ctx context.Context) (*domain.SleepReport, error) {
	return report(ctx, s, cache.ReportSleep, s.engine.SleepAlerts)
}

func (s *analyticsService) Anomalies(ctx context.Context) (*domain.AnomalyReport, error) {
	return report(ctx, s, cache.ReportAnomalies, s.engine.ResponseAnomalies)
}

func (s *analyticsService) Timeline(ctx context.Context, participantID, field string) (*domain.Timeline, error) {
	ctx, span := otel.Tracer(tracerName).Start(ctx, "AnalyticsService.Timeline",
		trace.WithAttributes(
			attribute.String("participant.id", participantID),
			attribute.String("field", field),
		),
	)
	defer span.End()

	records, err := s.repo.ListByParticipant(ctx, participantID)
	if err != nil {
		span.RecordError(err)
		return nil, err
	}

	tl, err := s.engine.Timeline(records, participantID, field)
	if err != nil {
		span.RecordError(err)
		return nil, err
	}
	span.SetAttributes(attribute.Int("records.count", tl.TotalRecords))
	return &tl, nil
}

func (s *analyticsService) ParticipantReport(ctx context.Context, participantID string) (*domain.ParticipantReport, error) {
	ctx, span := otel.Tracer(tracerName).Start(ctx, "AnalyticsService.ParticipantReport",
		trace.WithAttributes(attribute.String("participant.id", participantID)),
	)
	defer span.End()

	records, err := s.repo.ListByParticipant(ctx, participantID)
	if err != nil {
		span.RecordError(err)
		return nil, err
	}

	rep, err := s.engine.ParticipantReport(records, participantID)
	if err != nil {
		span.RecordError(err)
		return nil, err
	}
	span.SetAttributes(
		attribute.Int("risk.score", rep.Risk.Score),
		attribute.String("risk.tier", string(rep.Risk.Tier)),
	)
	return &rep, nil
}
