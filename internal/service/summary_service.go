package service

import (
	"context"

	"github.com/blaisecz/health-trends/internal/domain"
	"github.com/blaisecz/health-trends/internal/llm"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
)

// SummaryService generates a clinician-facing narrative for one participant.
type SummaryService interface {
	Generate(ctx context.Context, participantID string) (*domain.SummaryResponse, error)
}

type summaryService struct {
	analytics AnalyticsService
	llmClient llm.SummaryLLM
}

func NewSummaryService(analytics AnalyticsService, llmClient llm.SummaryLLM) SummaryService {
	return &summaryService{analytics: analytics, llmClient: llmClient}
}

func (s *summaryService) Generate(ctx context.Context, participantID string) (*domain.SummaryResponse, error) {
	ctx, span := otel.Tracer(tracerName).Start(ctx, "SummaryService.Generate",
		trace.WithAttributes(attribute.String("participant.id", participantID)),
	)
	defer span.End()

	if s.llmClient == nil {
		return nil, llm.ErrOpenAIUnavailable
	}

	report, err := s.analytics.ParticipantReport(ctx, participantID)
	if err != nil {
		return nil, err
	}

	narrative, err := s.llmClient.Summarize(ctx, report)
	if err != nil {
		span.RecordError(err)
		return nil, err
	}

	return &domain.SummaryResponse{
		Report:    *report,
		Narrative: *narrative,
	}, nil
}
