package handler

import (
	"context"

	"github.com/blaisecz/health-trends/internal/domain"
)

// MockRecordService is a mock implementation of RecordService
type MockRecordService struct {
	ingestFunc       func(ctx context.Context, req *domain.IngestRecordsRequest) (*domain.IngestRecordsResponse, error)
	listFunc         func(ctx context.Context, filter domain.RecordFilter) (*domain.RecordListResponse, error)
	participantsFunc func(ctx context.Context) ([]domain.ParticipantSummary, error)
}

func (m *MockRecordService) Ingest(ctx context.Context, req *domain.IngestRecordsRequest) (*domain.IngestRecordsResponse, error) {
	if m.ingestFunc != nil {
		return m.ingestFunc(ctx, req)
	}
	return &domain.IngestRecordsResponse{Ingested: len(req.Records)}, nil
}

func (m *MockRecordService) List(ctx context.Context, filter domain.RecordFilter) (*domain.RecordListResponse, error) {
	if m.listFunc != nil {
		return m.listFunc(ctx, filter)
	}
	return &domain.RecordListResponse{Data: []domain.Record{}}, nil
}

func (m *MockRecordService) Participants(ctx context.Context) ([]domain.ParticipantSummary, error) {
	if m.participantsFunc != nil {
		return m.participantsFunc(ctx)
	}
	return []domain.ParticipantSummary{}, nil
}

// MockAnalyticsService is a mock implementation of AnalyticsService.
// Every report method returns err when set.
type MockAnalyticsService struct {
	err          error
	timelineFunc func(ctx context.Context, participantID, field string) (*domain.Timeline, error)
	reportFunc   func(ctx context.Context, participantID string) (*domain.ParticipantReport, error)
}

func (m *MockAnalyticsService) Trends(ctx context.Context) (*domain.TrendReport, error) {
	if m.err != nil {
		return nil, m.err
	}
	return &domain.TrendReport{Participants: map[string]domain.ParticipantTrend{}}, nil
}

func (m *MockAnalyticsService) Trajectories(ctx context.Context) (*domain.TrajectoryReport, error) {
	if m.err != nil {
		return nil, m.err
	}
	return &domain.TrajectoryReport{}, nil
}

func (m *MockAnalyticsService) Seasonal(ctx context.Context) (*domain.SeasonalReport, error) {
	if m.err != nil {
		return nil, m.err
	}
	return &domain.SeasonalReport{Insights: []string{}}, nil
}

func (m *MockAnalyticsService) Risk(ctx context.Context) (*domain.RiskReport, error) {
	if m.err != nil {
		return nil, m.err
	}
	return &domain.RiskReport{Summary: domain.RiskSummary{TotalParticipants: 2, HighCount: 1}}, nil
}

func (m *MockAnalyticsService) Medication(ctx context.Context) (*domain.MedicationReport, error) {
	if m.err != nil {
		return nil, m.err
	}
	return &domain.MedicationReport{}, nil
}

func (m *MockAnalyticsService) Sleep(ctx context.Context) (*domain.SleepReport, error) {
	if m.err != nil {
		return nil, m.err
	}
	return &domain.SleepReport{}, nil
}

func (m *MockAnalyticsService) Anomalies(ctx context.Context) (*domain.AnomalyReport, error) {
	if m.err != nil {
		return nil, m.err
	}
	return &domain.AnomalyReport{
		Suspicious: []domain.AnomalyAlert{{ParticipantID: "RM-001", TotalResponses: 5}},
		Summary:    domain.AnomalySummary{ParticipantsAnalyzed: 2, ParticipantsWithAnomalies: 1, TotalAnomalies: 1, AnomalyRate: 50},
	}, nil
}

func (m *MockAnalyticsService) Timeline(ctx context.Context, participantID, field string) (*domain.Timeline, error) {
	if m.timelineFunc != nil {
		return m.timelineFunc(ctx, participantID, field)
	}
	return &domain.Timeline{ParticipantID: participantID}, nil
}

func (m *MockAnalyticsService) ParticipantReport(ctx context.Context, participantID string) (*domain.ParticipantReport, error) {
	if m.reportFunc != nil {
		return m.reportFunc(ctx, participantID)
	}
	return &domain.ParticipantReport{ParticipantID: participantID}, nil
}

// MockSummaryService is a mock implementation of SummaryService
type MockSummaryService struct {
	generateFunc func(ctx context.Context, participantID string) (*domain.SummaryResponse, error)
}

func (m *MockSummaryService) Generate(ctx context.Context, participantID string) (*domain.SummaryResponse, error) {
	if m.generateFunc != nil {
		return m.generateFunc(ctx, participantID)
	}
	return &domain.SummaryResponse{Report: domain.ParticipantReport{ParticipantID: participantID}}, nil
}
