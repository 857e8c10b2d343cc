package service

import (
	"context"
	"errors"
	"testing"

	"github.com/blaisecz/health-trends/internal/domain"
	"github.com/blaisecz/health-trends/internal/llm"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSummaryService_Generate(t *testing.T) {
	narrative := &domain.ClinicalNarrative{
		Summary:          "Dizziness has increased over the last month.",
		Concerns:         []string{"Daily dizziness"},
		SuggestedActions: []string{"Schedule a follow-up call"},
	}

	tests := []struct {
		name        string
		participant string
		llm         *MockSummaryLLM
		wantErr     error
	}{
		{
			name:        "success",
			participant: "RM-001",
			llm:         &MockSummaryLLM{narrative: narrative},
		},
		{
			name:        "unknown participant",
			participant: "RM-404",
			llm:         &MockSummaryLLM{narrative: narrative},
			wantErr:     domain.ErrNotFound,
		},
		{
			name:        "llm failure",
			participant: "RM-001",
			llm:         &MockSummaryLLM{err: llm.ErrOpenAIRequest},
			wantErr:     llm.ErrOpenAIRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := NewMockRecordRepository(sampleRecords()...)
			svc := NewSummaryService(newAnalyticsService(t, repo, nil), tt.llm)

			resp, err := svc.Generate(context.Background(), tt.participant)
			if tt.wantErr != nil {
				assert.True(t, errors.Is(err, tt.wantErr))
				assert.Nil(t, resp)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, *narrative, resp.Narrative)
			assert.Equal(t, "RM-001", resp.Report.ParticipantID)
			require.NotNil(t, tt.llm.received)
			assert.Equal(t, "RM-001", tt.llm.received.ParticipantID)
		})
	}
}

func TestSummaryService_Unavailable(t *testing.T) {
	repo := NewMockRecordRepository(sampleRecords()...)
	svc := NewSummaryService(newAnalyticsService(t, repo, nil), nil)

	_, err := svc.Generate(context.Background(), "RM-001")
	assert.ErrorIs(t, err, llm.ErrOpenAIUnavailable)
	assert.Zero(t, repo.listCalls, "no records are loaded without a narrative backend")
}
