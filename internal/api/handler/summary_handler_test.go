package handler

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/blaisecz/health-trends/internal/domain"
	"github.com/blaisecz/health-trends/internal/llm"
	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSummaryHandler_Get(t *testing.T) {
	tests := []struct {
		name           string
		err            error
		wantStatusCode int
	}{
		{"success", nil, http.StatusOK},
		{"participant not found", domain.ErrNotFound, http.StatusNotFound},
		{"llm not configured", llm.ErrOpenAIUnavailable, http.StatusServiceUnavailable},
		{"llm request failed", llm.ErrOpenAIRequest, http.StatusBadGateway},
		{"llm bad response", llm.ErrOpenAIResponse, http.StatusBadGateway},
		{"other error", errors.New("boom"), http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := &MockSummaryService{
				generateFunc: func(ctx context.Context, participantID string) (*domain.SummaryResponse, error) {
					if tt.err != nil {
						return nil, tt.err
					}
					return &domain.SummaryResponse{
						Report:    domain.ParticipantReport{ParticipantID: participantID},
						Narrative: domain.ClinicalNarrative{Summary: "Stable over the last month."},
					}, nil
				},
			}
			r := chi.NewRouter()
			r.Get("/v1/participants/{participantId}/summary", NewSummaryHandler(svc).Get)

			rec := httptest.NewRecorder()
			r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/v1/participants/RM-001/summary", nil))

			require.Equal(t, tt.wantStatusCode, rec.Code)
			if tt.err == nil {
				var got domain.SummaryResponse
				require.NoError(t, json.NewDecoder(rec.Body).Decode(&got))
				assert.Equal(t, "RM-001", got.Report.ParticipantID)
				assert.Equal(t, "Stable over the last month.", got.Narrative.Summary)
				assert.Empty(t, got.TraceID, "no span in the request context")
			}
		})
	}
}
