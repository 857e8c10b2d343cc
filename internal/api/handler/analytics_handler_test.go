package handler

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/blaisecz/health-trends/internal/domain"
	"github.com/go-chi/chi/v5"
	"github.com/rotisserie/eris"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newAnalyticsRouter(svc *MockAnalyticsService) http.Handler {
	h := NewAnalyticsHandler(svc)
	r := chi.NewRouter()
	r.Get("/v1/analytics/trends", h.Trends)
	r.Get("/v1/analytics/trajectories", h.Trajectories)
	r.Get("/v1/analytics/seasonal", h.Seasonal)
	r.Get("/v1/analytics/risk", h.Risk)
	r.Get("/v1/alerts/medication", h.Medication)
	r.Get("/v1/alerts/sleep", h.Sleep)
	r.Get("/v1/alerts/anomalies", h.Anomalies)
	r.Get("/v1/participants/{participantId}/timeline", h.Timeline)
	r.Get("/v1/participants/{participantId}/report", h.Report)
	return r
}

func TestAnalyticsHandler_Reports(t *testing.T) {
	paths := []string{
		"/v1/analytics/trends",
		"/v1/analytics/trajectories",
		"/v1/analytics/seasonal",
		"/v1/analytics/risk",
		"/v1/alerts/medication",
		"/v1/alerts/sleep",
		"/v1/alerts/anomalies",
	}

	for _, path := range paths {
		t.Run(path, func(t *testing.T) {
			rec := httptest.NewRecorder()
			newAnalyticsRouter(&MockAnalyticsService{}).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, path, nil))
			assert.Equal(t, http.StatusOK, rec.Code)
			assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))

			rec = httptest.NewRecorder()
			newAnalyticsRouter(&MockAnalyticsService{err: errors.New("db down")}).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, path, nil))
			assert.Equal(t, http.StatusInternalServerError, rec.Code)
			assert.Equal(t, "application/problem+json", rec.Header().Get("Content-Type"))
		})
	}
}

func TestAnalyticsHandler_RiskBody(t *testing.T) {
	rec := httptest.NewRecorder()
	newAnalyticsRouter(&MockAnalyticsService{}).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/v1/analytics/risk", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	var got domain.RiskReport
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&got))
	assert.Equal(t, 2, got.Summary.TotalParticipants)
	assert.Equal(t, 1, got.Summary.HighCount)
}

func TestAnalyticsHandler_AnomaliesBody(t *testing.T) {
	rec := httptest.NewRecorder()
	newAnalyticsRouter(&MockAnalyticsService{}).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/v1/alerts/anomalies", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	var got domain.AnomalyReport
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&got))
	require.Len(t, got.Suspicious, 1)
	assert.Equal(t, "RM-001", got.Suspicious[0].ParticipantID)
	assert.Equal(t, 50.0, got.Summary.AnomalyRate)
}

func TestAnalyticsHandler_Timeline(t *testing.T) {
	tests := []struct {
		name           string
		path           string
		err            error
		wantStatusCode int
	}{
		{"found", "/v1/participants/RM-001/timeline?field=pain_today", nil, http.StatusOK},
		{"unknown participant", "/v1/participants/RM-404/timeline", eris.Wrapf(domain.ErrNotFound, "participant %s", "RM-404"), http.StatusNotFound},
		{"unknown field", "/v1/participants/RM-001/timeline?field=shoe_size", fmt.Errorf("shoe_size: %w", domain.ErrUnknownField), http.StatusUnprocessableEntity},
		{"blank participant", "/v1/participants/%20/timeline", nil, http.StatusUnprocessableEntity},
		{"server error", "/v1/participants/RM-001/timeline", errors.New("db down"), http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var gotField string
			svc := &MockAnalyticsService{
				timelineFunc: func(ctx context.Context, participantID, field string) (*domain.Timeline, error) {
					gotField = field
					if tt.err != nil {
						return nil, tt.err
					}
					return &domain.Timeline{ParticipantID: participantID}, nil
				},
			}

			rec := httptest.NewRecorder()
			newAnalyticsRouter(svc).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, tt.path, nil))

			assert.Equal(t, tt.wantStatusCode, rec.Code, rec.Body.String())
			if tt.name == "found" {
				assert.Equal(t, "pain_today", gotField)
			}
		})
	}
}

func TestAnalyticsHandler_Report(t *testing.T) {
	svc := &MockAnalyticsService{
		reportFunc: func(ctx context.Context, participantID string) (*domain.ParticipantReport, error) {
			if participantID != "RM-001" {
				return nil, domain.ErrNotFound
			}
			return &domain.ParticipantReport{
				ParticipantID: participantID,
				Risk:          domain.RiskScore{Score: 40, Tier: domain.RiskMedium},
			}, nil
		},
	}

	rec := httptest.NewRecorder()
	newAnalyticsRouter(svc).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/v1/participants/RM-001/report", nil))
	require.Equal(t, http.StatusOK, rec.Code)
	var got domain.ParticipantReport
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&got))
	assert.Equal(t, 40, got.Risk.Score)

	rec = httptest.NewRecorder()
	newAnalyticsRouter(svc).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/v1/participants/RM-002/report", nil))
	assert.Equal(t, http.StatusNotFound, rec.Code)
}
