package handler

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/blaisecz/health-trends/internal/api/validation"
	"github.com/blaisecz/health-trends/internal/domain"
	"github.com/blaisecz/health-trends/internal/service"
	"github.com/blaisecz/health-trends/pkg/problem"
	"github.com/go-chi/chi/v5"
)

// AnalyticsHandler serves the engine reports.
type AnalyticsHandler struct {
	service service.AnalyticsService
}

// NewAnalyticsHandler creates a new AnalyticsHandler.
func NewAnalyticsHandler(service service.AnalyticsService) *AnalyticsHandler {
	return &AnalyticsHandler{service: service}
}

// Trends handles GET /v1/analytics/trends
// @Summary Symptom trends
// @Description Split-half trend of every monitored field for each participant with at least two dated records.
// @Tags analytics
// @Produce json
// @Success 200 {object} domain.TrendReport "Trend report"
// @Failure 500 {object} problem.Problem "Server error"
// @Router /analytics/trends [get]
func (h *AnalyticsHandler) Trends(w http.ResponseWriter, r *http.Request) {
	result, err := h.service.Trends(r.Context())
	writeReport(w, result, err, "Failed to compute trends")
}

// Trajectories handles GET /v1/analytics/trajectories
// @Summary Participant trajectories
// @Description Classify each participant as improving, declining, fluctuating or stable.
// @Tags analytics
// @Produce json
// @Success 200 {object} domain.TrajectoryReport "Trajectory report"
// @Failure 500 {object} problem.Problem "Server error"
// @Router /analytics/trajectories [get]
func (h *AnalyticsHandler) Trajectories(w http.ResponseWriter, r *http.Request) {
	result, err := h.service.Trajectories(r.Context())
	writeReport(w, result, err, "Failed to classify trajectories")
}

// Seasonal handles GET /v1/analytics/seasonal
// @Summary Seasonal patterns
// @Description Mean symptom severity per calendar month and weekday, with best and worst buckets.
// @Tags analytics
// @Produce json
// @Success 200 {object} domain.SeasonalReport "Seasonal report"
// @Failure 500 {object} problem.Problem "Server error"
// @Router /analytics/seasonal [get]
func (h *AnalyticsHandler) Seasonal(w http.ResponseWriter, r *http.Request) {
	result, err := h.service.Seasonal(r.Context())
	writeReport(w, result, err, "Failed to compute seasonal patterns")
}

// Risk handles GET /v1/analytics/risk
// @Summary Risk scores
// @Description Weighted risk score and tier of every participant, with tiered alert lists.
// @Tags analytics
// @Produce json
// @Success 200 {object} domain.RiskReport "Risk report"
// @Failure 500 {object} problem.Problem "Server error"
// @Router /analytics/risk [get]
func (h *AnalyticsHandler) Risk(w http.ResponseWriter, r *http.Request) {
	result, err := h.service.Risk(r.Context())
	writeReport(w, result, err, "Failed to score risk")
}

// Medication handles GET /v1/alerts/medication
// @Summary Medication alerts
// @Description Participants with low medication adherence or frequent symptoms suggesting adverse effects.
// @Tags alerts
// @Produce json
// @Success 200 {object} domain.MedicationReport "Medication alerts"
// @Failure 500 {object} problem.Problem "Server error"
// @Router /alerts/medication [get]
func (h *AnalyticsHandler) Medication(w http.ResponseWriter, r *http.Request) {
	result, err := h.service.Medication(r.Context())
	writeReport(w, result, err, "Failed to compute medication alerts")
}

// Sleep handles GET /v1/alerts/sleep
// @Summary Sleep alerts
// @Description Participants with frequent poor sleep or daytime sleepiness.
// @Tags alerts
// @Produce json
// @Success 200 {object} domain.SleepReport "Sleep alerts"
// @Failure 500 {object} problem.Problem "Server error"
// @Router /alerts/sleep [get]
func (h *AnalyticsHandler) Sleep(w http.ResponseWriter, r *http.Request) {
	result, err := h.service.Sleep(r.Context())
	writeReport(w, result, err, "Failed to compute sleep alerts")
}

// Anomalies handles GET /v1/alerts/anomalies
// @Summary Response anomalies
// @Description Participants whose answers repeat identically or whose health status swings to the opposite end of the scale.
// @Tags alerts
// @Produce json
// @Success 200 {object} domain.AnomalyReport "Suspicious answer patterns"
// @Failure 500 {object} problem.Problem "Server error"
// @Router /alerts/anomalies [get]
func (h *AnalyticsHandler) Anomalies(w http.ResponseWriter, r *http.Request) {
	result, err := h.service.Anomalies(r.Context())
	writeReport(w, result, err, "Failed to detect response anomalies")
}

// Timeline handles GET /v1/participants/{participantId}/timeline
// @Summary Participant timeline
// @Description Chronological records of one participant, optionally focused on a single field with its trend.
// @Tags participants
// @Produce json
// @Param participantId path string true "Participant identifier" example(RM-0042)
// @Param field query string false "Field to extract" example(dizziness_today)
// @Success 200 {object} domain.Timeline "Timeline"
// @Failure 404 {object} problem.Problem "Participant not found"
// @Failure 422 {object} problem.Problem "Unknown field"
// @Failure 500 {object} problem.Problem "Server error"
// @Router /participants/{participantId}/timeline [get]
func (h *AnalyticsHandler) Timeline(w http.ResponseWriter, r *http.Request) {
	participantID := chi.URLParam(r, "participantId")
	if fieldErrors := validation.Var("participantId", participantID, "notblank,max=64"); fieldErrors != nil {
		problem.ValidationError("Invalid participant identifier", fieldErrors).Write(w)
		return
	}
	field := r.URL.Query().Get("field")

	result, err := h.service.Timeline(r.Context(), participantID, field)
	if err != nil {
		if errors.Is(err, domain.ErrUnknownField) {
			problem.ValidationError("Unknown field", []problem.FieldError{{Field: "field", Message: "is not a monitored field"}}).Write(w)
			return
		}
		if errors.Is(err, domain.ErrNotFound) {
			problem.NotFound("Participant not found").Write(w)
			return
		}
		problem.InternalError("Failed to build timeline").Write(w)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(result)
}

// Report handles GET /v1/participants/{participantId}/report
// @Summary Participant report
// @Description Trend, trajectory and risk score of a single participant.
// @Tags participants
// @Produce json
// @Param participantId path string true "Participant identifier" example(RM-0042)
// @Success 200 {object} domain.ParticipantReport "Participant report"
// @Failure 404 {object} problem.Problem "Participant not found"
// @Failure 500 {object} problem.Problem "Server error"
// @Router /participants/{participantId}/report [get]
func (h *AnalyticsHandler) Report(w http.ResponseWriter, r *http.Request) {
	participantID := chi.URLParam(r, "participantId")
	if fieldErrors := validation.Var("participantId", participantID, "notblank,max=64"); fieldErrors != nil {
		problem.ValidationError("Invalid participant identifier", fieldErrors).Write(w)
		return
	}

	result, err := h.service.ParticipantReport(r.Context(), participantID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			problem.NotFound("Participant not found").Write(w)
			return
		}
		problem.InternalError("Failed to build participant report").Write(w)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(result)
}

func writeReport(w http.ResponseWriter, result any, err error, failure string) {
	if err != nil {
		problem.InternalError(failure).Write(w)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(result)
}
