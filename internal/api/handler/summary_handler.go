package handler

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/blaisecz/health-trends/internal/api/validation"
	"github.com/blaisecz/health-trends/internal/domain"
	"github.com/blaisecz/health-trends/internal/llm"
	"github.com/blaisecz/health-trends/internal/service"
	"github.com/blaisecz/health-trends/pkg/problem"
	"github.com/go-chi/chi/v5"
	"go.opentelemetry.io/otel/trace"
)

// SummaryHandler serves LLM narratives.
type SummaryHandler struct {
	service service.SummaryService
}

func NewSummaryHandler(service service.SummaryService) *SummaryHandler {
	return &SummaryHandler{service: service}
}

// Get handles GET /v1/participants/{participantId}/summary
// @Summary LLM clinical summary
// @Description Generate a clinician-facing narrative from the participant report.
// @Tags participants
// @Produce json
// @Param participantId path string true "Participant identifier" example(RM-0042)
// @Success 200 {object} domain.SummaryResponse "Report and narrative"
// @Failure 404 {object} problem.Problem "Participant not found"
// @Failure 500 {object} problem.Problem "Server error"
// @Failure 502 {object} problem.Problem "LLM request failed"
// @Failure 503 {object} problem.Problem "LLM service unavailable"
// @Router /participants/{participantId}/summary [get]
func (h *SummaryHandler) Get(w http.ResponseWriter, r *http.Request) {
	participantID := chi.URLParam(r, "participantId")
	if fieldErrors := validation.Var("participantId", participantID, "notblank,max=64"); fieldErrors != nil {
		problem.ValidationError("Invalid participant identifier", fieldErrors).Write(w)
		return
	}

	result, err := h.service.Generate(r.Context(), participantID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			problem.NotFound("Participant not found").Write(w)
			return
		}
		if errors.Is(err, llm.ErrOpenAIUnavailable) {
			problem.ServiceUnavailable("OpenAI service is not configured").Write(w)
			return
		}
		if errors.Is(err, llm.ErrOpenAIRequest) || errors.Is(err, llm.ErrOpenAIResponse) {
			problem.BadGateway("Failed to generate summary from LLM").Write(w)
			return
		}
		problem.InternalError("Failed to generate summary").Write(w)
		return
	}

	// Attach OTEL trace ID (if present) to response for feedback linking
	span := trace.SpanFromContext(r.Context())
	if span.SpanContext().IsValid() {
		result.TraceID = span.SpanContext().TraceID().String()
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(result)
}
