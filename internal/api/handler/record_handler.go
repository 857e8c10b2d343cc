package handler

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/blaisecz/health-trends/internal/api/validation"
	"github.com/blaisecz/health-trends/internal/domain"
	"github.com/blaisecz/health-trends/internal/service"
	"github.com/blaisecz/health-trends/pkg/problem"
)

// maxIngestBody bounds a single ingest request.
const maxIngestBody = 32 << 20

type RecordHandler struct {
	service service.RecordService
}

func NewRecordHandler(service service.RecordService) *RecordHandler {
	return &RecordHandler{service: service}
}

// Ingest handles POST /v1/records
// @Summary Ingest questionnaire records
// @Description Store a batch of raw questionnaire records. Every record must carry a participant identifier; the whole batch is rejected otherwise. Cached reports are invalidated.
// @Tags records
// @Accept json
// @Produce json
// @Param request body domain.IngestRecordsRequest true "Batch of raw records"
// @Success 201 {object} domain.IngestRecordsResponse "Records stored"
// @Failure 400 {object} problem.Problem "Invalid JSON body"
// @Failure 422 {object} problem.Problem "Records failed validation"
// @Failure 500 {object} problem.Problem "Server error"
// @Router /records [post]
func (h *RecordHandler) Ingest(w http.ResponseWriter, r *http.Request) {
	dec := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxIngestBody))
	dec.UseNumber()

	var req domain.IngestRecordsRequest
	if err := dec.Decode(&req); err != nil {
		problem.BadRequest("Invalid JSON body").Write(w)
		return
	}

	if fieldErrors := validation.Validate(req); fieldErrors != nil {
		problem.ValidationError("Request body contains invalid fields", fieldErrors).Write(w)
		return
	}

	resp, err := h.service.Ingest(r.Context(), &req)
	if err != nil {
		var missing *service.MissingParticipantError
		if errors.As(err, &missing) {
			fieldErrors := make([]problem.FieldError, len(missing.Indexes))
			for i, idx := range missing.Indexes {
				fieldErrors[i] = problem.FieldError{
					Field:   fmt.Sprintf("records[%d].%s", idx, missing.Field),
					Message: "is required",
				}
			}
			problem.ValidationError("Every record needs a participant identifier", fieldErrors).Write(w)
			return
		}
		problem.InternalError("Failed to store records").Write(w)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	json.NewEncoder(w).Encode(resp)
}

// List handles GET /v1/records
// @Summary List stored records
// @Description Fetch stored records, newest first, optionally for a single participant.
// @Tags records
// @Produce json
// @Param participant query string false "Participant identifier" example(RM-0042)
// @Param limit query integer false "Results per page (1-500)" default(50) minimum(1) maximum(500)
// @Param cursor query string false "Cursor from previous response's next_cursor"
// @Success 200 {object} domain.RecordListResponse "Records with pagination"
// @Failure 400 {object} problem.Problem "Invalid cursor"
// @Failure 422 {object} problem.Problem "Invalid query parameters"
// @Failure 500 {object} problem.Problem "Server error"
// @Router /records [get]
func (h *RecordHandler) List(w http.ResponseWriter, r *http.Request) {
	filter, fieldErrors := parseRecordFilter(r)
	if fieldErrors != nil {
		problem.ValidationError("Invalid query parameters", fieldErrors).Write(w)
		return
	}

	response, err := h.service.List(r.Context(), filter)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidInput) {
			problem.BadRequest("Invalid cursor").Write(w)
			return
		}
		problem.InternalError("Failed to list records").Write(w)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(response)
}

// Participants handles GET /v1/participants
// @Summary List participants
// @Description Every participant with stored records and their record count.
// @Tags records
// @Produce json
// @Success 200 {array} domain.ParticipantSummary "Participants"
// @Failure 500 {object} problem.Problem "Server error"
// @Router /participants [get]
func (h *RecordHandler) Participants(w http.ResponseWriter, r *http.Request) {
	participants, err := h.service.Participants(r.Context())
	if err != nil {
		problem.InternalError("Failed to list participants").Write(w)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(participants)
}

func parseRecordFilter(r *http.Request) (domain.RecordFilter, []problem.FieldError) {
	var filter domain.RecordFilter
	var fieldErrors []problem.FieldError

	filter.ParticipantID = r.URL.Query().Get("participant")

	// Parse 'limit' parameter
	if limitStr := r.URL.Query().Get("limit"); limitStr != "" {
		limit, err := strconv.Atoi(limitStr)
		if err != nil || limit < 1 {
			fieldErrors = append(fieldErrors, problem.FieldError{
				Field:   "limit",
				Message: "must be a positive integer",
			})
		} else {
			filter.Limit = limit
		}
	}

	filter.Cursor = r.URL.Query().Get("cursor")

	if len(fieldErrors) > 0 {
		return filter, fieldErrors
	}

	return filter, nil
}
