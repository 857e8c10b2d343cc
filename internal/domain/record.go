package domain

import (
	"encoding/json"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
)

// RawRecord is one questionnaire submission as exported by the data-capture system.
// Keys are field names, values are whatever the export produced (string, number, bool or nil).
type RawRecord map[string]any

// Text returns the answer stored under field as trimmed text.
// The second return value is false when the field is absent or blank.
func (r RawRecord) Text(field string) (string, bool) {
	v, ok := r[field]
	if !ok || v == nil {
		return "", false
	}

	var s string
	switch val := v.(type) {
	case string:
		s = val
	case json.Number:
		s = val.String()
	case float64:
		s = strconv.FormatFloat(val, 'f', -1, 64)
	case float32:
		s = strconv.FormatFloat(float64(val), 'f', -1, 32)
	case int:
		s = strconv.Itoa(val)
	case int64:
		s = strconv.FormatInt(val, 10)
	case bool:
		s = strconv.FormatBool(val)
	case time.Time:
		s = val.Format(time.RFC3339)
	default:
		return "", false
	}

	s = strings.TrimSpace(s)
	if s == "" {
		return "", false
	}
	return s, true
}

// Record is a stored questionnaire submission.
type Record struct {
	ID            uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	ParticipantID string    `gorm:"type:varchar(64);not null;index:idx_records_participant_created" json:"participant_id"`
	Instrument    string    `gorm:"type:varchar(255)" json:"instrument,omitempty"`
	Fields        RawRecord `gorm:"type:jsonb;serializer:json;not null" json:"fields"`
	CreatedAt     time.Time `gorm:"autoCreateTime;index:idx_records_participant_created,sort:desc" json:"created_at"`
}

func (Record) TableName() string {
	return "questionnaire_records"
}

// IngestRecordsRequest is the request body for a batch of questionnaire records.
// @Description Batch of raw questionnaire records, one object per submission.
type IngestRecordsRequest struct {
	// Raw records as exported by the data-capture system
	Records []RawRecord `json:"records" validate:"required,min=1,max=5000,dive,required"`
}

// IngestRecordsResponse is returned after a batch has been stored.
// @Description Result of a record ingest.
type IngestRecordsResponse struct {
	// Number of records stored
	Ingested int `json:"ingested" example:"12"`
	// Identifiers assigned to the stored records, in request order
	IDs []uuid.UUID `json:"ids"`
}

// RecordFilter contains filter parameters for listing records.
type RecordFilter struct {
	ParticipantID string
	Limit         int
	Cursor        string
}

// RecordListResponse is the response body for listing records.
// @Description Paginated list of stored questionnaire records.
type RecordListResponse struct {
	Data       []Record           `json:"data"`
	Pagination PaginationResponse `json:"pagination"`
}

// PaginationResponse contains pagination metadata.
// @Description Cursor-based pagination info.
type PaginationResponse struct {
	// Cursor for fetching the next page (empty if no more pages)
	NextCursor string `json:"next_cursor,omitempty"`
	// True if more results are available
	HasMore bool `json:"has_more" example:"true"`
}

// ParticipantSummary is one row of the participant listing.
// @Description Participant identifier with its stored record count.
type ParticipantSummary struct {
	ParticipantID string `json:"participant_id" example:"RM-0042"`
	Records       int64  `json:"records" example:"9"`
}
