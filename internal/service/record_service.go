package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/blaisecz/health-trends/internal/cache"
	"github.com/blaisecz/health-trends/internal/domain"
	"github.com/blaisecz/health-trends/internal/repository"
	"github.com/blaisecz/health-trends/pkg/pagination"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// MissingParticipantError lists the batch positions of records without a
// participant identifier.
type MissingParticipantError struct {
	Field   string
	Indexes []int
}

func (e *MissingParticipantError) Error() string {
	idx := make([]string, len(e.Indexes))
	for i, n := range e.Indexes {
		idx[i] = fmt.Sprint(n)
	}
	return fmt.Sprintf("records [%s] have no %s", strings.Join(idx, ", "), e.Field)
}

func (e *MissingParticipantError) Unwrap() error {
	return domain.ErrMissingParticipant
}

type RecordService interface {
	Ingest(ctx context.Context, req *domain.IngestRecordsRequest) (*domain.IngestRecordsResponse, error)
	List(ctx context.Context, filter domain.RecordFilter) (*domain.RecordListResponse, error)
	Participants(ctx context.Context) ([]domain.ParticipantSummary, error)
}

type recordService struct {
	repo             repository.RecordRepository
	cache            *cache.ReportCache
	participantField string
	instrumentField  string
	logger           *zap.Logger
}

// NewRecordService creates a RecordService. participantField and instrumentField
// name the record keys copied into indexed columns.
func NewRecordService(repo repository.RecordRepository, reports *cache.ReportCache, participantField, instrumentField string, logger *zap.Logger) RecordService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &recordService{
		repo:             repo,
		cache:            reports,
		participantField: participantField,
		instrumentField:  instrumentField,
		logger:           logger.Named("records"),
	}
}

func (s *recordService) Ingest(ctx context.Context, req *domain.IngestRecordsRequest) (*domain.IngestRecordsResponse, error) {
	records := make([]domain.Record, 0, len(req.Records))
	var missing []int
	for i, raw := range req.Records {
		participant, ok := raw.Text(s.participantField)
		if !ok {
			missing = append(missing, i)
			continue
		}
		rec := domain.Record{
			ID:            uuid.New(),
			ParticipantID: participant,
			Fields:        raw,
		}
		if s.instrumentField != "" {
			rec.Instrument, _ = raw.Text(s.instrumentField)
		}
		records = append(records, rec)
	}
	if len(missing) > 0 {
		return nil, &MissingParticipantError{Field: s.participantField, Indexes: missing}
	}

	if err := s.repo.CreateBatch(ctx, records); err != nil {
		return nil, err
	}

	if err := s.cache.Invalidate(ctx); err != nil {
		s.logger.Warn("report cache invalidation failed", zap.Error(err))
	}
	s.logger.Info("records ingested", zap.Int("count", len(records)))

	resp := &domain.IngestRecordsResponse{
		Ingested: len(records),
		IDs:      make([]uuid.UUID, len(records)),
	}
	for i, rec := range records {
		resp.IDs[i] = rec.ID
	}
	return resp, nil
}

func (s *recordService) List(ctx context.Context, filter domain.RecordFilter) (*domain.RecordListResponse, error) {
	records, err := s.repo.List(ctx, filter)
	if err != nil {
		return nil, err
	}

	limit := pagination.NormalizeLimit(filter.Limit)
	hasMore := len(records) > limit

	// Trim to actual limit
	if hasMore {
		records = records[:limit]
	}

	response := &domain.RecordListResponse{
		Data: records,
		Pagination: domain.PaginationResponse{
			HasMore: hasMore,
		},
	}
	if response.Data == nil {
		response.Data = []domain.Record{}
	}

	// Set next cursor if there are more results
	if hasMore && len(records) > 0 {
		last := records[len(records)-1]
		cursor := &pagination.Cursor{
			ID:        last.ID,
			CreatedAt: last.CreatedAt,
		}
		response.Pagination.NextCursor = cursor.Encode()
	}

	return response, nil
}

func (s *recordService) Participants(ctx context.Context) ([]domain.ParticipantSummary, error) {
	out, err := s.repo.Participants(ctx)
	if err != nil {
		return nil, err
	}
	if out == nil {
		out = []domain.ParticipantSummary{}
	}
	return out, nil
}
