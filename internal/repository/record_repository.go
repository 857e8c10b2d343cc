package repository

import (
	"context"

	"github.com/blaisecz/health-trends/internal/domain"
	"github.com/blaisecz/health-trends/pkg/pagination"
	"github.com/rotisserie/eris"
	"gorm.io/gorm"
)

// insertBatchSize bounds the rows per INSERT statement.
const insertBatchSize = 500

type RecordRepository interface {
	CreateBatch(ctx context.Context, records []domain.Record) error
	List(ctx context.Context, filter domain.RecordFilter) ([]domain.Record, error)
	ListAll(ctx context.Context) ([]domain.RawRecord, error)
	ListByParticipant(ctx context.Context, participantID string) ([]domain.RawRecord, error)
	Participants(ctx context.Context) ([]domain.ParticipantSummary, error)
}

type recordRepository struct {
	db *gorm.DB
}

func NewRecordRepository(db *gorm.DB) RecordRepository {
	return &recordRepository{db: db}
}

func (r *recordRepository) CreateBatch(ctx context.Context, records []domain.Record) error {
	if len(records) == 0 {
		return nil
	}
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return tx.CreateInBatches(&records, insertBatchSize).Error
	})
	if err != nil {
		return eris.Wrapf(err, "insert %d records", len(records))
	}
	return nil
}

func (r *recordRepository) List(ctx context.Context, filter domain.RecordFilter) ([]domain.Record, error) {
	query := r.db.WithContext(ctx).Order("created_at DESC, id DESC")

	if filter.ParticipantID != "" {
		query = query.Where("participant_id = ?", filter.ParticipantID)
	}

	// Apply cursor pagination
	if filter.Cursor != "" {
		cursor, err := pagination.DecodeCursor(filter.Cursor)
		if err != nil {
			return nil, eris.Wrap(domain.ErrInvalidInput, err.Error())
		}
		// For DESC order: records created before the cursor,
		// or at the same instant with a smaller id
		query = query.Where(
			"(created_at < ?) OR (created_at = ? AND id < ?)",
			cursor.CreatedAt, cursor.CreatedAt, cursor.ID,
		)
	}

	// Fetch one extra to determine if there are more results
	limit := pagination.NormalizeLimit(filter.Limit)
	query = query.Limit(limit + 1)

	var records []domain.Record
	if err := query.Find(&records).Error; err != nil {
		return nil, eris.Wrap(err, "list records")
	}
	return records, nil
}

func (r *recordRepository) ListAll(ctx context.Context) ([]domain.RawRecord, error) {
	var records []domain.Record
	if err := r.db.WithContext(ctx).Order("created_at, id").Find(&records).Error; err != nil {
		return nil, eris.Wrap(err, "load records")
	}
	return rawFields(records), nil
}

func (r *recordRepository) ListByParticipant(ctx context.Context, participantID string) ([]domain.RawRecord, error) {
	var records []domain.Record
	err := r.db.WithContext(ctx).
		Where("participant_id = ?", participantID).
		Order("created_at, id").
		Find(&records).Error
	if err != nil {
		return nil, eris.Wrapf(err, "load records of %s", participantID)
	}
	if len(records) == 0 {
		return nil, domain.ErrNotFound
	}
	return rawFields(records), nil
}

func (r *recordRepository) Participants(ctx context.Context) ([]domain.ParticipantSummary, error) {
	var out []domain.ParticipantSummary
	err := r.db.WithContext(ctx).
		Model(&domain.Record{}).
		Select("participant_id, COUNT(*) AS records").
		Group("participant_id").
		Order("participant_id").
		Scan(&out).Error
	if err != nil {
		return nil, eris.Wrap(err, "list participants")
	}
	return out, nil
}

func rawFields(records []domain.Record) []domain.RawRecord {
	out := make([]domain.RawRecord, 0, len(records))
	for _, rec := range records {
		out = append(out, rec.Fields)
	}
	return out
}
