package seed

import (
	"context"
	"testing"
	"time"

	"github.com/blaisecz/health-trends/internal/analytics"
	"github.com/blaisecz/health-trends/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

var start = time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)

func TestGenerate_Deterministic(t *testing.T) {
	a := Generate(5, 6, start, 42)
	b := Generate(5, 6, start, 42)

	require.Len(t, a, 30)
	assert.Equal(t, a, b)
	assert.Equal(t, ParticipantCode(0), a[0]["participant_code"])
}

func TestGenerate_AnswersAreInVocabulary(t *testing.T) {
	tables := analytics.DefaultTables()
	n := analytics.NewNormalizer(tables)

	for _, rec := range Generate(5, 12, start, 7) {
		for field, answer := range rec {
			if !n.Known(field) {
				continue
			}
			_, ok := n.Normalize(field, answer)
			assert.True(t, ok, "%s=%v", field, answer)
		}
		_, ok := analytics.ResolveDate(rec, tables.DateFields)
		assert.True(t, ok)
	}
}

func TestGenerate_ProfilesDrive(t *testing.T) {
	engine, err := analytics.NewEngine(analytics.DefaultTables(), nil)
	require.NoError(t, err)

	report := engine.ClassifyTrajectories(Generate(5, 12, start, 3))

	assert.Equal(t, domain.TrajectoryImproving, report.Participants[ParticipantCode(0)].Type)
	assert.Equal(t, domain.TrajectoryDeclining, report.Participants[ParticipantCode(1)].Type)
}

type memoryRepo struct {
	records []domain.Record
}

func (m *memoryRepo) CreateBatch(ctx context.Context, records []domain.Record) error {
	m.records = append(m.records, records...)
	return nil
}

func (m *memoryRepo) List(ctx context.Context, filter domain.RecordFilter) ([]domain.Record, error) {
	return m.records, nil
}

func (m *memoryRepo) ListAll(ctx context.Context) ([]domain.RawRecord, error) {
	return nil, nil
}

func (m *memoryRepo) ListByParticipant(ctx context.Context, participantID string) ([]domain.RawRecord, error) {
	return nil, nil
}

func (m *memoryRepo) Participants(ctx context.Context) ([]domain.ParticipantSummary, error) {
	seen := map[string]bool{}
	var out []domain.ParticipantSummary
	for _, r := range m.records {
		if !seen[r.ParticipantID] {
			seen[r.ParticipantID] = true
			out = append(out, domain.ParticipantSummary{ParticipantID: r.ParticipantID})
		}
	}
	return out, nil
}

func TestRun_Idempotent(t *testing.T) {
	repo := &memoryRepo{}
	ctx := context.Background()

	require.NoError(t, Run(ctx, repo, zap.NewNop()))
	n := len(repo.records)
	assert.Equal(t, participants*seededWeeks, n)

	require.NoError(t, Run(ctx, repo, zap.NewNop()))
	assert.Len(t, repo.records, n)
}
