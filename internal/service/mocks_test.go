package service

import (
	"context"
	"sort"
	"time"

	"github.com/blaisecz/health-trends/internal/cache"
	"github.com/blaisecz/health-trends/internal/domain"
	"github.com/google/uuid"
)

// MockRecordRepository is an in-memory RecordRepository
type MockRecordRepository struct {
	records   []domain.Record
	listCalls int
	err       error
	// afterList runs once the rows of ListAll have been read.
	afterList func()
}

func NewMockRecordRepository(raw ...domain.RawRecord) *MockRecordRepository {
	m := &MockRecordRepository{}
	base := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	for i, r := range raw {
		pid, _ := r.Text("participant_code")
		m.records = append(m.records, domain.Record{
			ID:            uuid.New(),
			ParticipantID: pid,
			Fields:        r,
			CreatedAt:     base.Add(time.Duration(i) * time.Minute),
		})
	}
	return m
}

func (m *MockRecordRepository) CreateBatch(ctx context.Context, records []domain.Record) error {
	if m.err != nil {
		return m.err
	}
	m.records = append(m.records, records...)
	return nil
}

func (m *MockRecordRepository) List(ctx context.Context, filter domain.RecordFilter) ([]domain.Record, error) {
	if m.err != nil {
		return nil, m.err
	}
	var out []domain.Record
	for _, r := range m.records {
		if filter.ParticipantID == "" || r.ParticipantID == filter.ParticipantID {
			out = append(out, r)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	if filter.Limit > 0 && len(out) > filter.Limit+1 {
		out = out[:filter.Limit+1]
	}
	return out, nil
}

func (m *MockRecordRepository) ListAll(ctx context.Context) ([]domain.RawRecord, error) {
	m.listCalls++
	if m.err != nil {
		return nil, m.err
	}
	out := make([]domain.RawRecord, 0, len(m.records))
	for _, r := range m.records {
		out = append(out, r.Fields)
	}
	if m.afterList != nil {
		m.afterList()
	}
	return out, nil
}

func (m *MockRecordRepository) ListByParticipant(ctx context.Context, participantID string) ([]domain.RawRecord, error) {
	m.listCalls++
	if m.err != nil {
		return nil, m.err
	}
	var out []domain.RawRecord
	for _, r := range m.records {
		if r.ParticipantID == participantID {
			out = append(out, r.Fields)
		}
	}
	if len(out) == 0 {
		return nil, domain.ErrNotFound
	}
	return out, nil
}

func (m *MockRecordRepository) Participants(ctx context.Context) ([]domain.ParticipantSummary, error) {
	if m.err != nil {
		return nil, m.err
	}
	counts := make(map[string]int64)
	for _, r := range m.records {
		counts[r.ParticipantID]++
	}
	var out []domain.ParticipantSummary
	for id, n := range counts {
		out = append(out, domain.ParticipantSummary{ParticipantID: id, Records: n})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ParticipantID < out[j].ParticipantID })
	return out, nil
}

// MockKVStore is an in-memory cache.KVStore
type MockKVStore struct {
	data    map[string]string
	deletes int
}

func NewMockKVStore() *MockKVStore {
	return &MockKVStore{data: make(map[string]string)}
}

func (m *MockKVStore) Get(ctx context.Context, key string) (string, error) {
	v, ok := m.data[key]
	if !ok {
		return "", cache.ErrMiss
	}
	return v, nil
}

func (m *MockKVStore) Set(ctx context.Context, key, value string, ttl time.Duration) error {
	m.data[key] = value
	return nil
}

func (m *MockKVStore) Delete(ctx context.Context, keys ...string) error {
	m.deletes++
	for _, k := range keys {
		delete(m.data, k)
	}
	return nil
}

// MockSummaryLLM returns a fixed narrative
type MockSummaryLLM struct {
	narrative *domain.ClinicalNarrative
	err       error
	received  *domain.ParticipantReport
}

func (m *MockSummaryLLM) Summarize(ctx context.Context, report *domain.ParticipantReport) (*domain.ClinicalNarrative, error) {
	m.received = report
	if m.err != nil {
		return nil, m.err
	}
	return m.narrative, nil
}
