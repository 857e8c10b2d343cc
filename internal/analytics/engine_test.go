package analytics

import (
	"encoding/json"
	"math/rand"
	"testing"

	"github.com/blaisecz/health-trends/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestEngine(t *testing.T) *Engine {
	t.Helper()
	e, err := NewEngine(DefaultTables(), nil)
	require.NoError(t, err)
	return e
}

// rec builds a record for participant on date followed by field/value pairs.
func rec(participant, date string, kv ...any) domain.RawRecord {
	r := domain.RawRecord{"participant_code": participant}
	if date != "" {
		r["questionnaire_date"] = date
	}
	for i := 0; i+1 < len(kv); i += 2 {
		r[kv[i].(string)] = kv[i+1]
	}
	return r
}

func cohort() []domain.RawRecord {
	return []domain.RawRecord{
		rec("RM-001", "2024-01-08", "dizziness_today", "Nunca", "fatigue_today", "Raramente", "health_status", "Bem", "took_medications_yesterday", "Sim"),
		rec("RM-001", "2024-01-15", "dizziness_today", "Nunca", "fatigue_today", "Raramente", "health_status", "Bem", "took_medications_yesterday", "Não"),
		rec("RM-001", "2024-02-12", "dizziness_today", "Sempre", "fatigue_today", "Sempre", "health_status", "Mal", "took_medications_yesterday", "Não"),
		rec("RM-001", "2024-02-19", "dizziness_today", "Sempre", "fatigue_today", "Frequentemente", "health_status", "Mal", "took_medications_yesterday", "Não"),
		rec("RM-002", "2024-01-09", "sleep_quality_last_night", "Má", "pain_today", "Sempre", "vas_health_today", "40"),
		rec("RM-002", "2024-01-23", "sleep_quality_last_night", "Razoável", "pain_today", "Frequentemente", "vas_health_today", 55.0),
		rec("RM-002", "2024-02-06", "sleep_quality_last_night", "Boa", "pain_today", "Nunca", "vas_health_today", "70,5"),
		rec("RM-002", "2024-02-20", "sleep_quality_last_night", "Muito boa", "pain_today", "Nunca"),
		rec("RM-003", "2024-03-01", "sleep_quality_last_night", "Boa"),
		rec("RM-003", "2024-03-01", "sleep_quality_last_night", "Boa", "redcap_repeat_instance", "2"),
		rec("RM-004", "", "took_medications_yesterday", "Sim"),
		rec("", "2024-01-10", "dizziness_today", "Sempre"),
	}
}

func shuffled(records []domain.RawRecord, seed int64) []domain.RawRecord {
	out := append([]domain.RawRecord(nil), records...)
	r := rand.New(rand.NewSource(seed))
	r.Shuffle(len(out), func(i, j int) { out[i], out[j] = out[j], out[i] })
	return out
}

func TestNewEngine_RejectsInvalidTables(t *testing.T) {
	tables := DefaultTables()
	tables.RiskRules = append(tables.RiskRules, "unknown_rule")

	_, err := NewEngine(tables, nil)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestNewEngine_CopiesTables(t *testing.T) {
	tables := DefaultTables()
	e, err := NewEngine(tables, nil)
	require.NoError(t, err)

	tables.Vocabularies["dizziness_today"].Levels["Talvez"] = 2
	tables.TrendFields[0] = "changed"

	_, ok := e.Normalizer().Normalize("dizziness_today", "Talvez")
	assert.False(t, ok)
	assert.Equal(t, "health_status", e.Tables().TrendFields[0])
}

func TestEngine_Idempotent(t *testing.T) {
	e := newTestEngine(t)
	records := cohort()

	type run struct {
		Trends       domain.TrendReport
		Trajectories domain.TrajectoryReport
		Seasonal     domain.SeasonalReport
		Risk         domain.RiskReport
		Medication   domain.MedicationReport
		Sleep        domain.SleepReport
		Anomalies    domain.AnomalyReport
	}
	all := func() []byte {
		out, err := json.Marshal(run{
			Trends:       e.AnalyzeTrends(records),
			Trajectories: e.ClassifyTrajectories(records),
			Seasonal:     e.SeasonalPatterns(records),
			Risk:         e.ScoreRisk(records),
			Medication:   e.MedicationAlerts(records),
			Sleep:        e.SleepAlerts(records),
			Anomalies:    e.ResponseAnomalies(records),
		})
		require.NoError(t, err)
		return out
	}

	assert.Equal(t, string(all()), string(all()))
}

func TestEngine_Commutative(t *testing.T) {
	e := newTestEngine(t)
	records := cohort()

	wantTrends := e.AnalyzeTrends(records)
	wantTrajectories := e.ClassifyTrajectories(records)
	wantRisk := e.ScoreRisk(records)
	wantSeasonal := e.SeasonalPatterns(records)
	wantAnomalies := e.ResponseAnomalies(records)

	for seed := int64(1); seed <= 5; seed++ {
		input := shuffled(records, seed)
		assert.Equal(t, wantTrends, e.AnalyzeTrends(input), "seed %d", seed)
		assert.Equal(t, wantTrajectories, e.ClassifyTrajectories(input), "seed %d", seed)
		assert.Equal(t, wantRisk, e.ScoreRisk(input), "seed %d", seed)
		assert.Equal(t, wantSeasonal, e.SeasonalPatterns(input), "seed %d", seed)
		assert.Equal(t, wantAnomalies, e.ResponseAnomalies(input), "seed %d", seed)
	}
}

func TestEngine_ParticipantFailureIsIsolated(t *testing.T) {
	e := newTestEngine(t)
	e.rules = append(e.rules, Rule{
		Name: "explodes",
		Evaluate: func(in RuleInput) []domain.RiskContribution {
			if in.Series.ParticipantID == "RM-002" {
				panic("boom")
			}
			return nil
		},
	})

	report := e.ScoreRisk(cohort())

	assert.Contains(t, report.Scores, "RM-001")
	assert.Contains(t, report.Scores, "RM-003")
	assert.NotContains(t, report.Scores, "RM-002")

	var failures []domain.Diagnostic
	for _, d := range report.Diagnostics {
		if d.Kind == domain.DiagnosticParticipantFailure {
			failures = append(failures, d)
		}
	}
	require.Len(t, failures, 1)
	assert.Equal(t, "RM-002", failures[0].ParticipantID)
	assert.Equal(t, "boom", failures[0].Message)
}

func TestEngine_Diagnostics(t *testing.T) {
	e := newTestEngine(t)
	records := []domain.RawRecord{
		rec("RM-001", "2024-01-08", "dizziness_today", "Talvez"),
		rec("RM-001", "2024-01-09", "dizziness_today", "Talvez"),
		rec("RM-001", "", "dizziness_today", "Nunca"),
		rec("", "2024-01-09", "dizziness_today", "Nunca"),
	}

	report := e.AnalyzeTrends(records)

	assert.Equal(t, []domain.Diagnostic{
		{Kind: domain.DiagnosticMissingDate, ParticipantID: "RM-001", Count: 1},
		{Kind: domain.DiagnosticMissingParticipant, Field: "participant_code", Count: 1},
		{Kind: domain.DiagnosticUnrecognizedValue, ParticipantID: "RM-001", Field: "dizziness_today", Value: "Talvez", Count: 2},
	}, report.Diagnostics)
}
