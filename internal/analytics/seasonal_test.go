package analytics

import (
	"testing"

	"github.com/blaisecz/health-trends/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSeasonalPatterns_RanksMonths(t *testing.T) {
	e := newTestEngine(t)
	records := []domain.RawRecord{
		rec("P1", "2024-02-14", "dizziness_today", "Nunca"),
		rec("P1", "2024-01-10", "dizziness_today", "Sempre"),
		rec("P2", "2024-01-17", "dizziness_today", "Frequentemente"),
		rec("P2", "2024-02-21", "dizziness_today", "Raramente"),
	}

	report := e.SeasonalPatterns(records)

	assert.Equal(t, "January", report.WorstMonth)
	assert.Equal(t, "February", report.BestMonth)
	assert.Contains(t, report.Insights, "Worst month for symptoms: January (mean severity: 3.50)")
	assert.Contains(t, report.Insights, "Best month for symptoms: February (mean severity: 1.50)")

	jan := report.Monthly["January"]
	assert.Equal(t, 2, jan.RecordCount)
	assert.Equal(t, 2, jan.SymptomsReported)
	assert.Equal(t, 3.5, jan.AvgSymptomSeverity)
	assert.Nil(t, jan.AvgHealthStatus)

	// every date falls on a Wednesday
	require.Len(t, report.Weekly, 1)
	assert.Equal(t, 4, report.Weekly["Wednesday"].RecordCount)
	assert.Equal(t, "Wednesday", report.WorstWeekday)
	assert.Equal(t, "Wednesday", report.BestWeekday)
}

func TestSeasonalPatterns_TieGoesToEarlierBucket(t *testing.T) {
	e := newTestEngine(t)
	records := []domain.RawRecord{
		rec("P1", "2024-03-05", "fatigue_today", "Frequentemente"),
		rec("P1", "2024-01-09", "fatigue_today", "Frequentemente"),
	}

	report := e.SeasonalPatterns(records)

	assert.Equal(t, "January", report.WorstMonth)
	assert.Equal(t, "January", report.BestMonth)
}

func TestSeasonalPatterns_PoolsPolarities(t *testing.T) {
	e := newTestEngine(t)
	records := []domain.RawRecord{
		rec("P1", "2024-05-06", "health_status", "Bem", "pain_today", "Sempre"),
		rec("", "2024-05-07", "sleep_quality_last_night", "Muito má"),
		rec("P2", "2024-05-08", "muscle_weakness_today", "Sempre"),
		rec("P2", "", "pain_today", "Sempre"),
	}

	report := e.SeasonalPatterns(records)

	may := report.Monthly["May"]
	// health "Bem" is severity 2, pain "Sempre" 4, sleep "Muito má" severity 5
	assert.Equal(t, 2, may.RecordCount)
	assert.Equal(t, 3, may.SymptomsReported)
	assert.Equal(t, 3.67, may.AvgSymptomSeverity)
	require.NotNil(t, may.AvgHealthStatus)
	assert.Equal(t, 4.0, *may.AvgHealthStatus)
	assert.Len(t, report.Weekly, 2)
}

func TestSeasonalPatterns_Empty(t *testing.T) {
	e := newTestEngine(t)

	report := e.SeasonalPatterns(nil)

	assert.Empty(t, report.Monthly)
	assert.Empty(t, report.Insights)
	assert.Empty(t, report.WorstMonth)
}
