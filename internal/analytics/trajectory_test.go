package analytics

import (
	"fmt"
	"testing"

	"github.com/blaisecz/health-trends/internal/domain"
	"github.com/stretchr/testify/assert"
)

func trendSet(improving, worsening, stable int) map[string]domain.TrendResult {
	out := make(map[string]domain.TrendResult)
	add := func(n int, dir domain.TrendDirection) {
		for i := 0; i < n; i++ {
			field := fmt.Sprintf("%s_%d", dir, i)
			out[field] = domain.TrendResult{Field: field, Direction: dir}
		}
	}
	add(improving, domain.TrendImproving)
	add(worsening, domain.TrendWorsening)
	add(stable, domain.TrendStable)
	return out
}

func TestClassifyTrajectory(t *testing.T) {
	tests := []struct {
		name   string
		trends map[string]domain.TrendResult
		want   domain.TrajectoryType
	}{
		{"mostly improving", trendSet(7, 1, 3), domain.TrajectoryImproving},
		{"mostly worsening", trendSet(0, 4, 1), domain.TrajectoryDeclining},
		{"split evenly", trendSet(2, 2, 0), domain.TrajectoryFluctuating},
		{"improving without majority", trendSet(3, 1, 2), domain.TrajectoryFluctuating},
		{"improving below majority and nothing worsening", trendSet(1, 0, 3), domain.TrajectoryStable},
		{"all stable", trendSet(0, 0, 5), domain.TrajectoryStable},
		{"no trends", trendSet(0, 0, 0), domain.TrajectoryStable},
		{"exactly at majority is not enough", trendSet(3, 0, 2), domain.TrajectoryStable},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ClassifyTrajectory("P1", tt.trends, 0.6)
			assert.Equal(t, tt.want, got.Type)
			assert.Equal(t, len(tt.trends), got.Total)
			assert.Equal(t, got.Total, got.Improving+got.Worsening+got.Stable)
			assert.NotEmpty(t, got.Reasons)
		})
	}
}

func TestClassifyTrajectories(t *testing.T) {
	e := newTestEngine(t)

	report := e.ClassifyTrajectories(cohort())

	assert.Equal(t, domain.TrajectoryDeclining, report.Participants["RM-001"].Type)
	assert.Equal(t, domain.TrajectoryImproving, report.Participants["RM-002"].Type)
	assert.Equal(t, domain.TrajectoryStable, report.Participants["RM-003"].Type)
	assert.NotContains(t, report.Participants, "RM-004")
	assert.Equal(t, domain.TrajectorySummary{
		ConsistentlyImproving: 1,
		ConsistentlyDeclining: 1,
		Stable:                1,
		TotalAnalyzed:         3,
	}, report.Summary)
}
