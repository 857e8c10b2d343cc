package analytics

import (
	"fmt"

	"github.com/blaisecz/health-trends/internal/domain"
)

// ClassifyTrajectory derives the participant-level label from field trends.
// The share of improving or worsening fields is taken over every trend result,
// stable ones included; fields without a result do not count.
func ClassifyTrajectory(participantID string, trends map[string]domain.TrendResult, majority float64) domain.Trajectory {
	t := domain.Trajectory{
		ParticipantID: participantID,
		Type:          domain.TrajectoryStable,
		Total:         len(trends),
	}
	for _, tr := range trends {
		switch tr.Direction {
		case domain.TrendImproving:
			t.Improving++
		case domain.TrendWorsening:
			t.Worsening++
		default:
			t.Stable++
		}
	}

	if t.Total == 0 {
		t.Reasons = []string{"No field has enough measurements for a trend"}
		return t
	}

	improvingShare := float64(t.Improving) / float64(t.Total)
	worseningShare := float64(t.Worsening) / float64(t.Total)

	switch {
	case t.Improving > t.Worsening && improvingShare > majority:
		t.Type = domain.TrajectoryImproving
		t.Reasons = []string{fmt.Sprintf("Improving in %d of %d fields", t.Improving, t.Total)}
	case t.Worsening > t.Improving && worseningShare > majority:
		t.Type = domain.TrajectoryDeclining
		t.Reasons = []string{fmt.Sprintf("Worsening in %d of %d fields", t.Worsening, t.Total)}
	case t.Improving > 0 && t.Worsening > 0:
		t.Type = domain.TrajectoryFluctuating
		t.Reasons = []string{fmt.Sprintf("Mixed evolution: %d improving, %d worsening", t.Improving, t.Worsening)}
	default:
		t.Reasons = []string{fmt.Sprintf("No clear direction: %d of %d fields stable", t.Stable, t.Total)}
	}
	return t
}

// ClassifyTrajectories labels every participant with at least two dated records.
func (e *Engine) ClassifyTrajectories(records []domain.RawRecord) domain.TrajectoryReport {
	diags := newDiagnostics(e.logger)
	ds := e.group(records, diags)
	report := e.trajectoryReport(ds, diags)
	report.Diagnostics = diags.list()
	return report
}

func (e *Engine) trajectoryReport(ds dataset, diags *diagnostics) domain.TrajectoryReport {
	report := domain.TrajectoryReport{Participants: make(map[string]domain.Trajectory)}
	for _, id := range ds.ids {
		s := ds.series[id]
		if len(s.Points) < 2 {
			continue
		}
		e.guard(diags, id, func() {
			t := ClassifyTrajectory(id, e.ParticipantTrends(s), e.tables.Thresholds.TrajectoryMajority)
			report.Participants[id] = t
		})
	}

	for _, t := range report.Participants {
		switch t.Type {
		case domain.TrajectoryImproving:
			report.Summary.ConsistentlyImproving++
		case domain.TrajectoryDeclining:
			report.Summary.ConsistentlyDeclining++
		case domain.TrajectoryFluctuating:
			report.Summary.Fluctuating++
		default:
			report.Summary.Stable++
		}
	}
	report.Summary.TotalAnalyzed = len(report.Participants)
	return report
}
