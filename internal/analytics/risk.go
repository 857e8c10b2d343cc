package analytics

import (
	"sort"

	"github.com/blaisecz/health-trends/internal/domain"
)

// ScoreParticipant scores a single series.
func (e *Engine) ScoreParticipant(s *ParticipantSeries) domain.RiskScore {
	return e.Score(RuleInput{
		Series:  s,
		Trends:  e.ParticipantTrends(s),
		Signals: e.ComputeSignals(s),
	})
}

// ScoreRisk scores every participant with at least one record and buckets the
// results into tiered alert lists.
func (e *Engine) ScoreRisk(records []domain.RawRecord) domain.RiskReport {
	diags := newDiagnostics(e.logger)
	ds := e.group(records, diags)

	report := domain.RiskReport{
		HighPriority:   []domain.Alert{},
		MediumPriority: []domain.Alert{},
		LowPriority:    []domain.Alert{},
		Scores:         make(map[string]domain.RiskScore, len(ds.ids)),
	}

	for _, id := range ds.ids {
		s := ds.series[id]
		e.guard(diags, id, func() {
			report.Scores[id] = e.ScoreParticipant(s)
		})
	}

	for _, id := range ds.ids {
		rs, ok := report.Scores[id]
		if !ok {
			continue
		}
		alert := domain.Alert{
			ParticipantID:  id,
			Tier:           rs.Tier,
			Score:          rs.Score,
			Factors:        rs.Factors,
			Recommendation: Recommendation(rs.Tier),
			TotalRecords:   rs.TotalRecords,
			LastRecordDate: rs.LastRecordDate,
		}
		switch rs.Tier {
		case domain.RiskHigh:
			report.HighPriority = append(report.HighPriority, alert)
		case domain.RiskMedium:
			report.MediumPriority = append(report.MediumPriority, alert)
		default:
			report.LowPriority = append(report.LowPriority, alert)
		}
	}
	sortAlerts(report.HighPriority)
	sortAlerts(report.MediumPriority)
	sortAlerts(report.LowPriority)

	total := len(report.Scores)
	report.Summary = domain.RiskSummary{
		TotalParticipants:  total,
		HighCount:          len(report.HighPriority),
		MediumCount:        len(report.MediumPriority),
		LowCount:           len(report.LowPriority),
		HighPercentage:     percentage(len(report.HighPriority), total),
		MediumPercentage:   percentage(len(report.MediumPriority), total),
		RequiringAttention: len(report.HighPriority) + len(report.MediumPriority),
	}
	report.Diagnostics = diags.list()
	return report
}

// sortAlerts orders alerts by descending score, then participant id.
func sortAlerts(alerts []domain.Alert) {
	sort.SliceStable(alerts, func(i, j int) bool {
		if alerts[i].Score != alerts[j].Score {
			return alerts[i].Score > alerts[j].Score
		}
		return alerts[i].ParticipantID < alerts[j].ParticipantID
	})
}
