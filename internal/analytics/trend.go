package analytics

import (
	"math"

	"github.com/blaisecz/health-trends/internal/domain"
)

// epsilon absorbs floating point noise when comparing a change to its threshold.
const epsilon = 1e-9

// DetectTrend compares the mean of the first half of values with the mean of the
// second half. The first half holds len/2 items, the remainder goes to the second.
// It returns false when fewer than two values are available.
func DetectTrend(field string, values []float64, polarity Polarity, minChange float64) (domain.TrendResult, bool) {
	if len(values) < 2 {
		return domain.TrendResult{}, false
	}

	half := len(values) / 2
	first := mean(values[:half])
	second := mean(values[half:])
	change := second - first

	direction := domain.TrendStable
	if math.Abs(change) >= minChange-epsilon {
		worse := change > 0
		if polarity == HigherIsBetter {
			worse = change < 0
		}
		if worse {
			direction = domain.TrendWorsening
		} else {
			direction = domain.TrendImproving
		}
	}

	return domain.TrendResult{
		Field:          field,
		Direction:      direction,
		FirstHalfMean:  round2(first),
		SecondHalfMean: round2(second),
		Change:         round2(change),
		Measurements:   len(values),
	}, true
}

// ParticipantTrends runs DetectTrend on every trend field of s. Fields with fewer
// than two valid measurements are absent from the result. A series with fewer than
// two dated points yields an empty map.
func (e *Engine) ParticipantTrends(s *ParticipantSeries) map[string]domain.TrendResult {
	trends := make(map[string]domain.TrendResult)
	if s == nil || len(s.Points) < 2 {
		return trends
	}
	for _, field := range e.tables.TrendFields {
		result, ok := DetectTrend(field, s.FieldValues(field), e.norm.Polarity(field), e.tables.Thresholds.TrendMinChange)
		if ok {
			trends[field] = result
		}
	}
	return trends
}

// AnalyzeTrends builds the per-participant trend report for a record collection.
// Participants with fewer than two dated records are left out.
func (e *Engine) AnalyzeTrends(records []domain.RawRecord) domain.TrendReport {
	diags := newDiagnostics(e.logger)
	ds := e.group(records, diags)
	report := e.trendReport(ds, diags)
	report.Diagnostics = diags.list()
	return report
}

func (e *Engine) trendReport(ds dataset, diags *diagnostics) domain.TrendReport {
	report := domain.TrendReport{
		Participants:   make(map[string]domain.ParticipantTrend),
		FieldEvolution: make(map[string]domain.FieldEvolution),
	}

	totalRecords := 0
	for _, id := range ds.ids {
		s := ds.series[id]
		if len(s.Points) < 2 {
			continue
		}
		e.guard(diags, id, func() {
			pt := domain.ParticipantTrend{
				ParticipantID: id,
				TotalRecords:  len(s.Points),
				FirstDate:     s.FirstDate(),
				LastDate:      s.LastDate(),
				TimeSpanDays:  s.TimeSpanDays(),
				Fields:        e.ParticipantTrends(s),
			}
			report.Participants[id] = pt
		})
	}

	for _, id := range ds.ids {
		pt, ok := report.Participants[id]
		if !ok {
			continue
		}
		totalRecords += pt.TotalRecords

		improving, worsening := false, false
		for field, tr := range pt.Fields {
			evo := report.FieldEvolution[field]
			switch tr.Direction {
			case domain.TrendImproving:
				evo.Improving++
				improving = true
			case domain.TrendWorsening:
				evo.Worsening++
				worsening = true
			default:
				evo.Stable++
			}
			report.FieldEvolution[field] = evo
			report.Summary.TotalMeasurements += tr.Measurements
		}
		if improving {
			report.Summary.ParticipantsImproving++
		}
		if worsening {
			report.Summary.ParticipantsWorsening++
		}
	}

	report.Summary.ParticipantsAnalyzed = len(report.Participants)
	if n := len(report.Participants); n > 0 {
		report.Summary.AvgRecordsPerParticipant = round1(float64(totalRecords) / float64(n))
	}
	return report
}
