package analytics

import (
	"fmt"
	"math"
	"sort"
	"strings"

	"github.com/blaisecz/health-trends/internal/domain"
)

// ResponseAnomalies flags participants whose answers look unreliable: the same
// answer set submitted over and over, or a health status that jumps across most
// of its scale between two consecutive questionnaires.
func (e *Engine) ResponseAnomalies(records []domain.RawRecord) domain.AnomalyReport {
	diags := newDiagnostics(e.logger)
	ds := e.group(records, diags)

	report := domain.AnomalyReport{Suspicious: []domain.AnomalyAlert{}}

	for _, id := range ds.ids {
		s := ds.series[id]
		e.guard(diags, id, func() {
			report.Summary.ParticipantsAnalyzed++
			alert := e.anomalyAlert(s)
			if len(alert.Anomalies) == 0 {
				return
			}
			report.Suspicious = append(report.Suspicious, alert)
			report.Summary.TotalAnomalies += len(alert.Anomalies)
		})
	}

	report.Summary.ParticipantsWithAnomalies = len(report.Suspicious)
	report.Summary.AnomalyRate = percentage(len(report.Suspicious), report.Summary.ParticipantsAnalyzed)
	report.Diagnostics = diags.list()
	return report
}

func (e *Engine) anomalyAlert(s *ParticipantSeries) domain.AnomalyAlert {
	patterns := e.responsePatterns(s)
	alert := domain.AnomalyAlert{
		ParticipantID:  s.ParticipantID,
		Anomalies:      []domain.Anomaly{},
		TotalResponses: len(patterns),
		Recommendation: "Check the participant's answers manually",
	}
	if a, ok := e.identicalResponses(patterns); ok {
		alert.Anomalies = append(alert.Anomalies, a)
	}
	if a, ok := e.healthStatusJump(s); ok {
		alert.Anomalies = append(alert.Anomalies, a)
	}
	return alert
}

// responsePatterns renders the normalized trend-field answers of every record
// that answered at least one of them.
func (e *Engine) responsePatterns(s *ParticipantSeries) []string {
	fields := append([]string(nil), e.tables.TrendFields...)
	sort.Strings(fields)

	var patterns []string
	for _, p := range s.all() {
		var b strings.Builder
		for _, field := range fields {
			if v, ok := p.Values[field]; ok {
				fmt.Fprintf(&b, "%s=%g;", field, v)
			}
		}
		if b.Len() > 0 {
			patterns = append(patterns, b.String())
		}
	}
	return patterns
}

// identicalResponses reports when the most common answer set makes up at least
// AnomalyIdenticalShare of the responses.
func (e *Engine) identicalResponses(patterns []string) (domain.Anomaly, bool) {
	th := e.tables.Thresholds
	n := len(patterns)
	if n == 0 || n < th.AnomalyMinResponses {
		return domain.Anomaly{}, false
	}

	counts := make(map[string]int, n)
	most := 0
	for _, p := range patterns {
		counts[p]++
		if counts[p] > most {
			most = counts[p]
		}
	}
	if float64(most) < th.AnomalyIdenticalShare*float64(n)-epsilon {
		return domain.Anomaly{}, false
	}
	return domain.Anomaly{
		Type:        domain.AnomalyIdenticalResponses,
		Description: fmt.Sprintf("%d/%d identical responses", most, n),
		Severity:    domain.RiskMedium,
	}, true
}

// healthStatusJump reports the first change of at least AnomalyHealthJump points
// between consecutive dated health-status answers.
func (e *Engine) healthStatusJump(s *ParticipantSeries) (domain.Anomaly, bool) {
	field := e.tables.HealthStatusField
	if field == "" {
		return domain.Anomaly{}, false
	}
	th := e.tables.Thresholds

	var answered []TemporalPoint
	for _, p := range s.Points {
		if _, ok := p.Values[field]; ok {
			answered = append(answered, p)
		}
	}
	if len(answered) < th.AnomalyMinHealthAnswers {
		return domain.Anomaly{}, false
	}

	for i := 1; i < len(answered); i++ {
		prev, cur := answered[i-1], answered[i]
		change := math.Abs(cur.Values[field] - prev.Values[field])
		if change >= th.AnomalyHealthJump-epsilon {
			desc := fmt.Sprintf("Extreme change in health status (%g points between %s and %s)",
				change, prev.Date.Format(dateLayout), cur.Date.Format(dateLayout))
			return domain.Anomaly{
				Type:        domain.AnomalyExtremeChange,
				Description: desc,
				Severity:    domain.RiskHigh,
			}, true
		}
	}
	return domain.Anomaly{}, false
}
