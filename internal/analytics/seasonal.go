package analytics

import (
	"fmt"
	"sort"

	"github.com/blaisecz/health-trends/internal/domain"
)

type bucket struct {
	name     string
	records  int
	severity []float64
	health   []float64
}

func (b *bucket) stats() domain.BucketStats {
	st := domain.BucketStats{
		RecordCount:        b.records,
		AvgSymptomSeverity: round2(mean(b.severity)),
		SymptomsReported:   len(b.severity),
	}
	if len(b.health) > 0 {
		h := round2(mean(b.health))
		st.AvgHealthStatus = &h
	}
	return st
}

// buckets keeps month or weekday buckets in the order they were first seen.
type buckets struct {
	order []*bucket
	index map[string]*bucket
}

func newBuckets() *buckets {
	return &buckets{index: make(map[string]*bucket)}
}

func (bs *buckets) get(name string) *bucket {
	if b, ok := bs.index[name]; ok {
		return b
	}
	b := &bucket{name: name}
	bs.index[name] = b
	bs.order = append(bs.order, b)
	return b
}

// rank returns the buckets with the highest and lowest mean severity.
// On an exact tie the bucket seen first wins.
func (bs *buckets) rank() (worst, best *bucket) {
	var worstMean, bestMean float64
	for _, b := range bs.order {
		if len(b.severity) == 0 {
			continue
		}
		m := mean(b.severity)
		if worst == nil || m > worstMean {
			worst, worstMean = b, m
		}
		if best == nil || m < bestMean {
			best, bestMean = b, m
		}
	}
	return worst, best
}

func (bs *buckets) report() map[string]domain.BucketStats {
	out := make(map[string]domain.BucketStats, len(bs.order))
	for _, b := range bs.order {
		if len(b.severity) == 0 {
			continue
		}
		out[b.name] = b.stats()
	}
	return out
}

// SeasonalPatterns pools the records of every participant and aggregates symptom
// severity per calendar month and weekday. Records are visited in chronological
// order, so on a ranking tie the earlier month or weekday wins.
func (e *Engine) SeasonalPatterns(records []domain.RawRecord) domain.SeasonalReport {
	diags := newDiagnostics(e.logger)

	points := make([]TemporalPoint, 0, len(records))
	for _, rec := range records {
		id, _ := rec.Text(e.tables.ParticipantField)
		p := e.point(id, rec, diags)
		if !p.Dated {
			diags.add(domain.DiagnosticMissingDate, id, "", "", "")
			continue
		}
		points = append(points, p)
	}
	sort.SliceStable(points, func(i, j int) bool {
		a, b := points[i], points[j]
		if !a.Date.Equal(b.Date) {
			return a.Date.Before(b.Date)
		}
		if a.ParticipantID != b.ParticipantID {
			return a.ParticipantID < b.ParticipantID
		}
		return a.fingerprint < b.fingerprint
	})

	months, weekdays := newBuckets(), newBuckets()
	for _, p := range points {
		var severity, health []float64
		for _, field := range e.tables.SeasonalFields {
			if v, ok := p.Values[field]; ok {
				severity = append(severity, e.norm.Severity(field, v))
			}
		}
		if e.tables.HealthStatusField != "" {
			if v, ok := p.Values[e.tables.HealthStatusField]; ok {
				health = append(health, v)
			}
		}
		if len(severity) == 0 {
			continue
		}
		for _, b := range []*bucket{months.get(p.Date.Month().String()), weekdays.get(p.Date.Weekday().String())} {
			b.records++
			b.severity = append(b.severity, severity...)
			b.health = append(b.health, health...)
		}
	}

	report := domain.SeasonalReport{
		Monthly:  months.report(),
		Weekly:   weekdays.report(),
		Insights: []string{},
	}
	if worst, best := months.rank(); worst != nil {
		report.WorstMonth, report.BestMonth = worst.name, best.name
		report.Insights = append(report.Insights,
			fmt.Sprintf("Worst month for symptoms: %s (mean severity: %.2f)", worst.name, mean(worst.severity)),
			fmt.Sprintf("Best month for symptoms: %s (mean severity: %.2f)", best.name, mean(best.severity)),
		)
	}
	if worst, best := weekdays.rank(); worst != nil {
		report.WorstWeekday, report.BestWeekday = worst.name, best.name
		report.Insights = append(report.Insights,
			fmt.Sprintf("Worst weekday: %s (mean severity: %.2f)", worst.name, mean(worst.severity)),
			fmt.Sprintf("Best weekday: %s (mean severity: %.2f)", best.name, mean(best.severity)),
		)
	}
	report.Diagnostics = diags.list()
	return report
}
