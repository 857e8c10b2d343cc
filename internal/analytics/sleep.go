package analytics

import (
	"fmt"
	"sort"

	"github.com/blaisecz/health-trends/internal/domain"
)

const (
	pointsSleepCritical   = 30
	pointsSleepConcerning = 15
	pointsSleepinessHigh  = 25
	pointsSleepinessMild  = 10

	sleepCriticalScore = 40
	sleepModerateScore = 15
)

// SleepAlerts grades the sleep problems of every participant with sleep answers.
func (e *Engine) SleepAlerts(records []domain.RawRecord) domain.SleepReport {
	diags := newDiagnostics(e.logger)
	ds := e.group(records, diags)

	report := domain.SleepReport{
		Critical: []domain.SleepAlert{},
		Moderate: []domain.SleepAlert{},
	}

	for _, id := range ds.ids {
		s := ds.series[id]
		e.guard(diags, id, func() {
			alert, analyzed := e.sleepAlert(s)
			if !analyzed {
				return
			}
			report.Summary.ParticipantsAnalyzed++

			switch n := len(alert.Issues); {
			case alert.SeverityScore >= sleepCriticalScore || n >= 2:
				alert.Recommendation = "Urgent sleep evaluation - consider a sleep specialist referral"
				report.Critical = append(report.Critical, alert)
			case alert.SeverityScore >= sleepModerateScore || n >= 1:
				alert.Recommendation = "Monitor sleep and review sleep hygiene"
				report.Moderate = append(report.Moderate, alert)
			}
		})
	}

	for _, list := range [][]domain.SleepAlert{report.Critical, report.Moderate} {
		sort.SliceStable(list, func(i, j int) bool {
			if list[i].SeverityScore != list[j].SeverityScore {
				return list[i].SeverityScore > list[j].SeverityScore
			}
			return list[i].ParticipantID < list[j].ParticipantID
		})
	}

	report.Summary.CriticalCount = len(report.Critical)
	report.Summary.ModerateCount = len(report.Moderate)
	report.Summary.NeedingEvaluation = len(report.Critical) + len(report.Moderate)
	report.Diagnostics = diags.list()
	return report
}

func (e *Engine) sleepAlert(s *ParticipantSeries) (domain.SleepAlert, bool) {
	th := e.tables.Thresholds
	sig := e.ComputeSignals(s)

	alert := domain.SleepAlert{ParticipantID: s.ParticipantID, Issues: []string{}}
	for _, p := range s.all() {
		_, quality := p.Values[e.tables.SleepQualityField]
		_, sleepiness := p.Values[e.tables.DaytimeSleepinessField]
		if quality || sleepiness {
			alert.SleepRecords++
		}
	}
	if alert.SleepRecords == 0 {
		return alert, false
	}

	if r, ok := sig.PoorSleepRatio(); ok {
		switch {
		case r >= th.SleepCriticalRate:
			alert.SeverityScore += pointsSleepCritical
			alert.Issues = append(alert.Issues, fmt.Sprintf("Poor sleep quality in %.1f%% of nights", r*100))
		case r >= th.SleepConcerningRate:
			alert.SeverityScore += pointsSleepConcerning
			alert.Issues = append(alert.Issues, fmt.Sprintf("Concerning sleep quality (%.1f%% poor nights)", r*100))
		}
	}
	if r, ok := sig.SleepinessRatio(); ok {
		switch {
		case r >= th.SleepinessExcessive:
			alert.SeverityScore += pointsSleepinessHigh
			alert.Issues = append(alert.Issues, fmt.Sprintf("Excessive daytime sleepiness (%.1f%% of days)", r*100))
		case r >= th.SleepinessModerate:
			alert.SeverityScore += pointsSleepinessMild
			alert.Issues = append(alert.Issues, fmt.Sprintf("Moderate daytime sleepiness (%.1f%% of days)", r*100))
		}
	}
	return alert, true
}
