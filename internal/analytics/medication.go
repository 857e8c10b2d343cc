package analytics

import (
	"sort"

	"github.com/blaisecz/health-trends/internal/domain"
)

// MedicationAlerts reports participants with low adherence and participants whose
// frequent symptoms may be adverse effects of their medication. Only participants
// who answered the adherence question are analyzed.
func (e *Engine) MedicationAlerts(records []domain.RawRecord) domain.MedicationReport {
	diags := newDiagnostics(e.logger)
	ds := e.group(records, diags)
	th := e.tables.Thresholds

	report := domain.MedicationReport{
		NonAdherence:   []domain.NonAdherenceAlert{},
		AdverseEffects: []domain.AdverseEffectAlert{},
	}
	flagged := make(map[string]struct{})

	for _, id := range ds.ids {
		s := ds.series[id]
		e.guard(diags, id, func() {
			sig := e.ComputeSignals(s)
			rate, ok := sig.AdherenceRate()
			if !ok {
				return
			}
			report.Summary.ParticipantsAnalyzed++

			if rate < th.AdherenceAlert {
				alert := domain.NonAdherenceAlert{
					ParticipantID:  id,
					AdherenceRate:  round1(rate * 100),
					MissedDoses:    sig.AdherenceAnswered - sig.AdherenceTaken,
					TotalRecords:   sig.AdherenceAnswered,
					Severity:       domain.RiskMedium,
					Recommendation: "Reinforce medication adherence with the participant",
				}
				if rate < th.AdherenceSevere {
					alert.Severity = domain.RiskHigh
					alert.Recommendation = "Urgent contact to review medication adherence"
				}
				report.NonAdherence = append(report.NonAdherence, alert)
				flagged[id] = struct{}{}
			}

			if float64(sig.RecordsWithFrequent) > th.AdverseEffectRatio*float64(sig.AdherenceAnswered) {
				symptoms := make(map[string]int, len(sig.FrequentReports))
				for field, n := range sig.FrequentReports {
					symptoms[field] = n
				}
				report.AdverseEffects = append(report.AdverseEffects, domain.AdverseEffectAlert{
					ParticipantID:     id,
					FrequentSymptoms:  symptoms,
					TotalAdverseCount: sig.RecordsWithFrequent,
					Recommendation:    "Review possible adverse effects of the current medication",
				})
				flagged[id] = struct{}{}
			}
		})
	}

	sort.SliceStable(report.NonAdherence, func(i, j int) bool {
		a, b := report.NonAdherence[i], report.NonAdherence[j]
		if a.AdherenceRate != b.AdherenceRate {
			return a.AdherenceRate < b.AdherenceRate
		}
		return a.ParticipantID < b.ParticipantID
	})
	sort.SliceStable(report.AdverseEffects, func(i, j int) bool {
		a, b := report.AdverseEffects[i], report.AdverseEffects[j]
		if a.TotalAdverseCount != b.TotalAdverseCount {
			return a.TotalAdverseCount > b.TotalAdverseCount
		}
		return a.ParticipantID < b.ParticipantID
	})

	report.Summary.NonAdherenceAlerts = len(report.NonAdherence)
	report.Summary.AdverseEffectAlerts = len(report.AdverseEffects)
	report.Summary.RequiringIntervention = len(flagged)
	report.Diagnostics = diags.list()
	return report
}
