package analytics

import (
	"fmt"
	"math"
	"sort"
	"strings"

	"github.com/blaisecz/health-trends/internal/domain"
)

// Names of the registered risk rules, as used in Tables.RiskRules.
const (
	RuleWorseningSymptoms    = "worsening_symptoms"
	RuleCriticalFieldDecline = "critical_field_decline"
	RuleSparseFollowUp       = "sparse_follow_up"
	RuleMedicationAdherence  = "medication_adherence"
	RulePoorSleep            = "poor_sleep"
	RuleFrequentSymptoms     = "frequent_symptoms"
	RulePoorHealthStatus     = "poor_health_status"
)

// Points awarded by the rules.
const (
	PointsManyWorsening    = 40
	PointsTwoWorsening     = 25
	PointsOneWorsening     = 15
	PointsCriticalSevere   = 20
	PointsCriticalModerate = 10
	PointsSparseFollowUp   = 15
	PointsAdherenceLow     = 25
	PointsAdherenceMedium  = 15
	PointsPoorSleepHigh    = 20
	PointsPoorSleepMedium  = 10
	PointsFrequentSymptoms = 15
	PointsPoorHealth       = 15
)

// RuleInput is everything a rule may look at for one participant.
type RuleInput struct {
	Series  *ParticipantSeries
	Trends  map[string]domain.TrendResult
	Signals Signals
}

// Rule is one independent risk check. Evaluate must be pure: the same input
// always yields the same contributions, whatever other rules do.
type Rule struct {
	Name     string
	Evaluate func(in RuleInput) []domain.RiskContribution
}

var ruleFactories = map[string]func(Tables) Rule{
	RuleWorseningSymptoms:    worseningSymptomsRule,
	RuleCriticalFieldDecline: criticalFieldDeclineRule,
	RuleSparseFollowUp:       sparseFollowUpRule,
	RuleMedicationAdherence:  medicationAdherenceRule,
	RulePoorSleep:            poorSleepRule,
	RuleFrequentSymptoms:     frequentSymptomsRule,
	RulePoorHealthStatus:     poorHealthStatusRule,
}

// RuleNames lists every registered rule.
func RuleNames() []string {
	names := make([]string, 0, len(ruleFactories))
	for name := range ruleFactories {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

func contribution(rule string, points int, format string, args ...any) []domain.RiskContribution {
	return []domain.RiskContribution{{Rule: rule, Points: points, Reason: fmt.Sprintf(format, args...)}}
}

func worseningSymptomsRule(Tables) Rule {
	return Rule{
		Name: RuleWorseningSymptoms,
		Evaluate: func(in RuleInput) []domain.RiskContribution {
			var worsening []string
			for field, tr := range in.Trends {
				if tr.Direction == domain.TrendWorsening {
					worsening = append(worsening, field)
				}
			}
			sort.Strings(worsening)

			var points int
			switch n := len(worsening); {
			case n >= 3:
				points = PointsManyWorsening
			case n == 2:
				points = PointsTwoWorsening
			case n == 1:
				points = PointsOneWorsening
			default:
				return nil
			}
			return contribution(RuleWorseningSymptoms, points,
				"Worsening in %d fields (%s)", len(worsening), strings.Join(worsening, ", "))
		},
	}
}

func criticalFieldDeclineRule(t Tables) Rule {
	critical := append([]string(nil), t.CriticalFields...)
	sort.Strings(critical)
	severe, moderate := t.Thresholds.CriticalSevere, t.Thresholds.CriticalModerate

	return Rule{
		Name: RuleCriticalFieldDecline,
		Evaluate: func(in RuleInput) []domain.RiskContribution {
			var out []domain.RiskContribution
			for _, field := range critical {
				tr, ok := in.Trends[field]
				if !ok || tr.Direction != domain.TrendWorsening {
					continue
				}
				change := math.Abs(tr.Change)
				switch {
				case change >= severe-epsilon:
					out = append(out, contribution(RuleCriticalFieldDecline, PointsCriticalSevere,
						"Significant decline in %s (change %.2f)", field, tr.Change)...)
				case change >= moderate-epsilon:
					out = append(out, contribution(RuleCriticalFieldDecline, PointsCriticalModerate,
						"Decline in %s (change %.2f)", field, tr.Change)...)
				}
			}
			return out
		},
	}
}

func sparseFollowUpRule(t Tables) Rule {
	gapDays, maxRecords := t.Thresholds.GapDays, t.Thresholds.GapMaxRecords
	return Rule{
		Name: RuleSparseFollowUp,
		Evaluate: func(in RuleInput) []domain.RiskContribution {
			span, total := in.Series.TimeSpanDays(), in.Series.TotalRecords()
			if span > gapDays && total < maxRecords {
				return contribution(RuleSparseFollowUp, PointsSparseFollowUp,
					"Sparse follow-up: %d records over %d days", total, span)
			}
			return nil
		},
	}
}

func medicationAdherenceRule(t Tables) Rule {
	low, moderate := t.Thresholds.AdherenceLow, t.Thresholds.AdherenceModerate
	return Rule{
		Name: RuleMedicationAdherence,
		Evaluate: func(in RuleInput) []domain.RiskContribution {
			rate, ok := in.Signals.AdherenceRate()
			if !ok {
				return nil
			}
			switch {
			case rate < low:
				return contribution(RuleMedicationAdherence, PointsAdherenceLow,
					"Low medication adherence (%.1f%%)", rate*100)
			case rate < moderate:
				return contribution(RuleMedicationAdherence, PointsAdherenceMedium,
					"Suboptimal medication adherence (%.1f%%)", rate*100)
			}
			return nil
		},
	}
}

func poorSleepRule(t Tables) Rule {
	high, moderate := t.Thresholds.PoorSleepHigh, t.Thresholds.PoorSleepModerate
	return Rule{
		Name: RulePoorSleep,
		Evaluate: func(in RuleInput) []domain.RiskContribution {
			r, ok := in.Signals.PoorSleepRatio()
			if !ok {
				return nil
			}
			switch {
			case r > high:
				return contribution(RulePoorSleep, PointsPoorSleepHigh,
					"Poor sleep in %.1f%% of nights", r*100)
			case r > moderate:
				return contribution(RulePoorSleep, PointsPoorSleepMedium,
					"Frequent poor sleep (%.1f%% of nights)", r*100)
			}
			return nil
		},
	}
}

func frequentSymptomsRule(t Tables) Rule {
	occurrences, minSymptoms := t.Thresholds.FrequentOccurrences, t.Thresholds.FrequentSymptomMin
	return Rule{
		Name: RuleFrequentSymptoms,
		Evaluate: func(in RuleInput) []domain.RiskContribution {
			var frequent []string
			for field, n := range in.Signals.RecentFrequent {
				if n >= occurrences {
					frequent = append(frequent, field)
				}
			}
			if len(frequent) < minSymptoms {
				return nil
			}
			sort.Strings(frequent)
			return contribution(RuleFrequentSymptoms, PointsFrequentSymptoms,
				"Frequent symptoms in recent records (%s)", strings.Join(frequent, ", "))
		},
	}
}

func poorHealthStatusRule(t Tables) Rule {
	limit := t.Thresholds.PoorHealthRatio
	return Rule{
		Name: RulePoorHealthStatus,
		Evaluate: func(in RuleInput) []domain.RiskContribution {
			r, ok := in.Signals.PoorHealthRatio()
			if !ok || r <= limit {
				return nil
			}
			return contribution(RulePoorHealthStatus, PointsPoorHealth,
				"Poor self-reported health in %.1f%% of answers", r*100)
		},
	}
}

// TierFor maps a score onto a tier. Both boundaries are inclusive lower bounds.
func TierFor(score int, th Thresholds) domain.RiskTier {
	switch {
	case score >= th.HighTier:
		return domain.RiskHigh
	case score >= th.MediumTier:
		return domain.RiskMedium
	default:
		return domain.RiskLow
	}
}

// Recommendation returns the follow-up action for a tier.
func Recommendation(tier domain.RiskTier) string {
	switch tier {
	case domain.RiskHigh:
		return "Urgent clinical contact recommended - multiple risk factors"
	case domain.RiskMedium:
		return "Intensified monitoring required"
	default:
		return "Routine monitoring"
	}
}

// Score folds the enabled rules over in. Contributions keep the rule order of the
// tables, and the total is their sum, so neither depends on input order.
func (e *Engine) Score(in RuleInput) domain.RiskScore {
	rs := domain.RiskScore{
		ParticipantID:  in.Series.ParticipantID,
		Factors:        []string{},
		Contributions:  []domain.RiskContribution{},
		TotalRecords:   in.Series.TotalRecords(),
		TimeSpanDays:   in.Series.TimeSpanDays(),
		LastRecordDate: in.Series.LastDate(),
	}
	for _, rule := range e.rules {
		for _, c := range rule.Evaluate(in) {
			rs.Score += c.Points
			rs.Factors = append(rs.Factors, c.Reason)
			rs.Contributions = append(rs.Contributions, c)
		}
	}
	rs.Tier = TierFor(rs.Score, e.tables.Thresholds)
	return rs
}
