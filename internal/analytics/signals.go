package analytics

// Signals are cross-sectional tallies of one participant. Unlike trends they use
// undated records too.
type Signals struct {
	AdherenceAnswered int
	AdherenceTaken    int

	SleepAnswered   int
	PoorSleepNights int

	SleepinessAnswered  int
	ExcessiveSleepiness int

	HealthAnswered int
	PoorHealth     int

	// RecentFrequent counts, per symptom, how often it reached the frequent level
	// within the most recent dated records.
	RecentFrequent map[string]int

	// FrequentReports counts, per symptom, every record at the frequent level.
	FrequentReports map[string]int
	// RecordsWithFrequent counts records reporting at least one frequent symptom.
	RecordsWithFrequent int
}

// AdherenceRate is the share of answered adherence questions where the dose was taken.
// The second result is false when the question was never answered.
func (s Signals) AdherenceRate() (float64, bool) {
	if s.AdherenceAnswered == 0 {
		return 0, false
	}
	return float64(s.AdherenceTaken) / float64(s.AdherenceAnswered), true
}

// PoorSleepRatio is the share of answered nights rated poor.
func (s Signals) PoorSleepRatio() (float64, bool) {
	return ratio(s.PoorSleepNights, s.SleepAnswered)
}

// SleepinessRatio is the share of answers reporting frequent daytime sleepiness.
func (s Signals) SleepinessRatio() (float64, bool) {
	return ratio(s.ExcessiveSleepiness, s.SleepinessAnswered)
}

// PoorHealthRatio is the share of health-status answers at the poor end of the scale.
func (s Signals) PoorHealthRatio() (float64, bool) {
	return ratio(s.PoorHealth, s.HealthAnswered)
}

func ratio(part, total int) (float64, bool) {
	if total == 0 {
		return 0, false
	}
	return float64(part) / float64(total), true
}

// ComputeSignals tallies the cross-sectional signals of a series.
func (e *Engine) ComputeSignals(s *ParticipantSeries) Signals {
	t := e.tables
	th := t.Thresholds
	sig := Signals{
		RecentFrequent:  make(map[string]int),
		FrequentReports: make(map[string]int),
	}

	for _, p := range s.all() {
		if v, ok := p.Values[t.AdherenceField]; ok && t.AdherenceField != "" {
			sig.AdherenceAnswered++
			if v >= th.AdherentMin {
				sig.AdherenceTaken++
			}
		}
		if v, ok := p.Values[t.SleepQualityField]; ok && t.SleepQualityField != "" {
			sig.SleepAnswered++
			if v <= th.PoorSleepMax {
				sig.PoorSleepNights++
			}
		}
		if v, ok := p.Values[t.DaytimeSleepinessField]; ok && t.DaytimeSleepinessField != "" {
			sig.SleepinessAnswered++
			if v >= th.FrequentLevel {
				sig.ExcessiveSleepiness++
			}
		}
		if v, ok := p.Values[t.HealthStatusField]; ok && t.HealthStatusField != "" {
			sig.HealthAnswered++
			if v <= th.PoorHealthMax {
				sig.PoorHealth++
			}
		}

		frequent := false
		for _, field := range t.FrequentSymptomFields {
			if v, ok := p.Values[field]; ok && v >= th.FrequentLevel {
				sig.FrequentReports[field]++
				frequent = true
			}
		}
		if frequent {
			sig.RecordsWithFrequent++
		}
	}

	recent := s.Points
	if th.RecentWindow > 0 && len(recent) > th.RecentWindow {
		recent = recent[len(recent)-th.RecentWindow:]
	}
	for _, p := range recent {
		for _, field := range t.FrequentSymptomFields {
			if v, ok := p.Values[field]; ok && v >= th.FrequentLevel {
				sig.RecentFrequent[field]++
			}
		}
	}
	return sig
}
