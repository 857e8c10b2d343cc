package analytics

import (
	"os"
	"sort"

	"github.com/blaisecz/health-trends/internal/domain"
	"github.com/rotisserie/eris"
	"gopkg.in/yaml.v3"
)

// Polarity states which end of a field's ordinal scale is the bad one.
type Polarity string

const (
	HigherIsWorse  Polarity = "higher_is_worse"
	HigherIsBetter Polarity = "higher_is_better"
)

// Vocabulary maps the textual answers of one field to ordinal scores.
// Numeric fields additionally accept any number within [Min, Max].
type Vocabulary struct {
	Levels   map[string]float64 `yaml:"levels"`
	Polarity Polarity           `yaml:"polarity"`
	Numeric  bool               `yaml:"numeric"`
	Min      float64            `yaml:"min"`
	Max      float64            `yaml:"max"`
}

// Thresholds holds every cut-off the heuristics use.
type Thresholds struct {
	TrendMinChange     float64 `yaml:"trend_min_change"`
	TrajectoryMajority float64 `yaml:"trajectory_majority"`

	MediumTier int `yaml:"medium_tier"`
	HighTier   int `yaml:"high_tier"`

	CriticalSevere   float64 `yaml:"critical_severe"`
	CriticalModerate float64 `yaml:"critical_moderate"`

	GapDays       int `yaml:"gap_days"`
	GapMaxRecords int `yaml:"gap_max_records"`

	AdherentMin       float64 `yaml:"adherent_min"`
	AdherenceLow      float64 `yaml:"adherence_low"`
	AdherenceModerate float64 `yaml:"adherence_moderate"`

	PoorSleepMax      float64 `yaml:"poor_sleep_max"`
	PoorSleepHigh     float64 `yaml:"poor_sleep_high"`
	PoorSleepModerate float64 `yaml:"poor_sleep_moderate"`

	PoorHealthMax   float64 `yaml:"poor_health_max"`
	PoorHealthRatio float64 `yaml:"poor_health_ratio"`

	FrequentLevel       float64 `yaml:"frequent_level"`
	RecentWindow        int     `yaml:"recent_window"`
	FrequentOccurrences int     `yaml:"frequent_occurrences"`
	FrequentSymptomMin  int     `yaml:"frequent_symptom_min"`

	AdherenceAlert     float64 `yaml:"adherence_alert"`
	AdherenceSevere    float64 `yaml:"adherence_severe"`
	AdverseEffectRatio float64 `yaml:"adverse_effect_ratio"`

	SleepCriticalRate   float64 `yaml:"sleep_critical_rate"`
	SleepConcerningRate float64 `yaml:"sleep_concerning_rate"`
	SleepinessExcessive float64 `yaml:"sleepiness_excessive"`
	SleepinessModerate  float64 `yaml:"sleepiness_moderate"`

	AnomalyMinResponses     int     `yaml:"anomaly_min_responses"`
	AnomalyIdenticalShare   float64 `yaml:"anomaly_identical_share"`
	AnomalyMinHealthAnswers int     `yaml:"anomaly_min_health_answers"`
	AnomalyHealthJump       float64 `yaml:"anomaly_health_jump"`
}

// Tables is the static configuration of the engine: which fields exist, how their
// answers are scored and which cut-offs apply. An Engine keeps its own deep copy.
type Tables struct {
	ParticipantField string `yaml:"participant_field"`
	InstrumentField  string `yaml:"instrument_field"`
	InstanceField    string `yaml:"instance_field"`

	// DateFields are tried in order; the first parseable date wins.
	DateFields []string `yaml:"date_fields"`

	Vocabularies map[string]Vocabulary `yaml:"vocabularies"`

	TrendFields           []string `yaml:"trend_fields"`
	SeasonalFields        []string `yaml:"seasonal_fields"`
	CriticalFields        []string `yaml:"critical_fields"`
	FrequentSymptomFields []string `yaml:"frequent_symptom_fields"`

	HealthStatusField      string `yaml:"health_status_field"`
	SleepQualityField      string `yaml:"sleep_quality_field"`
	DaytimeSleepinessField string `yaml:"daytime_sleepiness_field"`
	AdherenceField         string `yaml:"adherence_field"`

	RiskRules []string `yaml:"risk_rules"`

	Thresholds Thresholds `yaml:"thresholds"`
}

// frequencyLevels keeps the answers in order on the 1..4 scale: the two
// synonyms for "sometimes" sit half a step between Raramente and Frequentemente.
var frequencyLevels = map[string]float64{
	"Nunca":          1,
	"Raramente":      2,
	"Ocasionalmente": 2.5,
	"Às vezes":       2.5,
	"Frequentemente": 3,
	"Sempre":         4,
}

// DefaultTables returns the vocabulary tables of the remote-monitoring study.
func DefaultTables() Tables {
	frequency := func() Vocabulary {
		levels := make(map[string]float64, len(frequencyLevels))
		for k, v := range frequencyLevels {
			levels[k] = v
		}
		return Vocabulary{Levels: levels, Polarity: HigherIsWorse}
	}

	t := Tables{
		ParticipantField: "participant_code",
		InstrumentField:  "redcap_repeat_instrument",
		InstanceField:    "redcap_repeat_instance",
		DateFields: []string{
			"questionnaire_date_8",
			"data_preench_8",
			"questionnaire_date",
			"questionnaire_date_2",
			"questionnaire_date_3",
		},
		Vocabularies: map[string]Vocabulary{
			"health_status": {
				Levels: map[string]float64{
					"Mal":           1,
					"Não muito bem": 2,
					"Razoável":      3,
					"Bem":           4,
					"Muito bem":     5,
				},
				Polarity: HigherIsBetter,
			},
			"sleep_quality_last_night": {
				Levels: map[string]float64{
					"Muito má":  1,
					"Muito mal": 1,
					"Má":        2,
					"Mal":       2,
					"Razoável":  3,
					"Boa":       4,
					"Bem":       4,
					"Muito boa": 5,
					"Muito bem": 5,
				},
				Polarity: HigherIsBetter,
			},
			"daytime_sleepiness":    frequency(),
			"dizziness_today":       frequency(),
			"fatigue_today":         frequency(),
			"muscle_weakness_today": frequency(),
			"pain_today":            frequency(),
			"vas_health_today": {
				Polarity: HigherIsBetter,
				Numeric:  true,
				Min:      0,
				Max:      100,
			},
			"took_medications_yesterday": {
				Levels:   map[string]float64{"Não": 0, "Sim": 1},
				Polarity: HigherIsBetter,
			},
		},
		TrendFields: []string{
			"health_status",
			"sleep_quality_last_night",
			"daytime_sleepiness",
			"dizziness_today",
			"fatigue_today",
			"muscle_weakness_today",
			"pain_today",
		},
		SeasonalFields: []string{
			"health_status",
			"sleep_quality_last_night",
			"daytime_sleepiness",
			"dizziness_today",
			"fatigue_today",
			"pain_today",
		},
		CriticalFields: []string{"health_status", "sleep_quality_last_night", "pain_today"},
		FrequentSymptomFields: []string{
			"dizziness_today",
			"fatigue_today",
			"muscle_weakness_today",
			"pain_today",
		},
		HealthStatusField:      "health_status",
		SleepQualityField:      "sleep_quality_last_night",
		DaytimeSleepinessField: "daytime_sleepiness",
		AdherenceField:         "took_medications_yesterday",
		RiskRules: []string{
			RuleWorseningSymptoms,
			RuleCriticalFieldDecline,
			RuleSparseFollowUp,
			RuleMedicationAdherence,
			RulePoorSleep,
			RuleFrequentSymptoms,
		},
		Thresholds: Thresholds{
			TrendMinChange:     0.5,
			TrajectoryMajority: 0.6,

			MediumTier: 25,
			HighTier:   50,

			CriticalSevere:   2,
			CriticalModerate: 1,

			GapDays:       30,
			GapMaxRecords: 4,

			AdherentMin:       1,
			AdherenceLow:      0.7,
			AdherenceModerate: 0.8,

			PoorSleepMax:      2,
			PoorSleepHigh:     0.5,
			PoorSleepModerate: 0.3,

			PoorHealthMax:   2,
			PoorHealthRatio: 0.4,

			FrequentLevel:       3,
			RecentWindow:        5,
			FrequentOccurrences: 2,
			FrequentSymptomMin:  3,

			AdherenceAlert:     0.7,
			AdherenceSevere:    0.5,
			AdverseEffectRatio: 0.3,

			SleepCriticalRate:   0.6,
			SleepConcerningRate: 0.4,
			SleepinessExcessive: 0.5,
			SleepinessModerate:  0.3,

			AnomalyMinResponses:     5,
			AnomalyIdenticalShare:   0.8,
			AnomalyMinHealthAnswers: 3,
			AnomalyHealthJump:       3,
		},
	}
	t.prepare()
	return t
}

// LoadTables reads a YAML file and overlays it on DefaultTables.
// Keys absent from the file keep their default; a vocabulary listed in the file
// replaces the default vocabulary of that field entirely.
func LoadTables(path string) (Tables, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Tables{}, eris.Wrapf(err, "read tables file %s", path)
	}
	return ParseTables(data)
}

// ParseTables overlays YAML data on DefaultTables and validates the result.
func ParseTables(data []byte) (Tables, error) {
	t := DefaultTables()
	if err := yaml.Unmarshal(data, &t); err != nil {
		return Tables{}, eris.Wrap(err, "decode tables")
	}
	t.prepare()
	if err := t.Validate(); err != nil {
		return Tables{}, err
	}
	return t, nil
}

// prepare fills scale bounds that can be derived from the levels.
func (t *Tables) prepare() {
	for field, v := range t.Vocabularies {
		if v.Min == 0 && v.Max == 0 && len(v.Levels) > 0 {
			first := true
			for _, score := range v.Levels {
				if first || score < v.Min {
					v.Min = score
				}
				if first || score > v.Max {
					v.Max = score
				}
				first = false
			}
			t.Vocabularies[field] = v
		}
	}
}

// Validate checks that every field the engine refers to has a usable vocabulary.
func (t Tables) Validate() error {
	if t.ParticipantField == "" {
		return eris.Wrap(domain.ErrInvalidInput, "tables: participant_field is required")
	}
	if len(t.DateFields) == 0 {
		return eris.Wrap(domain.ErrInvalidInput, "tables: date_fields must not be empty")
	}

	for field, v := range t.Vocabularies {
		if v.Polarity != HigherIsWorse && v.Polarity != HigherIsBetter {
			return eris.Wrapf(domain.ErrInvalidInput, "tables: vocabulary %s has invalid polarity %q", field, v.Polarity)
		}
		if len(v.Levels) == 0 && !v.Numeric {
			return eris.Wrapf(domain.ErrInvalidInput, "tables: vocabulary %s has no levels", field)
		}
		if v.Numeric && v.Max <= v.Min {
			return eris.Wrapf(domain.ErrInvalidInput, "tables: numeric vocabulary %s needs max > min", field)
		}
	}

	lists := map[string][]string{
		"trend_fields":            t.TrendFields,
		"seasonal_fields":         t.SeasonalFields,
		"critical_fields":         t.CriticalFields,
		"frequent_symptom_fields": t.FrequentSymptomFields,
	}
	names := make([]string, 0, len(lists))
	for name := range lists {
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		for _, field := range lists[name] {
			if _, ok := t.Vocabularies[field]; !ok {
				return eris.Wrapf(domain.ErrUnknownField, "tables: %s references %s", name, field)
			}
		}
	}

	for _, field := range []string{t.HealthStatusField, t.SleepQualityField, t.DaytimeSleepinessField, t.AdherenceField} {
		if field == "" {
			continue
		}
		if _, ok := t.Vocabularies[field]; !ok {
			return eris.Wrapf(domain.ErrUnknownField, "tables: %s has no vocabulary", field)
		}
	}

	for _, name := range t.RiskRules {
		if _, ok := ruleFactories[name]; !ok {
			return eris.Wrapf(domain.ErrInvalidInput, "tables: unknown risk rule %q", name)
		}
	}

	th := t.Thresholds
	if th.HighTier < th.MediumTier {
		return eris.Wrap(domain.ErrInvalidInput, "tables: high_tier must not be below medium_tier")
	}
	if th.AnomalyIdenticalShare <= 0 || th.AnomalyIdenticalShare > 1 {
		return eris.Wrap(domain.ErrInvalidInput, "tables: anomaly_identical_share must be in (0, 1]")
	}
	if th.TrendMinChange < 0 {
		return eris.Wrap(domain.ErrInvalidInput, "tables: trend_min_change must not be negative")
	}
	return nil
}

// Clone returns a deep copy so callers cannot mutate an engine's tables.
func (t Tables) Clone() Tables {
	c := t
	c.DateFields = append([]string(nil), t.DateFields...)
	c.TrendFields = append([]string(nil), t.TrendFields...)
	c.SeasonalFields = append([]string(nil), t.SeasonalFields...)
	c.CriticalFields = append([]string(nil), t.CriticalFields...)
	c.FrequentSymptomFields = append([]string(nil), t.FrequentSymptomFields...)
	c.RiskRules = append([]string(nil), t.RiskRules...)

	c.Vocabularies = make(map[string]Vocabulary, len(t.Vocabularies))
	for field, v := range t.Vocabularies {
		levels := make(map[string]float64, len(v.Levels))
		for answer, score := range v.Levels {
			levels[answer] = score
		}
		v.Levels = levels
		c.Vocabularies[field] = v
	}
	return c
}
