package domain

// TrendDirection classifies how a field moved over a participant's observation window.
type TrendDirection string

const (
	TrendImproving TrendDirection = "improving"
	TrendWorsening TrendDirection = "worsening"
	TrendStable    TrendDirection = "stable"
)

// TrendResult is the early-versus-late comparison for one participant and one field.
// @Description Split-half trend of a single monitored field.
type TrendResult struct {
	Field          string         `json:"field" example:"dizziness_today"`
	Direction      TrendDirection `json:"trend" example:"worsening"`
	FirstHalfMean  float64        `json:"first_avg" example:"1.0"`
	SecondHalfMean float64        `json:"second_avg" example:"4.0"`
	Change         float64        `json:"change" example:"3.0"`
	Measurements   int            `json:"total_measurements" example:"4"`
}

// ParticipantTrend groups the trend results of one participant.
// @Description Trend analysis of one participant with at least two dated records.
type ParticipantTrend struct {
	ParticipantID string                 `json:"participant_id" example:"RM-0042"`
	TotalRecords  int                    `json:"total_records" example:"6"`
	FirstDate     string                 `json:"first_date" example:"2024-01-08"`
	LastDate      string                 `json:"last_date" example:"2024-03-11"`
	TimeSpanDays  int                    `json:"time_span_days" example:"63"`
	Fields        map[string]TrendResult `json:"symptom_trends"`
}

// FieldEvolution counts trend directions of one field across participants.
type FieldEvolution struct {
	Improving int `json:"improving"`
	Worsening int `json:"worsening"`
	Stable    int `json:"stable"`
}

// TrendSummary aggregates the trend report.
type TrendSummary struct {
	ParticipantsAnalyzed     int     `json:"total_participants_analyzed"`
	AvgRecordsPerParticipant float64 `json:"avg_records_per_participant"`
	ParticipantsImproving    int     `json:"participants_improving"`
	ParticipantsWorsening    int     `json:"participants_worsening"`
	TotalMeasurements        int     `json:"total_symptom_measurements"`
}

// TrendReport is the output of the trend detector over a record collection.
// @Description Per-participant symptom trends.
type TrendReport struct {
	Participants   map[string]ParticipantTrend `json:"participant_trends"`
	FieldEvolution map[string]FieldEvolution   `json:"symptom_evolution"`
	Summary        TrendSummary                `json:"summary_stats"`
	Diagnostics    []Diagnostic                `json:"diagnostics,omitempty"`
}

// TrajectoryType is the coarse participant-level label.
type TrajectoryType string

const (
	TrajectoryImproving   TrajectoryType = "consistently_improving"
	TrajectoryDeclining   TrajectoryType = "consistently_declining"
	TrajectoryFluctuating TrajectoryType = "fluctuating"
	TrajectoryStable      TrajectoryType = "stable"
)

// Trajectory summarizes the field trends of one participant.
// @Description Trajectory classification with the counts it was derived from.
type Trajectory struct {
	ParticipantID string         `json:"participant_id" example:"RM-0042"`
	Type          TrajectoryType `json:"trajectory_type" example:"consistently_improving"`
	Improving     int            `json:"improving" example:"5"`
	Worsening     int            `json:"worsening" example:"0"`
	Stable        int            `json:"stable" example:"2"`
	Total         int            `json:"total" example:"7"`
	Reasons       []string       `json:"classification_reasons"`
}

// TrajectorySummary counts participants per trajectory label.
type TrajectorySummary struct {
	ConsistentlyImproving int `json:"consistently_improving"`
	ConsistentlyDeclining int `json:"consistently_declining"`
	Fluctuating           int `json:"fluctuating"`
	Stable                int `json:"stable"`
	TotalAnalyzed         int `json:"total_analyzed"`
}

// TrajectoryReport is the output of the trajectory classifier.
type TrajectoryReport struct {
	Participants map[string]Trajectory `json:"individual_trajectories"`
	Summary      TrajectorySummary     `json:"classification_summary"`
	Diagnostics  []Diagnostic          `json:"diagnostics,omitempty"`
}

// BucketStats aggregates pooled answers falling on one month or weekday.
type BucketStats struct {
	RecordCount        int      `json:"record_count"`
	AvgSymptomSeverity float64  `json:"avg_symptom_severity"`
	AvgHealthStatus    *float64 `json:"avg_health_status,omitempty"`
	SymptomsReported   int      `json:"total_symptoms_reported"`
}

// SeasonalReport is the output of the seasonal pattern analyzer.
// @Description Monthly and weekday severity aggregates with ranking insights.
type SeasonalReport struct {
	Monthly      map[string]BucketStats `json:"monthly_patterns"`
	Weekly       map[string]BucketStats `json:"weekly_patterns"`
	WorstMonth   string                 `json:"worst_month,omitempty"`
	BestMonth    string                 `json:"best_month,omitempty"`
	WorstWeekday string                 `json:"worst_weekday,omitempty"`
	BestWeekday  string                 `json:"best_weekday,omitempty"`
	Insights     []string               `json:"temporal_insights"`
	Diagnostics  []Diagnostic           `json:"diagnostics,omitempty"`
}

// RiskTier is derived from the accumulated risk score.
type RiskTier string

const (
	RiskLow    RiskTier = "low"
	RiskMedium RiskTier = "medium"
	RiskHigh   RiskTier = "high"
)

// RiskContribution records the points one rule added and why.
type RiskContribution struct {
	Rule   string `json:"rule" example:"medication_adherence"`
	Points int    `json:"points" example:"25"`
	Reason string `json:"reason" example:"Low medication adherence (20.0%)"`
}

// RiskScore is the additive deterioration score of one participant.
// @Description Weighted risk score with its contributing factors.
type RiskScore struct {
	ParticipantID  string             `json:"participant_id" example:"RM-0042"`
	Score          int                `json:"risk_score" example:"40"`
	Tier           RiskTier           `json:"risk_level" example:"medium"`
	Factors        []string           `json:"risk_factors"`
	Contributions  []RiskContribution `json:"contributions"`
	TotalRecords   int                `json:"total_records" example:"5"`
	TimeSpanDays   int                `json:"time_span_days" example:"48"`
	LastRecordDate string             `json:"last_record_date,omitempty" example:"2024-03-11"`
}

// Alert is the actionable form of a risk score.
type Alert struct {
	ParticipantID  string   `json:"participant_id"`
	Tier           RiskTier `json:"risk_level"`
	Score          int      `json:"risk_score"`
	Factors        []string `json:"risk_factors"`
	Recommendation string   `json:"recommendation"`
	TotalRecords   int      `json:"total_records"`
	LastRecordDate string   `json:"last_record_date,omitempty"`
}

// RiskSummary aggregates tier counts.
type RiskSummary struct {
	TotalParticipants  int     `json:"total_participants"`
	HighCount          int     `json:"high_risk_count"`
	MediumCount        int     `json:"medium_risk_count"`
	LowCount           int     `json:"low_risk_count"`
	HighPercentage     float64 `json:"high_risk_percentage"`
	MediumPercentage   float64 `json:"medium_risk_percentage"`
	RequiringAttention int     `json:"requiring_attention"`
}

// RiskReport is the output of the risk scoring engine.
// @Description Tiered alert lists plus every participant's risk score.
type RiskReport struct {
	HighPriority   []Alert              `json:"high_risk_participants"`
	MediumPriority []Alert              `json:"medium_risk_participants"`
	LowPriority    []Alert              `json:"low_risk_participants"`
	Scores         map[string]RiskScore `json:"scores"`
	Summary        RiskSummary          `json:"risk_summary"`
	Diagnostics    []Diagnostic         `json:"diagnostics,omitempty"`
}

// NonAdherenceAlert flags a participant whose adherence rate is below the alert threshold.
type NonAdherenceAlert struct {
	ParticipantID  string   `json:"participant_id"`
	AdherenceRate  float64  `json:"adherence_rate"`
	MissedDoses    int      `json:"missed_doses"`
	TotalRecords   int      `json:"total_records"`
	Severity       RiskTier `json:"severity"`
	Recommendation string   `json:"recommendation"`
}

// AdverseEffectAlert flags frequent symptoms that may be medication related.
type AdverseEffectAlert struct {
	ParticipantID     string         `json:"participant_id"`
	FrequentSymptoms  map[string]int `json:"frequent_symptoms"`
	TotalAdverseCount int            `json:"total_adverse_reports"`
	Recommendation    string         `json:"recommendation"`
}

// MedicationSummary aggregates the medication report.
type MedicationSummary struct {
	ParticipantsAnalyzed  int `json:"total_participants_analyzed"`
	NonAdherenceAlerts    int `json:"non_adherence_alerts_count"`
	AdverseEffectAlerts   int `json:"adverse_effect_alerts_count"`
	RequiringIntervention int `json:"participants_requiring_intervention"`
}

// MedicationReport lists medication adherence and adverse-effect alerts.
type MedicationReport struct {
	NonAdherence   []NonAdherenceAlert  `json:"non_adherence_alerts"`
	AdverseEffects []AdverseEffectAlert `json:"adverse_effect_alerts"`
	Summary        MedicationSummary    `json:"medication_summary"`
	Diagnostics    []Diagnostic         `json:"diagnostics,omitempty"`
}

// SleepAlert describes the sleep problems found for one participant.
type SleepAlert struct {
	ParticipantID  string   `json:"participant_id"`
	SeverityScore  int      `json:"severity_score"`
	Issues         []string `json:"sleep_issues"`
	SleepRecords   int      `json:"total_sleep_records"`
	Recommendation string   `json:"recommendation"`
}

// SleepSummary aggregates the sleep report.
type SleepSummary struct {
	ParticipantsAnalyzed int `json:"total_participants_analyzed"`
	CriticalCount        int `json:"critical_sleep_count"`
	ModerateCount        int `json:"moderate_sleep_issues_count"`
	NeedingEvaluation    int `json:"participants_needing_sleep_evaluation"`
}

// SleepReport lists participants with critical or moderate sleep problems.
type SleepReport struct {
	Critical    []SleepAlert `json:"critical_sleep_participants"`
	Moderate    []SleepAlert `json:"moderate_sleep_issues"`
	Summary     SleepSummary `json:"sleep_summary"`
	Diagnostics []Diagnostic `json:"diagnostics,omitempty"`
}

// AnomalyType names a suspicious answer pattern.
type AnomalyType string

const (
	AnomalyIdenticalResponses AnomalyType = "identical_responses"
	AnomalyExtremeChange      AnomalyType = "extreme_change"
)

// Anomaly is one suspicious pattern found in a participant's answers.
type Anomaly struct {
	Type        AnomalyType `json:"type" example:"identical_responses"`
	Description string      `json:"description" example:"5/6 identical responses"`
	Severity    RiskTier    `json:"severity" example:"medium"`
}

// AnomalyAlert lists the anomalies of one participant.
type AnomalyAlert struct {
	ParticipantID  string    `json:"participant_id" example:"RM-0042"`
	Anomalies      []Anomaly `json:"anomalies"`
	TotalResponses int       `json:"total_responses" example:"6"`
	Recommendation string    `json:"recommendation"`
}

// AnomalySummary aggregates the anomaly report.
type AnomalySummary struct {
	ParticipantsAnalyzed      int     `json:"total_participants_analyzed"`
	ParticipantsWithAnomalies int     `json:"participants_with_anomalies"`
	TotalAnomalies            int     `json:"total_anomalies"`
	AnomalyRate               float64 `json:"anomaly_rate" example:"12.5"`
}

// AnomalyReport lists participants whose answers need a manual check.
type AnomalyReport struct {
	Suspicious  []AnomalyAlert `json:"suspicious_patterns"`
	Summary     AnomalySummary `json:"anomaly_summary"`
	Diagnostics []Diagnostic   `json:"diagnostics,omitempty"`
}

// TimelinePoint is one dated observation of a participant.
type TimelinePoint struct {
	Date       string             `json:"date" example:"2024-01-08"`
	Instrument string             `json:"instrument,omitempty"`
	Values     map[string]float64 `json:"values"`
}

// FieldValue is one dated value of a single field.
type FieldValue struct {
	Date  string  `json:"date"`
	Value float64 `json:"value"`
}

// Timeline is the ordered series of one participant.
// @Description Chronological series of a participant, optionally focused on one field.
type Timeline struct {
	ParticipantID string          `json:"participant_code"`
	TotalRecords  int             `json:"total_records"`
	Points        []TimelinePoint `json:"data"`
	Field         string          `json:"field,omitempty"`
	FieldValues   []FieldValue    `json:"values,omitempty"`
	Trend         *TrendResult    `json:"trend,omitempty"`
	Diagnostics   []Diagnostic    `json:"diagnostics,omitempty"`
}

// DiagnosticKind names a class of data-shape problem.
type DiagnosticKind string

const (
	DiagnosticMissingParticipant DiagnosticKind = "missing_participant"
	DiagnosticMissingDate        DiagnosticKind = "missing_date"
	DiagnosticUnrecognizedValue  DiagnosticKind = "unrecognized_value"
	DiagnosticParticipantFailure DiagnosticKind = "participant_failure"
)

// Diagnostic reports input that was skipped instead of failing the whole computation.
type Diagnostic struct {
	Kind          DiagnosticKind `json:"kind"`
	ParticipantID string         `json:"participant_id,omitempty"`
	Field         string         `json:"field,omitempty"`
	Value         string         `json:"value,omitempty"`
	Count         int            `json:"count"`
	Message       string         `json:"message,omitempty"`
}
