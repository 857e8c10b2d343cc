package domain

// ParticipantReport bundles the engine output for a single participant.
// It is the context handed to the narrative generator.
type ParticipantReport struct {
	ParticipantID string            `json:"participant_id"`
	Trend         *ParticipantTrend `json:"trend,omitempty"`
	Trajectory    *Trajectory       `json:"trajectory,omitempty"`
	Risk          RiskScore         `json:"risk"`
}

// ClinicalNarrative is the structured output of the narrative generator.
// @Description LLM-generated summary of a participant's monitoring data.
type ClinicalNarrative struct {
	// Summary of the participant's recent evolution (2-3 sentences)
	Summary string `json:"summary"`
	// Observed concerns, one per item
	Concerns []string `json:"concerns"`
	// Follow-up actions for the monitoring team
	SuggestedActions []string `json:"suggested_actions"`
}

// SummaryResponse is the response for the participant summary endpoint.
// @Description Engine report of one participant plus its narrative.
type SummaryResponse struct {
	Report    ParticipantReport `json:"report"`
	Narrative ClinicalNarrative `json:"narrative"`
	// Trace ID of the request, when tracing is enabled
	TraceID string `json:"trace_id,omitempty"`
}
