package analytics

import (
	"fmt"
	"testing"

	"github.com/blaisecz/health-trends/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// daily builds one record per row for participant on consecutive days of June.
// days reorders the dates when given, so input order can differ from chronology.
func daily(participant string, days []int, rows ...[]any) []domain.RawRecord {
	out := make([]domain.RawRecord, 0, len(rows))
	for i, row := range rows {
		day := i + 1
		if days != nil {
			day = days[i]
		}
		out = append(out, rec(participant, fmt.Sprintf("2024-06-%02d", day), row...))
	}
	return out
}

func repeat(n int, row []any) [][]any {
	rows := make([][]any, n)
	for i := range rows {
		rows[i] = row
	}
	return rows
}

func TestResponseAnomalies(t *testing.T) {
	same := []any{"health_status", "Bem", "pain_today", "Nunca"}
	other := []any{"health_status", "Bem", "pain_today", "Raramente"}

	tests := []struct {
		name    string
		records []domain.RawRecord
		want    []domain.AnomalyType
		desc    string
	}{
		{
			name:    "every response identical",
			records: daily("P1", nil, repeat(5, same)...),
			want:    []domain.AnomalyType{domain.AnomalyIdenticalResponses},
			desc:    "5/5 identical responses",
		},
		{
			name:    "four of five identical reaches the share",
			records: daily("P1", nil, append(repeat(4, same), other)...),
			want:    []domain.AnomalyType{domain.AnomalyIdenticalResponses},
			desc:    "4/5 identical responses",
		},
		{
			name:    "three of five identical is below the share",
			records: daily("P1", nil, append(repeat(3, same), other, other)...),
		},
		{
			name:    "too few responses",
			records: daily("P1", nil, repeat(4, same)...),
		},
		{
			name: "health status jumps three points",
			records: daily("P1", nil,
				[]any{"health_status", "Muito bem"},
				[]any{"health_status", "Não muito bem"},
				[]any{"health_status", "Bem"},
			),
			want: []domain.AnomalyType{domain.AnomalyExtremeChange},
			desc: "Extreme change in health status (3 points between 2024-06-01 and 2024-06-02)",
		},
		{
			name: "a jump needs three health answers",
			records: daily("P1", nil,
				[]any{"health_status", "Muito bem"},
				[]any{"health_status", "Mal"},
			),
		},
		{
			name: "small steps are not a jump",
			records: daily("P1", nil,
				[]any{"health_status", "Muito bem"},
				[]any{"health_status", "Bem"},
				[]any{"health_status", "Razoável"},
				[]any{"health_status", "Não muito bem"},
			),
		},
		{
			name: "jumps follow dates not input order",
			records: daily("P1", []int{1, 4, 2, 3},
				[]any{"health_status", "Muito bem"},
				[]any{"health_status", "Não muito bem"},
				[]any{"health_status", "Bem"},
				[]any{"health_status", "Razoável"},
			),
		},
		{
			name: "undated answers are not part of a jump",
			records: append(daily("P1", nil,
				[]any{"health_status", "Bem"},
				[]any{"health_status", "Razoável"},
				[]any{"health_status", "Bem"},
			), rec("P1", "", "health_status", "Mal")),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := newTestEngine(t)
			report := e.ResponseAnomalies(tt.records)

			assert.Equal(t, 1, report.Summary.ParticipantsAnalyzed)
			if len(tt.want) == 0 {
				assert.Empty(t, report.Suspicious)
				return
			}
			require.Len(t, report.Suspicious, 1)
			alert := report.Suspicious[0]
			require.Len(t, alert.Anomalies, len(tt.want))
			for i, want := range tt.want {
				assert.Equal(t, want, alert.Anomalies[i].Type)
			}
			assert.Equal(t, tt.desc, alert.Anomalies[0].Description)
		})
	}
}

func TestResponseAnomalies_Severity(t *testing.T) {
	e := newTestEngine(t)
	records := daily("P1", nil,
		[]any{"health_status", "Muito bem"},
		[]any{"health_status", "Muito bem"},
		[]any{"health_status", "Muito bem"},
		[]any{"health_status", "Muito bem"},
		[]any{"health_status", "Mal"},
	)

	report := e.ResponseAnomalies(records)

	require.Len(t, report.Suspicious, 1)
	alert := report.Suspicious[0]
	assert.Equal(t, 5, alert.TotalResponses)
	require.Len(t, alert.Anomalies, 2)
	assert.Equal(t, domain.RiskMedium, alert.Anomalies[0].Severity)
	assert.Equal(t, domain.RiskHigh, alert.Anomalies[1].Severity)
	assert.NotEmpty(t, alert.Recommendation)
}

func TestResponseAnomalies_Summary(t *testing.T) {
	e := newTestEngine(t)
	records := daily("P1", nil, repeat(6, []any{"fatigue_today", "Sempre"})...)
	records = append(records, daily("P2", nil,
		[]any{"fatigue_today", "Nunca"},
		[]any{"fatigue_today", "Sempre"},
	)...)
	records = append(records, rec("", "2024-06-01", "fatigue_today", "Nunca"))

	report := e.ResponseAnomalies(records)

	assert.Equal(t, domain.AnomalySummary{
		ParticipantsAnalyzed:      2,
		ParticipantsWithAnomalies: 1,
		TotalAnomalies:            1,
		AnomalyRate:               50,
	}, report.Summary)
	assert.Equal(t, "P1", report.Suspicious[0].ParticipantID)
	assert.NotEmpty(t, report.Diagnostics, "the record without a participant is reported")
}

func TestResponseAnomalies_Empty(t *testing.T) {
	report := newTestEngine(t).ResponseAnomalies(nil)

	assert.Empty(t, report.Suspicious)
	assert.Zero(t, report.Summary.AnomalyRate)
}
