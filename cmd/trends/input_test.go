package main

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/blaisecz/health-trends/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReadRecords(t *testing.T) {
	tests := []struct {
		name    string
		format  string
		input   string
		want    []domain.RawRecord
		wantErr bool
	}{
		{
			name:   "json array",
			format: "json",
			input:  `[{"participant_code": "RM-001", "vas_health_today": 70}]`,
			want:   []domain.RawRecord{{"participant_code": "RM-001", "vas_health_today": json.Number("70")}},
		},
		{
			name:   "json object with records",
			format: "JSON",
			input:  ` {"records": [{"participant_code": "RM-002"}]}`,
			want:   []domain.RawRecord{{"participant_code": "RM-002"}},
		},
		{
			name:   "csv skips empty cells",
			format: "csv",
			input:  "\ufeffparticipant_code,pain_today,questionnaire_date\nRM-001,Nunca,2024-01-08\nRM-002,,2024-01-09\n",
			want: []domain.RawRecord{
				{"participant_code": "RM-001", "pain_today": "Nunca", "questionnaire_date": "2024-01-08"},
				{"participant_code": "RM-002", "questionnaire_date": "2024-01-09"},
			},
		},
		{
			name:   "empty csv",
			format: "csv",
			input:  "",
		},
		{
			name:    "malformed json",
			format:  "json",
			input:   `[{"participant_code":`,
			wantErr: true,
		},
		{
			name:    "unknown format",
			format:  "xml",
			input:   "<records/>",
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := readRecords(strings.NewReader(tt.input), tt.format)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestReadRecords_UnknownFormatIsInvalidInput(t *testing.T) {
	_, err := readRecords(strings.NewReader(""), "xml")
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}
