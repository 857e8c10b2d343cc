package analytics

import (
	"fmt"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/blaisecz/health-trends/internal/domain"
)

const dateLayout = "2006-01-02"

// TemporalPoint is one normalized observation of a participant.
type TemporalPoint struct {
	ParticipantID string
	Date          time.Time
	Dated         bool
	Instrument    string
	Values        map[string]float64

	instance    int
	fingerprint string
}

// ParticipantSeries is the chronologically ordered record history of one participant.
// Records without a resolvable date are kept apart in Undated: they still feed the
// cross-sectional signals but never the trends.
type ParticipantSeries struct {
	ParticipantID string
	Points        []TemporalPoint
	Undated       []TemporalPoint
}

// TotalRecords counts dated and undated records.
func (s *ParticipantSeries) TotalRecords() int {
	return len(s.Points) + len(s.Undated)
}

// TimeSpanDays is the number of days between the first and the last dated record.
func (s *ParticipantSeries) TimeSpanDays() int {
	if len(s.Points) < 2 {
		return 0
	}
	first := s.Points[0].Date
	last := s.Points[len(s.Points)-1].Date
	return int(last.Sub(first).Hours() / 24)
}

// FirstDate returns the earliest date as YYYY-MM-DD, or "" without dated records.
func (s *ParticipantSeries) FirstDate() string {
	if len(s.Points) == 0 {
		return ""
	}
	return s.Points[0].Date.Format(dateLayout)
}

// LastDate returns the latest date as YYYY-MM-DD, or "" without dated records.
func (s *ParticipantSeries) LastDate() string {
	if len(s.Points) == 0 {
		return ""
	}
	return s.Points[len(s.Points)-1].Date.Format(dateLayout)
}

// FieldValues returns the valid scores of field in chronological order.
func (s *ParticipantSeries) FieldValues(field string) []float64 {
	var values []float64
	for _, p := range s.Points {
		if v, ok := p.Values[field]; ok {
			values = append(values, v)
		}
	}
	return values
}

// all returns dated points followed by undated ones.
func (s *ParticipantSeries) all() []TemporalPoint {
	out := make([]TemporalPoint, 0, s.TotalRecords())
	out = append(out, s.Points...)
	return append(out, s.Undated...)
}

// ResolveDate tries candidates in order and returns the first value whose first ten
// characters parse as a calendar date. Time of day is ignored.
func ResolveDate(rec domain.RawRecord, candidates []string) (time.Time, bool) {
	for _, field := range candidates {
		text, ok := rec.Text(field)
		if !ok || len(text) < len(dateLayout) {
			continue
		}
		d, err := time.Parse(dateLayout, text[:len(dateLayout)])
		if err != nil {
			continue
		}
		return d, true
	}
	return time.Time{}, false
}

// BuildSeries builds the series of one participant from that participant's records.
func (e *Engine) BuildSeries(participantID string, records []domain.RawRecord) *ParticipantSeries {
	return e.buildSeries(participantID, records, newDiagnostics(e.logger))
}

func (e *Engine) buildSeries(participantID string, records []domain.RawRecord, diags *diagnostics) *ParticipantSeries {
	s := &ParticipantSeries{ParticipantID: participantID}
	for _, rec := range records {
		p := e.point(participantID, rec, diags)
		if p.Dated {
			s.Points = append(s.Points, p)
		} else {
			diags.add(domain.DiagnosticMissingDate, participantID, "", "", "")
			s.Undated = append(s.Undated, p)
		}
	}

	sort.SliceStable(s.Points, func(i, j int) bool {
		a, b := s.Points[i], s.Points[j]
		if !a.Date.Equal(b.Date) {
			return a.Date.Before(b.Date)
		}
		if a.instance != b.instance {
			return a.instance < b.instance
		}
		return a.fingerprint < b.fingerprint
	})
	sort.SliceStable(s.Undated, func(i, j int) bool {
		return s.Undated[i].fingerprint < s.Undated[j].fingerprint
	})
	return s
}

func (e *Engine) point(participantID string, rec domain.RawRecord, diags *diagnostics) TemporalPoint {
	p := TemporalPoint{
		ParticipantID: participantID,
		Values:        make(map[string]float64),
		fingerprint:   fingerprint(rec),
	}
	p.Date, p.Dated = ResolveDate(rec, e.tables.DateFields)
	if e.tables.InstrumentField != "" {
		p.Instrument, _ = rec.Text(e.tables.InstrumentField)
	}
	if e.tables.InstanceField != "" {
		if text, ok := rec.Text(e.tables.InstanceField); ok {
			p.instance, _ = strconv.Atoi(text)
		}
	}

	for field := range e.tables.Vocabularies {
		score, status := e.norm.value(field, rec)
		switch status {
		case valueOK:
			p.Values[field] = score
		case valueUnrecognized:
			text, _ := rec.Text(field)
			if text == "" {
				text = fmt.Sprint(rec[field])
			}
			diags.add(domain.DiagnosticUnrecognizedValue, participantID, field, text, "")
		}
	}
	return p
}

// dataset is a record collection grouped by participant.
type dataset struct {
	series map[string]*ParticipantSeries
	ids    []string
}

func (e *Engine) group(records []domain.RawRecord, diags *diagnostics) dataset {
	byParticipant := make(map[string][]domain.RawRecord)
	for _, rec := range records {
		id, ok := rec.Text(e.tables.ParticipantField)
		if !ok {
			diags.add(domain.DiagnosticMissingParticipant, "", e.tables.ParticipantField, "", "")
			continue
		}
		byParticipant[id] = append(byParticipant[id], rec)
	}

	ids := make([]string, 0, len(byParticipant))
	for id := range byParticipant {
		ids = append(ids, id)
	}
	sort.Strings(ids)

	ds := dataset{series: make(map[string]*ParticipantSeries, len(ids))}
	for _, id := range ids {
		recs := byParticipant[id]
		built := e.guard(diags, id, func() {
			ds.series[id] = e.buildSeries(id, recs, diags)
		})
		if built {
			ds.ids = append(ds.ids, id)
		}
	}
	return ds
}

// fingerprint renders a record canonically so that equal records compare equal
// regardless of map iteration order.
func fingerprint(rec domain.RawRecord) string {
	keys := make([]string, 0, len(rec))
	for k := range rec {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	var b strings.Builder
	for _, k := range keys {
		fmt.Fprintf(&b, "%s=%v;", k, rec[k])
	}
	return b.String()
}
