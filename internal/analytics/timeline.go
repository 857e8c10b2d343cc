package analytics

import (
	"github.com/blaisecz/health-trends/internal/domain"
	"github.com/rotisserie/eris"
)

// Timeline returns the chronological series of one participant. When field is not
// empty the field's values and trend are included as well.
func (e *Engine) Timeline(records []domain.RawRecord, participantID, field string) (domain.Timeline, error) {
	if field != "" && !e.norm.Known(field) {
		return domain.Timeline{}, eris.Wrapf(domain.ErrUnknownField, "field %s", field)
	}

	diags := newDiagnostics(e.logger)
	s, err := e.participantSeries(records, participantID, diags)
	if err != nil {
		return domain.Timeline{}, err
	}

	tl := domain.Timeline{
		ParticipantID: participantID,
		TotalRecords:  s.TotalRecords(),
		Points:        make([]domain.TimelinePoint, 0, len(s.Points)),
		Field:         field,
	}
	for _, p := range s.Points {
		tl.Points = append(tl.Points, domain.TimelinePoint{
			Date:       p.Date.Format(dateLayout),
			Instrument: p.Instrument,
			Values:     p.Values,
		})
		if field == "" {
			continue
		}
		if v, ok := p.Values[field]; ok {
			tl.FieldValues = append(tl.FieldValues, domain.FieldValue{Date: p.Date.Format(dateLayout), Value: v})
		}
	}

	if field != "" {
		if tr, ok := DetectTrend(field, s.FieldValues(field), e.norm.Polarity(field), e.tables.Thresholds.TrendMinChange); ok {
			tl.Trend = &tr
		}
	}
	tl.Diagnostics = diags.list()
	return tl, nil
}

// ParticipantReport bundles the trend, trajectory and risk score of one participant.
// Trend and trajectory are nil with fewer than two dated records.
func (e *Engine) ParticipantReport(records []domain.RawRecord, participantID string) (domain.ParticipantReport, error) {
	s, err := e.participantSeries(records, participantID, newDiagnostics(e.logger))
	if err != nil {
		return domain.ParticipantReport{}, err
	}

	report := domain.ParticipantReport{
		ParticipantID: participantID,
		Risk:          e.ScoreParticipant(s),
	}
	if len(s.Points) >= 2 {
		trends := e.ParticipantTrends(s)
		report.Trend = &domain.ParticipantTrend{
			ParticipantID: participantID,
			TotalRecords:  len(s.Points),
			FirstDate:     s.FirstDate(),
			LastDate:      s.LastDate(),
			TimeSpanDays:  s.TimeSpanDays(),
			Fields:        trends,
		}
		t := ClassifyTrajectory(participantID, trends, e.tables.Thresholds.TrajectoryMajority)
		report.Trajectory = &t
	}
	return report, nil
}

func (e *Engine) participantSeries(records []domain.RawRecord, participantID string, diags *diagnostics) (*ParticipantSeries, error) {
	var own []domain.RawRecord
	for _, rec := range records {
		if id, ok := rec.Text(e.tables.ParticipantField); ok && id == participantID {
			own = append(own, rec)
		}
	}
	if len(own) == 0 {
		return nil, eris.Wrapf(domain.ErrNotFound, "participant %s", participantID)
	}
	return e.buildSeries(participantID, own, diags), nil
}
