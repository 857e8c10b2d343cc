package seed

import (
	"context"
	"fmt"
	"math/rand"
	"time"

	"github.com/blaisecz/health-trends/internal/domain"
	"github.com/blaisecz/health-trends/internal/repository"
	"github.com/google/uuid"
	"github.com/rotisserie/eris"
	"go.uber.org/zap"
)

const (
	seededWeeks  = 12
	participants = 8
	instrument   = "daily_questionnaire"
)

// Profile steers the generated answers of one participant.
type Profile string

const (
	ProfileImproving Profile = "improving"
	ProfileDeclining Profile = "declining"
	ProfileStable    Profile = "stable"
	ProfileNonAdhere Profile = "non_adherent"
	ProfilePoorSleep Profile = "poor_sleep"
)

var profiles = []Profile{ProfileImproving, ProfileDeclining, ProfileStable, ProfileNonAdhere, ProfilePoorSleep}

var (
	frequencyAnswers = []string{"Nunca", "Raramente", "Frequentemente", "Sempre"}
	healthAnswers    = []string{"Mal", "Não muito bem", "Razoável", "Bem", "Muito bem"}
	sleepAnswers     = []string{"Muito má", "Má", "Razoável", "Boa", "Muito boa"}
	symptomFields    = []string{"dizziness_today", "fatigue_today", "muscle_weakness_today", "pain_today"}
)

// ParticipantCode is the identifier of the i-th seeded participant.
func ParticipantCode(i int) string {
	return fmt.Sprintf("RM-%04d", i+1)
}

// Generate builds weekly records for n participants starting at start.
// Output depends only on its arguments.
func Generate(n, weeks int, start time.Time, seed int64) []domain.RawRecord {
	rng := rand.New(rand.NewSource(seed))
	var records []domain.RawRecord
	for p := 0; p < n; p++ {
		profile := profiles[p%len(profiles)]
		for w := 0; w < weeks; w++ {
			day := start.AddDate(0, 0, 7*w+rng.Intn(3))
			records = append(records, answers(rng, ParticipantCode(p), profile, day, w, weeks))
		}
	}
	return records
}

// answers fills one questionnaire. progress runs from 0 to 1 over the window.
func answers(rng *rand.Rand, code string, profile Profile, day time.Time, week, weeks int) domain.RawRecord {
	progress := float64(week) / float64(max(weeks-1, 1))

	// severity in [0, 1] where 1 is worst
	severity := 0.35
	switch profile {
	case ProfileImproving:
		severity = 0.9 - 0.8*progress
	case ProfileDeclining:
		severity = 0.1 + 0.8*progress
	case ProfilePoorSleep:
		severity = 0.5
	}

	rec := domain.RawRecord{
		"participant_code":         code,
		"redcap_repeat_instrument": instrument,
		"redcap_repeat_instance":   week + 1,
		"questionnaire_date":       day.Format("2006-01-02"),
	}
	for _, field := range symptomFields {
		rec[field] = pick(rng, frequencyAnswers, severity)
	}
	rec["daytime_sleepiness"] = pick(rng, frequencyAnswers, severity)
	rec["health_status"] = pick(rng, healthAnswers, 1-severity)
	rec["vas_health_today"] = int(100*(1-severity)) + rng.Intn(11) - 5

	sleep := 1 - severity
	if profile == ProfilePoorSleep {
		sleep = 0.15
		rec["daytime_sleepiness"] = pick(rng, frequencyAnswers, 0.8)
	}
	rec["sleep_quality_last_night"] = pick(rng, sleepAnswers, sleep)

	took := rng.Float64() < 0.95
	if profile == ProfileNonAdhere {
		took = rng.Float64() < 0.4
	}
	if took {
		rec["took_medications_yesterday"] = "Sim"
	} else {
		rec["took_medications_yesterday"] = "Não"
	}
	return rec
}

// pick chooses an answer around position level in [0, 1]. Two answers in
// five move one step up or down.
func pick(rng *rand.Rand, scale []string, level float64) string {
	idx := int(level*float64(len(scale)-1) + 0.5)
	switch rng.Intn(5) {
	case 0:
		idx--
	case 4:
		idx++
	}
	idx = min(max(idx, 0), len(scale)-1)
	return scale[idx]
}

// Run seeds the store with synthetic participants. Safe to call multiple times.
func Run(ctx context.Context, repo repository.RecordRepository, log *zap.Logger) error {
	existing, err := repo.Participants(ctx)
	if err != nil {
		return eris.Wrap(err, "list participants")
	}
	for _, p := range existing {
		if p.ParticipantID == ParticipantCode(0) {
			log.Info("seed data already present")
			return nil
		}
	}

	start := time.Now().UTC().AddDate(0, 0, -7*seededWeeks).Truncate(24 * time.Hour)
	raw := Generate(participants, seededWeeks, start, start.Unix())

	records := make([]domain.Record, len(raw))
	for i, r := range raw {
		code, _ := r.Text("participant_code")
		records[i] = domain.Record{
			ID:            uuid.New(),
			ParticipantID: code,
			Instrument:    instrument,
			Fields:        r,
		}
	}
	if err := repo.CreateBatch(ctx, records); err != nil {
		return eris.Wrap(err, "store seed records")
	}

	log.Info("seed completed", zap.Int("participants", participants), zap.Int("records", len(records)))
	return nil
}
