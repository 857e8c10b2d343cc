// Package analytics turns repeated questionnaire records into trends, trajectories,
// seasonal aggregates and tiered risk scores.
//
// Every Engine method is a pure function of the records passed in: nothing is cached
// between calls and an Engine is safe for concurrent use once constructed.
package analytics

import (
	"fmt"
	"sort"

	"github.com/blaisecz/health-trends/internal/domain"
	"go.uber.org/zap"
)

// Engine runs the analyses with a fixed set of tables.
type Engine struct {
	tables Tables
	norm   *Normalizer
	rules  []Rule
	logger *zap.Logger
}

// NewEngine validates tables and builds the enabled risk rules.
// A nil logger disables logging.
func NewEngine(tables Tables, logger *zap.Logger) (*Engine, error) {
	if logger == nil {
		logger = zap.NewNop()
	}

	t := tables.Clone()
	t.prepare()
	if err := t.Validate(); err != nil {
		return nil, err
	}

	rules := make([]Rule, 0, len(t.RiskRules))
	for _, name := range t.RiskRules {
		rules = append(rules, ruleFactories[name](t))
	}

	return &Engine{
		tables: t,
		norm:   NewNormalizer(t),
		rules:  rules,
		logger: logger.Named("analytics"),
	}, nil
}

// Tables returns a copy of the engine's tables.
func (e *Engine) Tables() Tables {
	return e.tables.Clone()
}

// Normalizer exposes the engine's answer normalizer.
func (e *Engine) Normalizer() *Normalizer {
	return e.norm
}

// diagnostics collects skipped input for one engine call.
// Identical problems are merged and counted.
type diagnostics struct {
	logger *zap.Logger
	index  map[domain.Diagnostic]int
	items  []domain.Diagnostic
}

func newDiagnostics(logger *zap.Logger) *diagnostics {
	return &diagnostics{logger: logger, index: make(map[domain.Diagnostic]int)}
}

func (d *diagnostics) add(kind domain.DiagnosticKind, participantID, field, value, message string) {
	key := domain.Diagnostic{Kind: kind, ParticipantID: participantID, Field: field, Value: value, Message: message}
	if i, ok := d.index[key]; ok {
		d.items[i].Count++
		return
	}

	d.logger.Debug("skipping input",
		zap.String("kind", string(kind)),
		zap.String("participant_id", participantID),
		zap.String("field", field),
		zap.String("value", value),
	)

	d.index[key] = len(d.items)
	key.Count = 1
	d.items = append(d.items, key)
}

// list returns the diagnostics in a deterministic order.
func (d *diagnostics) list() []domain.Diagnostic {
	if len(d.items) == 0 {
		return nil
	}
	out := make([]domain.Diagnostic, len(d.items))
	copy(out, d.items)
	sort.SliceStable(out, func(i, j int) bool {
		a, b := out[i], out[j]
		if a.Kind != b.Kind {
			return a.Kind < b.Kind
		}
		if a.ParticipantID != b.ParticipantID {
			return a.ParticipantID < b.ParticipantID
		}
		if a.Field != b.Field {
			return a.Field < b.Field
		}
		return a.Value < b.Value
	})
	return out
}

// guard runs fn for one participant and turns a panic into a diagnostic so the
// rest of the batch is still analyzed.
func (e *Engine) guard(diags *diagnostics, participantID string, fn func()) (ok bool) {
	defer func() {
		if r := recover(); r != nil {
			e.logger.Warn("participant analysis failed",
				zap.String("participant_id", participantID),
				zap.Any("panic", r),
			)
			diags.add(domain.DiagnosticParticipantFailure, participantID, "", "", fmt.Sprint(r))
			ok = false
		}
	}()
	fn()
	return true
}
