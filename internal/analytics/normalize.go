package analytics

import (
	"math"
	"strconv"
	"strings"

	"github.com/blaisecz/health-trends/internal/domain"
)

type valueStatus int

const (
	valueOK valueStatus = iota
	valueAbsent
	valueUnrecognized
	valueUnknownField
)

// Normalizer maps raw answers to ordinal scores.
// Unmapped answers are reported as missing, never as zero.
type Normalizer struct {
	vocab  map[string]Vocabulary
	folded map[string]map[string]float64
}

// NewNormalizer indexes the vocabularies of t.
func NewNormalizer(t Tables) *Normalizer {
	n := &Normalizer{
		vocab:  t.Vocabularies,
		folded: make(map[string]map[string]float64, len(t.Vocabularies)),
	}
	for field, v := range t.Vocabularies {
		idx := make(map[string]float64, len(v.Levels))
		for answer, score := range v.Levels {
			idx[strings.ToLower(strings.TrimSpace(answer))] = score
		}
		n.folded[field] = idx
	}
	return n
}

// Normalize returns the ordinal score of answer for field, or false when the
// answer is blank, not in the vocabulary, or the field is unknown.
func (n *Normalizer) Normalize(field string, answer any) (float64, bool) {
	v, status := n.value(field, domain.RawRecord{field: answer})
	return v, status == valueOK
}

// Severity converts a score to the "higher is worse" direction so fields of
// opposite polarity can be pooled.
func (n *Normalizer) Severity(field string, score float64) float64 {
	v := n.vocab[field]
	if v.Polarity == HigherIsBetter {
		return v.Min + v.Max - score
	}
	return score
}

// Polarity returns the polarity of field.
func (n *Normalizer) Polarity(field string) Polarity {
	return n.vocab[field].Polarity
}

// Known reports whether field has a vocabulary.
func (n *Normalizer) Known(field string) bool {
	_, ok := n.vocab[field]
	return ok
}

func (n *Normalizer) value(field string, rec domain.RawRecord) (float64, valueStatus) {
	v, ok := n.vocab[field]
	if !ok {
		return 0, valueUnknownField
	}

	if v.Numeric {
		switch raw := rec[field].(type) {
		case float64:
			return n.numeric(v, raw)
		case int:
			return n.numeric(v, float64(raw))
		case int64:
			return n.numeric(v, float64(raw))
		}
	}

	text, ok := rec.Text(field)
	if !ok {
		return 0, valueAbsent
	}
	if score, ok := v.Levels[text]; ok {
		return score, valueOK
	}
	if score, ok := n.folded[field][strings.ToLower(text)]; ok {
		return score, valueOK
	}
	if v.Numeric {
		f, err := strconv.ParseFloat(strings.Replace(text, ",", ".", 1), 64)
		if err == nil {
			return n.numeric(v, f)
		}
	}
	return 0, valueUnrecognized
}

func (n *Normalizer) numeric(v Vocabulary, f float64) (float64, valueStatus) {
	if !v.Numeric {
		return 0, valueUnrecognized
	}
	if math.IsNaN(f) || f < v.Min || f > v.Max {
		return 0, valueUnrecognized
	}
	return f, valueOK
}
