package cache

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/rotisserie/eris"
	"go.uber.org/zap"
)

// ReportKind names a cached report.
type ReportKind string

const (
	ReportTrends       ReportKind = "trends"
	ReportTrajectories ReportKind = "trajectories"
	ReportSeasonal     ReportKind = "seasonal"
	ReportRisk         ReportKind = "risk"
	ReportMedication   ReportKind = "medication"
	ReportSleep        ReportKind = "sleep"
	ReportAnomalies    ReportKind = "anomalies"
)

// ReportKinds lists every cached report.
var ReportKinds = []ReportKind{
	ReportTrends,
	ReportTrajectories,
	ReportSeasonal,
	ReportRisk,
	ReportMedication,
	ReportSleep,
	ReportAnomalies,
}

const (
	keyPrefix     = "reports:"
	generationKey = keyPrefix + "generation"

	// InitialGeneration is used until the first invalidation.
	InitialGeneration = "0"
)

// ReportCache stores reports as JSON under reports:<generation>:<kind>.
// Invalidate starts a new generation, so a report computed from rows read
// before an invalidation is written under a key nobody reads any more.
// A ReportCache without a store never hits and never fails.
type ReportCache struct {
	store  KVStore
	ttl    time.Duration
	logger *zap.Logger
}

func NewReportCache(store KVStore, ttl time.Duration, logger *zap.Logger) *ReportCache {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &ReportCache{store: store, ttl: ttl, logger: logger.Named("cache")}
}

// Enabled reports whether a backend is configured.
func (c *ReportCache) Enabled() bool {
	return c != nil && c.store != nil
}

func Key(generation string, kind ReportKind) string {
	return keyPrefix + generation + ":" + string(kind)
}

// Generation returns the generation reports are currently stored under.
// ok is false when the cache is disabled or unreadable; the caller then
// neither reads nor writes reports.
func (c *ReportCache) Generation(ctx context.Context) (generation string, ok bool) {
	if !c.Enabled() {
		return "", false
	}
	gen, err := c.store.Get(ctx, generationKey)
	switch {
	case errors.Is(err, ErrMiss):
		return InitialGeneration, true
	case err != nil:
		c.logger.Warn("cache generation read failed", zap.Error(err))
		return "", false
	}
	return gen, true
}

// Get decodes the report cached for generation into dest and reports whether
// it was found. Backend failures are logged and treated as a miss.
func (c *ReportCache) Get(ctx context.Context, generation string, kind ReportKind, dest any) bool {
	if !c.Enabled() || generation == "" {
		return false
	}
	raw, err := c.store.Get(ctx, Key(generation, kind))
	if err != nil {
		if !errors.Is(err, ErrMiss) {
			c.logger.Warn("cache read failed", zap.String("kind", string(kind)), zap.Error(err))
		}
		return false
	}
	if err := json.Unmarshal([]byte(raw), dest); err != nil {
		c.logger.Warn("discarding undecodable cache entry", zap.String("kind", string(kind)), zap.Error(err))
		return false
	}
	return true
}

// Put stores report under kind for the generation it was computed in.
func (c *ReportCache) Put(ctx context.Context, generation string, kind ReportKind, report any) error {
	if !c.Enabled() || generation == "" {
		return nil
	}
	data, err := json.Marshal(report)
	if err != nil {
		return eris.Wrapf(err, "encode %s report", kind)
	}
	return c.store.Set(ctx, Key(generation, kind), string(data), c.ttl)
}

// Invalidate starts a new generation and drops the reports of the previous one.
func (c *ReportCache) Invalidate(ctx context.Context) error {
	if !c.Enabled() {
		return nil
	}
	previous, ok := c.Generation(ctx)
	if err := c.store.Set(ctx, generationKey, uuid.NewString(), 0); err != nil {
		return eris.Wrap(err, "start cache generation")
	}
	if !ok {
		return nil
	}
	keys := make([]string, 0, len(ReportKinds))
	for _, kind := range ReportKinds {
		keys = append(keys, Key(previous, kind))
	}
	return c.store.Delete(ctx, keys...)
}
