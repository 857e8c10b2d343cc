package config

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
)

func TestGormLogger(t *testing.T) {
	tests := []struct {
		name     string
		level    string
		wantInfo bool
	}{
		{"info level keeps statements quiet", "info", false},
		{"debug level logs statements", "debug", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			core, logs := observer.New(zap.DebugLevel)
			l := gormLogger(tt.level, zap.New(core))
			ctx := context.Background()

			l.Info(ctx, "listing %s", "records")
			l.Error(ctx, "query failed: %s", "timeout")

			entries := logs.All()
			if tt.wantInfo {
				require.Len(t, entries, 2)
				assert.Contains(t, entries[0].Message, "listing records")
			} else {
				require.Len(t, entries, 1)
			}
			last := entries[len(entries)-1]
			assert.Equal(t, "gorm", last.LoggerName)
			assert.Contains(t, last.Message, "query failed: timeout")
		})
	}
}
