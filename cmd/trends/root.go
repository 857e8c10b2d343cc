package main

import (
	"encoding/json"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/blaisecz/health-trends/internal/analytics"
	"github.com/blaisecz/health-trends/internal/domain"
	"github.com/blaisecz/health-trends/pkg/logger"
	"github.com/rotisserie/eris"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// app holds what every report command needs once flags are parsed.
type app struct {
	input    string
	format   string
	tables   string
	pretty   bool
	logLevel string

	log    *zap.Logger
	engine *analytics.Engine
}

func newRootCmd() *cobra.Command {
	a := &app{}

	root := &cobra.Command{
		Use:   "trends",
		Short: "Longitudinal health-trend and risk reports over questionnaire exports",
		Long: `Reads raw questionnaire records from a JSON or CSV export and prints
engine reports as JSON.

Examples:
  # Risk tiers for every participant
  trends risk --input export.json

  # Seasonal patterns from a CSV export with custom vocabularies
  trends seasonal --input export.csv --tables tables.yaml

  # Dizziness timeline of one participant
  trends timeline --input export.json --participant RM-0042 --field dizziness_today`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			log, err := logger.New(a.logLevel, "console", "")
			if err != nil {
				return eris.Wrap(err, "init logger")
			}
			a.log = log

			tables := analytics.DefaultTables()
			if a.tables != "" {
				if tables, err = analytics.LoadTables(a.tables); err != nil {
					return err
				}
			}
			a.engine, err = analytics.NewEngine(tables, log)
			return err
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			if a.log != nil {
				_ = a.log.Sync()
			}
		},
	}

	f := root.PersistentFlags()
	f.StringVarP(&a.input, "input", "i", "-", "record file (JSON or CSV); - reads stdin")
	f.StringVar(&a.format, "format", "", "input format: json or csv (default: from file extension, json for stdin)")
	f.StringVar(&a.tables, "tables", "", "YAML file overlaying the built-in vocabulary tables")
	f.BoolVar(&a.pretty, "pretty", false, "indent JSON output")
	f.StringVar(&a.logLevel, "log-level", "warn", "log level: debug, info, warn, error")

	root.AddCommand(reportCommands(a)...)
	root.AddCommand(newTimelineCmd(a), newParticipantCmd(a), newRulesCmd())
	return root
}

// records loads the input file.
func (a *app) records(cmd *cobra.Command) ([]domain.RawRecord, error) {
	format := a.format
	if format == "" {
		format = "json"
		if strings.EqualFold(filepath.Ext(a.input), ".csv") {
			format = "csv"
		}
	}

	var r io.Reader = cmd.InOrStdin()
	if a.input != "-" {
		fh, err := os.Open(a.input)
		if err != nil {
			return nil, eris.Wrapf(err, "open %s", a.input)
		}
		defer fh.Close()
		r = fh
	}

	records, err := readRecords(r, format)
	if err != nil {
		return nil, err
	}
	a.log.Debug("records loaded", zap.String("input", a.input), zap.Int("count", len(records)))
	return records, nil
}

func (a *app) write(cmd *cobra.Command, v any) error {
	enc := json.NewEncoder(cmd.OutOrStdout())
	if a.pretty {
		enc.SetIndent("", "  ")
	}
	return eris.Wrap(enc.Encode(v), "write report")
}
