package main

import (
	"context"
	"fmt"

	"github.com/blaisecz/health-trends/internal/analytics"
	"github.com/blaisecz/health-trends/internal/domain"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"
)

// reportCommands builds one subcommand per collection-wide report.
func reportCommands(a *app) []*cobra.Command {
	reports := []struct {
		use   string
		short string
		run   func(e *analytics.Engine, records []domain.RawRecord) any
	}{
		{"trends", "Split-half trend of every monitored field per participant", func(e *analytics.Engine, r []domain.RawRecord) any { return e.AnalyzeTrends(r) }},
		{"trajectories", "Classify participants as improving, declining, fluctuating or stable", func(e *analytics.Engine, r []domain.RawRecord) any { return e.ClassifyTrajectories(r) }},
		{"seasonal", "Mean symptom severity per month and weekday", func(e *analytics.Engine, r []domain.RawRecord) any { return e.SeasonalPatterns(r) }},
		{"risk", "Risk score and tier of every participant", func(e *analytics.Engine, r []domain.RawRecord) any { return e.ScoreRisk(r) }},
		{"medication", "Medication adherence and adverse-effect alerts", func(e *analytics.Engine, r []domain.RawRecord) any { return e.MedicationAlerts(r) }},
		{"sleep", "Poor sleep and daytime sleepiness alerts", func(e *analytics.Engine, r []domain.RawRecord) any { return e.SleepAlerts(r) }},
		{"anomalies", "Suspicious answer patterns that need manual review", func(e *analytics.Engine, r []domain.RawRecord) any { return e.ResponseAnomalies(r) }},
	}

	cmds := make([]*cobra.Command, 0, len(reports))
	for _, rep := range reports {
		cmds = append(cmds, &cobra.Command{
			Use:   rep.use,
			Short: rep.short,
			Args:  cobra.NoArgs,
			RunE: func(cmd *cobra.Command, _ []string) error {
				records, err := a.records(cmd)
				if err != nil {
					return err
				}
				return a.write(cmd, rep.run(a.engine, records))
			},
		})
	}
	return append(cmds, newAllCmd(a))
}

type combined struct {
	Trends       domain.TrendReport      `json:"trends"`
	Trajectories domain.TrajectoryReport `json:"trajectories"`
	Seasonal     domain.SeasonalReport   `json:"seasonal"`
	Risk         domain.RiskReport       `json:"risk"`
	Medication   domain.MedicationReport `json:"medication"`
	Sleep        domain.SleepReport      `json:"sleep"`
	Anomalies    domain.AnomalyReport    `json:"anomalies"`
}

func newAllCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "all",
		Short: "Every report in one document",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			records, err := a.records(cmd)
			if err != nil {
				return err
			}
			out, err := allReports(cmd.Context(), a.engine, records)
			if err != nil {
				return err
			}
			return a.write(cmd, out)
		},
	}
}

// allReports runs the reports concurrently. Each call only reads records.
// Reports not yet started when ctx is cancelled are skipped and the
// cancellation is returned.
func allReports(ctx context.Context, e *analytics.Engine, records []domain.RawRecord) (combined, error) {
	var out combined
	g, ctx := errgroup.WithContext(ctx)
	compute := func(fn func()) {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			fn()
			return nil
		})
	}

	compute(func() { out.Trends = e.AnalyzeTrends(records) })
	compute(func() { out.Trajectories = e.ClassifyTrajectories(records) })
	compute(func() { out.Seasonal = e.SeasonalPatterns(records) })
	compute(func() { out.Risk = e.ScoreRisk(records) })
	compute(func() { out.Medication = e.MedicationAlerts(records) })
	compute(func() { out.Sleep = e.SleepAlerts(records) })
	compute(func() { out.Anomalies = e.ResponseAnomalies(records) })

	if err := g.Wait(); err != nil {
		return combined{}, err
	}
	return out, nil
}

func newTimelineCmd(a *app) *cobra.Command {
	var participant, field string
	cmd := &cobra.Command{
		Use:   "timeline",
		Short: "Chronological records of one participant",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			records, err := a.records(cmd)
			if err != nil {
				return err
			}
			tl, err := a.engine.Timeline(records, participant, field)
			if err != nil {
				return err
			}
			return a.write(cmd, tl)
		},
	}
	cmd.Flags().StringVarP(&participant, "participant", "p", "", "participant identifier")
	cmd.Flags().StringVarP(&field, "field", "f", "", "field to extract")
	_ = cmd.MarkFlagRequired("participant")
	return cmd
}

func newParticipantCmd(a *app) *cobra.Command {
	var participant string
	cmd := &cobra.Command{
		Use:   "participant",
		Short: "Trend, trajectory and risk score of one participant",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			records, err := a.records(cmd)
			if err != nil {
				return err
			}
			report, err := a.engine.ParticipantReport(records, participant)
			if err != nil {
				return err
			}
			return a.write(cmd, report)
		},
	}
	cmd.Flags().StringVarP(&participant, "participant", "p", "", "participant identifier")
	_ = cmd.MarkFlagRequired("participant")
	return cmd
}

func newRulesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "rules",
		Short: "List the registered risk rules",
		Args:  cobra.NoArgs,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return nil
		},
		RunE: func(cmd *cobra.Command, _ []string) error {
			for _, name := range analytics.RuleNames() {
				fmt.Fprintln(cmd.OutOrStdout(), name)
			}
			return nil
		},
	}
}
