package cmd

import (
	"context"

	"github.com/spf13/cobra"

	"gym_schedule_bot/internal/app"
	"gym_schedule_bot/internal/domain/report"
	"gym_schedule_bot/internal/infra/store"
)

func newAnalyzeCmd() *cobra.Command {
	var m report.Metrics

	cmd := &cobra.Command{
		Use:   "analyze",
		Short: "Record post-workout metrics, generate a recap and merge it into today's document",
		RunE: func(cmd *cobra.Command, args []string) error {
			rt, err := newRuntime()
			if err != nil {
				return err
			}
			defer rt.Close()

			svc := app.NewAnalyzeService(
				rt.advisor(),
				store.NewFileDocumentStore(rt.cfg.DataDir),
				rt.notifier,
				rt.cfg.AnalyzeMinMinutes,
				rt.log,
			)
			return svc.Run(context.Background(), m)
		},
	}

	cmd.Flags().IntVar(&m.DurationMinutes, "minutes", 0, "session duration in minutes (required)")
	cmd.Flags().IntVar(&m.Calories, "calories", 0, "active calories burned")
	cmd.Flags().IntVar(&m.AvgHeartRate, "avg-hr", 0, "average heart rate in bpm")
	cmd.Flags().IntVar(&m.MaxHeartRate, "max-hr", 0, "maximum heart rate in bpm")
	cmd.MarkFlagRequired("minutes")
	return cmd
}
