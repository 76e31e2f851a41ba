package cmd

import (
	"context"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"gym_schedule_bot/internal/app"
	"gym_schedule_bot/internal/infra/store"
)

func newReportCmd() *cobra.Command {
	var includeRoster bool

	cmd := &cobra.Command{
		Use:   "report",
		Short: "Run the daily flow: workout, enrollment status, advisory, persistence, notification",
		RunE: func(cmd *cobra.Command, args []string) error {
			rt, err := newRuntime()
			if err != nil {
				return err
			}
			defer rt.Close()

			ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
			defer cancel()

			runs, err := rt.runRepository(ctx)
			if err != nil {
				return err
			}

			site, closeSession, err := rt.newSession(ctx)
			if err != nil {
				return err
			}
			defer closeSession()

			svc := app.NewReportService(
				site,
				rt.advisor(),
				store.NewFileDocumentStore(rt.cfg.DataDir),
				store.NewCSVHistory(rt.cfg.DataDir),
				runs,
				rt.notifier,
				includeRoster,
				rt.log,
			)
			return svc.Run(ctx)
		},
	}

	cmd.Flags().BoolVar(&includeRoster, "roster", false, "include the full roster of all venues in the report document")
	return cmd
}
