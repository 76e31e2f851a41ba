package cmd

import (
	"context"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"gym_schedule_bot/internal/app"
	"gym_schedule_bot/internal/domain/schedule"
	"gym_schedule_bot/internal/infra/scheduler"
	"gym_schedule_bot/internal/infra/store"
	"gym_schedule_bot/internal/infra/telegram"
)

// jobTimeout bounds one scheduled automation run end to end.
const jobTimeout = 15 * time.Minute

// noNotify suppresses the broadcast notifier for chat-driven runs; the
// command handler replies in the chat itself.
type noNotify struct{}

func (noNotify) Notify(string) {}

func newServeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Run as a daemon: cron-driven reports and standing enrollments plus Telegram commands",
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
			window, err := app.ParseWindow(rt.cfg.EnrollWindowStart, rt.cfg.EnrollWindowEnd)
			if err != nil {
				return err
			}
			entries, err := rt.cfg.StandingEntries()
			if err != nil {
				return err
			}

			docs := store.NewFileDocumentStore(rt.cfg.DataDir)
			history := store.NewCSVHistory(rt.cfg.DataDir)
			advisor := rt.advisor()

			reportJob := func() {
				jobCtx, done := context.WithTimeout(ctx, jobTimeout)
				defer done()
				site, closeSession, err := rt.newSession(jobCtx)
				if err != nil {
					rt.log.WithError(err).Error("could not open a session for the daily report")
					return
				}
				defer closeSession()
				svc := app.NewReportService(site, advisor, docs, history, runs, rt.notifier, false, rt.log)
				if err := svc.Run(jobCtx); err != nil {
					rt.log.WithError(err).Error("daily report run failed")
				}
			}

			var standingJob func()
			if len(entries) > 0 {
				standingJob = func() {
					jobCtx, done := context.WithTimeout(ctx, jobTimeout)
					defer done()
					site, closeSession, err := rt.newSession(jobCtx)
					if err != nil {
						rt.log.WithError(err).Error("could not open a session for standing enrollments")
						return
					}
					defer closeSession()
					svc := app.NewStandingEnrollService(site, rt.notifier, entries, rt.log)
					if err := svc.Run(jobCtx); err != nil {
						rt.log.WithError(err).Error("standing enrollment round failed")
					}
				}
			}

			sched := scheduler.New(reportJob, standingJob, rt.cfg.CronSpecReport, rt.cfg.CronSpecStanding, rt.log)
			sched.Start()

			if rt.bot != nil {
				runner := func(hctx context.Context, req schedule.TransitionRequest) (schedule.TransitionResult, error) {
					site, closeSession, err := rt.newSession(hctx)
					if err != nil {
						return schedule.Failed("session: %v", err), err
					}
					defer closeSession()
					return app.NewEnrollService(site, noNotify{}, window, rt.log).Execute(hctx, req)
				}
				status := func(hctx context.Context, day schedule.DaySel) (schedule.EnrollmentStatus, schedule.Venue, error) {
					site, closeSession, err := rt.newSession(hctx)
					if err != nil {
						return schedule.EnrollmentStatus{}, "", err
					}
					defer closeSession()
					if err := site.Login(hctx); err != nil {
						return schedule.EnrollmentStatus{}, "", err
					}
					offset := 0
					if day == schedule.DayTomorrow {
						offset = 1
					}
					return site.ProbeStatus(hctx, schedule.ResolveDay(time.Now(), offset))
				}
				telegram.RegisterHandlers(rt.bot, rt.cfg.TelegramChatID, runner, status, rt.log)
				go rt.bot.Start()
				rt.log.Info("telegram command handlers registered, bot polling")
			}

			rt.log.Info("daemon up, waiting for triggers")
			<-ctx.Done()

			rt.log.Info("shutting down")
			if rt.bot != nil {
				rt.bot.Stop()
			}
			sched.Stop()
			return nil
		},
	}
}
