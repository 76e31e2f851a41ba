package cmd

import (
	"context"
	"os/signal"
	"strings"
	"syscall"

	"github.com/spf13/cobra"

	"gym_schedule_bot/internal/app"
	"gym_schedule_bot/internal/domain/schedule"
)

func newEnrollCmd() *cobra.Command {
	return newTransitionCmd(
		"enroll",
		"Enroll in a class (joins the waitlist when the class is full)",
		schedule.ActionEnroll,
	)
}

func newWithdrawCmd() *cobra.Command {
	return newTransitionCmd(
		"withdraw",
		"Withdraw from a class or leave its waitlist",
		schedule.ActionWithdraw,
	)
}

func newTransitionCmd(use, short string, action schedule.Action) *cobra.Command {
	var (
		dayFlag   string
		timeFlag  string
		venueFlag string
	)

	cmd := &cobra.Command{
		Use:   use,
		Short: short,
		RunE: func(cmd *cobra.Command, args []string) error {
			req := schedule.TransitionRequest{
				Time:   timeFlag,
				Action: action,
			}
			switch strings.ToLower(dayFlag) {
			case "today", "vandaag":
				req.Day = schedule.DayToday
			case "tomorrow", "morgen":
				req.Day = schedule.DayTomorrow
			default:
				req.Day = schedule.DaySel(dayFlag)
			}
			if venueFlag != "" {
				venue, err := schedule.ParseVenue(venueFlag)
				if err != nil {
					return err
				}
				req.Venue = &venue
			}

			rt, err := newRuntime()
			if err != nil {
				return err
			}
			defer rt.Close()

			ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
			defer cancel()

			site, closeSession, err := rt.newSession(ctx)
			if err != nil {
				return err
			}
			defer closeSession()

			window, err := app.ParseWindow(rt.cfg.EnrollWindowStart, rt.cfg.EnrollWindowEnd)
			if err != nil {
				return err
			}

			svc := app.NewEnrollService(site, rt.notifier, window, rt.log)
			_, err = svc.Execute(ctx, req)
			return err
		},
	}

	cmd.Flags().StringVar(&dayFlag, "day", "today", "target day: today or tomorrow")
	cmd.Flags().StringVar(&timeFlag, "time", "", "class start time, e.g. 18:30 (required)")
	cmd.Flags().StringVar(&venueFlag, "venue", "", "venue, e.g. 'Zaal 1' (default: probe all venues)")
	cmd.MarkFlagRequired("time")
	return cmd
}
