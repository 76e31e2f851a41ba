package telegram

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/sirupsen/logrus"
	"gopkg.in/telebot.v3"

	"gym_schedule_bot/internal/domain/schedule"
)

// TransitionRunner executes one enrollment transition with a fresh
// authenticated session and reports its result.
type TransitionRunner func(ctx context.Context, req schedule.TransitionRequest) (schedule.TransitionResult, error)

// StatusRunner reads the account's enrollment for today or tomorrow.
type StatusRunner func(ctx context.Context, day schedule.DaySel) (schedule.EnrollmentStatus, schedule.Venue, error)

const handlerTimeout = 5 * time.Minute

// RegisterHandlers wires the chat command surface that feeds enrollment
// requests into the automation. Only the configured recipient chat is
// served; anything else is ignored without a reply.
func RegisterHandlers(b *telebot.Bot, chatID int64, run TransitionRunner, status StatusRunner, baseLogger *logrus.Entry) {
	log := baseLogger.WithField("handler_group", "enrollment")

	authorized := func(c telebot.Context) bool {
		return c.Chat() != nil && c.Chat().ID == chatID
	}

	handleAction := func(action schedule.Action) func(telebot.Context) error {
		return func(c telebot.Context) error {
			if !authorized(c) {
				return nil
			}
			logCtx := log.WithField("action", string(action)).WithField("args", c.Args())
			req, err := ParseTransitionArgs(action, c.Args())
			if err != nil {
				logCtx.WithError(err).Info("rejected malformed request")
				return c.Send(fmt.Sprintf("Can't do that: %v\nUsage: /%s Today|Tomorrow HH:MM [venue]", err, action))
			}
			logCtx.Info("processing enrollment command")

			ctx, cancel := context.WithTimeout(context.Background(), handlerTimeout)
			defer cancel()
			res, err := run(ctx, req)
			if err != nil && res.Outcome == "" {
				res = schedule.Failed("%v", err)
			}
			return c.Send(OutcomeMessage(req, res))
		}
	}

	b.Handle("/enroll", handleAction(schedule.ActionEnroll))
	b.Handle("/withdraw", handleAction(schedule.ActionWithdraw))

	b.Handle("/status", func(c telebot.Context) error {
		if !authorized(c) {
			return nil
		}
		day := schedule.DayToday
		if len(c.Args()) > 0 && strings.EqualFold(c.Args()[0], string(schedule.DayTomorrow)) {
			day = schedule.DayTomorrow
		}
		ctx, cancel := context.WithTimeout(context.Background(), handlerTimeout)
		defer cancel()
		st, venue, err := status(ctx, day)
		if err != nil {
			log.WithError(err).Error("status command failed")
			return c.Send(fmt.Sprintf("Could not read the roster: %v", err))
		}
		return c.Send(StatusMessage(day, st, venue))
	})

	b.Handle("/start", func(c telebot.Context) error {
		if !authorized(c) {
			return nil
		}
		return c.Send("Ready. Commands:\n/enroll Today|Tomorrow HH:MM [venue]\n/withdraw Today|Tomorrow HH:MM [venue]\n/status [Tomorrow]")
	})
}

// ParseTransitionArgs builds a TransitionRequest from chat command
// arguments: day, time, optional venue. Malformed input is rejected here,
// before anything touches the site.
func ParseTransitionArgs(action schedule.Action, args []string) (schedule.TransitionRequest, error) {
	if len(args) < 2 {
		return schedule.TransitionRequest{}, fmt.Errorf("need a day and a time")
	}
	req := schedule.TransitionRequest{
		Time:   strings.TrimSpace(args[1]),
		Action: action,
	}
	switch strings.ToLower(args[0]) {
	case "today", "vandaag":
		req.Day = schedule.DayToday
	case "tomorrow", "morgen":
		req.Day = schedule.DayTomorrow
	default:
		return schedule.TransitionRequest{}, fmt.Errorf("unknown day %q", args[0])
	}
	if len(args) > 2 {
		venue, err := schedule.ParseVenue(strings.Join(args[2:], " "))
		if err != nil {
			return schedule.TransitionRequest{}, err
		}
		req.Venue = &venue
	}
	if err := req.Validate(); err != nil {
		return schedule.TransitionRequest{}, err
	}
	return req, nil
}

// OutcomeMessage renders the distinct human-readable message per outcome
// so the operator can tell "class not found" from "site layout changed"
// from "nothing to do".
func OutcomeMessage(req schedule.TransitionRequest, res schedule.TransitionResult) string {
	target := fmt.Sprintf("the %s class (%s)", req.Time, strings.ToLower(string(req.Day)))
	switch res.Outcome {
	case schedule.OutcomeEnrolled:
		return fmt.Sprintf("✅ Enrolled in %s.", target)
	case schedule.OutcomeWaitlisted:
		return fmt.Sprintf("⏳ The class is full; you joined the waitlist for %s.", target)
	case schedule.OutcomeAlreadyInState:
		if req.Action == schedule.ActionWithdraw {
			return fmt.Sprintf("🗑️ Withdrawn from %s.", target)
		}
		return fmt.Sprintf("ℹ️ You were already enrolled in %s.", target)
	case schedule.OutcomeNotFound:
		return fmt.Sprintf("❌ Could not find %s on the roster.", target)
	case schedule.OutcomeActionUnavailable:
		if req.Action == schedule.ActionWithdraw {
			return fmt.Sprintf("⚠️ No withdraw control for %s — were you enrolled at all?", target)
		}
		return fmt.Sprintf("⚠️ Could not enroll in %s — class and waitlist both closed.", target)
	default:
		return fmt.Sprintf("❌ Action on %s failed: %s", target, res.Reason)
	}
}

// StatusMessage renders an enrollment status reply.
func StatusMessage(day schedule.DaySel, st schedule.EnrollmentStatus, venue schedule.Venue) string {
	label := strings.ToLower(string(day))
	switch {
	case st.Waitlisted:
		msg := fmt.Sprintf("⏳ Waitlisted %s at %s (%s)", label, st.Time, venue)
		if st.WaitlistPosition != "" {
			msg += fmt.Sprintf(", position %s", st.WaitlistPosition)
			if st.WaitlistTotal != "" {
				msg += fmt.Sprintf(" of %s", st.WaitlistTotal)
			}
		}
		return msg + "."
	case st.Enrolled:
		msg := fmt.Sprintf("✅ Enrolled %s at %s (%s)", label, st.Time, venue)
		if st.Participants != "" {
			msg += fmt.Sprintf(", %s signed up", st.Participants)
		}
		return msg + "."
	default:
		return fmt.Sprintf("ℹ️ No enrollment for %s.", label)
	}
}
