package app

import (
	"context"
	"fmt"
	"time"

	"github.com/sirupsen/logrus"

	"gym_schedule_bot/internal/domain/schedule"
	"gym_schedule_bot/internal/infra/telegram"
)

// EnrollService executes one externally supplied enrollment command end
// to end: validation, booking-window gate, venue probing, the transition
// itself and the operator notification. The returned error is non-nil
// exactly when the run should exit non-zero.
type EnrollService struct {
	site     SiteClient
	notifier Notifier
	window   Window
	log      *logrus.Entry
	now      func() time.Time
}

func NewEnrollService(site SiteClient, notifier Notifier, window Window, log *logrus.Entry) *EnrollService {
	return &EnrollService{
		site:     site,
		notifier: notifier,
		window:   window,
		log:      log.WithField("service", "enroll"),
		now:      time.Now,
	}
}

func (s *EnrollService) Execute(ctx context.Context, req schedule.TransitionRequest) (schedule.TransitionResult, error) {
	if err := req.Validate(); err != nil {
		// Malformed requests are rejected before any side effect.
		return schedule.Failed("invalid request: %v", err), fmt.Errorf("invalid transition request: %w", err)
	}

	if s.window.Enabled() && !s.window.Contains(s.now()) {
		s.log.Info("enrollment window closed, rejecting request")
		s.notifier.Notify("⛔ The booking window is closed right now; the request was not executed.")
		return schedule.Failed("outside enrollment window"), fmt.Errorf("outside enrollment window")
	}

	if err := s.site.Login(ctx); err != nil {
		s.notifier.Notify(fmt.Sprintf("🔐 Could not log in to the site: %v", err))
		return schedule.Failed("login: %v", err), fmt.Errorf("login: %w", err)
	}

	day := schedule.ResolveDay(s.now(), req.Offset())
	res, venue := s.site.ProbeTransition(ctx, day, req.Time, req.Venue, req.Action)
	s.log.WithFields(logrus.Fields{
		"day":     day.Day,
		"time":    req.Time,
		"venue":   string(venue),
		"action":  string(req.Action),
		"outcome": string(res.Outcome),
	}).Info("transition finished")

	s.verify(ctx, day, res)
	s.notifier.Notify(telegram.OutcomeMessage(req, res))

	if !res.Success() {
		return res, fmt.Errorf("enrollment action ended in %s: %s", res.Outcome, res.Reason)
	}
	return res, nil
}

// verify re-reads the enrollment after a mutating outcome. Best effort:
// a verification miss is logged, not escalated, since the click already
// reported success and the roster may lag.
func (s *EnrollService) verify(ctx context.Context, day schedule.DayTarget, res schedule.TransitionResult) {
	if res.Outcome != schedule.OutcomeEnrolled && res.Outcome != schedule.OutcomeWaitlisted {
		return
	}
	st, err := s.site.ExtractStatus(ctx, day)
	if err != nil {
		s.log.WithError(err).Warn("post-transition verification failed")
		return
	}
	if st.IsZero() {
		s.log.Warn("post-transition verification found no enrollment marker")
		return
	}
	if res.Outcome == schedule.OutcomeWaitlisted && !st.Waitlisted {
		s.log.Warn("expected waitlist marker after joining the waitlist")
	}
}
