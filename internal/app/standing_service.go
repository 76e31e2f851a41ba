package app

import (
	"context"
	"fmt"
	"strings"

	"github.com/sirupsen/logrus"

	"gym_schedule_bot/internal/domain/schedule"
	"gym_schedule_bot/internal/infra/config"
)

// StandingEnrollService signs the account up for a fixed weekly set of
// sessions as soon as next week's roster opens. Entries are independent:
// one failing session never blocks the rest of the round.
type StandingEnrollService struct {
	site     SiteClient
	notifier Notifier
	entries  []config.StandingEntry
	log      *logrus.Entry
}

func NewStandingEnrollService(site SiteClient, notifier Notifier, entries []config.StandingEntry, log *logrus.Entry) *StandingEnrollService {
	return &StandingEnrollService{
		site:     site,
		notifier: notifier,
		entries:  entries,
		log:      log.WithField("service", "standing"),
	}
}

func (s *StandingEnrollService) Run(ctx context.Context) error {
	if len(s.entries) == 0 {
		s.log.Info("no standing enrollments configured, skipping round")
		return nil
	}

	if err := s.site.Login(ctx); err != nil {
		s.notifier.Notify(fmt.Sprintf("🔐 Could not log in to the site: %v", err))
		return fmt.Errorf("login: %w", err)
	}

	lines := make([]string, 0, len(s.entries))
	for _, e := range s.entries {
		day := schedule.DayTarget{Day: e.Day, NextWeek: true}
		entryLog := s.log.WithFields(logrus.Fields{
			"day":   e.Day,
			"kind":  e.Kind,
			"time":  e.Time,
			"venue": string(e.Venue),
		})

		if err := s.site.NavigateTo(ctx, day, e.Venue); err != nil {
			entryLog.WithError(err).Warn("roster navigation failed")
			lines = append(lines, fmt.Sprintf("❌ %s %s %s: navigation failed", e.Day, e.Time, e.Kind))
			continue
		}

		res := s.site.TransitionSession(ctx, day, e.Kind, e.Time, schedule.ActionEnroll)
		entryLog.WithField("outcome", string(res.Outcome)).Info("standing enrollment attempted")
		lines = append(lines, standingLine(e, res))
	}

	s.notifier.Notify("📅 Standing enrollment round:\n" + strings.Join(lines, "\n"))
	return nil
}

func standingLine(e config.StandingEntry, res schedule.TransitionResult) string {
	prefix := fmt.Sprintf("%s %s %s", e.Day, e.Time, e.Kind)
	switch res.Outcome {
	case schedule.OutcomeEnrolled:
		return "✅ " + prefix + ": enrolled"
	case schedule.OutcomeWaitlisted:
		return "⏳ " + prefix + ": waitlisted"
	case schedule.OutcomeAlreadyInState:
		return "ℹ️ " + prefix + ": already enrolled"
	case schedule.OutcomeNotFound:
		return "🔍 " + prefix + ": session not found"
	case schedule.OutcomeActionUnavailable:
		return "🚫 " + prefix + ": not open for enrollment"
	default:
		return "❌ " + prefix + ": " + res.Reason
	}
}
