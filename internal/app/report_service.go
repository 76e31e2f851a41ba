package app

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/sirupsen/logrus"

	"gym_schedule_bot/internal/domain/report"
	"gym_schedule_bot/internal/domain/schedule"
)

// ReportService runs the daily flow: log in, read the published workout
// and today's plus tomorrow's enrollment, generate the advisory, persist
// everything and notify the operator. Status reads and sinks degrade
// individually; only login and document persistence are fatal.
type ReportService struct {
	site          SiteClient
	advisor       Advisor
	docs          report.DocumentStore
	history       report.HistoryAppender
	runs          report.RunRepository // nil disables the relational log
	notifier      Notifier
	includeRoster bool
	log           *logrus.Entry
	now           func() time.Time
}

func NewReportService(
	site SiteClient,
	advisor Advisor,
	docs report.DocumentStore,
	history report.HistoryAppender,
	runs report.RunRepository,
	notifier Notifier,
	includeRoster bool,
	log *logrus.Entry,
) *ReportService {
	return &ReportService{
		site:          site,
		advisor:       advisor,
		docs:          docs,
		history:       history,
		runs:          runs,
		notifier:      notifier,
		includeRoster: includeRoster,
		log:           log.WithField("service", "report"),
		now:           time.Now,
	}
}

func (s *ReportService) Run(ctx context.Context) error {
	now := s.now()
	today := schedule.ResolveDay(now, 0)
	tomorrow := schedule.ResolveDay(now, 1)
	s.log.WithField("day", today.Day).Info("starting daily report run")

	if err := s.site.Login(ctx); err != nil {
		s.notifier.Notify(fmt.Sprintf("🔐 Could not log in to the site: %v", err))
		return fmt.Errorf("login: %w", err)
	}

	// The workout is published on the main hall's roster.
	if err := s.site.NavigateTo(ctx, today, schedule.VenueZaal1); err != nil {
		return fmt.Errorf("roster navigation: %w", err)
	}
	workout, err := s.site.ExtractWorkout(ctx, today)
	if err != nil {
		return fmt.Errorf("workout extraction: %w", err)
	}

	statusToday, venueToday, err := s.site.ProbeStatus(ctx, today)
	if err != nil {
		s.log.WithError(err).Warn("could not read today's enrollment")
		statusToday = schedule.EnrollmentStatus{}
	}
	statusTomorrow, _, err := s.site.ProbeStatus(ctx, tomorrow)
	if err != nil {
		s.log.WithError(err).Warn("could not read tomorrow's enrollment")
		statusTomorrow = schedule.EnrollmentStatus{}
	}

	var roster []schedule.CalendarEntry
	if s.includeRoster {
		roster, err = s.site.FullRoster(ctx, today)
		if err != nil {
			s.log.WithError(err).Warn("roster enumeration failed")
		}
	}

	advice := s.advisor.DailyAdvice(ctx, workout)

	doc := report.Document{
		Date:     now.Format(report.DateLayout),
		Day:      today.DisplayName(),
		Workout:  workout,
		Advice:   advice,
		Today:    statusToday,
		Tomorrow: statusTomorrow,
		Roster:   roster,
	}
	if err := s.docs.Save(doc); err != nil {
		return fmt.Errorf("saving run document: %w", err)
	}
	if err := s.history.Append(doc); err != nil {
		return fmt.Errorf("appending history: %w", err)
	}
	if s.runs != nil {
		rec := &report.RunRecord{
			RunDate: now,
			Day:     today.Day,
			Workout: workout,
			Advice:  advice,
			Outcome: "report",
		}
		if err := s.runs.Create(ctx, rec); err != nil {
			s.log.WithError(err).Warn("relational run log insert failed")
		}
	}

	s.notifier.Notify(s.reportMessage(doc, venueToday))
	s.log.Info("daily report run completed")
	return nil
}

func (s *ReportService) reportMessage(doc report.Document, venueToday schedule.Venue) string {
	var b strings.Builder
	fmt.Fprintf(&b, "📋 %s %s\n\n", doc.Day, doc.Date)
	fmt.Fprintf(&b, "🏋️ Workout:\n%s\n\n", doc.Workout)
	fmt.Fprintf(&b, "🗣️ Coach:\n%s\n\n", doc.Advice)
	b.WriteString("Today: " + statusLine(doc.Today, venueToday) + "\n")
	b.WriteString("Tomorrow: " + statusLine(doc.Tomorrow, ""))
	return b.String()
}

func statusLine(st schedule.EnrollmentStatus, venue schedule.Venue) string {
	switch {
	case st.Waitlisted:
		line := fmt.Sprintf("waitlisted at %s", st.Time)
		if st.WaitlistPosition != "" {
			line += fmt.Sprintf(" (position %s", st.WaitlistPosition)
			if st.WaitlistTotal != "" {
				line += fmt.Sprintf(" of %s", st.WaitlistTotal)
			}
			line += ")"
		}
		if venue != "" {
			line += fmt.Sprintf(" in %s", venue)
		}
		return line
	case st.Enrolled:
		line := fmt.Sprintf("enrolled at %s", st.Time)
		if st.Participants != "" {
			line += fmt.Sprintf(" (%s)", st.Participants)
		}
		if venue != "" {
			line += fmt.Sprintf(" in %s", venue)
		}
		return line
	default:
		return "not enrolled"
	}
}
