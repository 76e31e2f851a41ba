package app

import (
	"context"

	"gym_schedule_bot/internal/domain/report"
	"gym_schedule_bot/internal/domain/schedule"
)

// SiteClient is the roster automation surface the services orchestrate.
// Implemented by the bink client; faked in tests.
type SiteClient interface {
	Login(ctx context.Context) error
	NavigateTo(ctx context.Context, day schedule.DayTarget, venue schedule.Venue) error
	ExtractStatus(ctx context.Context, day schedule.DayTarget) (schedule.EnrollmentStatus, error)
	ProbeStatus(ctx context.Context, day schedule.DayTarget) (schedule.EnrollmentStatus, schedule.Venue, error)
	ExtractWorkout(ctx context.Context, day schedule.DayTarget) (string, error)
	Transition(ctx context.Context, day schedule.DayTarget, timeFilter string, action schedule.Action) schedule.TransitionResult
	TransitionSession(ctx context.Context, day schedule.DayTarget, kind, timeFilter string, action schedule.Action) schedule.TransitionResult
	ProbeTransition(ctx context.Context, day schedule.DayTarget, timeFilter string, venue *schedule.Venue, action schedule.Action) (schedule.TransitionResult, schedule.Venue)
	FullRoster(ctx context.Context, day schedule.DayTarget) ([]schedule.CalendarEntry, error)
}

// Advisor produces advisory text; implementations never fail, they fall
// back to static text instead.
type Advisor interface {
	DailyAdvice(ctx context.Context, workout string) string
	Recap(ctx context.Context, workout string, m report.Metrics) string
}

// Notifier delivers a message to the operator. Delivery problems are the
// implementation's to log; callers never see them.
type Notifier interface {
	Notify(text string)
}
