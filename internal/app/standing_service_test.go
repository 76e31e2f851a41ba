package app

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"gym_schedule_bot/internal/domain/schedule"
	"gym_schedule_bot/internal/infra/config"
)

func standingEntries() []config.StandingEntry {
	return []config.StandingEntry{
		{Day: "tuesday", Kind: "Oly Lifting", Time: "18:30", Venue: schedule.VenueZaal2},
		{Day: "thursday", Kind: "WOD", Time: "19:30", Venue: schedule.VenueZaal1},
	}
}

func TestStandingService_NoEntriesNoLogin(t *testing.T) {
	site := &fakeSite{}
	n := &memNotifier{}
	svc := NewStandingEnrollService(site, n, nil, testLogger())

	require.NoError(t, svc.Run(context.Background()))
	assert.Zero(t, site.logins)
	assert.Empty(t, n.msgs)
}

func TestStandingService_LoginFailure(t *testing.T) {
	site := &fakeSite{loginErr: schedule.ErrAuthFailed}
	n := &memNotifier{}
	svc := NewStandingEnrollService(site, n, standingEntries(), testLogger())

	assert.Error(t, svc.Run(context.Background()))
	assert.Empty(t, site.sessionCalls)
	require.Len(t, n.msgs, 1)
	assert.Contains(t, n.msgs[0], "log in")
}

func TestStandingService_EnrollsNextWeek(t *testing.T) {
	site := &fakeSite{sessionRes: []schedule.TransitionResult{
		schedule.Enrolled(),
		schedule.Waitlisted(),
	}}
	n := &memNotifier{}
	svc := NewStandingEnrollService(site, n, standingEntries(), testLogger())

	require.NoError(t, svc.Run(context.Background()))

	require.Len(t, site.sessionCalls, 2)
	assert.Equal(t, schedule.DayTarget{Day: "tuesday", NextWeek: true}, site.sessionCalls[0].day)
	assert.Equal(t, "Oly Lifting", site.sessionCalls[0].kind)
	assert.Equal(t, schedule.ActionEnroll, site.sessionCalls[0].action)
	assert.Equal(t, []string{"tuesday|Zaal 2", "thursday|Zaal 1"}, site.navigated)

	require.Len(t, n.msgs, 1)
	assert.Contains(t, n.msgs[0], "enrolled")
	assert.Contains(t, n.msgs[0], "waitlisted")
}

func TestStandingService_OneFailureDoesNotBlockTheRest(t *testing.T) {
	site := &fakeSite{
		navErr:     map[string]error{"tuesday|Zaal 2": schedule.ErrTransientUI},
		sessionRes: []schedule.TransitionResult{schedule.Enrolled()},
	}
	n := &memNotifier{}
	svc := NewStandingEnrollService(site, n, standingEntries(), testLogger())

	require.NoError(t, svc.Run(context.Background()))
	require.Len(t, site.sessionCalls, 1, "the second entry still runs")
	assert.Equal(t, "thursday", site.sessionCalls[0].day.Day)
	require.Len(t, n.msgs, 1)
	assert.Contains(t, n.msgs[0], "navigation failed")
}
