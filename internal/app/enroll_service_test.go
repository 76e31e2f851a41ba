package app

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"gym_schedule_bot/internal/domain/schedule"
)

// inWindow is a Tuesday afternoon inside the default booking window.
var inWindow = time.Date(2025, 6, 3, 17, 0, 0, 0, time.Local)

func newEnrollFixture(t *testing.T, site *fakeSite, windowStart, windowEnd string) (*EnrollService, *memNotifier) {
	t.Helper()
	w, err := ParseWindow(windowStart, windowEnd)
	require.NoError(t, err)
	n := &memNotifier{}
	svc := NewEnrollService(site, n, w, testLogger())
	svc.now = func() time.Time { return inWindow }
	return svc, n
}

func validRequest(action schedule.Action) schedule.TransitionRequest {
	return schedule.TransitionRequest{Day: schedule.DayTomorrow, Time: "18:30", Action: action}
}

func TestEnrollService_RejectsInvalidRequestBeforeSideEffects(t *testing.T) {
	site := &fakeSite{}
	svc, n := newEnrollFixture(t, site, "", "")

	res, err := svc.Execute(context.Background(), schedule.TransitionRequest{Day: "Yesterday", Time: "18:30", Action: schedule.ActionEnroll})
	assert.Error(t, err)
	assert.Equal(t, schedule.OutcomeFailed, res.Outcome)
	assert.Zero(t, site.logins, "validation failures must not touch the site")
	assert.Empty(t, site.probeCalls)
	assert.Empty(t, n.msgs)
}

func TestEnrollService_WindowGate(t *testing.T) {
	site := &fakeSite{}
	svc, n := newEnrollFixture(t, site, "16:00", "19:00")
	svc.now = func() time.Time { return time.Date(2025, 6, 3, 12, 0, 0, 0, time.Local) }

	res, err := svc.Execute(context.Background(), validRequest(schedule.ActionEnroll))
	assert.Error(t, err)
	assert.Equal(t, schedule.OutcomeFailed, res.Outcome)
	assert.Zero(t, site.logins)
	require.Len(t, n.msgs, 1)
	assert.Contains(t, n.msgs[0], "booking window")
}

func TestEnrollService_LoginFailure(t *testing.T) {
	site := &fakeSite{loginErr: schedule.ErrAuthFailed}
	svc, n := newEnrollFixture(t, site, "", "")

	_, err := svc.Execute(context.Background(), validRequest(schedule.ActionEnroll))
	assert.Error(t, err)
	assert.Empty(t, site.probeCalls)
	require.Len(t, n.msgs, 1)
	assert.Contains(t, n.msgs[0], "log in")
}

func TestEnrollService_EnrollSuccess(t *testing.T) {
	site := &fakeSite{
		probeRes:   schedule.Enrolled(),
		probeVenue: schedule.VenueZaal1,
		status:     map[string]schedule.EnrollmentStatus{"wednesday": schedule.EnrolledStatus("18:30", "7/14")},
	}
	svc, n := newEnrollFixture(t, site, "16:00", "19:00")

	res, err := svc.Execute(context.Background(), validRequest(schedule.ActionEnroll))
	require.NoError(t, err)
	assert.Equal(t, schedule.OutcomeEnrolled, res.Outcome)

	// Tomorrow from a Tuesday is Wednesday, same week.
	require.Len(t, site.probeCalls, 1)
	assert.Equal(t, schedule.DayTarget{Day: "wednesday"}, site.probeCalls[0].day)
	assert.Equal(t, "18:30", site.probeCalls[0].time)

	require.Len(t, n.msgs, 1)
	assert.Contains(t, n.msgs[0], "Enrolled")
}

func TestEnrollService_WaitlistedIsSuccess(t *testing.T) {
	site := &fakeSite{probeRes: schedule.Waitlisted()}
	svc, n := newEnrollFixture(t, site, "", "")

	res, err := svc.Execute(context.Background(), validRequest(schedule.ActionEnroll))
	require.NoError(t, err)
	assert.Equal(t, schedule.OutcomeWaitlisted, res.Outcome)
	require.Len(t, n.msgs, 1)
	assert.Contains(t, n.msgs[0], "waitlist")
}

func TestEnrollService_NotFoundExitsNonZero(t *testing.T) {
	site := &fakeSite{probeRes: schedule.NotFound()}
	svc, _ := newEnrollFixture(t, site, "", "")

	res, err := svc.Execute(context.Background(), validRequest(schedule.ActionEnroll))
	assert.Error(t, err)
	assert.Equal(t, schedule.OutcomeNotFound, res.Outcome)
}

func TestEnrollService_AlreadyEnrolledIsClean(t *testing.T) {
	site := &fakeSite{probeRes: schedule.AlreadyInState()}
	svc, _ := newEnrollFixture(t, site, "", "")

	_, err := svc.Execute(context.Background(), validRequest(schedule.ActionEnroll))
	assert.NoError(t, err, "an idempotent re-run is not a failure")
}

func TestEnrollService_WithdrawReportsWithdrawn(t *testing.T) {
	site := &fakeSite{probeRes: func() schedule.TransitionResult {
		r := schedule.AlreadyInState()
		r.Reason = "withdrawn"
		return r
	}()}
	svc, n := newEnrollFixture(t, site, "16:00", "19:00")

	res, err := svc.Execute(context.Background(), validRequest(schedule.ActionWithdraw))
	require.NoError(t, err)
	assert.Equal(t, schedule.OutcomeAlreadyInState, res.Outcome)
	require.Len(t, n.msgs, 1)
	assert.Contains(t, n.msgs[0], "Withdrawn")
}
