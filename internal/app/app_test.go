package app

import (
	"context"
	"io"

	"github.com/sirupsen/logrus"

	"gym_schedule_bot/internal/domain/report"
	"gym_schedule_bot/internal/domain/schedule"
)

func testLogger() *logrus.Entry {
	l := logrus.New()
	l.SetOutput(io.Discard)
	return logrus.NewEntry(l)
}

type transitionCall struct {
	day        schedule.DayTarget
	kind, time string
	action     schedule.Action
}

// fakeSite is a scriptable SiteClient recording every interaction.
type fakeSite struct {
	loginErr error
	logins   int

	navigated []string
	navErr    map[string]error // keyed "day|venue"

	workout    string
	workoutErr error

	status           map[string]schedule.EnrollmentStatus // keyed by day token
	statusErr        error
	probeStatusVenue schedule.Venue

	probeRes   schedule.TransitionResult
	probeVenue schedule.Venue
	probeCalls []transitionCall

	sessionRes   []schedule.TransitionResult
	sessionCalls []transitionCall

	roster    []schedule.CalendarEntry
	rosterErr error
}

func (f *fakeSite) Login(context.Context) error {
	f.logins++
	return f.loginErr
}

func (f *fakeSite) NavigateTo(_ context.Context, day schedule.DayTarget, venue schedule.Venue) error {
	key := day.Day + "|" + string(venue)
	f.navigated = append(f.navigated, key)
	return f.navErr[key]
}

func (f *fakeSite) ExtractStatus(_ context.Context, day schedule.DayTarget) (schedule.EnrollmentStatus, error) {
	return f.status[day.Day], f.statusErr
}

func (f *fakeSite) ProbeStatus(_ context.Context, day schedule.DayTarget) (schedule.EnrollmentStatus, schedule.Venue, error) {
	if f.statusErr != nil {
		return schedule.EnrollmentStatus{}, "", f.statusErr
	}
	st := f.status[day.Day]
	if st.IsZero() {
		return st, "", nil
	}
	return st, f.probeStatusVenue, nil
}

func (f *fakeSite) ExtractWorkout(context.Context, schedule.DayTarget) (string, error) {
	return f.workout, f.workoutErr
}

func (f *fakeSite) Transition(_ context.Context, day schedule.DayTarget, timeFilter string, action schedule.Action) schedule.TransitionResult {
	f.probeCalls = append(f.probeCalls, transitionCall{day: day, time: timeFilter, action: action})
	return f.probeRes
}

func (f *fakeSite) TransitionSession(_ context.Context, day schedule.DayTarget, kind, timeFilter string, action schedule.Action) schedule.TransitionResult {
	f.sessionCalls = append(f.sessionCalls, transitionCall{day: day, kind: kind, time: timeFilter, action: action})
	if i := len(f.sessionCalls) - 1; i < len(f.sessionRes) {
		return f.sessionRes[i]
	}
	return schedule.Enrolled()
}

func (f *fakeSite) ProbeTransition(_ context.Context, day schedule.DayTarget, timeFilter string, _ *schedule.Venue, action schedule.Action) (schedule.TransitionResult, schedule.Venue) {
	f.probeCalls = append(f.probeCalls, transitionCall{day: day, time: timeFilter, action: action})
	return f.probeRes, f.probeVenue
}

func (f *fakeSite) FullRoster(context.Context, schedule.DayTarget) ([]schedule.CalendarEntry, error) {
	return f.roster, f.rosterErr
}

type memDocs struct {
	doc     report.Document
	saves   int
	loadErr error
	saveErr error
}

func (m *memDocs) Load() (report.Document, error) { return m.doc, m.loadErr }

func (m *memDocs) Save(doc report.Document) error {
	if m.saveErr != nil {
		return m.saveErr
	}
	m.doc = doc
	m.saves++
	return nil
}

type memHistory struct {
	rows []report.Document
	err  error
}

func (m *memHistory) Append(doc report.Document) error {
	if m.err != nil {
		return m.err
	}
	m.rows = append(m.rows, doc)
	return nil
}

type memRuns struct {
	recs []*report.RunRecord
	err  error
}

func (m *memRuns) Create(_ context.Context, rec *report.RunRecord) error {
	if m.err != nil {
		return m.err
	}
	m.recs = append(m.recs, rec)
	return nil
}

type memNotifier struct {
	msgs []string
}

func (m *memNotifier) Notify(text string) { m.msgs = append(m.msgs, text) }

type stubAdvisor struct {
	advice   string
	recap    string
	workouts []string
}

func (a *stubAdvisor) DailyAdvice(_ context.Context, workout string) string {
	a.workouts = append(a.workouts, workout)
	return a.advice
}

func (a *stubAdvisor) Recap(_ context.Context, workout string, _ report.Metrics) string {
	a.workouts = append(a.workouts, workout)
	return a.recap
}
