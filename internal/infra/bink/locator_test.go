package bink

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"gym_schedule_bot/internal/domain/browser/browsertest"
	"gym_schedule_bot/internal/domain/schedule"
)

func TestFindEntry_StructuralIDFirst(t *testing.T) {
	f := browsertest.New()
	want := entryNode("[data-gymbot-id='e1']", "modal-tuesday-WOD-18:30", "open", "18:30\nWOD")
	f.SetNodes("li[data-remodal-target*='tuesday-WOD-18:30']", want)
	// A decoy in the day column; the structural hit must win.
	f.SetNodes("li[data-remodal-target*='tuesday']",
		entryNode("[data-gymbot-id='e2']", "modal-tuesday-Open Gym-18:30", "open", "18:30\nOpen Gym"))
	c := newTestClient(f)

	got, err := c.findEntry(context.Background(), entryQuery{day: tuesday, time: "18:30", kind: "WOD"})
	require.NoError(t, err)
	assert.Equal(t, want.Sel, got.Sel)
}

func TestFindEntry_FallsBackToDayColumn(t *testing.T) {
	f := browsertest.New()
	want := entryNode("[data-gymbot-id='e1']", "modal-tuesday-WOD-18:30", "open", "18:30\nWOD")
	other := entryNode("[data-gymbot-id='e2']", "modal-tuesday-WOD-09:00", "open", "09:00\nWOD")
	f.SetNodes("li[data-remodal-target*='tuesday']", other, want)
	c := newTestClient(f)

	// No kind, so the composite-id strategy has nothing to match on and the
	// day-column strategy must narrow by time.
	got, err := c.findEntry(context.Background(), entryQuery{day: tuesday, time: "18:30"})
	require.NoError(t, err)
	assert.Equal(t, want.Sel, got.Sel)
}

func TestFindEntry_PageTextLastResort(t *testing.T) {
	f := browsertest.New()
	// A redesign dropped the modal ids; only the rendered text remains, in
	// Dutch.
	want := entryNode("[data-gymbot-id='e1']", "", "", "Dinsdag\n18:30 WOD")
	f.SetNodes("li", want)
	c := newTestClient(f)

	got, err := c.findEntry(context.Background(), entryQuery{day: tuesday, time: "18:30", kind: "WOD"})
	require.NoError(t, err)
	assert.Equal(t, want.Sel, got.Sel)
}

func TestFindEntry_ExhaustedListsStrategies(t *testing.T) {
	f := browsertest.New()
	c := newTestClient(f)

	_, err := c.findEntry(context.Background(), entryQuery{day: tuesday, time: "18:30", kind: "WOD"})
	require.Error(t, err)
	assert.ErrorIs(t, err, schedule.ErrLocatorExhausted)
	assert.Contains(t, err.Error(), "structural-id")
	assert.Contains(t, err.Error(), "day-column")
	assert.Contains(t, err.Error(), "page-text")
}

func TestFindControl_ReportsDisabledSeparately(t *testing.T) {
	f := browsertest.New()
	f.SetNodes(selModal+" button", disabledButton("[data-gymbot-id='b1']", "Inschrijven"))
	c := newTestClient(f)

	_, present, enabled, err := c.findControl(context.Background(), enrollLabels)
	require.NoError(t, err)
	assert.True(t, present)
	assert.False(t, enabled)
}

func TestFindControl_PrefersEnabledCandidate(t *testing.T) {
	f := browsertest.New()
	f.SetNodes(selModal+" button",
		disabledButton("[data-gymbot-id='b1']", "Inschrijven"),
		button("[data-gymbot-id='b2']", "Inschrijven"),
	)
	c := newTestClient(f)

	node, present, enabled, err := c.findControl(context.Background(), withdrawLabels)
	require.NoError(t, err)
	assert.False(t, present, "withdraw label must not match the enroll button")

	node, present, enabled, err = c.findControl(context.Background(), enrollLabels)
	require.NoError(t, err)
	require.True(t, present)
	assert.True(t, enabled)
	assert.Equal(t, "[data-gymbot-id='b2']", node.Sel)
}

func TestFindControl_MatchesSubmitInputValue(t *testing.T) {
	f := browsertest.New()
	f.SetNodes(selModal+" input[type='submit']", submitInput("[data-gymbot-id='b1']", "Uitschrijven"))
	c := newTestClient(f)

	node, present, enabled, err := c.findControl(context.Background(), withdrawLabels)
	require.NoError(t, err)
	assert.True(t, present)
	assert.True(t, enabled)
	assert.Equal(t, "[data-gymbot-id='b1']", node.Sel)
}
