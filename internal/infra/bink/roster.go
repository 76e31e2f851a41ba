package bink

import (
	"context"
	"strings"

	"gym_schedule_bot/internal/domain/browser"
	"gym_schedule_bot/internal/domain/schedule"
)

// ProbeTransition runs the transition against a fixed venue, or probes
// the venues in order until one contains a matching entry. First match
// wins: a venue without the entry is a miss, not an error, and probing
// moves on. Returns the venue that produced the result.
func (c *Client) ProbeTransition(ctx context.Context, day schedule.DayTarget, timeFilter string, venue *schedule.Venue, action schedule.Action) (schedule.TransitionResult, schedule.Venue) {
	venues := schedule.ProbeOrder()
	if venue != nil {
		venues = []schedule.Venue{*venue}
	}
	for _, v := range venues {
		if err := c.NavigateTo(ctx, day, v); err != nil {
			c.log.WithError(err).WithField("venue", string(v)).Warn("venue navigation failed")
			continue
		}
		res := c.Transition(ctx, day, timeFilter, action)
		if res.Outcome != schedule.OutcomeNotFound {
			return res, v
		}
	}
	return schedule.NotFound(), ""
}

// ProbeStatus checks the venues in order and returns the first non-empty
// enrollment status. An account holds at most one enrollment per day, so
// the first hit is the answer.
func (c *Client) ProbeStatus(ctx context.Context, day schedule.DayTarget) (schedule.EnrollmentStatus, schedule.Venue, error) {
	for _, v := range schedule.ProbeOrder() {
		if err := c.NavigateTo(ctx, day, v); err != nil {
			return schedule.EnrollmentStatus{}, "", err
		}
		st, err := c.ExtractStatus(ctx, day)
		if err != nil {
			return schedule.EnrollmentStatus{}, "", err
		}
		if !st.IsZero() {
			return st, v, nil
		}
	}
	return schedule.EnrollmentStatus{}, "", nil
}

// FullRoster enumerates every entry for the day across all venues and
// returns the merged list. The accumulator is threaded through the loop
// and handed back as one immutable slice; venues that fail to load are
// skipped, not fatal.
func (c *Client) FullRoster(ctx context.Context, day schedule.DayTarget) ([]schedule.CalendarEntry, error) {
	var merged []schedule.CalendarEntry
	for _, v := range schedule.ProbeOrder() {
		if err := c.NavigateTo(ctx, day, v); err != nil {
			c.log.WithError(err).WithField("venue", string(v)).Warn("skipping venue in roster enumeration")
			continue
		}
		nodes, err := c.entriesForDay(ctx, day)
		if err != nil {
			return nil, err
		}
		for _, n := range nodes {
			merged = append(merged, c.calendarEntry(ctx, n, v))
		}
	}
	return merged, nil
}

func (c *Client) calendarEntry(ctx context.Context, n browser.Node, venue schedule.Venue) schedule.CalendarEntry {
	entry := schedule.CalendarEntry{
		Time:  c.entryTime(ctx, n),
		Name:  entryName(n),
		Venue: venue,
		State: schedule.ParseEntryState(n.Attr("class")),
	}
	if counts, err := c.page.Query(ctx, n.Sel+" "+selEntryCount); err == nil && len(counts) > 0 {
		entry.Participants = strings.TrimSpace(counts[0].Text)
	}
	return entry
}

// entryName extracts the session name from the composite modal id
// ("modal-tuesday-Oly Lifting-18:30" -> "Oly Lifting"), falling back to
// the entry's first text line.
func entryName(n browser.Node) string {
	target := n.Attr("data-remodal-target")
	if target != "" {
		parts := strings.Split(target, "-")
		// modal, day, name..., time
		if len(parts) >= 4 {
			return strings.Join(parts[2:len(parts)-1], "-")
		}
	}
	line, _, _ := strings.Cut(strings.TrimSpace(n.Text), "\n")
	return strings.TrimSpace(line)
}
