package bink

import (
	"context"

	"gym_schedule_bot/internal/domain/browser"
	"gym_schedule_bot/internal/domain/schedule"
)

// ExtractStatus reads the target day's column and reports the account's
// enrollment. Two passes, stop on first match: the waitlist marker is
// checked before the generic signed-up marker because an account can be
// in at most one state per day-session and the waitlist marker is the
// more specific of the two. No matching entry at all is the default
// status, never an error.
func (c *Client) ExtractStatus(ctx context.Context, day schedule.DayTarget) (schedule.EnrollmentStatus, error) {
	entries, err := c.entriesForDay(ctx, day)
	if err != nil {
		return schedule.EnrollmentStatus{}, err
	}

	if node, ok := firstWithState(entries, schedule.EntryStateWaitlisted); ok {
		return c.readStatusFromPopup(ctx, day, node, schedule.EntryStateWaitlisted), nil
	}
	if node, ok := firstWithState(entries, schedule.EntryStateSignedUp); ok {
		return c.readStatusFromPopup(ctx, day, node, schedule.EntryStateSignedUp), nil
	}
	return schedule.EnrollmentStatus{}, nil
}

func firstWithState(entries []browser.Node, state schedule.EntryState) (browser.Node, bool) {
	for _, n := range entries {
		if schedule.ParseEntryState(n.Attr("class")) == state {
			return n, true
		}
	}
	return browser.Node{}, false
}

// readStatusFromPopup opens the entry's detail popup and extracts the
// structured fields by label. The popup is always dismissed before
// returning, even when the read only partially succeeds; a half-read
// status with the marker-derived facts beats a leaked open dialog.
func (c *Client) readStatusFromPopup(ctx context.Context, day schedule.DayTarget, entry browser.Node, state schedule.EntryState) schedule.EnrollmentStatus {
	timeText := c.entryTime(ctx, entry)

	locate := func(ctx context.Context) (browser.Node, error) {
		entries, err := c.entriesForDay(ctx, day)
		if err != nil {
			return browser.Node{}, err
		}
		if n, ok := firstWithState(entries, state); ok {
			return n, nil
		}
		return browser.Node{}, schedule.ErrLocatorExhausted
	}

	if _, err := c.openEntryPopup(ctx, locate); err != nil {
		c.log.WithError(err).Warn("could not open detail popup, returning marker-derived status")
		if state == schedule.EntryStateWaitlisted {
			return schedule.WaitlistedStatus(timeText, "", "", "")
		}
		return schedule.EnrolledStatus(timeText, "")
	}
	defer c.closePopup(ctx)

	rows, err := c.page.Query(ctx, selModalRows)
	if err != nil {
		c.log.WithError(err).Warn("could not read popup rows")
		rows = nil
	}

	participants := keyedValue(rows, participantLabels...)
	if state == schedule.EntryStateWaitlisted {
		position := keyedValue(rows, positionLabels...)
		total := keyedValue(rows, totalLabels...)
		return schedule.WaitlistedStatus(timeText, participants, position, total)
	}
	return schedule.EnrolledStatus(timeText, participants)
}
