package bink

import (
	"context"
	"fmt"

	"gym_schedule_bot/internal/domain/schedule"
)

// NavigateTo brings the page to the roster view for the given day's week
// and venue, and waits for the roster to settle before returning control.
// An empty roster column is a valid state (nothing scheduled), so a
// missing entry list is not an error here.
func (c *Client) NavigateTo(ctx context.Context, day schedule.DayTarget, venue schedule.Venue) error {
	url := venue.RosterURL(c.baseURL, day.NextWeek)
	c.log.WithField("venue", string(venue)).WithField("day", day.Day).
		WithField("next_week", day.NextWeek).Info("navigating to roster")

	if err := c.page.Navigate(ctx, url); err != nil {
		return fmt.Errorf("roster navigation: %w", err)
	}
	if err := c.page.WaitVisible(ctx, selEntry, c.waitFor); err != nil {
		c.log.WithError(err).Debug("no roster entries visible after navigation")
	}
	c.pause(ctx)
	return nil
}
