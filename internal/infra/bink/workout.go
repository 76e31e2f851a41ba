package bink

import (
	"context"
	"errors"
	"strings"

	"gym_schedule_bot/internal/domain/browser"
	"gym_schedule_bot/internal/domain/schedule"
)

// NoWorkout is the sentinel returned when no workout is published for the
// day. A rest day is an expected outcome, not a failure.
const NoWorkout = "no workout published"

// shareMarker starts the share/social boilerplate the site appends below
// the workout text; everything from the marker on is dropped.
const shareMarker = "Deel deze workout"

// workoutKind is the session label the published workout hangs off.
const workoutKind = "WOD"

// ExtractWorkout reads the day's published workout as plain text. The
// caller is expected to have navigated to the main hall's roster; the
// workout is published there.
func (c *Client) ExtractWorkout(ctx context.Context, day schedule.DayTarget) (string, error) {
	locate := func(ctx context.Context) (browser.Node, error) {
		return c.findEntry(ctx, entryQuery{day: day, kind: workoutKind})
	}

	if _, err := locate(ctx); err != nil {
		if errors.Is(err, schedule.ErrLocatorExhausted) {
			c.log.WithField("day", day.Day).Info("no workout entry on roster")
			return NoWorkout, nil
		}
		return "", err
	}

	if _, err := c.openEntryPopup(ctx, locate); err != nil {
		c.log.WithError(err).Warn("workout popup did not open")
		return NoWorkout, nil
	}
	defer c.closePopup(ctx)

	items, err := c.page.Query(ctx, selWodList)
	if err != nil {
		return "", err
	}
	var raw string
	if len(items) > 0 {
		lines := make([]string, 0, len(items))
		for _, it := range items {
			lines = append(lines, it.Text)
		}
		raw = strings.Join(lines, "\n")
	} else {
		raw, err = c.page.Text(ctx, selModalBody)
		if err != nil {
			c.log.WithError(err).Warn("workout popup has no readable content")
			return NoWorkout, nil
		}
	}

	text := normalizeWorkout(raw)
	if text == "" {
		return NoWorkout, nil
	}
	return text, nil
}

// normalizeWorkout truncates trailing share boilerplate, trims every line
// and drops empty ones.
func normalizeWorkout(raw string) string {
	if i := strings.Index(raw, shareMarker); i >= 0 {
		raw = raw[:i]
	}
	var lines []string
	for _, line := range strings.Split(raw, "\n") {
		line = strings.TrimSpace(line)
		if line != "" {
			lines = append(lines, line)
		}
	}
	return strings.Join(lines, "\n")
}
