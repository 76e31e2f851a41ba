package bink

import (
	"context"
	"errors"

	"gym_schedule_bot/internal/domain/browser"
	"gym_schedule_bot/internal/domain/schedule"
)

// Transition runs the enrollment state machine for the entry matching
// (day, timeFilter) on the currently displayed roster:
//
//	Unresolved -> EntryLocated -> PopupOpen -> outcome -> Closed
//
// Every path ends Closed: the popup is dismissed (or the page reloaded)
// before control returns, so a later probe never meets a stale dialog.
func (c *Client) Transition(ctx context.Context, day schedule.DayTarget, timeFilter string, action schedule.Action) schedule.TransitionResult {
	return c.transition(ctx, entryQuery{day: day, time: timeFilter}, action)
}

// TransitionSession additionally narrows the entry by session kind; used
// for recurring sessions identified as (day, kind, time).
func (c *Client) TransitionSession(ctx context.Context, day schedule.DayTarget, kind, timeFilter string, action schedule.Action) schedule.TransitionResult {
	return c.transition(ctx, entryQuery{day: day, time: timeFilter, kind: kind}, action)
}

func (c *Client) transition(ctx context.Context, q entryQuery, action schedule.Action) schedule.TransitionResult {
	locate := func(ctx context.Context) (browser.Node, error) {
		return c.findEntry(ctx, q)
	}

	if _, err := locate(ctx); err != nil {
		if errors.Is(err, schedule.ErrLocatorExhausted) {
			return schedule.NotFound()
		}
		return schedule.Failed("locating entry: %v", err)
	}

	if _, err := c.openEntryPopup(ctx, locate); err != nil {
		return schedule.Failed("opening detail popup: %v", err)
	}
	defer c.closePopup(ctx)

	switch action {
	case schedule.ActionEnroll:
		return c.probeEnroll(ctx)
	case schedule.ActionWithdraw:
		return c.probeWithdraw(ctx)
	default:
		return schedule.Failed("unsupported action %q", action)
	}
}

// probeEnroll applies the ordered probe precedence: enroll control, then
// waitlist control, then withdraw control as proof of an existing
// enrollment. The popup shows at most one actionable control at a time;
// absence of the primary control must not be reported as "unavailable"
// while a secondary one is actionable.
func (c *Client) probeEnroll(ctx context.Context) schedule.TransitionResult {
	node, present, enabled, err := c.findControl(ctx, enrollLabels)
	if err != nil {
		return schedule.Failed("probing enroll control: %v", err)
	}
	if present && enabled {
		if err := c.invoke(ctx, node); err != nil {
			return schedule.Failed("enroll click: %v", err)
		}
		c.log.Info("enrolled")
		return schedule.Enrolled()
	}

	node, present, enabled, err = c.findControl(ctx, waitlistLabels)
	if err != nil {
		return schedule.Failed("probing waitlist control: %v", err)
	}
	if present && enabled {
		if err := c.invoke(ctx, node); err != nil {
			return schedule.Failed("waitlist click: %v", err)
		}
		c.log.Info("joined waitlist")
		return schedule.Waitlisted()
	}

	_, present, _, err = c.findControl(ctx, withdrawLabels)
	if err != nil {
		return schedule.Failed("probing withdraw control: %v", err)
	}
	if present {
		c.log.Info("withdraw control present, already enrolled")
		return schedule.AlreadyInState()
	}
	return schedule.ActionUnavailable()
}

func (c *Client) probeWithdraw(ctx context.Context) schedule.TransitionResult {
	node, present, enabled, err := c.findControl(ctx, withdrawLabels)
	if err != nil {
		return schedule.Failed("probing withdraw control: %v", err)
	}
	if !present || !enabled {
		return schedule.ActionUnavailable()
	}
	if err := c.invoke(ctx, node); err != nil {
		return schedule.Failed("withdraw click: %v", err)
	}
	c.log.Info("withdrawn")
	res := schedule.AlreadyInState()
	res.Reason = "withdrawn"
	return res
}

func (c *Client) invoke(ctx context.Context, node browser.Node) error {
	if err := c.page.Click(ctx, node.Sel); err != nil {
		return err
	}
	c.pause(ctx)
	return nil
}
