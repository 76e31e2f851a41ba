package bink

import (
	"context"
	"fmt"

	"gym_schedule_bot/internal/domain/schedule"
)

// Login establishes the authenticated session for the rest of the run.
// Primary path is the login link on the landing page; when the link is
// absent (the header changes across redesigns) it falls back to the login
// page directly. Credential fields are matched by loose attribute
// patterns, not exact names.
func (c *Client) Login(ctx context.Context) error {
	if c.email == "" || c.password == "" {
		return schedule.ErrCredentialsMissing
	}
	c.log.Info("logging in")

	if err := c.page.Navigate(ctx, c.baseURL); err != nil {
		return fmt.Errorf("%w: entry page: %v", schedule.ErrAuthFailed, err)
	}
	if !c.clickLoginLink(ctx) {
		if err := c.page.Navigate(ctx, c.baseURL+"/login"); err != nil {
			return fmt.Errorf("%w: login page: %v", schedule.ErrAuthFailed, err)
		}
	}
	c.pause(ctx)

	if err := c.page.Fill(ctx, selLoginUser, c.email); err != nil {
		return fmt.Errorf("%w: user field: %v", schedule.ErrAuthFailed, err)
	}
	if err := c.page.Fill(ctx, selLoginPass, c.password); err != nil {
		return fmt.Errorf("%w: password field: %v", schedule.ErrAuthFailed, err)
	}

	submits, err := c.page.Query(ctx, selSubmit)
	if err != nil {
		return fmt.Errorf("%w: %v", schedule.ErrAuthFailed, err)
	}
	if len(submits) == 0 {
		return fmt.Errorf("%w: no submit control found", schedule.ErrAuthFailed)
	}
	if err := c.page.Click(ctx, submits[0].Sel); err != nil {
		return fmt.Errorf("%w: submit: %v", schedule.ErrAuthFailed, err)
	}
	c.pause(ctx)

	c.log.Info("login submitted")
	return nil
}

func (c *Client) clickLoginLink(ctx context.Context) bool {
	links, err := c.page.Query(ctx, "a")
	if err != nil {
		return false
	}
	for _, l := range links {
		if l.ContainsText("inloggen") || l.ContainsText("log in") || l.ContainsText("login") {
			if err := c.page.Click(ctx, l.Sel); err == nil {
				return true
			}
		}
	}
	return false
}
