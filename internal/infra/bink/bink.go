// Package bink automates the Bink 36 roster site through the domain Page
// contract. The site is a black box with no stable markup contract, so
// every element lookup goes through the ordered-strategy locator in this
// package instead of hard-coding a single selector path in callers.
package bink

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/sirupsen/logrus"

	"gym_schedule_bot/internal/domain/browser"
	"gym_schedule_bot/internal/domain/schedule"
)

// Selectors observed on the roster. These are the single indirection
// point for site markup; a redesign means updating this package only.
const (
	selEntry      = "li[data-remodal-target]"
	selEntryTime  = ".event-date"
	selEntryCount = ".event-count"
	selModal      = ".remodal-is-opened"
	selModalClose = ".remodal-close"
	selModalRows  = ".remodal-is-opened li"
	selWodList    = ".remodal-is-opened .wod-list li"
	selModalBody  = ".remodal-is-opened .content"
	selLoginUser  = "input[name*='user'], input[name*='email']"
	selLoginPass  = "input[name*='pass']"
	selSubmit     = "button[type='submit'], input[type='submit']"
)

// Control labels are site text (Dutch) and matched case-insensitively.
var (
	enrollLabels   = []string{"inschrijven"}
	waitlistLabels = []string{"wachtlijst", "waitlist"}
	withdrawLabels = []string{"uitschrijven", "afmelden"}
)

// Popup label keys for keyed extraction. Matching is by label text, not
// row position; the popup's column order is not guaranteed.
var (
	participantLabels = []string{"deelnemers", "aanwezig", "participants"}
	positionLabels    = []string{"positie", "position"}
	totalLabels       = []string{"totaal", "total"}
)

type Options struct {
	BaseURL  string
	Email    string
	Password string

	// SettleInterval is the fixed pause after navigations, submits and
	// popup openings; the site re-renders asynchronously after each.
	SettleInterval time.Duration
	// WaitTimeout bounds each individual wait point. Short and local:
	// one slow step fails that step, not the whole run.
	WaitTimeout time.Duration

	Log *logrus.Entry
}

// Client drives one authenticated roster session on one page.
type Client struct {
	page     browser.Page
	baseURL  string
	email    string
	password string
	settle   time.Duration
	waitFor  time.Duration
	log      *logrus.Entry
}

func NewClient(page browser.Page, opts Options) *Client {
	if opts.SettleInterval == 0 {
		opts.SettleInterval = 3 * time.Second
	}
	if opts.WaitTimeout == 0 {
		opts.WaitTimeout = 10 * time.Second
	}
	if opts.Log == nil {
		opts.Log = logrus.NewEntry(logrus.New())
	}
	return &Client{
		page:     page,
		baseURL:  opts.BaseURL,
		email:    opts.Email,
		password: opts.Password,
		settle:   opts.SettleInterval,
		waitFor:  opts.WaitTimeout,
		log:      opts.Log.WithField("component", "bink"),
	}
}

func (c *Client) pause(ctx context.Context) {
	if c.settle <= 0 {
		return
	}
	t := time.NewTimer(c.settle)
	defer t.Stop()
	select {
	case <-ctx.Done():
	case <-t.C:
	}
}

// openEntryPopup clicks a roster entry and waits for its detail popup.
// A popup that does not appear is a transient UI fault: recover once by
// reloading and re-locating (the reload invalidates element handles), then
// escalate to locator exhaustion.
func (c *Client) openEntryPopup(ctx context.Context, locate func(context.Context) (browser.Node, error)) (browser.Node, error) {
	node, err := locate(ctx)
	if err != nil {
		return browser.Node{}, err
	}
	if err := c.page.Click(ctx, node.Sel); err == nil {
		if err := c.page.WaitVisible(ctx, selModal, c.waitFor); err == nil {
			c.pause(ctx)
			return node, nil
		}
	}

	c.log.Warn("detail popup did not open, reloading and retrying once")
	if err := c.page.Reload(ctx); err != nil {
		return browser.Node{}, fmt.Errorf("%w: reload after popup failure: %v", schedule.ErrTransientUI, err)
	}
	node, err = locate(ctx)
	if err != nil {
		return browser.Node{}, err
	}
	if err := c.page.Click(ctx, node.Sel); err != nil {
		return browser.Node{}, fmt.Errorf("%w: retry click failed: %v", schedule.ErrLocatorExhausted, err)
	}
	if err := c.page.WaitVisible(ctx, selModal, c.waitFor); err != nil {
		return browser.Node{}, fmt.Errorf("%w: popup did not open after retry", schedule.ErrLocatorExhausted)
	}
	c.pause(ctx)
	return node, nil
}

// closePopup dismisses the detail popup. Always executed before a
// component returns, regardless of how the read or transition went; a
// full reload is the fallback cleanup since it guarantees no residual
// dialog interferes with the next probe.
func (c *Client) closePopup(ctx context.Context) {
	if err := c.page.Click(ctx, selModalClose); err == nil {
		return
	}
	if err := c.page.Reload(ctx); err != nil {
		c.log.WithError(err).Warn("could not dismiss popup")
	}
}

// keyedValue finds the row whose label text matches one of labels and
// returns the adjacent value text. Values stay raw strings; the site's
// count formats drift.
func keyedValue(rows []browser.Node, labels ...string) string {
	for _, row := range rows {
		for _, label := range labels {
			if !row.ContainsText(label) {
				continue
			}
			return valueAfterLabel(row.Text, label)
		}
	}
	return ""
}

func valueAfterLabel(text, label string) string {
	if i := strings.Index(text, ":"); i >= 0 {
		return strings.TrimSpace(text[i+1:])
	}
	if i := strings.Index(strings.ToLower(text), label); i >= 0 {
		return strings.TrimSpace(text[i+len(label):])
	}
	return strings.TrimSpace(text)
}
