package bink

import (
	"context"
	"fmt"
	"strings"

	"gym_schedule_bot/internal/domain/browser"
	"gym_schedule_bot/internal/domain/schedule"
)

// entryQuery is a semantic target on the roster: "the entry for day D,
// time T, session kind K". Time and kind are optional narrowing filters.
type entryQuery struct {
	day  schedule.DayTarget
	time string
	kind string
}

// findEntry resolves an entryQuery to exactly one element handle through
// an ordered list of strategies, most specific first:
//
//  1. structural: the composite modal id encodes day, kind and time
//     ("modal-tuesday-Oly Lifting-18:30");
//  2. containment: every entry in the day's column, filtered by time/kind
//     text;
//  3. full-page text search, the last resort after a redesign breaks the
//     structural attributes.
//
// A strategy is only abandoned when it yields zero matches. Driver errors
// propagate immediately; there is no retry loop here.
func (c *Client) findEntry(ctx context.Context, q entryQuery) (browser.Node, error) {
	type strategy struct {
		name string
		find func(context.Context) ([]browser.Node, error)
	}
	strategies := []strategy{
		{"structural-id", func(ctx context.Context) ([]browser.Node, error) { return c.findByCompositeID(ctx, q) }},
		{"day-column", func(ctx context.Context) ([]browser.Node, error) { return c.findInDayColumn(ctx, q) }},
		{"page-text", func(ctx context.Context) ([]browser.Node, error) { return c.findByPageText(ctx, q) }},
	}

	var tried []string
	for _, s := range strategies {
		nodes, err := s.find(ctx)
		if err != nil {
			return browser.Node{}, fmt.Errorf("locator strategy %s: %w", s.name, err)
		}
		if len(nodes) > 0 {
			c.log.WithField("strategy", s.name).WithField("matches", len(nodes)).
				Debug("entry located")
			return nodes[0], nil
		}
		tried = append(tried, s.name)
	}
	return browser.Node{}, fmt.Errorf("%w: entry day=%s time=%q kind=%q (tried: %s)",
		schedule.ErrLocatorExhausted, q.day.Day, q.time, q.kind, strings.Join(tried, ", "))
}

func (c *Client) findByCompositeID(ctx context.Context, q entryQuery) ([]browser.Node, error) {
	var sels []string
	if q.kind != "" && q.time != "" {
		sels = append(sels, fmt.Sprintf("li[data-remodal-target*='%s-%s-%s']", q.day.Day, q.kind, q.time))
	}
	if q.kind != "" {
		sels = append(sels, fmt.Sprintf("li[data-remodal-target*='%s-%s']", q.day.Day, q.kind))
	}
	for _, sel := range sels {
		nodes, err := c.page.Query(ctx, sel)
		if err != nil {
			return nil, err
		}
		if len(nodes) > 0 {
			return nodes, nil
		}
	}
	return nil, nil
}

func (c *Client) findInDayColumn(ctx context.Context, q entryQuery) ([]browser.Node, error) {
	entries, err := c.entriesForDay(ctx, q.day)
	if err != nil {
		return nil, err
	}
	var out []browser.Node
	for _, n := range entries {
		if q.time != "" && !c.entryTimeMatches(ctx, n, q.time) {
			continue
		}
		if q.kind != "" && !entryMentionsKind(n, q.kind) {
			continue
		}
		out = append(out, n)
	}
	return out, nil
}

func (c *Client) findByPageText(ctx context.Context, q entryQuery) ([]browser.Node, error) {
	nodes, err := c.page.Query(ctx, "li")
	if err != nil {
		return nil, err
	}
	var out []browser.Node
	for _, n := range nodes {
		if !n.ContainsText(q.day.Day) && !n.ContainsText(q.day.DisplayName()) {
			continue
		}
		if q.time != "" && !n.ContainsText(q.time) {
			continue
		}
		if q.kind != "" && !n.ContainsText(q.kind) {
			continue
		}
		out = append(out, n)
	}
	return out, nil
}

// entriesForDay returns every entry in the day's roster column.
func (c *Client) entriesForDay(ctx context.Context, day schedule.DayTarget) ([]browser.Node, error) {
	return c.page.Query(ctx, fmt.Sprintf("li[data-remodal-target*='%s']", day.Day))
}

// entryTime reads the start time text of an entry: the time element
// inside it, else the trailing piece of the composite id, else the first
// line of its text. Returned verbatim; formats drift.
func (c *Client) entryTime(ctx context.Context, n browser.Node) string {
	if children, err := c.page.Query(ctx, n.Sel+" "+selEntryTime); err == nil && len(children) > 0 {
		return strings.TrimSpace(children[0].Text)
	}
	if target := n.Attr("data-remodal-target"); target != "" {
		if i := strings.LastIndex(target, "-"); i >= 0 && i+1 < len(target) {
			return target[i+1:]
		}
	}
	if line, _, ok := strings.Cut(n.Text, "\n"); ok {
		return strings.TrimSpace(line)
	}
	return strings.TrimSpace(n.Text)
}

func (c *Client) entryTimeMatches(ctx context.Context, n browser.Node, want string) bool {
	if strings.Contains(c.entryTime(ctx, n), want) {
		return true
	}
	return n.ContainsText(want)
}

func entryMentionsKind(n browser.Node, kind string) bool {
	if strings.Contains(strings.ToLower(n.Attr("data-remodal-target")), strings.ToLower(kind)) {
		return true
	}
	return n.ContainsText(kind)
}

// findControl probes the open detail popup for a control carrying one of
// the given labels. Buttons, links and submit inputs all appear across
// site revisions. Reports presence and enabledness separately so the
// transition engine can tell "absent" from "present but disabled".
func (c *Client) findControl(ctx context.Context, labels []string) (node browser.Node, present, enabled bool, err error) {
	for _, sel := range []string{selModal + " button", selModal + " a", selModal + " input[type='submit']"} {
		candidates, qerr := c.page.Query(ctx, sel)
		if qerr != nil {
			return browser.Node{}, false, false, qerr
		}
		for _, cand := range candidates {
			for _, label := range labels {
				if !cand.ContainsText(label) {
					continue
				}
				if !present || (!enabled && !cand.HasAttr("disabled")) {
					node, present, enabled = cand, true, !cand.HasAttr("disabled")
				}
			}
		}
	}
	return node, present, enabled, nil
}
