// Package browser defines the page driver contract the site automation is
// written against. The interface lives in the domain so that every
// component can be exercised against a fake; the chromedp implementation
// lives in internal/infra/browser.
package browser

import (
	"context"
	"strings"
	"time"
)

// Node is one concrete element handle returned by a query. Sel is a
// selector that re-resolves to exactly this element for follow-up
// interactions (click, child queries).
type Node struct {
	Sel   string            `json:"sel"`
	Text  string            `json:"text"`
	Attrs map[string]string `json:"attrs"`
}

// Attr returns the named attribute, or "" when absent.
func (n Node) Attr(name string) string {
	if n.Attrs == nil {
		return ""
	}
	return n.Attrs[name]
}

// HasAttr reports whether the attribute is present at all, regardless of
// value. Disabled controls carry a bare "disabled" attribute.
func (n Node) HasAttr(name string) bool {
	_, ok := n.Attrs[name]
	return ok
}

// ContainsText reports a case-insensitive substring match against the
// node's visible text and its value attribute (submit inputs carry their
// label in value, not text).
func (n Node) ContainsText(s string) bool {
	needle := strings.ToLower(s)
	return strings.Contains(strings.ToLower(n.Text), needle) ||
		strings.Contains(strings.ToLower(n.Attr("value")), needle)
}

// Page is one browser tab driven sequentially by a single run. All waits
// are local to the call; Query never waits and returns however many
// matches exist right now, including none.
type Page interface {
	Navigate(ctx context.Context, url string) error
	Reload(ctx context.Context) error
	Query(ctx context.Context, sel string) ([]Node, error)
	WaitVisible(ctx context.Context, sel string, timeout time.Duration) error
	Click(ctx context.Context, sel string) error
	Fill(ctx context.Context, sel, value string) error
	Text(ctx context.Context, sel string) (string, error)
}
