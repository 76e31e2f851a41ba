// Package browser implements the domain Page contract on top of chromedp.
// One Page is one browser tab; a run owns exactly one and drives it
// sequentially.
package browser

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/chromedp/chromedp"
	"github.com/sirupsen/logrus"

	"gym_schedule_bot/internal/domain/browser"
)

// queryJS enumerates matches for a CSS selector and tags each element
// with a stable synthetic id so follow-up interactions can re-resolve
// exactly that element. Selector drift on the site is handled a layer
// up; this only promises "same element for the lifetime of the page".
const queryJS = `(() => {
	const out = [];
	document.querySelectorAll(%s).forEach((el) => {
		let id = el.getAttribute('data-gymbot-id');
		if (!id) {
			window.__gymbotSeq = (window.__gymbotSeq || 0) + 1;
			id = 'gb-' + window.__gymbotSeq;
			el.setAttribute('data-gymbot-id', id);
		}
		const attrs = {};
		for (const a of el.attributes) { attrs[a.name] = a.value; }
		out.push({sel: "[data-gymbot-id='" + id + "']", text: (el.innerText || '').trim(), attrs: attrs});
	});
	return out;
})()`

type Page struct {
	ctx         context.Context
	callTimeout time.Duration
	log         *logrus.Entry
}

// New launches a browser and returns a Page plus the cancel func that
// tears the whole browser down. The caller owns the lifetime; fatal
// failures end the process and the browser with it.
func New(parent context.Context, headless bool, callTimeout time.Duration, log *logrus.Entry) (*Page, context.CancelFunc, error) {
	opts := append(chromedp.DefaultExecAllocatorOptions[:],
		chromedp.Flag("headless", headless),
		chromedp.WindowSize(1280, 1024),
	)
	allocCtx, cancelAlloc := chromedp.NewExecAllocator(parent, opts...)
	tabCtx, cancelTab := chromedp.NewContext(allocCtx)
	cancel := func() {
		cancelTab()
		cancelAlloc()
	}

	// Force the browser to actually start so a broken environment fails
	// here and not mid-run.
	startCtx, startCancel := context.WithTimeout(tabCtx, 30*time.Second)
	defer startCancel()
	if err := chromedp.Run(startCtx); err != nil {
		cancel()
		return nil, nil, fmt.Errorf("failed to launch browser: %w", err)
	}

	return &Page{ctx: tabCtx, callTimeout: callTimeout, log: log}, cancel, nil
}

func (p *Page) run(ctx context.Context, timeout time.Duration, actions ...chromedp.Action) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	runCtx, cancel := context.WithTimeout(p.ctx, timeout)
	defer cancel()
	return chromedp.Run(runCtx, actions...)
}

func (p *Page) Navigate(ctx context.Context, url string) error {
	p.log.WithField("url", url).Debug("navigate")
	return p.run(ctx, p.callTimeout,
		chromedp.Navigate(url),
		chromedp.WaitReady("body", chromedp.ByQuery),
	)
}

func (p *Page) Reload(ctx context.Context) error {
	p.log.Debug("reload")
	return p.run(ctx, p.callTimeout,
		chromedp.Reload(),
		chromedp.WaitReady("body", chromedp.ByQuery),
	)
}

func (p *Page) Query(ctx context.Context, sel string) ([]browser.Node, error) {
	var nodes []browser.Node
	js := fmt.Sprintf(queryJS, strconv.Quote(sel))
	if err := p.run(ctx, p.callTimeout, chromedp.Evaluate(js, &nodes)); err != nil {
		return nil, fmt.Errorf("query %q: %w", sel, err)
	}
	return nodes, nil
}

func (p *Page) WaitVisible(ctx context.Context, sel string, timeout time.Duration) error {
	if err := p.run(ctx, timeout, chromedp.WaitVisible(sel, chromedp.ByQuery)); err != nil {
		return fmt.Errorf("wait visible %q: %w", sel, err)
	}
	return nil
}

func (p *Page) Click(ctx context.Context, sel string) error {
	if err := p.run(ctx, p.callTimeout,
		chromedp.ScrollIntoView(sel, chromedp.ByQuery),
		chromedp.Click(sel, chromedp.ByQuery),
	); err != nil {
		return fmt.Errorf("click %q: %w", sel, err)
	}
	return nil
}

func (p *Page) Fill(ctx context.Context, sel, value string) error {
	if err := p.run(ctx, p.callTimeout,
		chromedp.SetValue(sel, "", chromedp.ByQuery),
		chromedp.SendKeys(sel, value, chromedp.ByQuery),
	); err != nil {
		return fmt.Errorf("fill %q: %w", sel, err)
	}
	return nil
}

func (p *Page) Text(ctx context.Context, sel string) (string, error) {
	var out string
	if err := p.run(ctx, p.callTimeout, chromedp.Text(sel, &out, chromedp.ByQuery)); err != nil {
		return "", fmt.Errorf("text %q: %w", sel, err)
	}
	return out, nil
}
