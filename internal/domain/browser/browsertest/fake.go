// Package browsertest provides an in-memory Page implementation for tests.
// State is a selector-keyed map the test seeds up front; OnClick lets a
// test mutate that state when the automation clicks something, which is
// how popup opening and enrollment side effects are simulated.
package browsertest

import (
	"context"
	"fmt"
	"sync"
	"time"

	"gym_schedule_bot/internal/domain/browser"
)

type FakePage struct {
	mu      sync.Mutex
	nodes   map[string][]browser.Node
	texts   map[string]string
	visible map[string]bool

	Navigated []string
	Reloads   int
	Clicked   []string
	Filled    map[string]string

	NavigateErr error
	ClickErr    map[string]error

	// OnClick runs after a successful click with the clicked selector.
	OnClick func(sel string)
	// OnReload runs after a reload; lets tests reset modal state.
	OnReload func()
}

func New() *FakePage {
	return &FakePage{
		nodes:   make(map[string][]browser.Node),
		texts:   make(map[string]string),
		visible: make(map[string]bool),
		Filled:  make(map[string]string),
	}
}

func (f *FakePage) SetNodes(sel string, nodes ...browser.Node) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.nodes[sel] = nodes
}

func (f *FakePage) RemoveNodes(sel string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	delete(f.nodes, sel)
}

func (f *FakePage) SetText(sel, text string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.texts[sel] = text
}

func (f *FakePage) SetVisible(sel string, v bool) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.visible[sel] = v
}

func (f *FakePage) Navigate(_ context.Context, url string) error {
	f.mu.Lock()
	f.Navigated = append(f.Navigated, url)
	f.mu.Unlock()
	return f.NavigateErr
}

func (f *FakePage) Reload(_ context.Context) error {
	f.mu.Lock()
	f.Reloads++
	cb := f.OnReload
	f.mu.Unlock()
	if cb != nil {
		cb()
	}
	return nil
}

func (f *FakePage) Query(_ context.Context, sel string) ([]browser.Node, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := make([]browser.Node, len(f.nodes[sel]))
	copy(out, f.nodes[sel])
	return out, nil
}

func (f *FakePage) WaitVisible(_ context.Context, sel string, _ time.Duration) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.visible[sel] || len(f.nodes[sel]) > 0 {
		return nil
	}
	return fmt.Errorf("element %q not visible", sel)
}

func (f *FakePage) Click(_ context.Context, sel string) error {
	f.mu.Lock()
	if err := f.ClickErr[sel]; err != nil {
		f.mu.Unlock()
		return err
	}
	f.Clicked = append(f.Clicked, sel)
	cb := f.OnClick
	f.mu.Unlock()
	if cb != nil {
		cb(sel)
	}
	return nil
}

func (f *FakePage) Fill(_ context.Context, sel, value string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.Filled[sel] = value
	return nil
}

func (f *FakePage) Text(_ context.Context, sel string) (string, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if t, ok := f.texts[sel]; ok {
		return t, nil
	}
	if ns := f.nodes[sel]; len(ns) > 0 {
		return ns[0].Text, nil
	}
	return "", fmt.Errorf("no text for %q", sel)
}
