/*
Copyright © 2025 Ipamup Contributors
SPDX-License-Identifier: BSD-3-Clause
*/

// Package readiness implements the health gate that decides when the stack
// is usable. The probe is a black-box HTTP request rather than a container
// status check: the web and cron containers may still be initialising
// their application state after their processes are up.
package readiness

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"
)

// ErrTimedOut is returned when the probe fails on every attempt
var ErrTimedOut = errors.New("stack did not become ready in time")

// State represents the gate's position in its lifecycle
type State int

const (
	StateWaiting State = iota
	StateReady
	StateTimedOut
)

// String returns a human readable state name
func (s State) String() string {
	switch s {
	case StateWaiting:
		return "waiting"
	case StateReady:
		return "ready"
	case StateTimedOut:
		return "timed out"
	default:
		return "unknown"
	}
}

// Prober defines the interface for a single readiness probe attempt
type Prober interface {
	Probe(ctx context.Context) error
}

// HTTPProber implements Prober with a GET against a local endpoint.
// Only success/failure classification matters, never the response body.
type HTTPProber struct {
	URL    string
	Client *http.Client
}

// NewHTTPProber creates a prober for the given URL
func NewHTTPProber(url string) *HTTPProber {
	return &HTTPProber{
		URL:    url,
		Client: &http.Client{Timeout: 3 * time.Second},
	}
}

// Probe performs one GET. Any 2xx or 3xx response counts as success; the
// login redirect the stack serves before first configuration is still a
// sign of life.
func (p *HTTPProber) Probe(ctx context.Context) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, p.URL, nil)
	if err != nil {
		return fmt.Errorf("failed to build probe request: %w", err)
	}

	resp, err := p.Client.Do(req)
	if err != nil {
		return fmt.Errorf("probe request failed: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode >= 200 && resp.StatusCode < 400 {
		return nil
	}
	return fmt.Errorf("probe returned status %d", resp.StatusCode)
}

// Gate polls a prober at a fixed interval with a bounded attempt count
type Gate struct {
	prober      Prober
	interval    time.Duration
	maxAttempts int

	// OnAttempt, when set, is invoked after every failed attempt with the
	// attempt number and its error
	OnAttempt func(attempt int, err error)

	state State
}

// NewGate creates a gate over the given prober
func NewGate(prober Prober, interval time.Duration, maxAttempts int) *Gate {
	return &Gate{
		prober:      prober,
		interval:    interval,
		maxAttempts: maxAttempts,
		state:       StateWaiting,
	}
}

// State returns the gate's current state
func (g *Gate) State() State {
	return g.state
}

// Wait blocks until the first successful probe, the attempt bound, or
// context cancellation. It returns nil on Ready, ErrTimedOut (wrapped)
// when every attempt failed, and the context error on cancellation.
func (g *Gate) Wait(ctx context.Context) error {
	var lastErr error

	for attempt := 1; attempt <= g.maxAttempts; attempt++ {
		err := g.prober.Probe(ctx)
		if err == nil {
			g.state = StateReady
			return nil
		}

		lastErr = err
		if g.OnAttempt != nil {
			g.OnAttempt(attempt, err)
		}

		if attempt == g.maxAttempts {
			break
		}

		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(g.interval):
		}
	}

	g.state = StateTimedOut
	return fmt.Errorf("%w after %d attempts: %v", ErrTimedOut, g.maxAttempts, lastErr)
}
