// Package animation provides the frame-driven timing primitives used by
// snapstep controls: an injectable [Clock], per-frame [Ticker]s, a
// [FrameScheduler] that turns tickers into cancellable repeating timers, and
// the [Snap] animator that springs a released thumb back to center.
//
// # Frame Loop
//
// Nothing here spawns goroutines. The host calls [StepTickers] once per frame
// from its event thread, and every callback runs there:
//
//	func (g *game) Update() error {
//	    g.routePointer()
//	    animation.StepTickers()
//	    return nil
//	}
//
// Tests replace the clock with [SetClock] and step frames by hand.
package animation

import (
	"sync"
	"time"
)

var (
	tickerMu      sync.Mutex
	activeTickers = make(map[*Ticker]struct{})
)

// Ticker calls a callback on each frame while active.
//
// The callback receives the elapsed time since Start was called. Tickers are
// driven by the host's frame loop via [StepTickers].
type Ticker struct {
	callback func(elapsed time.Duration)
	isActive bool
	start    time.Time
}

// NewTicker creates a new ticker with the given callback.
func NewTicker(callback func(elapsed time.Duration)) *Ticker {
	return &Ticker{
		callback: callback,
	}
}

// Start activates the ticker. Starting an active ticker is a no-op.
func (t *Ticker) Start() {
	if t.isActive {
		return
	}
	t.isActive = true
	t.start = Now()
	tickerMu.Lock()
	activeTickers[t] = struct{}{}
	tickerMu.Unlock()
}

// Stop deactivates the ticker. Stopping an inactive ticker is a no-op.
func (t *Ticker) Stop() {
	if !t.isActive {
		return
	}
	t.isActive = false
	tickerMu.Lock()
	delete(activeTickers, t)
	tickerMu.Unlock()
}

// IsActive returns whether the ticker is currently running.
func (t *Ticker) IsActive() bool {
	return t.isActive
}

// Elapsed returns the time since the ticker started.
func (t *Ticker) Elapsed() time.Duration {
	if !t.isActive {
		return 0
	}
	return Now().Sub(t.start)
}

// StepTickers advances all active tickers.
// This should be called once per frame from the host.
func StepTickers() {
	tickerMu.Lock()
	if len(activeTickers) == 0 {
		tickerMu.Unlock()
		return
	}
	// Copy so callbacks may start or stop tickers.
	tickers := make([]*Ticker, 0, len(activeTickers))
	for ticker := range activeTickers {
		tickers = append(tickers, ticker)
	}
	tickerMu.Unlock()

	for _, ticker := range tickers {
		if ticker.isActive && ticker.callback != nil {
			elapsed := Now().Sub(ticker.start)
			ticker.callback(elapsed)
		}
	}
}

// ActiveTickers returns the number of running tickers.
func ActiveTickers() int {
	tickerMu.Lock()
	defer tickerMu.Unlock()
	return len(activeTickers)
}

// HasActiveTickers returns true if any tickers are active.
func HasActiveTickers() bool {
	return ActiveTickers() > 0
}
