package animation

import "time"

// FrameScheduler implements repeating timers on top of frame tickers.
//
// A callback scheduled with period p fires once for every full p that has
// elapsed since scheduling, checked on each [StepTickers] call. If a frame
// arrives late the missed periods are delivered back to back, so the number
// of fires after t is always floor(t/p).
type FrameScheduler struct{}

// ScheduleRepeating starts calling fn every period and returns a cancel
// function. Cancel is idempotent and may be called from inside fn.
// A non-positive period schedules nothing and returns a no-op cancel.
func (FrameScheduler) ScheduleRepeating(period time.Duration, fn func()) (cancel func()) {
	if period <= 0 || fn == nil {
		return func() {}
	}
	var (
		fired  int64
		ticker *Ticker
	)
	ticker = NewTicker(func(elapsed time.Duration) {
		due := int64(elapsed / period)
		for fired < due && ticker.IsActive() {
			fired++
			fn()
		}
	})
	ticker.Start()
	return ticker.Stop
}
