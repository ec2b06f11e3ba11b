package stepper

import (
	"math"
	"time"

	"github.com/go-drift/snapstep/pkg/errors"
)

// Scheduler runs a callback repeatedly on the event thread.
//
// ScheduleRepeating must not call fn synchronously. The returned cancel
// function stops further calls and must be safe to call more than once.
// [animation.FrameScheduler] is the frame-loop implementation.
type Scheduler interface {
	ScheduleRepeating(period time.Duration, fn func()) (cancel func())
}

// RepeatForever is the starting count for an autorepeat that should run at
// full speed from the first tick until stopped.
const RepeatForever = math.MaxInt

// saturationCount is the tick count from which every tick increments.
const saturationCount = 35

// RepeatEligible reports whether the tick with the given count should change
// the value. The bands slow the first second and a half of a hold and then
// speed up until every tick counts.
func RepeatEligible(count int) bool {
	switch {
	case count < 10:
		return count%5 == 0
	case count < 20:
		return count%4 == 0
	case count < 25:
		return count%3 == 0
	case count < 30:
		return count%2 == 0
	default:
		return true
	}
}

// autorepeat owns the single repeating timer of an interaction.
type autorepeat struct {
	scheduler Scheduler
	period    time.Duration
	control   string

	count  int
	tick   func()
	cancel func()
}

func newAutorepeat(s Scheduler, period time.Duration, control string) *autorepeat {
	if period <= 0 {
		period = RepeatInterval
	}
	return &autorepeat{scheduler: s, period: period, control: control}
}

// running reports whether a timer is active.
func (a *autorepeat) running() bool {
	return a.cancel != nil
}

// start ticks once immediately and then every period. Starting while running
// is a no-op: the count and callback of the first start stay in effect.
func (a *autorepeat) start(count int, tick func()) {
	if a.running() {
		return
	}
	a.count = count
	a.tick = tick
	a.fire()
	// The immediate tick may have stopped us through a listener.
	if a.tick == nil {
		return
	}
	a.cancel = a.scheduler.ScheduleRepeating(a.period, a.fire)
}

// stop cancels the timer. It reports whether a timer was running.
func (a *autorepeat) stop() bool {
	a.tick = nil
	if a.cancel == nil {
		return false
	}
	cancel := a.cancel
	a.cancel = nil
	cancel()
	return true
}

func (a *autorepeat) halt() {
	a.stop()
}

func (a *autorepeat) fire() {
	needsIncrement := true
	if a.count < saturationCount {
		needsIncrement = RepeatEligible(a.count)
		a.count++
	}
	if needsIncrement && a.tick != nil {
		a.run(a.tick)
	}
}

func (a *autorepeat) run(tick func()) {
	defer errors.RecoverTick("stepper.autorepeat", a.control, a.halt)
	tick()
}
