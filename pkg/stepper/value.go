package stepper

import (
	"log/slog"
	"math"
	"strconv"

	"github.com/go-drift/snapstep/pkg/errors"
)

// ValueController is the single source of truth for a stepper's value.
//
// It keeps MinimumValue <= value <= MaximumValue after every call and
// decides when value listeners are told about a change:
//
//	notify iff (Continuous || finished) && value != lastNotified
//
// Display listeners are separate. They hear every change of the value,
// whatever the notification policy, so a renderer can keep its text current.
type ValueController struct {
	cfg          Config
	value        float64
	lastNotified float64

	listeners        map[int]func(float64)
	displayListeners map[int]func(float64)
	nextListenerID   int

	logger  *slog.Logger
	control string
}

// NewValueController creates a controller with cfg normalized and the value
// at zero clamped into range. Nothing is notified.
func NewValueController(cfg Config) *ValueController {
	c := &ValueController{
		lastNotified:     math.Inf(-1),
		listeners:        make(map[int]func(float64)),
		displayListeners: make(map[int]func(float64)),
		logger:           slog.Default(),
	}
	c.cfg = cfg
	if c.cfg.MinimumValue > c.cfg.MaximumValue {
		c.cfg.MaximumValue = c.cfg.MinimumValue
	}
	c.cfg.StepValue = 1
	c.SetStepValue(cfg.StepValue)
	c.value = clamp(0, c.cfg.MinimumValue, c.cfg.MaximumValue)
	return c
}

// SetLogger sets the logger and the control id attached to its records.
func (c *ValueController) SetLogger(logger *slog.Logger, control string) {
	if logger == nil {
		logger = slog.Default()
	}
	c.logger = logger
	c.control = control
}

// Config returns a copy of the current configuration.
func (c *ValueController) Config() Config {
	return c.cfg
}

// SetConfig applies every field of cfg through the individual setters.
func (c *ValueController) SetConfig(cfg Config) {
	c.SetStepValue(cfg.StepValue)
	c.cfg.Wraps = cfg.Wraps
	c.cfg.Continuous = cfg.Continuous
	c.cfg.Autorepeat = cfg.Autorepeat
	if cfg.MinimumValue > cfg.MaximumValue {
		cfg.MaximumValue = cfg.MinimumValue
	}
	c.SetMinimum(cfg.MinimumValue)
	c.SetMaximum(cfg.MaximumValue)
}

// Minimum returns the lower bound.
func (c *ValueController) Minimum() float64 { return c.cfg.MinimumValue }

// Maximum returns the upper bound.
func (c *ValueController) Maximum() float64 { return c.cfg.MaximumValue }

// StepValue returns the increment granularity.
func (c *ValueController) StepValue() float64 { return c.cfg.StepValue }

// SetMinimum sets the lower bound, raising the maximum to match if needed,
// and pulls the value up into range.
func (c *ValueController) SetMinimum(m float64) {
	if math.IsNaN(m) {
		return
	}
	c.cfg.MinimumValue = m
	if m > c.cfg.MaximumValue {
		c.logger.Debug("maximum raised to minimum", "control", c.control, "value", m)
		c.cfg.MaximumValue = m
	}
	c.UpdateValue(math.Max(c.value, m), true)
}

// SetMaximum sets the upper bound, lowering the minimum to match if needed,
// and pulls the value down into range.
func (c *ValueController) SetMaximum(m float64) {
	if math.IsNaN(m) {
		return
	}
	c.cfg.MaximumValue = m
	if m < c.cfg.MinimumValue {
		c.logger.Debug("minimum lowered to maximum", "control", c.control, "value", m)
		c.cfg.MinimumValue = m
	}
	c.UpdateValue(math.Min(c.value, m), true)
}

// SetStepValue sets the increment. Negative steps use their magnitude;
// zero and NaN are ignored.
func (c *ValueController) SetStepValue(step float64) {
	if step == 0 || math.IsNaN(step) {
		c.logger.Debug("step ignored", "control", c.control, "step", step)
		return
	}
	c.cfg.StepValue = math.Abs(step)
}

// Wraps reports the wrap policy.
func (c *ValueController) Wraps() bool { return c.cfg.Wraps }

// SetWraps sets the wrap policy.
func (c *ValueController) SetWraps(wraps bool) { c.cfg.Wraps = wraps }

// Continuous reports the notification policy.
func (c *ValueController) Continuous() bool { return c.cfg.Continuous }

// SetContinuous sets the notification policy.
func (c *ValueController) SetContinuous(continuous bool) { c.cfg.Continuous = continuous }

// Autorepeat reports whether holding a control repeats.
func (c *ValueController) Autorepeat() bool { return c.cfg.Autorepeat }

// SetAutorepeat sets whether holding a control repeats. It takes effect at
// the next press or drag.
func (c *ValueController) SetAutorepeat(autorepeat bool) { c.cfg.Autorepeat = autorepeat }

// Value returns the current value.
func (c *ValueController) Value() float64 {
	return c.value
}

// SetValue sets the value as a finished update.
func (c *ValueController) SetValue(v float64) {
	c.UpdateValue(v, true)
}

// initValue stores v clamped into range without notifying anyone.
func (c *ValueController) initValue(v float64) {
	if math.IsNaN(v) {
		return
	}
	c.value = clamp(v, c.cfg.MinimumValue, c.cfg.MaximumValue)
}

// UpdateValue applies the clamp or wrap policy to candidate, stores the
// result and notifies listeners if the policy allows.
//
// With Wraps set, only candidates strictly outside the bounds wrap: a
// candidate equal to a bound is kept as is. NaN candidates are ignored.
func (c *ValueController) UpdateValue(candidate float64, finished bool) {
	if math.IsNaN(candidate) {
		return
	}
	next := candidate
	switch {
	case !c.cfg.Wraps:
		next = clamp(candidate, c.cfg.MinimumValue, c.cfg.MaximumValue)
	case candidate < c.cfg.MinimumValue:
		next = c.cfg.MaximumValue
	case candidate > c.cfg.MaximumValue:
		next = c.cfg.MinimumValue
	}

	prev := c.value
	c.value = next
	if next != prev {
		for _, fn := range c.displayListeners {
			c.call("stepper.display", fn, next)
		}
	}

	if (c.cfg.Continuous || finished) && c.value != c.lastNotified {
		c.lastNotified = c.value
		c.logger.Debug("value changed", "control", c.control, "value", c.value, "finished", finished)
		for _, fn := range c.listeners {
			c.call("stepper.notify", fn, c.value)
		}
	}
}

// AddListener registers fn to receive value change notifications.
// Returns an unsubscribe function.
func (c *ValueController) AddListener(fn func(float64)) func() {
	return c.add(c.listeners, fn)
}

// AddDisplayListener registers fn to receive every change of the value,
// regardless of the notification policy. Returns an unsubscribe function.
func (c *ValueController) AddDisplayListener(fn func(float64)) func() {
	return c.add(c.displayListeners, fn)
}

func (c *ValueController) removeListeners() {
	clear(c.listeners)
	clear(c.displayListeners)
}

func (c *ValueController) add(set map[int]func(float64), fn func(float64)) func() {
	id := c.nextListenerID
	c.nextListenerID++
	set[id] = fn
	return func() {
		delete(set, id)
	}
}

func (c *ValueController) call(op string, fn func(float64), v float64) {
	defer errors.RecoverControl(op, c.control)
	fn(v)
}

// FormatValue renders v the way the thumb and hint labels show it:
// integral values without a fractional part, others in shortest form.
func FormatValue(v float64) string {
	if v == math.Trunc(v) && !math.IsInf(v, 0) && math.Abs(v) < 1e15 {
		return strconv.FormatFloat(v, 'f', 0, 64)
	}
	return strconv.FormatFloat(v, 'g', -1, 64)
}

func clamp(v, lo, hi float64) float64 {
	return math.Max(lo, math.Min(v, hi))
}
