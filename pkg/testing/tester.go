package testing

import (
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/go-drift/snapstep/pkg/animation"
	"github.com/go-drift/snapstep/pkg/gestures"
	"github.com/go-drift/snapstep/pkg/graphics"
	"github.com/go-drift/snapstep/pkg/logging"
	"github.com/go-drift/snapstep/pkg/stepper"
)

const (
	// DefaultTestWidth is the default logical width of the stepper under test.
	DefaultTestWidth = 200
	// DefaultTestHeight is the default logical height of the stepper under test.
	DefaultTestHeight = 40
	// FrameInterval is the clock advance per pumped frame.
	FrameInterval = 10 * time.Millisecond
)

// ErrSettleTimeout is returned when PumpAndSettle exceeds its timeout.
var ErrSettleTimeout = errors.New("PumpAndSettle timed out: tickers did not settle")

// StepperTester drives a real Stepper through its frame loop with a fake
// clock. Autorepeat runs on animation.FrameScheduler and the thumb settles
// through animation.Snap, exactly as in a host, but time only moves when the
// test pumps frames.
type StepperTester struct {
	stepper *stepper.Stepper
	clock   *FakeClock
	restore func()

	notifications []float64
	redraws       int

	nextPointer int64
	pointer     int64
	position    graphics.Offset
	down        bool
}

// NewStepperTester creates a tester around a new Stepper. A zero Size
// means DefaultTestWidth x DefaultTestHeight and a nil Logger discards logs.
// Call Cleanup when done, or use NewStepperTesterWithT instead.
func NewStepperTester(opts stepper.Options) *StepperTester {
	clk := NewFakeClock()
	t := &StepperTester{
		clock:   clk,
		restore: clk.Install(),
	}
	if opts.Size == (graphics.Size{}) {
		opts.Size = graphics.Size{Width: DefaultTestWidth, Height: DefaultTestHeight}
	}
	if opts.Logger == nil {
		opts.Logger = logging.Discard()
	}
	t.stepper = stepper.New(opts)
	t.stepper.AddListener(func(v float64) {
		t.notifications = append(t.notifications, v)
	})
	t.stepper.AddRedrawListener(func() { t.redraws++ })
	return t
}

// NewStepperTesterWithT creates a tester that cleans up via t.Cleanup().
// This is the recommended constructor for tests.
func NewStepperTesterWithT(t *testing.T, opts stepper.Options) *StepperTester {
	tester := NewStepperTester(opts)
	t.Cleanup(tester.Cleanup)
	return tester
}

// Cleanup disposes the stepper and restores the animation clock.
func (t *StepperTester) Cleanup() {
	t.stepper.Dispose()
	if t.restore != nil {
		t.restore()
		t.restore = nil
	}
}

// Stepper returns the stepper under test.
func (t *StepperTester) Stepper() *stepper.Stepper {
	return t.stepper
}

// Clock returns the fake clock driving the frame loop.
func (t *StepperTester) Clock() *FakeClock {
	return t.clock
}

// Notifications returns every value delivered to value listeners so far.
func (t *StepperTester) Notifications() []float64 {
	return append([]float64(nil), t.notifications...)
}

// ClearNotifications forgets the notifications recorded so far.
func (t *StepperTester) ClearNotifications() {
	t.notifications = nil
}

// Redraws returns how many times the stepper asked to be redrawn.
func (t *StepperTester) Redraws() int {
	return t.redraws
}

// Pump runs a single frame without advancing the clock.
func (t *StepperTester) Pump() {
	animation.StepTickers()
}

// PumpFor advances the clock by d in frames of FrameInterval, stepping the
// tickers after each.
func (t *StepperTester) PumpFor(d time.Duration) {
	for elapsed := time.Duration(0); elapsed < d; elapsed += FrameInterval {
		step := FrameInterval
		if d-elapsed < step {
			step = d - elapsed
		}
		t.clock.Advance(step)
		animation.StepTickers()
	}
}

// PumpAndSettle pumps frames until no ticker is running or the timeout
// elapses on the fake clock. A held press never settles.
func (t *StepperTester) PumpAndSettle(timeout time.Duration) error {
	for waited := time.Duration(0); animation.HasActiveTickers(); waited += FrameInterval {
		if waited >= timeout {
			return ErrSettleTimeout
		}
		t.clock.Advance(FrameInterval)
		animation.StepTickers()
	}
	return nil
}

// RegionCenter returns the center of region at rest.
func (t *StepperTester) RegionCenter(region stepper.Region) (graphics.Offset, error) {
	l := t.stepper.Layout()
	switch region {
	case stepper.RegionDecrement:
		return l.DecrementFrame().Center(), nil
	case stepper.RegionIncrement:
		return l.IncrementFrame().Center(), nil
	case stepper.RegionThumb:
		return l.ThumbFrame(graphics.Offset{}).Center(), nil
	default:
		return graphics.Offset{}, fmt.Errorf("region %v has no position", region)
	}
}

// Press puts a new pointer down at the center of region.
func (t *StepperTester) Press(region stepper.Region) error {
	pos, err := t.RegionCenter(region)
	if err != nil {
		return fmt.Errorf("Press: %w", err)
	}
	return t.PressAt(pos)
}

// PressAt puts a new pointer down at pos.
func (t *StepperTester) PressAt(pos graphics.Offset) error {
	if t.down {
		return errors.New("PressAt: a pointer is already down")
	}
	t.nextPointer++
	t.pointer = t.nextPointer
	t.position = pos
	t.down = true
	t.send(gestures.PointerPhaseDown)
	return nil
}

// MoveTo moves the active pointer to pos.
func (t *StepperTester) MoveTo(pos graphics.Offset) error {
	if !t.down {
		return errors.New("MoveTo: no pointer is down")
	}
	t.position = pos
	t.send(gestures.PointerPhaseMove)
	return nil
}

// MoveBy moves the active pointer by delta.
func (t *StepperTester) MoveBy(delta graphics.Offset) error {
	return t.MoveTo(t.position.Add(delta))
}

// Release lifts the active pointer where it is.
func (t *StepperTester) Release() error {
	return t.finish(gestures.PointerPhaseUp, "Release")
}

// Cancel cancels the active pointer.
func (t *StepperTester) Cancel() error {
	return t.finish(gestures.PointerPhaseCancel, "Cancel")
}

// Tap presses and immediately releases region.
func (t *StepperTester) Tap(region stepper.Region) error {
	return t.Hold(region, 0)
}

// Hold presses region, pumps frames for d and releases.
func (t *StepperTester) Hold(region stepper.Region, d time.Duration) error {
	if err := t.Press(region); err != nil {
		return err
	}
	t.PumpFor(d)
	return t.Release()
}

// Drag grabs the thumb, moves the pointer by delta and releases.
func (t *StepperTester) Drag(delta graphics.Offset) error {
	return t.DragAndHold(delta, 0)
}

// DragAndHold grabs the thumb, moves the pointer by delta, pumps frames for
// d and releases.
func (t *StepperTester) DragAndHold(delta graphics.Offset, d time.Duration) error {
	if err := t.Press(stepper.RegionThumb); err != nil {
		return err
	}
	if err := t.MoveBy(delta); err != nil {
		return err
	}
	t.PumpFor(d)
	return t.Release()
}

func (t *StepperTester) finish(phase gestures.PointerPhase, op string) error {
	if !t.down {
		return fmt.Errorf("%s: no pointer is down", op)
	}
	t.send(phase)
	t.down = false
	return nil
}

func (t *StepperTester) send(phase gestures.PointerPhase) {
	t.stepper.HandlePointer(gestures.PointerEvent{
		PointerID: t.pointer,
		Position:  t.position,
		Phase:     phase,
	})
}
