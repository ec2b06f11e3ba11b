package testing

import (
	"errors"
	"testing"
	"time"

	"github.com/go-drift/snapstep/pkg/graphics"
	"github.com/go-drift/snapstep/pkg/stepper"
)

func equalFloats(a, b []float64) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

func TestStepperTester_HoldOneSecond(t *testing.T) {
	tester := NewStepperTesterWithT(t, stepper.Options{Config: stepper.DefaultConfig()})

	if err := tester.Hold(stepper.RegionIncrement, time.Second); err != nil {
		t.Fatalf("Hold returned error: %v", err)
	}
	// Ticks 0 and 5 of the first second change the value.
	if got := tester.Stepper().Value(); got != 2 {
		t.Errorf("expected 2 after a one second hold, got %v", got)
	}
	if got := tester.Notifications(); !equalFloats(got, []float64{1, 2}) {
		t.Errorf("expected notifications [1 2], got %v", got)
	}
}

func TestStepperTester_HoldReachesFullSpeed(t *testing.T) {
	tester := NewStepperTesterWithT(t, stepper.Options{Config: stepper.DefaultConfig()})

	if err := tester.Hold(stepper.RegionIncrement, 3500*time.Millisecond); err != nil {
		t.Fatalf("Hold returned error: %v", err)
	}
	if got := tester.Stepper().Value(); got != 14 {
		t.Errorf("expected 14 after 3.5s, got %v", got)
	}
}

func TestStepperTester_NonContinuousHold(t *testing.T) {
	cfg := stepper.DefaultConfig()
	cfg.Continuous = false
	tester := NewStepperTesterWithT(t, stepper.Options{Config: cfg, Value: 50})

	if err := tester.Press(stepper.RegionDecrement); err != nil {
		t.Fatal(err)
	}
	tester.PumpFor(time.Second)
	if got := tester.Notifications(); len(got) != 0 {
		t.Errorf("expected no notifications while held, got %v", got)
	}
	if err := tester.Release(); err != nil {
		t.Fatal(err)
	}
	if got := tester.Notifications(); !equalFloats(got, []float64{48}) {
		t.Errorf("expected a single notification of 48, got %v", got)
	}
}

func TestStepperTester_DragSettles(t *testing.T) {
	cfg := stepper.DefaultConfig()
	cfg.Autorepeat = false
	tester := NewStepperTesterWithT(t, stepper.Options{Config: cfg})

	if err := tester.Drag(graphics.Offset{X: 250}); err != nil {
		t.Fatalf("Drag returned error: %v", err)
	}
	if got := tester.Stepper().Value(); got != 1 {
		t.Errorf("expected 1 after a full drag, got %v", got)
	}
	if got := tester.Stepper().ThumbOffset(); got != (graphics.Offset{X: 50}) {
		t.Errorf("expected thumb released at {50 0}, got %v", got)
	}

	before := tester.Redraws()
	if err := tester.PumpAndSettle(time.Second); err != nil {
		t.Fatalf("PumpAndSettle returned error: %v", err)
	}
	if got := tester.Stepper().ThumbOffset(); got != (graphics.Offset{}) {
		t.Errorf("expected thumb back at rest, got %v", got)
	}
	if tester.Redraws() <= before {
		t.Error("expected redraws while the thumb settles")
	}
}

func TestStepperTester_DragAndHoldRepeats(t *testing.T) {
	tester := NewStepperTesterWithT(t, stepper.Options{Config: stepper.DefaultConfig()})

	if err := tester.DragAndHold(graphics.Offset{X: 250}, time.Second); err != nil {
		t.Fatalf("DragAndHold returned error: %v", err)
	}
	if got := tester.Stepper().Value(); got != 10 {
		t.Errorf("expected one step per tick for a second, got %v", got)
	}
}

func TestStepperTester_CancelledDragKeepsValue(t *testing.T) {
	cfg := stepper.DefaultConfig()
	cfg.Autorepeat = false
	tester := NewStepperTesterWithT(t, stepper.Options{Config: cfg, Value: 10})

	if err := tester.Press(stepper.RegionThumb); err != nil {
		t.Fatal(err)
	}
	if err := tester.MoveBy(graphics.Offset{X: -250}); err != nil {
		t.Fatal(err)
	}
	if err := tester.Cancel(); err != nil {
		t.Fatal(err)
	}
	if got := tester.Stepper().Value(); got != 9 {
		t.Errorf("expected 9 after cancel, got %v", got)
	}
}

func TestStepperTester_PumpAndSettleTimesOutWhileHeld(t *testing.T) {
	tester := NewStepperTesterWithT(t, stepper.Options{Config: stepper.DefaultConfig()})

	if err := tester.Press(stepper.RegionIncrement); err != nil {
		t.Fatal(err)
	}
	if err := tester.PumpAndSettle(200 * time.Millisecond); !errors.Is(err, ErrSettleTimeout) {
		t.Errorf("expected ErrSettleTimeout, got %v", err)
	}
	if err := tester.Release(); err != nil {
		t.Fatal(err)
	}
	if err := tester.PumpAndSettle(time.Second); err != nil {
		t.Errorf("expected settle after release, got %v", err)
	}
}

func TestStepperTester_GestureErrors(t *testing.T) {
	tester := NewStepperTesterWithT(t, stepper.Options{Config: stepper.DefaultConfig()})

	if err := tester.Release(); err == nil {
		t.Error("expected Release without a pointer to fail")
	}
	if err := tester.MoveTo(graphics.Offset{}); err == nil {
		t.Error("expected MoveTo without a pointer to fail")
	}
	if err := tester.Press(stepper.RegionNone); err == nil {
		t.Error("expected Press on no region to fail")
	}
	if err := tester.Tap(stepper.RegionIncrement); err != nil {
		t.Fatalf("Tap returned error: %v", err)
	}
	if err := tester.Press(stepper.RegionIncrement); err != nil {
		t.Fatal(err)
	}
	if err := tester.Press(stepper.RegionDecrement); err == nil {
		t.Error("expected a second Press to fail while a pointer is down")
	}
	tester.Release()
}
