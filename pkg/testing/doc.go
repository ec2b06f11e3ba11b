// Package testing provides deterministic test tooling for snapstep steppers.
//
// # Quick Start
//
// Create a tester, drive gestures, and assert on the value and the
// notifications it produced:
//
//	func TestHold(t *testing.T) {
//	    tester := steptest.NewStepperTesterWithT(t, stepper.Options{
//	        Config: stepper.DefaultConfig(),
//	    })
//
//	    tester.Hold(stepper.RegionIncrement, time.Second)
//
//	    if got := tester.Stepper().Value(); got != 2 {
//	        t.Errorf("expected 2, got %v", got)
//	    }
//	}
//
// # Time
//
// The tester installs a [FakeClock] as the animation clock. Time moves only
// when the test pumps frames, so autorepeat ticks and the snap-back animation
// happen at exactly the same points on every run:
//
//	tester.PumpFor(350 * time.Millisecond)
//	tester.PumpAndSettle(time.Second)
//
// # Import Alias
//
// Since this package has the same name as the standard library testing
// package, import it with an alias:
//
//	import steptest "github.com/go-drift/snapstep/pkg/testing"
package testing
