package stepper

import (
	"math"
	"math/rand"
	"testing"

	"github.com/go-drift/snapstep/pkg/errors"
)

func newTestController(cfg Config) (*ValueController, *[]float64) {
	c := NewValueController(cfg)
	var got []float64
	c.AddListener(func(v float64) { got = append(got, v) })
	return c, &got
}

func TestDefaultConfig(t *testing.T) {
	c := NewValueController(DefaultConfig())
	if !c.Autorepeat() {
		t.Error("expected autorepeat on by default")
	}
	if c.Wraps() {
		t.Error("expected wraps off by default")
	}
	if !c.Continuous() {
		t.Error("expected continuous on by default")
	}
	if c.Minimum() != 0 || c.Maximum() != 100 || c.StepValue() != 1 || c.Value() != 0 {
		t.Errorf("unexpected defaults: %+v value=%v", c.Config(), c.Value())
	}
}

func TestNewValueControllerNormalizes(t *testing.T) {
	c := NewValueController(Config{MinimumValue: 10, MaximumValue: 5, StepValue: -2})
	if c.Minimum() != 10 || c.Maximum() != 10 {
		t.Errorf("expected bounds [10,10], got [%v,%v]", c.Minimum(), c.Maximum())
	}
	if c.StepValue() != 2 {
		t.Errorf("expected step 2, got %v", c.StepValue())
	}
	if c.Value() != 10 {
		t.Errorf("expected value clamped to 10, got %v", c.Value())
	}

	c = NewValueController(Config{MinimumValue: 0, MaximumValue: 1})
	if c.StepValue() != 1 {
		t.Errorf("expected zero step to fall back to 1, got %v", c.StepValue())
	}
}

func TestSetMaximumThenMinimumCollapse(t *testing.T) {
	for _, v := range []float64{-1000, -1, 0, 0.5, 42, 100, 1e9} {
		c := NewValueController(DefaultConfig())
		c.SetMaximum(v)
		c.SetMinimum(v)
		if c.Minimum() != v || c.Maximum() != v {
			t.Errorf("v=%v: expected min == max == v, got [%v,%v]", v, c.Minimum(), c.Maximum())
		}
		if c.Value() != v {
			t.Errorf("v=%v: expected value pinned to v, got %v", v, c.Value())
		}
	}
}

func TestBoundsInvariantRandomSequence(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	c := NewValueController(DefaultConfig())
	for i := 0; i < 1000; i++ {
		v := rng.Float64()*400 - 200
		if rng.Intn(2) == 0 {
			c.SetMinimum(v)
		} else {
			c.SetMaximum(v)
		}
		if c.Minimum() > c.Maximum() {
			t.Fatalf("step %d: min %v > max %v", i, c.Minimum(), c.Maximum())
		}
		if c.Value() < c.Minimum() || c.Value() > c.Maximum() {
			t.Fatalf("step %d: value %v outside [%v,%v]", i, c.Value(), c.Minimum(), c.Maximum())
		}
	}
}

func TestSetMinimumPullsValueUp(t *testing.T) {
	c, got := newTestController(DefaultConfig())
	c.SetValue(5)
	c.SetMinimum(20)
	if c.Value() != 20 {
		t.Errorf("expected value 20, got %v", c.Value())
	}
	if n := len(*got); n != 2 || (*got)[1] != 20 {
		t.Errorf("expected notifications [5 20], got %v", *got)
	}

	c.SetMinimum(150)
	if c.Maximum() != 150 || c.Value() != 150 {
		t.Errorf("expected max and value raised to 150, got max=%v value=%v", c.Maximum(), c.Value())
	}
}

func TestSetMaximumPullsValueDown(t *testing.T) {
	c := NewValueController(DefaultConfig())
	c.SetValue(80)
	c.SetMaximum(50)
	if c.Value() != 50 {
		t.Errorf("expected value 50, got %v", c.Value())
	}
	c.SetMaximum(-10)
	if c.Minimum() != -10 || c.Value() != -10 {
		t.Errorf("expected min and value lowered to -10, got min=%v value=%v", c.Minimum(), c.Value())
	}
}

func TestClampLaw(t *testing.T) {
	tests := []struct {
		candidate float64
		want      float64
	}{
		{105, 100},
		{-4, 0},
		{50, 50},
		{0, 0},
		{100, 100},
		{math.Inf(1), 100},
		{math.Inf(-1), 0},
	}
	for _, tt := range tests {
		c := NewValueController(DefaultConfig())
		c.SetValue(50)
		c.UpdateValue(tt.candidate, true)
		if c.Value() != tt.want {
			t.Errorf("UpdateValue(%v) = %v, want %v", tt.candidate, c.Value(), tt.want)
		}
	}
}

func TestClampInvariantRandom(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	c := NewValueController(Config{MinimumValue: -3, MaximumValue: 17, StepValue: 1})
	for i := 0; i < 1000; i++ {
		c.UpdateValue(rng.NormFloat64()*50, true)
		if c.Value() < -3 || c.Value() > 17 {
			t.Fatalf("value %v escaped [-3,17]", c.Value())
		}
	}
}

func TestWrapLaw(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Wraps = true
	tests := []struct {
		candidate float64
		want      float64
	}{
		{105, 0},
		{-4, 100},
		{42, 42},
		// Exact bounds are kept, not wrapped.
		{100, 100},
		{0, 0},
	}
	for _, tt := range tests {
		c := NewValueController(cfg)
		c.SetValue(50)
		c.UpdateValue(tt.candidate, true)
		if c.Value() != tt.want {
			t.Errorf("wrapping UpdateValue(%v) = %v, want %v", tt.candidate, c.Value(), tt.want)
		}
	}
}

func TestNaNCandidateIgnored(t *testing.T) {
	c, got := newTestController(DefaultConfig())
	c.SetValue(3)
	c.UpdateValue(math.NaN(), true)
	if c.Value() != 3 {
		t.Errorf("expected NaN to be ignored, value=%v", c.Value())
	}
	if len(*got) != 1 {
		t.Errorf("expected a single notification, got %v", *got)
	}
}

func TestContinuousNotification(t *testing.T) {
	c, got := newTestController(DefaultConfig())
	c.SetValue(10)
	c.SetValue(10)
	c.SetValue(11)

	want := []float64{10, 11}
	if !equalFloats(*got, want) {
		t.Errorf("expected notifications %v, got %v", want, *got)
	}
}

func TestContinuousNotifiesUnfinished(t *testing.T) {
	c, got := newTestController(DefaultConfig())
	c.UpdateValue(1, false)
	c.UpdateValue(2, false)
	if !equalFloats(*got, []float64{1, 2}) {
		t.Errorf("expected continuous mode to report unfinished updates, got %v", *got)
	}
}

func TestNonContinuousNotification(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Continuous = false
	c, got := newTestController(cfg)

	c.UpdateValue(10, false)
	if len(*got) != 0 {
		t.Fatalf("expected no notification for unfinished update, got %v", *got)
	}
	c.UpdateValue(10, true)
	c.UpdateValue(11, false)
	c.UpdateValue(12, false)
	c.UpdateValue(13, false)
	if len(*got) != 1 {
		t.Fatalf("expected 1 notification before finish, got %v", *got)
	}
	c.UpdateValue(14, true)

	want := []float64{10, 14}
	if !equalFloats(*got, want) {
		t.Errorf("expected notifications %v, got %v", want, *got)
	}
}

func TestFinishedWithoutChangeDoesNotNotify(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Continuous = false
	c, got := newTestController(cfg)
	c.SetValue(7)
	c.UpdateValue(c.Value(), true)
	c.UpdateValue(c.Value(), true)
	if len(*got) != 1 {
		t.Errorf("expected one notification, got %v", *got)
	}
}

func TestDisplayListenerIgnoresPolicy(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Continuous = false
	c := NewValueController(cfg)
	var shown []float64
	unsubscribe := c.AddDisplayListener(func(v float64) { shown = append(shown, v) })

	c.UpdateValue(1, false)
	c.UpdateValue(1, false)
	c.UpdateValue(2, false)
	if !equalFloats(shown, []float64{1, 2}) {
		t.Errorf("expected display updates [1 2], got %v", shown)
	}

	unsubscribe()
	c.UpdateValue(3, false)
	if len(shown) != 2 {
		t.Errorf("expected no display update after unsubscribe, got %v", shown)
	}
}

func TestUnsubscribeListener(t *testing.T) {
	c := NewValueController(DefaultConfig())
	calls := 0
	unsubscribe := c.AddListener(func(float64) { calls++ })
	c.SetValue(1)
	unsubscribe()
	c.SetValue(2)
	if calls != 1 {
		t.Errorf("expected 1 call, got %d", calls)
	}
}

func TestPanickingListenerIsRecovered(t *testing.T) {
	var reported *errors.PanicError
	old := errors.DefaultHandler
	errors.SetHandler(&panicRecorder{onPanic: func(p *errors.PanicError) { reported = p }})
	defer errors.SetHandler(old)

	c := NewValueController(DefaultConfig())
	c.SetLogger(nil, "ctl-7")
	c.AddListener(func(float64) { panic("listener failed") })
	c.SetValue(9)

	if c.Value() != 9 {
		t.Errorf("expected value 9, got %v", c.Value())
	}
	if reported == nil || reported.Op != "stepper.notify" {
		t.Fatalf("expected panic reported for stepper.notify, got %+v", reported)
	}
	if reported.Control != "ctl-7" {
		t.Errorf("expected panic attributed to ctl-7, got %q", reported.Control)
	}
	if reported.Kind != errors.KindCallback {
		t.Errorf("expected kind callback, got %v", reported.Kind)
	}
}

func TestSetStepValue(t *testing.T) {
	c := NewValueController(DefaultConfig())
	c.SetStepValue(-5)
	if c.StepValue() != 5 {
		t.Errorf("expected 5, got %v", c.StepValue())
	}
	c.SetStepValue(0)
	c.SetStepValue(math.NaN())
	if c.StepValue() != 5 {
		t.Errorf("expected zero and NaN to be ignored, got %v", c.StepValue())
	}
}

func TestSetConfigMovesBothBounds(t *testing.T) {
	c := NewValueController(DefaultConfig())
	c.SetValue(50)
	c.SetConfig(Config{MinimumValue: 200, MaximumValue: 300, StepValue: 5, Wraps: true})
	if c.Minimum() != 200 || c.Maximum() != 300 || c.Value() != 200 {
		t.Errorf("unexpected state after SetConfig: %+v value=%v", c.Config(), c.Value())
	}
	if !c.Wraps() || c.Continuous() || c.Autorepeat() || c.StepValue() != 5 {
		t.Errorf("flags not applied: %+v", c.Config())
	}

	c.SetConfig(Config{MinimumValue: 10, MaximumValue: 5, StepValue: 1})
	if c.Minimum() != 10 || c.Maximum() != 10 {
		t.Errorf("expected inverted bounds to collapse to [10,10], got [%v,%v]", c.Minimum(), c.Maximum())
	}
}

func TestFormatValue(t *testing.T) {
	tests := []struct {
		v    float64
		want string
	}{
		{0, "0"},
		{42, "42"},
		{-3, "-3"},
		{0.5, "0.5"},
		{2.25, "2.25"},
	}
	for _, tt := range tests {
		if got := FormatValue(tt.v); got != tt.want {
			t.Errorf("FormatValue(%v) = %q, want %q", tt.v, got, tt.want)
		}
	}
}

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

type panicRecorder struct {
	onPanic func(*errors.PanicError)
}

func (h *panicRecorder) HandleError(*errors.Error) {}

func (h *panicRecorder) HandlePanic(err *errors.PanicError) {
	if h.onPanic != nil {
		h.onPanic(err)
	}
}
