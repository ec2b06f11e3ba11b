package testing

import (
	"testing"
	"time"

	"github.com/go-drift/snapstep/pkg/animation"
)

func TestFakeClock_Advance(t *testing.T) {
	clk := NewFakeClock()
	start := clk.Now()

	clk.Advance(100 * time.Millisecond)
	elapsed := clk.Now().Sub(start)

	if elapsed != 100*time.Millisecond {
		t.Errorf("expected 100ms elapsed, got %v", elapsed)
	}
}

func TestFakeClock_Set(t *testing.T) {
	clk := NewFakeClock()
	target := time.Date(2025, 6, 15, 12, 0, 0, 0, time.UTC)

	clk.Set(target)
	if !clk.Now().Equal(target) {
		t.Errorf("expected %v, got %v", target, clk.Now())
	}
}

func TestFakeClock_Install(t *testing.T) {
	clk := NewFakeClock()
	restore := clk.Install()

	if !animation.Now().Equal(clk.Now()) {
		t.Errorf("expected animation clock %v, got %v", clk.Now(), animation.Now())
	}
	clk.Advance(time.Hour)
	if !animation.Now().Equal(clk.Now()) {
		t.Error("clock advancement not reflected")
	}

	restore()
	if animation.Now().Equal(clk.Now()) {
		t.Error("expected the previous clock after restore")
	}
}
