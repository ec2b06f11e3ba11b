package stepper

import (
	"testing"

	"github.com/go-drift/snapstep/pkg/errors"
)

func recordPanics(t *testing.T) *[]*errors.PanicError {
	t.Helper()
	var reported []*errors.PanicError
	old := errors.DefaultHandler
	errors.SetHandler(&panicRecorder{onPanic: func(p *errors.PanicError) { reported = append(reported, p) }})
	t.Cleanup(func() { errors.SetHandler(old) })
	return &reported
}

func TestAutorepeatPanicOnFirstTick(t *testing.T) {
	reported := recordPanics(t)
	sched := &fakeScheduler{}
	a := newAutorepeat(sched, 0, "ctl-1")

	a.start(0, func() { panic("tick failed") })

	if a.running() || sched.scheduled != 0 {
		t.Errorf("expected no timer after a failing first tick, scheduled %d", sched.scheduled)
	}
	if len(*reported) != 1 {
		t.Fatalf("expected 1 panic reported, got %d", len(*reported))
	}
	p := (*reported)[0]
	if p.Op != "stepper.autorepeat" || p.Kind != errors.KindScheduler || p.Control != "ctl-1" {
		t.Errorf("unexpected panic report %+v", p)
	}
}

func TestAutorepeatPanicStopsTimer(t *testing.T) {
	reported := recordPanics(t)
	sched := &fakeScheduler{}
	a := newAutorepeat(sched, 0, "ctl-2")

	calls := 0
	a.start(0, func() {
		calls++
		if calls == 2 {
			panic("tick failed")
		}
	})
	sched.fire(20)

	if calls != 2 {
		t.Errorf("expected ticks to stop at the failing one, got %d calls", calls)
	}
	if a.running() || sched.cancelled != 1 {
		t.Errorf("expected timer cancelled once, got %d", sched.cancelled)
	}
	if len(*reported) != 1 || (*reported)[0].Control != "ctl-2" {
		t.Errorf("unexpected panic reports %+v", *reported)
	}
}
