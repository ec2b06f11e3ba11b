package main

import (
	"github.com/go-drift/snapstep/pkg/gestures"
	"github.com/go-drift/snapstep/pkg/graphics"
	"github.com/go-drift/snapstep/pkg/stepper"
)

// mousePointer is the pointer id of the mouse. Touch ids are never negative.
const mousePointer int64 = -1

// control is a stepper placed on screen.
type control struct {
	name    string
	origin  graphics.Offset
	stepper *stepper.Stepper
}

func (c *control) bounds() graphics.Rect {
	size := c.stepper.Layout().Size
	return graphics.RectFromLTWH(c.origin.X, c.origin.Y, size.Width, size.Height)
}

func (c *control) local(p graphics.Offset) graphics.Offset {
	return p.Sub(c.origin)
}

// router hands screen pointer events to controls. The control under a down
// event captures that pointer until it goes up or is cancelled; events from
// any other pointer are dropped while the capture lasts.
type router struct {
	controls []*control
	captured *control
	pointer  int64
}

func (r *router) add(c *control) {
	r.controls = append(r.controls, c)
}

// dispatch routes one event in screen coordinates.
func (r *router) dispatch(id int64, pos graphics.Offset, phase gestures.PointerPhase) {
	if phase == gestures.PointerPhaseDown {
		r.capture(id, pos)
		return
	}
	if r.captured == nil || id != r.pointer {
		return
	}
	c := r.captured
	if phase == gestures.PointerPhaseUp || phase == gestures.PointerPhaseCancel {
		r.captured = nil
	}
	c.send(id, pos, phase)
}

func (r *router) capture(id int64, pos graphics.Offset) {
	if r.captured != nil {
		return
	}
	for _, c := range r.controls {
		if c.bounds().Contains(pos) {
			r.captured, r.pointer = c, id
			c.send(id, pos, gestures.PointerPhaseDown)
			return
		}
	}
}

// holds reports whether id is the pointer currently captured.
func (r *router) holds(id int64) bool {
	return r.captured != nil && r.pointer == id
}

func (c *control) send(id int64, pos graphics.Offset, phase gestures.PointerPhase) {
	c.stepper.HandlePointer(gestures.PointerEvent{
		PointerID: id,
		Position:  c.local(pos),
		Phase:     phase,
	})
}
