// Package stepper implements the value engine and interaction state machine
// of a snapping stepper: a control with decrement and increment buttons on
// either side of a draggable thumb that scrubs the value and springs back to
// center when released.
//
// # Components
//
//   - [ValueController] owns the value and its bounds, applies the clamp or
//     wrap policy, and decides when listeners hear about a change.
//   - [Interaction] turns press and drag gestures into value updates,
//     including the accelerating autorepeat while a press or drag is held.
//   - [Stepper] ties both to a [Layout], a [Style] and the host's pointer
//     events, and pushes a resolved [Theme] to the renderer.
//
// # Usage
//
//	s := stepper.New(stepper.Options{
//	    Config: stepper.DefaultConfig(),
//	    Size:   graphics.Size{Width: 200, Height: 40},
//	})
//	s.AddListener(func(v float64) { fmt.Println("value", v) })
//	defer s.Dispose()
//
//	// from the host's input layer, on the event thread
//	s.HandlePointer(event)
//
//	// once per frame
//	animation.StepTickers()
//
// Everything runs on the host's event thread. No type in this package is safe
// for concurrent use.
package stepper
