// Package gestures defines the pointer events delivered by a host's input
// layer to interactive controls.
package gestures

import "github.com/go-drift/snapstep/pkg/graphics"

// PointerPhase is the lifecycle phase of a pointer event.
type PointerPhase int

const (
	// PointerPhaseDown is sent when a pointer makes contact.
	PointerPhaseDown PointerPhase = iota
	// PointerPhaseMove is sent while a pointer in contact moves.
	PointerPhaseMove
	// PointerPhaseUp is sent when the pointer is lifted.
	PointerPhaseUp
	// PointerPhaseCancel is sent when the platform aborts the sequence.
	PointerPhaseCancel
)

func (p PointerPhase) String() string {
	switch p {
	case PointerPhaseDown:
		return "down"
	case PointerPhaseMove:
		return "move"
	case PointerPhaseUp:
		return "up"
	case PointerPhaseCancel:
		return "cancel"
	default:
		return "unknown"
	}
}

// PointerEvent is a single pointer sample in the control's local coordinates.
type PointerEvent struct {
	PointerID int64
	Position  graphics.Offset
	Phase     PointerPhase
}
