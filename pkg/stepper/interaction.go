package stepper

import (
	"log/slog"
	"time"

	"github.com/go-drift/snapstep/pkg/animation"
	"github.com/go-drift/snapstep/pkg/gestures"
	"github.com/go-drift/snapstep/pkg/graphics"
)

// InteractionState is the engagement state of an [Interaction].
//
//	        PressBegin                    DragBegin
//	Pressed ◄────────── Idle ──────────────────► Dragging
//	   │                 ▲  ▲                        │
//	   └─────────────────┘  └────────────────────────┘
//	        PressEnd             DragEnd / DragCancel
type InteractionState int

const (
	StateIdle InteractionState = iota
	StatePressed
	StateDragging
)

func (s InteractionState) String() string {
	switch s {
	case StatePressed:
		return "pressed"
	case StateDragging:
		return "dragging"
	default:
		return "idle"
	}
}

// SnapAnimator moves the thumb back to rest after a drag.
// Engage is called at drag end with the thumb's displacement; Disengage is
// called at drag begin so the drag owns the thumb again.
type SnapAnimator interface {
	Engage(from graphics.Offset)
	Disengage()
}

// InteractionOptions configures an Interaction. Zero values select defaults.
type InteractionOptions struct {
	// Layout provides drag geometry, and hit testing unless HitTest is set.
	Layout Layout
	// HitTest resolves pointer positions to regions. Nil means Layout.
	HitTest HitTestOracle
	// Scheduler drives autorepeat. Nil means animation.FrameScheduler.
	Scheduler Scheduler
	// RepeatInterval is the autorepeat period. Zero means RepeatInterval.
	RepeatInterval time.Duration
	// Snap returns the thumb to rest after a drag. Nil disables it.
	Snap SnapAnimator
	// OnChange is called whenever the engaged region, state or thumb
	// displacement changes.
	OnChange func()

	Logger  *slog.Logger
	Control string
}

// Interaction translates press and drag gestures into updates of a
// [ValueController].
//
// A press on a button steps the value once, or, with autorepeat, starts a
// timer that steps it on an accelerating schedule (see [RepeatEligible]).
// A drag of the thumb maps the thumb's displacement to a factor of the
// value range: without autorepeat the value follows the thumb relative to
// where the drag began; with autorepeat the factor is applied on every tick.
//
// Events that do not fit the current state are ignored.
type Interaction struct {
	values   *ValueController
	layout   Layout
	hitTest  HitTestOracle
	repeat   *autorepeat
	snap     SnapAnimator
	onChange func()

	logger  *slog.Logger
	control string

	state      InteractionState
	region     Region
	factor     float64
	repeating  bool
	dragOrigin graphics.Offset
	dragValue  float64
	thumb      graphics.Offset

	pointer     int64
	pointerDown graphics.Offset
}

// NewInteraction creates an idle interaction driving values.
func NewInteraction(values *ValueController, opts InteractionOptions) *Interaction {
	scheduler := opts.Scheduler
	if scheduler == nil {
		scheduler = animation.FrameScheduler{}
	}
	hitTest := opts.HitTest
	if hitTest == nil {
		hitTest = opts.Layout
	}
	logger := opts.Logger
	if logger == nil {
		logger = slog.Default()
	}
	return &Interaction{
		values:   values,
		layout:   opts.Layout,
		hitTest:  hitTest,
		repeat:   newAutorepeat(scheduler, opts.RepeatInterval, opts.Control),
		snap:     opts.Snap,
		onChange: opts.OnChange,
		logger:   logger,
		control:  opts.Control,
	}
}

// State returns the current engagement state.
func (i *Interaction) State() InteractionState { return i.state }

// ActiveRegion returns the region currently engaged. A press whose pointer
// has left both buttons reports RegionNone.
func (i *Interaction) ActiveRegion() Region { return i.region }

// Factor returns the signed multiple of the step applied per update.
func (i *Interaction) Factor() float64 { return i.factor }

// Repeating reports whether the autorepeat timer is running.
func (i *Interaction) Repeating() bool { return i.repeat.running() }

// ThumbOffset returns the thumb's displacement from rest during a drag.
func (i *Interaction) ThumbOffset() graphics.Offset { return i.thumb }

// SetLayout replaces the geometry used for hit testing and drags.
func (i *Interaction) SetLayout(l Layout) {
	if _, ok := i.hitTest.(Layout); ok {
		i.hitTest = l
	}
	i.layout = l
}

// PressBegin engages a step button. Other regions are ignored.
func (i *Interaction) PressBegin(region Region) {
	if i.state != StateIdle || !region.isButton() {
		return
	}
	i.state = StatePressed
	i.region = region
	i.factor = regionFactor(region)
	i.repeating = i.values.Autorepeat()
	i.logger.Debug("press began", "control", i.control, "region", region, "autorepeat", i.repeating)

	if i.repeating {
		i.repeat.start(0, i.tick)
	} else {
		v := i.values
		v.UpdateValue(v.Value()+v.StepValue()*i.factor, true)
	}
	i.changed()
}

// PressChanged reports the region now under the pointer of a press.
// Over a button the press follows it and autorepeat resumes if it had
// stopped; anywhere else autorepeat stops and the value is left alone.
func (i *Interaction) PressChanged(region Region) {
	if i.state != StatePressed {
		return
	}
	if region.isButton() {
		i.region = region
		i.factor = regionFactor(region)
		if i.repeating {
			i.repeat.start(0, i.tick)
		}
	} else {
		i.region = RegionNone
		i.repeat.stop()
	}
	i.changed()
}

// PressEnd releases a press. With autorepeat the value is flushed as a
// finished update so a non-continuous stepper reports it.
func (i *Interaction) PressEnd() {
	if i.state != StatePressed {
		return
	}
	i.repeat.stop()
	i.state = StateIdle
	i.region = RegionNone
	i.logger.Debug("press ended", "control", i.control, "value", i.values.Value())
	i.flush()
	i.changed()
}

// DragBegin engages the thumb. origin is the pointer translation already
// accumulated when the drag was recognized.
func (i *Interaction) DragBegin(origin graphics.Offset) {
	if i.state != StateIdle {
		return
	}
	if i.snap != nil {
		i.snap.Disengage()
	}
	i.state = StateDragging
	i.region = RegionThumb
	i.factor = 0
	i.dragOrigin = origin
	i.dragValue = i.values.Value()
	i.thumb, _ = i.layout.DragRatio(origin)
	i.repeating = i.values.Autorepeat()
	i.logger.Debug("drag began", "control", i.control, "value", i.dragValue, "autorepeat", i.repeating)

	if i.repeating {
		i.repeat.start(RepeatForever, i.tick)
	}
	i.changed()
}

// DragChanged moves the thumb by translation from where the drag began.
func (i *Interaction) DragChanged(translation graphics.Offset) {
	if i.state != StateDragging {
		return
	}
	thumb, ratio := i.layout.DragRatio(i.dragOrigin.Add(translation))
	i.thumb = thumb
	v := i.values
	i.factor = ((v.Maximum() - v.Minimum()) / 100) * ratio
	if !i.repeating {
		v.UpdateValue(i.dragValue+v.StepValue()*i.factor, true)
	}
	i.changed()
}

// DragEnd releases the thumb and lets it snap back.
func (i *Interaction) DragEnd() {
	i.endDrag("drag ended")
}

// DragCancel aborts a drag. The value reached so far is kept.
func (i *Interaction) DragCancel() {
	i.endDrag("drag cancelled")
}

func (i *Interaction) endDrag(msg string) {
	if i.state != StateDragging {
		return
	}
	i.repeat.stop()
	i.state = StateIdle
	i.region = RegionNone
	from := i.thumb
	i.thumb = graphics.Offset{}
	i.logger.Debug(msg, "control", i.control, "value", i.values.Value())
	if i.snap != nil {
		i.snap.Engage(from)
	}
	i.flush()
	i.changed()
}

// HandlePointer routes raw pointer events: a down on the thumb begins a
// drag, a down on a button begins a press, moves and ups drive the engaged
// gesture. Only the pointer that began the gesture is followed.
func (i *Interaction) HandlePointer(e gestures.PointerEvent) {
	if e.Phase == gestures.PointerPhaseDown {
		if i.state != StateIdle {
			return
		}
		i.pointer = e.PointerID
		i.pointerDown = e.Position
		switch region := i.hitTest.RegionAt(e.Position); {
		case region == RegionThumb:
			i.DragBegin(graphics.Offset{})
		case region.isButton():
			i.PressBegin(region)
		}
		return
	}
	if i.state == StateIdle || e.PointerID != i.pointer {
		return
	}
	switch e.Phase {
	case gestures.PointerPhaseMove:
		if i.state == StateDragging {
			i.DragChanged(e.Position.Sub(i.pointerDown))
		} else {
			i.PressChanged(i.hitTest.RegionAt(e.Position))
		}
	case gestures.PointerPhaseUp:
		if i.state == StateDragging {
			i.DragEnd()
		} else {
			i.PressEnd()
		}
	case gestures.PointerPhaseCancel:
		if i.state == StateDragging {
			i.DragCancel()
		} else {
			i.PressEnd()
		}
	}
}

// Dispose stops any timer and animation and returns to idle without
// touching the value.
func (i *Interaction) Dispose() {
	i.repeat.stop()
	if i.snap != nil {
		i.snap.Disengage()
	}
	i.state = StateIdle
	i.region = RegionNone
	i.factor = 0
	i.thumb = graphics.Offset{}
}

func (i *Interaction) tick() {
	v := i.values
	v.UpdateValue(v.Value()+v.StepValue()*i.factor, false)
}

func (i *Interaction) flush() {
	if !i.repeating {
		return
	}
	i.repeating = false
	i.factor = 0
	i.values.UpdateValue(i.values.Value(), true)
}

func (i *Interaction) changed() {
	if i.onChange != nil {
		i.onChange()
	}
}

func regionFactor(r Region) float64 {
	if r == RegionDecrement {
		return -1
	}
	return 1
}
