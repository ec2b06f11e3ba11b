package stepper

import (
	"log/slog"

	"github.com/google/uuid"

	"github.com/go-drift/snapstep/pkg/animation"
	"github.com/go-drift/snapstep/pkg/errors"
	"github.com/go-drift/snapstep/pkg/gestures"
	"github.com/go-drift/snapstep/pkg/graphics"
)

// Options configures a Stepper. Zero values select defaults.
type Options struct {
	// Config is the numeric configuration. The zero Config is a 0 to 0
	// stepper; start from DefaultConfig for the usual defaults.
	Config Config
	// Value is the initial value, clamped into range without notifying.
	Value float64
	// Style is the appearance. Nil means DefaultStyle.
	Style *Style

	Size            graphics.Size
	Direction       Direction
	ThumbWidthRatio float64

	// Scheduler drives autorepeat. Nil means animation.FrameScheduler.
	Scheduler Scheduler
	// Snap returns the thumb to rest after a drag. Nil means an
	// animation.Snap driven by the frame loop.
	Snap SnapAnimator
	// HitTest overrides the layout's hit testing.
	HitTest HitTestOracle

	Logger *slog.Logger
	// ID names the control in logs and error reports. Empty means a new UUID.
	ID string
}

// offsetter is implemented by snap animators that expose where the thumb is
// while settling, such as animation.Snap.
type offsetter interface {
	Offset() graphics.Offset
}

// Stepper is a complete snapping stepper: a [ValueController] driven by an
// [Interaction] over a [Layout], with a [Style] resolved into a [Theme] for
// the current interaction state.
//
// The host feeds pointer events to HandlePointer, steps the frame loop with
// animation.StepTickers, and redraws when a redraw listener fires.
type Stepper struct {
	id     string
	logger *slog.Logger

	values *ValueController
	inter  *Interaction
	layout Layout
	style  Style
	snap   SnapAnimator
	theme  Theme

	thumbText *string

	themeListeners  map[int]func(Theme)
	redrawListeners map[int]func()
	nextListenerID  int
	disposed        bool
}

// New creates a Stepper.
func New(opts Options) *Stepper {
	s := &Stepper{
		id:              opts.ID,
		logger:          opts.Logger,
		layout:          Layout{Size: opts.Size, Direction: opts.Direction, ThumbWidthRatio: opts.ThumbWidthRatio},
		themeListeners:  make(map[int]func(Theme)),
		redrawListeners: make(map[int]func()),
	}
	if s.id == "" {
		s.id = newControlID()
	}
	if s.logger == nil {
		s.logger = slog.Default()
	}
	if opts.Style != nil {
		s.style = *opts.Style
	} else {
		s.style = DefaultStyle()
	}

	s.values = NewValueController(opts.Config)
	s.values.SetLogger(s.logger, s.id)
	s.values.initValue(opts.Value)
	s.values.AddDisplayListener(func(float64) { s.redraw() })

	s.snap = opts.Snap
	if s.snap == nil {
		snap := animation.NewSnap()
		snap.OnUpdate = func(graphics.Offset) { s.redraw() }
		s.snap = snap
	}

	s.inter = NewInteraction(s.values, InteractionOptions{
		Layout:    s.layout,
		HitTest:   opts.HitTest,
		Scheduler: opts.Scheduler,
		Snap:      s.snap,
		OnChange:  s.interactionChanged,
		Logger:    s.logger,
		Control:   s.id,
	})
	s.theme = ResolveTheme(s.style, s.visual())
	s.logger.Debug("stepper created", "control", s.id, "value", s.values.Value(),
		"min", s.values.Minimum(), "max", s.values.Maximum(), "direction", s.layout.Direction)
	return s
}

func newControlID() string {
	id, err := uuid.NewV7()
	if err != nil {
		errors.Report(&errors.Error{
			Op:   "stepper.New",
			Kind: errors.KindUnknown,
			Err:  err,
		})
		return uuid.NewString()
	}
	return id.String()
}

// ID returns the control's id.
func (s *Stepper) ID() string { return s.id }

// Values returns the underlying value controller.
func (s *Stepper) Values() *ValueController { return s.values }

// Interaction returns the underlying gesture state machine.
func (s *Stepper) Interaction() *Interaction { return s.inter }

// Value returns the current value.
func (s *Stepper) Value() float64 { return s.values.Value() }

// SetValue sets the value as a finished update, notifying listeners if it
// changed.
func (s *Stepper) SetValue(v float64) { s.values.SetValue(v) }

// Config returns the numeric configuration.
func (s *Stepper) Config() Config { return s.values.Config() }

// SetConfig applies a new numeric configuration.
func (s *Stepper) SetConfig(cfg Config) { s.values.SetConfig(cfg) }

// SetMinimum sets the lower bound.
func (s *Stepper) SetMinimum(v float64) { s.values.SetMinimum(v) }

// SetMaximum sets the upper bound.
func (s *Stepper) SetMaximum(v float64) { s.values.SetMaximum(v) }

// SetStepValue sets the step.
func (s *Stepper) SetStepValue(v float64) { s.values.SetStepValue(v) }

// SetWraps sets the out-of-range policy.
func (s *Stepper) SetWraps(wraps bool) { s.values.SetWraps(wraps) }

// SetContinuous sets the notification policy.
func (s *Stepper) SetContinuous(continuous bool) { s.values.SetContinuous(continuous) }

// SetAutorepeat sets whether holding repeats.
func (s *Stepper) SetAutorepeat(autorepeat bool) { s.values.SetAutorepeat(autorepeat) }

// AddListener registers fn for value change notifications.
// Returns an unsubscribe function.
func (s *Stepper) AddListener(fn func(float64)) func() {
	return s.values.AddListener(fn)
}

// AddThemeListener registers fn to receive the theme whenever it changes.
// Returns an unsubscribe function.
func (s *Stepper) AddThemeListener(fn func(Theme)) func() {
	id := s.nextListenerID
	s.nextListenerID++
	s.themeListeners[id] = fn
	return func() {
		delete(s.themeListeners, id)
	}
}

// AddRedrawListener registers fn to be called whenever anything visible
// changes: the value, the theme or the thumb position.
// Returns an unsubscribe function.
func (s *Stepper) AddRedrawListener(fn func()) func() {
	id := s.nextListenerID
	s.nextListenerID++
	s.redrawListeners[id] = fn
	return func() {
		delete(s.redrawListeners, id)
	}
}

// HandlePointer routes a pointer event in the control's coordinates.
func (s *Stepper) HandlePointer(e gestures.PointerEvent) {
	if s.disposed {
		return
	}
	s.inter.HandlePointer(e)
}

// Layout returns the current geometry.
func (s *Stepper) Layout() Layout { return s.layout }

// SetSize resizes the control.
func (s *Stepper) SetSize(size graphics.Size) {
	s.layout.Size = size
	s.inter.SetLayout(s.layout)
	s.redraw()
}

// SetDirection switches between horizontal and vertical layout.
func (s *Stepper) SetDirection(d Direction) {
	s.layout.Direction = d
	s.inter.SetLayout(s.layout)
	s.redraw()
}

// Style returns the configured appearance.
func (s *Stepper) Style() Style { return s.style }

// SetStyle replaces the appearance.
func (s *Stepper) SetStyle(style Style) {
	s.style = style
	s.updateTheme()
	s.redraw()
}

// Theme returns the style resolved for the current interaction state.
func (s *Stepper) Theme() Theme { return s.theme }

// ThumbOffset returns the thumb's displacement from rest: the drag position
// while dragging, the settle animation's position otherwise.
func (s *Stepper) ThumbOffset() graphics.Offset {
	if s.inter.State() == StateDragging {
		return s.inter.ThumbOffset()
	}
	if o, ok := s.snap.(offsetter); ok {
		return o.Offset()
	}
	return graphics.Offset{}
}

// ThumbFrame returns the thumb's rect at its current position.
func (s *Stepper) ThumbFrame() graphics.Rect {
	return s.layout.ThumbFrame(s.ThumbOffset())
}

// DisplayText returns the value as the labels show it.
func (s *Stepper) DisplayText() string {
	return FormatValue(s.values.Value())
}

// ThumbText returns the thumb label: the override if one is set, otherwise
// the value.
func (s *Stepper) ThumbText() string {
	if s.thumbText != nil {
		return *s.thumbText
	}
	return s.DisplayText()
}

// SetThumbText overrides the thumb label. Nil restores the value; an empty
// string shows nothing.
func (s *Stepper) SetThumbText(text *string) {
	if text != nil {
		t := *text
		text = &t
	}
	s.thumbText = text
	s.redraw()
}

// HintText returns the hint label, which always shows the value.
func (s *Stepper) HintText() string {
	return s.DisplayText()
}

// Dispose stops timers and animations and drops every listener, including
// value listeners added through AddListener. The value is left as is and can
// still be set. A disposed Stepper ignores pointer events.
func (s *Stepper) Dispose() {
	if s.disposed {
		return
	}
	s.disposed = true
	s.inter.Dispose()
	s.values.removeListeners()
	s.themeListeners = make(map[int]func(Theme))
	s.redrawListeners = make(map[int]func())
	s.logger.Debug("stepper disposed", "control", s.id, "value", s.values.Value())
}

func (s *Stepper) visual() Visual {
	v := Visual{Dragging: s.inter.State() == StateDragging}
	if s.inter.State() == StatePressed {
		v.Pressed = s.inter.ActiveRegion()
	}
	return v
}

func (s *Stepper) interactionChanged() {
	s.updateTheme()
	s.redraw()
}

func (s *Stepper) updateTheme() {
	theme := ResolveTheme(s.style, s.visual())
	if theme == s.theme {
		return
	}
	s.theme = theme
	for _, fn := range s.themeListeners {
		s.callTheme(fn, theme)
	}
}

func (s *Stepper) callTheme(fn func(Theme), theme Theme) {
	defer errors.RecoverControl("stepper.theme", s.id)
	fn(theme)
}

func (s *Stepper) redraw() {
	for _, fn := range s.redrawListeners {
		s.callRedraw(fn)
	}
}

func (s *Stepper) callRedraw(fn func()) {
	defer errors.RecoverControl("stepper.redraw", s.id)
	fn()
}
