package animation

import (
	"time"

	"github.com/go-drift/snapstep/pkg/graphics"
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

// DefaultSnapDuration is how long a released thumb takes to settle.
const DefaultSnapDuration = 300 * time.Millisecond

// Snap springs a displaced thumb back to its rest position.
//
// Engage starts a pair of tweens from the given displacement toward zero,
// advanced by a frame [Ticker]. Disengage freezes the thumb where it is so a
// new drag can take over. Offset always reports the current displacement.
type Snap struct {
	// Duration of the settle animation. Zero means DefaultSnapDuration.
	Duration time.Duration
	// Ease shapes the motion. Nil means ease.OutBack.
	Ease ease.TweenFunc
	// OnUpdate, if set, receives every new displacement.
	OnUpdate func(graphics.Offset)

	offset graphics.Offset
	tweenX *gween.Tween
	tweenY *gween.Tween
	ticker *Ticker
	last   time.Duration
}

// NewSnap returns a Snap with default duration and easing.
func NewSnap() *Snap {
	return &Snap{}
}

// Engage starts animating from the displacement from back to zero.
func (s *Snap) Engage(from graphics.Offset) {
	s.Disengage()
	s.offset = from
	if from == (graphics.Offset{}) {
		return
	}
	d := s.Duration
	if d <= 0 {
		d = DefaultSnapDuration
	}
	fn := s.Ease
	if fn == nil {
		fn = ease.OutBack
	}
	secs := float32(d.Seconds())
	s.tweenX = gween.New(float32(from.X), 0, secs, fn)
	s.tweenY = gween.New(float32(from.Y), 0, secs, fn)
	s.last = 0
	s.ticker = NewTicker(s.tick)
	s.ticker.Start()
}

// Disengage stops any running settle animation, leaving Offset unchanged.
func (s *Snap) Disengage() {
	if s.ticker != nil {
		s.ticker.Stop()
		s.ticker = nil
	}
	s.tweenX, s.tweenY = nil, nil
}

// IsSettling reports whether the settle animation is running.
func (s *Snap) IsSettling() bool {
	return s.ticker != nil && s.ticker.IsActive()
}

// Offset returns the current displacement from the rest position.
func (s *Snap) Offset() graphics.Offset {
	return s.offset
}

// SetOffset moves the thumb directly, as a drag does.
func (s *Snap) SetOffset(o graphics.Offset) {
	s.offset = o
	s.notify()
}

func (s *Snap) tick(elapsed time.Duration) {
	if s.tweenX == nil || s.tweenY == nil {
		return
	}
	dt := float32((elapsed - s.last).Seconds())
	s.last = elapsed
	x, doneX := s.tweenX.Update(dt)
	y, doneY := s.tweenY.Update(dt)
	s.offset = graphics.Offset{X: float64(x), Y: float64(y)}
	if doneX && doneY {
		s.offset = graphics.Offset{}
		s.Disengage()
	}
	s.notify()
}

func (s *Snap) notify() {
	if s.OnUpdate != nil {
		s.OnUpdate(s.offset)
	}
}
