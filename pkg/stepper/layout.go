package stepper

import (
	"math"

	"github.com/go-drift/snapstep/pkg/graphics"
)

// Direction is the axis along which the stepper lays out its parts.
type Direction int

const (
	// Horizontal puts the decrement button on the left and increment on the right.
	Horizontal Direction = iota
	// Vertical puts the increment button on top and decrement at the bottom.
	Vertical
)

func (d Direction) String() string {
	if d == Vertical {
		return "vertical"
	}
	return "horizontal"
}

// Region is a hit-testable part of the control.
type Region int

const (
	RegionNone Region = iota
	RegionDecrement
	RegionIncrement
	RegionThumb
)

func (r Region) String() string {
	switch r {
	case RegionDecrement:
		return "decrement"
	case RegionIncrement:
		return "increment"
	case RegionThumb:
		return "thumb"
	default:
		return "none"
	}
}

// isButton reports whether r is one of the two step buttons.
func (r Region) isButton() bool {
	return r == RegionDecrement || r == RegionIncrement
}

// HitTestOracle maps a point in the control's coordinates to the region
// under it.
type HitTestOracle interface {
	RegionAt(p graphics.Offset) Region
}

// DefaultThumbWidthRatio is the share of the principal axis used by the thumb.
const DefaultThumbWidthRatio = 0.5

// dragResistance scales pointer travel into thumb travel.
const dragResistance = 0.4

// Layout is the geometry of a stepper: the two buttons share what the thumb
// leaves of the principal axis equally.
type Layout struct {
	Size      graphics.Size
	Direction Direction
	// ThumbWidthRatio is the thumb's share of the principal axis, in (0, 1].
	// Other values mean DefaultThumbWidthRatio.
	ThumbWidthRatio float64
}

func (l Layout) ratio() float64 {
	if l.ThumbWidthRatio <= 0 || l.ThumbWidthRatio > 1 || math.IsNaN(l.ThumbWidthRatio) {
		return DefaultThumbWidthRatio
	}
	return l.ThumbWidthRatio
}

// length returns the size along the principal axis.
func (l Layout) length() float64 {
	if l.Direction == Vertical {
		return l.Size.Height
	}
	return l.Size.Width
}

// cross returns the size across the principal axis.
func (l Layout) cross() float64 {
	if l.Direction == Vertical {
		return l.Size.Width
	}
	return l.Size.Height
}

// ThumbLength returns the thumb's extent along the principal axis.
func (l Layout) ThumbLength() float64 {
	return l.length() * l.ratio()
}

// segment builds a rect spanning [start, start+extent) along the principal axis.
func (l Layout) segment(start, extent float64) graphics.Rect {
	if l.Direction == Vertical {
		return graphics.RectFromLTWH(0, start, l.cross(), extent)
	}
	return graphics.RectFromLTWH(start, 0, extent, l.cross())
}

func (l Layout) buttonLength() float64 {
	return (l.length() - l.ThumbLength()) / 2
}

// DecrementFrame returns the decrement button's rect.
func (l Layout) DecrementFrame() graphics.Rect {
	bl := l.buttonLength()
	if l.Direction == Vertical {
		return l.segment(bl+l.ThumbLength(), bl)
	}
	return l.segment(0, bl)
}

// IncrementFrame returns the increment button's rect.
func (l Layout) IncrementFrame() graphics.Rect {
	bl := l.buttonLength()
	if l.Direction == Vertical {
		return l.segment(0, bl)
	}
	return l.segment(bl+l.ThumbLength(), bl)
}

// ThumbFrame returns the thumb's rect displaced by offset from rest.
func (l Layout) ThumbFrame(offset graphics.Offset) graphics.Rect {
	return l.segment(l.buttonLength(), l.ThumbLength()).Translate(offset.X, offset.Y)
}

// HintFrame returns the rect of the hint bubble shown above the thumb while
// dragging. It sits outside the control's bounds.
func (l Layout) HintFrame() graphics.Rect {
	thumb := l.ThumbFrame(graphics.Offset{})
	return graphics.RectFromLTWH(thumb.Left, -l.Size.Height*1.5, thumb.Width(), l.Size.Height)
}

// RegionAt implements HitTestOracle against the thumb's rest position.
func (l Layout) RegionAt(p graphics.Offset) Region {
	switch {
	case l.ThumbFrame(graphics.Offset{}).Contains(p):
		return RegionThumb
	case l.DecrementFrame().Contains(p):
		return RegionDecrement
	case l.IncrementFrame().Contains(p):
		return RegionIncrement
	default:
		return RegionNone
	}
}

// along returns the component of o on the principal axis.
func (l Layout) along(o graphics.Offset) float64 {
	if l.Direction == Vertical {
		return o.Y
	}
	return o.X
}

// offsetAlong builds an offset of d on the principal axis.
func (l Layout) offsetAlong(d float64) graphics.Offset {
	if l.Direction == Vertical {
		return graphics.Offset{Y: d}
	}
	return graphics.Offset{X: d}
}

// DragRatio converts a drag of the thumb into the thumb's displacement from
// rest and the signed value ratio in [-1, 1], truncated to tenths.
//
// Pointer travel is damped by dragResistance and the thumb is kept inside
// the track. The ratio is positive toward the increment button.
func (l Layout) DragRatio(translation graphics.Offset) (displacement graphics.Offset, ratio float64) {
	length := l.length()
	thumb := l.ThumbLength()
	mid := length / 2

	center := mid + l.along(translation)*dragResistance
	center = math.Max(thumb/2, math.Min(center, length-thumb/2))

	half := (length - thumb) / 2
	if half <= 0 {
		return graphics.Offset{}, 0
	}
	location := (center - mid) / half
	if l.Direction == Vertical {
		location = -location
	}
	return l.offsetAlong(center - mid), math.Trunc(location*10) / 10
}
