package stepper

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/go-drift/snapstep/pkg/graphics"
)

// ShapeKind selects the outline of a stepper part.
type ShapeKind int

const (
	// ShapeNone draws no outline. As a hint shape it hides the hint.
	ShapeNone ShapeKind = iota
	// ShapeBox is a plain rectangle.
	ShapeBox
	// ShapeRounded rounds corners by a fifth of the shorter side.
	ShapeRounded
	// ShapeRoundedFixed rounds corners by a fixed radius.
	ShapeRoundedFixed
	// ShapeThumb is a circle centered horizontally in the bounds.
	ShapeThumb
	// ShapeTube rounds corners by half the shorter side.
	ShapeTube
)

var shapeNames = [...]string{
	ShapeNone:         "none",
	ShapeBox:          "box",
	ShapeRounded:      "rounded",
	ShapeRoundedFixed: "rounded-fixed",
	ShapeThumb:        "thumb",
	ShapeTube:         "tube",
}

func (k ShapeKind) String() string {
	if k < 0 || int(k) >= len(shapeNames) {
		return "unknown"
	}
	return shapeNames[k]
}

// ShapeStyle is a shape kind plus the radius used by ShapeRoundedFixed.
type ShapeStyle struct {
	Kind   ShapeKind
	Radius float64
}

// Shape returns the style for kind.
func Shape(kind ShapeKind) ShapeStyle {
	return ShapeStyle{Kind: kind}
}

// RoundedFixed returns a rounded style with a fixed corner radius.
func RoundedFixed(radius float64) ShapeStyle {
	return ShapeStyle{Kind: ShapeRoundedFixed, Radius: radius}
}

// ParseShape parses a shape name. A fixed radius is written after a colon,
// as in "rounded-fixed:6".
func ParseShape(s string) (ShapeStyle, error) {
	name, arg, hasArg := strings.Cut(strings.ToLower(strings.TrimSpace(s)), ":")
	if name == "" {
		return Shape(ShapeBox), nil
	}
	for k, n := range shapeNames {
		if n != name {
			continue
		}
		kind := ShapeKind(k)
		if kind != ShapeRoundedFixed {
			if hasArg {
				return ShapeStyle{}, fmt.Errorf("shape %q takes no radius", name)
			}
			return Shape(kind), nil
		}
		if !hasArg {
			return ShapeStyle{}, fmt.Errorf("shape %q needs a radius", name)
		}
		r, err := strconv.ParseFloat(arg, 64)
		if err != nil || r < 0 || math.IsNaN(r) || math.IsInf(r, 0) {
			return ShapeStyle{}, fmt.Errorf("invalid radius %q", arg)
		}
		return RoundedFixed(r), nil
	}
	return ShapeStyle{}, fmt.Errorf("unknown shape %q", s)
}

func (s ShapeStyle) String() string {
	if s.Kind == ShapeRoundedFixed {
		return s.Kind.String() + ":" + strconv.FormatFloat(s.Radius, 'g', -1, 64)
	}
	return s.Kind.String()
}

// CornerRadius returns the corner radius of the shape drawn in a box of size.
func (s ShapeStyle) CornerRadius(size graphics.Size) float64 {
	short := math.Min(size.Width, size.Height)
	switch s.Kind {
	case ShapeRounded:
		return math.Max(1, short*0.2)
	case ShapeRoundedFixed:
		return s.Radius
	case ShapeThumb:
		return short / 2
	case ShapeTube:
		return math.Max(1, short*0.5)
	default:
		return 0
	}
}

// Bounds returns the rect the shape occupies inside r. Only ShapeThumb
// differs from r: it is a square on the shorter side, centered horizontally.
func (s ShapeStyle) Bounds(r graphics.Rect) graphics.Rect {
	if s.Kind != ShapeThumb {
		return r
	}
	side := math.Min(r.Width(), r.Height())
	return graphics.RectFromLTWH(r.Left+(r.Width()-side)/2, r.Top, side, side)
}

// Style is the configurable appearance of a stepper.
type Style struct {
	Background graphics.Color
	// ThumbBackground of zero means a lighter Background.
	ThumbBackground graphics.Color
	SymbolColor     graphics.Color
	ThumbTextColor  graphics.Color
	// BorderColor of zero draws no border.
	BorderColor      graphics.Color
	ThumbBorderColor graphics.Color
	BorderWidth      float64
	ThumbBorderWidth float64

	Shape      ShapeStyle
	ThumbShape ShapeStyle
	// HintShape of ShapeNone disables the hint shown while dragging.
	HintShape ShapeStyle
}

// DefaultStyle returns boxes with black symbols on a teal background and no
// hint.
func DefaultStyle() Style {
	return Style{
		Background:       graphics.RGB(0xB2, 0xDF, 0xDB),
		SymbolColor:      graphics.ColorBlack,
		ThumbTextColor:   graphics.ColorBlack,
		BorderWidth:      1,
		ThumbBorderWidth: 1,
		Shape:            Shape(ShapeBox),
		ThumbShape:       Shape(ShapeBox),
		HintShape:        Shape(ShapeNone),
	}
}

// Visual is the interaction state that affects appearance.
type Visual struct {
	// Pressed is the button held down, or RegionNone.
	Pressed  Region
	Dragging bool
}

// Theme is a Style resolved against a Visual: every color a renderer needs
// for the current frame.
type Theme struct {
	Background          graphics.Color
	DecrementBackground graphics.Color
	IncrementBackground graphics.Color
	ThumbBackground     graphics.Color
	HintBackground      graphics.Color
	SymbolColor         graphics.Color
	ThumbTextColor      graphics.Color
	BorderColor         graphics.Color
	ThumbBorderColor    graphics.Color
	BorderWidth         float64
	ThumbBorderWidth    float64

	Shape      ShapeStyle
	ThumbShape ShapeStyle
	HintShape  ShapeStyle
	ShowHint   bool
}

// ResolveTheme derives the colors for the given visual state. A pressed
// button darkens; a dragged thumb and its hint lighten.
func ResolveTheme(s Style, v Visual) Theme {
	thumb := s.ThumbBackground
	if thumb == 0 {
		thumb = s.Background.Lighter()
	}
	t := Theme{
		Background:          s.Background,
		DecrementBackground: s.Background,
		IncrementBackground: s.Background,
		ThumbBackground:     thumb,
		HintBackground:      thumb,
		SymbolColor:         s.SymbolColor,
		ThumbTextColor:      s.ThumbTextColor,
		BorderColor:         s.BorderColor,
		ThumbBorderColor:    s.ThumbBorderColor,
		BorderWidth:         s.BorderWidth,
		ThumbBorderWidth:    s.ThumbBorderWidth,
		Shape:               s.Shape,
		ThumbShape:          s.ThumbShape,
		HintShape:           s.HintShape,
	}
	switch v.Pressed {
	case RegionDecrement:
		t.DecrementBackground = s.Background.Darker()
	case RegionIncrement:
		t.IncrementBackground = s.Background.Darker()
	}
	if v.Dragging {
		t.ThumbBackground = thumb.Lighter()
		t.HintBackground = thumb.Lighter()
		t.ShowHint = s.HintShape.Kind != ShapeNone
	}
	return t
}
