package main

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font/basicfont"

	"github.com/go-drift/snapstep/pkg/graphics"
	"github.com/go-drift/snapstep/pkg/stepper"
)

var labelFace = text.NewGoXFace(basicfont.Face7x13)

// drawStepper paints s with its top-left corner at origin.
func drawStepper(dst *ebiten.Image, origin graphics.Offset, s *stepper.Stepper) {
	l := s.Layout()
	th := s.Theme()
	at := func(r graphics.Rect) graphics.Rect {
		return r.Translate(origin.X, origin.Y)
	}

	dec := at(l.DecrementFrame())
	inc := at(l.IncrementFrame())
	fillShape(dst, dec, stepper.Shape(stepper.ShapeBox), th.DecrementBackground)
	fillShape(dst, inc, stepper.Shape(stepper.ShapeBox), th.IncrementBackground)
	drawText(dst, "-", dec.Center(), th.SymbolColor)
	drawText(dst, "+", inc.Center(), th.SymbolColor)

	thumb := at(s.ThumbFrame())
	fillShape(dst, thumb, th.ThumbShape, th.ThumbBackground)
	strokeShape(dst, thumb, th.ThumbShape, th.ThumbBorderColor, th.ThumbBorderWidth)
	drawText(dst, s.ThumbText(), thumb.Center(), th.ThumbTextColor)

	strokeShape(dst, at(graphics.RectFromLTWH(0, 0, l.Size.Width, l.Size.Height)), th.Shape, th.BorderColor, th.BorderWidth)

	if th.ShowHint {
		hint := at(l.HintFrame())
		fillShape(dst, hint, th.HintShape, th.HintBackground)
		drawText(dst, s.HintText(), hint.Center(), th.ThumbTextColor)
	}
}

// fillShape fills r with the outline of shape. Rounded corners are drawn as
// two crossing rects and four corner circles.
func fillShape(dst *ebiten.Image, r graphics.Rect, shape stepper.ShapeStyle, c graphics.Color) {
	if c.Alpha() == 0 || r.IsEmpty() {
		return
	}
	r = shape.Bounds(r)
	x, y := float32(r.Left), float32(r.Top)
	w, h := float32(r.Width()), float32(r.Height())
	rad := float32(shape.CornerRadius(r.Size()))
	if rad <= 0 {
		vector.DrawFilledRect(dst, x, y, w, h, c, true)
		return
	}
	rad = min(rad, w/2, h/2)
	vector.DrawFilledRect(dst, x+rad, y, w-2*rad, h, c, true)
	vector.DrawFilledRect(dst, x, y+rad, w, h-2*rad, c, true)
	vector.DrawFilledCircle(dst, x+rad, y+rad, rad, c, true)
	vector.DrawFilledCircle(dst, x+w-rad, y+rad, rad, c, true)
	vector.DrawFilledCircle(dst, x+rad, y+h-rad, rad, c, true)
	vector.DrawFilledCircle(dst, x+w-rad, y+h-rad, rad, c, true)
}

// strokeShape outlines r. Rounded shapes are outlined by their bounding
// rect; the demo does not trace arcs.
func strokeShape(dst *ebiten.Image, r graphics.Rect, shape stepper.ShapeStyle, c graphics.Color, width float64) {
	if c.Alpha() == 0 || width <= 0 || shape.Kind == stepper.ShapeNone {
		return
	}
	r = shape.Bounds(r)
	vector.StrokeRect(dst, float32(r.Left), float32(r.Top), float32(r.Width()), float32(r.Height()), float32(width), c, true)
}

// drawText centers label on p.
func drawText(dst *ebiten.Image, label string, p graphics.Offset, c graphics.Color) {
	if label == "" {
		return
	}
	op := &text.DrawOptions{}
	op.PrimaryAlign = text.AlignCenter
	op.SecondaryAlign = text.AlignCenter
	op.GeoM.Translate(p.X, p.Y)
	op.ColorScale.ScaleWithColor(c)
	text.Draw(dst, label, labelFace, op)
}
