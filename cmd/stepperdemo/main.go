// Stepperdemo shows snapping steppers in an ebiten window.
//
// The primary stepper is configured from stepper.yaml in the directory given
// by -config (see package config); a vertical tube stepper sits next to it.
// Press the buttons to step, hold them to autorepeat, drag the thumb to scrub.
package main

import (
	"flag"
	"fmt"
	"log/slog"
	"os"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/go-drift/snapstep/pkg/animation"
	"github.com/go-drift/snapstep/pkg/config"
	"github.com/go-drift/snapstep/pkg/errors"
	"github.com/go-drift/snapstep/pkg/gestures"
	"github.com/go-drift/snapstep/pkg/graphics"
	"github.com/go-drift/snapstep/pkg/logging"
	"github.com/go-drift/snapstep/pkg/stepper"
)

const (
	windowTitle = "Snapping Stepper"
	screenW     = 480
	screenH     = 320
)

// demo is the ebiten.Game hosting the controls.
type demo struct {
	logger   *slog.Logger
	router   router
	touchIDs []ebiten.TouchID
}

func main() {
	configDir := flag.String("config", ".", "directory containing stepper.yaml")
	logLevel := flag.String("log-level", "", "log level override (error, warn, info, debug)")
	flag.Parse()

	resolved, err := config.Resolve(*configDir)
	if err != nil {
		errors.Report(&errors.Error{Op: "config.Resolve", Kind: errors.KindConfig, Err: err})
		os.Exit(1)
	}

	level := resolved.LogLevel
	if *logLevel != "" {
		if level, err = logging.ParseLevel(*logLevel); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(2)
		}
	}
	logger := logging.New(level, os.Stderr)
	slog.SetDefault(logger)
	errors.SetHandler(&errors.LogHandler{Logger: logger, Verbose: level == logging.LevelDebug})

	d := &demo{logger: logger}
	d.router.add(d.primary(resolved))
	d.router.add(d.vertical())

	ebiten.SetWindowTitle(windowTitle)
	ebiten.SetWindowSize(screenW, screenH)
	if err := ebiten.RunGame(d); err != nil {
		logger.Error("demo stopped", "error", err)
		os.Exit(1)
	}
	for _, c := range d.router.controls {
		c.stepper.Dispose()
	}
}

func (d *demo) primary(r *config.Resolved) *control {
	opts := r.Options()
	opts.Logger = d.logger
	if opts.Direction == stepper.Vertical {
		opts.Size = graphics.Size{Width: 40, Height: 200}
	} else {
		opts.Size = graphics.Size{Width: 200, Height: 40}
	}
	s := stepper.New(opts)
	s.SetThumbText(r.ThumbText)
	return d.attach("primary", graphics.Offset{X: 60, Y: 140}, s)
}

func (d *demo) vertical() *control {
	style := stepper.DefaultStyle()
	style.Background = graphics.RGB(0x34, 0x98, 0xdb)
	style.Shape = stepper.Shape(stepper.ShapeTube)
	style.ThumbShape = stepper.Shape(stepper.ShapeThumb)
	style.HintShape = stepper.Shape(stepper.ShapeNone)
	style.SymbolColor = graphics.ColorWhite

	cfg := stepper.DefaultConfig()
	cfg.MinimumValue, cfg.MaximumValue = -10, 10
	cfg.Wraps = true
	s := stepper.New(stepper.Options{
		Config:    cfg,
		Style:     &style,
		Size:      graphics.Size{Width: 40, Height: 200},
		Direction: stepper.Vertical,
		Logger:    d.logger,
	})
	return d.attach("wrapping", graphics.Offset{X: 360, Y: 60}, s)
}

func (d *demo) attach(name string, origin graphics.Offset, s *stepper.Stepper) *control {
	s.AddListener(func(v float64) {
		d.logger.Info("value changed", "stepper", name, "control", s.ID(), "value", v)
	})
	return &control{name: name, origin: origin, stepper: s}
}

// Update routes input to the control under the pointer and advances
// autorepeat and snap animations.
func (d *demo) Update() error {
	d.handleMouse()
	d.handleTouch()
	animation.StepTickers()
	return nil
}

func (d *demo) handleMouse() {
	mx, my := ebiten.CursorPosition()
	pos := graphics.Offset{X: float64(mx), Y: float64(my)}

	switch {
	case inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft):
		d.router.dispatch(mousePointer, pos, gestures.PointerPhaseDown)
	case inpututil.IsMouseButtonJustReleased(ebiten.MouseButtonLeft):
		d.router.dispatch(mousePointer, pos, gestures.PointerPhaseUp)
	case ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft):
		d.router.dispatch(mousePointer, pos, gestures.PointerPhaseMove)
	}
}

func (d *demo) handleTouch() {
	d.touchIDs = inpututil.AppendJustPressedTouchIDs(d.touchIDs[:0])
	for _, id := range d.touchIDs {
		x, y := ebiten.TouchPosition(id)
		d.router.dispatch(int64(id), graphics.Offset{X: float64(x), Y: float64(y)}, gestures.PointerPhaseDown)
	}
	if d.router.captured == nil || d.router.holds(mousePointer) {
		return
	}
	id := ebiten.TouchID(d.router.pointer)
	if inpututil.IsTouchJustReleased(id) {
		x, y := inpututil.TouchPositionInPreviousTick(id)
		d.router.dispatch(int64(id), graphics.Offset{X: float64(x), Y: float64(y)}, gestures.PointerPhaseUp)
		return
	}
	x, y := ebiten.TouchPosition(id)
	d.router.dispatch(int64(id), graphics.Offset{X: float64(x), Y: float64(y)}, gestures.PointerPhaseMove)
}

// Draw renders every control.
func (d *demo) Draw(screen *ebiten.Image) {
	screen.Fill(graphics.RGB(0xec, 0xf0, 0xf1))
	for _, c := range d.router.controls {
		drawStepper(screen, c.origin, c.stepper)
		label := fmt.Sprintf("%s: %s", c.name, c.stepper.DisplayText())
		b := c.bounds()
		ebitenutil.DebugPrintAt(screen, label, int(b.Left), int(b.Bottom)+8)
	}
	ebitenutil.DebugPrintAt(screen, "hold a button to repeat, drag the thumb to scrub", 8, 8)
}

// Layout implements ebiten.Game.
func (d *demo) Layout(_, _ int) (int, int) {
	return screenW, screenH
}
