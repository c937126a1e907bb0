package joypanel

import (
	"errors"
	"image/color"
	"sync"

	"tinygo.org/x/tinydraw"
)

var white = color.RGBA{R: 0xFF, G: 0xFF, B: 0xFF, A: 0xFF}

// Rect is a rectangle in the display transport's argument order: top, left, width, height.
type Rect struct {
	Top, Left     int16
	Width, Height int16
	Filled        bool
}

// Frame is everything one render draws. It is built fresh on each call and never retained.
type Frame struct {
	Border     BorderStyle
	Outline    []Rect
	Indicator  Rect
	// XPos and YPos are the indicator's scaled position after edge correction, before truncation to pixels.
	XPos, YPos float32
}

// Compose builds the frame for a sample and border style. It touches no hardware.
func Compose(s JoystickSample, style BorderStyle) Frame {
	f := Frame{Border: style}
	switch style {
	case BorderDouble:
		f.Outline = []Rect{
			{Top: 3, Left: 3, Width: 120, Height: 60},
			{Top: 6, Left: 6, Width: 115, Height: 55},
		}
	default:
		f.Outline = []Rect{{Top: 0, Left: 0, Width: 127, Height: 60}}
	}

	x := float32(s.X) / scaleDenominator * spanX
	y := float32(s.Y) / scaleDenominator * spanY
	// keep the indicator off the border
	if x <= correctLimitX {
		x += correctOffset
	}
	if y <= correctLimitY {
		y += correctOffset
	}
	f.XPos, f.YPos = x, y

	// the transport takes (top, left), so the y coordinate goes first
	f.Indicator = Rect{Top: int16(y), Left: int16(x), Width: indicatorSize, Height: indicatorSize, Filled: true}
	return f
}

// Renderer pushes frames to the display. It is called from both the control loop and the button gate; the
// clear-draw-push sequence is serialized so neither caller can interleave with a half-drawn frame.
type Renderer struct {
	mu      sync.Mutex
	display Display
}

func newRenderer(d Display) *Renderer {
	return &Renderer{display: d}
}

// Render composes and pushes a frame, returning it for diagnostics.
func (r *Renderer) Render(s JoystickSample, style BorderStyle) (Frame, error) {
	f := Compose(s, style)
	return f, r.Push(f)
}

// Push clears the display buffer, draws f and sends it to the panel.
func (r *Renderer) Push(f Frame) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.display.ClearBuffer()
	for _, rc := range f.Outline {
		if err := r.draw(rc); err != nil {
			return errors.New("draw border: " + err.Error())
		}
	}
	if err := r.draw(f.Indicator); err != nil {
		return errors.New("draw indicator: " + err.Error())
	}
	if err := r.display.Display(); err != nil {
		return errors.New("push frame: " + err.Error())
	}
	return nil
}

// Clear blanks the panel.
func (r *Renderer) Clear() error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.display.ClearBuffer()
	return r.display.Display()
}

func (r *Renderer) draw(rc Rect) error {
	if rc.Filled {
		return tinydraw.FilledRectangle(r.display, rc.Left, rc.Top, rc.Width, rc.Height, white)
	}
	return tinydraw.Rectangle(r.display, rc.Left, rc.Top, rc.Width, rc.Height, white)
}
