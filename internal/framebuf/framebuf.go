// Package framebuf is a host-side monochrome display: it keeps a draw buffer and the last frame pushed from it,
// so frames can be inspected in tests or dumped by the simulator.
package framebuf

import (
	"image"
	"image/color"
	"sync"
)

// Buffer implements drivers.Displayer on top of two grayscale images.
type Buffer struct {
	mu     sync.Mutex
	back   *image.Gray
	front  *image.Gray
	pushes int

	// OnDisplay, if set, is called with the pushed frame after every Display. The image must not be retained.
	OnDisplay func(frame image.Image) error
}

func New(w, h int16) *Buffer {
	r := image.Rect(0, 0, int(w), int(h))
	return &Buffer{
		back:  image.NewGray(r),
		front: image.NewGray(r),
	}
}

func (b *Buffer) Size() (x, y int16) {
	s := b.back.Bounds().Size()
	return int16(s.X), int16(s.Y)
}

// SetPixel lights the pixel if c is not fully dark. Off-screen pixels are clipped.
func (b *Buffer) SetPixel(x, y int16, c color.RGBA) {
	b.mu.Lock()
	defer b.mu.Unlock()
	if !(image.Point{X: int(x), Y: int(y)}.In(b.back.Bounds())) {
		return
	}
	v := uint8(0)
	if c.R|c.G|c.B != 0 {
		v = 0xFF
	}
	b.back.SetGray(int(x), int(y), color.Gray{Y: v})
}

func (b *Buffer) ClearBuffer() {
	b.mu.Lock()
	defer b.mu.Unlock()
	clear(b.back.Pix)
}

// Display copies the draw buffer to the visible frame.
func (b *Buffer) Display() error {
	b.mu.Lock()
	copy(b.front.Pix, b.back.Pix)
	b.pushes++
	hook := b.OnDisplay
	var snap image.Image
	if hook != nil {
		snap = b.snapshot()
	}
	b.mu.Unlock()

	if hook != nil {
		return hook(snap)
	}
	return nil
}

// Lit reports whether the pixel is on in the last pushed frame.
func (b *Buffer) Lit(x, y int) bool {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.front.GrayAt(x, y).Y != 0
}

// LitCount is the number of pixels on in the last pushed frame.
func (b *Buffer) LitCount() int {
	b.mu.Lock()
	defer b.mu.Unlock()
	n := 0
	for _, p := range b.front.Pix {
		if p != 0 {
			n++
		}
	}
	return n
}

// Pushes is how many times Display has been called.
func (b *Buffer) Pushes() int {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.pushes
}

// Frame returns a copy of the last pushed frame.
func (b *Buffer) Frame() image.Image {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.snapshot()
}

func (b *Buffer) snapshot() *image.Gray {
	img := image.NewGray(b.front.Bounds())
	copy(img.Pix, b.front.Pix)
	return img
}
