package framebuf

import (
	"image"
	"image/color"
	"testing"
)

var on = color.RGBA{R: 0xFF, G: 0xFF, B: 0xFF, A: 0xFF}

func TestDisplayPublishesBackBuffer(t *testing.T) {
	b := New(16, 8)
	b.SetPixel(3, 2, on)
	if b.Lit(3, 2) {
		t.Fatal("pixel visible before Display")
	}
	if err := b.Display(); err != nil {
		t.Fatalf("Display: %v", err)
	}
	if !b.Lit(3, 2) {
		t.Fatal("pixel not visible after Display")
	}
	if got := b.LitCount(); got != 1 {
		t.Fatalf("LitCount=%d, want 1", got)
	}

	b.ClearBuffer()
	if !b.Lit(3, 2) {
		t.Fatal("ClearBuffer must not touch the visible frame")
	}
	_ = b.Display()
	if b.LitCount() != 0 || b.Pushes() != 2 {
		t.Fatalf("after clear+push: lit=%d pushes=%d", b.LitCount(), b.Pushes())
	}
}

func TestSetPixelClipsAndIgnoresBlack(t *testing.T) {
	b := New(4, 4)
	b.SetPixel(-1, 0, on)
	b.SetPixel(4, 4, on)
	b.SetPixel(1, 1, color.RGBA{A: 0xFF})
	_ = b.Display()
	if b.LitCount() != 0 {
		t.Fatalf("LitCount=%d, want 0", b.LitCount())
	}
}

func TestOnDisplayHook(t *testing.T) {
	b := New(4, 4)
	var got image.Image
	b.OnDisplay = func(f image.Image) error { got = f; return nil }
	b.SetPixel(0, 0, on)
	_ = b.Display()
	if got == nil {
		t.Fatal("hook not called")
	}
	if g := got.(*image.Gray).GrayAt(0, 0).Y; g != 0xFF {
		t.Fatalf("hook frame pixel = %#x", g)
	}
}
