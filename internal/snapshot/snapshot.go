// Package snapshot stores display frames as BMP files.
package snapshot

import (
	"errors"
	"image"
	"io"
	"os"
	"path/filepath"
	"strconv"

	"golang.org/x/image/bmp"
)

// Encode writes img as a BMP.
func Encode(w io.Writer, img image.Image) error {
	return bmp.Encode(w, img)
}

// decode reads a BMP and checks it has the expected size.
func decode(r io.Reader, w, h int) (image.Image, error) {
	img, err := bmp.Decode(r)
	if err != nil {
		return nil, err
	}
	b := img.Bounds()
	if b.Dx() != w || b.Dy() != h {
		return nil, errors.New("invalid frame size " + strconv.Itoa(b.Dx()) + "x" + strconv.Itoa(b.Dy()))
	}
	return img, nil
}

// Writer numbers frames and writes each to its own file in a directory.
type Writer struct {
	dir    string
	prefix string
	n      int
}

func NewWriter(dir, prefix string) (*Writer, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, errors.New("create frame dir: " + err.Error())
	}
	return &Writer{dir: dir, prefix: prefix}, nil
}

// Write stores img as the next numbered frame and returns its path.
func (fw *Writer) Write(img image.Image) (string, error) {
	name := fw.prefix + pad(fw.n, 4) + ".bmp"
	path := filepath.Join(fw.dir, name)
	f, err := os.Create(path)
	if err != nil {
		return "", err
	}
	if err := Encode(f, img); err != nil {
		_ = f.Close()
		return "", errors.New("encode " + name + ": " + err.Error())
	}
	if err := f.Close(); err != nil {
		return "", err
	}
	fw.n++
	return path, nil
}

// Count is how many frames have been written.
func (fw *Writer) Count() int { return fw.n }

func pad(n, width int) string {
	s := strconv.Itoa(n)
	for len(s) < width {
		s = "0" + s
	}
	return s
}
