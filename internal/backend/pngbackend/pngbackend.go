// Package pngbackend implements the PNG-sequence Framebuffer backend:
// every Present call writes the frame to "<prefix><index>.png" in an
// output directory, using the standard image/image/color/image/png
// packages.
package pngbackend

import (
	"fmt"
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"

	"github.com/pfahlr/vis-avs-sub001/internal/framebuffer"
)

// Backend writes each presented frame as a sequentially numbered PNG
// file under Dir.
type Backend struct {
	Dir    string
	Prefix string

	index int
}

// New ensures Dir exists and returns a backend that writes
// "<prefix>%06d.png" files into it.
func New(dir, prefix string) (*Backend, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("pngbackend: %w", err)
	}
	if prefix == "" {
		prefix = "frame_"
	}
	return &Backend{Dir: dir, Prefix: prefix}, nil
}

func (b *Backend) Present(frame *framebuffer.Frame) error {
	img := image.NewNRGBA(image.Rect(0, 0, frame.Width, frame.Height))
	for y := 0; y < frame.Height; y++ {
		for x := 0; x < frame.Width; x++ {
			r, g, bl, a := frame.At(x, y)
			img.SetNRGBA(x, y, color.NRGBA{R: r, G: g, B: bl, A: a})
		}
	}
	path := filepath.Join(b.Dir, fmt.Sprintf("%s%06d.png", b.Prefix, b.index))
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("pngbackend: create %s: %w", path, err)
	}
	defer f.Close()
	if err := png.Encode(f, img); err != nil {
		return fmt.Errorf("pngbackend: encode %s: %w", path, err)
	}
	b.index++
	return nil
}

func (b *Backend) Close() error { return nil }
