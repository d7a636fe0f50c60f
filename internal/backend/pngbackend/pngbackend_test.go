package pngbackend

import (
	"fmt"
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"github.com/pfahlr/vis-avs-sub001/internal/framebuffer"
)

func TestPresentWritesSequentialPNGFiles(t *testing.T) {
	dir := t.TempDir()
	b, err := New(dir, "test_")
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	frame := framebuffer.NewFrame(8, 6)
	frame.Set(2, 2, 255, 0, 0, 255)

	for i := 0; i < 3; i++ {
		if err := b.Present(frame); err != nil {
			t.Fatalf("Present #%d: %v", i, err)
		}
	}

	for i := 0; i < 3; i++ {
		path := filepath.Join(dir, fmt.Sprintf("test_%06d.png", i))
		f, err := os.Open(path)
		if err != nil {
			t.Fatalf("expected output file %s: %v", path, err)
		}
		img, err := png.Decode(f)
		f.Close()
		if err != nil {
			t.Fatalf("decode %s: %v", path, err)
		}
		bounds := img.Bounds()
		if bounds.Dx() != 8 || bounds.Dy() != 6 {
			t.Fatalf("decoded image size = %dx%d, want 8x6", bounds.Dx(), bounds.Dy())
		}
	}
}
