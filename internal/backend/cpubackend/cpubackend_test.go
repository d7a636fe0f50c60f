package cpubackend

import (
	"testing"

	"github.com/pfahlr/vis-avs-sub001/internal/framebuffer"
)

func TestPresentCopiesFrame(t *testing.T) {
	b := New()
	frame := framebuffer.NewFrame(4, 4)
	frame.Set(0, 0, 10, 20, 30, 255)

	if err := b.Present(frame); err != nil {
		t.Fatalf("Present: %v", err)
	}
	if b.Last == nil {
		t.Fatalf("expected Last to be set")
	}
	r, g, bl, a := b.Last.At(0, 0)
	if r != 10 || g != 20 || bl != 30 || a != 255 {
		t.Fatalf("Last pixel = %d,%d,%d,%d", r, g, bl, a)
	}

	// Mutating the source frame afterward must not affect the copy.
	frame.Set(0, 0, 1, 1, 1, 1)
	r, _, _, _ = b.Last.At(0, 0)
	if r != 10 {
		t.Fatalf("Present did not deep-copy the frame")
	}
}

func TestCloseIsNoop(t *testing.T) {
	b := New()
	if err := b.Close(); err != nil {
		t.Fatalf("Close: %v", err)
	}
}
