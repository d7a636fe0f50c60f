// Package cpubackend implements the in-memory Framebuffer backend: it
// just keeps the most recently presented frame around for a caller
// (a test, a golden-hash harness) to inspect, the lightest-weight
// implementation of the backend.Backend contract.
package cpubackend

import "github.com/pfahlr/vis-avs-sub001/internal/framebuffer"

// Backend stores a copy of the last frame it was given.
type Backend struct {
	Last *framebuffer.Frame
}

func New() *Backend { return &Backend{} }

func (b *Backend) Present(frame *framebuffer.Frame) error {
	cp := framebuffer.NewFrame(frame.Width, frame.Height)
	copy(cp.Pix, frame.Pix)
	b.Last = cp
	return nil
}

func (b *Backend) Close() error { return nil }
