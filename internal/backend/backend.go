// Package backend defines the Framebuffer backend API: a small
// contract a presentation surface implements to consume frames the
// Offscreen Driver produces, with three concrete implementations
// under cpubackend, pngbackend, and sdlbackend.
package backend

import "github.com/pfahlr/vis-avs-sub001/internal/framebuffer"

// Backend receives one rendered frame at a time. Present is called
// once per driver frame; Close releases any OS resources (a window, a
// file handle) the backend opened.
type Backend interface {
	Present(frame *framebuffer.Frame) error
	Close() error
}
