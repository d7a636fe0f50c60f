// Package sdlbackend implements the window Framebuffer backend on top
// of github.com/veandco/go-sdl2, uploading each rendered frame as a
// streaming texture to an SDL2 renderer.
package sdlbackend

import (
	"fmt"
	"unsafe"

	"github.com/veandco/go-sdl2/sdl"

	"github.com/pfahlr/vis-avs-sub001/internal/framebuffer"
)

// Backend owns an SDL window sized to the frame dimensions times
// Scale, a renderer, and a streaming ABGR8888 texture (R,G,B,A byte
// order on little-endian hosts) sized to the frame dimensions.
type Backend struct {
	window   *sdl.Window
	renderer *sdl.Renderer
	texture  *sdl.Texture

	width, height, scale int
}

// New initializes SDL's video subsystem and opens a window titled
// title sized width*scale x height*scale.
func New(title string, width, height, scale int) (*Backend, error) {
	if scale < 1 {
		scale = 1
	}
	if err := sdl.Init(sdl.INIT_VIDEO); err != nil {
		return nil, fmt.Errorf("sdlbackend: init: %w", err)
	}
	window, err := sdl.CreateWindow(title, sdl.WINDOWPOS_CENTERED, sdl.WINDOWPOS_CENTERED,
		int32(width*scale), int32(height*scale), sdl.WINDOW_SHOWN)
	if err != nil {
		sdl.Quit()
		return nil, fmt.Errorf("sdlbackend: create window: %w", err)
	}
	renderer, err := sdl.CreateRenderer(window, -1, sdl.RENDERER_ACCELERATED|sdl.RENDERER_PRESENTVSYNC)
	if err != nil {
		window.Destroy()
		sdl.Quit()
		return nil, fmt.Errorf("sdlbackend: create renderer: %w", err)
	}
	texture, err := renderer.CreateTexture(sdl.PIXELFORMAT_ABGR8888, sdl.TEXTUREACCESS_STREAMING,
		int32(width), int32(height))
	if err != nil {
		renderer.Destroy()
		window.Destroy()
		sdl.Quit()
		return nil, fmt.Errorf("sdlbackend: create texture: %w", err)
	}
	return &Backend{window: window, renderer: renderer, texture: texture, width: width, height: height, scale: scale}, nil
}

// Present uploads frame's pixels (R,G,B,A bytes, framebuffer.Frame's
// layout) into the streaming texture and draws it
// scaled to fill the window.
func (b *Backend) Present(frame *framebuffer.Frame) error {
	if frame.Width != b.width || frame.Height != b.height {
		return fmt.Errorf("sdlbackend: frame size %dx%d does not match backend %dx%d",
			frame.Width, frame.Height, b.width, b.height)
	}
	pitch := frame.Width * 4
	if err := b.texture.Update(nil, unsafe.Pointer(&frame.Pix[0]), pitch); err != nil {
		return fmt.Errorf("sdlbackend: update texture: %w", err)
	}
	b.renderer.Clear()
	dst := &sdl.Rect{X: 0, Y: 0, W: int32(b.width * b.scale), H: int32(b.height * b.scale)}
	if err := b.renderer.Copy(b.texture, nil, dst); err != nil {
		return fmt.Errorf("sdlbackend: copy: %w", err)
	}
	b.renderer.Present()
	return nil
}

// PollQuit drains the SDL event queue and reports whether a quit event
// (window close, Escape) was seen.
func (b *Backend) PollQuit() bool {
	for event := sdl.PollEvent(); event != nil; event = sdl.PollEvent() {
		switch e := event.(type) {
		case *sdl.QuitEvent:
			return true
		case *sdl.KeyboardEvent:
			if e.Keysym.Sym == sdl.K_ESCAPE && e.State == sdl.PRESSED {
				return true
			}
		}
	}
	return false
}

func (b *Backend) Close() error {
	b.texture.Destroy()
	b.renderer.Destroy()
	b.window.Destroy()
	sdl.Quit()
	return nil
}
