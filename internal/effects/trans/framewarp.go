// Package trans implements the transform/warp and stateful kernels:
// Blitter Feedback, Zoom/Rotate, Roto Blitter, Water, Water Bump,
// Colorfade, Channel Shift, Custom BPM, Multi-Delay, Mosaic, Scatter,
// Multiplier, Video Delay, Unique Tone, and the legacy single-purpose
// kernels in legacy.go (FadeOut, Mirror, Invert, Interleave, Bump).
// Effects that sample a previous frame embed a FrameWarp rather than
// inherit from it: a helper struct, not a base class.
package trans

import "github.com/pfahlr/vis-avs-sub001/internal/framebuffer"

// FrameWarp owns a history RGBA copy of the last rendered frame and the
// bilinear sampler every warp kernel resamples through: a "snapshot
// then sample" pattern shared by this package's feedback/zoom kernels,
// generalized here into one helper.
type FrameWarp struct {
	history       []byte
	width, height int
}

// Capture copies the current frame into the history buffer. Kernels
// call this once, before they start overwriting Current in place.
func (w *FrameWarp) Capture(f *framebuffer.Frame) {
	if w.width != f.Width || w.height != f.Height || len(w.history) != len(f.Pix) {
		w.history = make([]byte, len(f.Pix))
		w.width, w.height = f.Width, f.Height
	}
	copy(w.history, f.Pix)
}

// Ready reports whether Capture has been called for the current size.
func (w *FrameWarp) Ready() bool { return w.history != nil }

func wrapCoord(v float64, n int) float64 {
	fn := float64(n)
	v = v - fn*floor(v/fn)
	if v < 0 {
		v += fn
	}
	return v
}

func floor(v float64) float64 {
	i := int64(v)
	if v < 0 && float64(i) != v {
		i--
	}
	return float64(i)
}

func clampCoord(v float64, n int) float64 {
	if v < 0 {
		return 0
	}
	if v > float64(n-1) {
		return float64(n - 1)
	}
	return v
}

// SampleHistory bilinearly samples the history buffer at normalized
// coordinates (nx,ny) ∈ [-1,1]. wrap selects between edge-clamp and
// positive-mod addressing.
func (w *FrameWarp) SampleHistory(nx, ny float64, wrap bool) (r, g, b, a uint8) {
	if w.history == nil || w.width == 0 || w.height == 0 {
		return 0, 0, 0, 0
	}
	u := (nx + 1) / 2 * float64(w.width-1)
	v := (1 - (ny+1)/2) * float64(w.height-1)
	if wrap {
		u = wrapCoord(u, w.width)
		v = wrapCoord(v, w.height)
	} else {
		u = clampCoord(u, w.width)
		v = clampCoord(v, w.height)
	}

	x0 := int(u)
	y0 := int(v)
	x1 := x0 + 1
	y1 := y0 + 1
	if wrap {
		x1 %= w.width
		y1 %= w.height
	} else {
		if x1 > w.width-1 {
			x1 = w.width - 1
		}
		if y1 > w.height-1 {
			y1 = w.height - 1
		}
	}
	fx := u - float64(x0)
	fy := v - float64(y0)

	c00 := w.at(x0, y0)
	c10 := w.at(x1, y0)
	c01 := w.at(x0, y1)
	c11 := w.at(x1, y1)

	lerp := func(a, b float64, t float64) float64 { return a + (b-a)*t }
	mix := func(i int) uint8 {
		top := lerp(float64(c00[i]), float64(c10[i]), fx)
		bot := lerp(float64(c01[i]), float64(c11[i]), fx)
		return uint8(lerp(top, bot, fy) + 0.5)
	}
	return mix(0), mix(1), mix(2), mix(3)
}

func (w *FrameWarp) at(x, y int) [4]uint8 {
	i := (y*w.width + x) * 4
	return [4]uint8{w.history[i], w.history[i+1], w.history[i+2], w.history[i+3]}
}
