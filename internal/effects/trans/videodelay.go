package trans

import (
	"github.com/pfahlr/vis-avs-sub001/internal/effect"
	"github.com/pfahlr/vis-avs-sub001/internal/rendercontext"
)

// VideoDelay is an N-frame ring buffer of whole frames, distinct from
// MultiDelay's per-slot design: every frame is pushed and the oldest
// is always popped out, so output always lags input by exactly
// Frames frames (original_source effect_video_delay.cpp).
type VideoDelay struct {
	Frames int

	ring []([]byte)
	pos  int
	w, h int
}

func NewVideoDelay() effect.Effect { return &VideoDelay{Frames: 16} }

func (v *VideoDelay) SetParams(p *effect.ParamBlock) error {
	n := p.GetInt("frames", int32(v.Frames))
	if n < 1 {
		n = 1
	}
	v.Frames = int(n)
	return nil
}

func (v *VideoDelay) Render(ctx *rendercontext.Context) bool {
	f := ctx.Framebuffer.Current
	if v.w != f.Width || v.h != f.Height || len(v.ring) != v.Frames {
		v.ring = make([][]byte, v.Frames)
		v.pos = 0
		v.w, v.h = f.Width, f.Height
	}

	out := v.ring[v.pos]
	buf := make([]byte, len(f.Pix))
	copy(buf, f.Pix)
	v.ring[v.pos] = buf
	v.pos = (v.pos + 1) % v.Frames

	if out != nil && len(out) == len(f.Pix) {
		copy(f.Pix, out)
	} else {
		for i := range f.Pix {
			f.Pix[i] = 0
		}
	}
	return true
}
