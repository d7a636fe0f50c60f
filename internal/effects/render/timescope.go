package render

import (
	"github.com/pfahlr/vis-avs-sub001/internal/effect"
	"github.com/pfahlr/vis-avs-sub001/internal/effects/primitive"
	"github.com/pfahlr/vis-avs-sub001/internal/rendercontext"
)

// Timescope is a history-strip oscilloscope: each frame's waveform is
// drawn as one vertical column, columns scroll left each frame,
// producing a time-vs-amplitude waterfall (original_source
// effect_timescope.cpp, restored per SPEC_FULL §4.10).
type Timescope struct {
	Color int32
}

func NewTimescope() effect.Effect { return &Timescope{Color: 0x00FF00} }

func (t *Timescope) SetParams(p *effect.ParamBlock) error {
	t.Color = p.GetInt("color", t.Color)
	return nil
}

func (t *Timescope) Render(ctx *rendercontext.Context) bool {
	f := ctx.Framebuffer.Current
	w, h := f.Width, f.Height
	color := primitive.FromInt(t.Color, 255)

	// Scroll every column one pixel to the left.
	for y := 0; y < h; y++ {
		rowStart := y * w * 4
		copy(f.Pix[rowStart:rowStart+(w-1)*4], f.Pix[rowStart+4:rowStart+w*4])
	}

	// Draw the newest column at the rightmost pixel, one sample per row
	// mapped from the waveform.
	x := w - 1
	n := len(ctx.Waveform)
	for y := 0; y < h; y++ {
		idx := (y * n) / h
		amp := ctx.Waveform[idx]
		mid := h / 2
		dist := amp * float64(mid)
		if (y < mid && float64(mid-y) <= -dist) || (y >= mid && float64(y-mid) <= dist) {
			f.Set(x, y, color.R, color.G, color.B, color.A)
		} else {
			f.Set(x, y, 0, 0, 0, 255)
		}
	}
	return true
}
