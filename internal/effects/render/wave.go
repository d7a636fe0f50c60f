// Package render implements the audio-reactive drawing kernels:
// waveform/spectrum overlays, polar primitives (Ring, Bass Spin,
// Rotating Stars, Oscilloscope Star), particle/dot renderers
// (DotPlane, DotFountain, DotGrid, MovingParticle, StarField), and
// text overlays (LevelText, BandText, TextEffect), each grounded on
// original_source's effect_wave.cpp, effect_ring.cpp,
// effect_bass_spin.cpp and siblings.
package render

import (
	"github.com/pfahlr/vis-avs-sub001/internal/effect"
	"github.com/pfahlr/vis-avs-sub001/internal/effects/primitive"
	"github.com/pfahlr/vis-avs-sub001/internal/framebuffer"
	"github.com/pfahlr/vis-avs-sub001/internal/rendercontext"
)

// Wave draws the analyzer waveform as a polyline across the frame.
type Wave struct {
	Gain  float32
	Damp  bool
	Color int32
}

// NewWave returns a Wave with the reference defaults (unit gain, no
// damping, white stroke).
func NewWave() effect.Effect {
	return &Wave{Gain: 1, Color: 0xFFFFFF}
}

func (w *Wave) SetParams(p *effect.ParamBlock) error {
	w.Gain = p.GetFloat("gain", w.Gain)
	w.Damp = p.GetBool("damp", w.Damp)
	w.Color = p.GetInt("color", w.Color)
	return nil
}

func (w *Wave) Render(ctx *rendercontext.Context) bool {
	f := ctx.Framebuffer.Current
	if w.Damp {
		fadeHalf(f)
	} else {
		clearBlack(f)
	}
	color := primitive.FromInt(w.Color, 255)
	n := len(ctx.Waveform)
	var prevX, prevY int
	for i := 0; i < n; i++ {
		x := i * (f.Width - 1) / (n - 1)
		y := int((0.5 - 0.5*ctx.Waveform[i]*float64(w.Gain)) * float64(f.Height-1))
		if i == 0 {
			prevX, prevY = x, y
		}
		primitive.DrawThickLine(f, prevX, prevY, x, y, 1, color, ctx.Globals)
		prevX, prevY = x, y
	}
	return true
}

func fadeHalf(f *framebuffer.Frame) {
	for i := 0; i < len(f.Pix); i += 4 {
		f.Pix[i] /= 2
		f.Pix[i+1] /= 2
		f.Pix[i+2] /= 2
	}
}

func clearBlack(f *framebuffer.Frame) {
	for i := range f.Pix {
		f.Pix[i] = 0
	}
}
