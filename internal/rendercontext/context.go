// Package rendercontext defines the per-frame record passed to every
// effect.
package rendercontext

import (
	"github.com/pfahlr/vis-avs-sub001/internal/analyzer"
	"github.com/pfahlr/vis-avs-sub001/internal/framebuffer"
	"github.com/pfahlr/vis-avs-sub001/internal/globalstate"
	"github.com/pfahlr/vis-avs-sub001/internal/rng"
)

// Context is owned by the driver and rebuilt once per frame. Effects
// read/write Framebuffer freely; they read Spectrum/Waveform/Bass/
// Mid/Treb/Beat through the embedded audio view, and may rewrite Beat
// (e.g. a custom-BPM effect) for downstream effects to observe.
type Context struct {
	FrameIndex    uint64
	DeltaSeconds  float64
	Width, Height int

	Framebuffer *framebuffer.Framebuffers

	Spectrum [analyzer.SpectrumSize]float64
	Waveform [analyzer.WaveformSize]float64
	Bass     float64
	Mid      float64
	Treb     float64
	BPM      float64
	Beat     bool

	Rng     *rng.Rng
	Globals *globalstate.State

	// NamedBackend optionally names a framebuffer backend handle this
	// context is rendering into, for effects that need to address a
	// specific presentation surface (most kernels ignore this).
	NamedBackend string
}

// New builds a Context snapshotting the given analyzer's current
// output. The driver calls this once per frame after Process.
func New(frameIndex uint64, deltaSeconds float64, fb *framebuffer.Framebuffers, a *analyzer.Analyzer, r *rng.Rng, g *globalstate.State) *Context {
	ctx := &Context{
		FrameIndex:   frameIndex,
		DeltaSeconds: deltaSeconds,
		Width:        fb.Width,
		Height:       fb.Height,
		Framebuffer:  fb,
		Bass:         a.Bass,
		Mid:          a.Mid,
		Treb:         a.Treb,
		BPM:          a.BPM,
		Beat:         a.Beat,
		Rng:          r,
		Globals:      g,
	}
	ctx.Spectrum = a.Spectrum
	ctx.Waveform = a.Waveform
	return ctx
}
