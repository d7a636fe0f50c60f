package render

import (
	"testing"

	"github.com/pfahlr/vis-avs-sub001/internal/effect"
	"github.com/pfahlr/vis-avs-sub001/internal/framebuffer"
	"github.com/pfahlr/vis-avs-sub001/internal/globalstate"
	"github.com/pfahlr/vis-avs-sub001/internal/rendercontext"
	"github.com/pfahlr/vis-avs-sub001/internal/rng"
)

func newTestContext() *rendercontext.Context {
	fb := framebuffer.New(32, 32)
	fb.BeginFrame()
	return &rendercontext.Context{
		Width: 32, Height: 32,
		Framebuffer: fb,
		Rng:         rng.New(1),
		Globals:     globalstate.New(),
	}
}

func TestWaveRendersDeterministically(t *testing.T) {
	ctx1 := newTestContext()
	ctx2 := newTestContext()
	w1 := NewWave()
	w2 := NewWave()
	w1.SetParams(effect.NewParamBlock())
	w2.SetParams(effect.NewParamBlock())
	w1.Render(ctx1)
	w2.Render(ctx2)
	if string(ctx1.Framebuffer.Current.Pix) != string(ctx2.Framebuffer.Current.Pix) {
		t.Fatalf("Wave render not deterministic across identical contexts")
	}
}

func TestSpectrumBarsStayInBounds(t *testing.T) {
	ctx := newTestContext()
	ctx.Spectrum[5] = 0.8
	s := NewSpectrum()
	s.SetParams(effect.NewParamBlock())
	if !s.Render(ctx) {
		t.Fatalf("Spectrum.Render returned false")
	}
}

func TestRingPaletteCursorAdvances(t *testing.T) {
	ctx := newTestContext()
	r := NewRing().(*Ring)
	r.SetParams(effect.NewParamBlock())
	r.Render(ctx)
	if r.paletteCursor != 1 {
		t.Fatalf("paletteCursor = %d, want 1", r.paletteCursor)
	}
}

func TestBassSpinArmsRespondToWaveform(t *testing.T) {
	ctx := newTestContext()
	for i := range ctx.Waveform {
		ctx.Waveform[i] = 1
	}
	b := NewBassSpin().(*BassSpin)
	b.SetParams(effect.NewParamBlock())
	b.Render(ctx)
	if b.arms[0].velocity == 0 {
		t.Fatalf("expected nonzero arm velocity with full-scale waveform")
	}
}

func TestMovingParticleJumpsOnBeat(t *testing.T) {
	ctx := newTestContext()
	ctx.Beat = true
	m := NewMovingParticle().(*MovingParticle)
	m.SetParams(effect.NewParamBlock())
	m.Render(ctx)
	if m.tx == 0 && m.ty == 0 {
		t.Fatalf("expected a nonzero target after a beat")
	}
}
