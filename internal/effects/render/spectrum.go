package render

import (
	"github.com/pfahlr/vis-avs-sub001/internal/effect"
	"github.com/pfahlr/vis-avs-sub001/internal/effects/primitive"
	"github.com/pfahlr/vis-avs-sub001/internal/framebuffer"
	"github.com/pfahlr/vis-avs-sub001/internal/rendercontext"
)

// Spectrum draws the analyzer's spectrum magnitudes as vertical bars
// spanning the frame width.
type Spectrum struct {
	Color int32
	Gain  float32
}

func NewSpectrum() effect.Effect { return &Spectrum{Color: 0x00FF00, Gain: 1} }

func (s *Spectrum) SetParams(p *effect.ParamBlock) error {
	s.Color = p.GetInt("color", s.Color)
	s.Gain = p.GetFloat("gain", s.Gain)
	return nil
}

func (s *Spectrum) Render(ctx *rendercontext.Context) bool {
	f := ctx.Framebuffer.Current
	clearBlack(f)
	color := primitive.FromInt(s.Color, 255)
	n := len(ctx.Spectrum)
	for x := 0; x < f.Width; x++ {
		bin := x * n / f.Width
		mag := ctx.Spectrum[bin] * float64(s.Gain)
		if mag > 1 {
			mag = 1
		}
		barHeight := int(mag * float64(f.Height))
		y0 := f.Height - barHeight
		for y := y0; y < f.Height; y++ {
			primitive.BlendPixel(f, x, y, color, ctx.Globals)
		}
	}
	return true
}

// Bands draws three wide bars sourced from bass/mid/treb, the coarse
// sibling of Spectrum (effect_bands in the legacy sources).
type Bands struct {
	BassColor, MidColor, TrebColor int32
	Gain                           float32
}

func NewBands() effect.Effect {
	return &Bands{BassColor: 0xFF0000, MidColor: 0x00FF00, TrebColor: 0x0000FF, Gain: 1}
}

func (b *Bands) SetParams(p *effect.ParamBlock) error {
	b.BassColor = p.GetInt("bass_color", b.BassColor)
	b.MidColor = p.GetInt("mid_color", b.MidColor)
	b.TrebColor = p.GetInt("treb_color", b.TrebColor)
	b.Gain = p.GetFloat("gain", b.Gain)
	return nil
}

func (b *Bands) Render(ctx *rendercontext.Context) bool {
	f := ctx.Framebuffer.Current
	clearBlack(f)
	third := f.Width / 3
	b.drawBar(f, ctx, 0, third, ctx.Bass, b.BassColor)
	b.drawBar(f, ctx, third, 2*third, ctx.Mid, b.MidColor)
	b.drawBar(f, ctx, 2*third, f.Width, ctx.Treb, b.TrebColor)
	return true
}

func (b *Bands) drawBar(f *framebuffer.Frame, ctx *rendercontext.Context, x0, x1 int, value float64, colorInt int32) {
	mag := value * float64(b.Gain)
	if mag > 1 {
		mag = 1
	}
	barHeight := int(mag * float64(f.Height))
	y0 := f.Height - barHeight
	color := primitive.FromInt(colorInt, 255)
	for x := x0; x < x1; x++ {
		for y := y0; y < f.Height; y++ {
			primitive.BlendPixel(f, x, y, color, ctx.Globals)
		}
	}
}
