package render

import (
	"math"

	"github.com/pfahlr/vis-avs-sub001/internal/effect"
	"github.com/pfahlr/vis-avs-sub001/internal/effects/primitive"
	"github.com/pfahlr/vis-avs-sub001/internal/rendercontext"
)

// kColorCycle is the shared palette cycling period used by every
// polar kernel in this package.
const kColorCycle = 64

// Placement selects where along the frame width a Ring is drawn.
type Placement int

const (
	PlacementLeft Placement = iota
	PlacementCenter
	PlacementRight
)

// Source selects which analysis signal drives a Ring's radius.
type Source int

const (
	SourceOscilloscope Source = iota
	SourceSpectrum
)

// Channel selects which stereo channel a Ring samples. The analyzer
// exposes only the downmixed mono signal, so Left/Right/Mix currently
// all read the same data; the field is kept for preset fidelity and a
// future stereo analyzer upgrade.
type Channel int

const (
	ChannelLeft Channel = iota
	ChannelRight
	ChannelMix
)

// Ring draws a circular polyline whose radius is modulated by
// waveform or spectrum samples, with a cyclic color palette.
type Ring struct {
	Size      int
	Placement Placement
	Source    Source
	Channel   Channel
	Palette   []int32

	paletteCursor int
}

// NewRing returns a Ring with a one-entry white palette at default size.
func NewRing() effect.Effect {
	return &Ring{Size: 16, Palette: []int32{0xFFFFFF}}
}

func (r *Ring) SetParams(p *effect.ParamBlock) error {
	size := p.GetInt("size", int32(r.Size))
	if size < 1 {
		size = 1
	}
	if size > 64 {
		size = 64
	}
	r.Size = int(size)
	r.Placement = Placement(p.GetInt("placement", int32(r.Placement)))
	r.Source = Source(p.GetInt("source", int32(r.Source)))
	r.Channel = Channel(p.GetInt("channel", int32(r.Channel)))
	return nil
}

func (r *Ring) paletteColor() primitive.RGBA {
	if len(r.Palette) == 0 {
		return primitive.RGBA{R: 255, G: 255, B: 255, A: 255}
	}
	cursor := r.paletteCursor % (len(r.Palette) * kColorCycle)
	idx := cursor / kColorCycle
	frac := float64(cursor%kColorCycle) / kColorCycle
	a := primitive.FromInt(r.Palette[idx], 255)
	b := primitive.FromInt(r.Palette[(idx+1)%len(r.Palette)], 255)
	return primitive.RGBA{
		R: lerpByte(a.R, b.R, frac),
		G: lerpByte(a.G, b.G, frac),
		B: lerpByte(a.B, b.B, frac),
		A: 255,
	}
}

func lerpByte(a, b uint8, t float64) uint8 {
	v := float64(a)*(1-t) + float64(b)*t
	if v < 0 {
		v = 0
	}
	if v > 255 {
		v = 255
	}
	return uint8(v)
}

func (r *Ring) centerX(width int) int {
	switch r.Placement {
	case PlacementLeft:
		return width / 4
	case PlacementRight:
		return width * 3 / 4
	default:
		return width / 2
	}
}

func (r *Ring) Render(ctx *rendercontext.Context) bool {
	f := ctx.Framebuffer.Current
	color := r.paletteColor()
	cx := r.centerX(f.Width)
	cy := f.Height / 2
	baseRadius := float64(r.Size) * 2
	const samples = 128
	var prevX, prevY int
	for i := 0; i <= samples; i++ {
		theta := 2 * math.Pi * float64(i) / samples
		var mod float64
		if r.Source == SourceSpectrum {
			bin := int(float64(i) / samples * float64(len(ctx.Spectrum)-1))
			mod = ctx.Spectrum[bin]
		} else {
			idx := int(float64(i) / samples * float64(len(ctx.Waveform)-1))
			mod = (ctx.Waveform[idx] + 1) / 2
		}
		radius := baseRadius * (0.5 + mod)
		x := cx + int(radius*math.Cos(theta))
		y := cy + int(radius*math.Sin(theta))
		if i > 0 {
			primitive.DrawThickLine(f, prevX, prevY, x, y, 1, color, ctx.Globals)
		}
		prevX, prevY = x, y
	}
	r.paletteCursor++
	return true
}
