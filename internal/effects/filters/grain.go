package filters

import (
	"github.com/pfahlr/vis-avs-sub001/internal/effect"
	"github.com/pfahlr/vis-avs-sub001/internal/rendercontext"
)

// Grain adds uniformly distributed noise in [-amount,amount] per
// channel, either mono (same offset across R/G/B) or independently
// per channel. When Static is set, the noise pattern is generated on
// the first render and reused every frame; it is rebuilt only when the
// frame size changes, so a later change of Offset or of the RNG seed
// does not rebuild it.
type Grain struct {
	Amount     int
	PerChannel bool
	Static     bool
	Offset     uint32

	cached       []int16
	cachedW      int
	cachedH      int
	cachedSeed   uint64
	haveCache    bool
}

func NewGrain() effect.Effect { return &Grain{Amount: 20} }

func (g *Grain) SetParams(p *effect.ParamBlock) error {
	amt := p.GetInt("amount", int32(g.Amount))
	if amt < 0 {
		amt = 0
	}
	if amt > 255 {
		amt = 255
	}
	g.Amount = int(amt)
	g.PerChannel = p.GetBool("per_channel", g.PerChannel)
	g.Static = p.GetBool("static", g.Static)
	g.Offset = uint32(p.GetInt("offset", int32(g.Offset)))
	return nil
}

func (g *Grain) Render(ctx *rendercontext.Context) bool {
	if g.Amount == 0 {
		return true
	}
	f := ctx.Framebuffer.Current
	n := f.Width * f.Height
	channels := 1
	if g.PerChannel {
		channels = 3
	}

	var noise []int16
	if g.Static {
		seedKey := uint64(ctx.Rng.NextUint64()) // consumed even when cache hits, to keep RNG consumption documented and stable
		if !g.haveCache || g.cachedW != f.Width || g.cachedH != f.Height {
			g.cached = g.generateNoise(n*channels, seedKey^uint64(g.Offset))
			g.cachedW, g.cachedH, g.cachedSeed = f.Width, f.Height, seedKey
			g.haveCache = true
		}
		noise = g.cached
	} else {
		noise = g.generateNoise(n*channels, uint64(ctx.Rng.NextUint32())^uint64(g.Offset))
	}

	for i := 0; i < n; i++ {
		base := i * 4
		if g.PerChannel {
			f.Pix[base] = addClampedNoise(f.Pix[base], noise[i*3])
			f.Pix[base+1] = addClampedNoise(f.Pix[base+1], noise[i*3+1])
			f.Pix[base+2] = addClampedNoise(f.Pix[base+2], noise[i*3+2])
		} else {
			d := noise[i]
			f.Pix[base] = addClampedNoise(f.Pix[base], d)
			f.Pix[base+1] = addClampedNoise(f.Pix[base+1], d)
			f.Pix[base+2] = addClampedNoise(f.Pix[base+2], d)
		}
	}
	return true
}

func (g *Grain) generateNoise(count int, seed uint64) []int16 {
	state := seed
	out := make([]int16, count)
	for i := range out {
		state += 0x9E3779B97F4A7C15
		z := state
		z = (z ^ (z >> 30)) * 0xBF58476D1CE4E5B9
		z = (z ^ (z >> 27)) * 0x94D049BB133111EB
		z ^= z >> 31
		span := int64(2*g.Amount + 1)
		v := int64(z%uint64(span)) - int64(g.Amount)
		out[i] = int16(v)
	}
	return out
}

func addClampedNoise(b byte, delta int16) byte {
	v := int(b) + int(delta)
	if v < 0 {
		return 0
	}
	if v > 255 {
		return 255
	}
	return byte(v)
}
