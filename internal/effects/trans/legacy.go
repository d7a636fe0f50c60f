package trans

import (
	"math"

	"github.com/pfahlr/vis-avs-sub001/internal/effect"
	"github.com/pfahlr/vis-avs-sub001/internal/rendercontext"
)

// FadeOut drifts every pixel toward a fixed color by Speed per frame,
// the original fixed-rate sibling of Colorfade (binary effectId 3).
type FadeOut struct {
	R, G, B uint8
	Speed   float32
}

func NewFadeOut() effect.Effect { return &FadeOut{Speed: 0.1} }

func (f *FadeOut) SetParams(p *effect.ParamBlock) error {
	f.R = uint8(p.GetInt("r", int32(f.R)))
	f.G = uint8(p.GetInt("g", int32(f.G)))
	f.B = uint8(p.GetInt("b", int32(f.B)))
	speed := p.GetFloat("speed", f.Speed)
	if speed < 0 {
		speed = 0
	}
	if speed > 1 {
		speed = 1
	}
	f.Speed = speed
	return nil
}

func (fo *FadeOut) Render(ctx *rendercontext.Context) bool {
	f := ctx.Framebuffer.Current
	targets := [3]uint8{fo.R, fo.G, fo.B}
	for i := 0; i < len(f.Pix); i += 4 {
		for c := 0; c < 3; c++ {
			cur := float64(f.Pix[i+c])
			tgt := float64(targets[c])
			f.Pix[i+c] = uint8(cur + (tgt-cur)*float64(fo.Speed))
		}
	}
	return true
}

// MirrorAxis selects which half of the frame Mirror reflects from.
type MirrorAxis int

const (
	MirrorHorizontal MirrorAxis = iota
	MirrorVertical
	MirrorQuad
)

// Mirror reflects one half of the frame onto the other, optionally
// both axes at once (binary effectId 26).
type Mirror struct {
	Axis MirrorAxis
}

func NewMirror() effect.Effect { return &Mirror{} }

func (m *Mirror) SetParams(p *effect.ParamBlock) error {
	m.Axis = MirrorAxis(p.GetInt("axis", int32(m.Axis))) % 3
	return nil
}

func (m *Mirror) Render(ctx *rendercontext.Context) bool {
	f := ctx.Framebuffer.Current
	w, h := f.Width, f.Height
	switch m.Axis {
	case MirrorVertical:
		for y := 0; y < h/2; y++ {
			sy := h - 1 - y
			for x := 0; x < w; x++ {
				copyPixel(f, x, sy, x, y)
			}
		}
	case MirrorQuad:
		for y := 0; y < h/2; y++ {
			for x := 0; x < w/2; x++ {
				copyPixel(f, x, y, w-1-x, y)
				copyPixel(f, x, y, x, h-1-y)
				copyPixel(f, x, y, w-1-x, h-1-y)
			}
		}
	default: // MirrorHorizontal
		for y := 0; y < h; y++ {
			for x := 0; x < w/2; x++ {
				copyPixel(f, x, y, w-1-x, y)
			}
		}
	}
	return true
}

func copyPixel(f interface {
	At(x, y int) (uint8, uint8, uint8, uint8)
	Set(x, y int, r, g, b, a uint8)
}, sx, sy, dx, dy int) {
	r, g, b, a := f.At(sx, sy)
	f.Set(dx, dy, r, g, b, a)
}

// Invert negates every color channel (binary effectId 37).
type Invert struct{}

func NewInvert() effect.Effect { return &Invert{} }

func (i *Invert) SetParams(p *effect.ParamBlock) error { return nil }

func (i *Invert) Render(ctx *rendercontext.Context) bool {
	f := ctx.Framebuffer.Current
	for i := 0; i < len(f.Pix); i += 4 {
		f.Pix[i] = 255 - f.Pix[i]
		f.Pix[i+1] = 255 - f.Pix[i+1]
		f.Pix[i+2] = 255 - f.Pix[i+2]
	}
	return true
}

// Interleave replaces every Nth row with the corresponding row from
// the previous frame, optionally shifting which rows on each beat
// (binary effectId 23).
type Interleave struct {
	Stride  int
	OnBeat  bool
	phase   int
}

func NewInterleave() effect.Effect { return &Interleave{Stride: 2} }

func (it *Interleave) SetParams(p *effect.ParamBlock) error {
	stride := p.GetInt("stride", int32(it.Stride))
	if stride < 1 {
		stride = 1
	}
	it.Stride = int(stride)
	it.OnBeat = p.GetBool("onbeat", it.OnBeat)
	return nil
}

func (it *Interleave) Render(ctx *rendercontext.Context) bool {
	if it.OnBeat && ctx.Beat {
		it.phase = (it.phase + 1) % it.Stride
	}
	f := ctx.Framebuffer.Current
	prev := ctx.Framebuffer.Previous
	if prev.Width != f.Width || prev.Height != f.Height {
		return true
	}
	for y := 0; y < f.Height; y++ {
		if (y+it.phase)%it.Stride != 0 {
			continue
		}
		for x := 0; x < f.Width; x++ {
			r, g, b, a := prev.At(x, y)
			f.Set(x, y, r, g, b, a)
		}
	}
	return true
}

// Bump renders an embossed lighting relief derived from pixel
// luminance, the non-height-field sibling of Water Bump (binary
// effectId 29).
type Bump struct {
	Depth    float64
	LightX   float64
	LightY   float64
}

func NewBump() effect.Effect { return &Bump{Depth: 4, LightX: -1, LightY: -1} }

func (b *Bump) SetParams(p *effect.ParamBlock) error {
	b.Depth = float64(p.GetFloat("depth", float32(b.Depth)))
	b.LightX = float64(p.GetFloat("light_x", float32(b.LightX)))
	b.LightY = float64(p.GetFloat("light_y", float32(b.LightY)))
	return nil
}

func luminance(r, g, bl uint8) float64 {
	return (0.299*float64(r) + 0.587*float64(g) + 0.114*float64(bl)) / 255
}

func (bp *Bump) Render(ctx *rendercontext.Context) bool {
	f := ctx.Framebuffer.Current
	w, h := f.Width, f.Height
	src := make([]byte, len(f.Pix))
	copy(src, f.Pix)
	lum := func(x, y int) float64 {
		if x < 0 {
			x = 0
		}
		if x >= w {
			x = w - 1
		}
		if y < 0 {
			y = 0
		}
		if y >= h {
			y = h - 1
		}
		i := (y*w + x) * 4
		return luminance(src[i], src[i+1], src[i+2])
	}
	lightLen := math.Hypot(bp.LightX, bp.LightY)
	if lightLen == 0 {
		lightLen = 1
	}
	lx, ly := bp.LightX/lightLen, bp.LightY/lightLen
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			dx := (lum(x+1, y) - lum(x-1, y)) * bp.Depth
			dy := (lum(x, y+1) - lum(x, y-1)) * bp.Depth
			shade := 0.5 + 0.5*(dx*lx+dy*ly)
			if shade < 0 {
				shade = 0
			}
			if shade > 1 {
				shade = 1
			}
			i := (y*w + x) * 4
			f.Pix[i] = uint8(float64(src[i]) * shade)
			f.Pix[i+1] = uint8(float64(src[i+1]) * shade)
			f.Pix[i+2] = uint8(float64(src[i+2]) * shade)
		}
	}
	return true
}
