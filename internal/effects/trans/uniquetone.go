package trans

import (
	"github.com/pfahlr/vis-avs-sub001/internal/effect"
	"github.com/pfahlr/vis-avs-sub001/internal/effects/blend"
	"github.com/pfahlr/vis-avs-sub001/internal/rendercontext"
)

// UniqueTone recolors every pixel to a single configured hue scaled by
// its luma, then combines that tone with the frame via a blend op
// (original_source effect_unique_tone.cpp, restored per SPEC_FULL §4.10).
type UniqueTone struct {
	R, G, B uint8
	Invert  bool
	Blend   blend.Op
	Cfg     blend.Config
}

func NewUniqueTone() effect.Effect {
	return &UniqueTone{R: 255, G: 255, B: 255, Cfg: blend.Config{Alpha: 128}}
}

func (u *UniqueTone) SetParams(p *effect.ParamBlock) error {
	color := p.GetInt("color", int32(u.R)<<16|int32(u.G)<<8|int32(u.B))
	u.R = uint8((color >> 16) & 0xFF)
	u.G = uint8((color >> 8) & 0xFF)
	u.B = uint8(color & 0xFF)
	u.Invert = p.GetBool("invert", u.Invert)
	u.Blend = blend.Op(p.GetInt("blend", int32(u.Blend)))
	u.Cfg.Alpha = uint8(p.GetInt("alpha", int32(u.Cfg.Alpha)))
	return nil
}

func luma(r, g, b uint8) uint8 {
	return uint8((54*int(r) + 183*int(g) + 19*int(b)) >> 8)
}

func (u *UniqueTone) Render(ctx *rendercontext.Context) bool {
	f := ctx.Framebuffer.Current
	for i := 0; i < len(f.Pix); i += 4 {
		l := luma(f.Pix[i], f.Pix[i+1], f.Pix[i+2])
		if u.Invert {
			l = 255 - l
		}
		sr := uint8((int(u.R) * int(l)) / 255)
		sg := uint8((int(u.G) * int(l)) / 255)
		sb := uint8((int(u.B) * int(l)) / 255)
		dr, dg, db, da := f.Pix[i], f.Pix[i+1], f.Pix[i+2], f.Pix[i+3]
		out := blend.Pixel(u.Blend, [4]uint8{dr, dg, db, da}, [4]uint8{sr, sg, sb, da}, u.Cfg)
		f.Pix[i], f.Pix[i+1], f.Pix[i+2], f.Pix[i+3] = out[0], out[1], out[2], da
	}
	return true
}
