package filters

import (
	"github.com/pfahlr/vis-avs-sub001/internal/effect"
	"github.com/pfahlr/vis-avs-sub001/internal/rendercontext"
)

// ColorClip sets every channel value below Below to Below and above
// Above to Above, unscaled, and rescales values inside [Below,Above]
// linearly onto [0,255] (binary effectId 12, "Trans / Color Clip").
type ColorClip struct {
	Below, Above uint8
}

func NewColorClip() effect.Effect { return &ColorClip{Below: 16, Above: 240} }

func (c *ColorClip) SetParams(p *effect.ParamBlock) error {
	c.Below = uint8(p.GetInt("below", int32(c.Below)))
	c.Above = uint8(p.GetInt("above", int32(c.Above)))
	if c.Above <= c.Below {
		c.Above = c.Below + 1
	}
	return nil
}

func (c *ColorClip) clip(v uint8) uint8 {
	if v < c.Below {
		return c.Below
	}
	if v > c.Above {
		return c.Above
	}
	span := int(c.Above) - int(c.Below)
	return uint8((int(v) - int(c.Below)) * 255 / span)
}

func (c *ColorClip) Render(ctx *rendercontext.Context) bool {
	f := ctx.Framebuffer.Current
	for i := 0; i < len(f.Pix); i += 4 {
		f.Pix[i] = c.clip(f.Pix[i])
		f.Pix[i+1] = c.clip(f.Pix[i+1])
		f.Pix[i+2] = c.clip(f.Pix[i+2])
	}
	return true
}
