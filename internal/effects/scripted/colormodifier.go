package scripted

import (
	"github.com/pfahlr/vis-avs-sub001/internal/effect"
	"github.com/pfahlr/vis-avs-sub001/internal/rendercontext"
)

// ColorModifier rebuilds a 3x256 LUT by running the pixel script with
// r=g=b=i/255 for each i in [0,255], then applies it to every pixel.
// The LUT is built on the first render and rebuilt only on
// recompute-request or beat.
type ColorModifier struct {
	base

	Recompute bool

	lut    [256][3]uint8
	lutSet bool
}

func NewColorModifier() effect.Effect {
	return &ColorModifier{base: newBase()}
}

func (c *ColorModifier) SetParams(p *effect.ParamBlock) error {
	c.setStages(stagesFromParams(p))
	c.Recompute = p.GetBool("recompute", c.Recompute)
	return nil
}

func (c *ColorModifier) rebuildLUT() {
	for i := 0; i < 256; i++ {
		v := float64(i) / 255
		c.env.Set("r", v)
		c.env.Set("g", v)
		c.env.Set("b", v)
		c.run(c.pixelP)
		c.lut[i] = [3]uint8{
			byteFromUnit(c.env.Get("r")),
			byteFromUnit(c.env.Get("g")),
			byteFromUnit(c.env.Get("b")),
		}
	}
	c.lutSet = true
}

func (c *ColorModifier) Render(ctx *rendercontext.Context) bool {
	c.runFrameLifecycle(ctx)

	if c.Recompute || ctx.Beat || !c.lutSet {
		c.rebuildLUT()
	}

	f := ctx.Framebuffer.Current
	for i := 0; i < len(f.Pix); i += 4 {
		rgb := [3]uint8{f.Pix[i], f.Pix[i+1], f.Pix[i+2]}
		for c2 := 0; c2 < 3; c2++ {
			f.Pix[i+c2] = c.lut[rgb[c2]][c2]
		}
	}

	c.syncGlobalsOut(ctx)
	c.drawErrorOverlay(ctx)
	return true
}
