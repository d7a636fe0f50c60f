package trans

import (
	"github.com/pfahlr/vis-avs-sub001/internal/effect"
	"github.com/pfahlr/vis-avs-sub001/internal/rendercontext"
)

// ChannelOrder is one of the six permutations of R/G/B.
type ChannelOrder int

const (
	OrderRGB ChannelOrder = iota
	OrderRBG
	OrderGBR
	OrderGRB
	OrderBRG
	OrderBGR
)

// channelShiftModes is the fixed six-mode array onbeat selects from
// uniformly via rng.nextUint32() % 6.
var channelShiftModes = [6]ChannelOrder{OrderRGB, OrderRBG, OrderGBR, OrderGRB, OrderBRG, OrderBGR}

// ChannelShift permutes the three color channels of every pixel. With
// OnBeat set, a new mode is drawn from channelShiftModes on every beat;
// otherwise the configured Mode is used unconditionally.
type ChannelShift struct {
	Mode   ChannelOrder
	OnBeat bool

	active ChannelOrder
}

func NewChannelShift() effect.Effect { return &ChannelShift{} }

func (c *ChannelShift) SetParams(p *effect.ParamBlock) error {
	c.Mode = ChannelOrder(p.GetInt("mode", int32(c.Mode))) % 6
	c.OnBeat = p.GetBool("onbeat", c.OnBeat)
	return nil
}

func (c *ChannelShift) Render(ctx *rendercontext.Context) bool {
	mode := c.Mode
	if c.OnBeat {
		if ctx.Beat {
			c.active = channelShiftModes[ctx.Rng.NextUint32()%6]
		}
		mode = c.active
	}

	f := ctx.Framebuffer.Current
	for i := 0; i < len(f.Pix); i += 4 {
		r, g, b := f.Pix[i], f.Pix[i+1], f.Pix[i+2]
		switch mode {
		case OrderRGB:
		case OrderRBG:
			g, b = b, g
		case OrderGBR:
			r, g, b = g, b, r
		case OrderGRB:
			r, g = g, r
		case OrderBRG:
			r, g, b = b, r, g
		case OrderBGR:
			r, b = b, r
		}
		f.Pix[i], f.Pix[i+1], f.Pix[i+2] = r, g, b
	}
	return true
}
