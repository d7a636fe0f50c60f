package filters

import (
	"github.com/pfahlr/vis-avs-sub001/internal/effect"
	"github.com/pfahlr/vis-avs-sub001/internal/rendercontext"
)

// Channel selects which component a ColorMap LUT is built from.
type Channel int

const (
	ChannelRed Channel = iota
	ChannelGreen
	ChannelBlue
	ChannelAlpha
	ChannelLuma
)

// ColorMap applies a 256-entry lookup table selected by channel,
// optionally inverted, optionally also mapping alpha through the same
// table's A channel.
type ColorMap struct {
	Channel  Channel
	Invert   bool
	MapAlpha bool
	LUT      [256]int32 // packed 0xAARRGGBB entries; defaults to identity grayscale ramp
}

func NewColorMap() effect.Effect {
	c := &ColorMap{}
	for i := range c.LUT {
		c.LUT[i] = int32(0xFF000000 | uint32(i)<<16 | uint32(i)<<8 | uint32(i))
	}
	return c
}

func (c *ColorMap) SetParams(p *effect.ParamBlock) error {
	c.Channel = Channel(p.GetInt("channel", int32(c.Channel)))
	c.Invert = p.GetBool("invert", c.Invert)
	c.MapAlpha = p.GetBool("map_alpha", c.MapAlpha)
	return nil
}

func luma(r, g, b byte) byte {
	return byte((54*int(r) + 183*int(g) + 19*int(b)) >> 8)
}

func (c *ColorMap) Render(ctx *rendercontext.Context) bool {
	f := ctx.Framebuffer.Current
	for i := 0; i < len(f.Pix); i += 4 {
		r, g, b, a := f.Pix[i], f.Pix[i+1], f.Pix[i+2], f.Pix[i+3]
		var idx byte
		switch c.Channel {
		case ChannelRed:
			idx = r
		case ChannelGreen:
			idx = g
		case ChannelBlue:
			idx = b
		case ChannelAlpha:
			idx = a
		default:
			idx = luma(r, g, b)
		}
		if c.Invert {
			idx = 255 - idx
		}
		entry := uint32(c.LUT[idx])
		f.Pix[i] = byte(entry >> 16)
		f.Pix[i+1] = byte(entry >> 8)
		f.Pix[i+2] = byte(entry)
		if c.MapAlpha {
			f.Pix[i+3] = byte(entry >> 24)
		}
	}
	return true
}
