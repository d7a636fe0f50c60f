package filters

import (
	"github.com/pfahlr/vis-avs-sub001/internal/effect"
	"github.com/pfahlr/vis-avs-sub001/internal/rendercontext"
)

// Conv3x3 applies a user-supplied 9-tap convolution kernel. Unclamped
// channels roll over as unsigned 8-bit wrap-around, matching legacy
// integer arithmetic; clamped channels saturate at [0,255].
type Conv3x3 struct {
	Taps          [9]int32
	Divisor       int32
	Bias          int32
	PreserveAlpha bool
	Clamp         bool
}

func NewConv3x3() effect.Effect {
	return &Conv3x3{Taps: [9]int32{0, 0, 0, 0, 1, 0, 0, 0, 0}, Divisor: 1, Clamp: true}
}

func (c *Conv3x3) SetParams(p *effect.ParamBlock) error {
	names := [9]string{"t0", "t1", "t2", "t3", "t4", "t5", "t6", "t7", "t8"}
	var sum int32
	for i, n := range names {
		c.Taps[i] = p.GetInt(n, c.Taps[i])
		sum += c.Taps[i]
	}
	div := p.GetInt("divisor", c.Divisor)
	if div == 0 {
		if sum != 0 {
			div = sum
		} else {
			div = 1
		}
	}
	c.Divisor = div
	c.Bias = p.GetInt("bias", c.Bias)
	c.PreserveAlpha = p.GetBool("preserve_alpha", c.PreserveAlpha)
	c.Clamp = p.GetBool("clamp", c.Clamp)
	return nil
}

func (c *Conv3x3) Render(ctx *rendercontext.Context) bool {
	f := ctx.Framebuffer.Current
	src := make([]byte, len(f.Pix))
	copy(src, f.Pix)

	sample := func(x, y int) (int, int, int, int) {
		if x < 0 {
			x = 0
		}
		if x >= f.Width {
			x = f.Width - 1
		}
		if y < 0 {
			y = 0
		}
		if y >= f.Height {
			y = f.Height - 1
		}
		i := (y*f.Width + x) * 4
		return int(src[i]), int(src[i+1]), int(src[i+2]), int(src[i+3])
	}

	offsets := [9][2]int{{-1, -1}, {0, -1}, {1, -1}, {-1, 0}, {0, 0}, {1, 0}, {-1, 1}, {0, 1}, {1, 1}}

	for y := 0; y < f.Height; y++ {
		for x := 0; x < f.Width; x++ {
			var sr, sg, sb, sa int
			for k, off := range offsets {
				r, g, b, a := sample(x+off[0], y+off[1])
				w := int(c.Taps[k])
				sr += r * w
				sg += g * w
				sb += b * w
				sa += a * w
			}
			i := (y*f.Width + x) * 4
			f.Pix[i] = c.finish(sr)
			f.Pix[i+1] = c.finish(sg)
			f.Pix[i+2] = c.finish(sb)
			if !c.PreserveAlpha {
				f.Pix[i+3] = c.finish(sa)
			}
		}
	}
	return true
}

func (c *Conv3x3) finish(sum int) byte {
	v := sum/int(c.Divisor) + int(c.Bias)
	if c.Clamp {
		if v < 0 {
			v = 0
		}
		if v > 255 {
			v = 255
		}
		return byte(v)
	}
	return byte(uint8(v))
}
