package filters

import (
	"github.com/pfahlr/vis-avs-sub001/internal/effect"
	"github.com/pfahlr/vis-avs-sub001/internal/rendercontext"
)

// FastBrightness applies c' = c*amount + bias per channel, either
// saturating or wrapping as unsigned 8-bit.
type FastBrightness struct {
	Amount float32
	Bias   int32
	Clamp  bool
}

func NewFastBrightness() effect.Effect { return &FastBrightness{Amount: 1, Clamp: true} }

func (b *FastBrightness) SetParams(p *effect.ParamBlock) error {
	b.Amount = p.GetFloat("amount", b.Amount)
	b.Bias = p.GetInt("bias", b.Bias)
	b.Clamp = p.GetBool("clamp", b.Clamp)
	return nil
}

func (b *FastBrightness) Render(ctx *rendercontext.Context) bool {
	f := ctx.Framebuffer.Current
	for i := 0; i < len(f.Pix); i += 4 {
		for c := 0; c < 3; c++ {
			v := int(float32(f.Pix[i+c])*b.Amount) + int(b.Bias)
			if b.Clamp {
				if v < 0 {
					v = 0
				}
				if v > 255 {
					v = 255
				}
				f.Pix[i+c] = byte(v)
			} else {
				f.Pix[i+c] = byte(uint8(v))
			}
		}
	}
	return true
}
