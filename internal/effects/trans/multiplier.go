package trans

import (
	"github.com/pfahlr/vis-avs-sub001/internal/effect"
	"github.com/pfahlr/vis-avs-sub001/internal/rendercontext"
)

// Multiplier applies a fixed per-channel multiplier, quantized to one
// of a handful of legacy steps (original_source effect_multiplier.cpp):
// 0 = half brightness, 1 = unchanged (x1), 2 = double, 3 = quadruple.
type Multiplier struct {
	Mode int
}

func NewMultiplier() effect.Effect { return &Multiplier{Mode: 1} }

func (m *Multiplier) SetParams(p *effect.ParamBlock) error {
	mode := p.GetInt("mode", int32(m.Mode))
	if mode < 0 {
		mode = 0
	}
	if mode > 3 {
		mode = 3
	}
	m.Mode = int(mode)
	return nil
}

func (m *Multiplier) factor() float64 {
	switch m.Mode {
	case 0:
		return 0.5
	case 2:
		return 2
	case 3:
		return 4
	default:
		return 1
	}
}

func (m *Multiplier) Render(ctx *rendercontext.Context) bool {
	f := ctx.Framebuffer.Current
	factor := m.factor()
	if factor == 1 {
		return true
	}
	for i := 0; i < len(f.Pix); i += 4 {
		for c := 0; c < 3; c++ {
			v := float64(f.Pix[i+c]) * factor
			if v > 255 {
				v = 255
			}
			if v < 0 {
				v = 0
			}
			f.Pix[i+c] = byte(v)
		}
	}
	return true
}
