package render

import (
	"github.com/pfahlr/vis-avs-sub001/internal/effect"
	"github.com/pfahlr/vis-avs-sub001/internal/effects/primitive"
	"github.com/pfahlr/vis-avs-sub001/internal/rendercontext"
)

// MovingParticle renders an underdamped 2-D spring that jumps to a new
// random target on every beat.
type MovingParticle struct {
	SizeBase, SizeBeat float32
	Color              int32

	px, py         float64
	vx, vy         float64
	tx, ty         float64
	size           float64
	initialized    bool
}

func NewMovingParticle() effect.Effect {
	return &MovingParticle{SizeBase: 4, SizeBeat: 12, Color: 0xFFFFFF}
}

func (m *MovingParticle) SetParams(p *effect.ParamBlock) error {
	m.SizeBase = p.GetFloat("size_base", m.SizeBase)
	m.SizeBeat = p.GetFloat("size_beat", m.SizeBeat)
	m.Color = p.GetInt("color", m.Color)
	return nil
}

const springK = 0.004
const springDamping = 0.991

func (m *MovingParticle) Render(ctx *rendercontext.Context) bool {
	if !m.initialized {
		m.size = float64(m.SizeBase)
		m.initialized = true
	}
	if ctx.Beat {
		m.tx = ctx.Rng.Uniform(-16.0/48, 16.0/48)
		m.ty = ctx.Rng.Uniform(-16.0/48, 16.0/48)
		m.size = float64(m.SizeBeat)
	}
	m.vx -= springK * (m.px - m.tx)
	m.vy -= springK * (m.py - m.ty)
	m.px += m.vx
	m.py += m.vy
	m.vx *= springDamping
	m.vy *= springDamping
	m.size = (m.size + float64(m.SizeBase)) / 2

	f := ctx.Framebuffer.Current
	cx := int((m.px + 1) / 2 * float64(f.Width-1))
	cy := int((m.py + 1) / 2 * float64(f.Height-1))
	color := primitive.FromInt(m.Color, 255)
	primitive.DrawFilledCircle(f, cx, cy, int(m.size), color, ctx.Globals)
	return true
}
