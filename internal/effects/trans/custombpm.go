package trans

import (
	"github.com/pfahlr/vis-avs-sub001/internal/effect"
	"github.com/pfahlr/vis-avs-sub001/internal/effects/gating"
	"github.com/pfahlr/vis-avs-sub001/internal/rendercontext"
)

// BPMMode selects how CustomBPM rewrites the downstream beat signal.
type BPMMode int

const (
	BPMPassthrough BPMMode = iota
	BPMArbitrary
	BPMSkip
	BPMInvert
)

// CustomBPM rewrites ctx.Beat for every effect rendered after it in
// the pipeline. It also hosts a BeatGate, writing the gate's
// render/flag decision into two global registers when RegisterBase is
// non-negative.
type CustomBPM struct {
	Mode         BPMMode
	BPM          float64
	SkipInterval int
	SkipFirstN   int
	RegisterBase int

	GateOpts gating.Options
	gate     *gating.Gate

	accumSeconds float64
	skipCount    int
	suppressed   int
}

func NewCustomBPM() effect.Effect {
	return &CustomBPM{BPM: 120, SkipInterval: 2, RegisterBase: -1, gate: gating.New(gating.Options{})}
}

func (c *CustomBPM) SetParams(p *effect.ParamBlock) error {
	c.Mode = BPMMode(p.GetInt("mode", int32(c.Mode)))
	c.BPM = float64(p.GetFloat("bpm", float32(c.BPM)))
	if c.BPM <= 0 {
		c.BPM = 120
	}
	si := p.GetInt("skip_interval", int32(c.SkipInterval))
	if si < 1 {
		si = 1
	}
	c.SkipInterval = int(si)
	c.SkipFirstN = int(p.GetInt("skip_first_n", int32(c.SkipFirstN)))
	c.RegisterBase = int(p.GetInt("register_base", int32(c.RegisterBase)))

	next := c.GateOpts
	next.EnableOnBeat = p.GetBool("gate_enable_on_beat", next.EnableOnBeat)
	next.StickyToggle = p.GetBool("gate_sticky_toggle", next.StickyToggle)
	next.OnlySticky = p.GetBool("gate_only_sticky", next.OnlySticky)
	next.HoldFrames = int(p.GetInt("gate_hold_frames", int32(next.HoldFrames)))
	if next != c.GateOpts || c.gate == nil {
		c.GateOpts = next
		c.gate = gating.New(c.GateOpts)
	}
	return nil
}

func (c *CustomBPM) rewriteBeat(ctx *rendercontext.Context) bool {
	base := ctx.Beat
	switch c.Mode {
	case BPMPassthrough:
		return base
	case BPMArbitrary:
		c.accumSeconds += ctx.DeltaSeconds
		period := 60.0 / c.BPM
		if c.accumSeconds >= period {
			c.accumSeconds -= period
			return true
		}
		return false
	case BPMSkip:
		if !base {
			return false
		}
		c.skipCount++
		return c.skipCount%c.SkipInterval == 0
	case BPMInvert:
		return !base
	default:
		return base
	}
}

func (c *CustomBPM) Render(ctx *rendercontext.Context) bool {
	pulse := c.rewriteBeat(ctx)
	if c.suppressed < c.SkipFirstN {
		if pulse {
			c.suppressed++
		}
		pulse = false
	}
	ctx.Beat = pulse

	render := c.gate.Step(pulse)
	if c.RegisterBase >= 0 && c.RegisterBase+1 < len(ctx.Globals.Registers) {
		if render {
			ctx.Globals.Registers[c.RegisterBase] = 1
		} else {
			ctx.Globals.Registers[c.RegisterBase] = 0
		}
		ctx.Globals.Registers[c.RegisterBase+1] = float64(c.gate.State())
	}
	return render
}
