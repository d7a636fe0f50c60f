package trans

import (
	"github.com/pfahlr/vis-avs-sub001/internal/effect"
	"github.com/pfahlr/vis-avs-sub001/internal/rendercontext"
)

// Colorfade applies a per-pixel channel offset selected by which
// channel dominates that pixel, with four lookup tables (dominant-R,
// dominant-G, dominant-B, and a tie table for equal channels). On
// smooth mode the live offsets drift toward the configured base by one
// per frame and snap to the beat offsets (or a deterministic random
// draw) whenever a beat lands.
type Colorfade struct {
	OffsetA, OffsetB, OffsetC           int
	BeatOffsetA, BeatOffsetB, BeatOffsetC int
	Smooth    bool
	Randomize bool

	curA, curB, curC int
	initialized      bool
}

func NewColorfade() effect.Effect { return &Colorfade{} }

func (c *Colorfade) SetParams(p *effect.ParamBlock) error {
	c.OffsetA = int(p.GetInt("offset_a", int32(c.OffsetA)))
	c.OffsetB = int(p.GetInt("offset_b", int32(c.OffsetB)))
	c.OffsetC = int(p.GetInt("offset_c", int32(c.OffsetC)))
	c.BeatOffsetA = int(p.GetInt("beat_offset_a", int32(c.BeatOffsetA)))
	c.BeatOffsetB = int(p.GetInt("beat_offset_b", int32(c.BeatOffsetB)))
	c.BeatOffsetC = int(p.GetInt("beat_offset_c", int32(c.BeatOffsetC)))
	c.Smooth = p.GetBool("smooth", c.Smooth)
	c.Randomize = p.GetBool("randomize", c.Randomize)
	return nil
}

func (c *Colorfade) Render(ctx *rendercontext.Context) bool {
	if !c.initialized {
		c.curA, c.curB, c.curC = c.OffsetA, c.OffsetB, c.OffsetC
		c.initialized = true
	}

	if c.Smooth {
		if ctx.Beat {
			if c.Randomize {
				c.curA = int(ctx.Rng.NextUint32()%32) - 6
				b := int(ctx.Rng.NextUint32()%64) - 32
				if b < 0 && b > -16 {
					b = -32
				}
				if b >= 0 && b < 16 {
					b = 32
				}
				c.curB = b
				c.curC = int(ctx.Rng.NextUint32()%32) - 6
			} else {
				c.curA, c.curB, c.curC = c.BeatOffsetA, c.BeatOffsetB, c.BeatOffsetC
			}
		} else {
			c.curA = driftTowards(c.curA, c.OffsetA)
			c.curB = driftTowards(c.curB, c.OffsetB)
			c.curC = driftTowards(c.curC, c.OffsetC)
		}
	} else {
		c.curA, c.curB, c.curC = c.OffsetA, c.OffsetB, c.OffsetC
	}

	f := ctx.Framebuffer.Current
	for i := 0; i < len(f.Pix); i += 4 {
		r, g, b := int(f.Pix[i]), int(f.Pix[i+1]), int(f.Pix[i+2])
		var dr, dg, db int
		switch {
		case r > g && r > b:
			dr, dg, db = c.curB, c.curA, c.curC
		case g > r && g > b:
			dr, dg, db = c.curC, c.curB, c.curA
		case b > r && b > g:
			dr, dg, db = c.curA, c.curC, c.curB
		default:
			dr, dg, db = c.curC, c.curC, c.curC
		}
		f.Pix[i] = clampAdd(r, dr)
		f.Pix[i+1] = clampAdd(g, dg)
		f.Pix[i+2] = clampAdd(b, db)
	}
	return true
}

func driftTowards(cur, base int) int {
	if cur > base {
		return cur - 1
	}
	if cur < base {
		return cur + 1
	}
	return cur
}

func clampAdd(v, delta int) byte {
	v += delta
	if v < 0 {
		return 0
	}
	if v > 255 {
		return 255
	}
	return byte(v)
}
