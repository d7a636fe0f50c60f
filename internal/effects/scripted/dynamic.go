package scripted

import (
	"math"

	"github.com/pfahlr/vis-avs-sub001/internal/effect"
	"github.com/pfahlr/vis-avs-sub001/internal/effects/trans"
	"github.com/pfahlr/vis-avs-sub001/internal/rendercontext"
)

// dynamicKind selects how a Dynamic* kernel turns the pixel script's
// output variables back into a sample coordinate; resolveSample()
// switches on it.
type dynamicKind int

const (
	dynamicMovement dynamicKind = iota
	dynamicShift
	dynamicDistance
)

// dynamicCore is the shared scripted per-pixel remap engine behind
// DynamicMovement, DynamicShift, and DynamicDistanceModifier.
type dynamicCore struct {
	base
	warp trans.FrameWarp
	Wrap bool
	kind dynamicKind
}

func (d *dynamicCore) setParams(p *effect.ParamBlock) {
	d.setStages(stagesFromParams(p))
	d.Wrap = p.GetBool("wrap", d.Wrap)
}

func (d *dynamicCore) render(ctx *rendercontext.Context) bool {
	d.warp.Capture(ctx.Framebuffer.Current)
	d.runFrameLifecycle(ctx)

	f := ctx.Framebuffer.Current
	w, h := f.Width, f.Height
	d.env.Set("width", float64(w))
	d.env.Set("height", float64(h))

	out := make([]byte, len(f.Pix))
	for py := 0; py < h; py++ {
		ny := 1 - 2*float64(py)/float64(h-1)
		for px := 0; px < w; px++ {
			nx := 2*float64(px)/float64(w-1) - 1
			r := math.Hypot(nx, ny)
			angle := math.Atan2(ny, nx)

			d.env.Set("x", nx)
			d.env.Set("y", ny)
			d.env.Set("orig_x", nx)
			d.env.Set("orig_y", ny)
			d.env.Set("d", r)
			d.env.Set("angle", angle)
			d.env.Set("dx", 0)
			d.env.Set("dy", 0)

			d.run(d.pixelP)

			sx, sy := d.resolveSample(nx, ny)

			rr, gg, bb, aa := d.warp.SampleHistory(sx, sy, d.Wrap)
			oi := (py*w + px) * 4
			out[oi], out[oi+1], out[oi+2], out[oi+3] = rr, gg, bb, aa
		}
	}
	copy(f.Pix, out)

	d.syncGlobalsOut(ctx)
	d.drawErrorOverlay(ctx)
	return true
}

func (d *dynamicCore) resolveSample(origX, origY float64) (float64, float64) {
	switch d.kind {
	case dynamicShift:
		return origX + d.env.Get("dx"), origY + d.env.Get("dy")
	case dynamicDistance:
		dist := d.env.Get("d")
		angle := d.env.Get("angle")
		return dist * math.Cos(angle), dist * math.Sin(angle)
	default: // dynamicMovement
		return d.env.Get("x"), d.env.Get("y")
	}
}

// DynamicMovement remaps each pixel by the script-computed (x,y)
// directly.
type DynamicMovement struct{ dynamicCore }

func NewDynamicMovement() effect.Effect {
	d := &DynamicMovement{}
	d.base = newBase()
	d.kind = dynamicMovement
	return d
}

func (d *DynamicMovement) SetParams(p *effect.ParamBlock) error { d.setParams(p); return nil }
func (d *DynamicMovement) Render(ctx *rendercontext.Context) bool { return d.render(ctx) }

// DynamicShift remaps each pixel by a script-computed (dx,dy) offset
// from its original coordinate.
type DynamicShift struct{ dynamicCore }

func NewDynamicShift() effect.Effect {
	d := &DynamicShift{}
	d.base = newBase()
	d.kind = dynamicShift
	return d
}

func (d *DynamicShift) SetParams(p *effect.ParamBlock) error { d.setParams(p); return nil }
func (d *DynamicShift) Render(ctx *rendercontext.Context) bool { return d.render(ctx) }

// DynamicDistanceModifier remaps each pixel to the script-computed
// polar coordinate (d,angle) about the center; both start at the
// pixel's own polar coordinate.
type DynamicDistanceModifier struct{ dynamicCore }

func NewDynamicDistanceModifier() effect.Effect {
	d := &DynamicDistanceModifier{}
	d.base = newBase()
	d.kind = dynamicDistance
	return d
}

func (d *DynamicDistanceModifier) SetParams(p *effect.ParamBlock) error { d.setParams(p); return nil }
func (d *DynamicDistanceModifier) Render(ctx *rendercontext.Context) bool { return d.render(ctx) }
