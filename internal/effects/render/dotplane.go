package render

import (
	"math"

	"github.com/pfahlr/vis-avs-sub001/internal/effect"
	"github.com/pfahlr/vis-avs-sub001/internal/effects/primitive"
	"github.com/pfahlr/vis-avs-sub001/internal/rendercontext"
)

// DotPlane renders a rotating grid of dots whose height is displaced
// by the waveform and whose color cycles between Color2 and Color3,
// restored from the original source's stub headers.
type DotPlane struct {
	RotVel  float64
	Angle   float64
	Color2  int32
	Color3  int32
	GridW   int
	GridH   int

	rotation      float64
	paletteCursor int
}

func NewDotPlane() effect.Effect {
	return &DotPlane{RotVel: 0, Angle: 0, Color2: 0xFFFFFF, Color3: 0xFFFFFF, GridW: 32, GridH: 32}
}

func (d *DotPlane) SetParams(p *effect.ParamBlock) error {
	d.RotVel = float64(p.GetFloat("rotvel", float32(d.RotVel)))
	d.Angle = float64(p.GetFloat("angle", float32(d.Angle)))
	d.Color2 = p.GetInt("color2", d.Color2)
	d.Color3 = p.GetInt("color3", d.Color3)
	gw := p.GetInt("grid_w", int32(d.GridW))
	gh := p.GetInt("grid_h", int32(d.GridH))
	if gw > 0 {
		d.GridW = int(gw)
	}
	if gh > 0 {
		d.GridH = int(gh)
	}
	return nil
}

func (d *DotPlane) cycleColor() primitive.RGBA {
	cursor := d.paletteCursor % (2 * kColorCycle)
	frac := float64(cursor%kColorCycle) / kColorCycle
	a := primitive.FromInt(d.Color2, 255)
	b := primitive.FromInt(d.Color3, 255)
	return primitive.RGBA{
		R: lerpByte(a.R, b.R, frac),
		G: lerpByte(a.G, b.G, frac),
		B: lerpByte(a.B, b.B, frac),
		A: 255,
	}
}

func (d *DotPlane) Render(ctx *rendercontext.Context) bool {
	f := ctx.Framebuffer.Current
	d.rotation += d.RotVel * 0.01745329252 // deg->rad per frame step
	baseAngle := d.Angle*math.Pi/180 + d.rotation

	cx, cy := float64(f.Width)/2, float64(f.Height)/2
	spacingX := float64(f.Width) / float64(d.GridW)
	spacingY := float64(f.Height) / float64(d.GridH)
	cosA, sinA := math.Cos(baseAngle), math.Sin(baseAngle)

	color := d.cycleColor()
	n := len(ctx.Waveform)
	for gy := 0; gy < d.GridH; gy++ {
		for gx := 0; gx < d.GridW; gx++ {
			px := (float64(gx)+0.5)*spacingX - cx
			py := (float64(gy)+0.5)*spacingY - cy
			rx := px*cosA - py*sinA
			ry := px*sinA + py*cosA

			idx := ((gy*d.GridW + gx) % n)
			disp := ctx.Waveform[idx] * spacingY * 0.5

			x := int(rx + cx)
			y := int(ry + cy + disp)
			if f.InBounds(x, y) {
				primitive.DrawFilledCircle(f, x, y, 1, color, ctx.Globals)
			}
		}
	}
	d.paletteCursor++
	return true
}

// DotFountain shoots dots radially outward from the frame center with
// a velocity driven by the waveform, recycling each dot once it leaves
// the frame (original_source stub, rebuilt with the same palette
// machinery as DotPlane).
type DotFountain struct {
	RotVel int
	Color2 int32
	Color3 int32

	count         int
	angles        []float64
	radii         []float64
	paletteCursor int
}

func NewDotFountain() effect.Effect {
	return &DotFountain{RotVel: 4, Color2: 0xFFFFFF, Color3: 0xFFFFFF, count: 80}
}

func (d *DotFountain) SetParams(p *effect.ParamBlock) error {
	d.RotVel = int(p.GetInt("rotvel", int32(d.RotVel)))
	d.Color2 = p.GetInt("color2", d.Color2)
	d.Color3 = p.GetInt("color3", d.Color3)
	n := p.GetInt("count", int32(d.count))
	if n > 0 {
		d.count = int(n)
	}
	return nil
}

func (d *DotFountain) ensure() {
	if len(d.angles) == d.count {
		return
	}
	d.angles = make([]float64, d.count)
	d.radii = make([]float64, d.count)
	for i := range d.angles {
		d.angles[i] = 2 * math.Pi * float64(i) / float64(d.count)
	}
}

func (d *DotFountain) cycleColor(i int) primitive.RGBA {
	cursor := (d.paletteCursor + i*3) % (2 * kColorCycle)
	frac := float64(cursor%kColorCycle) / kColorCycle
	a := primitive.FromInt(d.Color2, 255)
	b := primitive.FromInt(d.Color3, 255)
	return primitive.RGBA{
		R: lerpByte(a.R, b.R, frac),
		G: lerpByte(a.G, b.G, frac),
		B: lerpByte(a.B, b.B, frac),
		A: 255,
	}
}

func (d *DotFountain) Render(ctx *rendercontext.Context) bool {
	f := ctx.Framebuffer.Current
	d.ensure()
	cx, cy := float64(f.Width)/2, float64(f.Height)/2
	maxR := math.Hypot(cx, cy)

	for i := range d.angles {
		sampleIdx := (i * len(ctx.Waveform)) / len(d.angles)
		speed := (math.Abs(ctx.Waveform[sampleIdx]) + 0.1) * 4
		d.radii[i] += speed
		if d.radii[i] > maxR {
			d.radii[i] = 0
		}
		d.angles[i] += float64(d.RotVel) * 0.001745329252
		x := int(cx + d.radii[i]*math.Cos(d.angles[i]))
		y := int(cy + d.radii[i]*math.Sin(d.angles[i]))
		if f.InBounds(x, y) {
			primitive.DrawFilledCircle(f, x, y, 1, d.cycleColor(i), ctx.Globals)
		}
	}
	d.paletteCursor++
	return true
}
