package render

import (
	"math"

	"github.com/pfahlr/vis-avs-sub001/internal/effect"
	"github.com/pfahlr/vis-avs-sub001/internal/effects/primitive"
	"github.com/pfahlr/vis-avs-sub001/internal/rendercontext"
)

// OscilloscopeStar places N arm tips around the center, each at a
// distance modulated by one waveform sample, and draws the closed
// polygon joining them; the arms themselves are not drawn.
type OscilloscopeStar struct {
	Arms   int
	Color  int32
	Rotate float64

	rotation float64
}

func NewOscilloscopeStar() effect.Effect {
	return &OscilloscopeStar{Arms: 5, Color: 0xFFFFFF}
}

func (o *OscilloscopeStar) SetParams(p *effect.ParamBlock) error {
	arms := p.GetInt("arms", int32(o.Arms))
	if arms < 2 {
		arms = 2
	}
	o.Arms = int(arms)
	o.Color = p.GetInt("color", o.Color)
	o.Rotate = float64(p.GetFloat("rotate", float32(o.Rotate)))
	return nil
}

func (o *OscilloscopeStar) Render(ctx *rendercontext.Context) bool {
	f := ctx.Framebuffer.Current
	color := primitive.FromInt(o.Color, 255)
	cx, cy := f.Width/2, f.Height/2
	baseRadius := float64(minInt(f.Width, f.Height)) / 3

	o.rotation += o.Rotate

	pts := make([]primitive.Point, o.Arms)
	for i := 0; i < o.Arms; i++ {
		theta := o.rotation + 2*math.Pi*float64(i)/float64(o.Arms)
		sampleIdx := (i * len(ctx.Waveform)) / o.Arms
		amp := 1 + ctx.Waveform[sampleIdx]
		r := baseRadius * amp * 0.5
		pts[i] = primitive.Point{
			X: cx + int(r*math.Cos(theta)),
			Y: cy + int(r*math.Sin(theta)),
		}
	}
	for i := 0; i < o.Arms; i++ {
		next := (i + 1) % o.Arms
		primitive.DrawThickLine(f, pts[i].X, pts[i].Y, pts[next].X, pts[next].Y, 1, color, ctx.Globals)
	}
	return true
}

// RotatingStars draws several rotating star polygons whose radius
// responds to the spectrum (the vertex count stays fixed); each star's phase is
// offset so the set reads as a swirling cluster.
type RotatingStars struct {
	Count  int
	Points int
	Color  int32
	Speed  float64

	rotation float64
}

func NewRotatingStars() effect.Effect {
	return &RotatingStars{Count: 3, Points: 5, Color: 0xFF00FF, Speed: 0.05}
}

func (r *RotatingStars) SetParams(p *effect.ParamBlock) error {
	c := p.GetInt("count", int32(r.Count))
	if c < 1 {
		c = 1
	}
	r.Count = int(c)
	pts := p.GetInt("points", int32(r.Points))
	if pts < 3 {
		pts = 3
	}
	r.Points = int(pts)
	r.Color = p.GetInt("color", r.Color)
	r.Speed = float64(p.GetFloat("speed", float32(r.Speed)))
	return nil
}

func (r *RotatingStars) Render(ctx *rendercontext.Context) bool {
	f := ctx.Framebuffer.Current
	color := primitive.FromInt(r.Color, 255)
	r.rotation += r.Speed

	cx, cy := float64(f.Width)/2, float64(f.Height)/2
	maxR := float64(minInt(f.Width, f.Height)) / 4

	for s := 0; s < r.Count; s++ {
		offsetTheta := 2 * math.Pi * float64(s) / float64(r.Count)
		starCX := cx + maxR*math.Cos(offsetTheta)
		starCY := cy + maxR*math.Sin(offsetTheta)

		bin := (s * len(ctx.Spectrum)) / r.Count
		radius := maxR * 0.5 * (0.3 + ctx.Spectrum[bin])

		pts := make([]primitive.Point, r.Points)
		for i := 0; i < r.Points; i++ {
			theta := r.rotation + 2*math.Pi*float64(i)/float64(r.Points)
			pts[i] = primitive.Point{
				X: int(starCX + radius*math.Cos(theta)),
				Y: int(starCY + radius*math.Sin(theta)),
			}
		}
		for i := 0; i < r.Points; i++ {
			next := (i + 1) % r.Points
			primitive.DrawThickLine(f, pts[i].X, pts[i].Y, pts[next].X, pts[next].Y, 1, color, ctx.Globals)
		}
	}
	return true
}
