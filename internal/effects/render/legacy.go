package render

import (
	"github.com/pfahlr/vis-avs-sub001/internal/effect"
	"github.com/pfahlr/vis-avs-sub001/internal/effects/primitive"
	"github.com/pfahlr/vis-avs-sub001/internal/rendercontext"
)

// DotGrid draws a static grid of dots whose brightness pulses with
// bass energy, the non-scrolling sibling of DotPlane (binary
// effectId 17).
type DotGrid struct {
	Spacing int
	Color   int32
}

func NewDotGrid() effect.Effect { return &DotGrid{Spacing: 16, Color: 0x8080FF} }

func (d *DotGrid) SetParams(p *effect.ParamBlock) error {
	spacing := p.GetInt("spacing", int32(d.Spacing))
	if spacing < 2 {
		spacing = 2
	}
	d.Spacing = int(spacing)
	d.Color = p.GetInt("color", d.Color)
	return nil
}

func (d *DotGrid) Render(ctx *rendercontext.Context) bool {
	f := ctx.Framebuffer.Current
	base := primitive.FromInt(d.Color, 255)
	gain := 0.4 + 0.6*ctx.Bass
	c := primitive.RGBA{
		R: clampChan(float64(base.R) * gain),
		G: clampChan(float64(base.G) * gain),
		B: clampChan(float64(base.B) * gain),
		A: 255,
	}
	for y := d.Spacing / 2; y < f.Height; y += d.Spacing {
		for x := d.Spacing / 2; x < f.Width; x += d.Spacing {
			primitive.BlendPixel(f, x, y, c, ctx.Globals)
		}
	}
	return true
}

func clampChan(v float64) uint8 {
	if v < 0 {
		return 0
	}
	if v > 255 {
		return 255
	}
	return uint8(v)
}

// starfieldStars is the fixed pool size StarField cycles through.
const starfieldStars = 128

type star struct {
	x, y, z float64
}

// StarField renders a classic outward-flying starfield whose speed
// tracks bass energy, reseeding a star to the center whenever it
// passes the near plane (binary effectId 27).
type StarField struct {
	Color int32
	Speed float32

	stars [starfieldStars]star
	ready bool
}

func NewStarField() effect.Effect { return &StarField{Color: 0xFFFFFF, Speed: 1} }

func (s *StarField) SetParams(p *effect.ParamBlock) error {
	s.Color = p.GetInt("color", s.Color)
	s.Speed = p.GetFloat("speed", s.Speed)
	return nil
}

func (s *StarField) seed(ctx *rendercontext.Context, i int) {
	s.stars[i] = star{
		x: ctx.Rng.Uniform(-1, 1),
		y: ctx.Rng.Uniform(-1, 1),
		z: ctx.Rng.Uniform(0.1, 1),
	}
}

func (s *StarField) Render(ctx *rendercontext.Context) bool {
	f := ctx.Framebuffer.Current
	clearBlack(f)
	if !s.ready {
		for i := range s.stars {
			s.seed(ctx, i)
		}
		s.ready = true
	}
	color := primitive.FromInt(s.Color, 255)
	speed := float64(s.Speed) * (0.3 + ctx.Bass)
	cx, cy := f.Width/2, f.Height/2
	for i := range s.stars {
		st := &s.stars[i]
		st.z -= speed * ctx.DeltaSeconds
		if st.z <= 0.05 {
			s.seed(ctx, i)
			st = &s.stars[i]
			st.z = 1
		}
		px := cx + int(st.x/st.z*float64(cx))
		py := cy + int(st.y/st.z*float64(cy))
		primitive.BlendPixel(f, px, py, color, ctx.Globals)
	}
	return true
}

// TextEffect draws a fixed configured string with the built-in bitmap
// font (binary effectId 28), the static counterpart to LevelText's
// numeric readouts.
type TextEffect struct {
	Text  string
	X, Y  int
	Scale int
	Color int32
}

func NewTextEffect() effect.Effect {
	return &TextEffect{Text: "AVS", Scale: 2, Color: 0xFFFFFF}
}

func (t *TextEffect) SetParams(p *effect.ParamBlock) error {
	t.Text = p.GetString("text", t.Text)
	t.X = int(p.GetInt("x", int32(t.X)))
	t.Y = int(p.GetInt("y", int32(t.Y)))
	scale := p.GetInt("scale", int32(t.Scale))
	if scale < 1 {
		scale = 1
	}
	t.Scale = int(scale)
	t.Color = p.GetInt("color", t.Color)
	return nil
}

func (t *TextEffect) Render(ctx *rendercontext.Context) bool {
	f := ctx.Framebuffer.Current
	primitive.DrawText(f, t.X, t.Y, t.Text, primitive.FromInt(t.Color, 255), t.Scale, ctx.Globals)
	return true
}
