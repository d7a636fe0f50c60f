package scripted

import (
	"github.com/pfahlr/vis-avs-sub001/internal/effect"
	"github.com/pfahlr/vis-avs-sub001/internal/effects/primitive"
	"github.com/pfahlr/vis-avs-sub001/internal/rendercontext"
)

const maxSuperScopePoints = 131072

// SuperScope renders n scripted points or connected lines whose
// position, color, and linewidth are produced per-point by the pixel
// stage's point-by-point mode.
type SuperScope struct {
	base
}

func NewSuperScope() effect.Effect {
	s := &SuperScope{base: newBase()}
	return s
}

func (s *SuperScope) SetParams(p *effect.ParamBlock) error {
	s.setStages(stagesFromParams(p))
	return nil
}

func sampleWaveform(wf []float64, idx float64) float64 {
	n := len(wf)
	if n == 0 {
		return 0
	}
	i := int(idx)
	if i < 0 {
		i = 0
	}
	if i >= n {
		i = n - 1
	}
	return wf[i]
}

func (s *SuperScope) Render(ctx *rendercontext.Context) bool {
	s.runFrameLifecycle(ctx)

	n := int(s.env.Get("n"))
	if n <= 0 {
		n = 100
		s.env.Set("n", float64(n))
	}
	if n > maxSuperScopePoints {
		n = maxSuperScopePoints
	}

	f := ctx.Framebuffer.Current
	var prevX, prevY int
	havePrev := false

	for idx := 0; idx < n; idx++ {
		i := float64(idx) / maxFloat(float64(n-1), 1)
		v := sampleWaveform(ctx.Waveform[:], i*575)

		x := 2*i - 1
		y := 0.0
		s.env.Set("i", i)
		s.env.Set("v", v)
		s.env.Set("x", x)
		s.env.Set("y", y)
		s.env.Set("skip", 0)
		s.env.Set("drawmode", 0)
		s.env.Set("linesize", 1)

		px := int((x + 1) / 2 * float64(f.Width))
		py := int((y + 1) / 2 * float64(f.Height))
		if f.InBounds(px, py) {
			r, g, b, _ := f.At(px, py)
			s.env.Set("red", float64(r)/255)
			s.env.Set("green", float64(g)/255)
			s.env.Set("blue", float64(b)/255)
		}

		s.run(s.pixelP)

		if s.env.Get("skip") != 0 {
			havePrev = false
			continue
		}

		ox := s.env.Get("x")
		oy := s.env.Get("y")
		px = clampInt(int((ox+1)/2*float64(f.Width)), 0, f.Width-1)
		py = clampInt(int((oy+1)/2*float64(f.Height)), 0, f.Height-1)

		color := primitive.RGBA{
			R: byteFromUnit(s.env.Get("red")),
			G: byteFromUnit(s.env.Get("green")),
			B: byteFromUnit(s.env.Get("blue")),
			A: 255,
		}

		drawMode := s.env.Get("drawmode")
		lineSize := int(s.env.Get("linesize"))
		if lineSize < 1 {
			lineSize = 1
		}
		if lineSize > 255 {
			lineSize = 255
		}

		if drawMode > 0 && havePrev {
			primitive.DrawThickLine(f, prevX, prevY, px, py, lineSize, color, ctx.Globals)
		} else {
			primitive.DrawFilledCircle(f, px, py, (lineSize-1)/2, color, ctx.Globals)
		}
		prevX, prevY = px, py
		havePrev = true
	}

	s.syncGlobalsOut(ctx)
	s.drawErrorOverlay(ctx)
	return true
}

func maxFloat(a, b float64) float64 {
	if a > b {
		return a
	}
	return b
}

func byteFromUnit(v float64) uint8 {
	return uint8(clampInt(int(v*255), 0, 255))
}
