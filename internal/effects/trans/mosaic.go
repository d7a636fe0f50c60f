package trans

import (
	"github.com/pfahlr/vis-avs-sub001/internal/effect"
	"github.com/pfahlr/vis-avs-sub001/internal/rendercontext"
)

// MosaicBlend selects how a Mosaic's block-quantized output combines
// with the existing frame.
type MosaicBlend int

const (
	MosaicReplace MosaicBlend = iota
	MosaicAdditive
)

// Mosaic block-quantizes the image to a target block count per axis.
// Quality optionally ramps back toward a base value after a beat, over
// BeatDuration frames.
type Mosaic struct {
	Quality      int
	Blend        MosaicBlend
	BeatLocked   bool
	QualityBase  int
	BeatDuration int

	quality    float64
	rampFrames int
}

// NewMosaic returns a Mosaic at full quality (no block averaging).
func NewMosaic() effect.Effect {
	return &Mosaic{Quality: 100, QualityBase: 100, BeatDuration: 15, quality: 100}
}

func (m *Mosaic) SetParams(p *effect.ParamBlock) error {
	q := p.GetInt("quality", int32(m.Quality))
	if q < 1 {
		q = 1
	}
	if q > 100 {
		q = 100
	}
	m.Quality = int(q)
	m.Blend = MosaicBlend(p.GetInt("blend", int32(m.Blend)))
	m.BeatLocked = p.GetBool("beat_locked", m.BeatLocked)
	m.QualityBase = int(p.GetInt("quality_base", int32(m.QualityBase)))
	m.BeatDuration = int(p.GetInt("beat_duration", int32(m.BeatDuration)))
	if m.quality == 0 {
		m.quality = float64(m.Quality)
	}
	return nil
}

func (m *Mosaic) Render(ctx *rendercontext.Context) bool {
	f := ctx.Framebuffer.Current
	w, h := f.Width, f.Height

	quality := float64(m.Quality)
	if m.BeatLocked {
		if ctx.Beat {
			m.rampFrames = m.BeatDuration
		}
		if m.rampFrames > 0 {
			step := (float64(m.QualityBase) - m.quality) / float64(m.rampFrames)
			m.quality += step
			m.rampFrames--
		} else {
			m.quality = float64(m.QualityBase)
		}
		quality = m.quality
	}
	if quality < 1 {
		quality = 1
	}

	blocksX := int(quality)
	if blocksX > w {
		blocksX = w
	}
	blocksY := int(quality)
	if blocksY > h {
		blocksY = h
	}
	if blocksX < 1 {
		blocksX = 1
	}
	if blocksY < 1 {
		blocksY = 1
	}

	sInc := (w << 16) / blocksX
	yInc := (h << 16) / blocksY

	out := make([]byte, len(f.Pix))
	sy := 0
	for by := 0; by < blocksY; by++ {
		y0 := sy >> 16
		y1 := (sy + yInc) >> 16
		if y1 > h {
			y1 = h
		}
		sx := 0
		for bx := 0; bx < blocksX; bx++ {
			x0 := sx >> 16
			x1 := (sx + sInc) >> 16
			if x1 > w {
				x1 = w
			}
			if x0 < w && y0 < h {
				i := (y0*w + x0) * 4
				r, g, b, a := f.Pix[i], f.Pix[i+1], f.Pix[i+2], f.Pix[i+3]
				for yy := y0; yy < y1; yy++ {
					for xx := x0; xx < x1; xx++ {
						oi := (yy*w + xx) * 4
						out[oi], out[oi+1], out[oi+2], out[oi+3] = r, g, b, a
					}
				}
			}
			sx += sInc
		}
		sy += yInc
	}

	switch m.Blend {
	case MosaicAdditive:
		for i := range f.Pix {
			sum := int(f.Pix[i]) + int(out[i])
			if sum > 255 {
				sum = 255
			}
			f.Pix[i] = byte(sum)
		}
	default:
		copy(f.Pix, out)
	}
	return true
}
