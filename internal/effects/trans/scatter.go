package trans

import (
	"github.com/pfahlr/vis-avs-sub001/internal/effect"
	"github.com/pfahlr/vis-avs-sub001/internal/rendercontext"
)

const scatterTableSize = 512

// Scatter displaces each pixel by a small pseudo-random offset drawn
// from a fixed table, weighted down toward the frame edges so the
// border stays stable.
type Scatter struct {
	table [scatterTableSize]int
	built bool
	w, h  int
}

func NewScatter() effect.Effect { return &Scatter{} }

func (s *Scatter) SetParams(p *effect.ParamBlock) error { return nil }

func (s *Scatter) buildTable(w int) {
	// 8x8 neighborhood offsets in pixels, flattened as dy*w+dx; each of
	// the 64 offsets fills a run of scatterTableSize/64 consecutive
	// table entries.
	n := 0
	for dy := -4; dy < 4; dy++ {
		for dx := -4; dx < 4; dx++ {
			for rep := 0; rep < scatterTableSize/64; rep++ {
				if n >= scatterTableSize {
					break
				}
				s.table[n] = dy*w + dx
				n++
			}
		}
	}
	s.built = true
}

func chebyshevEdgeDist(x, y, w, h int) int {
	d := x
	if w-1-x < d {
		d = w - 1 - x
	}
	if y < d {
		d = y
	}
	if h-1-y < d {
		d = h - 1 - y
	}
	return d
}

func (s *Scatter) Render(ctx *rendercontext.Context) bool {
	f := ctx.Framebuffer.Current
	w, h := f.Width, f.Height
	if !s.built || s.w != w {
		s.buildTable(w)
		s.w, s.h = w, h
	}

	src := make([]byte, len(f.Pix))
	copy(src, f.Pix)

	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			d := chebyshevEdgeDist(x, y, w, h)
			weight := d
			if weight > 4 {
				weight = 4
			}
			if weight == 0 {
				continue
			}
			idx := ctx.Rng.NextUint32() & (scatterTableSize - 1)
			flat := y*w + x + s.table[idx]
			if flat < 0 {
				flat = 0
			}
			if flat >= w*h {
				flat = w*h - 1
			}
			si := flat * 4
			di := (y*w + x) * 4
			t := float64(weight) / 4.0
			for c := 0; c < 4; c++ {
				in := float64(src[di+c])
				sc := float64(src[si+c])
				v := in*(1-t) + sc*t
				if v < 0 {
					v = 0
				}
				if v > 255 {
					v = 255
				}
				f.Pix[di+c] = byte(v)
			}
		}
	}
	return true
}
