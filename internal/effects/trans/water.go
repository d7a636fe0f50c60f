package trans

import (
	"github.com/pfahlr/vis-avs-sub001/internal/effect"
	"github.com/pfahlr/vis-avs-sub001/internal/rendercontext"
)

// Water is a reaction-diffusion ripple approximation: each pixel
// becomes the average of its 4-neighbors minus the pixel's value from
// the previous pass. Edge pixels have fewer than 4 neighbors; their
// contribution is halved rather than divided by the true neighbor
// count, matching the legacy integer behavior.
type Water struct {
	lastFrame []byte
	width     int
	height    int
}

func NewWater() effect.Effect { return &Water{} }

func (w *Water) SetParams(p *effect.ParamBlock) error { return nil }

func (w *Water) Render(ctx *rendercontext.Context) bool {
	f := ctx.Framebuffer.Current
	if w.lastFrame == nil || w.width != f.Width || w.height != f.Height {
		w.lastFrame = make([]byte, len(f.Pix))
		copy(w.lastFrame, f.Pix)
		w.width, w.height = f.Width, f.Height
		return true
	}

	out := make([]byte, len(f.Pix))
	neighbor := func(x, y, c int) (int, bool) {
		if x < 0 || x >= f.Width || y < 0 || y >= f.Height {
			return 0, false
		}
		return int(f.Pix[(y*f.Width+x)*4+c]), true
	}

	for y := 0; y < f.Height; y++ {
		for x := 0; x < f.Width; x++ {
			i := (y*f.Width + x) * 4
			for c := 0; c < 3; c++ {
				sum := 0
				count := 0
				if v, ok := neighbor(x-1, y, c); ok {
					sum += v
					count++
				}
				if v, ok := neighbor(x+1, y, c); ok {
					sum += v
					count++
				}
				if v, ok := neighbor(x, y-1, c); ok {
					sum += v
					count++
				}
				if v, ok := neighbor(x, y+1, c); ok {
					sum += v
					count++
				}
				if count < 4 {
					sum /= 2
				} else {
					sum /= 4
				}
				prev := int(w.lastFrame[i+c])
				v := sum - prev
				if v < 0 {
					v = 0
				}
				if v > 255 {
					v = 255
				}
				out[i+c] = byte(v)
			}
			out[i+3] = f.Pix[i+3]
		}
	}

	copy(w.lastFrame, f.Pix)
	copy(f.Pix, out)
	return true
}

// WaterBump is an integer ripple solver over a 1-channel height
// buffer, with beat-triggered drop imprints and a per-pixel refraction
// displacement of the source image.
type WaterBump struct {
	Damping    int
	DropRadius int
	DropDepth  int
	SineBlob   bool
	RandomDrop bool
	DropX      int
	DropY      int

	curH, nextH []int32
	width       int
	height      int
	srcCopy     []byte
}

func NewWaterBump() effect.Effect {
	return &WaterBump{Damping: 2, DropRadius: 8, DropDepth: 1024, SineBlob: true}
}

func (wb *WaterBump) SetParams(p *effect.ParamBlock) error {
	d := p.GetInt("damping", int32(wb.Damping))
	if d < 0 {
		d = 0
	}
	if d > 10 {
		d = 10
	}
	wb.Damping = int(d)
	wb.DropRadius = int(p.GetInt("drop_radius", int32(wb.DropRadius)))
	wb.DropDepth = int(p.GetInt("drop_depth", int32(wb.DropDepth)))
	wb.SineBlob = p.GetBool("sine_blob", wb.SineBlob)
	wb.RandomDrop = p.GetBool("random_drop", wb.RandomDrop)
	wb.DropX = int(p.GetInt("drop_x", int32(wb.DropX)))
	wb.DropY = int(p.GetInt("drop_y", int32(wb.DropY)))
	return nil
}

func (wb *WaterBump) ensure(w, h int) {
	if wb.width == w && wb.height == h && wb.curH != nil {
		return
	}
	wb.width, wb.height = w, h
	wb.curH = make([]int32, w*h)
	wb.nextH = make([]int32, w*h)
}

func (wb *WaterBump) imprint(ctx *rendercontext.Context) {
	x0, y0 := wb.DropX, wb.DropY
	if wb.RandomDrop {
		x0 = int(ctx.Rng.NextUint32() % uint32(wb.width))
		y0 = int(ctx.Rng.NextUint32() % uint32(wb.height))
	}
	r := wb.DropRadius
	for dy := -r; dy <= r; dy++ {
		y := y0 + dy
		if y < 0 || y >= wb.height {
			continue
		}
		for dx := -r; dx <= r; dx++ {
			x := x0 + dx
			if x < 0 || x >= wb.width {
				continue
			}
			d := dx*dx + dy*dy
			if d > r*r {
				continue
			}
			var delta int32
			if wb.SineBlob {
				scale := 3.14159265 / float64(r*r+1)
				delta = int32((cosApprox(float64(d)*scale) + 65535) * float64(wb.DropDepth) / 524288)
			} else {
				delta = int32(wb.DropDepth)
			}
			wb.curH[y*wb.width+x] += delta
		}
	}
}

func cosApprox(x float64) float64 {
	// Fourth-order Taylor series for cosine after reducing x to
	// [-pi, pi]; sufficient precision for the blob falloff.
	for x > 3.14159265 {
		x -= 2 * 3.14159265
	}
	for x < -3.14159265 {
		x += 2 * 3.14159265
	}
	x2 := x * x
	return 1 - x2/2 + x2*x2/24
}

func (wb *WaterBump) Render(ctx *rendercontext.Context) bool {
	f := ctx.Framebuffer.Current
	wb.ensure(f.Width, f.Height)

	if wb.srcCopy == nil || len(wb.srcCopy) != len(f.Pix) {
		wb.srcCopy = make([]byte, len(f.Pix))
	}
	copy(wb.srcCopy, f.Pix)

	if ctx.Beat {
		wb.imprint(ctx)
	}

	w, h := wb.width, wb.height
	at := func(x, y int) int32 {
		if x < 0 || x >= w || y < 0 || y >= h {
			return 0
		}
		return wb.curH[y*w+x]
	}

	for y := 1; y < h-1; y++ {
		for x := 1; x < w-1; x++ {
			sum := at(x-1, y-1) + at(x, y-1) + at(x+1, y-1) +
				at(x-1, y) + at(x+1, y) +
				at(x-1, y+1) + at(x, y+1) + at(x+1, y+1)
			next := sum/4 - wb.curH[y*w+x]
			next -= next >> uint(wb.Damping)
			wb.nextH[y*w+x] = next
		}
	}
	for x := 0; x < w; x++ {
		wb.nextH[x] = 0
		wb.nextH[(h-1)*w+x] = 0
	}
	for y := 0; y < h; y++ {
		wb.nextH[y*w] = 0
		wb.nextH[y*w+w-1] = 0
	}
	wb.curH, wb.nextH = wb.nextH, wb.curH

	sampleSrc := func(x, y int) (r, g, b, a byte) {
		if x < 0 {
			x = 0
		}
		if x >= w {
			x = w - 1
		}
		if y < 0 {
			y = 0
		}
		if y >= h {
			y = h - 1
		}
		i := (y*w + x) * 4
		return wb.srcCopy[i], wb.srcCopy[i+1], wb.srcCopy[i+2], wb.srcCopy[i+3]
	}

	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			cur := wb.curH[y*w+x]
			var right, down int32
			if x+1 < w {
				right = wb.curH[y*w+x+1]
			}
			if y+1 < h {
				down = wb.curH[(y+1)*w+x]
			}
			sx := x + int((cur-right)>>3)
			sy := y + int((cur-down)>>3)
			r, g, b, a := sampleSrc(sx, sy)
			i := (y*w + x) * 4
			f.Pix[i], f.Pix[i+1], f.Pix[i+2], f.Pix[i+3] = r, g, b, a
		}
	}
	return true
}
