// Package filters implements the in-place convolution/mapping kernels:
// box blur, grain, color map, 3x3 convolution, fast brightness,
// interference patterns, and color clipping.
package filters

import (
	"github.com/pfahlr/vis-avs-sub001/internal/effect"
	"github.com/pfahlr/vis-avs-sub001/internal/framebuffer"
	"github.com/pfahlr/vis-avs-sub001/internal/rendercontext"
)

// BoxBlur applies a separable horizontal+vertical box blur via
// running prefix sums, with edge pixels replicated.
type BoxBlur struct {
	Radius        int
	PreserveAlpha bool
}

func NewBoxBlur() effect.Effect { return &BoxBlur{Radius: 1} }

func (b *BoxBlur) SetParams(p *effect.ParamBlock) error {
	r := p.GetInt("radius", int32(b.Radius))
	if r < 0 {
		r = 0
	}
	if r > 32 {
		r = 32
	}
	b.Radius = int(r)
	b.PreserveAlpha = p.GetBool("preserve_alpha", b.PreserveAlpha)
	return nil
}

func (b *BoxBlur) Render(ctx *rendercontext.Context) bool {
	if b.Radius <= 0 {
		return true
	}
	f := ctx.Framebuffer.Current
	channels := 4
	if b.PreserveAlpha {
		channels = 3
	}
	blurHorizontal(f, b.Radius, channels)
	blurVertical(f, b.Radius, channels)
	return true
}

func blurHorizontal(f *framebuffer.Frame, radius, channels int) {
	row := make([]byte, f.Width*4)
	for y := 0; y < f.Height; y++ {
		copy(row, f.Pix[y*f.Width*4:(y+1)*f.Width*4])
		for c := 0; c < channels; c++ {
			boxBlur1D(row, f.Width, 4, c, radius)
		}
		copy(f.Pix[y*f.Width*4:(y+1)*f.Width*4], row)
	}
}

func blurVertical(f *framebuffer.Frame, radius, channels int) {
	col := make([]byte, f.Height*4)
	for x := 0; x < f.Width; x++ {
		for y := 0; y < f.Height; y++ {
			i := (y*f.Width + x) * 4
			copy(col[y*4:y*4+4], f.Pix[i:i+4])
		}
		for c := 0; c < channels; c++ {
			boxBlur1D(col, f.Height, 4, c, radius)
		}
		for y := 0; y < f.Height; y++ {
			i := (y*f.Width + x) * 4
			copy(f.Pix[i:i+4], col[y*4:y*4+4])
		}
	}
}

// boxBlur1D averages a replicated-edge window of 2*radius+1 samples
// around each position of one channel of a stride-4 line, in place.
func boxBlur1D(line []byte, n, stride, channel, radius int) {
	out := make([]byte, n)
	window := 2*radius + 1
	var sum int
	get := func(i int) int {
		if i < 0 {
			i = 0
		}
		if i >= n {
			i = n - 1
		}
		return int(line[i*stride+channel])
	}
	for i := -radius; i <= radius; i++ {
		sum += get(i)
	}
	for i := 0; i < n; i++ {
		out[i] = byte(sum / window)
		sum -= get(i - radius)
		sum += get(i + radius + 1)
	}
	for i := 0; i < n; i++ {
		line[i*stride+channel] = out[i]
	}
}
