package trans

import (
	"math"

	"github.com/pfahlr/vis-avs-sub001/internal/effect"
	"github.com/pfahlr/vis-avs-sub001/internal/rendercontext"
)

// RotoBlitter is an affine (rotation + uniform zoom) resample around a
// configurable anchor, with optional blend of the result back into the
// current frame and optional sub-pixel (bilinear) sampling.
type RotoBlitter struct {
	ThetaRadians float64
	Zoom         float64
	AnchorX      float64
	AnchorY      float64
	BlendHalf    bool
	SubPixel     bool

	warp FrameWarp
}

func NewRotoBlitter() effect.Effect {
	return &RotoBlitter{Zoom: 1, AnchorX: 0.5, AnchorY: 0.5, SubPixel: true}
}

func (r *RotoBlitter) SetParams(p *effect.ParamBlock) error {
	r.ThetaRadians = float64(p.GetFloat("theta", float32(r.ThetaRadians)))
	zoom := p.GetFloat("zoom", float32(r.Zoom))
	if zoom == 0 {
		zoom = 1
	}
	r.Zoom = float64(zoom)
	r.AnchorX = float64(p.GetFloat("anchor_x", float32(r.AnchorX)))
	r.AnchorY = float64(p.GetFloat("anchor_y", float32(r.AnchorY)))
	r.BlendHalf = p.GetBool("blend", r.BlendHalf)
	r.SubPixel = p.GetBool("subpixel", r.SubPixel)
	return nil
}

func (r *RotoBlitter) Render(ctx *rendercontext.Context) bool {
	f := ctx.Framebuffer.Current
	r.warp.Capture(f)
	if !r.warp.Ready() {
		return true
	}

	ax, ay := r.AnchorX*2-1, r.AnchorY*2-1
	sinT, cosT := math.Sin(r.ThetaRadians), math.Cos(r.ThetaRadians)

	out := make([]byte, len(f.Pix))
	for y := 0; y < f.Height; y++ {
		ny := 1 - (float64(y)/float64(f.Height-1))*2
		for x := 0; x < f.Width; x++ {
			nx := (float64(x)/float64(f.Width-1))*2 - 1
			px, py := (nx-ax)/r.Zoom, (ny-ay)/r.Zoom
			rx := px*cosT - py*sinT + ax
			ry := px*sinT + py*cosT + ay

			var sr, sg, sb, sa uint8
			if r.SubPixel {
				sr, sg, sb, sa = r.warp.SampleHistory(rx, ry, false)
			} else {
				u := int((rx + 1) / 2 * float64(f.Width-1))
				v := int((1 - (ry+1)/2) * float64(f.Height-1))
				sr, sg, sb, sa = r.warp.SampleHistory((float64(u)/float64(f.Width-1))*2-1, 1-(float64(v)/float64(f.Height-1))*2, false)
			}

			i := (y*f.Width + x) * 4
			if r.BlendHalf {
				out[i] = uint8((int(f.Pix[i]) + int(sr)) / 2)
				out[i+1] = uint8((int(f.Pix[i+1]) + int(sg)) / 2)
				out[i+2] = uint8((int(f.Pix[i+2]) + int(sb)) / 2)
				out[i+3] = uint8((int(f.Pix[i+3]) + int(sa)) / 2)
			} else {
				out[i], out[i+1], out[i+2], out[i+3] = sr, sg, sb, sa
			}
		}
	}
	copy(f.Pix, out)
	return true
}
