package trans

import (
	"math"

	"github.com/pfahlr/vis-avs-sub001/internal/effect"
	"github.com/pfahlr/vis-avs-sub001/internal/rendercontext"
)

// Rotation90 is a quarter-turn count around the frame center.
type Rotation90 int

const (
	Rotate0 Rotation90 = iota
	Rotate90
	Rotate180
	Rotate270
)

// BlitterFeedback composes optional mirroring and a 0/90/180/270°
// rotation around the frame center, samples the previous frame through
// it, and scales the result's color channels by a feedback gain.
type BlitterFeedback struct {
	MirrorH, MirrorV bool
	Rotation         Rotation90
	Gain             float64

	warp FrameWarp
}

func NewBlitterFeedback() effect.Effect { return &BlitterFeedback{Gain: 1} }

func (b *BlitterFeedback) SetParams(p *effect.ParamBlock) error {
	b.MirrorH = p.GetBool("mirror_h", b.MirrorH)
	b.MirrorV = p.GetBool("mirror_v", b.MirrorV)
	b.Rotation = Rotation90(p.GetInt("rotation", int32(b.Rotation))) % 4
	g := p.GetFloat("gain", float32(b.Gain))
	if g < 0 {
		g = 0
	}
	if g > 1 {
		g = 1
	}
	b.Gain = float64(g)
	return nil
}

func (b *BlitterFeedback) Render(ctx *rendercontext.Context) bool {
	f := ctx.Framebuffer.Current
	b.warp.Capture(f)
	if !b.warp.Ready() {
		return true
	}

	out := make([]byte, len(f.Pix))
	for y := 0; y < f.Height; y++ {
		for x := 0; x < f.Width; x++ {
			sx, sy := b.transform(x, y, f.Width, f.Height)
			nx := (float64(sx)/float64(f.Width-1))*2 - 1
			ny := 1 - (float64(sy)/float64(f.Height-1))*2
			r, g, bl, a := b.warp.SampleHistory(nx, ny, false)
			i := (y*f.Width + x) * 4
			out[i] = uint8(float64(r) * b.Gain)
			out[i+1] = uint8(float64(g) * b.Gain)
			out[i+2] = uint8(float64(bl) * b.Gain)
			out[i+3] = a
		}
	}
	copy(f.Pix, out)
	return true
}

func (b *BlitterFeedback) transform(x, y, w, h int) (int, int) {
	if b.MirrorH {
		x = w - 1 - x
	}
	if b.MirrorV {
		y = h - 1 - y
	}
	cx, cy := w/2, h/2
	dx, dy := x-cx, y-cy
	switch b.Rotation {
	case Rotate90:
		dx, dy = -dy, dx
	case Rotate180:
		dx, dy = -dx, -dy
	case Rotate270:
		dx, dy = dy, -dx
	}
	return cx + dx, cy + dy
}

// ZoomRotate maps each output pixel through a rotation and uniform
// zoom around a normalized anchor, then samples the previous frame.
type ZoomRotate struct {
	Zoom         float64
	ThetaRadians float64
	AnchorX      float64
	AnchorY      float64
	Wrap         bool

	warp FrameWarp
}

func NewZoomRotate() effect.Effect {
	return &ZoomRotate{Zoom: 1, AnchorX: 0.5, AnchorY: 0.5}
}

func (z *ZoomRotate) SetParams(p *effect.ParamBlock) error {
	zoom := p.GetFloat("zoom", float32(z.Zoom))
	if zoom == 0 {
		zoom = 1
	}
	z.Zoom = float64(zoom)
	z.ThetaRadians = float64(p.GetFloat("theta", float32(z.ThetaRadians)))
	z.AnchorX = float64(p.GetFloat("anchor_x", float32(z.AnchorX)))
	z.AnchorY = float64(p.GetFloat("anchor_y", float32(z.AnchorY)))
	z.Wrap = p.GetBool("wrap", z.Wrap)
	return nil
}

func (z *ZoomRotate) Render(ctx *rendercontext.Context) bool {
	f := ctx.Framebuffer.Current
	z.warp.Capture(f)
	if !z.warp.Ready() {
		return true
	}

	ax := z.AnchorX*2 - 1
	ay := z.AnchorY*2 - 1
	sinT, cosT := math.Sin(z.ThetaRadians), math.Cos(z.ThetaRadians)

	out := make([]byte, len(f.Pix))
	for y := 0; y < f.Height; y++ {
		ny := 1 - (float64(y)/float64(f.Height-1))*2
		for x := 0; x < f.Width; x++ {
			nx := (float64(x)/float64(f.Width-1))*2 - 1
			px := (nx - ax) / z.Zoom
			py := (ny - ay) / z.Zoom
			rx := px*cosT - py*sinT
			ry := px*sinT + py*cosT
			r, g, bl, a := z.warp.SampleHistory(rx+ax, ry+ay, z.Wrap)
			i := (y*f.Width + x) * 4
			out[i], out[i+1], out[i+2], out[i+3] = r, g, bl, a
		}
	}
	copy(f.Pix, out)
	return true
}
