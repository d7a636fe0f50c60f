package render

import (
	"math"

	"github.com/pfahlr/vis-avs-sub001/internal/effect"
	"github.com/pfahlr/vis-avs-sub001/internal/effects/primitive"
	"github.com/pfahlr/vis-avs-sub001/internal/rendercontext"
)

// kBassWindow is the number of leading waveform samples whose sum
// drives the arms' angular velocity.
const kBassWindow = 80

type spinArm struct {
	angle, velocity float64
	hasPrevTip      bool
	prevTipX        int
	prevTipY        int
}

// BassSpin renders two spinning arms whose angular velocity tracks the
// smoothed bass window of the waveform, either as line trails or
// filled triangles.
type BassSpin struct {
	Filled bool
	Color  int32
	Length float32

	arms [2]spinArm
}

// NewBassSpin returns a BassSpin with arms at rest.
func NewBassSpin() effect.Effect {
	b := &BassSpin{Color: 0x00FFFF, Length: 1}
	b.arms[1].angle = math.Pi
	return b
}

func (b *BassSpin) SetParams(p *effect.ParamBlock) error {
	b.Filled = p.GetBool("filled", b.Filled)
	b.Color = p.GetInt("color", b.Color)
	b.Length = p.GetFloat("length", b.Length)
	return nil
}

func (b *BassSpin) Render(ctx *rendercontext.Context) bool {
	f := ctx.Framebuffer.Current
	var amp float64
	for i := 0; i < kBassWindow && i < len(ctx.Waveform); i++ {
		amp += math.Abs(ctx.Waveform[i]) * 255
	}
	if kBassWindow > 0 {
		amp /= kBassWindow
	}
	target := (amp - 104) / 96
	if target < 12.0/96 {
		target = 12.0 / 96
	}
	color := primitive.FromInt(b.Color, 255)
	cx, cy := f.Width/2, f.Height/2
	radius := float64(minInt(f.Width, f.Height)) / 2 * float64(b.Length)

	directions := [2]float64{-1, 1}
	for i := range b.arms {
		arm := &b.arms[i]
		arm.velocity = 0.7*target + 0.3*arm.velocity
		arm.angle += math.Pi / 6 * arm.velocity * directions[i]
		tipX := cx + int(radius*math.Cos(arm.angle))
		tipY := cy + int(radius*math.Sin(arm.angle))
		if b.Filled {
			primitive.FillTriangle(f,
				primitive.Point{X: cx, Y: cy},
				primitive.Point{X: tipX, Y: tipY},
				primitive.Point{X: cx + (tipY - cy), Y: cy - (tipX - cx)},
				color, ctx.Globals)
		} else {
			if arm.hasPrevTip {
				primitive.DrawThickLine(f, arm.prevTipX, arm.prevTipY, tipX, tipY, 1, color, ctx.Globals)
			} else {
				primitive.DrawThickLine(f, cx, cy, tipX, tipY, 1, color, ctx.Globals)
			}
		}
		arm.prevTipX, arm.prevTipY = tipX, tipY
		arm.hasPrevTip = true
	}
	return true
}

func minInt(a, b int) int {
	if a < b {
		return a
	}
	return b
}
