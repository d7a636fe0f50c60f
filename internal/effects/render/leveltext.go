package render

import (
	"fmt"

	"github.com/pfahlr/vis-avs-sub001/internal/effect"
	"github.com/pfahlr/vis-avs-sub001/internal/effects/primitive"
	"github.com/pfahlr/vis-avs-sub001/internal/rendercontext"
)

// LevelText draws a numeric readout of bass/mid/treb (or BPM) using
// the engine's built-in bitmap font.
type LevelText struct {
	Source string // "bass", "mid", "treb", "bpm"
	X, Y   int
	Scale  int
	Color  int32
}

func NewLevelText() effect.Effect {
	return &LevelText{Source: "bass", Scale: 1, Color: 0xFFFFFF}
}

func (l *LevelText) SetParams(p *effect.ParamBlock) error {
	l.Source = p.GetString("source", l.Source)
	l.X = int(p.GetInt("x", int32(l.X)))
	l.Y = int(p.GetInt("y", int32(l.Y)))
	scale := p.GetInt("scale", int32(l.Scale))
	if scale < 1 {
		scale = 1
	}
	l.Scale = int(scale)
	l.Color = p.GetInt("color", l.Color)
	return nil
}

func (l *LevelText) Render(ctx *rendercontext.Context) bool {
	f := ctx.Framebuffer.Current
	var v float64
	switch l.Source {
	case "mid":
		v = ctx.Mid
	case "treb":
		v = ctx.Treb
	case "bpm":
		v = ctx.BPM
	default:
		v = ctx.Bass
	}
	text := fmt.Sprintf("%s %.2f", l.Source, v)
	primitive.DrawText(f, l.X, l.Y, text, primitive.FromInt(l.Color, 255), l.Scale, ctx.Globals)
	return true
}

// BandText draws three stacked numeric rows, one each for bass/mid/treb,
// the text counterpart to the Spectrum effect's "bands" mode.
type BandText struct {
	X, Y  int
	Scale int
	Color int32
}

func NewBandText() effect.Effect {
	return &BandText{Scale: 1, Color: 0xFFFFFF}
}

func (b *BandText) SetParams(p *effect.ParamBlock) error {
	b.X = int(p.GetInt("x", int32(b.X)))
	b.Y = int(p.GetInt("y", int32(b.Y)))
	scale := p.GetInt("scale", int32(b.Scale))
	if scale < 1 {
		scale = 1
	}
	b.Scale = int(scale)
	b.Color = p.GetInt("color", b.Color)
	return nil
}

func (b *BandText) Render(ctx *rendercontext.Context) bool {
	f := ctx.Framebuffer.Current
	color := primitive.FromInt(b.Color, 255)
	labels := []string{
		fmt.Sprintf("B %.2f", ctx.Bass),
		fmt.Sprintf("M %.2f", ctx.Mid),
		fmt.Sprintf("T %.2f", ctx.Treb),
	}
	y := b.Y
	for _, text := range labels {
		primitive.DrawText(f, b.X, y, text, color, b.Scale, ctx.Globals)
		y += 8 * b.Scale
	}
	return true
}
