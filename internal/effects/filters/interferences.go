package filters

import (
	"math"

	"github.com/pfahlr/vis-avs-sub001/internal/effect"
	"github.com/pfahlr/vis-avs-sub001/internal/rendercontext"
)

// InterferenceMode selects how the generated pattern combines with
// the existing frame.
type InterferenceMode int

const (
	InterferenceAdd InterferenceMode = iota
	InterferenceSubtract
	InterferenceMultiply
)

// Interferences overlays a two-frequency sine pattern along one axis,
// with optional uniform additive noise and a per-channel tint.
type Interferences struct {
	Freq1, Freq2 float32
	Amplitude    float32
	Noise        float32
	Tint         int32
	Mode         InterferenceMode
	Vertical     bool

	phase float64
}

func NewInterferences() effect.Effect {
	return &Interferences{Freq1: 3, Freq2: 7, Amplitude: 64, Tint: 0xFFFFFF}
}

func (n *Interferences) SetParams(p *effect.ParamBlock) error {
	n.Freq1 = p.GetFloat("freq1", n.Freq1)
	n.Freq2 = p.GetFloat("freq2", n.Freq2)
	n.Amplitude = p.GetFloat("amplitude", n.Amplitude)
	n.Noise = p.GetFloat("noise", n.Noise)
	n.Tint = p.GetInt("tint", n.Tint)
	n.Mode = InterferenceMode(p.GetInt("mode", int32(n.Mode)))
	n.Vertical = p.GetBool("vertical", n.Vertical)
	return nil
}

func (n *Interferences) Render(ctx *rendercontext.Context) bool {
	f := ctx.Framebuffer.Current
	tintR := byte(n.Tint >> 16)
	tintG := byte(n.Tint >> 8)
	tintB := byte(n.Tint)
	axisLen := f.Width
	if n.Vertical {
		axisLen = f.Height
	}

	pattern := make([]float64, axisLen)
	for i := 0; i < axisLen; i++ {
		t := float64(i) / float64(axisLen)
		v := math.Sin(2*math.Pi*float64(n.Freq1)*t+n.phase) + math.Sin(2*math.Pi*float64(n.Freq2)*t+n.phase)
		pattern[i] = v / 2 * float64(n.Amplitude)
	}
	n.phase += 0.05

	seed := ctx.Rng.NextUint32() ^ uint32(n.phase*1315423911)

	for y := 0; y < f.Height; y++ {
		for x := 0; x < f.Width; x++ {
			axisIdx := x
			if n.Vertical {
				axisIdx = y
			}
			delta := pattern[axisIdx]
			if n.Noise > 0 {
				seed = seed*1664525 + 1013904223
				noiseVal := (float64(seed%2000)/1000 - 1) * float64(n.Noise)
				delta += noiseVal
			}
			i := (y*f.Width + x) * 4
			f.Pix[i] = applyMode(n.Mode, f.Pix[i], delta, tintR)
			f.Pix[i+1] = applyMode(n.Mode, f.Pix[i+1], delta, tintG)
			f.Pix[i+2] = applyMode(n.Mode, f.Pix[i+2], delta, tintB)
		}
	}
	return true
}

func applyMode(mode InterferenceMode, base byte, delta float64, tint byte) byte {
	amount := delta * float64(tint) / 255
	var v float64
	switch mode {
	case InterferenceSubtract:
		v = float64(base) - amount
	case InterferenceMultiply:
		v = float64(base) * (1 + amount/255)
	default:
		v = float64(base) + amount
	}
	if v < 0 {
		v = 0
	}
	if v > 255 {
		v = 255
	}
	return byte(v)
}
