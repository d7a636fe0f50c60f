// Package scripted implements the five script-driven effect kernels:
// SuperScope, Color Modifier, and the Dynamic Movement/Shift/
// DistanceModifier family. Each wraps a shared lifecycle (recompile on
// change, init-once, frame, beat, pixel stages) around the script
// runtime of package script.
package scripted

import (
	"github.com/pfahlr/vis-avs-sub001/internal/effect"
	"github.com/pfahlr/vis-avs-sub001/internal/effects/primitive"
	"github.com/pfahlr/vis-avs-sub001/internal/rendercontext"
	"github.com/pfahlr/vis-avs-sub001/internal/script"
)

// Stages holds the four script source strings a scripted effect's
// ParamBlock carries.
type Stages struct {
	Init  string
	Frame string
	Beat  string
	Pixel string
}

// base is embedded by every scripted kernel; it owns compiled
// programs, the init-ran flag, and the overlay strings a compile or
// runtime error produces.
type base struct {
	src     Stages
	env     *script.Env
	initP   *script.Program
	frameP  *script.Program
	beatP   *script.Program
	pixelP  *script.Program
	initRan bool

	compileErr string
	runtimeErr string
}

func newBase() base {
	return base{env: script.NewEnv()}
}

// setStages recompiles all four stages if any source text changed.
func (b *base) setStages(s Stages) {
	if s == b.src && b.initP != nil {
		return
	}
	b.src = s
	b.compileErr = ""
	b.initRan = false

	compile := func(src string) *script.Program {
		p, err := script.Compile(src)
		if err != nil {
			b.compileErr = err.Error()
			return nil
		}
		return p
	}
	b.initP = compile(s.Init)
	b.frameP = compile(s.Frame)
	b.beatP = compile(s.Beat)
	b.pixelP = compile(s.Pixel)
}

func (b *base) run(p *script.Program) {
	if p == nil {
		return
	}
	if err := p.Run(b.env); err != nil {
		b.runtimeErr = err.Error()
	}
}

// syncGlobalsIn copies ctx.Globals.Registers[0..99] into g1..g100 and
// the common audio/frame scalars into the env before running stages.
func (b *base) syncGlobalsIn(ctx *rendercontext.Context) {
	for i := 0; i < len(ctx.Globals.Registers); i++ {
		b.env.Set(registerName(i), ctx.Globals.Registers[i])
	}
	b.env.Set("time", float64(ctx.FrameIndex)*ctx.DeltaSeconds)
	b.env.Set("frame", float64(ctx.FrameIndex))
	b.env.Set("bass", ctx.Bass)
	b.env.Set("mid", ctx.Mid)
	b.env.Set("treb", ctx.Treb)
	b.env.Set("rms", ctx.Bass+ctx.Mid+ctx.Treb)
	b.env.Set("beat", boolToF(ctx.Beat))
	b.env.Set("b", boolToF(ctx.Beat))
	b.env.Set("w", float64(ctx.Width))
	b.env.Set("h", float64(ctx.Height))
}

// syncGlobalsOut writes g1..g100 back into ctx.Globals.Registers so a
// downstream effect in the same pipeline pass observes this script's
// writes.
func (b *base) syncGlobalsOut(ctx *rendercontext.Context) {
	for i := 0; i < len(ctx.Globals.Registers); i++ {
		ctx.Globals.Registers[i] = b.env.Get(registerName(i))
	}
}

func registerName(i int) string {
	return "g" + itoa(i+1)
}

func itoa(n int) string {
	if n == 0 {
		return "0"
	}
	var buf [12]byte
	pos := len(buf)
	for n > 0 {
		pos--
		buf[pos] = byte('0' + n%10)
		n /= 10
	}
	return string(buf[pos:])
}

func boolToF(b bool) float64 {
	if b {
		return 1
	}
	return 0
}

// buildLegacySources quantizes the current waveform/spectrum into the
// 576-byte-per-channel legacy visdata blocks getosc/getspec read,
// duplicating the mono signal into both channels.
func buildLegacySources(ctx *rendercontext.Context) script.LegacySources {
	const n = 576
	osc := make([]byte, 2*n)
	spec := make([]byte, 2*n)
	wfLen := len(ctx.Waveform)
	specLen := len(ctx.Spectrum)
	for i := 0; i < n; i++ {
		wi := (i * wfLen) / n
		v := ctx.Waveform[wi]
		b := byte(clampInt(int(v*127)+128, 0, 255))
		osc[i] = b
		osc[n+i] = b

		si := (i * specLen) / n
		sv := ctx.Spectrum[si] * 255
		sb := byte(clampInt(int(sv), 0, 255))
		spec[i] = sb
		spec[n+i] = sb
	}
	return script.LegacySources{
		OscBytes:          osc,
		SpecBytes:         spec,
		Channels:          2,
		AudioTimeSeconds:  float64(ctx.FrameIndex) * ctx.DeltaSeconds,
		EngineTimeSeconds: float64(ctx.FrameIndex) * ctx.DeltaSeconds,
	}
}

func clampInt(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// runFrameLifecycle executes the middle steps of the per-frame
// lifecycle: sync inputs, run init once, run frame, and run beat if a
// beat is pending. Callers run the pixel stage themselves afterward.
func (b *base) runFrameLifecycle(ctx *rendercontext.Context) {
	b.env.SetSources(buildLegacySources(ctx))
	b.syncGlobalsIn(ctx)

	if !b.initRan {
		b.run(b.initP)
		b.initRan = true
	}
	b.run(b.frameP)
	if ctx.Beat {
		b.run(b.beatP)
	}
}

// drawErrorOverlay renders a compile or runtime error string above any
// other overlay row, using the built-in bitmap font.
func (b *base) drawErrorOverlay(ctx *rendercontext.Context) {
	msg := b.compileErr
	if msg == "" {
		msg = b.runtimeErr
	}
	if msg == "" {
		return
	}
	f := ctx.Framebuffer.Current
	primitive.DrawText(f, 2, 2, msg, primitive.RGBA{R: 255, G: 40, B: 40, A: 255}, 1, ctx.Globals)
}

// stagesFromParams reads the four well-known string params a scripted
// effect's ParamBlock carries, sharing the same names across kernels.
func stagesFromParams(p *effect.ParamBlock) Stages {
	return Stages{
		Init:  p.GetString("init", ""),
		Frame: p.GetString("frame", ""),
		Beat:  p.GetString("beat", ""),
		Pixel: p.GetString("pixel", p.GetString("point", "")),
	}
}
