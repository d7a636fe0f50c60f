// Package driver implements the Offscreen Driver: the object a host
// (a CLI tool, a studio UI, a test) owns to load a preset, feed it
// audio, and pull rendered frames, without any presentation backend
// attached. It owns exactly the state a frame needs — analyzer,
// framebuffers, globals, RNG, pipeline — and drives them from a
// single Render call.
package driver

import (
	"github.com/pfahlr/vis-avs-sub001/internal/analyzer"
	"github.com/pfahlr/vis-avs-sub001/internal/avserr"
	"github.com/pfahlr/vis-avs-sub001/internal/debug"
	"github.com/pfahlr/vis-avs-sub001/internal/effect"
	"github.com/pfahlr/vis-avs-sub001/internal/framebuffer"
	"github.com/pfahlr/vis-avs-sub001/internal/globalstate"
	"github.com/pfahlr/vis-avs-sub001/internal/pipeline"
	"github.com/pfahlr/vis-avs-sub001/internal/preset"
	"github.com/pfahlr/vis-avs-sub001/internal/rendercontext"
	"github.com/pfahlr/vis-avs-sub001/internal/rng"
)

// Driver owns one rendering session: a fixed-size framebuffer pair, an
// audio analyzer, the shared global state, a deterministic RNG, and
// the currently loaded pipeline.
type Driver struct {
	registry *effect.Registry
	logger   *debug.Logger

	analyzer    *analyzer.Analyzer
	framebuffer *framebuffer.Framebuffers
	globals     *globalstate.State
	rng         *rng.Rng

	pipeline *pipeline.Pipeline
	preset   *preset.Preset

	sampleRate int
	frameIndex uint64
}

// New builds a driver rendering at width x height, with an empty
// pipeline until LoadPreset is called. logger may be nil.
func New(registry *effect.Registry, logger *debug.Logger, width, height, sampleRate int) *Driver {
	d := &Driver{
		registry:    registry,
		logger:      logger,
		analyzer:    analyzer.New(logger),
		framebuffer: framebuffer.New(width, height),
		globals:     globalstate.New(),
		rng:         rng.NewFromEnv(),
		pipeline:    pipeline.New(registry),
		sampleRate:  sampleRate,
	}
	return d
}

// Resize reallocates the framebuffer pair at the new size, clearing its
// slots and overlays and resetting its frame counter, and resets the
// analyzer.
func (d *Driver) Resize(width, height int) {
	d.framebuffer.Resize(width, height)
	d.analyzer.Reset()
}

// LoadPreset decodes data (binary or micro-preset text) and replaces
// the active pipeline. Warnings and unknown-effect tokens are returned
// rather than failing the load; an empty preset decoding to zero
// entries is not itself an error condition.
func (d *Driver) LoadPreset(data []byte) *preset.Preset {
	p := preset.Load(data, d.registry)
	d.preset = p
	d.pipeline = p.Pipeline
	d.globals.Reset()
	d.analyzer.Reset()
	if d.logger != nil {
		for _, w := range p.Warnings {
			d.logger.Log(debug.ComponentPreset, debug.LogLevelWarning, w)
		}
	}
	return p
}

// CurrentPreset returns the most recently loaded preset's bookkeeping,
// or nil if none has been loaded yet.
func (d *Driver) CurrentPreset() *preset.Preset { return d.preset }

// SetAudioBuffer feeds exactly one analysis block (analyzer.NFFT
// frames of interleaved PCM) into the front-end.
func (d *Driver) SetAudioBuffer(samples []float32, channels int) error {
	if d.sampleRate <= 0 {
		return avserr.New(avserr.InvalidArgument, "driver has no sample rate configured")
	}
	return d.analyzer.Process(samples, channels, d.sampleRate)
}

// Render advances one frame: it reseeds the RNG from the frame index,
// begins the double-buffer swap, builds a fresh rendercontext.Context
// from the analyzer's current output, runs the pipeline, and finishes
// the frame (compositing overlays, advancing the framebuffer frame
// counter). deltaSeconds is the caller's frame interval, passed to
// effects as Context.DeltaSeconds.
func (d *Driver) Render(deltaSeconds float64) *framebuffer.Frame {
	d.rng.Reseed(d.frameIndex)
	d.framebuffer.BeginFrame()

	ctx := rendercontext.New(d.frameIndex, deltaSeconds, d.framebuffer, d.analyzer, d.rng, d.globals)
	d.pipeline.Render(ctx)

	d.framebuffer.FinishFrame()
	d.frameIndex++
	return d.framebuffer.Current
}

// FrameIndex returns the number of frames rendered so far.
func (d *Driver) FrameIndex() uint64 { return d.frameIndex }

// Framebuffer exposes the driver's owned double buffer, read-only by
// convention for presentation backends.
func (d *Driver) Framebuffer() *framebuffer.Framebuffers { return d.framebuffer }

// Globals exposes the shared register/heightmap state, e.g. for a
// studio UI that wants to plot register values live.
func (d *Driver) Globals() *globalstate.State { return d.globals }

// Pipeline exposes the active pipeline for introspection (effect list,
// per-effect params) by a studio UI.
func (d *Driver) Pipeline() *pipeline.Pipeline { return d.pipeline }
