package effect

import "github.com/pfahlr/vis-avs-sub001/internal/rendercontext"

// Effect is the interface every render kernel implements. SetParams is
// called once on load and again whenever the preset editor (or a
// scripted SetParam call) changes a value; Render runs once per frame
// while the effect is enabled in its pipeline slot.
type Effect interface {
	// SetParams validates and applies params, replacing any values
	// previously held. Implementations should keep their prior state
	// for any name params does not mention, so partial updates (e.g.
	// from a live editor) don't reset unrelated fields.
	SetParams(params *ParamBlock) error

	// Render executes one frame of this effect against ctx. The
	// returned bool is the enabled state to report upstream (most
	// kernels just return true; gated kernels forward their gate's
	// current render decision).
	Render(ctx *rendercontext.Context) bool
}

// Factory constructs a fresh, default-configured Effect instance.
type Factory func() Effect

// EffectList is satisfied by any effect that also hosts a nested list
// of child (effect, params) entries rendered under its own control
// flow — e.g. a container that iterates its children N times. Kernels
// that don't nest need not implement it.
type EffectList interface {
	Effect
	SetChildren(children []Entry)
}

// Entry pairs one Effect instance with its current parameters, the
// unit a Pipeline and a container kernel both operate on.
type Entry struct {
	Name   string
	Params *ParamBlock
	Effect Effect
}
