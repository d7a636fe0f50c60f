// Package pipeline implements the ordered effect list a loaded preset
// becomes: construction from a Registry, and a render pass that ANDs
// every child effect's enabled report.
package pipeline

import (
	"github.com/pfahlr/vis-avs-sub001/internal/effect"
	"github.com/pfahlr/vis-avs-sub001/internal/rendercontext"
)

// Pipeline is an ordered sequence of (effect, params) entries
// instantiated from a Registry.
type Pipeline struct {
	registry *effect.Registry
	entries  []effect.Entry
}

// New builds an empty pipeline bound to registry.
func New(registry *effect.Registry) *Pipeline {
	return &Pipeline{registry: registry}
}

// Add resolves key against the registry, constructs a fresh effect,
// applies params, and appends the entry. An unresolvable key returns
// the registry's error and leaves the pipeline unchanged; the preset
// loader substitutes an unknown-effect placeholder before calling Add.
func (p *Pipeline) Add(key string, params *effect.ParamBlock) error {
	inst, canonical, err := p.registry.New(key)
	if err != nil {
		return err
	}
	if params == nil {
		params = effect.NewParamBlock()
	}
	if err := inst.SetParams(params); err != nil {
		return err
	}
	p.entries = append(p.entries, effect.Entry{Name: canonical, Params: params, Effect: inst})
	return nil
}

// AddEntry appends an already-constructed entry, used by the preset
// loader for nested render lists and unknown-effect placeholders that
// don't go through the registry.
func (p *Pipeline) AddEntry(entry effect.Entry) {
	p.entries = append(p.entries, entry)
}

// Len returns the number of entries.
func (p *Pipeline) Len() int { return len(p.entries) }

// Entries returns the underlying entry slice for introspection (e.g. a
// studio UI listing effect instances). Callers must not mutate it.
func (p *Pipeline) Entries() []effect.Entry { return p.entries }

// Render runs every effect in order and returns the AND of all their
// enabled reports. A false from one effect does not stop later effects
// from rendering.
func (p *Pipeline) Render(ctx *rendercontext.Context) bool {
	result := true
	for _, entry := range p.entries {
		if !entry.Effect.Render(ctx) {
			result = false
		}
	}
	return result
}
