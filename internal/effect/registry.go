package effect

import (
	"strings"

	"github.com/pfahlr/vis-avs-sub001/internal/avserr"
)

// Registry maps canonical effect names to factories and knows how to
// fold the legacy spellings a binary or micro-preset may carry (e.g.
// "Render / Oscilliscope Star", "render_ring", bare "ring") back to
// the same canonical key.
type Registry struct {
	factories map[string]Factory
	aliases   map[string]string // alias (normalized) -> canonical
	legacyID  map[int32]string  // binary effectId -> canonical
}

// NewRegistry returns an empty registry.
func NewRegistry() *Registry {
	return &Registry{
		factories: make(map[string]Factory),
		aliases:   make(map[string]string),
		legacyID:  make(map[int32]string),
	}
}

// normalize lowercases ASCII letters and drops '/', ' ', '_' and '-',
// so "Render / Ring" and "render_ring" both become "renderring"; a bare
// "ring" matches only through an alias. The registry stores canonical
// names as given, and normalize is only used as the map key internally.
func normalize(name string) string {
	var b strings.Builder
	for _, r := range name {
		switch {
		case r == '/' || r == ' ' || r == '_' || r == '-':
			continue
		case r >= 'A' && r <= 'Z':
			b.WriteRune(r - 'A' + 'a')
		default:
			b.WriteRune(r)
		}
	}
	return b.String()
}

// Register adds a canonical effect name with its factory. legacyID, if
// non-negative, also wires the binary-preset effectId to this name;
// pass -1 for effects that only ever appear by name (text presets,
// APE plugins) since binary effectId 0 is itself a valid id
// ("Render / Simple").
func (r *Registry) Register(canonical string, factory Factory, legacyID int32) {
	r.factories[canonical] = factory
	r.aliases[normalize(canonical)] = canonical
	if legacyID >= 0 {
		r.legacyID[legacyID] = canonical
	}
}

// Alias registers an additional spelling (e.g. a misspelled historical
// token) that should resolve to an already-registered canonical name.
func (r *Registry) Alias(alias, canonical string) {
	r.aliases[normalize(alias)] = canonical
}

// Find resolves any spelling of an effect name to its factory.
func (r *Registry) Find(name string) (Factory, bool) {
	canonical, ok := r.aliases[normalize(name)]
	if !ok {
		return nil, false
	}
	f, ok := r.factories[canonical]
	return f, ok
}

// Canonical resolves any spelling to the registered canonical name,
// without constructing an instance.
func (r *Registry) Canonical(name string) (string, bool) {
	canonical, ok := r.aliases[normalize(name)]
	return canonical, ok
}

// LegacyTokenFor resolves a binary-preset effectId to its canonical
// name, used by the preset decoder's dispatch table.
func (r *Registry) LegacyTokenFor(effectID int32) (string, bool) {
	name, ok := r.legacyID[effectID]
	return name, ok
}

// New constructs a fresh Effect instance for the given name (any known
// spelling), applying default parameters only.
func (r *Registry) New(name string) (Effect, string, error) {
	factory, ok := r.Find(name)
	if !ok {
		return nil, "", avserr.Newf(avserr.UnknownEffect, "unknown effect %q", name)
	}
	canonical, _ := r.Canonical(name)
	return factory(), canonical, nil
}

// Names returns every registered canonical name.
func (r *Registry) Names() []string {
	out := make([]string, 0, len(r.factories))
	for name := range r.factories {
		out = append(out, name)
	}
	return out
}
