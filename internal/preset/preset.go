// Package preset decodes both historical AVS preset encodings — the
// binary Nullsoft format and the plain-text "micro-preset" shorthand —
// into a pipeline.Pipeline, grounded on
// original_source/libs/avs-compat/src/preset.cpp's parsePreset,
// parseBinaryPreset and parseTextPreset. Every recoverable problem
// becomes a warning or an unknown-effect placeholder rather than an
// aborted load.
package preset

import (
	"github.com/pfahlr/vis-avs-sub001/internal/effect"
	"github.com/pfahlr/vis-avs-sub001/internal/pipeline"
)

// Preset is the result of a load: the runnable pipeline plus the
// bookkeeping a caller (a studio tool, a converter, a test) inspects.
type Preset struct {
	Pipeline *pipeline.Pipeline
	Warnings []string
	Unknown  []string
	Comments []string
}

func newPreset(registry *effect.Registry) *Preset {
	return &Preset{Pipeline: pipeline.New(registry)}
}

func (p *Preset) warn(msg string) { p.Warnings = append(p.Warnings, msg) }
func (p *Preset) unknown(token string) { p.Unknown = append(p.Unknown, token) }

// Load decodes data with registry, auto-detecting the binary magic
// header and falling back to the text micro-preset format.
func Load(data []byte, registry *effect.Registry) *Preset {
	if headerLen, version, ok := decodeMagicHeader(data); ok {
		p := parseBinary(data, headerLen, registry)
		if !isKnownMagicVersion(version) {
			p.warn("unknown preset version: " + version)
		}
		return p
	}
	return parseMicro(string(data), registry)
}
