// Package registry builds the effect.Registry every driver shares: the
// full catalog of render/trans/filter/misc/scripted kernels under
// their canonical names, their historical misspellings, and the
// 46-entry binary effectId table original_source/libs/avs-compat
// carries (preset.cpp's kRegisteredEffectNames/kLegacyEffectNames).
package registry

import (
	"github.com/pfahlr/vis-avs-sub001/internal/effect"
	"github.com/pfahlr/vis-avs-sub001/internal/effects/filters"
	"github.com/pfahlr/vis-avs-sub001/internal/effects/misc"
	"github.com/pfahlr/vis-avs-sub001/internal/effects/render"
	"github.com/pfahlr/vis-avs-sub001/internal/effects/scripted"
	"github.com/pfahlr/vis-avs-sub001/internal/effects/trans"
)

// New builds and returns the fully populated registry. Every driver
// and tool in this module calls this instead of hand-rolling its own
// Register calls, so a preset seen anywhere resolves the same way.
func New() *effect.Registry {
	r := effect.NewRegistry()

	// Binary effectId 0-45, per preset.cpp. Where the "preferred"
	// table entry is empty the real engine falls back to the legacy
	// spelling, so that spelling becomes canonical here and is simply
	// not aliased a second time.
	r.Register("Render / Simple", render.NewSpectrum, 0)
	r.Register("Render / Dot Plane", render.NewDotPlane, 1)
	r.Register("Render / Oscilloscope Star", render.NewOscilloscopeStar, 2)
	r.Alias("Render / Oscilliscope Star", "Render / Oscilloscope Star")
	r.Register("Trans / Fadeout", trans.NewFadeOut, 3)
	r.Register("Trans / Blitter Feedback", trans.NewBlitterFeedback, 4)
	r.Register("Render / OnBeat Clear", misc.NewOnBeatClear, 5)
	r.Register("Trans / Blur", filters.NewBoxBlur, 6)
	r.Register("Render / Bass Spin", render.NewBassSpin, 7)
	r.Register("Render / Moving Particle", render.NewMovingParticle, 8)
	r.Register("Trans / Roto Blitter", trans.NewRotoBlitter, 9)
	r.Register("Render / SVP Loader", misc.NewSVPLoader, 10)
	r.Register("Trans / Colorfade", trans.NewColorfade, 11)
	r.Register("Trans / Color Clip", filters.NewColorClip, 12)
	r.Register("Render / Rotating Stars", render.NewRotatingStars, 13)
	r.Register("Render / Ring", render.NewRing, 14)
	r.Register("Trans / Movement", scripted.NewDynamicMovement, 15)
	r.Register("Trans / Scatter", trans.NewScatter, 16)
	r.Register("Render / Dot Grid", render.NewDotGrid, 17)
	r.Register("Misc / Buffer Save", misc.NewBufferSave, 18)
	r.Register("Render / Dot Fountain", render.NewDotFountain, 19)
	r.Register("Trans / Water", trans.NewWater, 20)
	r.Register("Misc / Comment", misc.NewComment, 21)
	r.Register("Trans / Brightness", filters.NewFastBrightness, 22)
	r.Alias("Trans / Brightness (fast)", "Trans / Brightness")
	r.Register("Trans / Interleave", trans.NewInterleave, 23)
	r.Register("Trans / Grain", filters.NewGrain, 24)
	r.Register("Render / Clear screen", misc.NewClearScreen, 25)
	r.Register("Trans / Mirror", trans.NewMirror, 26)
	r.Register("Render / Starfield", render.NewStarField, 27)
	r.Register("Render / Text", render.NewTextEffect, 28)
	r.Register("Trans / Bump", trans.NewBump, 29)
	r.Register("Trans / Mosaic", trans.NewMosaic, 30)
	r.Register("Trans / Water Bump", trans.NewWaterBump, 31)
	r.Register("Render / AVI", misc.NewAVIPlayer, 32)
	r.Register("Misc / Custom BPM", trans.NewCustomBPM, 33)
	r.Register("Render / Picture", misc.NewPictureLoader, 34)
	r.Register("Trans / Dynamic Distance Modifier", scripted.NewDynamicDistanceModifier, 35)
	r.Register("Render / SuperScope", scripted.NewSuperScope, 36)
	r.Register("Trans / Invert", trans.NewInvert, 37)
	r.Register("Trans / Unique tone", trans.NewUniqueTone, 38)
	r.Register("Render / Timescope", render.NewTimescope, 39)
	r.Register("Misc / Set render mode", misc.NewSetRenderMode, 40)
	r.Register("Trans / Interferences", filters.NewInterferences, 41)
	r.Register("Trans / Dynamic Shift", scripted.NewDynamicShift, 42)
	r.Register("Trans / Dynamic Movement", scripted.NewDynamicMovement, 43)
	r.Register("Trans / Fast Brightness", filters.NewFastBrightness, 44)
	r.Register("Trans / Color Modifier", scripted.NewColorModifier, 45)

	// Extra APE-era and text-preset-only kernels that never carried a
	// classic binary effectId (legacyID -1 means "text-preset name
	// only", per effect.Registry.Register's contract).
	r.Register("Render / Wave", render.NewWave, -1)
	r.Register("Render / Bands", render.NewBands, -1)
	r.Register("Render / Level Text", render.NewLevelText, -1)
	r.Register("Render / Band Text", render.NewBandText, -1)
	r.Register("Trans / Zoom Rotate", trans.NewZoomRotate, -1)
	r.Register("Trans / Channel Shift", trans.NewChannelShift, -1)
	r.Register("Trans / Multiplier", trans.NewMultiplier, -1)
	r.Register("Trans / Video Delay", trans.NewVideoDelay, -1)
	r.Register("Trans / Multi-Delay", trans.NewMultiDelay, -1)
	r.Register("Misc / ColorMap", filters.NewColorMap, -1)
	r.Register("Trans / Convolution", filters.NewConv3x3, -1)

	// Historical alternate spellings and common text-preset shorthand
	// forms (original_source/libs/avs-compat/src/preset.cpp's
	// describeEffect and the micro-preset tokens seen across presets).
	r.Alias("ring", "Render / Ring")
	r.Alias("bass spin", "Render / Bass Spin")
	r.Alias("superscope", "Render / SuperScope")
	r.Alias("dynamicmovement", "Trans / Dynamic Movement")
	r.Alias("colormodifier", "Trans / Color Modifier")
	r.Alias("onetone", "Trans / Unique tone")
	r.Alias("bpm", "Misc / Custom BPM")
	r.Alias("water bump", "Trans / Water Bump")
	r.Alias("blur", "Trans / Blur")

	// Unknown is never dispatched through a canonical name by a
	// driver directly; the preset loader constructs it itself when a
	// decoded token has no registry match. Registering it here still
	// lets a studio tool list it and a text preset name it explicitly
	// for round-trip testing.
	r.Register("Misc / Unknown", misc.NewUnknown, -1)

	return r
}
