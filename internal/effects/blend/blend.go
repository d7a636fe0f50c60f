// Package blend implements the shared pixel-combine primitives used
// by every effect kernel: the general-purpose BlendOp enum plus the
// legacy 9/10-mode line-blend table consulted when
// globalstate.LegacyRender.Active is set.
package blend

// Op is the general blend operator applied to one RGBA byte pair.
type Op int

const (
	Additive Op = iota
	Alpha
	Alpha2
	AlphaSlide
	Avg // called "Blend" elsewhere; renamed to avoid colliding with the package name.
	BlendSlide
	Replace
	DefaultBlend
	DefrendBlend
	Above // per-channel max
	Below // per-channel min
)

// Config carries the parameters a BlendOp needs beyond dst/src.
type Config struct {
	Alpha  uint8 // primary alpha weight, 0..255
	Alpha2 uint8 // secondary weight used by the *Slide variants
	Slide  uint8 // interpolation point between Alpha and Alpha2, 0..255
}

func clampByte(v int) uint8 {
	if v < 0 {
		return 0
	}
	if v > 255 {
		return 255
	}
	return uint8(v)
}

// Adjust is the canonical alpha blend: out = (src*a + dst*(255-a))/255.
func Adjust(dst, src, alpha uint8) uint8 {
	return clampByte((int(src)*int(alpha) + int(dst)*(255-int(alpha))) / 255)
}

func maxByte(a, b uint8) uint8 {
	if a > b {
		return a
	}
	return b
}

func minByte(a, b uint8) uint8 {
	if a < b {
		return a
	}
	return b
}

// Channel applies op to one dst/src byte pair.
func Channel(op Op, dst, src uint8, cfg Config) uint8 {
	switch op {
	case Additive:
		return clampByte(int(dst) + int(src))
	case Alpha:
		return Adjust(dst, src, cfg.Alpha)
	case Alpha2:
		return Adjust(dst, src, cfg.Alpha2)
	case AlphaSlide:
		a := lerpAlpha(cfg.Alpha, cfg.Alpha2, cfg.Slide)
		return Adjust(dst, src, a)
	case Avg:
		return clampByte((int(dst) + int(src)) / 2)
	case BlendSlide:
		avg := clampByte((int(dst) + int(src)) / 2)
		a := lerpAlpha(cfg.Alpha, cfg.Alpha2, cfg.Slide)
		return Adjust(dst, avg, a)
	case Replace:
		return src
	case DefaultBlend:
		v := (3*int(dst) + int(src)) >> 2
		return clampByte(v)
	case DefrendBlend:
		v := (int(dst) + 3*int(src)) >> 2
		return clampByte(v)
	case Above:
		return maxByte(dst, src)
	case Below:
		return minByte(dst, src)
	default:
		return src
	}
}

func lerpAlpha(a, b, t uint8) uint8 {
	v := (int(a)*(255-int(t)) + int(b)*int(t)) / 255
	return clampByte(v)
}

// Pixel blends a full RGBA pixel; alpha channels blend the same way as
// color channels, with no special-casing: callers that want to
// preserve alpha must restore it themselves.
func Pixel(op Op, dst, src [4]uint8, cfg Config) [4]uint8 {
	return [4]uint8{
		Channel(op, dst[0], src[0], cfg),
		Channel(op, dst[1], src[1], cfg),
		Channel(op, dst[2], src[2], cfg),
		Channel(op, dst[3], src[3], cfg),
	}
}

// LegacyMode is one entry of the 9/10-mode legacy line-blend table
// consulted when globalstate.LegacyRender.Active is set. Ten distinct
// modes are kept even though the table is conventionally called
// "9-mode", so that a preset selecting a mode by index keeps getting
// the same mode.
type LegacyMode uint8

const (
	LegacyReplace LegacyMode = iota
	LegacyAdditive
	LegacyMax
	LegacyAverage
	LegacySubtractAB
	LegacySubtractBA
	LegacyMultiply
	LegacyAdjustable
	LegacyXOR
	LegacyMin
)

// LegacyChannel applies the legacy line-blend table to one byte pair.
// alpha is only consulted for LegacyAdjustable (the next byte up from
// the mode selector, per globalstate.LegacyRender.Alpha()).
func LegacyChannel(mode LegacyMode, dst, src, alpha uint8) uint8 {
	switch mode {
	case LegacyReplace:
		return src
	case LegacyAdditive:
		return clampByte(int(dst) + int(src))
	case LegacyMax:
		return maxByte(dst, src)
	case LegacyAverage:
		return clampByte((int(dst) + int(src)) / 2)
	case LegacySubtractAB:
		return clampByte(int(dst) - int(src))
	case LegacySubtractBA:
		return clampByte(int(src) - int(dst))
	case LegacyMultiply:
		return clampByte((int(dst) * int(src)) / 255)
	case LegacyAdjustable:
		return Adjust(dst, src, alpha)
	case LegacyXOR:
		return dst ^ src
	case LegacyMin:
		return minByte(dst, src)
	default:
		return src
	}
}

// LegacyPixel blends a full RGBA pixel using the legacy table,
// selecting the mode from the low byte of mode32 and the adjustable
// weight from the next byte up.
func LegacyPixel(mode32 uint32, dst, src [4]uint8) [4]uint8 {
	mode := LegacyMode(mode32 & 0xFF)
	alpha := uint8((mode32 >> 8) & 0xFF)
	return [4]uint8{
		LegacyChannel(mode, dst[0], src[0], alpha),
		LegacyChannel(mode, dst[1], src[1], alpha),
		LegacyChannel(mode, dst[2], src[2], alpha),
		dst[3],
	}
}
