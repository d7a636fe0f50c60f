// Package framebuffer implements the double-buffered RGBA frame model:
// a current/previous pair, eight named save slots, and three
// persistent overlay bands.
package framebuffer

import "github.com/pfahlr/vis-avs-sub001/internal/avserr"

const (
	// NumSlots is the number of named Buffer0..Buffer7 save slots.
	NumSlots = 8
	// NumOverlayBands is the number of persistent overlay rows.
	NumOverlayBands = 3
)

// Frame is one RGBA8, row-major, top-to-bottom pixel surface.
type Frame struct {
	Width, Height int
	Pix           []byte // len == Width*Height*4
}

// NewFrame allocates a zeroed frame of the given size.
func NewFrame(w, h int) *Frame {
	return &Frame{Width: w, Height: h, Pix: make([]byte, w*h*4)}
}

func (f *Frame) sameSize(o *Frame) bool {
	return o != nil && f.Width == o.Width && f.Height == o.Height
}

func (f *Frame) index(x, y int) int { return (y*f.Width + x) * 4 }

// At returns the RGBA pixel at (x,y). Callers must keep x,y in bounds.
func (f *Frame) At(x, y int) (r, g, b, a uint8) {
	i := f.index(x, y)
	return f.Pix[i], f.Pix[i+1], f.Pix[i+2], f.Pix[i+3]
}

// Set writes the RGBA pixel at (x,y).
func (f *Frame) Set(x, y int, r, g, b, a uint8) {
	i := f.index(x, y)
	f.Pix[i], f.Pix[i+1], f.Pix[i+2], f.Pix[i+3] = r, g, b, a
}

// InBounds reports whether (x,y) lies within the frame.
func (f *Frame) InBounds(x, y int) bool {
	return x >= 0 && x < f.Width && y >= 0 && y < f.Height
}

// BlendMode selects the per-channel combine rule used by Clear.
type BlendMode int

const (
	Replace BlendMode = iota
	Additive
	Average
	DefaultBlend
)

// ClearSettings parameterizes Clear.
type ClearSettings struct {
	R, G, B, A     uint8
	Blend          BlendMode
	FirstFrameOnly bool
}

// OverlayBand identifies one of the three persistent overlay rows.
type OverlayBand int

const (
	Title OverlayBand = iota
	Text1
	Text2
)

type overlayState struct {
	Duration, Remaining int
	Color               [4]uint8
}

// Direction is a cardinal slide direction.
type Direction int

const (
	Left Direction = iota
	Right
	Up
	Down
)

// Framebuffers owns the current/previous pair, the eight save slots,
// and the three overlay bands.
type Framebuffers struct {
	Width, Height int
	Current       *Frame
	Previous      *Frame
	Slots         [NumSlots]*Frame
	FrameIndex    uint64

	overlays [NumOverlayBands]overlayState
}

// New allocates a Framebuffers pair of the given size.
func New(w, h int) *Framebuffers {
	fb := &Framebuffers{}
	fb.Resize(w, h)
	return fb
}

// Resize reallocates both frames, clears all slots and overlays, and
// resets FrameIndex to 0.
func (fb *Framebuffers) Resize(w, h int) {
	fb.Width, fb.Height = w, h
	fb.Current = NewFrame(w, h)
	fb.Previous = NewFrame(w, h)
	for i := range fb.Slots {
		fb.Slots[i] = nil
	}
	fb.overlays = [NumOverlayBands]overlayState{}
	fb.FrameIndex = 0
}

// BeginFrame swaps roles (old current becomes previous) and copies the
// previous frame's bytes into the new current, so its initial content
// is the previous frame verbatim. Reallocates if sizes have diverged.
func (fb *Framebuffers) BeginFrame() {
	fb.Current, fb.Previous = fb.Previous, fb.Current
	if !fb.Current.sameSize(fb.Previous) {
		fb.Current = NewFrame(fb.Previous.Width, fb.Previous.Height)
		fb.Width, fb.Height = fb.Current.Width, fb.Current.Height
	}
	copy(fb.Current.Pix, fb.Previous.Pix)
}

// FinishFrame composites active overlay bands into Current, decrements
// their remaining counters, and advances FrameIndex.
func (fb *Framebuffers) FinishFrame() {
	for i := range fb.overlays {
		ov := &fb.overlays[i]
		if ov.Remaining <= 0 {
			continue
		}
		fb.blendOverlayRow(i, ov)
		ov.Remaining--
	}
	fb.FrameIndex++
}

func (fb *Framebuffers) blendOverlayRow(row int, ov *overlayState) {
	if row >= fb.Height {
		return
	}
	strength := float64(ov.Remaining) / float64(ov.Duration)
	if ov.Duration <= 0 {
		strength = 0
	}
	for x := 0; x < fb.Width; x++ {
		r, g, b, a := fb.Current.At(x, row)
		nr := lerpByte(r, ov.Color[0], strength)
		ng := lerpByte(g, ov.Color[1], strength)
		nb := lerpByte(b, ov.Color[2], strength)
		na := lerpByte(a, ov.Color[3], strength)
		fb.Current.Set(x, row, nr, ng, nb, na)
	}
}

func lerpByte(dst, src uint8, t float64) uint8 {
	v := float64(dst)*(1-t) + float64(src)*t
	return clampByte(v)
}

func clampByte(v float64) uint8 {
	if v < 0 {
		return 0
	}
	if v > 255 {
		return 255
	}
	return uint8(v)
}

// Clear applies ClearSettings to Current. FirstFrameOnly is a no-op
// once FrameIndex > 0.
func (fb *Framebuffers) Clear(settings ClearSettings) {
	if settings.FirstFrameOnly && fb.FrameIndex > 0 {
		return
	}
	for y := 0; y < fb.Height; y++ {
		for x := 0; x < fb.Width; x++ {
			dr, dg, db, da := fb.Current.At(x, y)
			nr := blendChannel(settings.Blend, dr, settings.R)
			ng := blendChannel(settings.Blend, dg, settings.G)
			nb := blendChannel(settings.Blend, db, settings.B)
			na := blendChannel(settings.Blend, da, settings.A)
			fb.Current.Set(x, y, nr, ng, nb, na)
		}
	}
}

func blendChannel(mode BlendMode, dst, src uint8) uint8 {
	switch mode {
	case Replace:
		return src
	case Additive:
		sum := int(dst) + int(src)
		if sum > 255 {
			sum = 255
		}
		return uint8(sum)
	case Average:
		return uint8((int(dst) + int(src)) / 2)
	case DefaultBlend:
		v := (3*int(dst) + int(src)) >> 2
		if v > 255 {
			v = 255
		}
		if v < 0 {
			v = 0
		}
		return uint8(v)
	default:
		return src
	}
}

// Save byte-copies Current into the given slot (0..7).
func (fb *Framebuffers) Save(slot int) error {
	if slot < 0 || slot >= NumSlots {
		return avserr.New(avserr.InvalidArgument, "slot out of range")
	}
	dst := fb.Slots[slot]
	if dst == nil || !dst.sameSize(fb.Current) {
		dst = NewFrame(fb.Current.Width, fb.Current.Height)
	}
	copy(dst.Pix, fb.Current.Pix)
	fb.Slots[slot] = dst
	return nil
}

// Restore byte-copies the given slot into Current. A no-op if the slot
// is empty or its size doesn't match Current.
func (fb *Framebuffers) Restore(slot int) error {
	if slot < 0 || slot >= NumSlots {
		return avserr.New(avserr.InvalidArgument, "slot out of range")
	}
	src := fb.Slots[slot]
	if src == nil || !src.sameSize(fb.Current) {
		return nil
	}
	copy(fb.Current.Pix, src.Pix)
	return nil
}

func mod(a, n int) int {
	m := a % n
	if m < 0 {
		m += n
	}
	return m
}

// Wrap writes Current[x,y] = Previous[(x+ox) mod w, (y+oy) mod h].
func (fb *Framebuffers) Wrap(ox, oy int) {
	w, h := fb.Width, fb.Height
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			sx := mod(x+ox, w)
			sy := mod(y+oy, h)
			r, g, b, a := fb.Previous.At(sx, sy)
			fb.Current.Set(x, y, r, g, b, a)
		}
	}
}

func directionDelta(dir Direction, amount int) (dx, dy int) {
	switch dir {
	case Left:
		return -amount, 0
	case Right:
		return amount, 0
	case Up:
		return 0, -amount
	case Down:
		return 0, amount
	default:
		return 0, 0
	}
}

// SlideIn translates Previous by amount pixels in dir into Current.
// Out-of-bounds destination pixels are black/transparent.
func (fb *Framebuffers) SlideIn(dir Direction, amount int) {
	dx, dy := directionDelta(dir, amount)
	fb.slide(fb.Previous, fb.Current, dx, dy)
}

// SlideOut is symmetric with SlideIn but translates the source in the
// opposite direction.
func (fb *Framebuffers) SlideOut(dir Direction, amount int) {
	dx, dy := directionDelta(dir, amount)
	fb.slide(fb.Previous, fb.Current, -dx, -dy)
}

func (fb *Framebuffers) slide(src, dst *Frame, dx, dy int) {
	w, h := fb.Width, fb.Height
	out := make([]byte, len(dst.Pix))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			sx, sy := x-dx, y-dy
			di := (y*w + x) * 4
			if sx >= 0 && sx < w && sy >= 0 && sy < h {
				r, g, b, a := src.At(sx, sy)
				out[di], out[di+1], out[di+2], out[di+3] = r, g, b, a
			}
		}
	}
	copy(dst.Pix, out)
}

// Transition blends Current = lerp(Previous, Current, progress), with
// progress clamped to [0,1].
func (fb *Framebuffers) Transition(progress float64) {
	if progress < 0 {
		progress = 0
	}
	if progress > 1 {
		progress = 1
	}
	for y := 0; y < fb.Height; y++ {
		for x := 0; x < fb.Width; x++ {
			pr, pg, pb, pa := fb.Previous.At(x, y)
			cr, cg, cb, ca := fb.Current.At(x, y)
			fb.Current.Set(x, y,
				lerpByte(pr, cr, progress),
				lerpByte(pg, cg, progress),
				lerpByte(pb, cb, progress),
				lerpByte(pa, ca, progress))
		}
	}
}

// ActivateOverlay schedules a band to bleed over its row for
// durationFrames frames with linearly decaying strength.
func (fb *Framebuffers) ActivateOverlay(band OverlayBand, durationFrames int, color [4]uint8) {
	if band < 0 || int(band) >= NumOverlayBands {
		return
	}
	fb.overlays[band] = overlayState{Duration: durationFrames, Remaining: durationFrames, Color: color}
}

// OverlayActive reports whether a band is currently bleeding, and its
// remaining/duration counters, for tests and introspection.
func (fb *Framebuffers) OverlayActive(band OverlayBand) (active bool, remaining, duration int) {
	if band < 0 || int(band) >= NumOverlayBands {
		return false, 0, 0
	}
	ov := fb.overlays[band]
	return ov.Remaining > 0, ov.Remaining, ov.Duration
}
