package misc

import (
	"github.com/pfahlr/vis-avs-sub001/internal/effect"
	"github.com/pfahlr/vis-avs-sub001/internal/framebuffer"
	"github.com/pfahlr/vis-avs-sub001/internal/rendercontext"
)

// OnBeatClear clears the frame to a solid color on every beat,
// matching binary effectId 5 ("Render / OnBeat Clear").
type OnBeatClear struct {
	R, G, B uint8
}

func NewOnBeatClear() effect.Effect { return &OnBeatClear{} }

func (o *OnBeatClear) SetParams(p *effect.ParamBlock) error {
	o.R = uint8(p.GetInt("r", int32(o.R)))
	o.G = uint8(p.GetInt("g", int32(o.G)))
	o.B = uint8(p.GetInt("b", int32(o.B)))
	return nil
}

func (o *OnBeatClear) Render(ctx *rendercontext.Context) bool {
	if !ctx.Beat {
		return true
	}
	ctx.Framebuffer.Clear(framebuffer.ClearSettings{R: o.R, G: o.G, B: o.B, A: 255, Blend: framebuffer.Replace})
	return true
}

// ClearScreen clears the frame to a solid color every frame, the
// unconditional counterpart to OnBeatClear (binary effectId 25).
type ClearScreen struct {
	R, G, B        uint8
	FirstFrameOnly bool
}

func NewClearScreen() effect.Effect { return &ClearScreen{} }

func (c *ClearScreen) SetParams(p *effect.ParamBlock) error {
	c.R = uint8(p.GetInt("r", int32(c.R)))
	c.G = uint8(p.GetInt("g", int32(c.G)))
	c.B = uint8(p.GetInt("b", int32(c.B)))
	c.FirstFrameOnly = p.GetBool("first_frame_only", c.FirstFrameOnly)
	return nil
}

func (c *ClearScreen) Render(ctx *rendercontext.Context) bool {
	ctx.Framebuffer.Clear(framebuffer.ClearSettings{
		R: c.R, G: c.G, B: c.B, A: 255,
		Blend:          framebuffer.Replace,
		FirstFrameOnly: c.FirstFrameOnly,
	})
	return true
}

// BufferSave exposes the eight save-slot buffer as an effect: every
// frame (or only on beat frames when OnBeat is set) it either stores
// Current into Slot or restores Slot into Current, per binary
// effectId 18 ("Misc / Buffer Save").
type BufferSave struct {
	Slot      int
	Mode      BufferSaveMode
	OnBeat    bool
	everyMode bool
}

// BufferSaveMode selects the direction of the buffer-slot copy.
type BufferSaveMode int

const (
	BufferSaveStore BufferSaveMode = iota
	BufferSaveRestore
)

func NewBufferSave() effect.Effect { return &BufferSave{} }

func (b *BufferSave) SetParams(p *effect.ParamBlock) error {
	b.Slot = int(p.GetInt("slot", int32(b.Slot)))
	if b.Slot < 0 {
		b.Slot = 0
	}
	if b.Slot > 7 {
		b.Slot = 7
	}
	b.Mode = BufferSaveMode(p.GetInt("mode", int32(b.Mode))) % 2
	b.OnBeat = p.GetBool("onbeat", b.OnBeat)
	return nil
}

func (b *BufferSave) Render(ctx *rendercontext.Context) bool {
	if b.OnBeat && !ctx.Beat {
		return true
	}
	switch b.Mode {
	case BufferSaveRestore:
		ctx.Framebuffer.Restore(b.Slot)
	default:
		ctx.Framebuffer.Save(b.Slot)
	}
	return true
}

// SetRenderMode toggles the legacy 10-mode line/point blend table that
// primitive drawers consult when GlobalState.LegacyRender.Active is
// set (binary effectId 40, "Misc / Set render mode").
type SetRenderMode struct {
	Enable bool
	Mode   uint8
	Alpha  uint8
}

func NewSetRenderMode() effect.Effect { return &SetRenderMode{} }

func (s *SetRenderMode) SetParams(p *effect.ParamBlock) error {
	s.Enable = p.GetBool("enable", s.Enable)
	s.Mode = uint8(p.GetInt("mode", int32(s.Mode)))
	s.Alpha = uint8(p.GetInt("alpha", int32(s.Alpha)))
	return nil
}

func (s *SetRenderMode) Render(ctx *rendercontext.Context) bool {
	ctx.Globals.LegacyRender.Active = s.Enable
	ctx.Globals.LegacyRender.Mode = uint32(s.Mode) | uint32(s.Alpha)<<8
	return true
}

// PictureLoader and AVIPlayer stand in for the two external-resource
// legacy kernels (binary effectIds 34 and 32): loading a still image
// or decoding video frames needs a file-format and media stack this
// module deliberately omits (see DESIGN.md's ResourceMissing note).
// Both report the missing resource by returning false from Render;
// PictureLoader also fills the frame with its flat color.
type PictureLoader struct {
	Path    string
	R, G, B uint8
}

func NewPictureLoader() effect.Effect { return &PictureLoader{R: 32, G: 32, B: 32} }

func (p *PictureLoader) SetParams(pb *effect.ParamBlock) error {
	p.Path = pb.GetString("path", p.Path)
	return nil
}

func (p *PictureLoader) Render(ctx *rendercontext.Context) bool {
	ctx.Framebuffer.Clear(framebuffer.ClearSettings{R: p.R, G: p.G, B: p.B, A: 255, Blend: framebuffer.Replace})
	return false
}

// AVIPlayer is the placeholder for the legacy video-file kernel: its
// Render leaves the frame untouched and returns false.
type AVIPlayer struct {
	Path string
}

func NewAVIPlayer() effect.Effect { return &AVIPlayer{} }

func (a *AVIPlayer) SetParams(p *effect.ParamBlock) error {
	a.Path = p.GetString("path", a.Path)
	return nil
}

func (a *AVIPlayer) Render(ctx *rendercontext.Context) bool { return false }

// SVPLoader stands in for the native-plugin ("Studio Video Player")
// legacy host kernel; hosting arbitrary native plugins is out of
// scope, so this is a pass-through no-op rather than a flat fill,
// since SVP presets commonly layer atop an existing render.
type SVPLoader struct {
	Path string
}

func NewSVPLoader() effect.Effect { return &SVPLoader{} }

func (s *SVPLoader) SetParams(p *effect.ParamBlock) error {
	s.Path = p.GetString("path", s.Path)
	return nil
}

func (s *SVPLoader) Render(ctx *rendercontext.Context) bool { return false }
