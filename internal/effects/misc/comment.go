// Package misc holds bookkeeping and state-mutating effect kernels
// that don't fit render/filter/trans: Comment and Unknown (preset
// round-trip placeholders), the legacy.go stubs (OnBeatClear,
// ClearScreen, BufferSave, SetRenderMode, PictureLoader, AVIPlayer,
// SVPLoader), and RenderList, the nested-chain container the binary
// preset format's 0xFFFFFFFE list effect decodes into.
package misc

import (
	"github.com/pfahlr/vis-avs-sub001/internal/effect"
	"github.com/pfahlr/vis-avs-sub001/internal/rendercontext"
)

// Comment is a no-op placeholder carrying only a text annotation,
// matching binary effectId 21 and the text-format "Misc / Comment"
// special case where bare tokens accumulate into the comment string
// (original_source effect_comment.cpp).
type Comment struct {
	Text string
}

func NewComment() effect.Effect { return &Comment{} }

func (c *Comment) SetParams(p *effect.ParamBlock) error {
	c.Text = p.GetString("comment", c.Text)
	return nil
}

func (c *Comment) Render(ctx *rendercontext.Context) bool { return true }

// Unknown is the placeholder substituted for any preset-referenced
// effect the registry does not recognize. It preserves the raw binary
// payload it was decoded from, if any, so a round-trip re-encode can
// restore bytes this build cannot interpret.
type Unknown struct {
	OriginalToken string
	RawPayload    []byte
}

func NewUnknown() effect.Effect { return &Unknown{} }

func (u *Unknown) SetParams(p *effect.ParamBlock) error { return nil }

func (u *Unknown) Render(ctx *rendercontext.Context) bool { return false }
