package misc

import (
	"github.com/pfahlr/vis-avs-sub001/internal/effect"
	"github.com/pfahlr/vis-avs-sub001/internal/rendercontext"
)

// RenderList hosts a nested chain of (effect, params) entries, the
// kernel the preset loader builds for the binary format's kListId
// sentinel (0xFFFFFFFE). It implements effect.EffectList so the loader can attach
// children after construction.
type RenderList struct {
	children []effect.Entry
}

func NewRenderList() effect.Effect { return &RenderList{} }

func (l *RenderList) SetParams(p *effect.ParamBlock) error { return nil }

func (l *RenderList) SetChildren(children []effect.Entry) { l.children = children }

func (l *RenderList) Children() []effect.Entry { return l.children }

func (l *RenderList) Render(ctx *rendercontext.Context) bool {
	result := true
	for _, entry := range l.children {
		if !entry.Effect.Render(ctx) {
			result = false
		}
	}
	return result
}
