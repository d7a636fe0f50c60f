package misc

import (
	"testing"

	"github.com/pfahlr/vis-avs-sub001/internal/effect"
	"github.com/pfahlr/vis-avs-sub001/internal/rendercontext"
)

type countingEffect struct {
	renders int
	result  bool
}

func (c *countingEffect) SetParams(*effect.ParamBlock) error { return nil }
func (c *countingEffect) Render(*rendercontext.Context) bool { c.renders++; return c.result }

func TestRenderListRendersAllChildrenInOrder(t *testing.T) {
	l := NewRenderList().(*RenderList)
	a := &countingEffect{result: true}
	b := &countingEffect{result: true}
	l.SetChildren([]effect.Entry{
		{Name: "a", Params: effect.NewParamBlock(), Effect: a},
		{Name: "b", Params: effect.NewParamBlock(), Effect: b},
	})

	ok := l.Render(newLegacyCtx(false))
	if !ok {
		t.Fatalf("expected Render to return true when all children succeed")
	}
	if a.renders != 1 || b.renders != 1 {
		t.Fatalf("expected both children to render once, got a=%d b=%d", a.renders, b.renders)
	}
}

func TestRenderListFailsIfAnyChildFails(t *testing.T) {
	l := NewRenderList().(*RenderList)
	a := &countingEffect{result: true}
	b := &countingEffect{result: false}
	l.SetChildren([]effect.Entry{
		{Name: "a", Params: effect.NewParamBlock(), Effect: a},
		{Name: "b", Params: effect.NewParamBlock(), Effect: b},
	})

	if ok := l.Render(newLegacyCtx(false)); ok {
		t.Fatalf("expected Render to return false when a child fails")
	}
}

func TestRenderListImplementsEffectList(t *testing.T) {
	var _ effect.EffectList = NewRenderList().(*RenderList)
}
