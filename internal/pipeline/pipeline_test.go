package pipeline

import (
	"testing"

	"github.com/pfahlr/vis-avs-sub001/internal/effect"
	"github.com/pfahlr/vis-avs-sub001/internal/rendercontext"
)

type recordingEffect struct {
	enabled bool
	frames  int
}

func (e *recordingEffect) SetParams(p *effect.ParamBlock) error {
	e.enabled = p.GetBool("enabled", e.enabled)
	return nil
}

func (e *recordingEffect) Render(*rendercontext.Context) bool {
	e.frames++
	return e.enabled
}

func newTestRegistry() *effect.Registry {
	r := effect.NewRegistry()
	r.Register("Always On", func() effect.Effect { return &recordingEffect{enabled: true} }, 0)
	r.Register("Always Off", func() effect.Effect { return &recordingEffect{enabled: false} }, 0)
	return r
}

func TestAddInstantiatesAndAppliesParams(t *testing.T) {
	r := newTestRegistry()
	p := New(r)
	params := effect.NewParamBlock()
	params.SetBool("enabled", false)
	if err := p.Add("Always On", params); err != nil {
		t.Fatalf("Add: %v", err)
	}
	if p.Len() != 1 {
		t.Fatalf("Len = %d, want 1", p.Len())
	}
	inst := p.Entries()[0].Effect.(*recordingEffect)
	if inst.enabled {
		t.Fatalf("SetParams override was not applied")
	}
}

func TestRenderIsANDOfAllEffects(t *testing.T) {
	r := newTestRegistry()
	p := New(r)
	p.Add("Always On", nil)
	p.Add("Always Off", nil)
	p.Add("Always On", nil)

	if p.Render(&rendercontext.Context{}) {
		t.Fatalf("pipeline result should be false when any effect returns false")
	}

	for _, e := range p.Entries() {
		if e.Effect.(*recordingEffect).frames != 1 {
			t.Fatalf("every effect should still render once despite an earlier false")
		}
	}
}

func TestRenderAllTrue(t *testing.T) {
	r := newTestRegistry()
	p := New(r)
	p.Add("Always On", nil)
	p.Add("Always On", nil)
	if !p.Render(&rendercontext.Context{}) {
		t.Fatalf("expected true when all effects enabled")
	}
}

func TestAddUnknownEffectErrors(t *testing.T) {
	r := newTestRegistry()
	p := New(r)
	if err := p.Add("does not exist", nil); err == nil {
		t.Fatalf("expected error adding unknown effect")
	}
}
