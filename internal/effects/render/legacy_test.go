package render

import (
	"testing"

	"github.com/pfahlr/vis-avs-sub001/internal/effect"
)

func TestDotGridPlacesDotsOnSpacingGrid(t *testing.T) {
	ctx := newTestContext()
	ctx.Bass = 1

	d := NewDotGrid().(*DotGrid)
	params := effect.NewParamBlock()
	params.SetInt("spacing", 8)
	if err := d.SetParams(params); err != nil {
		t.Fatalf("SetParams: %v", err)
	}
	d.Render(ctx)

	r, _, _, _ := ctx.Framebuffer.Current.At(4, 4)
	if r == 0 {
		t.Fatalf("expected a dot centered on the first grid cell, got r=%d", r)
	}
	r, _, _, _ = ctx.Framebuffer.Current.At(0, 0)
	if r != 0 {
		t.Fatalf("expected no dot off the grid, got r=%d", r)
	}
}

func TestStarFieldSeedsOnFirstRender(t *testing.T) {
	ctx := newTestContext()
	ctx.DeltaSeconds = 0.016

	s := NewStarField().(*StarField)
	s.SetParams(effect.NewParamBlock())
	if s.ready {
		t.Fatalf("expected StarField to be unseeded before its first render")
	}
	s.Render(ctx)
	if !s.ready {
		t.Fatalf("expected StarField to seed its star pool on first render")
	}
}

func TestStarFieldReseedsPastNearPlane(t *testing.T) {
	ctx := newTestContext()
	ctx.DeltaSeconds = 0.016

	s := NewStarField().(*StarField)
	s.SetParams(effect.NewParamBlock())
	s.Render(ctx)
	s.stars[0].z = 0.01
	s.Render(ctx)
	if s.stars[0].z <= 0.05 {
		t.Fatalf("expected star past the near plane to reseed with z reset to 1, got z=%f", s.stars[0].z)
	}
}

func TestTextEffectDrawsNonEmptyGlyphs(t *testing.T) {
	ctx := newTestContext()

	te := NewTextEffect().(*TextEffect)
	params := effect.NewParamBlock()
	params.SetString("text", "A")
	params.SetInt("x", 0)
	params.SetInt("y", 0)
	params.SetInt("scale", 1)
	if err := te.SetParams(params); err != nil {
		t.Fatalf("SetParams: %v", err)
	}
	te.Render(ctx)

	var lit bool
	for _, v := range ctx.Framebuffer.Current.Pix {
		if v != 0 {
			lit = true
			break
		}
	}
	if !lit {
		t.Fatalf("expected TextEffect to light at least one pixel")
	}
}
