package trans

import (
	"testing"

	"github.com/pfahlr/vis-avs-sub001/internal/effect"
	"github.com/pfahlr/vis-avs-sub001/internal/framebuffer"
	"github.com/pfahlr/vis-avs-sub001/internal/globalstate"
	"github.com/pfahlr/vis-avs-sub001/internal/rendercontext"
)

func newTransCtx(beat bool) *rendercontext.Context {
	fb := framebuffer.New(4, 4)
	fb.BeginFrame()
	return &rendercontext.Context{
		Width: 4, Height: 4, Framebuffer: fb, Globals: globalstate.New(), Beat: beat,
	}
}

func TestFadeOutDriftsTowardTarget(t *testing.T) {
	ctx := newTransCtx(false)
	ctx.Framebuffer.Current.Set(0, 0, 200, 200, 200, 255)

	f := NewFadeOut().(*FadeOut)
	params := effect.NewParamBlock()
	params.SetInt("r", 0)
	params.SetInt("g", 0)
	params.SetInt("b", 0)
	params.SetFloat("speed", 0.5)
	if err := f.SetParams(params); err != nil {
		t.Fatalf("SetParams: %v", err)
	}
	f.Render(ctx)

	r, _, _, _ := ctx.Framebuffer.Current.At(0, 0)
	if r != 100 {
		t.Fatalf("expected pixel to drift halfway to target, got r=%d", r)
	}
}

func TestMirrorHorizontalReflectsLeftOntoRight(t *testing.T) {
	ctx := newTransCtx(false)
	ctx.Framebuffer.Current.Set(0, 0, 10, 20, 30, 255)

	m := NewMirror().(*Mirror)
	m.SetParams(effect.NewParamBlock())
	m.Render(ctx)

	r, g, b, _ := ctx.Framebuffer.Current.At(3, 0)
	if r != 10 || g != 20 || b != 30 {
		t.Fatalf("expected mirrored pixel at x=3, got %d,%d,%d", r, g, b)
	}
}

func TestMirrorQuadReflectsAllFourCorners(t *testing.T) {
	ctx := newTransCtx(false)
	ctx.Framebuffer.Current.Set(0, 0, 1, 2, 3, 255)

	m := NewMirror().(*Mirror)
	params := effect.NewParamBlock()
	params.SetInt("axis", int32(MirrorQuad))
	m.SetParams(params)
	m.Render(ctx)

	for _, pt := range [][2]int{{3, 0}, {0, 3}, {3, 3}} {
		r, g, b, _ := ctx.Framebuffer.Current.At(pt[0], pt[1])
		if r != 1 || g != 2 || b != 3 {
			t.Fatalf("expected corner %v to match source pixel, got %d,%d,%d", pt, r, g, b)
		}
	}
}

func TestInvertNegatesChannels(t *testing.T) {
	ctx := newTransCtx(false)
	ctx.Framebuffer.Current.Set(0, 0, 10, 20, 30, 255)

	i := NewInvert()
	i.SetParams(effect.NewParamBlock())
	i.Render(ctx)

	r, g, b, a := ctx.Framebuffer.Current.At(0, 0)
	if r != 245 || g != 235 || b != 225 || a != 255 {
		t.Fatalf("expected inverted rgb with alpha untouched, got %d,%d,%d,%d", r, g, b, a)
	}
}

func TestInterleaveCopiesRowsFromPrevious(t *testing.T) {
	ctx := newTransCtx(false)
	for x := 0; x < 4; x++ {
		ctx.Framebuffer.Previous.Set(x, 0, 9, 9, 9, 255)
		ctx.Framebuffer.Previous.Set(x, 1, 9, 9, 9, 255)
	}
	for x := 0; x < 4; x++ {
		ctx.Framebuffer.Current.Set(x, 0, 0, 0, 0, 255)
		ctx.Framebuffer.Current.Set(x, 1, 0, 0, 0, 255)
	}

	it := NewInterleave().(*Interleave)
	params := effect.NewParamBlock()
	params.SetInt("stride", 2)
	it.SetParams(params)
	it.Render(ctx)

	r0, _, _, _ := ctx.Framebuffer.Current.At(0, 0)
	r1, _, _, _ := ctx.Framebuffer.Current.At(0, 1)
	if r0 != 9 {
		t.Fatalf("expected row 0 replaced from previous frame, got r=%d", r0)
	}
	if r1 != 0 {
		t.Fatalf("expected row 1 left untouched, got r=%d", r1)
	}
}

func TestInterleaveAdvancesPhaseOnBeat(t *testing.T) {
	ctx := newTransCtx(true)
	it := NewInterleave().(*Interleave)
	params := effect.NewParamBlock()
	params.SetInt("stride", 2)
	params.SetBool("onbeat", true)
	it.SetParams(params)

	it.Render(ctx)
	if it.phase != 1 {
		t.Fatalf("expected phase to advance on beat, got %d", it.phase)
	}
}

func TestBumpLeavesFlatImageUnshaded(t *testing.T) {
	ctx := newTransCtx(false)
	for i := range ctx.Framebuffer.Current.Pix {
		ctx.Framebuffer.Current.Pix[i] = 128
	}

	b := NewBump().(*Bump)
	b.SetParams(effect.NewParamBlock())
	b.Render(ctx)

	r, g, bl, _ := ctx.Framebuffer.Current.At(1, 1)
	if r != 64 || g != 64 || bl != 64 {
		t.Fatalf("flat image should shade uniformly at half brightness, got %d,%d,%d", r, g, bl)
	}
}
