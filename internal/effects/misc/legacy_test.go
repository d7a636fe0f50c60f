package misc

import (
	"testing"

	"github.com/pfahlr/vis-avs-sub001/internal/effect"
	"github.com/pfahlr/vis-avs-sub001/internal/framebuffer"
	"github.com/pfahlr/vis-avs-sub001/internal/globalstate"
	"github.com/pfahlr/vis-avs-sub001/internal/rendercontext"
)

func newLegacyCtx(beat bool) *rendercontext.Context {
	fb := framebuffer.New(4, 4)
	fb.BeginFrame()
	return &rendercontext.Context{
		Width: 4, Height: 4, Framebuffer: fb, Globals: globalstate.New(), Beat: beat,
	}
}

func TestOnBeatClearOnlyClearsOnBeat(t *testing.T) {
	ctx := newLegacyCtx(false)
	ctx.Framebuffer.Current.Set(0, 0, 1, 2, 3, 255)

	o := NewOnBeatClear().(*OnBeatClear)
	params := effect.NewParamBlock()
	params.SetInt("r", 9)
	o.SetParams(params)
	o.Render(ctx)

	r, _, _, _ := ctx.Framebuffer.Current.At(0, 0)
	if r != 1 {
		t.Fatalf("expected no clear off-beat, pixel r = %d", r)
	}

	ctx.Beat = true
	o.Render(ctx)
	r, _, _, _ = ctx.Framebuffer.Current.At(0, 0)
	if r != 9 {
		t.Fatalf("expected clear on-beat to set r=9, got %d", r)
	}
}

func TestBufferSaveStoreAndRestore(t *testing.T) {
	ctx := newLegacyCtx(false)
	ctx.Framebuffer.Current.Set(1, 1, 10, 20, 30, 255)

	store := NewBufferSave().(*BufferSave)
	params := effect.NewParamBlock()
	params.SetInt("slot", 2)
	params.SetInt("mode", int32(BufferSaveStore))
	store.SetParams(params)
	store.Render(ctx)

	ctx.Framebuffer.Current.Set(1, 1, 99, 99, 99, 255)

	restore := NewBufferSave().(*BufferSave)
	rparams := effect.NewParamBlock()
	rparams.SetInt("slot", 2)
	rparams.SetInt("mode", int32(BufferSaveRestore))
	restore.SetParams(rparams)
	restore.Render(ctx)

	r, g, b, _ := ctx.Framebuffer.Current.At(1, 1)
	if r != 10 || g != 20 || b != 30 {
		t.Fatalf("restored pixel = %d,%d,%d, want 10,20,30", r, g, b)
	}
}

func TestSetRenderModeUpdatesGlobalState(t *testing.T) {
	ctx := newLegacyCtx(false)
	s := NewSetRenderMode().(*SetRenderMode)
	params := effect.NewParamBlock()
	params.SetBool("enable", true)
	params.SetInt("mode", 3)
	s.SetParams(params)
	s.Render(ctx)

	if !ctx.Globals.LegacyRender.Active {
		t.Fatalf("expected LegacyRender.Active to be set")
	}
}

func TestPictureLoaderReportsMissingResource(t *testing.T) {
	ctx := newLegacyCtx(false)
	p := NewPictureLoader()
	p.SetParams(effect.NewParamBlock())
	if ok := p.Render(ctx); ok {
		t.Fatalf("expected PictureLoader.Render to return false (missing resource)")
	}
}

func TestSVPLoaderIsPassThrough(t *testing.T) {
	ctx := newLegacyCtx(false)
	ctx.Framebuffer.Current.Set(0, 0, 5, 6, 7, 255)
	s := NewSVPLoader()
	s.SetParams(effect.NewParamBlock())
	s.Render(ctx)
	r, g, b, _ := ctx.Framebuffer.Current.At(0, 0)
	if r != 5 || g != 6 || b != 7 {
		t.Fatalf("expected SVPLoader to leave the frame untouched, got %d,%d,%d", r, g, b)
	}
}
