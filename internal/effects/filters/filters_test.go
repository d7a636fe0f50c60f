package filters

import (
	"testing"

	"github.com/pfahlr/vis-avs-sub001/internal/effect"
	"github.com/pfahlr/vis-avs-sub001/internal/framebuffer"
	"github.com/pfahlr/vis-avs-sub001/internal/globalstate"
	"github.com/pfahlr/vis-avs-sub001/internal/rendercontext"
	"github.com/pfahlr/vis-avs-sub001/internal/rng"
)

func newCtx() *rendercontext.Context {
	fb := framebuffer.New(16, 16)
	fb.BeginFrame()
	for i := range fb.Current.Pix {
		fb.Current.Pix[i] = 128
	}
	return &rendercontext.Context{
		Width: 16, Height: 16, Framebuffer: fb,
		Rng: rng.New(7), Globals: globalstate.New(),
	}
}

func TestBoxBlurFlatImageUnchanged(t *testing.T) {
	ctx := newCtx()
	b := NewBoxBlur()
	b.SetParams(effect.NewParamBlock())
	b.Render(ctx)
	for _, v := range ctx.Framebuffer.Current.Pix {
		if v != 128 {
			t.Fatalf("blurring a flat image should leave it unchanged, got %d", v)
		}
	}
}

func TestGrainStaticCacheIsStable(t *testing.T) {
	ctx := newCtx()
	g := NewGrain().(*Grain)
	params := effect.NewParamBlock()
	params.SetBool("static", true)
	g.SetParams(params)
	g.Render(ctx)
	first := append([]byte(nil), ctx.Framebuffer.Current.Pix...)
	for i := range ctx.Framebuffer.Current.Pix {
		ctx.Framebuffer.Current.Pix[i] = 128
	}
	g.Render(ctx)
	second := ctx.Framebuffer.Current.Pix
	for i := range first {
		if first[i] != second[i] {
			t.Fatalf("static grain should reuse its cached pattern")
		}
	}
}

func TestColorMapIdentityIsNoop(t *testing.T) {
	ctx := newCtx()
	c := NewColorMap()
	c.SetParams(effect.NewParamBlock())
	c.Render(ctx)
	r, g, b, _ := ctx.Framebuffer.Current.At(0, 0)
	if r != 128 || g != 128 || b != 128 {
		t.Fatalf("identity LUT changed pixel: %d %d %d", r, g, b)
	}
}

func TestFastBrightnessScalesChannels(t *testing.T) {
	ctx := newCtx()
	fb := NewFastBrightness()
	params := effect.NewParamBlock()
	params.SetFloat("amount", 0.5)
	fb.SetParams(params)
	fb.Render(ctx)
	r, _, _, _ := ctx.Framebuffer.Current.At(0, 0)
	if r != 64 {
		t.Fatalf("got r=%d, want 64", r)
	}
}

func TestColorClipNarrowsAndRescalesRange(t *testing.T) {
	ctx := newCtx()
	ctx.Framebuffer.Current.Pix[0] = 0   // below the clip floor
	ctx.Framebuffer.Current.Pix[4] = 255 // above the clip ceiling
	ctx.Framebuffer.Current.Pix[8] = 128 // inside the clip range

	c := NewColorClip().(*ColorClip)
	params := effect.NewParamBlock()
	params.SetInt("below", 64)
	params.SetInt("above", 192)
	if err := c.SetParams(params); err != nil {
		t.Fatalf("SetParams: %v", err)
	}
	c.Render(ctx)

	if got := ctx.Framebuffer.Current.Pix[0]; got != 64 {
		t.Fatalf("value below the clip floor should clamp to 64, got %d", got)
	}
	if got := ctx.Framebuffer.Current.Pix[4]; got != 192 {
		t.Fatalf("value above the clip ceiling should clamp to 192, got %d", got)
	}
	if got := ctx.Framebuffer.Current.Pix[8]; got != 127 {
		t.Fatalf("mid-range value should rescale to 127, got %d", got)
	}
}

func TestConv3x3IdentityKernel(t *testing.T) {
	ctx := newCtx()
	c := NewConv3x3()
	c.SetParams(effect.NewParamBlock())
	c.Render(ctx)
	r, _, _, _ := ctx.Framebuffer.Current.At(5, 5)
	if r != 128 {
		t.Fatalf("identity kernel changed pixel: r=%d", r)
	}
}
