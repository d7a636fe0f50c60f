package primitive

import (
	"testing"

	"github.com/pfahlr/vis-avs-sub001/internal/framebuffer"
)

func TestBlendPixelStraightAlpha(t *testing.T) {
	f := framebuffer.NewFrame(4, 4)
	BlendPixel(f, 1, 1, RGBA{R: 255, A: 255}, nil)
	r, _, _, a := f.At(1, 1)
	if r != 255 || a != 255 {
		t.Fatalf("got r=%d a=%d, want 255/255", r, a)
	}
}

func TestBlendPixelOutOfBoundsNoop(t *testing.T) {
	f := framebuffer.NewFrame(2, 2)
	BlendPixel(f, -1, 0, RGBA{R: 255, A: 255}, nil)
	BlendPixel(f, 5, 0, RGBA{R: 255, A: 255}, nil)
}

func TestFillTriangleCoversCenter(t *testing.T) {
	f := framebuffer.NewFrame(10, 10)
	FillTriangle(f, Point{0, 0}, Point{9, 0}, Point{0, 9}, RGBA{G: 255, A: 255}, nil)
	_, g, _, _ := f.At(2, 2)
	if g != 255 {
		t.Fatalf("expected filled pixel inside triangle, g=%d", g)
	}
	_, g2, _, _ := f.At(8, 8)
	if g2 != 0 {
		t.Fatalf("expected unfilled pixel outside triangle, g=%d", g2)
	}
}

func TestParsePointList(t *testing.T) {
	pts := ParsePointList("1,2 3;4\n5 6")
	want := []Point{{1, 2}, {3, 4}, {5, 6}}
	if len(pts) != len(want) {
		t.Fatalf("got %d points, want %d", len(pts), len(want))
	}
	for i, p := range pts {
		if p != want[i] {
			t.Fatalf("point %d = %v, want %v", i, p, want[i])
		}
	}
}

func TestDrawThickLineSinglePixelWidth(t *testing.T) {
	f := framebuffer.NewFrame(5, 5)
	DrawThickLine(f, 0, 0, 4, 0, 1, RGBA{R: 200, A: 255}, nil)
	for x := 0; x <= 4; x++ {
		r, _, _, _ := f.At(x, 0)
		if r != 200 {
			t.Fatalf("pixel (%d,0) not drawn", x)
		}
	}
}
