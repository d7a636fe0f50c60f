// Package primitive implements the shared line/circle/triangle
// rasterizers every render kernel composes from: polar primitives and
// the line, span, circle, filled-triangle and text kernels (there is no
// rounded-rect kernel), grounded on
// original_source's avs::effects::detail helpers.
package primitive

import (
	"strconv"
	"strings"

	"github.com/pfahlr/vis-avs-sub001/internal/framebuffer"
	"github.com/pfahlr/vis-avs-sub001/internal/globalstate"
)

// RGBA is a small by-value pixel, distinct from framebuffer.Frame's
// byte-slice storage, used for the blend math in this package.
type RGBA struct {
	R, G, B, A uint8
}

// FromInt unpacks a 24-bit 0xRRGGBB color int with the given alpha.
func FromInt(value int32, alpha uint8) RGBA {
	v := uint32(value)
	return RGBA{
		R: uint8((v >> 16) & 0xFF),
		G: uint8((v >> 8) & 0xFF),
		B: uint8(v & 0xFF),
		A: alpha,
	}
}

func clampByte(v int) uint8 {
	if v < 0 {
		return 0
	}
	if v > 255 {
		return 255
	}
	return uint8(v)
}

// BlendPixel composites color into frame at (x,y) using straight
// alpha-over, optionally modulated by legacy line-blend state. Frames
// with legacy rendering active route through the legacy table instead
// (see globals.LegacyRender).
func BlendPixel(frame *framebuffer.Frame, x, y int, color RGBA, globals *globalstate.State) {
	if frame == nil || !frame.InBounds(x, y) {
		return
	}
	if globals != nil && globals.LegacyRender.Active {
		blendPixelLegacy(frame, x, y, color, globals)
		return
	}
	if color.A == 0 {
		return
	}
	dr, dg, db, da := frame.At(x, y)
	a := int(color.A)
	inv := 255 - a
	nr := clampByte((int(dr)*inv + int(color.R)*a + 127) / 255)
	ng := clampByte((int(dg)*inv + int(color.G)*a + 127) / 255)
	nb := clampByte((int(db)*inv + int(color.B)*a + 127) / 255)
	na := clampByte(int(da) + a)
	frame.Set(x, y, nr, ng, nb, na)
}

func blendPixelLegacy(frame *framebuffer.Frame, x, y int, color RGBA, globals *globalstate.State) {
	dr, dg, db, _ := frame.At(x, y)
	mode := globals.LegacyRender.BlendOp()
	alpha := globals.LegacyRender.Alpha()
	nr := legacyChannel(mode, dr, color.R, alpha)
	ng := legacyChannel(mode, dg, color.G, alpha)
	nb := legacyChannel(mode, db, color.B, alpha)
	frame.Set(x, y, nr, ng, nb, 255)
}

// legacyChannel mirrors blend.LegacyChannel without importing package
// blend, to keep primitive dependency-free of the general blend enum
// (it only ever needs the legacy table).
func legacyChannel(mode, dst, src, alpha uint8) uint8 {
	switch mode {
	case 0: // Replace
		return src
	case 1: // Additive
		return clampByte(int(dst) + int(src))
	case 2: // Max
		if dst > src {
			return dst
		}
		return src
	case 3: // Average
		return clampByte((int(dst) + int(src)) / 2)
	case 4: // SubtractAB
		return clampByte(int(dst) - int(src))
	case 5: // SubtractBA
		return clampByte(int(src) - int(dst))
	case 6: // Multiply
		return clampByte((int(dst) * int(src)) / 255)
	case 7: // Adjustable
		return clampByte((int(src)*int(alpha) + int(dst)*(255-int(alpha))) / 255)
	case 8: // XOR
		return dst ^ src
	case 9: // Min
		if dst < src {
			return dst
		}
		return src
	default:
		return src
	}
}

// DrawHorizontalSpan blends color across [x0,x1] on row y.
func DrawHorizontalSpan(frame *framebuffer.Frame, x0, x1, y int, color RGBA, globals *globalstate.State) {
	if y < 0 || y >= frame.Height {
		return
	}
	if x0 > x1 {
		x0, x1 = x1, x0
	}
	if x0 < 0 {
		x0 = 0
	}
	if x1 > frame.Width-1 {
		x1 = frame.Width - 1
	}
	for x := x0; x <= x1; x++ {
		BlendPixel(frame, x, y, color, globals)
	}
}

// DrawFilledCircle rasterizes a filled circle with a Bresenham-style
// midpoint walk, drawing horizontal spans per scanline.
func DrawFilledCircle(frame *framebuffer.Frame, cx, cy, radius int, color RGBA, globals *globalstate.State) {
	if radius < 0 {
		return
	}
	x, y := 0, radius
	decision := 1 - radius
	for y >= x {
		DrawHorizontalSpan(frame, cx-y, cx+y, cy+x, color, globals)
		DrawHorizontalSpan(frame, cx-x, cx+x, cy+y, color, globals)
		DrawHorizontalSpan(frame, cx-y, cx+y, cy-x, color, globals)
		DrawHorizontalSpan(frame, cx-x, cx+x, cy-y, color, globals)
		x++
		if decision < 0 {
			decision += 2*x + 1
		} else {
			y--
			decision += 2*(x-y) + 1
		}
	}
}

func iabs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}

// DrawThickLine walks a Bresenham line from (x0,y0) to (x1,y1),
// stamping a filled circle of radius width/2 at every step (or a
// single pixel when width<=1).
func DrawThickLine(frame *framebuffer.Frame, x0, y0, x1, y1, width int, color RGBA, globals *globalstate.State) {
	dx := iabs(x1 - x0)
	dy := iabs(y1 - y0)
	sx, sy := 1, 1
	if x0 >= x1 {
		sx = -1
	}
	if y0 >= y1 {
		sy = -1
	}
	err := dx - dy
	radius := width / 2
	if radius < 0 {
		radius = 0
	}
	for {
		if radius == 0 {
			BlendPixel(frame, x0, y0, color, globals)
		} else {
			DrawFilledCircle(frame, x0, y0, radius, color, globals)
		}
		if x0 == x1 && y0 == y1 {
			break
		}
		e2 := 2 * err
		if e2 > -dy {
			err -= dy
			x0 += sx
		}
		if e2 < dx {
			err += dx
			y0 += sy
		}
	}
}

// Point is an integer pixel-space coordinate.
type Point struct{ X, Y int }

func edgeFunction(a, b Point, px, py int) int64 {
	return int64(px-a.X)*int64(b.Y-a.Y) - int64(py-a.Y)*int64(b.X-a.X)
}

// PointInTriangle is a half-plane test, winding-direction agnostic.
func PointInTriangle(p0, p1, p2 Point, x, y int) bool {
	e0 := edgeFunction(p0, p1, x, y)
	e1 := edgeFunction(p1, p2, x, y)
	e2 := edgeFunction(p2, p0, x, y)
	hasNeg := e0 < 0 || e1 < 0 || e2 < 0
	hasPos := e0 > 0 || e1 > 0 || e2 > 0
	return !(hasNeg && hasPos)
}

// FillTriangle rasterizes a filled triangle by bounding-box + edge test.
func FillTriangle(frame *framebuffer.Frame, p0, p1, p2 Point, color RGBA, globals *globalstate.State) {
	minX, maxX := minInt3(p0.X, p1.X, p2.X), maxInt3(p0.X, p1.X, p2.X)
	minY, maxY := minInt3(p0.Y, p1.Y, p2.Y), maxInt3(p0.Y, p1.Y, p2.Y)
	if minX < 0 {
		minX = 0
	}
	if minY < 0 {
		minY = 0
	}
	if maxX > frame.Width-1 {
		maxX = frame.Width - 1
	}
	if maxY > frame.Height-1 {
		maxY = frame.Height - 1
	}
	for y := minY; y <= maxY; y++ {
		for x := minX; x <= maxX; x++ {
			if PointInTriangle(p0, p1, p2, x, y) {
				BlendPixel(frame, x, y, color, globals)
			}
		}
	}
}

func minInt3(a, b, c int) int {
	m := a
	if b < m {
		m = b
	}
	if c < m {
		m = c
	}
	return m
}

func maxInt3(a, b, c int) int {
	m := a
	if b > m {
		m = b
	}
	if c > m {
		m = c
	}
	return m
}

// ParsePointList parses a whitespace/comma/semicolon-delimited list of
// integers into (x,y) pairs, discarding a trailing unpaired value.
func ParsePointList(text string) []Point {
	fields := strings.FieldsFunc(text, func(r rune) bool {
		switch r {
		case ' ', '\t', '\n', '\r', ',', ';':
			return true
		default:
			return false
		}
	})
	values := make([]int, 0, len(fields))
	for _, f := range fields {
		if n, err := strconv.Atoi(f); err == nil {
			values = append(values, n)
		}
	}
	points := make([]Point, 0, len(values)/2)
	for i := 0; i+1 < len(values); i += 2 {
		points = append(points, Point{X: values[i], Y: values[i+1]})
	}
	return points
}
