package primitive

import (
	"github.com/pfahlr/vis-avs-sub001/internal/framebuffer"
	"github.com/pfahlr/vis-avs-sub001/internal/globalstate"
)

// font5x7 is the engine's built-in bitmap font, used by level/band
// text readouts and by the scripted effect's compile/runtime-error
// overlays. Each glyph is 5 columns x 7 rows, one bit per pixel,
// column-major (bit 0 = top row).
var font5x7 = map[rune][5]byte{
	' ': {0, 0, 0, 0, 0},
	'-': {0, 0, 0x08, 0, 0},
	'.': {0, 0x60, 0x60, 0, 0},
	':': {0, 0x36, 0x36, 0, 0},
	'/': {0x40, 0x20, 0x10, 0x08, 0x04},
	'(': {0, 0x3C, 0x42, 0, 0},
	')': {0, 0x42, 0x3C, 0, 0},
	'0': {0x3E, 0x51, 0x49, 0x45, 0x3E},
	'1': {0, 0x42, 0x7F, 0x40, 0},
	'2': {0x42, 0x61, 0x51, 0x49, 0x46},
	'3': {0x21, 0x41, 0x45, 0x4B, 0x31},
	'4': {0x18, 0x14, 0x12, 0x7F, 0x10},
	'5': {0x27, 0x45, 0x45, 0x45, 0x39},
	'6': {0x3C, 0x4A, 0x49, 0x49, 0x30},
	'7': {0x01, 0x71, 0x09, 0x05, 0x03},
	'8': {0x36, 0x49, 0x49, 0x49, 0x36},
	'9': {0x06, 0x49, 0x49, 0x29, 0x1E},
	'A': {0x7E, 0x11, 0x11, 0x11, 0x7E},
	'B': {0x7F, 0x49, 0x49, 0x49, 0x36},
	'C': {0x3E, 0x41, 0x41, 0x41, 0x22},
	'D': {0x7F, 0x41, 0x41, 0x22, 0x1C},
	'E': {0x7F, 0x49, 0x49, 0x49, 0x41},
	'F': {0x7F, 0x09, 0x09, 0x09, 0x01},
	'G': {0x3E, 0x41, 0x49, 0x49, 0x7A},
	'H': {0x7F, 0x08, 0x08, 0x08, 0x7F},
	'I': {0, 0x41, 0x7F, 0x41, 0},
	'J': {0x20, 0x40, 0x41, 0x3F, 0x01},
	'K': {0x7F, 0x08, 0x14, 0x22, 0x41},
	'L': {0x7F, 0x40, 0x40, 0x40, 0x40},
	'M': {0x7F, 0x02, 0x0C, 0x02, 0x7F},
	'N': {0x7F, 0x04, 0x08, 0x10, 0x7F},
	'O': {0x3E, 0x41, 0x41, 0x41, 0x3E},
	'P': {0x7F, 0x09, 0x09, 0x09, 0x06},
	'Q': {0x3E, 0x41, 0x51, 0x21, 0x5E},
	'R': {0x7F, 0x09, 0x19, 0x29, 0x46},
	'S': {0x46, 0x49, 0x49, 0x49, 0x31},
	'T': {0x01, 0x01, 0x7F, 0x01, 0x01},
	'U': {0x3F, 0x40, 0x40, 0x40, 0x3F},
	'V': {0x1F, 0x20, 0x40, 0x20, 0x1F},
	'W': {0x3F, 0x40, 0x38, 0x40, 0x3F},
	'X': {0x63, 0x14, 0x08, 0x14, 0x63},
	'Y': {0x07, 0x08, 0x70, 0x08, 0x07},
	'Z': {0x61, 0x51, 0x49, 0x45, 0x43},
}

// DrawText renders s in the built-in bitmap font at (x0,y0), one pixel
// per bit, scaled by scale. Unknown glyphs fall back to a blank cell
// so callers never panic on an overlay string they didn't author.
func DrawText(frame *framebuffer.Frame, x0, y0 int, s string, color RGBA, scale int, globals *globalstate.State) {
	if scale < 1 {
		scale = 1
	}
	cursor := x0
	for _, r := range s {
		glyph, ok := font5x7[r]
		if !ok {
			glyph, ok = font5x7[toUpperASCII(r)]
		}
		if ok {
			drawGlyph(frame, cursor, y0, glyph, color, scale, globals)
		}
		cursor += 6 * scale
	}
}

func toUpperASCII(r rune) rune {
	if r >= 'a' && r <= 'z' {
		return r - ('a' - 'A')
	}
	return r
}

func drawGlyph(frame *framebuffer.Frame, x0, y0 int, glyph [5]byte, color RGBA, scale int, globals *globalstate.State) {
	for col := 0; col < 5; col++ {
		bits := glyph[col]
		for row := 0; row < 7; row++ {
			if bits&(1<<uint(row)) == 0 {
				continue
			}
			for sy := 0; sy < scale; sy++ {
				for sx := 0; sx < scale; sx++ {
					x := x0 + col*scale + sx
					y := y0 + row*scale + sy
					if frame.InBounds(x, y) {
						BlendPixel(frame, x, y, color, globals)
					}
				}
			}
		}
	}
}

// TextWidth returns the pixel width DrawText would occupy for s.
func TextWidth(s string, scale int) int {
	if scale < 1 {
		scale = 1
	}
	return len([]rune(s)) * 6 * scale
}
