package blend

import "testing"

func TestAdditiveSaturates(t *testing.T) {
	if got := Channel(Additive, 200, 255, Config{}); got != 255 {
		t.Fatalf("Additive(200,255) = %d, want 255", got)
	}
}

func TestAvgIsMean(t *testing.T) {
	if got := Channel(Avg, 10, 20, Config{}); got != 15 {
		t.Fatalf("Avg(10,20) = %d, want 15", got)
	}
}

func TestReplaceIsSrc(t *testing.T) {
	if got := Channel(Replace, 10, 20, Config{}); got != 20 {
		t.Fatalf("Replace(10,20) = %d, want 20", got)
	}
}

func TestAboveBelow(t *testing.T) {
	if got := Channel(Above, 10, 20, Config{}); got != 20 {
		t.Fatalf("Above(10,20) = %d, want 20", got)
	}
	if got := Channel(Below, 10, 20, Config{}); got != 10 {
		t.Fatalf("Below(10,20) = %d, want 10", got)
	}
}

func TestAllOpsDeterministicAndInRange(t *testing.T) {
	ops := []Op{Additive, Alpha, Alpha2, AlphaSlide, Avg, BlendSlide, Replace, DefaultBlend, DefrendBlend, Above, Below}
	cfg := Config{Alpha: 128, Alpha2: 64, Slide: 200}
	for _, op := range ops {
		for dst := 0; dst <= 255; dst += 17 {
			for src := 0; src <= 255; src += 23 {
				a := Channel(op, uint8(dst), uint8(src), cfg)
				b := Channel(op, uint8(dst), uint8(src), cfg)
				if a != b {
					t.Fatalf("op %v not deterministic: %d != %d", op, a, b)
				}
				// range is guaranteed by the uint8 return type itself.
				_ = a
			}
		}
	}
}

func TestLegacyModes(t *testing.T) {
	if got := LegacyChannel(LegacyXOR, 0b1010, 0b0110, 0); got != 0b1100 {
		t.Fatalf("XOR: got %b", got)
	}
	if got := LegacyChannel(LegacyMultiply, 255, 128, 0); got != 128 {
		t.Fatalf("Multiply(255,128) = %d, want 128", got)
	}
	if got := LegacyChannel(LegacyAdjustable, 0, 255, 128); got == 0 || got == 255 {
		t.Fatalf("Adjustable should interpolate, got %d", got)
	}
}

func TestLegacyPixelSelectsByLowByte(t *testing.T) {
	mode := uint32(LegacyReplace) | (uint32(42) << 8)
	out := LegacyPixel(mode, [4]uint8{1, 2, 3, 4}, [4]uint8{5, 6, 7, 8})
	if out != [4]uint8{5, 6, 7, 4} {
		t.Fatalf("LegacyPixel(Replace) = %v", out)
	}
}
