package framebuffer

import "testing"

func TestBeginFinishRoundTrip(t *testing.T) {
	fb := New(4, 4)
	fb.Current.Set(0, 0, 10, 20, 30, 255)

	fb.BeginFrame()
	fb.FinishFrame()

	fb.BeginFrame()
	r, g, b, a := fb.Previous.At(0, 0)
	if r != 10 || g != 20 || b != 30 || a != 255 {
		t.Fatalf("round trip lost pixel: got (%d,%d,%d,%d)", r, g, b, a)
	}
}

func TestSaveRestoreIdentity(t *testing.T) {
	fb := New(3, 3)
	fb.Current.Set(1, 1, 5, 6, 7, 8)
	if err := fb.Save(2); err != nil {
		t.Fatal(err)
	}
	fb.Current.Set(1, 1, 0, 0, 0, 0)
	if err := fb.Restore(2); err != nil {
		t.Fatal(err)
	}
	r, g, b, a := fb.Current.At(1, 1)
	if r != 5 || g != 6 || b != 7 || a != 8 {
		t.Fatalf("restore did not reproduce saved pixel: (%d,%d,%d,%d)", r, g, b, a)
	}
}

func TestRestoreEmptySlotIsNoop(t *testing.T) {
	fb := New(2, 2)
	fb.Current.Set(0, 0, 9, 9, 9, 9)
	if err := fb.Restore(0); err != nil {
		t.Fatal(err)
	}
	r, _, _, _ := fb.Current.At(0, 0)
	if r != 9 {
		t.Fatalf("restoring empty slot mutated current")
	}
}

func TestOverlayLifecycle(t *testing.T) {
	fb := New(4, 4)
	fb.ActivateOverlay(Title, 3, [4]uint8{255, 0, 0, 255})

	active, remaining, duration := fb.OverlayActive(Title)
	if !active || remaining != 3 || duration != 3 {
		t.Fatalf("unexpected initial state: active=%v remaining=%d duration=%d", active, remaining, duration)
	}

	for i := 0; i < 3; i++ {
		fb.BeginFrame()
		fb.FinishFrame()
	}

	active, remaining, _ = fb.OverlayActive(Title)
	if active || remaining != 0 {
		t.Fatalf("overlay should deactivate after duration frames, got active=%v remaining=%d", active, remaining)
	}
}

func TestClearBlendModes(t *testing.T) {
	fb := New(1, 1)
	fb.Current.Set(0, 0, 200, 200, 200, 200)

	fb.Clear(ClearSettings{R: 100, G: 100, B: 100, A: 100, Blend: Additive})
	r, _, _, _ := fb.Current.At(0, 0)
	if r != 255 {
		t.Fatalf("additive clear: got %d, want 255 (saturated)", r)
	}

	fb.Current.Set(0, 0, 200, 200, 200, 200)
	fb.Clear(ClearSettings{R: 100, Blend: Average})
	r, _, _, _ = fb.Current.At(0, 0)
	if r != 150 {
		t.Fatalf("average clear: got %d, want 150", r)
	}

	fb.Current.Set(0, 0, 0, 0, 0, 0)
	fb.Clear(ClearSettings{R: 77, Blend: Replace})
	r, _, _, _ = fb.Current.At(0, 0)
	if r != 77 {
		t.Fatalf("replace clear: got %d, want 77", r)
	}
}

func TestClearFirstFrameOnly(t *testing.T) {
	fb := New(1, 1)
	fb.Clear(ClearSettings{R: 5, FirstFrameOnly: true, Blend: Replace})
	r, _, _, _ := fb.Current.At(0, 0)
	if r != 5 {
		t.Fatalf("first clear should apply, got %d", r)
	}

	fb.BeginFrame()
	fb.FinishFrame()
	fb.BeginFrame()

	fb.Current.Set(0, 0, 9, 9, 9, 9)
	fb.Clear(ClearSettings{R: 200, FirstFrameOnly: true, Blend: Replace})
	r, _, _, _ = fb.Current.At(0, 0)
	if r != 9 {
		t.Fatalf("FirstFrameOnly clear applied after frame 0, got %d", r)
	}
}

func TestWrap(t *testing.T) {
	fb := New(2, 2)
	fb.Previous.Set(0, 0, 1, 0, 0, 0)
	fb.Previous.Set(1, 0, 2, 0, 0, 0)
	fb.Previous.Set(0, 1, 3, 0, 0, 0)
	fb.Previous.Set(1, 1, 4, 0, 0, 0)

	fb.Wrap(1, 0)
	r, _, _, _ := fb.Current.At(0, 0)
	if r != 2 {
		t.Fatalf("wrap(1,0) at (0,0): got %d, want 2", r)
	}
}

func TestSlideInOutOfBoundsIsBlack(t *testing.T) {
	fb := New(3, 1)
	fb.Previous.Set(0, 0, 9, 9, 9, 9)
	fb.Previous.Set(1, 0, 9, 9, 9, 9)
	fb.Previous.Set(2, 0, 9, 9, 9, 9)

	fb.SlideIn(Right, 1)
	r, g, b, a := fb.Current.At(0, 0)
	if r != 0 || g != 0 || b != 0 || a != 0 {
		t.Fatalf("slide-in vacated pixel should be black, got (%d,%d,%d,%d)", r, g, b, a)
	}
	r, _, _, _ = fb.Current.At(1, 0)
	if r != 9 {
		t.Fatalf("slide-in did not shift content, got %d", r)
	}
}

func TestTransitionBounds(t *testing.T) {
	fb := New(1, 1)
	fb.Previous.Set(0, 0, 0, 0, 0, 0)
	fb.Current.Set(0, 0, 255, 255, 255, 255)
	fb.Transition(0.5)
	r, _, _, _ := fb.Current.At(0, 0)
	if r < 120 || r > 135 {
		t.Fatalf("transition(0.5) midpoint: got %d", r)
	}
}
