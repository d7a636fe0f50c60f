package gating

import "testing"

func TestOffToBeatOnPulse(t *testing.T) {
	g := New(Options{EnableOnBeat: true, HoldFrames: 2})
	render := g.Step(true)
	if g.State() != Beat || !render {
		t.Fatalf("Off+pulse: state=%v render=%v, want Beat/true", g.State(), render)
	}
}

func TestOffStaysOffWithoutPulse(t *testing.T) {
	g := New(Options{EnableOnBeat: true})
	render := g.Step(false)
	if g.State() != Off || render {
		t.Fatalf("Off+no pulse: state=%v render=%v, want Off/false", g.State(), render)
	}
}

func TestBeatDropsToHoldThenOff(t *testing.T) {
	g := New(Options{EnableOnBeat: true, HoldFrames: 2})
	g.Step(true) // -> Beat, holdCtr=2
	if g.State() != Beat {
		t.Fatalf("expected Beat, got %v", g.State())
	}
	g.Step(false) // -> Hold (holdCtr=2>0)
	if g.State() != Hold {
		t.Fatalf("expected Hold, got %v", g.State())
	}
	g.Step(false) // holdCtr 2->1
	if g.State() != Hold {
		t.Fatalf("expected still Hold, got %v", g.State())
	}
	g.Step(false) // holdCtr 1->0 -> Off
	if g.State() != Off {
		t.Fatalf("expected Off after hold expires, got %v", g.State())
	}
}

func TestBeatToOffDirectlyWhenNoHold(t *testing.T) {
	g := New(Options{EnableOnBeat: true, HoldFrames: 0})
	g.Step(true) // -> Beat, holdCtr=0
	g.Step(false)
	if g.State() != Off {
		t.Fatalf("expected Off with HoldFrames=0, got %v", g.State())
	}
}

func TestHoldPulseReturnsToBeat(t *testing.T) {
	g := New(Options{EnableOnBeat: true, HoldFrames: 3})
	g.Step(true)  // Beat
	g.Step(false) // Hold
	g.Step(true)  // Hold+pulse -> Beat
	if g.State() != Beat {
		t.Fatalf("expected Beat, got %v", g.State())
	}
}

func TestStickyLatchAndRelease(t *testing.T) {
	g := New(Options{EnableOnBeat: true, StickyToggle: true, HoldFrames: 1})
	g.Step(true) // Off -> Beat, latched=true
	g.Step(true) // Beat+pulse, latched -> Sticky
	if g.State() != Sticky {
		t.Fatalf("expected Sticky, got %v", g.State())
	}
	render := g.Step(false) // Sticky, no pulse -> stays Sticky, render=true
	if g.State() != Sticky || !render {
		t.Fatalf("Sticky should hold with render=true, got state=%v render=%v", g.State(), render)
	}
	render = g.Step(true) // Sticky+pulse -> Off
	if g.State() != Off {
		t.Fatalf("expected Off after sticky release pulse, got %v", g.State())
	}
	_ = render
}

func TestOnlyStickyGatesRenderToStickyState(t *testing.T) {
	g := New(Options{EnableOnBeat: true, StickyToggle: true, OnlySticky: true, HoldFrames: 1})
	if render := g.Step(true); render {
		t.Fatalf("Beat state should not render under OnlySticky")
	}
	if render := g.Step(true); !render {
		t.Fatalf("Sticky state should render under OnlySticky")
	}
}

func TestDisabledGateIgnoresPulses(t *testing.T) {
	g := New(Options{EnableOnBeat: false})
	render := g.Step(true)
	if g.State() != Off || render {
		t.Fatalf("disabled gate should ignore pulses entirely, got state=%v render=%v", g.State(), render)
	}
}
