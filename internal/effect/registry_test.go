package effect

import (
	"testing"

	"github.com/pfahlr/vis-avs-sub001/internal/rendercontext"
)

type stubEffect struct{ renders int }

func (s *stubEffect) SetParams(*ParamBlock) error           { return nil }
func (s *stubEffect) Render(*rendercontext.Context) bool    { s.renders++; return true }

func TestRegisterAndFindByCanonicalName(t *testing.T) {
	r := NewRegistry()
	r.Register("Render / Ring", func() Effect { return &stubEffect{} }, 5)

	if _, ok := r.Find("Render / Ring"); !ok {
		t.Fatalf("expected to find canonical name")
	}
}

func TestFindResolvesLegacySpellings(t *testing.T) {
	r := NewRegistry()
	r.Register("Render / Ring", func() Effect { return &stubEffect{} }, 5)
	r.Alias("render_ring", "Render / Ring")
	r.Alias("ring", "Render / Ring")

	for _, spelling := range []string{"Render / Ring", "render_ring", "ring", "RING", "Render/Ring"} {
		if canonical, ok := r.Canonical(spelling); !ok || canonical != "Render / Ring" {
			t.Fatalf("spelling %q did not resolve to canonical, got %q ok=%v", spelling, canonical, ok)
		}
	}
}

func TestLegacyTokenForResolvesBinaryID(t *testing.T) {
	r := NewRegistry()
	r.Register("Render / Oscilloscope Star", func() Effect { return &stubEffect{} }, 21)
	r.Alias("Render / Oscilliscope Star", "Render / Oscilloscope Star")

	name, ok := r.LegacyTokenFor(21)
	if !ok || name != "Render / Oscilloscope Star" {
		t.Fatalf("LegacyTokenFor(21) = %q, %v", name, ok)
	}

	if canonical, ok := r.Canonical("Render / Oscilliscope Star"); !ok || canonical != "Render / Oscilloscope Star" {
		t.Fatalf("misspelled legacy alias did not resolve, got %q ok=%v", canonical, ok)
	}
}

func TestNewConstructsFreshInstance(t *testing.T) {
	r := NewRegistry()
	r.Register("ring", func() Effect { return &stubEffect{} }, 0)

	e1, canonical, err := r.New("ring")
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	if canonical != "ring" {
		t.Fatalf("canonical = %q", canonical)
	}
	e2, _, _ := r.New("ring")
	if e1.(*stubEffect) == e2.(*stubEffect) {
		t.Fatalf("New should return distinct instances")
	}
}

func TestFindUnknownFails(t *testing.T) {
	r := NewRegistry()
	if _, ok := r.Find("nonexistent"); ok {
		t.Fatalf("expected not found")
	}
	if _, _, err := r.New("nonexistent"); err == nil {
		t.Fatalf("expected error constructing unknown effect")
	}
}
