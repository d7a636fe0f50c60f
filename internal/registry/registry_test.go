package registry

import "testing"

func TestNewRegistersAllBinaryEffectIDs(t *testing.T) {
	r := New()
	for id := int32(0); id <= 45; id++ {
		if _, ok := r.LegacyTokenFor(id); !ok {
			t.Errorf("binary effectId %d has no registered canonical name", id)
		}
	}
}

func TestNewConstructsEveryRegisteredName(t *testing.T) {
	r := New()
	for _, name := range r.Names() {
		e, canonical, err := r.New(name)
		if err != nil {
			t.Fatalf("New(%q): %v", name, err)
		}
		if canonical != name {
			t.Fatalf("New(%q) canonical = %q", name, canonical)
		}
		if e == nil {
			t.Fatalf("New(%q) returned nil effect", name)
		}
	}
}

func TestHistoricalAliasesResolve(t *testing.T) {
	r := New()
	cases := map[string]string{
		"ring":              "Render / Ring",
		"bass spin":         "Render / Bass Spin",
		"superscope":        "Render / SuperScope",
		"dynamicmovement":   "Trans / Dynamic Movement",
		"colormodifier":     "Trans / Color Modifier",
		"onetone":           "Trans / Unique tone",
		"bpm":               "Misc / Custom BPM",
		"water bump":        "Trans / Water Bump",
		"blur":              "Trans / Blur",
	}
	for alias, want := range cases {
		got, ok := r.Canonical(alias)
		if !ok || got != want {
			t.Errorf("Canonical(%q) = %q, %v; want %q", alias, got, ok, want)
		}
	}
}

func TestDualBinaryIDsShareDynamicMovement(t *testing.T) {
	r := New()
	nameForMovement, ok := r.LegacyTokenFor(15)
	if !ok {
		t.Fatalf("expected binary id 15 to resolve")
	}
	nameForDynamic, ok := r.LegacyTokenFor(43)
	if !ok {
		t.Fatalf("expected binary id 43 to resolve")
	}
	if nameForMovement == nameForDynamic {
		t.Fatalf("expected distinct canonical names, both resolved to %q", nameForMovement)
	}
	eMovement, _, err := r.New(nameForMovement)
	if err != nil {
		t.Fatalf("New(%q): %v", nameForMovement, err)
	}
	eDynamic, _, err := r.New(nameForDynamic)
	if err != nil {
		t.Fatalf("New(%q): %v", nameForDynamic, err)
	}
	if eMovement == nil || eDynamic == nil {
		t.Fatalf("expected both kernels to construct")
	}
}

func TestUnknownNameFails(t *testing.T) {
	r := New()
	if _, _, err := r.New("Render / Nonexistent Thing"); err == nil {
		t.Fatalf("expected error constructing unregistered name")
	}
}
