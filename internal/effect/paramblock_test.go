package effect

import "testing"

func TestSetGetRoundTrip(t *testing.T) {
	p := NewParamBlock()
	p.SetBool("Enabled", true)
	p.SetInt("Speed", 7)
	p.SetFloat("Alpha", 0.5)
	p.SetString("Mode", "wrap")

	if !p.GetBool("enabled", false) {
		t.Fatalf("GetBool case-insensitive lookup failed")
	}
	if got := p.GetInt("SPEED", 0); got != 7 {
		t.Fatalf("GetInt = %d, want 7", got)
	}
	if got := p.GetFloat("alpha", 0); got != 0.5 {
		t.Fatalf("GetFloat = %v, want 0.5", got)
	}
	if got := p.GetString("mode", ""); got != "wrap" {
		t.Fatalf("GetString = %q, want wrap", got)
	}
}

func TestGetMissingReturnsDefault(t *testing.T) {
	p := NewParamBlock()
	if got := p.GetInt("missing", 42); got != 42 {
		t.Fatalf("GetInt(missing) = %d, want default 42", got)
	}
	if p.Contains("missing") {
		t.Fatalf("Contains(missing) = true")
	}
}

func TestIntFloatWidening(t *testing.T) {
	p := NewParamBlock()
	p.SetInt("n", 3)
	if got := p.GetFloat("n", 0); got != 3 {
		t.Fatalf("GetFloat over int-stored value = %v, want 3", got)
	}
	p2 := NewParamBlock()
	p2.SetFloat("f", 2.0)
	if got := p2.GetInt("f", 0); got != 2 {
		t.Fatalf("GetInt over float-stored value = %d, want 2", got)
	}
}

func TestWrongKindFallsBackToDefault(t *testing.T) {
	p := NewParamBlock()
	p.SetString("s", "text")
	if got := p.GetBool("s", true); got != true {
		t.Fatalf("GetBool over string-stored value should fall back to default")
	}
}
