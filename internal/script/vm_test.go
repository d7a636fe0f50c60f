package script

import "testing"

func mustCompile(t *testing.T, src string) *Program {
	t.Helper()
	p, err := Compile(src)
	if err != nil {
		t.Fatalf("Compile(%q): %v", src, err)
	}
	return p
}

func TestAssignmentAndArithmetic(t *testing.T) {
	p := mustCompile(t, "x = 2 + 3 * 4; y = (2+3)*4;")
	env := NewEnv()
	if err := p.Run(env); err != nil {
		t.Fatalf("Run: %v", err)
	}
	if env.Get("x") != 14 {
		t.Fatalf("x = %v, want 14", env.Get("x"))
	}
	if env.Get("y") != 20 {
		t.Fatalf("y = %v, want 20", env.Get("y"))
	}
}

func TestFunctionsAndUnary(t *testing.T) {
	p := mustCompile(t, "a = abs(-5); b = clamp(10, 0, 5); c = -a + 1;")
	env := NewEnv()
	if err := p.Run(env); err != nil {
		t.Fatalf("Run: %v", err)
	}
	if env.Get("a") != 5 {
		t.Fatalf("a = %v", env.Get("a"))
	}
	if env.Get("b") != 5 {
		t.Fatalf("b = %v", env.Get("b"))
	}
	if env.Get("c") != -4 {
		t.Fatalf("c = %v", env.Get("c"))
	}
}

func TestSuperscopePointScript(t *testing.T) {
	p := mustCompile(t, "d=i+v*0.2; r=t+i*3.14159*4; x=cos(r)*d; y=sin(r)*d;")
	env := NewEnv()
	env.Set("i", 0.5)
	env.Set("v", 0.1)
	env.Set("t", 1.0)
	if err := p.Run(env); err != nil {
		t.Fatalf("Run: %v", err)
	}
	if env.Get("d") <= 0 {
		t.Fatalf("d = %v, want > 0", env.Get("d"))
	}
}

func TestMegabufRoundTrip(t *testing.T) {
	p := mustCompile(t, "megabuf(3) = 42; out = megabuf(3);")
	env := NewEnv()
	if err := p.Run(env); err != nil {
		t.Fatalf("Run: %v", err)
	}
	if env.Get("out") != 42 {
		t.Fatalf("out = %v, want 42", env.Get("out"))
	}
}

func TestGmegabufIsProcessWide(t *testing.T) {
	p1 := mustCompile(t, "gmegabuf(7) = 99;")
	p2 := mustCompile(t, "out = gmegabuf(7);")
	env1, env2 := NewEnv(), NewEnv()
	if err := p1.Run(env1); err != nil {
		t.Fatalf("Run p1: %v", err)
	}
	if err := p2.Run(env2); err != nil {
		t.Fatalf("Run p2: %v", err)
	}
	if env2.Get("out") != 99 {
		t.Fatalf("gmegabuf should be shared across Env instances, got %v", env2.Get("out"))
	}
}

func TestUnknownFunctionErrors(t *testing.T) {
	p := mustCompile(t, "x = bogus(1);")
	env := NewEnv()
	if err := p.Run(env); err == nil {
		t.Fatalf("expected error calling unknown function")
	}
}

func TestEmptyProgramIsNoop(t *testing.T) {
	p := mustCompile(t, "   ")
	env := NewEnv()
	if err := p.Run(env); err != nil {
		t.Fatalf("Run on empty program: %v", err)
	}
}
