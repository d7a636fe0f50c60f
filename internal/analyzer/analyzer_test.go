package analyzer

import (
	"math"
	"testing"
)

func toneSamples(freqHz float64, sampleRate int, amplitude float64) []float32 {
	out := make([]float32, NFFT)
	for i := range out {
		out[i] = float32(amplitude * math.Sin(2*math.Pi*freqHz*float64(i)/float64(sampleRate)))
	}
	return out
}

func TestProcessRejectsWrongFrameCount(t *testing.T) {
	a := New(nil)
	err := a.Process(make([]float32, NFFT-1), 1, 44100)
	if err == nil {
		t.Fatal("expected error for short buffer")
	}
}

func TestProcessRejectsBadSampleRate(t *testing.T) {
	a := New(nil)
	err := a.Process(make([]float32, NFFT), 1, 0)
	if err == nil {
		t.Fatal("expected error for zero sample rate")
	}
}

func TestInvariantsHold(t *testing.T) {
	a := New(nil)
	a.DampingEnabled = false
	samples := toneSamples(440, 44100, 0.8)
	if err := a.Process(samples, 1, 44100); err != nil {
		t.Fatalf("Process: %v", err)
	}
	for i, m := range a.Spectrum {
		if m < 0 {
			t.Fatalf("spectrum[%d] = %f, want >= 0", i, m)
		}
	}
	for i, w := range a.Waveform {
		if w < -1 || w > 1 {
			t.Fatalf("waveform[%d] = %f, out of [-1,1]", i, w)
		}
	}
	if a.Confidence < 0 || a.Confidence > 1 {
		t.Fatalf("confidence = %f, out of [0,1]", a.Confidence)
	}
}

func TestSilenceNeverBeats(t *testing.T) {
	a := New(nil)
	silence := make([]float32, NFFT)
	for i := 0; i < 50; i++ {
		if err := a.Process(silence, 1, 44100); err != nil {
			t.Fatalf("Process: %v", err)
		}
		if a.Beat {
			t.Fatalf("silence produced a beat on iteration %d", i)
		}
	}
}

func TestLinearityWithoutDamping(t *testing.T) {
	a1 := New(nil)
	a1.DampingEnabled = false
	a2 := New(nil)
	a2.DampingEnabled = false

	base := toneSamples(300, 44100, 0.3)
	scaled := make([]float32, len(base))
	const alpha = 2.0
	for i, v := range base {
		scaled[i] = float32(alpha) * v
	}

	if err := a1.Process(base, 1, 44100); err != nil {
		t.Fatal(err)
	}
	if err := a2.Process(scaled, 1, 44100); err != nil {
		t.Fatal(err)
	}

	for i := range a1.Spectrum {
		want := a1.Spectrum[i] * alpha
		got := a2.Spectrum[i]
		if math.Abs(got-want) > 1e-6*(1+math.Abs(want)) {
			t.Fatalf("spectrum[%d]: got %f, want ~%f", i, got, want)
		}
	}
}

func TestResetZeroesState(t *testing.T) {
	a := New(nil)
	samples := toneSamples(1000, 44100, 0.5)
	if err := a.Process(samples, 1, 44100); err != nil {
		t.Fatal(err)
	}
	a.Reset()
	if a.Bass != 0 || a.Mid != 0 || a.Treb != 0 || a.Beat || a.BPM != 0 || a.Confidence != 0 {
		t.Fatalf("Reset left nonzero state: %+v", a)
	}
	for _, v := range a.Spectrum {
		if v != 0 {
			t.Fatal("spectrum not cleared by Reset")
		}
	}
}

func TestBeatDeclaredWhenEnergyExceedsThreshold(t *testing.T) {
	a := New(nil)
	quiet := toneSamples(200, 44100, 0.01)
	for i := 0; i < beatEnergyWindow; i++ {
		if err := a.Process(quiet, 1, 44100); err != nil {
			t.Fatal(err)
		}
	}
	loud := toneSamples(200, 44100, 1.0)
	if err := a.Process(loud, 1, 44100); err != nil {
		t.Fatal(err)
	}
	if !a.Beat {
		t.Fatal("expected a beat after a sudden energy spike")
	}
}
