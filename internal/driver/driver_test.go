package driver

import (
	"testing"

	"github.com/pfahlr/vis-avs-sub001/internal/analyzer"
	"github.com/pfahlr/vis-avs-sub001/internal/registry"
)

func TestNewDriverHasEmptyPipeline(t *testing.T) {
	d := New(registry.New(), nil, 64, 48, 44100)
	if d.Pipeline().Len() != 0 {
		t.Fatalf("expected an empty pipeline before LoadPreset")
	}
}

func TestLoadPresetReplacesPipeline(t *testing.T) {
	d := New(registry.New(), nil, 64, 48, 44100)
	p := d.LoadPreset([]byte("ring\n"))
	if len(p.Warnings) != 0 {
		t.Fatalf("unexpected warnings: %v", p.Warnings)
	}
	if d.Pipeline().Len() != 1 {
		t.Fatalf("expected pipeline to carry the loaded preset's single entry")
	}
}

func TestRenderAdvancesFrameIndex(t *testing.T) {
	d := New(registry.New(), nil, 32, 32, 44100)
	d.LoadPreset([]byte("ring\n"))

	block := make([]float32, analyzer.NFFT*2)
	if err := d.SetAudioBuffer(block, 2); err != nil {
		t.Fatalf("SetAudioBuffer: %v", err)
	}

	if d.FrameIndex() != 0 {
		t.Fatalf("expected frame index 0 before any Render call")
	}
	frame := d.Render(1.0 / 30)
	if frame == nil {
		t.Fatalf("Render returned nil frame")
	}
	if frame.Width != 32 || frame.Height != 32 {
		t.Fatalf("frame size = %dx%d, want 32x32", frame.Width, frame.Height)
	}
	if d.FrameIndex() != 1 {
		t.Fatalf("FrameIndex() = %d, want 1", d.FrameIndex())
	}

	d.Render(1.0 / 30)
	if d.FrameIndex() != 2 {
		t.Fatalf("FrameIndex() = %d, want 2", d.FrameIndex())
	}
}

func TestSetAudioBufferWrongSampleRateFails(t *testing.T) {
	d := New(registry.New(), nil, 32, 32, 0)
	block := make([]float32, analyzer.NFFT)
	if err := d.SetAudioBuffer(block, 1); err == nil {
		t.Fatalf("expected an error with no sample rate configured")
	}
}

func TestResizeChangesFrameDimensions(t *testing.T) {
	d := New(registry.New(), nil, 32, 32, 44100)
	d.LoadPreset([]byte("ring\n"))
	d.Resize(16, 16)

	block := make([]float32, analyzer.NFFT*2)
	d.SetAudioBuffer(block, 2)
	frame := d.Render(1.0 / 30)
	if frame.Width != 16 || frame.Height != 16 {
		t.Fatalf("frame size after Resize = %dx%d, want 16x16", frame.Width, frame.Height)
	}
}
