// Command avs-play is the reference player: it loads a preset, feeds it
// either a WAV file's samples or a synthetic test tone, and presents
// the rendered frames through either an SDL2 window or a PNG sequence,
// all from a single run loop.
package main

import (
	"flag"
	"fmt"
	"math"
	"os"
	"time"

	"github.com/go-audio/wav"

	"github.com/pfahlr/vis-avs-sub001/internal/analyzer"
	"github.com/pfahlr/vis-avs-sub001/internal/backend"
	"github.com/pfahlr/vis-avs-sub001/internal/backend/cpubackend"
	"github.com/pfahlr/vis-avs-sub001/internal/backend/pngbackend"
	"github.com/pfahlr/vis-avs-sub001/internal/backend/sdlbackend"
	"github.com/pfahlr/vis-avs-sub001/internal/debug"
	"github.com/pfahlr/vis-avs-sub001/internal/driver"
	"github.com/pfahlr/vis-avs-sub001/internal/registry"
)

func main() {
	presetPath := flag.String("preset", "", "Path to a preset file (binary or micro-preset text)")
	wavPath := flag.String("wav", "", "Path to a WAV file to drive the analyzer (default: a synthetic tone)")
	backendName := flag.String("backend", "sdl", "Presentation backend: sdl, png, or none")
	outDir := flag.String("out", "avs-play-frames", "Output directory for the png backend")
	width := flag.Int("width", 512, "Frame width")
	height := flag.Int("height", 384, "Frame height")
	scale := flag.Int("scale", 2, "Window scale for the sdl backend")
	fps := flag.Float64("fps", 30, "Target frames per second")
	duration := flag.Float64("duration", 0, "Stop after this many seconds (0 = run until the window closes or the WAV ends)")
	logLevel := flag.Bool("log", false, "Enable verbose logging to stderr")
	flag.Parse()

	if *presetPath == "" {
		fmt.Fprintln(os.Stderr, "Usage: avs-play -preset <preset-file> [-wav <file.wav>] [-backend sdl|png|none]")
		os.Exit(1)
	}

	data, err := os.ReadFile(*presetPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error reading preset: %v\n", err)
		os.Exit(1)
	}

	var logger *debug.Logger
	if *logLevel {
		logger = debug.NewLogger(2000)
		logger.SetComponentEnabled(debug.ComponentDriver, true)
		logger.SetComponentEnabled(debug.ComponentPreset, true)
	}

	source, sampleRate, err := openAudioSource(*wavPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening audio source: %v\n", err)
		os.Exit(1)
	}

	drv := driver.New(registry.New(), logger, *width, *height, sampleRate)
	p := drv.LoadPreset(data)
	for _, w := range p.Warnings {
		fmt.Fprintf(os.Stderr, "warning: %s\n", w)
	}
	for _, u := range p.Unknown {
		fmt.Fprintf(os.Stderr, "unknown effect: %s\n", u)
	}

	var back backend.Backend
	switch *backendName {
	case "sdl":
		back, err = sdlbackend.New("avs-play", *width, *height, *scale)
	case "png":
		back, err = pngbackend.New(*outDir, "frame_")
	case "none":
		back = cpubackend.New()
	default:
		err = fmt.Errorf("unknown backend %q", *backendName)
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating backend: %v\n", err)
		os.Exit(1)
	}
	defer back.Close()

	frameInterval := time.Second / time.Duration(*fps)
	var maxFrames uint64
	if *duration > 0 {
		maxFrames = uint64(*duration * *fps)
	}

	sdlBack, isSDL := back.(*sdlbackend.Backend)
	deltaSeconds := 1.0 / *fps

	for {
		if maxFrames > 0 && drv.FrameIndex() >= maxFrames {
			return
		}
		if isSDL && sdlBack.PollQuit() {
			return
		}

		block, ok := source.next()
		if !ok {
			if maxFrames == 0 {
				return
			}
			block = source.silence()
		}
		if err := drv.SetAudioBuffer(block, source.channels); err != nil {
			fmt.Fprintf(os.Stderr, "Error processing audio: %v\n", err)
			os.Exit(1)
		}

		frame := drv.Render(deltaSeconds)
		if err := back.Present(frame); err != nil {
			fmt.Fprintf(os.Stderr, "Error presenting frame: %v\n", err)
			os.Exit(1)
		}

		time.Sleep(frameInterval)
	}
}

// audioSource yields successive analyzer.NFFT-sample blocks of
// interleaved PCM, either read from a decoded WAV file or synthesized
// as a sweeping test tone with a slow amplitude pulse standing in for
// a beat.
type audioSource struct {
	channels int
	samples  []float32 // interleaved, empty for the synthetic generator
	cursor   int

	synthetic bool
	phase     float64
	blockIdx  uint64
}

func (s *audioSource) next() ([]float32, bool) {
	if s.synthetic {
		return s.synthesize(), true
	}
	need := analyzer.NFFT * s.channels
	if s.cursor+need > len(s.samples) {
		return nil, false
	}
	block := s.samples[s.cursor : s.cursor+need]
	s.cursor += need
	return block, true
}

func (s *audioSource) silence() []float32 {
	return make([]float32, analyzer.NFFT*s.channels)
}

func (s *audioSource) synthesize() []float32 {
	const baseHz = 220.0
	sweepHz := baseHz + 80*math.Sin(float64(s.blockIdx)*0.02)
	pulse := 0.6 + 0.4*math.Sin(float64(s.blockIdx)*0.07)
	block := make([]float32, analyzer.NFFT*s.channels)
	step := 2 * math.Pi * sweepHz / 44100
	for i := 0; i < analyzer.NFFT; i++ {
		v := float32(pulse * math.Sin(s.phase))
		for c := 0; c < s.channels; c++ {
			block[i*s.channels+c] = v
		}
		s.phase += step
	}
	s.blockIdx++
	return block
}

// openAudioSource decodes path with github.com/go-audio/wav when given,
// otherwise returns a synthetic generator at 44100 Hz stereo.
func openAudioSource(path string) (*audioSource, int, error) {
	if path == "" {
		return &audioSource{channels: 2, synthetic: true}, 44100, nil
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, 0, err
	}
	defer f.Close()

	decoder := wav.NewDecoder(f)
	if !decoder.IsValidFile() {
		return nil, 0, fmt.Errorf("invalid wav file: %s", path)
	}
	buf, err := decoder.FullPCMBuffer()
	if err != nil {
		return nil, 0, fmt.Errorf("decode wav: %w", err)
	}
	channels := int(decoder.NumChans)
	if channels <= 0 {
		channels = 1
	}
	intData := buf.AsIntBuffer().Data
	var peak float32
	switch decoder.BitDepth {
	case 8:
		peak = 128
	case 24:
		peak = 8388608
	case 32:
		peak = 2147483648
	default:
		peak = 32768
	}
	samples := make([]float32, len(intData))
	for i, v := range intData {
		samples[i] = float32(v) / peak
	}
	return &audioSource{channels: channels, samples: samples}, int(decoder.SampleRate), nil
}
