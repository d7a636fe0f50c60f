// Package analyzer implements the audio front-end of the rendering
// pipeline: it turns a fixed-size block of interleaved PCM into a
// magnitude spectrum, a decimated waveform, three band scalars, and a
// beat/BPM/confidence triple.
package analyzer

import (
	"math"

	"github.com/pfahlr/vis-avs-sub001/internal/avserr"
	"github.com/pfahlr/vis-avs-sub001/internal/debug"
)

const (
	// NFFT is the fixed analysis window size.
	NFFT = 1024
	// SpectrumSize is NFFT/2+1, the number of non-negative-frequency bins.
	SpectrumSize = NFFT/2 + 1
	// WaveformSize is the number of decimated waveform samples exposed
	// per analysis block.
	WaveformSize = 576

	beatEnergyWindow  = 43
	beatThreshold     = 1.35
	dampingCoeff      = 0.6
	minEnergyEpsilon  = 1e-9
	bandSmoothFactor  = 0.5
	bpmSmoothFactor   = 0.35
	confSmoothFactor  = 0.25
	bassCutoffHz      = 250.0
	midCutoffHz       = 4000.0
)

// Analyzer holds the persistent state of one audio front-end instance.
// State is thread-local to whichever driver owns it and is reset on
// resize or preset reload.
type Analyzer struct {
	DampingEnabled bool

	hann     [NFFT]float64
	monoBuf  [NFFT]float64
	prevMono [NFFT]float64

	Spectrum [SpectrumSize]float64
	Waveform [WaveformSize]float64

	Bass, Mid, Treb float64

	Beat       bool
	BPM        float64
	Confidence float64

	energyHistory    [beatEnergyWindow]float64
	energyHistoryLen int
	energyHistoryPos int
	secondsSincePrev float64
	haveLastBeat     bool

	logger *debug.Logger
}

// New builds an Analyzer with a Hann window table precomputed for
// NFFT. Damping is enabled by default, matching a typical preset
// author's expectation that the analyzer exposes smoothed data.
func New(logger *debug.Logger) *Analyzer {
	a := &Analyzer{DampingEnabled: true, logger: logger}
	for i := 0; i < NFFT; i++ {
		a.hann[i] = 0.5 * (1 - math.Cos(2*math.Pi*float64(i)/float64(NFFT)))
	}
	return a
}

// Reset restores all persistent state to zero.
func (a *Analyzer) Reset() {
	a.monoBuf = [NFFT]float64{}
	a.prevMono = [NFFT]float64{}
	a.Spectrum = [SpectrumSize]float64{}
	a.Waveform = [WaveformSize]float64{}
	a.Bass, a.Mid, a.Treb = 0, 0, 0
	a.Beat, a.BPM, a.Confidence = false, 0, 0
	a.energyHistory = [beatEnergyWindow]float64{}
	a.energyHistoryLen = 0
	a.energyHistoryPos = 0
	a.secondsSincePrev = 0
	a.haveLastBeat = false
}

// Process analyzes exactly NFFT frames of interleaved float PCM.
// samples must have length NFFT*channels. sampleRate must be > 0 and
// channels must be >= 1, otherwise InvalidArgument is returned.
func (a *Analyzer) Process(samples []float32, channels int, sampleRate int) error {
	if samples == nil {
		return avserr.New(avserr.InvalidArgument, "nil sample buffer")
	}
	if channels < 1 {
		return avserr.New(avserr.InvalidArgument, "channels must be >= 1")
	}
	if sampleRate <= 0 {
		return avserr.New(avserr.InvalidArgument, "sampleRate must be > 0")
	}
	if len(samples) != NFFT*channels {
		return avserr.New(avserr.InvalidArgument, "expected exactly NFFT frames of PCM")
	}

	a.downmixAndWindow(samples, channels)
	a.smoothMono()

	realFFTMagnitude(a.monoBuf[:], a.Spectrum[:])
	a.computeWaveform()
	a.computeBands(sampleRate)
	a.detectBeat(sampleRate)

	return nil
}

func (a *Analyzer) downmixAndWindow(samples []float32, channels int) {
	for i := 0; i < NFFT; i++ {
		var sum float64
		base := i * channels
		for c := 0; c < channels; c++ {
			sum += float64(samples[base+c])
		}
		mono := sum / float64(channels)
		a.monoBuf[i] = mono * a.hann[i]
	}
}

// smoothMono applies the exponential smoother in-place: mono[i] <-
// d*monoPrev[i] + (1-d)*windowed[i]. Because the buffer already holds
// the freshly-windowed value, we need the previous call's smoothed
// value; prevMono holds it and is set from the result after each call.
func (a *Analyzer) smoothMono() {
	d := 0.0
	if a.DampingEnabled {
		d = dampingCoeff
	}
	if d != 0 {
		for i := 0; i < NFFT; i++ {
			a.monoBuf[i] = d*a.prevMono[i] + (1-d)*a.monoBuf[i]
		}
	}
	a.prevMono = a.monoBuf
}

func (a *Analyzer) computeWaveform() {
	hop := float64(NFFT) / float64(WaveformSize)
	for i := 0; i < WaveformSize; i++ {
		start := int(float64(i) * hop)
		end := int(float64(i+1) * hop)
		if end <= start {
			end = start + 1
		}
		if end > NFFT {
			end = NFFT
		}
		if start >= NFFT {
			start = NFFT - 1
		}
		var sum float64
		n := 0
		for s := start; s < end; s++ {
			sum += a.monoBuf[s]
			n++
		}
		v := 0.0
		if n > 0 {
			v = sum / float64(n)
		}
		if v > 1 {
			v = 1
		} else if v < -1 {
			v = -1
		}
		a.Waveform[i] = v
	}
}

func (a *Analyzer) computeBands(sampleRate int) {
	var bassSum, midSum, trebSum float64
	var bassN, midN, trebN int

	for bin := 0; bin < SpectrumSize; bin++ {
		hz := float64(bin) * float64(sampleRate) / float64(NFFT)
		mag := a.Spectrum[bin]
		switch {
		case hz < bassCutoffHz:
			bassSum += mag
			bassN++
		case hz < midCutoffHz:
			midSum += mag
			midN++
		default:
			trebSum += mag
			trebN++
		}
	}

	bass := meanOrZero(bassSum, bassN)
	mid := meanOrZero(midSum, midN)
	treb := meanOrZero(trebSum, trebN)

	if a.DampingEnabled {
		a.Bass = lerp(a.Bass, bass, bandSmoothFactor)
		a.Mid = lerp(a.Mid, mid, bandSmoothFactor)
		a.Treb = lerp(a.Treb, treb, bandSmoothFactor)
	} else {
		a.Bass, a.Mid, a.Treb = bass, mid, treb
	}
}

func meanOrZero(sum float64, n int) float64 {
	if n == 0 {
		return 0
	}
	return sum / float64(n)
}

func lerp(prev, next, t float64) float64 {
	return prev + (next-prev)*t
}

func (a *Analyzer) detectBeat(sampleRate int) {
	var energy float64
	for i := 0; i < NFFT; i++ {
		energy += a.monoBuf[i] * a.monoBuf[i]
	}
	if energy < minEnergyEpsilon {
		energy = minEnergyEpsilon
	}

	if a.energyHistoryLen < beatEnergyWindow {
		a.energyHistory[a.energyHistoryLen] = energy
		a.energyHistoryLen++
	} else {
		a.energyHistory[a.energyHistoryPos] = energy
		a.energyHistoryPos = (a.energyHistoryPos + 1) % beatEnergyWindow
	}

	var avg float64
	for i := 0; i < a.energyHistoryLen; i++ {
		avg += a.energyHistory[i]
	}
	avg /= float64(a.energyHistoryLen)
	if avg <= 0 {
		avg = minEnergyEpsilon
	}

	blockSeconds := float64(NFFT) / float64(sampleRate)
	a.secondsSincePrev += blockSeconds

	b := energy / avg
	a.Beat = b > beatThreshold

	if a.Beat {
		if a.haveLastBeat && a.secondsSincePrev > 0 {
			instantBPM := 60.0 / a.secondsSincePrev
			a.BPM = lerp(a.BPM, instantBPM, bpmSmoothFactor)
		}
		a.haveLastBeat = true
		a.secondsSincePrev = 0
	}

	conf := b
	if conf > 4 {
		conf = 4
	}
	if conf < 0 {
		conf = 0
	}
	conf /= 4
	a.Confidence = lerp(a.Confidence, conf, confSmoothFactor)
	if a.Confidence < 0 {
		a.Confidence = 0
	}
	if a.Confidence > 1 {
		a.Confidence = 1
	}
}
