package analyzer

import "math"

// realFFTMagnitude computes the magnitude spectrum of a real-valued
// signal of length n (a power of two) and writes n/2+1 non-negative
// magnitudes into out. No third-party FFT library is wired into this
// repo's domain stack (see DESIGN.md), so this is a direct iterative
// radix-2 Cooley-Tukey implementation operating on a complex buffer
// seeded from the real input with a zero imaginary part.
func realFFTMagnitude(in []float64, out []float64) {
	n := len(in)
	re := make([]float64, n)
	im := make([]float64, n)
	copy(re, in)

	fftRadix2(re, im)

	for k := 0; k <= n/2; k++ {
		out[k] = math.Hypot(re[k], im[k])
	}
}

// fftRadix2 performs an in-place iterative Cooley-Tukey FFT over
// re+i*im. len(re) must be a power of two.
func fftRadix2(re, im []float64) {
	n := len(re)
	if n <= 1 {
		return
	}

	// Bit-reversal permutation.
	for i, j := 1, 0; i < n; i++ {
		bit := n >> 1
		for ; j&bit != 0; bit >>= 1 {
			j ^= bit
		}
		j ^= bit
		if i < j {
			re[i], re[j] = re[j], re[i]
			im[i], im[j] = im[j], im[i]
		}
	}

	for size := 2; size <= n; size <<= 1 {
		half := size >> 1
		angleStep := -2 * math.Pi / float64(size)
		for start := 0; start < n; start += size {
			for k := 0; k < half; k++ {
				angle := angleStep * float64(k)
				wr, wi := math.Cos(angle), math.Sin(angle)

				aIdx := start + k
				bIdx := start + k + half

				br := re[bIdx]*wr - im[bIdx]*wi
				bi := re[bIdx]*wi + im[bIdx]*wr

				re[bIdx] = re[aIdx] - br
				im[bIdx] = im[aIdx] - bi
				re[aIdx] = re[aIdx] + br
				im[aIdx] = im[aIdx] + bi
			}
		}
	}
}
