package noise

import (
	"math"

	"github.com/aquilax/go-perlin"
)

// Perlin parameters shared by both fractal generators. Alpha is the octave
// weight falloff, beta the harmonic scaling between octaves.
const (
	basisAlpha = 2.0
	basisBeta  = 2.0
)

// FBM builds a fractal-Brownian-motion field from Perlin basis noise.
// The output is roughly in [-1, 1]. Octaves and frequency behave like the
// usual fBm knobs: more octaves add finer detail, higher frequency shrinks
// features.
func FBM(seed int64, octaves int, frequency float64) Field {
	p := perlin.NewPerlin(basisAlpha, basisBeta, int32(octaves), seed)
	return func(x, y, z float64) float64 {
		return p.Noise3D(x*frequency, y*frequency, z*frequency)
	}
}

// RidgedMultifractal builds a ridged multifractal field: Perlin octaves
// folded so that valleys become sharp ridges, then squared to steepen them.
// Octave amplitudes are not attenuated, so the output spans [0, octaves];
// values near the top of that range mark the rare ridge crossings.
func RidgedMultifractal(seed int64, octaves int, frequency float64) Field {
	p := perlin.NewPerlin(basisAlpha, basisBeta, 1, seed)
	return func(x, y, z float64) float64 {
		sum := 0.0
		freq := frequency
		for i := 0; i < octaves; i++ {
			n := p.Noise3D(x*freq, y*freq, z*freq)
			n = math.Abs(n)
			n = 1.0 - n
			sum += n * n
			freq *= 2.0
		}
		return sum
	}
}
