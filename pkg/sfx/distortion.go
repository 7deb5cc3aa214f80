package sfx

import "math"

// Distort applies waveshaping distortion to a single sample. Drive is a
// pre-gain (input scaled by 1+drive), crunch steepens the tanh clipping
// curve. Both parameters are non-negative; crunch=drive=0 is the
// identity. The result is always in [-1,1] regardless of parameter
// magnitude.
func Distort(x, crunch, drive float64) float64 {
	if crunch <= 0 && drive <= 0 {
		return x
	}

	k := 1.0 + crunch
	y := math.Tanh(k*x*(1.0+drive)) / math.Tanh(k)

	if y > 1.0 {
		return 1.0
	}
	if y < -1.0 {
		return -1.0
	}
	return y
}

// softLimit keeps the mixed sum inside [-1,1] with a tanh knee above
// 0.9, so moderate levels pass through unchanged.
func softLimit(x float64) float64 {
	if x > 0.9 {
		return 0.9 + 0.1*math.Tanh((x-0.9)*10)
	}
	if x < -0.9 {
		return -0.9 + 0.1*math.Tanh((x+0.9)*10)
	}
	return x
}
