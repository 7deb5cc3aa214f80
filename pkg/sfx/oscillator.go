// Package sfx implements the sound effect synthesis core: oscillators,
// ADSR envelopes, waveshaping distortion and the voice mixer.
package sfx

import "math"

// Waveform selects the oscillator shape for a sample blueprint.
type Waveform int

const (
	// Sine is a pure continuous tone.
	Sine Waveform = iota
	// Square is a pulse wave; its duty cycle comes from the blueprint.
	Square
	// Saw is a linear ramp from -1 to 1 per period.
	Saw
	// Triangle rises then falls, symmetric about the half period.
	Triangle
	// Noise is uniform white noise seeded from the blueprint frequency.
	Noise
)

// String returns the waveform name as used in preset files.
func (w Waveform) String() string {
	switch w {
	case Sine:
		return "sine"
	case Square:
		return "square"
	case Saw:
		return "saw"
	case Triangle:
		return "triangle"
	case Noise:
		return "noise"
	default:
		return "unknown"
	}
}

// Oscillate returns the waveform value at phase in [0,1), in [-1,1].
// Duty is the pulse width for Square and is ignored by the other shapes.
// Noise is not a function of phase and always returns 0 here; the voice
// draws noise from its own generator instead.
func Oscillate(w Waveform, phase, duty float64) float64 {
	switch w {
	case Sine:
		return math.Sin(2 * math.Pi * phase)
	case Square:
		if phase < duty {
			return 1.0
		}
		return -1.0
	case Saw:
		return 2.0*phase - 1.0
	case Triangle:
		if phase < 0.5 {
			return 4.0*phase - 1.0
		}
		return 3.0 - 4.0*phase
	default:
		return 0
	}
}

// pcg32 is a PCG-XSH-RR generator. The noise waveform seeds it from the
// blueprint frequency so identical blueprints produce identical noise.
type pcg32 struct {
	state uint64
	inc   uint64
}

const pcg32Mult = 6364136223846793005

func newPCG32(seed, seq uint64) pcg32 {
	p := pcg32{inc: seq<<1 | 1}
	p.next()
	p.state += seed
	p.next()
	return p
}

func (p *pcg32) next() uint32 {
	old := p.state
	p.state = old*pcg32Mult + p.inc
	xorshifted := uint32(((old >> 18) ^ old) >> 27)
	rot := uint32(old >> 59)
	return (xorshifted >> rot) | (xorshifted << ((32 - rot) & 31))
}

// float64 returns a uniform value in [-1,1).
func (p *pcg32) float64() float64 {
	return float64(p.next())/(1<<31) - 1.0
}
