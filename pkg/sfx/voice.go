package sfx

import "math"

// voice is one playing instance of a Sample blueprint. It owns the
// phase accumulator, the envelope progress and the noise generator, and
// is created and retired exclusively by the mixer.
type voice struct {
	sample   Sample
	phase    float64
	phaseInc float64
	env      envelope
	rng      pcg32
}

func newVoice(s Sample, sampleRate int) voice {
	return voice{
		sample:   s,
		phaseInc: s.frequency / float64(sampleRate),
		env:      newEnvelope(s.attack, s.decay, s.sustain, s.release, sampleRate),
		rng:      newPCG32(uint64(s.frequency), 5),
	}
}

// next computes one output sample and advances the voice state. The
// pipeline is oscillator, distortion, envelope, volume.
func (v *voice) next() float64 {
	var raw float64
	if v.sample.waveform == Noise {
		raw = v.rng.float64()
	} else if v.sample.frequency > 0 {
		raw = Oscillate(v.sample.waveform, v.phase, v.sample.duty)
	}

	shaped := Distort(raw, v.sample.crunch, v.sample.drive)
	out := shaped * v.env.advance() * v.sample.volume

	// The increment can exceed 1 for frequencies above the sample
	// rate, so a single subtraction is not enough to wrap.
	v.phase = math.Mod(v.phase+v.phaseInc, 1.0)

	return out
}

func (v *voice) done() bool {
	return v.env.done()
}
