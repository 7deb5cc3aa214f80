package sfx

// Sample is the blueprint for a sound effect: waveform, pitch, volume,
// envelope timing and distortion settings. Build one with NewSample,
// adjust it through the setters and hand it to Mixer.Play. The mixer
// copies the blueprint, so it can be reused and replayed freely.
//
// Every setter clamps its argument into the valid range, so a blueprint
// is always playable and playback itself has no error path.
type Sample struct {
	waveform  Waveform
	frequency float64
	volume    float64
	duty      float64

	attack  float64
	decay   float64
	sustain float64
	release float64

	crunch float64
	drive  float64
}

// NewSample returns a blueprint with the default sound: a 441 Hz sine
// at full volume with envelope 0.1/0.1/0.5/0.5 and no distortion.
func NewSample() *Sample {
	return &Sample{
		waveform:  Sine,
		frequency: 441.0,
		volume:    1.0,
		duty:      0.5,
		attack:    0.1,
		decay:     0.1,
		sustain:   0.5,
		release:   0.5,
	}
}

// SetWaveform sets the oscillator shape.
func (s *Sample) SetWaveform(w Waveform) {
	if w < Sine || w > Noise {
		w = Sine
	}
	s.waveform = w
}

// SetFrequency sets the oscillator frequency in Hz. Negative values are
// clamped to 0; a frequency of 0 plays as silence for the periodic
// waveforms. For Noise the frequency only seeds the generator.
func (s *Sample) SetFrequency(hz float64) {
	if hz < 0 {
		hz = 0
	}
	s.frequency = hz
}

// SetVolume sets the overall volume, clamped to [0,1].
func (s *Sample) SetVolume(v float64) {
	s.volume = clamp01(v)
}

// SetDuty sets the square wave duty cycle, clamped to [0,1].
func (s *Sample) SetDuty(duty float64) {
	s.duty = clamp01(duty)
}

// SetAttack sets the attack time in seconds, clamped to >= 0.
func (s *Sample) SetAttack(seconds float64) {
	s.attack = clampPos(seconds)
}

// SetDecay sets the decay time in seconds, clamped to >= 0.
func (s *Sample) SetDecay(seconds float64) {
	s.decay = clampPos(seconds)
}

// SetSustain sets the sustain level, clamped to [0,1].
func (s *Sample) SetSustain(level float64) {
	s.sustain = clamp01(level)
}

// SetRelease sets the release time in seconds, clamped to >= 0. A
// release of 0 makes the voice hold its sustain level indefinitely.
func (s *Sample) SetRelease(seconds float64) {
	s.release = clampPos(seconds)
}

// SetCrunch sets the distortion clipping sharpness, clamped to >= 0.
func (s *Sample) SetCrunch(crunch float64) {
	s.crunch = clampPos(crunch)
}

// SetDrive sets the distortion pre-gain, clamped to >= 0.
func (s *Sample) SetDrive(drive float64) {
	s.drive = clampPos(drive)
}

// Waveform returns the oscillator shape.
func (s *Sample) Waveform() Waveform { return s.waveform }

// Frequency returns the oscillator frequency in Hz.
func (s *Sample) Frequency() float64 { return s.frequency }

// Volume returns the overall volume.
func (s *Sample) Volume() float64 { return s.volume }

// Duty returns the square wave duty cycle.
func (s *Sample) Duty() float64 { return s.duty }

// Attack returns the attack time in seconds.
func (s *Sample) Attack() float64 { return s.attack }

// Decay returns the decay time in seconds.
func (s *Sample) Decay() float64 { return s.decay }

// Sustain returns the sustain level.
func (s *Sample) Sustain() float64 { return s.sustain }

// Release returns the release time in seconds.
func (s *Sample) Release() float64 { return s.release }

// Crunch returns the distortion clipping sharpness.
func (s *Sample) Crunch() float64 { return s.crunch }

// Drive returns the distortion pre-gain.
func (s *Sample) Drive() float64 { return s.drive }

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}

func clampPos(v float64) float64 {
	if v < 0 {
		return 0
	}
	return v
}
