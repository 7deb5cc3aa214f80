package sfx

// DefaultSampleRate is the rate used by NewMixer when the caller has no
// preference.
const DefaultSampleRate = 44100

// Mixer owns the set of playing voices and sums them into output
// buffers one sample at a time. It is meant to be driven from a single
// audio callback; Generate never blocks and never allocates. The mixer
// itself is not safe for concurrent use — callers that trigger sounds
// from other goroutines must serialize access (see audio.Engine).
type Mixer struct {
	sampleRate int
	voices     []voice
	softClip   bool
}

// NewMixer creates a mixer generating at the given sample rate. Rates
// below 1 fall back to DefaultSampleRate.
func NewMixer(sampleRate int) *Mixer {
	if sampleRate < 1 {
		sampleRate = DefaultSampleRate
	}
	return &Mixer{sampleRate: sampleRate}
}

// SampleRate returns the output rate in Hz.
func (m *Mixer) SampleRate() int {
	return m.sampleRate
}

// SetSoftClip toggles a tanh limiter on the mixed sum. Off by default:
// the plain sum of many voices may exceed [-1,1], and output gain is
// normally the device layer's concern.
func (m *Mixer) SetSoftClip(on bool) {
	m.softClip = on
}

// Play starts a new voice from the blueprint. The blueprint is copied;
// the caller can keep mutating and replaying it. Play always succeeds
// and enforces no voice cap — bounding polyphony is up to the caller
// (check Active before playing if needed).
func (m *Mixer) Play(s Sample) {
	m.voices = append(m.voices, newVoice(s, m.sampleRate))
}

// Active returns the number of voices still playing.
func (m *Mixer) Active() int {
	return len(m.voices)
}

// Generate fills the caller-owned buffer with the sum of all active
// voices, one output sample per element, then retires voices whose
// envelope has finished. With no active voices the buffer is zeroed.
func (m *Mixer) Generate(buf []float64) {
	for i := range buf {
		var sum float64
		for j := range m.voices {
			sum += m.voices[j].next()
		}
		if m.softClip {
			sum = softLimit(sum)
		}
		buf[i] = sum
	}

	// Compact in place so the backing array is reused.
	live := m.voices[:0]
	for j := range m.voices {
		if !m.voices[j].done() {
			live = append(live, m.voices[j])
		}
	}
	m.voices = live
}
