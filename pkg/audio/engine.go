// Package audio connects the synthesis core to audio devices and files:
// a goroutine-safe engine around the mixer, real-time output via oto,
// and WAV export.
package audio

import (
	"sync"

	"github.com/anthropics/gosfx/pkg/sfx"
)

// Engine serializes access to a mixer so sounds can be triggered from
// any goroutine while the audio callback generates on its own. The
// lock is only ever held for the duration of one buffer, so Play can
// never stall the render thread for longer than a single callback.
type Engine struct {
	mu    sync.Mutex
	mixer *sfx.Mixer
}

// NewEngine creates an engine mixing at the given sample rate.
func NewEngine(sampleRate int) *Engine {
	return &Engine{mixer: sfx.NewMixer(sampleRate)}
}

// Play triggers a sound effect. Safe to call from any goroutine.
func (e *Engine) Play(s sfx.Sample) {
	e.mu.Lock()
	e.mixer.Play(s)
	e.mu.Unlock()
}

// Generate fills buf with the mixed output. Called by the output layer.
func (e *Engine) Generate(buf []float64) {
	e.mu.Lock()
	e.mixer.Generate(buf)
	e.mu.Unlock()
}

// Active returns the number of currently playing voices.
func (e *Engine) Active() int {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.mixer.Active()
}

// SampleRate returns the engine's output rate in Hz.
func (e *Engine) SampleRate() int {
	return e.mixer.SampleRate()
}

// SetSoftClip toggles the mixer's output limiter.
func (e *Engine) SetSoftClip(on bool) {
	e.mu.Lock()
	e.mixer.SetSoftClip(on)
	e.mu.Unlock()
}
