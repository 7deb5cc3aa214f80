package sfx

import (
	"math"
	"testing"
)

func TestEnvelopeProgression(t *testing.T) {
	const rate = 1000
	env := newEnvelope(0.01, 0.01, 0.5, 0.01, rate) // 10 samples per stage

	// Attack: ramps from 0 towards 1.
	first := env.advance()
	if first != 0 {
		t.Errorf("attack starts at %f, want 0", first)
	}
	var last float64
	for i := 0; i < 9; i++ {
		last = env.advance()
	}
	if math.Abs(last-0.9) > 1e-9 {
		t.Errorf("end of attack at %f, want 0.9", last)
	}

	// Decay: starts at 1, lands on the sustain level.
	if v := env.advance(); math.Abs(v-1.0) > 1e-9 {
		t.Errorf("decay starts at %f, want 1", v)
	}
	for i := 0; i < 9; i++ {
		last = env.advance()
	}
	if math.Abs(last-0.55) > 1e-9 {
		t.Errorf("end of decay at %f, want 0.55", last)
	}

	// Release: starts at the sustain level, ramps to 0, then Done.
	if v := env.advance(); math.Abs(v-0.5) > 1e-9 {
		t.Errorf("release starts at %f, want 0.5", v)
	}
	for i := 0; i < 9; i++ {
		last = env.advance()
	}
	if math.Abs(last-0.05) > 1e-9 {
		t.Errorf("end of release at %f, want 0.05", last)
	}
	if v := env.advance(); v != 0 {
		t.Errorf("after release got %f, want 0", v)
	}
	if !env.done() {
		t.Error("envelope not done after release completed")
	}

	// Done stays done.
	for i := 0; i < 100; i++ {
		if v := env.advance(); v != 0 {
			t.Fatalf("done envelope produced %f", v)
		}
	}
}

func TestEnvelopeZeroDurations(t *testing.T) {
	const rate = 44100

	// All-zero stages with a sustain level hold that level.
	env := newEnvelope(0, 0, 1.0, 0, rate)
	for i := 0; i < 100; i++ {
		if v := env.advance(); v != 1.0 {
			t.Fatalf("sample %d: got %f, want 1", i, v)
		}
	}
	if env.done() {
		t.Error("held envelope reported done")
	}

	// Zero sustain with no release completes immediately.
	env = newEnvelope(0, 0, 0, 0, rate)
	if v := env.advance(); v != 0 {
		t.Errorf("got %f, want 0", v)
	}
	if !env.done() {
		t.Error("silent envelope not done")
	}

	// Zero attack and decay go straight into release.
	env = newEnvelope(0, 0, 0.8, 0.01, rate)
	if v := env.advance(); math.Abs(v-0.8) > 1e-9 {
		t.Errorf("first sample %f, want sustain level 0.8", v)
	}
	if env.stage != StageRelease {
		t.Errorf("stage = %d, want StageRelease", env.stage)
	}
}

func TestEnvelopeTotalLength(t *testing.T) {
	const rate = 1000
	env := newEnvelope(0.005, 0.01, 0.7, 0.015, rate)

	total := 0
	for !env.done() {
		env.advance()
		total++
		if total > 1000 {
			t.Fatal("envelope never completed")
		}
	}
	// 5 + 10 + 15 audible samples, then one advance lands on Done.
	if total != 31 {
		t.Errorf("envelope ran %d samples, want 31", total)
	}
}
