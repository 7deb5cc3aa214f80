package preset

import (
	"bytes"
	"strings"
	"testing"

	"github.com/anthropics/gosfx/pkg/sfx"
)

func TestBankRoundTrip(t *testing.T) {
	bank := Default()

	var buf bytes.Buffer
	if err := bank.Save(&buf); err != nil {
		t.Fatalf("Save: %v", err)
	}

	loaded, err := Load(&buf)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	if len(loaded.Sounds) != len(bank.Sounds) {
		t.Fatalf("loaded %d sounds, want %d", len(loaded.Sounds), len(bank.Sounds))
	}
	for name, want := range bank.Sounds {
		got, ok := loaded.Sounds[name]
		if !ok {
			t.Errorf("sound %q missing after round trip", name)
			continue
		}
		if got != want {
			t.Errorf("sound %q = %+v, want %+v", name, got, want)
		}
	}
}

func TestSampleConversionRoundTrip(t *testing.T) {
	s := sfx.NewSample()
	s.SetWaveform(sfx.Square)
	s.SetFrequency(330)
	s.SetVolume(0.6)
	s.SetDuty(0.25)
	s.SetAttack(0.01)
	s.SetDecay(0.1)
	s.SetSustain(0.3)
	s.SetRelease(0.15)
	s.SetCrunch(1.5)
	s.SetDrive(0.5)

	sound := FromSample(s)
	back, err := sound.Sample()
	if err != nil {
		t.Fatalf("Sample: %v", err)
	}
	if *back != *s {
		t.Errorf("round trip changed blueprint: %+v != %+v", *back, *s)
	}
}

func TestLoadRejectsBadSounds(t *testing.T) {
	tests := []struct {
		name string
		toml string
	}{
		{
			"unknown oscillator",
			`[sounds.bad]
oscillator = "wobble"
frequency = 440.0`,
		},
		{
			"negative frequency",
			`[sounds.bad]
oscillator = "sine"
frequency = -1.0`,
		},
		{
			"volume out of range",
			`[sounds.bad]
oscillator = "sine"
frequency = 440.0
volume = 1.5`,
		},
		{
			"negative attack",
			`[sounds.bad]
oscillator = "sine"
frequency = 440.0
attack = -0.1`,
		},
	}

	for _, tt := range tests {
		if _, err := Load(strings.NewReader(tt.toml)); err == nil {
			t.Errorf("%s: Load accepted invalid sound", tt.name)
		}
	}
}

func TestDefaultBankIsValid(t *testing.T) {
	for name, sound := range Default().Sounds {
		if err := sound.Validate(); err != nil {
			t.Errorf("default sound %q invalid: %v", name, err)
		}
		if _, err := sound.Sample(); err != nil {
			t.Errorf("default sound %q not convertible: %v", name, err)
		}
	}
}

func TestParseWaveform(t *testing.T) {
	for _, w := range []sfx.Waveform{sfx.Sine, sfx.Square, sfx.Saw, sfx.Triangle, sfx.Noise} {
		got, err := ParseWaveform(w.String())
		if err != nil {
			t.Errorf("ParseWaveform(%q): %v", w.String(), err)
		}
		if got != w {
			t.Errorf("ParseWaveform(%q) = %d, want %d", w.String(), got, w)
		}
	}
	if _, err := ParseWaveform("sawtooth"); err == nil {
		t.Error("ParseWaveform accepted unknown name")
	}
}

func TestNamesSorted(t *testing.T) {
	names := Default().Names()
	for i := 1; i < len(names); i++ {
		if names[i-1] >= names[i] {
			t.Fatalf("names not sorted: %v", names)
		}
	}
}
