// Package preset persists sample blueprints as TOML files and ships a
// small bank of stock sound effects. Conversion happens only at this
// boundary; the synthesis core knows nothing about serialization.
package preset

import (
	"errors"
	"fmt"
	"io"
	"os"
	"sort"

	"github.com/BurntSushi/toml"

	"github.com/anthropics/gosfx/pkg/sfx"
)

// Sound is the serialized form of a sample blueprint, field for field.
type Sound struct {
	Oscillator string  `toml:"oscillator"`
	Frequency  float64 `toml:"frequency"`
	Volume     float64 `toml:"volume"`
	Duty       float64 `toml:"duty"`
	Attack     float64 `toml:"attack"`
	Decay      float64 `toml:"decay"`
	Sustain    float64 `toml:"sustain"`
	Release    float64 `toml:"release"`
	Crunch     float64 `toml:"crunch"`
	Drive      float64 `toml:"drive"`
}

// Bank is a set of named sounds.
type Bank struct {
	Sounds map[string]Sound `toml:"sounds"`
}

// ParseWaveform maps a preset oscillator name to its waveform.
func ParseWaveform(name string) (sfx.Waveform, error) {
	switch name {
	case "sine":
		return sfx.Sine, nil
	case "square":
		return sfx.Square, nil
	case "saw":
		return sfx.Saw, nil
	case "triangle":
		return sfx.Triangle, nil
	case "noise":
		return sfx.Noise, nil
	default:
		return sfx.Sine, fmt.Errorf("unknown oscillator %q", name)
	}
}

// Validate checks that every field is inside the range the synthesis
// core accepts, so a bank round-trips without silent clamping.
func (s *Sound) Validate() error {
	if _, err := ParseWaveform(s.Oscillator); err != nil {
		return err
	}
	if s.Frequency < 0 {
		return errors.New("frequency must be non-negative")
	}
	if s.Volume < 0 || s.Volume > 1 {
		return fmt.Errorf("volume must be in [0,1], got %g", s.Volume)
	}
	if s.Duty < 0 || s.Duty > 1 {
		return fmt.Errorf("duty must be in [0,1], got %g", s.Duty)
	}
	if s.Attack < 0 || s.Decay < 0 || s.Release < 0 {
		return errors.New("envelope times must be non-negative")
	}
	if s.Sustain < 0 || s.Sustain > 1 {
		return fmt.Errorf("sustain must be in [0,1], got %g", s.Sustain)
	}
	if s.Crunch < 0 || s.Drive < 0 {
		return errors.New("distortion parameters must be non-negative")
	}
	return nil
}

// Sample converts the sound into a playable blueprint.
func (s *Sound) Sample() (*sfx.Sample, error) {
	if err := s.Validate(); err != nil {
		return nil, err
	}
	w, _ := ParseWaveform(s.Oscillator)

	out := sfx.NewSample()
	out.SetWaveform(w)
	out.SetFrequency(s.Frequency)
	out.SetVolume(s.Volume)
	out.SetDuty(s.Duty)
	out.SetAttack(s.Attack)
	out.SetDecay(s.Decay)
	out.SetSustain(s.Sustain)
	out.SetRelease(s.Release)
	out.SetCrunch(s.Crunch)
	out.SetDrive(s.Drive)
	return out, nil
}

// FromSample converts a blueprint back into its serialized form.
func FromSample(s *sfx.Sample) Sound {
	return Sound{
		Oscillator: s.Waveform().String(),
		Frequency:  s.Frequency(),
		Volume:     s.Volume(),
		Duty:       s.Duty(),
		Attack:     s.Attack(),
		Decay:      s.Decay(),
		Sustain:    s.Sustain(),
		Release:    s.Release(),
		Crunch:     s.Crunch(),
		Drive:      s.Drive(),
	}
}

// Load reads a bank from TOML and validates every sound.
func Load(r io.Reader) (*Bank, error) {
	var bank Bank
	if _, err := toml.NewDecoder(r).Decode(&bank); err != nil {
		return nil, err
	}
	for name, sound := range bank.Sounds {
		if err := sound.Validate(); err != nil {
			return nil, fmt.Errorf("sound %q: %w", name, err)
		}
	}
	return &bank, nil
}

// LoadFile reads a bank from a TOML file.
func LoadFile(path string) (*Bank, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return Load(f)
}

// Save writes the bank as TOML.
func (b *Bank) Save(w io.Writer) error {
	return toml.NewEncoder(w).Encode(b)
}

// SaveFile writes the bank to a TOML file.
func (b *Bank) SaveFile(path string) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := b.Save(f); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

// Names returns the sound names in sorted order.
func (b *Bank) Names() []string {
	names := make([]string, 0, len(b.Sounds))
	for name := range b.Sounds {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Default returns the stock sound bank.
func Default() *Bank {
	return &Bank{Sounds: map[string]Sound{
		"kick": {
			Oscillator: "triangle", Frequency: 60, Volume: 1.0, Duty: 0.5,
			Attack: 0, Decay: 0.12, Sustain: 0, Release: 0.08,
			Crunch: 0.5, Drive: 1.0,
		},
		"snare": {
			Oscillator: "noise", Frequency: 1000, Volume: 0.8, Duty: 0.5,
			Attack: 0, Decay: 0.1, Sustain: 0, Release: 0.1,
		},
		"hat": {
			Oscillator: "noise", Frequency: 7000, Volume: 0.4, Duty: 0.5,
			Attack: 0, Decay: 0.03, Sustain: 0, Release: 0.02,
		},
		"laser": {
			Oscillator: "saw", Frequency: 1200, Volume: 0.7, Duty: 0.5,
			Attack: 0, Decay: 0.15, Sustain: 0, Release: 0.05,
			Crunch: 2.0, Drive: 0.5,
		},
		"jump": {
			Oscillator: "square", Frequency: 330, Volume: 0.6, Duty: 0.25,
			Attack: 0.01, Decay: 0.1, Sustain: 0.3, Release: 0.15,
		},
		"coin": {
			Oscillator: "sine", Frequency: 988, Volume: 0.7, Duty: 0.5,
			Attack: 0, Decay: 0.05, Sustain: 0.4, Release: 0.2,
		},
		"hum": {
			Oscillator: "square", Frequency: 110, Volume: 0.5, Duty: 0.33,
			Attack: 0.3, Decay: 0.2, Sustain: 0.6, Release: 0.4,
			Drive: 0.3,
		},
	}}
}
