package main

import (
	"flag"
	"fmt"
	"os"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/anthropics/gosfx/pkg/audio"
	"github.com/anthropics/gosfx/pkg/preset"
	"github.com/anthropics/gosfx/pkg/sfx"
	"github.com/anthropics/gosfx/pkg/tui"
)

func main() {
	rate := flag.Int("rate", sfx.DefaultSampleRate, "Output sample rate in Hz")
	presetPath := flag.String("preset", "", "Preset bank TOML file (default: built-in bank)")
	wavPath := flag.String("wav", "", "Render to a WAV file instead of the audio device")
	duration := flag.Float64("dur", 2.0, "Seconds to render with -wav")
	playName := flag.String("play", "", "Preset name to play (default with -wav: coin)")
	useTUI := flag.Bool("tui", false, "Open the interactive soundboard")
	softClip := flag.Bool("softclip", false, "Limit the mixed output with a tanh knee")
	flag.Parse()

	bank := preset.Default()
	if *presetPath != "" {
		loaded, err := preset.LoadFile(*presetPath)
		if err != nil {
			fail("loading presets: %v", err)
		}
		bank = loaded
	}

	engine := audio.NewEngine(*rate)
	engine.SetSoftClip(*softClip)

	switch {
	case *wavPath != "":
		name := *playName
		if name == "" {
			name = "coin"
		}
		if err := renderWAV(engine, bank, name, *wavPath, *duration); err != nil {
			fail("%v", err)
		}
		fmt.Printf("Wrote %.1fs of %q to %s\n", *duration, name, *wavPath)

	case *useTUI:
		if err := runTUI(engine, bank, *presetPath); err != nil {
			fail("%v", err)
		}

	case *playName != "":
		if err := playOne(engine, bank, *playName); err != nil {
			fail("%v", err)
		}

	default:
		if err := runDemo(engine, bank); err != nil {
			fail("%v", err)
		}
	}
}

func fail(format string, args ...any) {
	fmt.Fprintf(os.Stderr, "Error: "+format+"\n", args...)
	os.Exit(1)
}

func trigger(engine *audio.Engine, bank *preset.Bank, name string) error {
	sound, ok := bank.Sounds[name]
	if !ok {
		return fmt.Errorf("no preset named %q", name)
	}
	s, err := sound.Sample()
	if err != nil {
		return fmt.Errorf("preset %q: %w", name, err)
	}
	engine.Play(*s)
	return nil
}

func renderWAV(engine *audio.Engine, bank *preset.Bank, name, path string, seconds float64) error {
	if err := trigger(engine, bank, name); err != nil {
		return err
	}

	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := audio.ExportWAV(engine, f, seconds); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

func runTUI(engine *audio.Engine, bank *preset.Bank, savePath string) error {
	rt, err := audio.NewRealtimeOutput(engine)
	if err != nil {
		return fmt.Errorf("opening audio device: %w", err)
	}
	defer rt.Close()

	model := tui.NewModel(engine, bank, savePath)
	_, err = tea.NewProgram(model).Run()
	return err
}

func playOne(engine *audio.Engine, bank *preset.Bank, name string) error {
	rt, err := audio.NewRealtimeOutput(engine)
	if err != nil {
		return fmt.Errorf("opening audio device: %w", err)
	}
	defer rt.Close()

	if err := trigger(engine, bank, name); err != nil {
		return err
	}
	drain(engine)
	return nil
}

// runDemo plays a short percussion loop through the default bank, one
// preset per sixteenth note at 132 BPM.
func runDemo(engine *audio.Engine, bank *preset.Bank) error {
	rt, err := audio.NewRealtimeOutput(engine)
	if err != nil {
		return fmt.Errorf("opening audio device: %w", err)
	}
	defer rt.Close()

	steps := []string{
		"kick", "hat", "snare", "hat",
		"kick", "hat", "snare", "laser",
		"kick", "hat", "snare", "hat",
		"kick", "coin", "snare", "jump",
	}

	const bpm = 132
	step := time.Minute / time.Duration(4*bpm)
	ticker := time.NewTicker(step)
	defer ticker.Stop()

	for loop := 0; loop < 2; loop++ {
		for _, name := range steps {
			if err := trigger(engine, bank, name); err != nil {
				return err
			}
			<-ticker.C
		}
	}

	drain(engine)
	return nil
}

// drain waits for every playing voice to finish, with a hard cap so a
// zero-release preset can't hang the process.
func drain(engine *audio.Engine) {
	deadline := time.Now().Add(5 * time.Second)
	for engine.Active() > 0 && time.Now().Before(deadline) {
		time.Sleep(50 * time.Millisecond)
	}
	// Let the device buffer play out.
	time.Sleep(200 * time.Millisecond)
}
