package sfx

import "math"

// Stage identifies the current phase of an ADSR envelope.
type Stage int

const (
	// StageIdle is the state before the first sample is drawn.
	StageIdle Stage = iota
	// StageAttack ramps the level from 0 to 1.
	StageAttack
	// StageDecay ramps the level from 1 down to the sustain level.
	StageDecay
	// StageSustain holds the sustain level.
	StageSustain
	// StageRelease ramps the level from the sustain level to 0.
	StageRelease
	// StageDone means the envelope has finished; the level stays 0.
	StageDone
)

// envelope is a linear ADSR advanced one sample at a time. Stage lengths
// are fixed in samples when the voice is created.
//
// Voices are fire and forget, so release begins the sample after decay
// lands on the sustain level. A release time of zero means there is no
// release stage: the level holds at sustain indefinitely, or completes
// immediately when sustain is also zero so silent voices don't linger.
type envelope struct {
	attackSamples  int
	decaySamples   int
	releaseSamples int
	sustain        float64

	stage Stage
	pos   int
}

func newEnvelope(attack, decay, sustain, release float64, sampleRate int) envelope {
	rate := float64(sampleRate)
	return envelope{
		attackSamples:  int(math.Round(attack * rate)),
		decaySamples:   int(math.Round(decay * rate)),
		releaseSamples: int(math.Round(release * rate)),
		sustain:        sustain,
	}
}

// advance steps the envelope by one sample period and returns the level
// in [0,1]. Zero-length stages are skipped within the same call.
func (e *envelope) advance() float64 {
	for {
		switch e.stage {
		case StageIdle:
			e.stage = StageAttack

		case StageAttack:
			if e.pos >= e.attackSamples {
				e.stage = StageDecay
				e.pos = 0
				continue
			}
			level := float64(e.pos) / float64(e.attackSamples)
			e.pos++
			return level

		case StageDecay:
			if e.pos >= e.decaySamples {
				e.stage = StageSustain
				e.pos = 0
				continue
			}
			level := 1.0 - (1.0-e.sustain)*float64(e.pos)/float64(e.decaySamples)
			e.pos++
			return level

		case StageSustain:
			if e.releaseSamples > 0 {
				e.stage = StageRelease
				e.pos = 0
				continue
			}
			if e.sustain <= 0 {
				e.stage = StageDone
				continue
			}
			return e.sustain

		case StageRelease:
			if e.pos >= e.releaseSamples {
				e.stage = StageDone
				continue
			}
			level := e.sustain * (1.0 - float64(e.pos)/float64(e.releaseSamples))
			e.pos++
			return level

		default: // StageDone
			return 0
		}
	}
}

func (e *envelope) done() bool {
	return e.stage == StageDone
}
