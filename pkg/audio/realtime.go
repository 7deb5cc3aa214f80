package audio

import (
	"encoding/binary"

	"github.com/ebitengine/oto/v3"
)

// RealtimeOutput plays an engine's output through the system audio
// device as mono 16-bit PCM.
type RealtimeOutput struct {
	engine    *Engine
	otoCtx    *oto.Context
	otoPlayer *oto.Player
	running   bool
}

// NewRealtimeOutput opens the audio device at the engine's sample rate
// and starts streaming.
func NewRealtimeOutput(engine *Engine) (*RealtimeOutput, error) {
	op := &oto.NewContextOptions{
		SampleRate:   engine.SampleRate(),
		ChannelCount: 1,
		Format:       oto.FormatSignedInt16LE,
	}

	otoCtx, ready, err := oto.NewContext(op)
	if err != nil {
		return nil, err
	}
	<-ready

	rt := &RealtimeOutput{
		engine:  engine,
		otoCtx:  otoCtx,
		running: true,
	}

	rt.otoPlayer = otoCtx.NewPlayer(&audioStream{rt: rt, buffer: make([]float64, 512)})
	rt.otoPlayer.SetBufferSize(engine.SampleRate() / 10) // 100ms
	rt.otoPlayer.Play()

	return rt, nil
}

// Close stops streaming and releases the device player.
func (rt *RealtimeOutput) Close() {
	rt.running = false
	if rt.otoPlayer != nil {
		rt.otoPlayer.Close()
	}
}

// audioStream implements io.Reader for oto.
type audioStream struct {
	rt     *RealtimeOutput
	buffer []float64
}

func (s *audioStream) Read(buf []byte) (int, error) {
	if !s.rt.running {
		for i := range buf {
			buf[i] = 0
		}
		return len(buf), nil
	}

	samples := len(buf) / 2
	if samples > len(s.buffer) {
		s.buffer = make([]float64, samples)
	}

	s.rt.engine.Generate(s.buffer[:samples])

	for i := 0; i < samples; i++ {
		binary.LittleEndian.PutUint16(buf[i*2:], uint16(pcm16(s.buffer[i])))
	}

	return samples * 2, nil
}

// pcm16 converts a float sample to clamped 16-bit signed PCM.
func pcm16(sample float64) int16 {
	if sample > 1.0 {
		sample = 1.0
	}
	if sample < -1.0 {
		sample = -1.0
	}
	return int16(sample * 32767)
}
