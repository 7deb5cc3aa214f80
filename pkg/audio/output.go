package audio

import (
	"encoding/binary"
	"io"
)

// Reader exposes an engine as an io.Reader of mono s16le samples, for
// sinks other than the oto device (pipes, encoders, tests).
type Reader struct {
	engine *Engine
	buffer []float64
	pos    int
}

// NewReader creates a reader that generates in chunks of bufferSize
// samples.
func (e *Engine) NewReader(bufferSize int) *Reader {
	if bufferSize < 1 {
		bufferSize = 4096
	}
	return &Reader{
		engine: e,
		buffer: make([]float64, bufferSize),
		pos:    bufferSize,
	}
}

// Read implements io.Reader, generating samples on demand.
func (r *Reader) Read(p []byte) (n int, err error) {
	if r.pos >= len(r.buffer) {
		r.engine.Generate(r.buffer)
		r.pos = 0
	}

	for n = 0; n+2 <= len(p) && r.pos < len(r.buffer); n += 2 {
		binary.LittleEndian.PutUint16(p[n:], uint16(pcm16(r.buffer[r.pos])))
		r.pos++
	}

	return n, nil
}

// WAVWriter writes mono 16-bit PCM WAV data.
type WAVWriter struct {
	writer     io.Writer
	sampleRate int
	channels   int
}

// NewWAVWriter creates a WAV writer for the given format.
func NewWAVWriter(w io.Writer, sampleRate, channels int) *WAVWriter {
	return &WAVWriter{
		writer:     w,
		sampleRate: sampleRate,
		channels:   channels,
	}
}

// errWriter stops writing after the first failure and keeps the error.
type errWriter struct {
	w   io.Writer
	err error
}

func (e *errWriter) write(p []byte) {
	if e.err != nil {
		return
	}
	_, e.err = e.w.Write(p)
}

func (e *errWriter) writeLE(v any) {
	if e.err != nil {
		return
	}
	e.err = binary.Write(e.w, binary.LittleEndian, v)
}

// WriteHeader writes the RIFF/fmt/data headers for dataSize bytes of
// sample data.
func (w *WAVWriter) WriteHeader(dataSize int) error {
	ew := &errWriter{w: w.writer}

	ew.write([]byte("RIFF"))
	ew.writeLE(uint32(dataSize + 36))
	ew.write([]byte("WAVE"))

	ew.write([]byte("fmt "))
	ew.writeLE(uint32(16))                            // chunk size
	ew.writeLE(uint16(1))                             // PCM
	ew.writeLE(uint16(w.channels))                    // channels
	ew.writeLE(uint32(w.sampleRate))                  // sample rate
	ew.writeLE(uint32(w.sampleRate * w.channels * 2)) // byte rate
	ew.writeLE(uint16(w.channels * 2))                // block align
	ew.writeLE(uint16(16))                            // bits per sample

	ew.write([]byte("data"))
	ew.writeLE(uint32(dataSize))

	return ew.err
}

// WriteSamples writes float samples as clamped 16-bit PCM.
func (w *WAVWriter) WriteSamples(samples []float64) error {
	for _, s := range samples {
		if err := binary.Write(w.writer, binary.LittleEndian, pcm16(s)); err != nil {
			return err
		}
	}
	return nil
}

// ExportWAV renders durationSeconds of the engine's output into a WAV
// stream. Sounds to be captured should be played before calling.
func ExportWAV(engine *Engine, writer io.Writer, durationSeconds float64) error {
	sampleRate := engine.SampleRate()
	totalSamples := int(durationSeconds * float64(sampleRate))
	dataSize := totalSamples * 2 // 16-bit mono

	wavWriter := NewWAVWriter(writer, sampleRate, 1)
	if err := wavWriter.WriteHeader(dataSize); err != nil {
		return err
	}

	chunkSize := 4096
	buffer := make([]float64, chunkSize)
	for written := 0; written < totalSamples; {
		remaining := totalSamples - written
		if remaining < chunkSize {
			buffer = buffer[:remaining]
		}
		engine.Generate(buffer)
		if err := wavWriter.WriteSamples(buffer); err != nil {
			return err
		}
		written += len(buffer)
	}

	return nil
}
