//go:build ebiten

// Package audio plays short procedural sound cues. A nil System is valid
// and silent, so callers never need to branch on whether the device opened.
package audio

import (
	"io"
	"math"
	"time"

	"github.com/hajimehoshi/oto/v2"
)

const (
	sampleRate   = 44100
	channelCount = 2
	bitDepth     = 0 // 32-bit float (oto.FormatFloat32LE)
)

// Kind identifies a sound cue.
type Kind int

const (
	KindEat Kind = iota
	KindGameOver
)

// System owns the audio device context.
type System struct {
	ctx   *oto.Context
	ready chan struct{}
}

// Init opens the audio device. Callers are expected to tolerate failure and
// continue without sound.
func Init() (*System, error) {
	ctx, ready, err := oto.NewContext(sampleRate, channelCount, bitDepth)
	if err != nil {
		return nil, err
	}
	return &System{ctx: ctx, ready: ready}, nil
}

// Play fires a sound cue without blocking. Cues are dropped while the device
// is still warming up.
func (s *System) Play(kind Kind) {
	if s == nil {
		return
	}
	select {
	case <-s.ready:
	default:
		return
	}
	samples := generate(kind)
	go func() {
		player := s.ctx.NewPlayer(&sampleReader{data: samples})
		player.Play()
		for player.IsPlaying() {
			time.Sleep(10 * time.Millisecond)
		}
		player.Close()
	}()
}

func generate(kind Kind) []byte {
	switch kind {
	case KindEat:
		// Short rising blip.
		return tone(0.09, func(progress float64) (freq, amp float64) {
			return 660 + 220*progress, 0.5 * (1 - progress)
		})
	case KindGameOver:
		// Slow falling sting.
		return tone(0.6, func(progress float64) (freq, amp float64) {
			return 380 - 300*progress, 0.4 * (1 - progress*progress)
		})
	}
	return nil
}

// tone renders a mono sweep described by shape into stereo float32 PCM.
func tone(seconds float64, shape func(progress float64) (freq, amp float64)) []byte {
	frames := int(seconds * sampleRate)
	buf := make([]byte, frames*8)
	phase := 0.0
	for i := 0; i < frames; i++ {
		progress := float64(i) / float64(frames)
		freq, amp := shape(progress)
		phase += 2 * math.Pi * freq / sampleRate
		putStereoF32(buf, i, amp*math.Sin(phase))
	}
	return buf
}

// putStereoF32 writes a [-1,1] sample as float32 LE to both channels at frame i.
func putStereoF32(buf []byte, i int, sample float64) {
	v := math.Float32bits(float32(sample))
	buf[i*8] = byte(v)
	buf[i*8+1] = byte(v >> 8)
	buf[i*8+2] = byte(v >> 16)
	buf[i*8+3] = byte(v >> 24)
	buf[i*8+4] = byte(v)
	buf[i*8+5] = byte(v >> 8)
	buf[i*8+6] = byte(v >> 16)
	buf[i*8+7] = byte(v >> 24)
}

type sampleReader struct {
	data []byte
	pos  int
}

func (r *sampleReader) Read(p []byte) (int, error) {
	if r.pos >= len(r.data) {
		return 0, io.EOF
	}
	n := copy(p, r.data[r.pos:])
	r.pos += n
	return n, nil
}
