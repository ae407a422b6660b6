package main

import (
	"sync"

	"github.com/hajimehoshi/ebiten/v2/audio"
)

const (
	audioSampleRate = 48000
	// Length of one movement tick in frames, about 25 ms.
	stepTickFrames = 1200
)

// stepTickStream synthesizes a short decaying tick each time the player
// steps and streams silence otherwise. It implements the reader interface
// Ebiten's audio player pulls 16-bit stereo PCM from.
type stepTickStream struct {
	mu        sync.Mutex
	remaining int
	amp       float32
}

// Trigger restarts the tick envelope.
func (s *stepTickStream) Trigger() {
	s.mu.Lock()
	s.remaining = stepTickFrames
	s.amp = 0.35
	s.mu.Unlock()
}

func (s *stepTickStream) Read(p []byte) (int, error) {
	// Emit whole stereo frames only (4 bytes per frame).
	frameBytes := len(p) - len(p)%4
	if frameBytes == 0 {
		return 0, nil
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := 0; i < frameBytes; i += 4 {
		var v int16
		if s.remaining > 0 {
			v = int16(s.amp * 24000)
			s.amp *= 0.9975
			s.remaining--
		}
		p[i] = byte(v)
		p[i+1] = byte(v >> 8)
		p[i+2] = p[i]
		p[i+3] = p[i+1]
	}
	return frameBytes, nil
}

func (s *stepTickStream) Close() error { return nil }

// newStepAudio sets up the audio context and starts a player draining the
// tick stream. The caller must keep the player referenced for as long as the
// stream should stay audible.
func newStepAudio() (*stepTickStream, *audio.Player, error) {
	ctx := audio.NewContext(audioSampleRate)
	stream := &stepTickStream{}
	player, err := ctx.NewPlayer(stream)
	if err != nil {
		return nil, nil, err
	}
	player.Play()
	return stream, player, nil
}
