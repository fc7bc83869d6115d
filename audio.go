package main

import (
	"sync"
)

// probeStream sonifies the resultant displacement at the grid midpoint. The
// driver sets one normalized sample per frame; Ebiten's audio player drains
// the stream as stereo 16-bit PCM, holding the latest value between frames.
type probeStream struct {
	mu     sync.Mutex
	sample float32
	dc     float32
}

func newProbeStream() *probeStream {
	return &probeStream{}
}

// SetSample stores the latest normalized displacement, clamped to [-1, 1].
func (s *probeStream) SetSample(v float32) {
	if v > 1 {
		v = 1
	} else if v < -1 {
		v = -1
	}
	s.mu.Lock()
	// Simple AC coupling: remove a slowly varying DC component.
	const alpha = 0.001
	s.dc += alpha * (v - s.dc)
	s.sample = v - s.dc
	s.mu.Unlock()
}

func (s *probeStream) Read(p []byte) (int, error) {
	if len(p) == 0 {
		return 0, nil
	}
	// Ensure we generate whole stereo frames (4 bytes per frame).
	frameBytes := len(p) - len(p)%4
	if frameBytes == 0 {
		return 0, nil
	}
	s.mu.Lock()
	sample := s.sample
	s.mu.Unlock()

	for i := 0; i < frameBytes; i += 4 {
		v := int16(sample * pcm16MaxValue)
		p[i] = byte(v)
		p[i+1] = byte(v >> 8)
		p[i+2] = p[i]
		p[i+3] = p[i+1]
	}
	return frameBytes, nil
}

func (s *probeStream) Close() error {
	return nil
}
