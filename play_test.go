package main

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// recordingRenderer captures the playback protocol: one Init, then frame
// indices in delivery order. After stopAfter frames it asks Play to stop.
type recordingRenderer struct {
	initCalls int
	grid      []float64
	limits    AxisLimits
	indices   []int
	stopAfter int
	failWith  error
}

func (r *recordingRenderer) Init(grid []float64, limits AxisLimits) error {
	r.initCalls++
	r.grid = grid
	r.limits = limits
	return nil
}

func (r *recordingRenderer) RenderFrame(f Frame) error {
	r.indices = append(r.indices, f.Index)
	if r.failWith != nil && len(r.indices) == r.stopAfter {
		return r.failWith
	}
	if r.stopAfter > 0 && len(r.indices) >= r.stopAfter {
		return ErrStopPlayback
	}
	return nil
}

func playDriver(t *testing.T, frameCount int) *Driver {
	t.Helper()
	cfg := testConfig()
	cfg.FrameCount = frameCount
	wave := WaveParams{Amplitude: 1, Wavelength: 1, Frequency: 1}
	d, err := NewDriver(wave, wave, cfg)
	require.NoError(t, err)
	return d
}

// TestPlayDeliversFramesInOrder checks Init-then-frames ordering with no
// frame skipped or reordered, wrapping modulo the frame count.
func TestPlayDeliversFramesInOrder(t *testing.T) {
	d := playDriver(t, 4)
	r := &recordingRenderer{stopAfter: 10}

	err := d.Play(r, nil)
	require.NoError(t, err, "ErrStopPlayback is a clean stop")

	assert.Equal(t, 1, r.initCalls)
	assert.Equal(t, d.Grid(), r.grid)
	assert.Equal(t, d.AxisLimits(), r.limits)
	assert.Equal(t, []int{0, 1, 2, 3, 0, 1, 2, 3, 0, 1}, r.indices)
}

// TestPlayStopsOnDone checks the external cancellation path: the caller just
// stops requesting frames.
func TestPlayStopsOnDone(t *testing.T) {
	cfg := testConfig()
	cfg.FrameCount = 4
	cfg.Interval = time.Hour // never ticks; only the done signal can end Play
	wave := WaveParams{Amplitude: 1, Wavelength: 1, Frequency: 1}
	d, err := NewDriver(wave, wave, cfg)
	require.NoError(t, err)
	r := &recordingRenderer{}

	done := make(chan struct{})
	close(done)
	require.NoError(t, d.Play(r, done))
	assert.Equal(t, 1, r.initCalls, "Init still runs once before cancellation is observed")
	assert.Empty(t, r.indices)
}

// TestPlayPropagatesRendererError checks that a real renderer failure (as
// opposed to ErrStopPlayback) surfaces to the caller.
func TestPlayPropagatesRendererError(t *testing.T) {
	d := playDriver(t, 4)
	boom := errors.New("display lost")
	r := &recordingRenderer{stopAfter: 3, failWith: boom}

	err := d.Play(r, nil)
	assert.ErrorIs(t, err, boom)
	assert.Len(t, r.indices, 3)
}

// TestPlayHonorsInterval sanity-checks the cadence: ten 1 ms frames must
// take at least 10 ms of wall clock.
func TestPlayHonorsInterval(t *testing.T) {
	d := playDriver(t, 4)
	r := &recordingRenderer{stopAfter: 10}

	start := time.Now()
	require.NoError(t, d.Play(r, nil))
	assert.GreaterOrEqual(t, time.Since(start), 10*time.Millisecond)
}
