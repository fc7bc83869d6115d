package main

import (
	"errors"
	"fmt"
	"math"
	"time"
)

// AnimationConfig gathers the tunable inputs of one superposition run. All
// fields are plain values; there is no environment or file-based state.
type AnimationConfig struct {
	// FrameCount is the number of frames in one animation cycle.
	FrameCount int

	// SampleCount is the number of grid positions each wave is sampled at.
	SampleCount int

	// TimeScale is the simulated seconds advanced per frame, before
	// normalization by the faster wave's frequency.
	TimeScale float64

	// Interval is the wall-clock delay between frames during playback.
	Interval time.Duration
}

// DefaultAnimationConfig returns the reference tunables: 200 frames, 500
// samples, 0.025 s/frame, 25 ms between frames.
func DefaultAnimationConfig() AnimationConfig {
	return AnimationConfig{
		FrameCount:  defaultFrameCount,
		SampleCount: defaultSampleCount,
		TimeScale:   defaultTimeScale,
		Interval:    defaultFrameInterval,
	}
}

// validate reports the first invalid tunable, wrapped with ErrConfig.
func (c AnimationConfig) validate() error {
	if c.FrameCount <= 0 {
		return fmt.Errorf("%w: %w (got %d)", ErrConfig, ErrFrameCount, c.FrameCount)
	}
	if c.SampleCount < 2 {
		return fmt.Errorf("%w: %w (got %d)", ErrConfig, ErrSampleCount, c.SampleCount)
	}
	if math.IsNaN(c.TimeScale) || c.TimeScale <= 0 {
		return fmt.Errorf("%w: %w (got %v)", ErrConfig, ErrTimeScale, c.TimeScale)
	}
	if c.Interval <= 0 {
		return fmt.Errorf("%w: %w (got %v)", ErrConfig, ErrFrameInterval, c.Interval)
	}
	return nil
}

// Frame holds one animation tick: the simulated time and the three
// displacement arrays sampled over the grid. Frames are value snapshots
// with fresh arrays; the driver retains no history across ticks.
type Frame struct {
	Index     int
	Time      float64
	Wave1     []float64
	Wave2     []float64
	Resultant []float64
}

// AxisLimits carries the vertical half-extent of each panel. The resultant
// limit is the theoretical maximum of the sum, A1+A2, even though that peak
// is only reached at specific phase alignments.
type AxisLimits struct {
	Wave1     float64
	Wave2     float64
	Overlay   float64
	Resultant float64
}

// Driver orchestrates the discrete time sequence: it samples both waves over
// the shared grid each frame, sums them elementwise, and hands the arrays to
// a Renderer in strictly increasing frame order. The frame sequence is
// infinite; the index recycles modulo the frame count.
type Driver struct {
	wave1, wave2 WaveParams
	grid         []float64
	frameCount   int
	timeStep     float64
	interval     time.Duration
	next         int
}

// NewDriver validates both waves and the animation tunables, then derives
// the immutable sample grid. No frame state exists until the first call to
// Next or ComputeFrame, so invalid input never produces a partial animation.
func NewDriver(wave1, wave2 WaveParams, cfg AnimationConfig) (*Driver, error) {
	if err := wave1.Validate(); err != nil {
		return nil, fmt.Errorf("wave 1: %w", err)
	}
	if err := wave2.Validate(); err != nil {
		return nil, fmt.Errorf("wave 2: %w", err)
	}
	if err := cfg.validate(); err != nil {
		return nil, err
	}

	// Normalizing by the faster frequency keeps the apparent oscillation
	// rate comparable across parameter choices. Two static waves (f1=f2=0)
	// keep the raw scale.
	timeStep := cfg.TimeScale
	if maxFreq := math.Max(wave1.Frequency, wave2.Frequency); maxFreq > 0 {
		timeStep /= maxFreq
	}

	return &Driver{
		wave1:      wave1,
		wave2:      wave2,
		grid:       newSampleGrid(math.Max(wave1.Wavelength, wave2.Wavelength), cfg.SampleCount),
		frameCount: cfg.FrameCount,
		timeStep:   timeStep,
		interval:   cfg.Interval,
	}, nil
}

// Grid returns the shared sample positions. Callers must not mutate it.
func (d *Driver) Grid() []float64 { return d.grid }

// FrameCount returns the number of frames in one animation cycle.
func (d *Driver) FrameCount() int { return d.frameCount }

// Interval returns the configured wall-clock delay between frames.
func (d *Driver) Interval() time.Duration { return d.interval }

// FrameTime maps a frame index to simulated time.
func (d *Driver) FrameTime(n int) float64 { return float64(n) * d.timeStep }

// AxisLimits returns the per-panel vertical extents: each wave's own
// amplitude for its panel, the larger amplitude for the overlay, and the
// amplitude sum for the resultant, all padded by axisHeadroom.
func (d *Driver) AxisLimits() AxisLimits {
	a1 := math.Abs(d.wave1.Amplitude)
	a2 := math.Abs(d.wave2.Amplitude)
	return AxisLimits{
		Wave1:     axisHeadroom * a1,
		Wave2:     axisHeadroom * a2,
		Overlay:   axisHeadroom * math.Max(a1, a2),
		Resultant: axisHeadroom * (a1 + a2),
	}
}

// ComputeFrame evaluates both waves at frame n and returns the snapshot with
// the elementwise sum. Arrays are freshly allocated each call.
func (d *Driver) ComputeFrame(n int) Frame {
	t := d.FrameTime(n)
	f := Frame{
		Index:     n,
		Time:      t,
		Wave1:     make([]float64, len(d.grid)),
		Wave2:     make([]float64, len(d.grid)),
		Resultant: make([]float64, len(d.grid)),
	}
	d.wave1.evaluateInto(f.Wave1, d.grid, t)
	d.wave2.evaluateInto(f.Wave2, d.grid, t)
	for i := range f.Resultant {
		f.Resultant[i] = f.Wave1[i] + f.Wave2[i]
	}
	return f
}

// Next returns the next frame of the infinite sequence, wrapping the index
// modulo the frame count. Renderers pull at their own cadence.
func (d *Driver) Next() Frame {
	f := d.ComputeFrame(d.next)
	d.next = (d.next + 1) % d.frameCount
	return f
}

// Rewind restarts the sequence at frame 0.
func (d *Driver) Rewind() { d.next = 0 }

// Play drives r cooperatively: Init once, then one frame per interval tick
// in strictly increasing wrapped order. It returns when done is closed, when
// r fails, or with nil when r returns ErrStopPlayback. Cancellation needs no
// rollback since frames carry no state beyond their own arrays.
func (d *Driver) Play(r Renderer, done <-chan struct{}) error {
	if err := r.Init(d.grid, d.AxisLimits()); err != nil {
		return err
	}
	ticker := time.NewTicker(d.interval)
	defer ticker.Stop()
	for {
		select {
		case <-done:
			return nil
		case <-ticker.C:
			if err := r.RenderFrame(d.Next()); err != nil {
				if errors.Is(err, ErrStopPlayback) {
					return nil
				}
				return err
			}
		}
	}
}
