package main

import "errors"

// Umbrella error categories. Every validation failure wraps exactly one of
// these plus a field-specific sentinel, so callers can match either axis
// with errors.Is.
var (
	// ErrDomain groups invalid wave-parameter values.
	ErrDomain = errors.New("interference: invalid wave parameter")

	// ErrConfig groups invalid animation configuration values.
	ErrConfig = errors.New("interference: invalid animation configuration")
)

// Field-specific sentinels for wave parameters.
var (
	// ErrAmplitudeNotFinite indicates a NaN or infinite amplitude.
	ErrAmplitudeNotFinite = errors.New("amplitude must be finite")

	// ErrWavelengthNotPositive indicates a wavelength of zero or below,
	// which would divide by zero in the wave-number computation.
	ErrWavelengthNotPositive = errors.New("wavelength must be positive")

	// ErrFrequencyNegative indicates a negative frequency. Reversing the
	// propagation direction expresses the same wave.
	ErrFrequencyNegative = errors.New("frequency must not be negative")

	// ErrPhaseNotFinite indicates a NaN or infinite phase offset.
	ErrPhaseNotFinite = errors.New("phase offset must be finite")

	// ErrBadPropagation indicates a propagation value outside Right/Left.
	ErrBadPropagation = errors.New("unknown propagation direction")

	// ErrBadPolarity indicates a polarity value outside Positive/Negative.
	ErrBadPolarity = errors.New("unknown phase polarity")
)

// Field-specific sentinels for animation setup.
var (
	// ErrFrameCount indicates a frame count below one.
	ErrFrameCount = errors.New("frame count must be positive")

	// ErrSampleCount indicates a grid with fewer than two sample points.
	ErrSampleCount = errors.New("sample count must be at least 2")

	// ErrTimeScale indicates a zero or negative time scale.
	ErrTimeScale = errors.New("time scale must be positive")

	// ErrFrameInterval indicates a zero or negative inter-frame delay.
	ErrFrameInterval = errors.New("frame interval must be positive")
)

// ErrStopPlayback is returned by a Renderer to end playback cleanly; Play
// treats it as a normal stop, not a failure.
var ErrStopPlayback = errors.New("interference: playback stopped by renderer")
