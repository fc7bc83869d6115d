package main

import (
	"fmt"
	"math"
)

// Propagation selects the sign of the time term: a right-traveling wave is
// sin(kx - wt), a left-traveling wave sin(kx + wt).
type Propagation int

const (
	PropagateRight Propagation = iota
	PropagateLeft
)

// String returns the scene-file spelling of the direction.
func (p Propagation) String() string {
	switch p {
	case PropagateRight:
		return "right"
	case PropagateLeft:
		return "left"
	}
	return fmt.Sprintf("Propagation(%d)", int(p))
}

// timeSign returns the coefficient applied to wt inside the sine.
func (p Propagation) timeSign() float64 {
	if p == PropagateRight {
		return -1
	}
	return 1
}

// Polarity is an overall sign multiplier applied outside the sine. It
// mirrors the trace vertically and is independent of the travel direction.
type Polarity int

const (
	PolarityPositive Polarity = iota
	PolarityNegative
)

// String returns the scene-file spelling of the polarity.
func (p Polarity) String() string {
	switch p {
	case PolarityPositive:
		return "positive"
	case PolarityNegative:
		return "negative"
	}
	return fmt.Sprintf("Polarity(%d)", int(p))
}

func (p Polarity) sign() float64 {
	if p == PolarityNegative {
		return -1
	}
	return 1
}

// WaveParams describes one sinusoidal traveling wave. The value is immutable
// once constructed; all derived quantities are computed on demand.
type WaveParams struct {
	Amplitude   float64
	Wavelength  float64
	Frequency   float64
	PhaseOffset float64
	Propagation Propagation
	Polarity    Polarity
}

// Validate checks every field and reports the first violation. All failures
// wrap ErrDomain plus a field-specific sentinel.
func (p WaveParams) Validate() error {
	if math.IsNaN(p.Amplitude) || math.IsInf(p.Amplitude, 0) {
		return fmt.Errorf("%w: %w (got %v)", ErrDomain, ErrAmplitudeNotFinite, p.Amplitude)
	}
	if !(p.Wavelength > 0) {
		return fmt.Errorf("%w: %w (got %v)", ErrDomain, ErrWavelengthNotPositive, p.Wavelength)
	}
	if math.IsNaN(p.Frequency) || p.Frequency < 0 {
		return fmt.Errorf("%w: %w (got %v)", ErrDomain, ErrFrequencyNegative, p.Frequency)
	}
	if math.IsNaN(p.PhaseOffset) || math.IsInf(p.PhaseOffset, 0) {
		return fmt.Errorf("%w: %w (got %v)", ErrDomain, ErrPhaseNotFinite, p.PhaseOffset)
	}
	if p.Propagation != PropagateRight && p.Propagation != PropagateLeft {
		return fmt.Errorf("%w: %w (got %d)", ErrDomain, ErrBadPropagation, int(p.Propagation))
	}
	if p.Polarity != PolarityPositive && p.Polarity != PolarityNegative {
		return fmt.Errorf("%w: %w (got %d)", ErrDomain, ErrBadPolarity, int(p.Polarity))
	}
	return nil
}

// WaveNumber returns the spatial frequency 2π/λ.
func (p WaveParams) WaveNumber() float64 {
	return 2 * math.Pi / p.Wavelength
}

// AngularFrequency returns the temporal frequency 2π·f in radians/second.
func (p WaveParams) AngularFrequency() float64 {
	return 2 * math.Pi * p.Frequency
}

// Displacement returns the wave displacement at position x and time t.
func (p WaveParams) Displacement(x, t float64) float64 {
	phase := p.WaveNumber()*x + p.Propagation.timeSign()*p.AngularFrequency()*t + p.PhaseOffset
	return p.Polarity.sign() * p.Amplitude * math.Sin(phase)
}

// Evaluate samples the wave at time t over every position and returns a new
// slice of the same length. It validates the parameters first so an invalid
// wavelength fails before any array is produced. Evaluate is pure and safe
// to call concurrently.
func (p WaveParams) Evaluate(positions []float64, t float64) ([]float64, error) {
	if err := p.Validate(); err != nil {
		return nil, err
	}
	out := make([]float64, len(positions))
	p.evaluateInto(out, positions, t)
	return out, nil
}

// evaluateInto is the per-frame hot path; parameters are validated once at
// driver setup, not here. The phase offset term kx is hoisted so the inner
// loop is one multiply-add and one Sin per sample.
func (p WaveParams) evaluateInto(dst, positions []float64, t float64) {
	k := p.WaveNumber()
	timeTerm := p.Propagation.timeSign()*p.AngularFrequency()*t + p.PhaseOffset
	scale := p.Polarity.sign() * p.Amplitude
	for i, x := range positions {
		dst[i] = scale * math.Sin(k*x+timeTerm)
	}
}
