package main

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/hjson/hjson-go"
)

// sceneWave is the on-disk form of one wave description.
type sceneWave struct {
	Amplitude   float64 `json:"amplitude"`
	Wavelength  float64 `json:"wavelength"`
	Frequency   float64 `json:"frequency"`
	PhaseOffset float64 `json:"phase-offset"`
	Propagation string  `json:"propagation"`
	Polarity    string  `json:"polarity"`
}

// sceneFile is the on-disk form of a full animation: both waves plus the
// animation tunables. Zero tunables fall back to the defaults.
type sceneFile struct {
	Wave1      sceneWave `json:"wave-1"`
	Wave2      sceneWave `json:"wave-2"`
	Frames     int       `json:"frames"`
	Samples    int       `json:"samples"`
	TimeScale  float64   `json:"time-scale"`
	IntervalMS int       `json:"interval-ms"`
}

// loadScene reads an hjson scene file and returns both wave descriptions and
// the animation tunables. Validation of numeric ranges happens later in
// NewDriver; enum spellings are checked here since they never reach a
// WaveParams field otherwise.
func loadScene(path string) (wave1, wave2 WaveParams, cfg AnimationConfig, err error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return
	}
	var mdat map[string]interface{}
	if err = hjson.Unmarshal(raw, &mdat); err != nil {
		return
	}
	bytes, err := json.Marshal(mdat)
	if err != nil {
		return
	}
	var scene sceneFile
	if err = json.Unmarshal(bytes, &scene); err != nil {
		return
	}

	if wave1, err = scene.Wave1.params(); err != nil {
		err = fmt.Errorf("wave-1: %w", err)
		return
	}
	if wave2, err = scene.Wave2.params(); err != nil {
		err = fmt.Errorf("wave-2: %w", err)
		return
	}

	cfg = DefaultAnimationConfig()
	if scene.Frames != 0 {
		cfg.FrameCount = scene.Frames
	}
	if scene.Samples != 0 {
		cfg.SampleCount = scene.Samples
	}
	if scene.TimeScale != 0 {
		cfg.TimeScale = scene.TimeScale
	}
	if scene.IntervalMS != 0 {
		cfg.Interval = time.Duration(scene.IntervalMS) * time.Millisecond
	}
	return
}

// params converts the on-disk wave form into WaveParams.
func (w sceneWave) params() (WaveParams, error) {
	prop, err := parsePropagation(w.Propagation)
	if err != nil {
		return WaveParams{}, err
	}
	pol, err := parsePolarity(w.Polarity)
	if err != nil {
		return WaveParams{}, err
	}
	return WaveParams{
		Amplitude:   w.Amplitude,
		Wavelength:  w.Wavelength,
		Frequency:   w.Frequency,
		PhaseOffset: w.PhaseOffset,
		Propagation: prop,
		Polarity:    pol,
	}, nil
}

// parsePropagation maps "right"/"left" to the enum. The empty string means
// the field was omitted and defaults to right.
func parsePropagation(s string) (Propagation, error) {
	switch strings.ToLower(s) {
	case "", "right":
		return PropagateRight, nil
	case "left":
		return PropagateLeft, nil
	}
	return 0, fmt.Errorf("%w: %w (got %q)", ErrDomain, ErrBadPropagation, s)
}

// parsePolarity maps "positive"/"negative" to the enum. The empty string
// means the field was omitted and defaults to positive.
func parsePolarity(s string) (Polarity, error) {
	switch strings.ToLower(s) {
	case "", "positive":
		return PolarityPositive, nil
	case "negative":
		return PolarityNegative, nil
	}
	return 0, fmt.Errorf("%w: %w (got %q)", ErrDomain, ErrBadPolarity, s)
}
