package main

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeScene(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "scene.hjson")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
	return path
}

// TestLoadSceneFull round-trips a complete hjson scene, comments included.
func TestLoadSceneFull(t *testing.T) {
	path := writeScene(t, `
{
  # two waves beating against each other
  wave-1: {
    amplitude: 5
    wavelength: 4
    frequency: 10
    phase-offset: 0.5
    propagation: right
    polarity: positive
  }
  wave-2: {
    amplitude: 5
    wavelength: 5
    frequency: 20
    propagation: left
    polarity: negative
  }
  frames: 100
  samples: 250
  time-scale: 0.05
  interval-ms: 40
}
`)

	wave1, wave2, cfg, err := loadScene(path)
	require.NoError(t, err)

	assert.Equal(t, WaveParams{Amplitude: 5, Wavelength: 4, Frequency: 10, PhaseOffset: 0.5}, wave1)
	assert.Equal(t, WaveParams{
		Amplitude:   5,
		Wavelength:  5,
		Frequency:   20,
		Propagation: PropagateLeft,
		Polarity:    PolarityNegative,
	}, wave2)
	assert.Equal(t, AnimationConfig{
		FrameCount:  100,
		SampleCount: 250,
		TimeScale:   0.05,
		Interval:    40 * time.Millisecond,
	}, cfg)
}

// TestLoadSceneDefaults checks that omitted tunables and enum fields fall
// back to the reference defaults.
func TestLoadSceneDefaults(t *testing.T) {
	path := writeScene(t, `
{
  wave-1: { amplitude: 1, wavelength: 2, frequency: 3 }
  wave-2: { amplitude: 4, wavelength: 5, frequency: 6 }
}
`)

	wave1, wave2, cfg, err := loadScene(path)
	require.NoError(t, err)
	assert.Equal(t, PropagateRight, wave1.Propagation)
	assert.Equal(t, PolarityPositive, wave2.Polarity)
	assert.Equal(t, DefaultAnimationConfig(), cfg)
}

// TestLoadSceneBadEnum checks that unknown enum spellings are rejected, not
// silently defaulted.
func TestLoadSceneBadEnum(t *testing.T) {
	path := writeScene(t, `
{
  wave-1: { amplitude: 1, wavelength: 2, frequency: 3, propagation: up
  }
  wave-2: { amplitude: 4, wavelength: 5, frequency: 6 }
}
`)

	_, _, _, err := loadScene(path)
	assert.ErrorIs(t, err, ErrBadPropagation)
	assert.ErrorContains(t, err, "wave-1")
}

// TestLoadSceneMissingFile propagates the filesystem error.
func TestLoadSceneMissingFile(t *testing.T) {
	_, _, _, err := loadScene(filepath.Join(t.TempDir(), "nope.hjson"))
	assert.Error(t, err)
}

// TestParseEnums covers the accepted spellings and the rejection of
// anything else.
func TestParseEnums(t *testing.T) {
	prop, err := parsePropagation("LEFT")
	require.NoError(t, err)
	assert.Equal(t, PropagateLeft, prop)

	pol, err := parsePolarity("Negative")
	require.NoError(t, err)
	assert.Equal(t, PolarityNegative, pol)

	_, err = parsePropagation("sideways")
	assert.ErrorIs(t, err, ErrBadPropagation)
	_, err = parsePolarity("flipped")
	assert.ErrorIs(t, err, ErrBadPolarity)
}
