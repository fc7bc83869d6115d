package main

import (
	"flag"
	"log"

	"github.com/pkg/profile"
)

func main() {
	flag.Parse()

	if *profileFlag {
		defer profile.Start(profile.ProfilePath(".")).Stop()
	}

	wave1, wave2, cfg, err := loadInputs()
	if err != nil {
		log.Fatalf("loading inputs: %v", err)
	}

	driver, err := NewDriver(wave1, wave2, cfg)
	if err != nil {
		log.Fatalf("animation setup: %v", err)
	}

	if *terminalFlag {
		if err := runTerminal(driver); err != nil {
			log.Fatalf("terminal renderer: %v", err)
		}
		return
	}

	renderer, err := newWindowRenderer(driver, *enableAudioFlag)
	if err != nil {
		log.Fatalf("window setup: %v", err)
	}
	if err := renderer.Run(); err != nil {
		log.Fatalf("window renderer: %v", err)
	}
}

// loadInputs builds both waves and the animation tunables, either from the
// scene file or from the per-wave flags.
func loadInputs() (WaveParams, WaveParams, AnimationConfig, error) {
	if *sceneFlag != "" {
		return loadScene(*sceneFlag)
	}

	wave1, err := flagWave(*amp1Flag, *wavelen1, *freq1Flag, *phase1Flag, *dir1Flag, *pol1Flag)
	if err != nil {
		return WaveParams{}, WaveParams{}, AnimationConfig{}, err
	}
	wave2, err := flagWave(*amp2Flag, *wavelen2, *freq2Flag, *phase2Flag, *dir2Flag, *pol2Flag)
	if err != nil {
		return WaveParams{}, WaveParams{}, AnimationConfig{}, err
	}

	cfg := AnimationConfig{
		FrameCount:  *framesFlag,
		SampleCount: *samplesFlag,
		TimeScale:   *timeScaleFlag,
		Interval:    *intervalFlag,
	}
	return wave1, wave2, cfg, nil
}

// flagWave assembles one WaveParams from its flag values.
func flagWave(amp, wavelength, freq, phase float64, dir, pol string) (WaveParams, error) {
	prop, err := parsePropagation(dir)
	if err != nil {
		return WaveParams{}, err
	}
	polarity, err := parsePolarity(pol)
	if err != nil {
		return WaveParams{}, err
	}
	return WaveParams{
		Amplitude:   amp,
		Wavelength:  wavelength,
		Frequency:   freq,
		PhaseOffset: phase,
		Propagation: prop,
		Polarity:    polarity,
	}, nil
}
