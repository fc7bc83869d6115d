package main

import "flag"

// Command-line flags that control the wave parameters, animation tunables,
// and optional runtime behavior. The defaults describe a standing-wave demo:
// two identical waves traveling in opposite directions.
var (
	// sceneFlag points at an optional hjson scene file; when set it replaces
	// the per-wave flags below.
	sceneFlag = flag.String("scene", "", "path to an hjson scene file describing both waves")

	// terminalFlag renders in the terminal with tcell instead of opening a window.
	terminalFlag = flag.Bool("terminal", false, "render in the terminal instead of opening a window")

	// debugFlag enables the FPS and frame-index overlay in the windowed renderer.
	debugFlag = flag.Bool("debug", false, "show FPS and frame timing overlay")

	// enableAudioFlag sonifies the resultant displacement at the grid midpoint.
	enableAudioFlag = flag.Bool("enable-audio", false, "play the resultant displacement at the grid midpoint as audio")

	// profileFlag writes a CPU profile for the duration of the run.
	profileFlag = flag.Bool("profile", false, "write a CPU profile to the working directory")

	framesFlag    = flag.Int("frames", defaultFrameCount, "frames per animation cycle")
	samplesFlag   = flag.Int("samples", defaultSampleCount, "sample points across the grid")
	timeScaleFlag = flag.Float64("time-scale", defaultTimeScale, "seconds of simulated time per frame, before frequency normalization")
	intervalFlag  = flag.Duration("interval", defaultFrameInterval, "wall-clock delay between frames")

	amp1Flag   = flag.Float64("a1", 10, "wave 1 amplitude")
	wavelen1   = flag.Float64("l1", 10, "wave 1 wavelength")
	freq1Flag  = flag.Float64("f1", 2, "wave 1 frequency (Hz)")
	phase1Flag = flag.Float64("p1", 0, "wave 1 phase offset (radians)")
	dir1Flag   = flag.String("dir1", "right", "wave 1 propagation direction (right|left)")
	pol1Flag   = flag.String("pol1", "positive", "wave 1 phase polarity (positive|negative)")

	amp2Flag   = flag.Float64("a2", 10, "wave 2 amplitude")
	wavelen2   = flag.Float64("l2", 10, "wave 2 wavelength")
	freq2Flag  = flag.Float64("f2", 2, "wave 2 frequency (Hz)")
	phase2Flag = flag.Float64("p2", 0, "wave 2 phase offset (radians)")
	dir2Flag   = flag.String("dir2", "left", "wave 2 propagation direction (right|left)")
	pol2Flag   = flag.String("pol2", "positive", "wave 2 phase polarity (positive|negative)")
)
