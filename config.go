package main

import "time"

// Animation and rendering configuration constants used throughout the
// application. These values define the default frame clock, the spatial
// sampling density, and the audio behavior for the superposition animation.
const (
	defaultFrameCount    = 200
	defaultSampleCount   = 500
	defaultTimeScale     = 0.025
	defaultFrameInterval = 25 * time.Millisecond

	// cyclesShown controls the grid span: the animation always shows this
	// many full cycles of the longer of the two waves.
	cyclesShown = 8

	// axisHeadroom pads the vertical extent of every panel so traces never
	// touch the panel border.
	axisHeadroom = 1.5

	panelCount   = 4
	panelGapPx   = 12
	panelMarginX = 16
	windowW      = 900
	windowH      = 640
	windowScale  = 1

	audioSampleRate  = 48000
	pcm16MaxValue    = 32767
	audioBufferDelay = 80 * time.Millisecond
)
