package main

// Renderer consumes computed frames. The driver calls Init exactly once
// before frame 0 and RenderFrame once per frame in increasing index order;
// implementations own all display state and must not block longer than the
// frame interval allows. Returning ErrStopPlayback from RenderFrame ends
// playback without error.
type Renderer interface {
	Init(grid []float64, limits AxisLimits) error
	RenderFrame(f Frame) error
}
