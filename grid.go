package main

// newSampleGrid returns count evenly spaced positions spanning cyclesShown
// full cycles of the longer wave. The first point is exactly 0 and the last
// exactly the span, so endpoint drift from repeated float addition never
// accumulates. The caller validates count >= 2 and maxWavelength > 0.
func newSampleGrid(maxWavelength float64, count int) []float64 {
	span := cyclesShown * maxWavelength
	step := span / float64(count-1)
	grid := make([]float64, count)
	for i := range grid {
		grid[i] = float64(i) * step
	}
	grid[count-1] = span
	return grid
}
