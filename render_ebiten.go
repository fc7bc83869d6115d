package main

import (
	"fmt"
	"image/color"
	"math"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/audio"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

var (
	axisColor      = color.RGBA{60, 60, 60, 255}
	wave1Color     = color.RGBA{80, 200, 255, 255}
	wave2Color     = color.RGBA{255, 170, 60, 255}
	resultantColor = color.RGBA{120, 255, 120, 255}
)

// windowRenderer animates the four panels in an Ebiten window. Ebiten owns
// the loop, so the renderer pulls one frame from the driver per tick instead
// of being driven through Play.
type windowRenderer struct {
	driver *Driver
	limits AxisLimits
	frame  Frame

	// xs maps each grid index to its pixel column, computed once since the
	// grid is immutable for the run.
	xs []int

	audioStream *probeStream
	audioPlayer *audio.Player
}

// newWindowRenderer prepares panel geometry and, when requested, the audio
// pipeline that sonifies the resultant trace.
func newWindowRenderer(d *Driver, enableAudio bool) (*windowRenderer, error) {
	grid := d.Grid()
	plotW := windowW - 2*panelMarginX
	xs := make([]int, len(grid))
	span := grid[len(grid)-1] - grid[0]
	for i, x := range grid {
		xs[i] = panelMarginX + int(math.Round((x-grid[0])/span*float64(plotW-1)))
	}
	r := &windowRenderer{
		driver: d,
		limits: d.AxisLimits(),
		xs:     xs,
	}
	if enableAudio {
		ctx := audio.NewContext(audioSampleRate)
		r.audioStream = newProbeStream()
		player, err := ctx.NewPlayer(r.audioStream)
		if err != nil {
			return nil, fmt.Errorf("audio player: %w", err)
		}
		player.SetBufferSize(audioBufferDelay)
		player.Play()
		r.audioPlayer = player
	}
	return r, nil
}

// Run opens the window and blocks until it is closed.
func (r *windowRenderer) Run() error {
	tps := int(math.Round(float64(time.Second) / float64(r.driver.Interval())))
	if tps < 1 {
		tps = 1
	}
	ebiten.SetTPS(tps)
	ebiten.SetWindowSize(windowW*windowScale, windowH*windowScale)
	ebiten.SetWindowTitle("Two-Wave Superposition")
	return ebiten.RunGame(r)
}

// Update pulls the next frame and feeds the audio probe.
func (r *windowRenderer) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyR) {
		r.driver.Rewind()
	}
	r.frame = r.driver.Next()
	if r.audioStream != nil && r.limits.Resultant > 0 {
		mid := len(r.frame.Resultant) / 2
		r.audioStream.SetSample(float32(r.frame.Resultant[mid] / r.limits.Resultant))
	}
	return nil
}

// Draw renders the four stacked panels: each wave alone, both overlaid, and
// their sum.
func (r *windowRenderer) Draw(screen *ebiten.Image) {
	if r.frame.Wave1 == nil {
		return
	}
	r.drawPanel(screen, 0, r.limits.Wave1, trace{r.frame.Wave1, wave1Color})
	r.drawPanel(screen, 1, r.limits.Wave2, trace{r.frame.Wave2, wave2Color})
	r.drawPanel(screen, 2, r.limits.Overlay, trace{r.frame.Wave1, wave1Color}, trace{r.frame.Wave2, wave2Color})
	r.drawPanel(screen, 3, r.limits.Resultant, trace{r.frame.Resultant, resultantColor})

	if *debugFlag {
		msg := fmt.Sprintf("FPS: %.1f\nTPS: %.1f\nFrame: %d/%d (t=%.4f)",
			ebiten.ActualFPS(), ebiten.ActualTPS(), r.frame.Index, r.driver.FrameCount(), r.frame.Time)
		ebitenutil.DebugPrint(screen, msg)
	}
}

// Layout reports the logical screen size used by Ebiten.
func (r *windowRenderer) Layout(_, _ int) (int, int) { return windowW, windowH }

// trace pairs one displacement array with its display color.
type trace struct {
	ys  []float64
	clr color.RGBA
}

// drawPanel plots the axis midline plus the given traces into panel slot row.
func (r *windowRenderer) drawPanel(screen *ebiten.Image, row int, limit float64, traces ...trace) {
	if limit <= 0 {
		limit = 1 // zero-amplitude waves draw a flat trace on the axis
	}
	panelH := (windowH - (panelCount-1)*panelGapPx) / panelCount
	top := row * (panelH + panelGapPx)
	cy := top + panelH/2
	halfH := float64(panelH)/2 - 1

	drawLine(screen, panelMarginX, cy, windowW-panelMarginX, cy, axisColor)

	for _, tr := range traces {
		prevX, prevY := 0, 0
		for i, v := range tr.ys {
			px := r.xs[i]
			py := cy - int(math.Round(v/limit*halfH))
			if py < top {
				py = top
			} else if py > top+panelH-1 {
				py = top + panelH - 1
			}
			if i > 0 {
				drawLine(screen, prevX, prevY, px, py, tr.clr)
			}
			prevX, prevY = px, py
		}
	}
}

// drawLine plots a line segment using Bresenham's integer algorithm.
func drawLine(screen *ebiten.Image, x0, y0, x1, y1 int, clr color.Color) {
	dx := int(math.Abs(float64(x1 - x0)))
	sx := -1
	if x0 < x1 {
		sx = 1
	}
	dy := -int(math.Abs(float64(y1 - y0)))
	sy := -1
	if y0 < y1 {
		sy = 1
	}
	err := dx + dy
	for {
		if x0 >= 0 && x0 < windowW && y0 >= 0 && y0 < windowH {
			screen.Set(x0, y0, clr)
		}
		if x0 == x1 && y0 == y1 {
			break
		}
		e2 := 2 * err
		if e2 >= dy {
			err += dy
			x0 += sx
		}
		if e2 <= dx {
			err += dx
			y0 += sy
		}
	}
}
