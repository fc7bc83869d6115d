package main

import (
	"fmt"
	"math"

	"github.com/gdamore/tcell/v2"
)

var (
	termAxisStyle      = tcell.StyleDefault.Foreground(tcell.NewRGBColor(80, 80, 80))
	termTitleStyle     = tcell.StyleDefault.Foreground(tcell.NewRGBColor(160, 160, 160))
	termStatusStyle    = tcell.StyleDefault.Foreground(tcell.NewRGBColor(120, 120, 120))
	termWave1Style     = tcell.StyleDefault.Foreground(tcell.NewRGBColor(80, 200, 255))
	termWave2Style     = tcell.StyleDefault.Foreground(tcell.NewRGBColor(255, 170, 60))
	termResultantStyle = tcell.StyleDefault.Foreground(tcell.NewRGBColor(120, 255, 120))
)

var termPanelTitles = [panelCount]string{"wave 1", "wave 2", "overlay", "resultant"}

// terminalRenderer plots the four panels as character cells. It implements
// Renderer and is driven by Driver.Play at the configured interval.
type terminalRenderer struct {
	screen tcell.Screen
	grid   []float64
	limits AxisLimits
}

// Init records the immutable grid and axis limits.
func (r *terminalRenderer) Init(grid []float64, limits AxisLimits) error {
	r.grid = grid
	r.limits = limits
	return nil
}

// RenderFrame redraws the whole screen for one frame. The screen size is
// re-read every frame so resizes need no special handling beyond Sync.
func (r *terminalRenderer) RenderFrame(f Frame) error {
	width, height := r.screen.Size()
	if width < 8 || height < panelCount*3+1 {
		return nil
	}
	r.screen.Clear()

	panelH := (height - 1) / panelCount
	r.drawPanel(0, panelH, width, r.limits.Wave1, termTrace{f.Wave1, termWave1Style})
	r.drawPanel(1, panelH, width, r.limits.Wave2, termTrace{f.Wave2, termWave2Style})
	r.drawPanel(2, panelH, width, r.limits.Overlay, termTrace{f.Wave1, termWave1Style}, termTrace{f.Wave2, termWave2Style})
	r.drawPanel(3, panelH, width, r.limits.Resultant, termTrace{f.Resultant, termResultantStyle})

	status := fmt.Sprintf(" frame %3d  t=%.4f  [q] quit", f.Index, f.Time)
	drawText(r.screen, 0, height-1, status, termStatusStyle)

	r.screen.Show()
	return nil
}

// termTrace pairs one displacement array with its cell style.
type termTrace struct {
	ys    []float64
	style tcell.Style
}

// drawPanel draws the title row, the axis midline, and one cell per column
// for each trace, sampling the nearest grid point per column.
func (r *terminalRenderer) drawPanel(row, panelH, width int, limit float64, traces ...termTrace) {
	if limit <= 0 {
		limit = 1 // zero-amplitude waves draw a flat trace on the axis
	}
	top := row * panelH
	drawText(r.screen, 1, top, termPanelTitles[row], termTitleStyle)

	plotTop := top + 1
	plotH := panelH - 1
	cy := plotTop + plotH/2
	for x := 0; x < width; x++ {
		r.screen.SetContent(x, cy, tcell.RuneHLine, nil, termAxisStyle)
	}

	halfH := float64(plotH)/2 - 0.5
	n := len(r.grid)
	for _, tr := range traces {
		for x := 0; x < width; x++ {
			i := x * (n - 1) / (width - 1)
			y := cy - int(math.Round(tr.ys[i]/limit*halfH))
			if y < plotTop {
				y = plotTop
			} else if y > plotTop+plotH-1 {
				y = plotTop + plotH - 1
			}
			r.screen.SetContent(x, y, '•', nil, tr.style)
		}
	}
}

// drawText writes a string left to right starting at (x, y).
func drawText(screen tcell.Screen, x, y int, text string, style tcell.Style) {
	for i, ch := range text {
		screen.SetContent(x+i, y, ch, nil, style)
	}
}

// runTerminal owns the tcell screen lifecycle: it plays the animation while
// a background goroutine turns quit keys into a done signal.
func runTerminal(d *Driver) error {
	screen, err := tcell.NewScreen()
	if err != nil {
		return err
	}
	if err := screen.Init(); err != nil {
		return err
	}
	defer screen.Fini()
	screen.HideCursor()

	done := make(chan struct{})
	go func() {
		defer close(done)
		for {
			switch ev := screen.PollEvent().(type) {
			case *tcell.EventKey:
				if ev.Key() == tcell.KeyEscape || ev.Key() == tcell.KeyCtrlC ||
					(ev.Key() == tcell.KeyRune && ev.Rune() == 'q') {
					return
				}
			case *tcell.EventResize:
				screen.Sync()
			case nil:
				return
			}
		}
	}()

	return d.Play(&terminalRenderer{screen: screen}, done)
}
