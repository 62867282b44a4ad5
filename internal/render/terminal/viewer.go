// Package terminal draws arena snapshots on a character grid.
package terminal

import (
	"context"
	"fmt"

	"github.com/gdamore/tcell/v2"

	"github.com/zeusync/rpsarena/internal/core/arena"
	"github.com/zeusync/rpsarena/internal/core/systems/physics"
)

var kindStyles = [...]tcell.Style{
	arena.Rock:     tcell.StyleDefault.Foreground(tcell.ColorSilver).Bold(true),
	arena.Paper:    tcell.StyleDefault.Foreground(tcell.ColorYellow).Bold(true),
	arena.Scissors: tcell.StyleDefault.Foreground(tcell.ColorRed).Bold(true),
}

var statusStyle = tcell.StyleDefault.Reverse(true)

// Viewer renders snapshots to a tcell screen. The bottom row is a status line;
// the rest of the screen is the canvas scaled to fit.
type Viewer struct {
	screen tcell.Screen
	canvas physics.Size
}

// NewScreen creates and initialises the terminal screen. Callers own Fini.
func NewScreen() (tcell.Screen, error) {
	screen, err := tcell.NewScreen()
	if err != nil {
		return nil, err
	}
	if err := screen.Init(); err != nil {
		return nil, err
	}
	screen.HideCursor()
	return screen, nil
}

func New(screen tcell.Screen, canvas physics.Size) *Viewer {
	return &Viewer{screen: screen, canvas: canvas}
}

// Render implements the runner's Renderer port.
func (v *Viewer) Render(s arena.Snapshot) error {
	width, height := v.screen.Size()
	rows := height - 1
	if width <= 0 || rows <= 0 {
		return nil
	}

	v.screen.Clear()
	for _, a := range s.Agents {
		col, row := v.cell(a.X, a.Y, width, rows)
		v.screen.SetContent(col, row, a.Kind.Rune(), nil, kindStyles[a.Kind])
	}
	v.drawStatus(s, width, height-1)
	v.screen.Show()
	return nil
}

// cell maps canvas coordinates to a grid cell, clamping agents that overshoot the edge.
func (v *Viewer) cell(x, y float64, cols, rows int) (int, int) {
	col := int(x / v.canvas.Width * float64(cols))
	row := int(y / v.canvas.Height * float64(rows))
	return clamp(col, cols-1), clamp(row, rows-1)
}

func clamp(n, hi int) int {
	if n < 0 {
		return 0
	}
	if n > hi {
		return hi
	}
	return n
}

func (v *Viewer) drawStatus(s arena.Snapshot, width, row int) {
	line := fmt.Sprintf(" tick %d  R:%d P:%d S:%d", s.Tick, s.Counts.Rock, s.Counts.Paper, s.Counts.Scissors)
	if k, ok := s.Counts.Leader(); ok && s.Counts.Of(k) == s.Counts.Total() {
		line += fmt.Sprintf("  %s holds the arena", k)
	}
	line += "  (q to quit)"
	for col := 0; col < width; col++ {
		r := ' '
		if col < len(line) {
			r = rune(line[col])
		}
		v.screen.SetContent(col, row, r, nil, statusStyle)
	}
}

// Run handles input until ctx is done or the user quits, in which case cancel is
// called. Resizes trigger a full redraw on the next render.
func (v *Viewer) Run(ctx context.Context, cancel context.CancelFunc) error {
	stop := context.AfterFunc(ctx, func() {
		_ = v.screen.PostEvent(tcell.NewEventInterrupt(nil))
	})
	defer stop()

	for {
		ev := v.screen.PollEvent()
		if ev == nil || ctx.Err() != nil {
			return nil
		}
		switch ev := ev.(type) {
		case *tcell.EventKey:
			if isQuit(ev) {
				cancel()
				return nil
			}
		case *tcell.EventResize:
			v.screen.Sync()
		}
	}
}

func isQuit(ev *tcell.EventKey) bool {
	switch ev.Key() {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return true
	case tcell.KeyRune:
		return ev.Rune() == 'q'
	}
	return false
}
