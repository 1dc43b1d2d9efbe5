// Package viewer paints a labelled rune grid on a terminal screen.
//
// Every region found by grid.Label gets a background colour from a small
// fixed palette, so neighbouring plots with different letters stand apart.
// The last screen row carries a one-line status. Drawing is clipped to the
// screen; nothing is scrolled.
package viewer

import (
	"fmt"

	"github.com/gdamore/tcell/v2"

	"github.com/katalvlaran/lvgrid/geometry"
	"github.com/katalvlaran/lvgrid/grid"
)

var palette = []tcell.Color{
	tcell.ColorMaroon,
	tcell.ColorGreen,
	tcell.ColorNavy,
	tcell.ColorOlive,
	tcell.ColorPurple,
	tcell.ColorTeal,
	tcell.ColorRed,
	tcell.ColorBlue,
}

// RegionStyle returns the cell style used for region id.
// Styles repeat every len(palette) regions.
func RegionStyle(id int) tcell.Style {
	if id < 0 {
		return tcell.StyleDefault
	}

	return tcell.StyleDefault.
		Foreground(tcell.ColorWhite).
		Background(palette[id%len(palette)])
}

// Status is the text written on the last screen row.
func Status(size geometry.Point, regions int) string {
	return fmt.Sprintf("%dx%d grid, %d regions. Press any key to quit.", size.X, size.Y, regions)
}

// Draw clears s and paints g with the region colours from ids, followed by
// the status line. ids must have the same size as g.
func Draw(s tcell.Screen, g *grid.Grid[rune], ids *grid.Grid[int], regions int) {
	s.Clear()
	w, h := s.Size()
	if h == 0 {
		return
	}
	rows := min(h-1, g.Height())
	cols := min(w, g.Width())
	for y := 0; y < rows; y++ {
		for x := 0; x < cols; x++ {
			p := geometry.Pt(x, y)
			r, _ := g.Get(p)
			id, _ := ids.Get(p)
			s.SetContent(x, y, r, nil, RegionStyle(id))
		}
	}

	for x, r := range []rune(Status(g.Size(), regions)) {
		if x >= w {
			break
		}
		s.SetContent(x, h-1, r, nil, tcell.StyleDefault.Reverse(true))
	}
}

// Run labels g, draws it on s and blocks until a key is pressed or the
// screen is finalised. Resize events trigger a full redraw.
// The caller owns s: it must be initialised and is not finalised here.
func Run(s tcell.Screen, g *grid.Grid[rune]) {
	ids, n := grid.Label(g)
	Draw(s, g, ids, n)
	s.Show()
	for {
		switch s.PollEvent().(type) {
		case nil:
			return
		case *tcell.EventResize:
			Draw(s, g, ids, n)
			s.Sync()
		case *tcell.EventKey:
			return
		}
	}
}
