package main

import (
	"fmt"

	"github.com/gdamore/tcell/v2"

	"schemroute/geometry"
	"schemroute/obstacles"
	"schemroute/pathfinding"
	"schemroute/routing"
)

// demoObstacleCells is the footprint of an obstacle dropped in the demo, in
// terminal cells (each terminal cell maps to one grid cell).
const (
	demoObstacleCols = 8
	demoObstacleRows = 4
)

// demo holds the interactive session state. One terminal cell corresponds to
// one occupancy-grid cell, so what you see is exactly what the search sees.
type demo struct {
	screen tcell.Screen
	engine *routing.Engine

	cursorX, cursorY int
	start, end       *geometry.Point
	nextObstacle     int
	result           *routing.Result
}

// runInteractive launches the routing demo: move with arrows or hjkl, drop
// obstacles with o, set endpoints with s and e, clear with c, quit with q.
func runInteractive() error {
	screen, err := tcell.NewScreen()
	if err != nil {
		return err
	}
	if err := screen.Init(); err != nil {
		return err
	}
	defer screen.Fini()

	d := &demo{
		screen: screen,
		engine: routing.NewEngine(),
	}
	w, h := screen.Size()
	d.cursorX, d.cursorY = w/2, h/2

	for {
		d.draw()
		ev := screen.PollEvent()
		switch ev := ev.(type) {
		case *tcell.EventResize:
			screen.Sync()
		case *tcell.EventKey:
			if d.handleKey(ev) {
				return nil
			}
		}
	}
}

func (d *demo) handleKey(ev *tcell.EventKey) (quit bool) {
	switch {
	case ev.Key() == tcell.KeyEscape || ev.Rune() == 'q':
		return true
	case ev.Key() == tcell.KeyUp || ev.Rune() == 'k':
		d.cursorY--
	case ev.Key() == tcell.KeyDown || ev.Rune() == 'j':
		d.cursorY++
	case ev.Key() == tcell.KeyLeft || ev.Rune() == 'h':
		d.cursorX--
	case ev.Key() == tcell.KeyRight || ev.Rune() == 'l':
		d.cursorX++
	case ev.Rune() == 'o':
		d.dropObstacle()
	case ev.Rune() == 's':
		p := d.worldAtCursor()
		d.start = &p
		d.reroute()
	case ev.Rune() == 'e':
		p := d.worldAtCursor()
		d.end = &p
		d.reroute()
	case ev.Rune() == 'c':
		d.engine.Registry().Clear()
		d.reroute()
	}

	w, h := d.screen.Size()
	d.cursorX = clamp(d.cursorX, 0, w-1)
	d.cursorY = clamp(d.cursorY, 0, h-2) // bottom row is the status line
	return false
}

// worldAtCursor maps the cursor's terminal cell to the center of the matching
// world-space grid cell.
func (d *demo) worldAtCursor() geometry.Point {
	return geometry.Point{
		X: (float64(d.cursorX) + 0.5) * pathfinding.CellSize,
		Y: (float64(d.cursorY) + 0.5) * pathfinding.CellSize,
	}
}

func (d *demo) dropObstacle() {
	d.nextObstacle++
	d.engine.Registry().Add(obstacles.Obstacle{
		ID: fmt.Sprintf("u%d", d.nextObstacle),
		Bounds: geometry.Rect{
			X:      float64(d.cursorX) * pathfinding.CellSize,
			Y:      float64(d.cursorY) * pathfinding.CellSize,
			Width:  demoObstacleCols * pathfinding.CellSize,
			Height: demoObstacleRows * pathfinding.CellSize,
		},
		Type: obstacles.TypeComponent,
	})
	d.reroute()
}

func (d *demo) reroute() {
	if d.start == nil || d.end == nil {
		d.result = nil
		return
	}
	res := d.engine.RouteWire(*d.start, *d.end, routing.Options{
		AvoidObstacles: true,
		Optimize:       true,
	})
	d.result = &res
}

func (d *demo) draw() {
	d.screen.Clear()

	obstacleStyle := tcell.StyleDefault.Foreground(tcell.ColorYellow)
	wireStyle := tcell.StyleDefault.Foreground(tcell.ColorGreen)
	endpointStyle := tcell.StyleDefault.Foreground(tcell.ColorRed).Bold(true)
	statusStyle := tcell.StyleDefault.Foreground(tcell.ColorWhite)

	for _, o := range d.engine.Registry().All() {
		minC, minR := d.cellOf(geometry.Point{X: o.Bounds.X, Y: o.Bounds.Y})
		cols := int(o.Bounds.Width / pathfinding.CellSize)
		rows := int(o.Bounds.Height / pathfinding.CellSize)
		for r := 0; r < rows; r++ {
			for c := 0; c < cols; c++ {
				d.screen.SetContent(minC+c, minR+r, '#', nil, obstacleStyle)
			}
		}
	}

	if d.result != nil {
		for _, s := range d.result.Segments {
			d.drawSegment(s, wireStyle)
		}
	}

	if d.start != nil {
		c, r := d.cellOf(*d.start)
		d.screen.SetContent(c, r, 'S', nil, endpointStyle)
	}
	if d.end != nil {
		c, r := d.cellOf(*d.end)
		d.screen.SetContent(c, r, 'E', nil, endpointStyle)
	}

	status := "s:start e:end o:obstacle c:clear q:quit"
	if d.result != nil {
		status = fmt.Sprintf("length=%.0f bends=%d quality=%.2f | %s",
			d.result.TotalLength, d.result.BendCount, d.result.Quality, status)
	}
	_, h := d.screen.Size()
	for i, r := range status {
		d.screen.SetContent(i, h-1, r, nil, statusStyle)
	}

	d.screen.ShowCursor(d.cursorX, d.cursorY)
	d.screen.Show()
}

func (d *demo) drawSegment(s routing.Segment, style tcell.Style) {
	c1, r1 := d.cellOf(s.Start)
	c2, r2 := d.cellOf(s.End)

	if s.Orientation == geometry.Horizontal {
		if c1 > c2 {
			c1, c2 = c2, c1
		}
		for c := c1; c <= c2; c++ {
			d.screen.SetContent(c, r1, '-', nil, style)
		}
		return
	}
	if r1 > r2 {
		r1, r2 = r2, r1
	}
	for r := r1; r <= r2; r++ {
		d.screen.SetContent(c1, r, '|', nil, style)
	}
}

// cellOf maps a world-space point to its terminal cell.
func (d *demo) cellOf(p geometry.Point) (col, row int) {
	return int(p.X / pathfinding.CellSize), int(p.Y / pathfinding.CellSize)
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
