package pathfinding

import (
	"strings"
	"testing"

	"schemroute/geometry"
)

// gridFromASCII builds a grid from an obstacle map where 'X' marks a blocked
// cell. The region's origin is (0,0) with one CellSize-sized cell per rune.
func gridFromASCII(art string) *Grid {
	lines := []string{}
	for _, line := range strings.Split(strings.TrimSpace(art), "\n") {
		lines = append(lines, strings.TrimSpace(line))
	}

	rows := len(lines)
	cols := len(lines[0])
	g := &Grid{
		Region:  geometry.Rect{X: 0, Y: 0, Width: float64(cols) * CellSize, Height: float64(rows) * CellSize},
		Cols:    cols,
		Rows:    rows,
		blocked: make([]bool, cols*rows),
	}
	for row, line := range lines {
		for col, r := range line {
			if r == 'X' {
				g.blocked[row*cols+col] = true
			}
		}
	}
	return g
}

func TestFindPathSimplePaths(t *testing.T) {
	tests := []struct {
		name     string
		art      string
		start    [2]int // start cell (col, row)
		end      [2]int
		maxCells int // optimality bound: expected path length in cells
	}{
		{
			name: "direct horizontal",
			art: `
				.....
				.....
				.....`,
			start:    [2]int{0, 1},
			end:      [2]int{4, 1},
			maxCells: 5,
		},
		{
			name: "L-shaped",
			art: `
				.....
				.....
				.....
				.....
				.....`,
			start:    [2]int{0, 0},
			end:      [2]int{4, 4},
			maxCells: 9,
		},
		{
			name: "around obstacle",
			art: `
				.....
				.....
				.XXX.
				.....
				.....`,
			start:    [2]int{0, 2},
			end:      [2]int{4, 2},
			maxCells: 7, // must step around the wall
		},
		{
			name: "through maze",
			art: `
				.XXX.
				...X.
				.X...
				.XXX.
				.....`,
			start:    [2]int{0, 0},
			end:      [2]int{4, 4},
			maxCells: 9,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g := gridFromASCII(tt.art)
			start := g.CellCenter(tt.start[0], tt.start[1])
			end := g.CellCenter(tt.end[0], tt.end[1])

			path, ok := FindPath(g, start, end)
			if !ok {
				t.Fatal("FindPath returned no path")
			}

			if path[0] != start {
				t.Errorf("path starts at %v, want %v", path[0], start)
			}
			if path[len(path)-1] != end {
				t.Errorf("path ends at %v, want %v", path[len(path)-1], end)
			}
			if len(path) != tt.maxCells {
				t.Errorf("path length = %d cells, want %d (optimal)", len(path), tt.maxCells)
			}

			// Consecutive points must be exactly one cell apart on one axis.
			for i := 1; i < len(path); i++ {
				d := geometry.ManhattanDistance(path[i-1], path[i])
				if d != CellSize {
					t.Errorf("step %d is not a single cell move: %v -> %v", i, path[i-1], path[i])
				}
			}

			// No point may land in a blocked cell.
			for _, p := range path {
				col, row := g.CellAt(p)
				if g.Blocked(col, row) {
					t.Errorf("path passes through blocked cell at %v", p)
				}
			}
		})
	}
}

func TestFindPathNoPath(t *testing.T) {
	tests := []struct {
		name  string
		art   string
		start [2]int
		end   [2]int
	}{
		{
			name: "walled off",
			art: `
				..X..
				..X..
				..X..`,
			start: [2]int{0, 1},
			end:   [2]int{4, 1},
		},
		{
			name: "end blocked",
			art: `
				.....
				...X.
				.....`,
			start: [2]int{0, 1},
			end:   [2]int{3, 1},
		},
		{
			name: "start blocked",
			art: `
				.....
				.X...
				.....`,
			start: [2]int{1, 1},
			end:   [2]int{4, 1},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g := gridFromASCII(tt.art)
			start := g.CellCenter(tt.start[0], tt.start[1])
			end := g.CellCenter(tt.end[0], tt.end[1])

			if _, ok := FindPath(g, start, end); ok {
				t.Error("expected no path")
			}
		})
	}
}

func TestFindPathEndpointOutsideRegion(t *testing.T) {
	g := gridFromASCII(`
		...
		...`)

	inside := g.CellCenter(0, 0)
	outside := geometry.Point{X: -50, Y: -50}

	if _, ok := FindPath(g, inside, outside); ok {
		t.Error("expected failure for endpoint outside the grid region")
	}
	if _, ok := FindPath(g, outside, inside); ok {
		t.Error("expected failure for start outside the grid region")
	}
}

func TestFindPathSameCell(t *testing.T) {
	g := gridFromASCII(`
		...
		...`)

	p := g.CellCenter(1, 1)
	path, ok := FindPath(g, p, geometry.Point{X: p.X + 2, Y: p.Y - 2})
	if !ok {
		t.Fatal("expected a path within one cell")
	}
	if len(path) != 1 {
		t.Errorf("same-cell path has %d points, want 1", len(path))
	}
}

func TestFindPathDeterministic(t *testing.T) {
	art := `
		.......
		..XX...
		..XX...
		.......`
	g := gridFromASCII(art)
	start := g.CellCenter(0, 2)
	end := g.CellCenter(6, 1)

	first, ok := FindPath(g, start, end)
	if !ok {
		t.Fatal("no path")
	}
	for i := 0; i < 10; i++ {
		again, ok := FindPath(g, start, end)
		if !ok {
			t.Fatal("no path on repeat run")
		}
		if len(again) != len(first) {
			t.Fatalf("run %d: path length changed: %d vs %d", i, len(again), len(first))
		}
		for j := range again {
			if again[j] != first[j] {
				t.Fatalf("run %d: path diverged at %d", i, j)
			}
		}
	}
}

func BenchmarkFindPathDenseField(b *testing.B) {
	// 40x40 grid with a staggered field of blocks.
	var sb strings.Builder
	for row := 0; row < 40; row++ {
		for col := 0; col < 40; col++ {
			if row%4 == 2 && col%6 != 0 {
				sb.WriteByte('X')
			} else {
				sb.WriteByte('.')
			}
		}
		sb.WriteByte('\n')
	}
	g := gridFromASCII(sb.String())
	start := g.CellCenter(0, 0)
	end := g.CellCenter(39, 39)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, ok := FindPath(g, start, end); !ok {
			b.Fatal("no path")
		}
	}
}
