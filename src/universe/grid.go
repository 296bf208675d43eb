package universe

import (
	"fmt"

	"github.com/bits-and-blooms/bitset"
)

// Grid is the bounded field where cells are living
// cells are bit-packed row-major: index = x + width*y
// everything outside the field is a permanent dead border
type Grid struct {
	width   int
	height  int
	cur     *bitset.BitSet
	next    *bitset.BitSet
	changed bool
}

// NewGrid allocates the grid with all cells dead
func NewGrid(width int, height int) *Grid {
	if width <= 0 || height <= 0 {
		panic(fmt.Sprintf("universe: invalid grid size %vx%v", width, height))
	}
	n := uint(width * height)
	return &Grid{
		width:  width,
		height: height,
		cur:    bitset.New(n),
		next:   bitset.New(n),
	}
}

// Width returns the grid width
func (g *Grid) Width() int {
	return g.width
}

// Height returns the grid height
func (g *Grid) Height() int {
	return g.height
}

// index normalizes the coordinates, ok is false for anything outside the field
func (g *Grid) index(x int, y int) (i uint, ok bool) {
	if x < 0 || y < 0 || x >= g.width || y >= g.height {
		return 0, false
	}
	return uint(x + g.width*y), true
}

// SetAlive makes the cell at x,y alive, out of range coordinates are ignored
func (g *Grid) SetAlive(x int, y int) {
	if i, ok := g.index(x, y); ok {
		g.cur.Set(i)
	}
}

// SetDead kills the cell at x,y, out of range coordinates are ignored
func (g *Grid) SetDead(x int, y int) {
	if i, ok := g.index(x, y); ok {
		g.cur.Clear(i)
	}
}

// IsAlive reports the cell state, cells outside the field are always dead
func (g *Grid) IsAlive(x int, y int) bool {
	i, ok := g.index(x, y)
	return ok && g.cur.Test(i)
}

// Settle makes alive every cell from the list of [x,y] coordinates
func (g *Grid) Settle(vc [][]int) {
	for _, v := range vc {
		if len(v) < 2 {
			continue
		}
		g.SetAlive(v[0], v[1])
	}
}

// Clear kills all cells
func (g *Grid) Clear() {
	g.cur.ClearAll()
}

// Population scans the field and counts the live cells
func (g *Grid) Population() int {
	return int(g.cur.Count())
}

// Equal reports whether both grids have the same size and the same live cells
func (g *Grid) Equal(other *Grid) bool {
	if other == nil || g.width != other.width || g.height != other.height {
		return false
	}
	return g.cur.Equal(other.cur)
}

// Tick calculates the next generation into the back buffer and swaps the buffers
// no cell can observe an already updated neighbour
func (g *Grid) Tick() {
	g.next.ClearAll()
	for y := 0; y < g.height; y++ {
		for x := 0; x < g.width; x++ {
			if g.cellNextState(x, y) {
				g.next.Set(uint(x + g.width*y))
			}
		}
	}
	g.changed = !g.next.Equal(g.cur)
	g.cur, g.next = g.next, g.cur
}

// Changed reports whether the last Tick changed any cell
func (g *Grid) Changed() bool {
	return g.changed
}

// cellNextState applies the rule to the cell at x,y
func (g *Grid) cellNextState(x int, y int) bool {
	liveNeighbours := g.liveNeighbours(x, y)
	if g.IsAlive(x, y) {
		return liveNeighbours == 2 || liveNeighbours == 3
	}
	return liveNeighbours == 3
}

// liveNeighbours counts live cells in the Moore neighbourhood
func (g *Grid) liveNeighbours(x int, y int) int {
	n := 0
	for j := -1; j < 2; j++ {
		for i := -1; i < 2; i++ {
			//skip my position
			if i == 0 && j == 0 {
				continue
			}
			if g.IsAlive(x+i, y+j) {
				n++
			}
		}
	}
	return n
}

// String renders the grid with 'X' for live and '-' for dead cells, one line per row
func (g *Grid) String() string {
	b := make([]byte, 0, (g.width+1)*g.height)
	for y := 0; y < g.height; y++ {
		if y != 0 {
			b = append(b, '\n')
		}
		for x := 0; x < g.width; x++ {
			if g.IsAlive(x, y) {
				b = append(b, 'X')
			} else {
				b = append(b, '-')
			}
		}
	}
	return string(b)
}
