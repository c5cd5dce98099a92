package interpreter

import (
	"bufio"
	"io"
)

// Display draws the grid with robots on it, north at the top. Empty cells
// are '.', a robot shows its heading letter and a shared cell shows '*'.
func (g Grid) Display(w io.Writer, states []State) error {
	cells := make(map[Point]byte, len(states))
	for _, s := range states {
		if _, taken := cells[s.Position]; taken {
			cells[s.Position] = '*'
			continue
		}
		cells[s.Position] = s.Heading.String()[0]
	}

	bw := bufio.NewWriter(w)
	for y := g.MaxY; y >= 0; y-- {
		for x := 0; x <= g.MaxX; x++ {
			c, ok := cells[Point{X: x, Y: y}]
			if !ok {
				c = '.'
			}
			bw.WriteByte(c)
			if x < g.MaxX {
				bw.WriteByte(' ')
			}
		}
		bw.WriteByte('\n')
	}
	return bw.Flush()
}
