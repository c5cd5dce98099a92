package interpreter

import "fmt"

// Grid is the inclusive rectangle [0..MaxX] x [0..MaxY] robots must stay in.
type Grid struct {
	MaxX, MaxY int
}

// NewGrid builds a grid with the given upper-right corner. The smallest
// legal grid is 1x1.
func NewGrid(maxX, maxY int) (Grid, error) {
	if maxX <= 0 || maxY <= 0 {
		return Grid{}, fmt.Errorf("%w: must be positive, got max_x=%d, max_y=%d", ErrInvalidDimensions, maxX, maxY)
	}
	return Grid{MaxX: maxX, MaxY: maxY}, nil
}

// Contains reports whether p lies inside the grid, edges included.
func (g Grid) Contains(p Point) bool {
	return p.X >= 0 && p.X <= g.MaxX && p.Y >= 0 && p.Y <= g.MaxY
}

func (g Grid) String() string {
	return fmt.Sprintf("%dx%d", g.MaxX, g.MaxY)
}
