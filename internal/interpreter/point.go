package interpreter

import "fmt"

// Point is a cell coordinate. It knows nothing about grid bounds.
type Point struct {
	X, Y int
}

var headingDeltas = [...]Point{
	North: {0, 1},
	East:  {1, 0},
	South: {0, -1},
	West:  {-1, 0},
}

// Move returns the neighbouring point one step towards h. Out-of-range
// headings wrap the same way rotation does.
func (p Point) Move(h Heading) Point {
	d := headingDeltas[h%4]
	return Point{X: p.X + d.X, Y: p.Y + d.Y}
}

func (p Point) String() string {
	return fmt.Sprintf("(%d,%d)", p.X, p.Y)
}
