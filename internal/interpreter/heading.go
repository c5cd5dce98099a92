package interpreter

import "fmt"

// Heading is the compass direction a robot faces.
type Heading uint8

// Clockwise order; rotation is index arithmetic over it.
const (
	North Heading = iota
	East
	South
	West
)

const headingLetters = "NESW"

// ParseHeading accepts exactly one of N, E, S, W.
func ParseHeading(s string) (Heading, error) {
	if len(s) == 1 {
		for i := 0; i < len(headingLetters); i++ {
			if headingLetters[i] == s[0] {
				return Heading(i), nil
			}
		}
	}
	return North, fmt.Errorf("%w: %q, must be one of [N E S W]", ErrInvalidHeading, s)
}

func (h Heading) RotateLeft() Heading {
	return (h + 3) % 4
}

func (h Heading) RotateRight() Heading {
	return (h + 1) % 4
}

func (h Heading) String() string {
	if int(h) >= len(headingLetters) {
		return fmt.Sprintf("Heading(%d)", uint8(h))
	}
	return headingLetters[h : h+1]
}
