package interpreter

import "fmt"

// Robot holds the position and heading of one unit during a single run.
type Robot struct {
	position Point
	heading  Heading
}

// State is a snapshot of a robot.
type State struct {
	Position Point
	Heading  Heading
}

func (s State) String() string {
	return fmt.Sprintf("%d %d %s", s.Position.X, s.Position.Y, s.Heading)
}

func NewRobot(start Point, h Heading) *Robot {
	return &Robot{position: start, heading: h}
}

// Step applies one instruction. A move that would leave g fails with
// ErrOutOfBounds and leaves the robot where it was.
func (r *Robot) Step(in Instruction, g Grid) error {
	switch in {
	case TurnLeft:
		r.heading = r.heading.RotateLeft()
	case TurnRight:
		r.heading = r.heading.RotateRight()
	case Forward:
		next := r.position.Move(r.heading)
		if !g.Contains(next) {
			return fmt.Errorf("%w: move from %v to %v leaves grid %v", ErrOutOfBounds, r.position, next, g)
		}
		r.position = next
	default:
		return fmt.Errorf("%w: %q", ErrInvalidInstruction, byte(in))
	}
	return nil
}

// Execute runs program left to right and stops at the first failure.
// Instructions applied before the failure are kept.
func (r *Robot) Execute(program string, g Grid) error {
	for i, c := range []rune(program) {
		in, err := ParseInstruction(c)
		if err == nil {
			err = r.Step(in, g)
		}
		if err != nil {
			return fmt.Errorf("step %d: %w", i+1, err)
		}
	}
	return nil
}

func (r *Robot) Position() Point {
	return r.position
}

func (r *Robot) Heading() Heading {
	return r.heading
}

func (r *Robot) State() State {
	return State{Position: r.position, Heading: r.heading}
}

func (r *Robot) String() string {
	return r.State().String()
}
