package interpreter

import "fmt"

// Instruction is a single robot command.
type Instruction byte

const (
	TurnLeft  Instruction = 'L'
	TurnRight Instruction = 'R'
	Forward   Instruction = 'M'
)

func ParseInstruction(r rune) (Instruction, error) {
	switch r {
	case 'L', 'R', 'M':
		return Instruction(r), nil
	}
	return 0, fmt.Errorf("%w: %q", ErrInvalidInstruction, r)
}

func (in Instruction) String() string {
	return string(rune(in))
}
