package cursor

import (
	"fmt"
	"strings"
)

// Direction is the sign of a movement: Forward is +1 and Backward is -1.
type Direction int

const (
	Backward Direction = -1
	Forward  Direction = 1
)

// Sign returns the direction as an integer multiplier.
func (d Direction) Sign() int {
	if d < 0 {
		return -1
	}
	return 1
}

func (d Direction) Reverse() Direction {
	if d < 0 {
		return Forward
	}
	return Backward
}

func (d Direction) String() string {
	if d < 0 {
		return "backward"
	}
	return "forward"
}

// ParseDirection accepts "forward"/"right"/"+" and "backward"/"left"/"-".
func ParseDirection(s string) (Direction, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "forward", "right", "+", "f":
		return Forward, nil
	case "backward", "left", "-", "b":
		return Backward, nil
	default:
		return 0, fmt.Errorf("unknown direction %q", s)
	}
}
