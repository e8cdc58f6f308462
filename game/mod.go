package game

import (
	"errors"
	"fmt"
	"strings"
)

// Size is the number of rows and columns of the board.
const Size = 8

var (
	ErrOutOfBounds = errors.New("position out of bounds")
	ErrUnknownSide = errors.New("unknown side")
)

// Side is the occupant of a cell. None marks an empty cell.
type Side int

const (
	None Side = iota
	White
	Black
)

// Opponent returns the other playing side. None has no opponent.
func (s Side) Opponent() Side {
	switch s {
	case White:
		return Black
	case Black:
		return White
	default:
		return None
	}
}

// direction is the row delta of a forward step: White advances toward row 0,
// Black toward row Size-1.
func (s Side) direction() int {
	if s == White {
		return -1
	}
	return 1
}

// goalRow is the row that ends the game when the side reaches it.
func (s Side) goalRow() int {
	if s == White {
		return 0
	}
	return Size - 1
}

func (s Side) String() string {
	switch s {
	case White:
		return "white"
	case Black:
		return "black"
	default:
		return ""
	}
}

func ParseSide(s string) (Side, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "white":
		return White, nil
	case "black":
		return Black, nil
	default:
		return None, fmt.Errorf("%w: %q", ErrUnknownSide, s)
	}
}

func (s Side) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}

func (s *Side) UnmarshalText(text []byte) error {
	if len(text) == 0 {
		*s = None
		return nil
	}
	side, err := ParseSide(string(text))
	if err != nil {
		return err
	}
	*s = side
	return nil
}

// Evaluate scores a board from the perspective of one side. Higher is better
// for that side.
type Evaluate func(board *Board, perspective Side) int
