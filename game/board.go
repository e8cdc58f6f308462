package game

import (
	"fmt"
	"strings"
)

// Board is the grid of cell occupants indexed by [row][col]. It is a value
// type: assigning or copying a Board yields an independent snapshot.
type Board [Size][Size]Side

func NewBoard() *Board {
	return &Board{}
}

// Place puts a piece of side on pos.
func (b *Board) Place(pos Position, side Side) error {
	if !b.InBounds(pos) {
		return fmt.Errorf("place %v at %v: %w", side, pos, ErrOutOfBounds)
	}
	b[pos.Row][pos.Col] = side
	return nil
}

// Apply moves the piece at move.From to move.To, overwriting the destination.
// The move is not validated.
func (b *Board) Apply(move Move) {
	piece := b[move.From.Row][move.From.Col]
	b[move.From.Row][move.From.Col] = None
	b[move.To.Row][move.To.Col] = piece
}

func (b *Board) InBounds(pos Position) bool {
	return 0 <= pos.Row && pos.Row < Size && 0 <= pos.Col && pos.Col < Size
}

// Snapshot returns a deep copy of the board.
func (b *Board) Snapshot() *Board {
	clone := *b
	return &clone
}

// At returns the occupant of pos, or None when pos is off the board.
func (b *Board) At(pos Position) Side {
	if !b.InBounds(pos) {
		return None
	}
	return b[pos.Row][pos.Col]
}

// Count returns the number of cells held by side.
func (b *Board) Count(side Side) int {
	n := 0
	for row := range b {
		for col := range b[row] {
			if b[row][col] == side {
				n++
			}
		}
	}
	return n
}

const cellWidth = 5

// String renders one line per row, each cell padded to a fixed width.
func (b *Board) String() string {
	var sb strings.Builder
	for row := range b {
		cells := make([]string, Size)
		for col := range b[row] {
			cells[col] = fmt.Sprintf("%-*s", cellWidth, b[row][col].String())
		}
		fmt.Fprintf(&sb, "%d [%s]\n", row, strings.Join(cells, "|"))
	}
	return sb.String()
}
