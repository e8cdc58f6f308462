package game

import "fmt"

// Setup lists the initial pawn positions of both sides and the side the
// engine plays.
type Setup struct {
	White []Position `json:"white"`
	Black []Position `json:"black"`
	Color Side       `json:"color"`
}

// NewStandardSetup returns eight White pawns on row 6 and eight Black pawns on
// row 1, with the engine playing color.
func NewStandardSetup(color Side) Setup {
	setup := Setup{
		White: make([]Position, 0, Size),
		Black: make([]Position, 0, Size),
		Color: color,
	}
	for col := 0; col < Size; col++ {
		setup.White = append(setup.White, Position{Row: Size - 2, Col: col})
		setup.Black = append(setup.Black, Position{Row: 1, Col: col})
	}
	return setup
}

// NewBoardFromSetup places every pawn of the setup on an empty board.
func NewBoardFromSetup(setup Setup) (*Board, error) {
	board := NewBoard()
	for _, pos := range setup.White {
		if err := board.Place(pos, White); err != nil {
			return nil, fmt.Errorf("white setup: %w", err)
		}
	}
	for _, pos := range setup.Black {
		if err := board.Place(pos, Black); err != nil {
			return nil, fmt.Errorf("black setup: %w", err)
		}
	}
	return board, nil
}
