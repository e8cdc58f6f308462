package game

import (
	"encoding/json"
	"errors"
	"fmt"
)

var ErrMalformedPosition = errors.New("malformed position")

// Position is a (row, col) coordinate on the board.
type Position struct {
	Row int
	Col int
}

func (p Position) String() string {
	return fmt.Sprintf("(%d,%d)", p.Row, p.Col)
}

// Positions are encoded as a two element array [row, col] so that setups
// can be written the same way they are typed at the console.
func (p Position) MarshalJSON() ([]byte, error) {
	return json.Marshal([2]int{p.Row, p.Col})
}

func (p *Position) UnmarshalJSON(data []byte) error {
	var pair []int
	if err := json.Unmarshal(data, &pair); err != nil {
		return fmt.Errorf("decode position: %w", err)
	}
	if len(pair) != 2 {
		return fmt.Errorf("position %s needs [row, col]: %w", data, ErrMalformedPosition)
	}
	p.Row, p.Col = pair[0], pair[1]
	return nil
}

// Move moves the piece at From to To. Captures are implicit: whatever occupied
// To is overwritten.
type Move struct {
	From Position
	To   Position
}

func (m Move) String() string {
	return fmt.Sprintf("%v->%v", m.From, m.To)
}

// IsCapture reports whether the move is a diagonal step.
func (m Move) IsCapture() bool {
	return m.From.Col != m.To.Col
}

func (m Move) MarshalJSON() ([]byte, error) {
	return json.Marshal([2]Position{m.From, m.To})
}

func (m *Move) UnmarshalJSON(data []byte) error {
	var pair []Position
	if err := json.Unmarshal(data, &pair); err != nil {
		return fmt.Errorf("decode move: %w", err)
	}
	if len(pair) != 2 {
		return fmt.Errorf("move %s needs [from, to]: %w", data, ErrMalformedPosition)
	}
	m.From, m.To = pair[0], pair[1]
	return nil
}
