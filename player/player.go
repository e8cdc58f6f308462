package player

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"pawns/engine"
	"pawns/game"
	"strconv"
)

var ErrMalformedInput = errors.New("malformed input")

// Console is a human player typing moves as four integers: start row, start
// column, end row, end column. Tokens may be split over any number of lines.
type Console struct {
	scanner *bufio.Scanner
	out     io.Writer
}

// NewConsole creates a console player reading from in and printing to out.
func NewConsole(in io.Reader, out io.Writer) *Console {
	scanner := bufio.NewScanner(in)
	scanner.Split(bufio.ScanWords)
	return &Console{
		scanner: scanner,
		out:     out,
	}
}

// NextMove prints the board and reads moves until a legal one is entered.
// End of input resigns the game.
func (c *Console) NextMove(board *game.Board, side game.Side) (game.Move, error) {
	fmt.Fprintln(c.out, board)

	for {
		fmt.Fprintf(c.out, "%v to move (start row, start col, end row, end col): ", side)
		move, err := c.readMove()
		switch {
		case errors.Is(err, io.EOF):
			return game.Move{}, engine.ErrResigned
		case errors.Is(err, ErrMalformedInput):
			fmt.Fprintf(c.out, "%v\n", err)
			continue
		case err != nil:
			return game.Move{}, err
		}
		if !game.IsLegal(board, side, move) {
			fmt.Fprintf(c.out, "%v is not a legal move for %v\n", move, side)
			continue
		}
		return move, nil
	}
}

func (c *Console) readMove() (game.Move, error) {
	var coords [4]int
	for i := range coords {
		n, err := c.readInt()
		if err != nil {
			return game.Move{}, err
		}
		coords[i] = n
	}
	return game.Move{
		From: game.Position{Row: coords[0], Col: coords[1]},
		To:   game.Position{Row: coords[2], Col: coords[3]},
	}, nil
}

func (c *Console) readInt() (int, error) {
	if !c.scanner.Scan() {
		if err := c.scanner.Err(); err != nil {
			return 0, fmt.Errorf("read move: %w", err)
		}
		return 0, io.EOF
	}
	token := c.scanner.Text()
	n, err := strconv.Atoi(token)
	if err != nil {
		return 0, fmt.Errorf("%w: %q is not an integer", ErrMalformedInput, token)
	}
	return n, nil
}
