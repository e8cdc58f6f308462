package game

import "pawns/utils"

// LegalMoves enumerates the moves of side in row-major order of the moving
// piece. For each piece the straight advance comes first, then the capture
// toward col-1, then the capture toward col+1. Search tie-breaking depends on
// this order.
func LegalMoves(board *Board, side Side) []Move {
	var moves []Move
	dir := side.direction()

	for row := 0; row < Size; row++ {
		for col := 0; col < Size; col++ {
			if board[row][col] != side {
				continue
			}
			from := Position{Row: row, Col: col}

			ahead := Position{Row: row + dir, Col: col}
			if board.InBounds(ahead) && board.At(ahead) == None {
				moves = append(moves, Move{From: from, To: ahead})
			}

			// Diagonals are capture-only
			for _, c := range [2]int{col - 1, col + 1} {
				target := Position{Row: row + dir, Col: c}
				if !board.InBounds(target) {
					continue
				}
				if occupant := board.At(target); occupant != None && occupant != side {
					moves = append(moves, Move{From: from, To: target})
				}
			}
		}
	}
	return moves
}

// IsGameOver reports whether White holds a cell on row 0, Black holds a cell
// on row 7, or neither side has a legal move.
func IsGameOver(board *Board) bool {
	if Winner(board) != None {
		return true
	}
	return len(LegalMoves(board, White)) == 0 && len(LegalMoves(board, Black)) == 0
}

// Winner returns the side that reached its goal row, or None. A mutual
// blockade has no winner.
func Winner(board *Board) Side {
	for _, side := range [2]Side{White, Black} {
		goal := side.goalRow()
		for col := 0; col < Size; col++ {
			if board[goal][col] == side {
				return side
			}
		}
	}
	return None
}

// IsLegal reports whether move is among the legal moves of side.
func IsLegal(board *Board, side Side, move Move) bool {
	return utils.FindIndex(LegalMoves(board, side), move) >= 0
}
