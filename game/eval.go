package game

// EvaluateAdvancement rewards pawns for how far they have advanced toward
// their goal row. Each White pawn scores 7-row, each Black pawn scores row;
// the result is the difference from the perspective side's point of view.
// The score is zero-sum: EvaluateAdvancement(b, White) == -EvaluateAdvancement(b, Black).
func EvaluateAdvancement(board *Board, perspective Side) int {
	whiteScore, blackScore := advancementScores(board)

	if perspective == White {
		return whiteScore - blackScore
	}
	return blackScore - whiteScore
}

// EvaluateMaterial scores only the piece count difference. It is not used by
// default and serves as an alternative evaluation for experiments.
func EvaluateMaterial(board *Board, perspective Side) int {
	return board.Count(perspective) - board.Count(perspective.Opponent())
}

func advancementScores(board *Board) (whiteScore, blackScore int) {
	for row := 0; row < Size; row++ {
		for col := 0; col < Size; col++ {
			switch board[row][col] {
			case White:
				whiteScore += (Size - 1) - row
			case Black:
				blackScore += row
			}
		}
	}
	return whiteScore, blackScore
}
