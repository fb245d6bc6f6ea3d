package game

const (
	WinScore = 10 // Hard tier score for a completed line

	lineBonus   = 10 // Two of mine and none of theirs in a row or column
	linePenalty = 8  // Two of theirs and none of mine, weighted to favor blocking
)

// Positional weights: center > corners > edges.
var weights = [Size][Size]int{
	{3, 2, 3},
	{2, 5, 2},
	{3, 2, 3},
}

// EvaluateBoard scores b for the given difficulty from me's point of view.
//
// Hard only distinguishes wins (+WinScore), losses (-WinScore) and everything
// else (0), leaving search depth to separate fast wins from slow ones. The
// reduced tiers add up positional weights, and from Medium on also reward
// rows and columns holding two of one player's marks and none of the other's.
func EvaluateBoard(b Board, d Difficulty, me Cell) int {
	opponent := me.Opponent()

	if d == Hard {
		if b.HasLine(me) {
			return WinScore
		}
		if b.HasLine(opponent) {
			return -WinScore
		}
		return 0
	}

	score := 0
	for r := 0; r < Size; r++ {
		for c := 0; c < Size; c++ {
			switch b[r][c] {
			case me:
				score += weights[r][c]
			case opponent:
				score -= weights[r][c]
			}
		}
	}

	if d >= Medium {
		for i := 0; i < Size; i++ {
			var mineRow, theirsRow, mineCol, theirsCol int
			for j := 0; j < Size; j++ {
				switch b[i][j] {
				case me:
					mineRow++
				case opponent:
					theirsRow++
				}
				switch b[j][i] {
				case me:
					mineCol++
				case opponent:
					theirsCol++
				}
			}
			score += lineScore(mineRow, theirsRow) + lineScore(mineCol, theirsCol)
		}
	}
	return score
}

func lineScore(mine, theirs int) int {
	switch {
	case mine == 2 && theirs == 0:
		return lineBonus
	case theirs == 2 && mine == 0:
		return -linePenalty
	}
	return 0
}

var _ Evaluate = EvaluateBoard
