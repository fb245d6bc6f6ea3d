package game

// Size is the side length of the board.
const Size = 3

// NumCells is the number of cells on the board.
const NumCells = Size * Size

type StateHash uint64

// Evaluates a board to a score from the point of view of player me, where a
// higher score favors me.
type Evaluate func(b Board, d Difficulty, me Cell) int
