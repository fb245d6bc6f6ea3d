package searcher

import (
	"math"
	"tictactoe/game"
)

// Infinity bounds the search window. Evaluators may use any score inside it.
const Infinity = math.MaxInt

// Saturation is the score magnitude a reduced-tier evaluator reserves for
// decided games. Heuristic scores stay well below it.
const Saturation = 1000

// HardDepthCap covers every remaining ply of a 3x3 game.
const HardDepthCap = game.NumCells

// moveOrder tries the center, then corners, then edges. Strong moves first
// tighten the alpha-beta window early.
var moveOrder = [game.NumCells]game.Move{
	{Row: 1, Col: 1},
	{Row: 0, Col: 0}, {Row: 0, Col: 2}, {Row: 2, Col: 0}, {Row: 2, Col: 2},
	{Row: 0, Col: 1}, {Row: 1, Col: 0}, {Row: 1, Col: 2}, {Row: 2, Col: 1},
}
