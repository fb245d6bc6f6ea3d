package game

import (
	"fmt"
	"strings"
)

// Difficulty selects how the automated player evaluates, searches and
// randomizes its moves.
type Difficulty int

const (
	External Difficulty = iota // Delegates to an external classifier
	Easy
	Medium
	Hard
)

var difficultyNames = map[Difficulty]string{
	External: "external",
	Easy:     "easy",
	Medium:   "medium",
	Hard:     "hard",
}

func (d Difficulty) String() string {
	if name, ok := difficultyNames[d]; ok {
		return name
	}
	return fmt.Sprintf("Difficulty(%d)", int(d))
}

// ParseDifficulty accepts a difficulty name or its level number (0-3).
func ParseDifficulty(s string) (Difficulty, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "external", "ml", "0":
		return External, nil
	case "easy", "1":
		return Easy, nil
	case "medium", "2":
		return Medium, nil
	case "hard", "3":
		return Hard, nil
	}
	return 0, fmt.Errorf("unknown difficulty %q", s)
}
