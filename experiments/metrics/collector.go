package metrics

import (
	"tictactoe/game"
	"time"
)

type SearchMetric struct {
	Difficulty game.Difficulty
	DepthCap   int // 0 when no search ran
	Nodes      int
	Cutoffs    int
	RandomMove bool
	Shortcut   bool
	Duration   time.Duration
}

type MoveMetric struct {
	Step   int
	Player game.Cell
	Move   game.Move
	SearchMetric
}

type GameMetric struct {
	ID             string
	StartingPlayer game.Cell
	Winner         game.Cell // Empty for a draw
	StartTime      time.Time
	EndTime        time.Time
	Duration       time.Duration
	TotalMoves     int
}

type Collector interface {
	Start(difficulty game.Difficulty)
	SetDepthCap(depthCap int)
	AddNode()
	AddCutoff()
	SetRandomMove(value bool)
	SetShortcut(value bool)
	Complete() SearchMetric
}

type collector struct {
	difficulty game.Difficulty
	depthCap   int
	startTime  time.Time
	nodes      int
	cutoffs    int
	randomMove bool
	shortcut   bool
}

func NewCollector() Collector {
	return &collector{}
}

func (m *collector) Start(difficulty game.Difficulty) {
	m.startTime = time.Now()
	m.difficulty = difficulty
}

func (m *collector) SetDepthCap(depthCap int) {
	m.depthCap = depthCap
}

func (m *collector) AddNode() {
	m.nodes++
}

func (m *collector) AddCutoff() {
	m.cutoffs++
}

func (m *collector) SetRandomMove(value bool) {
	m.randomMove = value
}

func (m *collector) SetShortcut(value bool) {
	m.shortcut = value
}

func (m *collector) Complete() SearchMetric {
	return SearchMetric{
		Difficulty: m.difficulty,
		DepthCap:   m.depthCap,
		Nodes:      m.nodes,
		Cutoffs:    m.cutoffs,
		RandomMove: m.randomMove,
		Shortcut:   m.shortcut,
		Duration:   time.Since(m.startTime),
	}
}

type dummyCollector struct{}

func NewDummyCollector() Collector {
	return &dummyCollector{}
}

func (m *dummyCollector) Start(difficulty game.Difficulty) {}
func (m *dummyCollector) SetDepthCap(depthCap int)         {}
func (m *dummyCollector) AddNode()                         {}
func (m *dummyCollector) AddCutoff()                       {}
func (m *dummyCollector) SetRandomMove(value bool)         {}
func (m *dummyCollector) SetShortcut(value bool)           {}
func (m *dummyCollector) Complete() SearchMetric           { return SearchMetric{} }
