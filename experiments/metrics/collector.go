package metrics

import (
	"sync/atomic"
	"time"

	"connect4/game"
)

type SearchMetric struct {
	Algorithm string
	Depth     int
	Duration  time.Duration
	Nodes     int // interior plies expanded
	Leaves    int // states scored by the evaluation function
	Cutoffs   int
}

type MoveMetric struct {
	Step   int
	Player game.Player
	Action game.Action
	SearchMetric
}

// Game outcomes as recorded in GameMetric.Winner
const (
	MaxWins    = "max"
	MinWins    = "min"
	Draw       = "draw"
	Unfinished = "unfinished" // stopped after the move limit
)

type GameMetric struct {
	StartingPlayer game.Player
	Winner         string
	StartTime      time.Time
	EndTime        time.Time
	Duration       time.Duration
	TotalMoves     int
}

type Collector interface {
	Start(algorithm string, depth int)
	AddNode()
	AddLeaf()
	AddCutoff()
	Complete() SearchMetric
}

type collector struct {
	algorithm string
	depth     int
	startTime time.Time
	nodes     atomic.Int64
	leaves    atomic.Int64
	cutoffs   atomic.Int64
}

func NewCollector() Collector {
	return &collector{}
}

// Start resets the counters for a new search.
func (m *collector) Start(algorithm string, depth int) {
	m.startTime = time.Now()
	m.algorithm = algorithm
	m.depth = depth
	m.nodes.Store(0)
	m.leaves.Store(0)
	m.cutoffs.Store(0)
}

func (m *collector) AddNode() {
	m.nodes.Add(1)
}

func (m *collector) AddLeaf() {
	m.leaves.Add(1)
}

func (m *collector) AddCutoff() {
	m.cutoffs.Add(1)
}

func (m *collector) Complete() SearchMetric {
	return SearchMetric{
		Algorithm: m.algorithm,
		Depth:     m.depth,
		Duration:  time.Since(m.startTime),
		Nodes:     int(m.nodes.Load()),
		Leaves:    int(m.leaves.Load()),
		Cutoffs:   int(m.cutoffs.Load()),
	}
}

type dummyCollector struct{}

func NewDummyCollector() Collector {
	return &dummyCollector{}
}

func (m *dummyCollector) Start(algorithm string, depth int) {}
func (m *dummyCollector) AddNode()                          {}
func (m *dummyCollector) AddLeaf()                          {}
func (m *dummyCollector) AddCutoff()                        {}
func (m *dummyCollector) Complete() SearchMetric            { return SearchMetric{} }
