package metrics

import (
	"time"
	"ur/game"
)

// ScoreSample is one evaluated node: the ply it sits on and its score.
type ScoreSample struct {
	Depth int
	Score float64
}

type ExploreMetric struct {
	Horizon        int
	Mode           string
	StartTime      time.Time
	Duration       time.Duration
	Nodes          int // Nodes stored, root included
	Expanded       int // Nodes whose children were generated
	PassThroughs   int // Children synthesized because nothing could move
	Terminals      int // Won positions
	Illegal        int // Rejected move attempts
	Transpositions int // Nodes whose position was already stored elsewhere
	Scores         []ScoreSample
}

type Collector interface {
	Start(horizon int, mode string)
	AddNode(depth int, score float64, hash game.StateHash)
	AddExpansion(illegal int)
	AddPassThrough()
	AddTerminal()
	Complete() ExploreMetric
}

type collector struct {
	metric ExploreMetric
	seen   map[game.StateHash]struct{}
}

func NewCollector() Collector {
	return &collector{seen: make(map[game.StateHash]struct{})}
}

func (m *collector) Start(horizon int, mode string) {
	m.metric.StartTime = time.Now()
	m.metric.Horizon = horizon
	m.metric.Mode = mode
}

func (m *collector) AddNode(depth int, score float64, hash game.StateHash) {
	m.metric.Nodes++
	if depth > 0 {
		m.metric.Scores = append(m.metric.Scores, ScoreSample{Depth: depth, Score: score})
	}
	if _, ok := m.seen[hash]; ok {
		m.metric.Transpositions++
		return
	}
	m.seen[hash] = struct{}{}
}

func (m *collector) AddExpansion(illegal int) {
	m.metric.Expanded++
	m.metric.Illegal += illegal
}

func (m *collector) AddPassThrough() {
	m.metric.PassThroughs++
}

func (m *collector) AddTerminal() {
	m.metric.Terminals++
}

func (m *collector) Complete() ExploreMetric {
	metric := m.metric
	metric.Duration = time.Since(m.metric.StartTime)
	return metric
}

type dummyCollector struct{}

func NewDummyCollector() Collector {
	return &dummyCollector{}
}

func (m *dummyCollector) Start(horizon int, mode string)                        {}
func (m *dummyCollector) AddNode(depth int, score float64, hash game.StateHash) {}
func (m *dummyCollector) AddExpansion(illegal int)                              {}
func (m *dummyCollector) AddPassThrough()                                       {}
func (m *dummyCollector) AddTerminal()                                          {}
func (m *dummyCollector) Complete() ExploreMetric                               { return ExploreMetric{} }
