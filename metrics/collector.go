package metrics

import (
	"sync/atomic"
	"time"
)

// SelectMetric describes a single move selection.
type SelectMetric struct {
	Duration   time.Duration
	Candidates int
	Crawls     int
	Jumps      int
	BestScore  float64
	Ties       int // candidates sharing the best score
}

type MoveMetric struct {
	Round  int
	Player string
	SelectMetric
}

type GameMetric struct {
	Size       int
	Players    int
	Finished   []string // in finishing order
	Rounds     int
	TotalMoves int
	Passes     int
	StartTime  time.Time
	EndTime    time.Time
	Duration   time.Duration
}

type Collector interface {
	Start()
	AddCrawl()
	AddJump()
	SetBest(score float64, ties int)
	Complete() SelectMetric
}

type collector struct {
	startTime time.Time
	crawls    atomic.Int32
	jumps     atomic.Int32
	bestScore float64
	ties      int
}

func NewCollector() Collector {
	return &collector{}
}

func (m *collector) Start() {
	m.startTime = time.Now()
	m.crawls.Store(0)
	m.jumps.Store(0)
	m.bestScore = 0
	m.ties = 0
}

func (m *collector) AddCrawl() {
	m.crawls.Add(1)
}

func (m *collector) AddJump() {
	m.jumps.Add(1)
}

func (m *collector) SetBest(score float64, ties int) {
	m.bestScore = score
	m.ties = ties
}

func (m *collector) Complete() SelectMetric {
	crawls, jumps := int(m.crawls.Load()), int(m.jumps.Load())
	return SelectMetric{
		Duration:   time.Since(m.startTime),
		Candidates: crawls + jumps,
		Crawls:     crawls,
		Jumps:      jumps,
		BestScore:  m.bestScore,
		Ties:       m.ties,
	}
}

type dummyCollector struct{}

func NewDummyCollector() Collector {
	return &dummyCollector{}
}

func (m *dummyCollector) Start()                          {}
func (m *dummyCollector) AddCrawl()                       {}
func (m *dummyCollector) AddJump()                        {}
func (m *dummyCollector) SetBest(score float64, ties int) {}
func (m *dummyCollector) Complete() SelectMetric          { return SelectMetric{} }
