package metrics

import (
	"sync/atomic"
	"time"
)

type RunMetric struct {
	Goroutines  int           `json:"goroutines"`
	Strategies  int           `json:"strategies"`
	Subjects    int           `json:"subjects"`
	Evaluations int           `json:"evaluations"`
	Failures    int           `json:"failures"`
	StartTime   time.Time     `json:"startTime"`
	EndTime     time.Time     `json:"endTime"`
	Duration    time.Duration `json:"duration"`
}

type Collector interface {
	Start(goroutines, strategies, subjects int)
	AddEvaluation()
	AddFailure()
	Complete() RunMetric
}

type collector struct {
	goroutines  int
	strategies  int
	subjects    int
	startTime   time.Time
	evaluations atomic.Int32
	failures    atomic.Int32
}

func NewCollector() Collector {
	return &collector{}
}

func (m *collector) Start(goroutines, strategies, subjects int) {
	m.startTime = time.Now()
	m.goroutines = goroutines
	m.strategies = strategies
	m.subjects = subjects
	m.evaluations.Store(0)
	m.failures.Store(0)
}

func (m *collector) AddEvaluation() {
	m.evaluations.Add(1)
}

func (m *collector) AddFailure() {
	m.failures.Add(1)
}

func (m *collector) Complete() RunMetric {
	end := time.Now()
	return RunMetric{
		Goroutines:  m.goroutines,
		Strategies:  m.strategies,
		Subjects:    m.subjects,
		Evaluations: int(m.evaluations.Load()),
		Failures:    int(m.failures.Load()),
		StartTime:   m.startTime,
		EndTime:     end,
		Duration:    end.Sub(m.startTime),
	}
}

type dummyCollector struct{}

func NewDummyCollector() Collector {
	return &dummyCollector{}
}

func (m *dummyCollector) Start(goroutines, strategies, subjects int) {}
func (m *dummyCollector) AddEvaluation()                             {}
func (m *dummyCollector) AddFailure()                                {}
func (m *dummyCollector) Complete() RunMetric                        { return RunMetric{} }
