package content

import (
	"sync"

	"github.com/rpupo63/omie-site-backend/errs"
)

// DegradedReporter is told about every request that was answered with a
// fallback instead of CMS data
type DegradedReporter interface {
	Degraded(operation string, err error)
}

// DegradedCounter counts fallbacks per operation and timeouts overall
type DegradedCounter struct {
	mu       sync.Mutex
	byOp     map[string]int
	timeouts int
}

func NewDegradedCounter() *DegradedCounter {
	return &DegradedCounter{byOp: map[string]int{}}
}

func (c *DegradedCounter) Degraded(operation string, err error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.byOp[operation]++
	if errs.IsGatewayTimeout(err) {
		c.timeouts++
	}
}

// DegradedStats is a point-in-time copy of a DegradedCounter
type DegradedStats struct {
	Total       int            `json:"total"`
	Timeouts    int            `json:"timeouts"`
	ByOperation map[string]int `json:"byOperation"`
}

func (c *DegradedCounter) Snapshot() DegradedStats {
	c.mu.Lock()
	defer c.mu.Unlock()
	stats := DegradedStats{Timeouts: c.timeouts, ByOperation: make(map[string]int, len(c.byOp))}
	for op, n := range c.byOp {
		stats.ByOperation[op] = n
		stats.Total += n
	}
	return stats
}

type discardReporter struct{}

func (discardReporter) Degraded(string, error) {}
