package id

import (
	"strconv"
	"sync"
	"time"
)

// Generator produces millisecond-timestamp transaction IDs that are unique
// within a session: two calls in the same millisecond get consecutive values.
type Generator struct {
	mu   sync.Mutex
	last int64
	now  func() time.Time
}

// NewGenerator creates a Generator using the wall clock.
func NewGenerator() *Generator {
	return &Generator{now: time.Now}
}

// NewGeneratorAt creates a Generator with a custom clock, for tests.
func NewGeneratorAt(now func() time.Time) *Generator {
	return &Generator{now: now}
}

// Next returns the next ID.
func (g *Generator) Next() string {
	g.mu.Lock()
	defer g.mu.Unlock()

	ms := g.now().UnixMilli()
	if ms <= g.last {
		ms = g.last + 1
	}
	g.last = ms
	return strconv.FormatInt(ms, 10)
}
