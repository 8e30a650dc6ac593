package store

import (
	"fmt"
	"sync"
	"time"
)

// idGenerator produces prefixed millisecond-timestamp ids (PROD-<ms>,
// ORD-<ms>, INQ-<ms>). The counter never repeats or goes backwards within
// a process, even when two ids are minted in the same millisecond.
type idGenerator struct {
	mu   sync.Mutex
	last int64
}

func (g *idGenerator) next(prefix string) string {
	g.mu.Lock()
	defer g.mu.Unlock()

	now := time.Now().UnixMilli()
	if now <= g.last {
		now = g.last + 1
	}
	g.last = now

	return fmt.Sprintf("%s-%d", prefix, now)
}
