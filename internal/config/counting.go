package config

import "sync"

// Counting is an instrumented allocator behind a Config (see NewCounting)
// that tracks the number of allocations that have not yet been released. Tests use this to assert that free-value leaves
// no live allocations attributable to a freed subtree.
type Counting struct {
	mu       sync.Mutex
	nonEmpty map[*byte]struct{}
	empty    int
}

// NewCounting returns a Config whose Allocate/Release are backed by the
// plain Go allocator but instrumented for leak counting.
func NewCounting() (*Config, *Counting) {
	c := &Counting{nonEmpty: make(map[*byte]struct{})}
	cfg := New(
		WithAllocator(c.allocate),
		WithReleaser(c.release),
	)
	return cfg, c
}

func (c *Counting) allocate(size int) ([]byte, bool) {
	if size < 0 {
		return nil, false
	}
	buf := make([]byte, size)
	c.mu.Lock()
	defer c.mu.Unlock()
	if size > 0 {
		c.nonEmpty[&buf[0]] = struct{}{}
	} else {
		c.empty++
	}
	return buf, true
}

func (c *Counting) release(buf []byte) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if len(buf) == 0 {
		if c.empty > 0 {
			c.empty--
		}
		return
	}
	delete(c.nonEmpty, &buf[0])
}

// Live returns the number of allocations made through this counter that
// have not been released.
func (c *Counting) Live() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.nonEmpty) + c.empty
}
