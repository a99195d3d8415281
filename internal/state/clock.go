package state

import "sync/atomic"

// Clock hands out monotonically increasing tokens. A restore request keeps
// the token it was issued and only applies its result while that token is
// still the latest.
type Clock struct {
	counter atomic.Uint64
}

// Tick issues the next token.
func (c *Clock) Tick() uint64 {
	return c.counter.Add(1)
}

// Latest returns the most recently issued token, 0 before the first Tick.
func (c *Clock) Latest() uint64 {
	return c.counter.Load()
}

// IsLatest reports whether token is still the newest one issued.
func (c *Clock) IsLatest(token uint64) bool {
	return token == c.counter.Load()
}
