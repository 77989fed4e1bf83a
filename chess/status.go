package chess

import "sync"

// Status summarizes the position for the side to move.
type Status uint8

const (
	Ongoing Status = iota
	Check
	Checkmate
	Stalemate
)

func (s Status) String() string {
	switch s {
	case Check:
		return "check"
	case Checkmate:
		return "checkmate"
	case Stalemate:
		return "stalemate"
	default:
		return "ongoing"
	}
}

// IsOver reports whether the side to move has no completing move.
func (s Status) IsOver() bool { return s == Checkmate || s == Stalemate }

// Status probes every legal move of the side to move, so it costs one board
// build per legal move. Use a StatusCache when asking repeatedly.
func (b *Board) Status() Status {
	p := b.CurrentPlayer()
	escape := p.HasEscapeMoves()
	switch {
	case p.IsInCheck() && !escape:
		return Checkmate
	case !escape:
		return Stalemate
	case p.IsInCheck():
		return Check
	}
	return Ongoing
}

// StatusCache memoizes Board.Status by Zobrist key. It is safe for
// concurrent use.
type StatusCache struct {
	mu      sync.RWMutex
	entries map[uint64]Status
}

// NewStatusCache returns an empty cache.
func NewStatusCache() *StatusCache {
	return &StatusCache{entries: make(map[uint64]Status)}
}

// Status returns the cached status of b, computing it on a miss.
func (c *StatusCache) Status(b *Board) Status {
	key := b.Hash()
	c.mu.RLock()
	s, ok := c.entries[key]
	c.mu.RUnlock()
	if ok {
		return s
	}
	s = b.Status()
	c.mu.Lock()
	c.entries[key] = s
	c.mu.Unlock()
	return s
}

// Len returns the number of cached positions.
func (c *StatusCache) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.entries)
}
