package printer

import (
	"sync/atomic"
	"time"
)

// A Sequence hands out job ids. The bridge uses them to detect duplicate
// submissions, so consecutive calls must return distinct values.
type Sequence interface {
	Next() int
}

type timeSequence struct {
	last int64
}

// NewTimeSequence returns a sequence that starts at the unix seconds of now
// modulo one million and counts up by one per call. It is safe for
// concurrent use.
func NewTimeSequence(now time.Time) Sequence {
	return &timeSequence{last: now.Unix() % 1_000_000}
}

func (s *timeSequence) Next() int {
	return int(atomic.AddInt64(&s.last, 1))
}
