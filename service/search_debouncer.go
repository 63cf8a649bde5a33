package services

import (
	"sync"
	"time"
)

// SearchDebouncer delays live-search requests until the input has been quiet for
// the configured window. A superseding keystroke cancels the pending timer
// outright, so at most one request-intent is in flight per window.
type SearchDebouncer struct {
	delay  time.Duration
	search func(query string)

	mu      sync.Mutex
	pending *time.Timer
}

// NewSearchDebouncer constructs a debouncer that invokes search after delay of
// quiescence.
func NewSearchDebouncer(delay time.Duration, search func(query string)) *SearchDebouncer {
	return &SearchDebouncer{
		delay:  delay,
		search: search,
	}
}

// Type registers a keystroke: the previous pending intent is cancelled and a new
// window starts for the given query.
func (d *SearchDebouncer) Type(query string) {
	d.mu.Lock()
	defer d.mu.Unlock()

	if d.pending != nil {
		d.pending.Stop()
	}
	d.pending = time.AfterFunc(d.delay, func() {
		d.search(query)
	})
}

// Cancel drops any pending intent without firing it.
func (d *SearchDebouncer) Cancel() {
	d.mu.Lock()
	defer d.mu.Unlock()

	if d.pending != nil {
		d.pending.Stop()
		d.pending = nil
	}
}
