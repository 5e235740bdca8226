package animation

import (
	"context"
	"time"
)

// TickerFrames paces a headless loop with a wall-clock ticker.
type TickerFrames struct {
	ctx    context.Context
	ticker *time.Ticker
	limit  uint64
	count  uint64
}

// NewTickerFrames returns a frame source firing every interval. A limit of 0 never runs out.
// Call Stop when done.
func NewTickerFrames(ctx context.Context, interval time.Duration, limit uint64) *TickerFrames {
	return &TickerFrames{
		ctx:    ctx,
		ticker: time.NewTicker(interval),
		limit:  limit,
	}
}

// Next waits for the next tick. It reports false once the limit is reached or ctx is done.
func (f *TickerFrames) Next() bool {
	if f.limit > 0 && f.count >= f.limit {
		return false
	}
	select {
	case <-f.ctx.Done():
		return false
	case <-f.ticker.C:
		f.count++
		return true
	}
}

// Stop releases the ticker.
func (f *TickerFrames) Stop() {
	f.ticker.Stop()
}
