package engine

import (
	"context"
	"time"

	"github.com/saifk/ramadan-companion/internal/state"
)

// Run drives the periodic loops until ctx is cancelled: reminder evaluation
// on reminderEvery (≈15s) and checklist housekeeping on housekeepEvery
// (≈60s). Ticks may be coalesced or skipped under load without breaking
// correctness: housekeeping is idempotent and reminders deduplicate
// through the sent log. Both tickers stop before Run returns.
func (e *Engine) Run(ctx context.Context, reminderEvery, housekeepEvery time.Duration) {
	reminders := time.NewTicker(reminderEvery)
	defer reminders.Stop()
	housekeeping := time.NewTicker(housekeepEvery)
	defer housekeeping.Stop()

	// One immediate pass so a freshly started daemon does not wait a full
	// period before catching up.
	e.Store.Dispatch(state.RunHousekeeping{Now: time.Now()})
	e.Tick(time.Now())

	for {
		select {
		case <-ctx.Done():
			return
		case now := <-reminders.C:
			e.Tick(now)
		case now := <-housekeeping.C:
			e.Store.Dispatch(state.RunHousekeeping{Now: now})
		}
	}
}
