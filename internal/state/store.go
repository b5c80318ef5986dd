package state

import (
	"sync"

	"github.com/rs/zerolog"

	"github.com/saifk/ramadan-companion/internal/model"
)

// Persister saves a committed state snapshot. Failures are logged and
// swallowed; persistence must never fail a reducer transition.
type Persister func(*model.AppState) error

// Store serializes dispatches over a single state value. Multiple periodic
// tickers may dispatch in overlapping ticks, but each transition fully
// commits before the next is applied, so no locking is needed elsewhere.
type Store struct {
	mu      sync.Mutex
	state   *model.AppState
	reducer Reducer

	saveMu  sync.Mutex
	persist Persister
	wg      sync.WaitGroup
	log     zerolog.Logger
}

// NewStore wraps an initial state with a reducer and an optional persister.
func NewStore(initial *model.AppState, reducer Reducer, persist Persister, log zerolog.Logger) *Store {
	return &Store{
		state:   initial,
		reducer: reducer,
		persist: persist,
		log:     log,
	}
}

// State returns the most recently committed snapshot. Snapshots are treated
// as immutable by every consumer.
func (st *Store) State() *model.AppState {
	st.mu.Lock()
	defer st.mu.Unlock()
	return st.state
}

// Dispatch applies one action and returns the committed state. Changed
// commits are persisted asynchronously; the reducer path never blocks on
// disk I/O.
func (st *Store) Dispatch(action Action) *model.AppState {
	st.mu.Lock()
	prev := st.state
	next := st.reducer.Reduce(prev, action)
	st.state = next
	st.mu.Unlock()

	if next != prev && st.persist != nil {
		st.wg.Add(1)
		go st.save()
	}
	return next
}

func (st *Store) save() {
	defer st.wg.Done()
	// Serialize writers and always persist the latest snapshot, so a burst
	// of dispatches cannot write an older state after a newer one.
	st.saveMu.Lock()
	defer st.saveMu.Unlock()
	if err := st.persist(st.State()); err != nil {
		st.log.Error().Err(err).Msg("state persist failed")
	}
}

// Flush waits for pending persistence work. Call on shutdown.
func (st *Store) Flush() {
	st.wg.Wait()
}
