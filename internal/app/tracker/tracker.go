package tracker

import (
	"sync"
)

// State holds one readiness flag per completion channel. Flags are monotonic
// and only ever transition false to true.
type State struct {
	OutputDone bool
	ErrorDone  bool
	Exited     bool
	Disposed   bool
}

// Terminal reports whether every completion channel is satisfied
func (s State) Terminal() bool {
	return s.OutputDone && s.ErrorDone && (s.Exited || s.Disposed)
}

// Tracker accumulates completion-channel flags and fires once when all are
// satisfied. Concurrent marks from independent listener goroutines are
// serialized under the mutex, so each fold sees the previous accumulated
// state and at most one caller observes the not-terminal to terminal edge.
type Tracker struct {
	mu    sync.Mutex
	state State
	fired bool
}

// New creates a tracker. Flags for streams that were never redirected are
// pre-set, since there is nothing to wait for on those channels.
func New(trackOutput, trackError bool) *Tracker {
	return &Tracker{
		state: State{
			OutputDone: !trackOutput,
			ErrorDone:  !trackError,
		},
	}
}

// MarkOutputDone records stdout closure
func (t *Tracker) MarkOutputDone() (State, bool) {
	return t.fold(func(s *State) { s.OutputDone = true })
}

// MarkErrorDone records stderr closure
func (t *Tracker) MarkErrorDone() (State, bool) {
	return t.fold(func(s *State) { s.ErrorDone = true })
}

// MarkExited records process exit
func (t *Tracker) MarkExited() (State, bool) {
	return t.fold(func(s *State) { s.Exited = true })
}

// MarkDisposed records process disposal
func (t *Tracker) MarkDisposed() (State, bool) {
	return t.fold(func(s *State) { s.Disposed = true })
}

// State returns a snapshot of the accumulated flags
func (t *Tracker) State() State {
	t.mu.Lock()
	defer t.mu.Unlock()

	return t.state
}

// Fired reports whether the terminal condition has already been claimed
func (t *Tracker) Fired() bool {
	t.mu.Lock()
	defer t.mu.Unlock()

	return t.fired
}

// fold ORs one flag into the accumulated state and returns the new state
// plus true exactly once, on the transition that first satisfies the
// terminal condition.
func (t *Tracker) fold(apply func(*State)) (State, bool) {
	t.mu.Lock()
	defer t.mu.Unlock()

	apply(&t.state)

	if t.fired || !t.state.Terminal() {
		return t.state, false
	}

	t.fired = true

	return t.state, true
}
