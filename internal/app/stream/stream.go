package stream

import (
	"procsig/internal/app/errors"
	"procsig/internal/app/signal"
)

// Stream is one subscription's ordered signal sequence. Signals are consumed
// exactly once: the channel starts with Started, carries data and data-done
// signals, and ends with exactly one of Exited or Disposed before closing.
// A stream that failed to start or was cancelled closes without a terminal
// signal and reports the cause through Err.
type Stream struct {
	sub *subscription
}

// Signals returns the signal channel. Receiving blocks the caller until the
// next signal is produced by whichever listener produces it.
func (st *Stream) Signals() <-chan signal.Signal {
	return st.sub.out
}

// Done returns a channel closed once the subscription has been released
func (st *Stream) Done() <-chan struct{} {
	return st.sub.done
}

// Err reports why the stream ended without a terminal signal. It returns nil
// for gracefully completed streams and is meaningful once Signals is closed.
func (st *Stream) Err() error {
	return st.sub.getErr()
}

// PID returns the OS-assigned process id, zero if the process never started
func (st *Stream) PID() int {
	select {
	case <-st.sub.ready:
		return st.sub.pid
	default:
		return 0
	}
}

// Cancel forcibly disposes the underlying process and stops emission. It is
// idempotent and safe to call concurrently with terminal-signal delivery;
// cancelling an already-completed stream is a no-op.
func (st *Stream) Cancel() {
	transition(st.sub.machine, st.sub.log, Cancel)
	st.sub.teardown(errors.ErrStreamCancelled)
}

// Observer receives a stream's signals push-based. Callbacks fire on the
// goroutine driving Observe; any callback may be nil.
type Observer struct {
	OnSignal   func(signal.Signal)
	OnError    func(error)
	OnComplete func()
}

// Observe drains the stream into the observer and returns when the stream
// ends. OnComplete fires after a terminal signal, OnError after a stream
// error; a cancelled stream fires neither, since the subscriber abandoned
// interest.
func (st *Stream) Observe(obs Observer) {
	for sig := range st.Signals() {
		if obs.OnSignal != nil {
			obs.OnSignal(sig)
		}
	}

	err := st.Err()

	switch {
	case err == nil:
		if obs.OnComplete != nil {
			obs.OnComplete()
		}
	case errors.Is(err, errors.ErrStreamCancelled):
	default:
		if obs.OnError != nil {
			obs.OnError(err)
		}
	}
}
