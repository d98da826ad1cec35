package stream

import (
	"sync"
	"sync/atomic"
	"time"

	"github.com/looplab/fsm"

	"procsig/internal/app/process"
	"procsig/internal/app/signal"
	"procsig/internal/app/tracker"
	"procsig/internal/config/logger"
)

// subscription owns one spawned process, its event listeners and its
// completion state for the lifetime of one stream. It is created at
// subscribe time and destroyed either when the terminal signal fires or when
// the subscriber cancels early.
type subscription struct {
	handle  process.Handle
	track   *tracker.Tracker
	machine *fsm.FSM
	log     logger.Logger

	out   chan signal.Signal
	ready chan struct{} // closed once Started has been emitted
	stop  chan struct{} // closed on teardown, releases all listeners
	done  chan struct{} // closed when teardown has completed

	// released gates teardown: only one execution path may proceed past
	// releasing the subscription, whichever observes termination first.
	released atomic.Bool
	wg       sync.WaitGroup

	mu       sync.Mutex // serializes emission, err and exit-code access
	closed   bool
	err      error
	exitCode int
	exited   bool

	pid int // written once before ready is closed
}

func newSubscription(handle process.Handle, buffer int, machine *fsm.FSM, log logger.Logger) *subscription {
	return &subscription{
		handle:  handle,
		track:   tracker.New(handle.StdoutRedirected(), handle.StderrRedirected()),
		machine: machine,
		log:     log,
		out:     make(chan signal.Signal, buffer),
		ready:   make(chan struct{}),
		stop:    make(chan struct{}),
		done:    make(chan struct{}),
	}
}

// listen registers one listener goroutine per event source the handle
// exposes. Listeners stay parked until the Started signal has been emitted
// so that it is always the first element of the stream.
func (s *subscription) listen() {
	s.wg.Add(2)

	go s.watchExit()
	go s.watchDispose()

	if s.handle.StdoutRedirected() {
		s.wg.Add(1)

		go s.watchStdout()
	}

	if s.handle.StderrRedirected() {
		s.wg.Add(1)

		go s.watchStderr()
	}
}

// await parks a listener until the subscription is running or torn down
func (s *subscription) await() bool {
	select {
	case <-s.ready:
		return true
	case <-s.stop:
		return false
	}
}

func (s *subscription) watchExit() {
	defer s.wg.Done()

	if !s.await() {
		return
	}

	select {
	case <-s.stop:
		return
	case code, ok := <-s.handle.Exited():
		if !ok {
			return
		}

		s.setExitCode(code)

		if _, fire := s.track.MarkExited(); fire {
			s.finishTerminal()
		}
	}
}

func (s *subscription) watchDispose() {
	defer s.wg.Done()

	if !s.await() {
		return
	}

	select {
	case <-s.stop:
		return
	case <-s.handle.Disposed():
		if _, fire := s.track.MarkDisposed(); fire {
			s.finishTerminal()
		}
	}
}

func (s *subscription) watchStdout() {
	defer s.wg.Done()

	if !s.await() {
		return
	}

	for {
		select {
		case <-s.stop:
			return
		case line, ok := <-s.handle.Stdout():
			if !ok {
				return
			}

			if line.EOF {
				s.emit(signal.OutputDataDone(s.pid))

				if _, fire := s.track.MarkOutputDone(); fire {
					s.finishTerminal()
				}

				return
			}

			s.emit(signal.OutputData(s.pid, line.Text))
		}
	}
}

func (s *subscription) watchStderr() {
	defer s.wg.Done()

	if !s.await() {
		return
	}

	for {
		select {
		case <-s.stop:
			return
		case line, ok := <-s.handle.Stderr():
			if !ok {
				return
			}

			if line.EOF {
				s.emit(signal.ErrorDataDone(s.pid))

				if _, fire := s.track.MarkErrorDone(); fire {
					s.finishTerminal()
				}

				return
			}

			s.emit(signal.ErrorData(s.pid, line.Text))
		}
	}
}

// emit forwards one signal to the stream. Emission is serialized under the
// mutex; nothing is ever sent after the channel has been closed. A send
// blocked on a slow consumer aborts when the subscription is torn down.
func (s *subscription) emit(sig signal.Signal) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		return
	}

	sig.Timestamp = time.Now()

	select {
	case s.out <- sig:
	case <-s.stop:
	}
}

// finishTerminal emits the single terminal signal and releases the
// subscription. The tracker admits exactly one caller here; Exited takes
// priority over Disposed when both flags are set.
func (s *subscription) finishTerminal() {
	state := s.track.State()

	var sig signal.Signal
	if state.Exited {
		sig = signal.Exited(s.pid, s.getExitCode())
	} else {
		sig = signal.Disposed(s.pid)
	}

	s.log.Debug().Msgf("terminal signal %s", sig)
	transition(s.machine, s.log, Complete)

	s.mu.Lock()
	if !s.closed {
		sig.Timestamp = time.Now()

		select {
		case s.out <- sig:
		case <-s.stop:
		}

		s.closed = true
		close(s.out)
	}
	s.mu.Unlock()

	s.teardown(nil)
}

// teardown is the single release routine invoked from terminal emission,
// cancellation and setup failure. The CAS on released makes it idempotent
// under races between subscriber disposal and the process's own dispose
// notification.
func (s *subscription) teardown(err error) {
	if !s.released.CompareAndSwap(false, true) {
		return
	}

	close(s.stop)

	s.mu.Lock()
	if !s.closed {
		s.err = err
		s.closed = true
		close(s.out)
	}
	s.mu.Unlock()

	s.handle.Dispose()
	close(s.done)
}

func (s *subscription) setExitCode(code int) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.exitCode = code
	s.exited = true
}

func (s *subscription) getExitCode() int {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.exitCode
}

func (s *subscription) getErr() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.err
}
