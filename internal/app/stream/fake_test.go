package stream

import (
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"procsig/internal/app/process"
	"procsig/internal/app/signal"
	"procsig/internal/config"
	"procsig/internal/config/logger"
)

// fakeHandle is a scriptable process.Handle; tests drive its event sources
// directly to simulate arbitrary arrival orders.
type fakeHandle struct {
	pid       int
	startErr  error
	stdoutOn  bool
	stderrOn  bool
	exited    chan int
	disposed  chan struct{}
	stdout    chan process.Line
	stderr    chan process.Line
	exitCode  atomic.Int32
	started   atomic.Bool
	disposals atomic.Int32
}

func newFakeHandle(pid int, stdoutOn, stderrOn bool) *fakeHandle {
	return &fakeHandle{
		pid:      pid,
		stdoutOn: stdoutOn,
		stderrOn: stderrOn,
		exited:   make(chan int, 1),
		disposed: make(chan struct{}),
		stdout:   make(chan process.Line, 16),
		stderr:   make(chan process.Line, 16),
	}
}

func (f *fakeHandle) Start() error {
	if f.startErr != nil {
		return f.startErr
	}

	f.started.Store(true)

	return nil
}

func (f *fakeHandle) PID() int                  { return f.pid }
func (f *fakeHandle) ExitCode() int             { return int(f.exitCode.Load()) }
func (f *fakeHandle) StdoutRedirected() bool    { return f.stdoutOn }
func (f *fakeHandle) StderrRedirected() bool    { return f.stderrOn }
func (f *fakeHandle) Exited() <-chan int        { return f.exited }
func (f *fakeHandle) Disposed() <-chan struct{} { return f.disposed }
func (f *fakeHandle) Stdout() <-chan process.Line {
	return f.stdout
}
func (f *fakeHandle) Stderr() <-chan process.Line {
	return f.stderr
}
func (f *fakeHandle) Dispose() { f.disposals.Add(1) }

func (f *fakeHandle) out(text string)  { f.stdout <- process.Line{Text: text} }
func (f *fakeHandle) outEOF()          { f.stdout <- process.Line{EOF: true}; close(f.stdout) }
func (f *fakeHandle) errOut(text string) {
	f.stderr <- process.Line{Text: text}
}
func (f *fakeHandle) errEOF() { f.stderr <- process.Line{EOF: true}; close(f.stderr) }

func (f *fakeHandle) exit(code int) {
	f.exitCode.Store(int32(code))
	f.exited <- code
	close(f.exited)
}

func (f *fakeHandle) notifyDisposed() { close(f.disposed) }

func (f *fakeHandle) factory() process.Factory {
	return func() process.Handle { return f }
}

func newTestBuilder() Builder {
	return NewBuilder(config.DefaultConfig(), logger.Nop())
}

func nextSignal(t *testing.T, st *Stream) signal.Signal {
	t.Helper()

	select {
	case sig, ok := <-st.Signals():
		require.True(t, ok, "stream closed while waiting for a signal")
		return sig
	case <-time.After(time.Second):
		t.Fatal("timeout waiting for signal")
	}

	return signal.Signal{}
}

// drain reads the stream to completion and returns every remaining signal
func drain(t *testing.T, st *Stream) []signal.Signal {
	t.Helper()

	var signals []signal.Signal

	for {
		select {
		case sig, ok := <-st.Signals():
			if !ok {
				return signals
			}

			signals = append(signals, sig)
		case <-time.After(time.Second):
			t.Fatal("timeout draining stream")
		}
	}
}

func awaitClosed(t *testing.T, st *Stream) {
	t.Helper()

	select {
	case <-st.Done():
	case <-time.After(time.Second):
		t.Fatal("timeout waiting for stream teardown")
	}
}
