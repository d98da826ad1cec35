package oscmd

import (
	"bufio"
	"fmt"
	"io"
	"os/exec"
	"sync"

	"procsig/internal/app/errors"
	"procsig/internal/app/process"
	"procsig/internal/config"
	"procsig/internal/config/logger"
)

// Scanner buffer size constants
const (
	// scannerBufferSize is the initial buffer size for reading process output (64KB)
	scannerBufferSize = 64 * 1024
	// scannerMaxBufferSize is the maximum buffer size for reading process output (4MB)
	scannerMaxBufferSize = 4 * 1024 * 1024

	// lineChanBuffer is the capacity of the per-stream line channels
	lineChanBuffer = 64
)

// handle implements process.Handle over os/exec. One handle spawns exactly
// one OS process; the line channels carry one Line per read line followed by
// an EOF marker, Exited fires once with the exit code and Disposed closes
// when a forced disposal has finished.
type handle struct {
	desc      *Descriptor
	lifecycle Lifecycle
	log       logger.Logger

	cmd        *exec.Cmd
	stdoutPipe io.ReadCloser
	stderrPipe io.ReadCloser

	exited   chan int
	disposed chan struct{}
	stdout   chan process.Line
	stderr   chan process.Line
	reaped   chan struct{} // closed once cmd.Wait has returned
	quit     chan struct{} // closed on Dispose, aborts blocked line deliveries

	readers sync.WaitGroup
	dispose sync.Once

	mu       sync.Mutex
	pid      int
	exitCode int
}

func newHandle(desc *Descriptor, lc Lifecycle, log logger.Logger) *handle {
	return &handle{
		desc:      desc,
		lifecycle: lc,
		log:       log,
		exited:    make(chan int, 1),
		disposed:  make(chan struct{}),
		stdout:    make(chan process.Line, lineChanBuffer),
		stderr:    make(chan process.Line, lineChanBuffer),
		reaped:    make(chan struct{}),
		quit:      make(chan struct{}),
	}
}

// Start launches the configured process and begins asynchronous line reading
// on every captured stream
func (h *handle) Start() error {
	env, err := h.desc.environ()
	if err != nil {
		return err
	}

	cmd := exec.Command(h.desc.Path, h.desc.Args...) // #nosec G204 -- the descriptor is caller-provided launch configuration
	cmd.Dir = h.desc.Dir
	cmd.Env = env

	if h.desc.CaptureStdout {
		pipe, err := cmd.StdoutPipe()
		if err != nil {
			return fmt.Errorf("%w (stdout): %w", errors.ErrFailedToCreatePipe, err)
		}

		h.stdoutPipe = pipe
	}

	if h.desc.CaptureStderr {
		pipe, err := cmd.StderrPipe()
		if err != nil {
			return fmt.Errorf("%w (stderr): %w", errors.ErrFailedToCreatePipe, err)
		}

		h.stderrPipe = pipe
	}

	h.lifecycle.Configure(cmd)

	if err := cmd.Start(); err != nil {
		return fmt.Errorf("%w: %w", errors.ErrFailedToStartProcess, err)
	}

	h.mu.Lock()
	h.cmd = cmd
	h.pid = cmd.Process.Pid
	h.mu.Unlock()

	h.log.Info().Msgf("Started process '%s' (PID: %d)", h.desc.Path, cmd.Process.Pid)

	if h.stdoutPipe != nil {
		h.readers.Add(1)

		go h.scanStream(h.stdoutPipe, h.stdout, "STDOUT")
	}

	if h.stderrPipe != nil {
		h.readers.Add(1)

		go h.scanStream(h.stderrPipe, h.stderr, "STDERR")
	}

	go h.reap(cmd)

	return nil
}

// PID returns the OS-assigned process id, valid only after Start
func (h *handle) PID() int {
	h.mu.Lock()
	defer h.mu.Unlock()

	return h.pid
}

// ExitCode returns the recorded exit code, valid only after the process exited
func (h *handle) ExitCode() int {
	h.mu.Lock()
	defer h.mu.Unlock()

	return h.exitCode
}

// StdoutRedirected reports whether stdout is captured
func (h *handle) StdoutRedirected() bool {
	return h.desc.CaptureStdout
}

// StderrRedirected reports whether stderr is captured
func (h *handle) StderrRedirected() bool {
	return h.desc.CaptureStderr
}

// Exited returns the exit notification channel
func (h *handle) Exited() <-chan int {
	return h.exited
}

// Disposed returns the disposal notification channel
func (h *handle) Disposed() <-chan struct{} {
	return h.disposed
}

// Stdout returns the stdout line channel
func (h *handle) Stdout() <-chan process.Line {
	return h.stdout
}

// Stderr returns the stderr line channel
func (h *handle) Stderr() <-chan process.Line {
	return h.stderr
}

// Dispose force-terminates the process and fires the disposal notification.
// It is idempotent; disposing an unstarted or already-exited process only
// closes the notification channel.
func (h *handle) Dispose() {
	h.dispose.Do(func() {
		close(h.quit)

		h.mu.Lock()
		cmd := h.cmd
		h.mu.Unlock()

		if cmd != nil {
			timeout := h.desc.ShutdownTimeout
			if timeout <= 0 {
				timeout = config.ShutdownTimeout
			}

			if err := h.lifecycle.Terminate(cmd, h.reaped, timeout); err != nil {
				h.log.Error().Err(err).Msgf("Failed to terminate process (PID: %d)", h.PID())
			}
		}

		close(h.disposed)
	})
}

// scanStream reads one captured pipe line by line, then delivers the
// end-of-stream marker and closes the channel. Deliveries abort when the
// handle is disposed so a vanished consumer cannot block reaping.
func (h *handle) scanStream(src io.Reader, dst chan process.Line, streamType string) {
	defer h.readers.Done()
	defer close(dst)

	scanner := bufio.NewScanner(src)
	scanner.Buffer(make([]byte, scannerBufferSize), scannerMaxBufferSize)

	for scanner.Scan() {
		select {
		case dst <- process.Line{Text: scanner.Text()}:
		case <-h.quit:
			return
		}
	}

	if err := scanner.Err(); err != nil {
		h.log.Error().Err(err).Msgf("Error reading %s stream (PID: %d)", streamType, h.PID())
	}

	select {
	case dst <- process.Line{EOF: true}:
	case <-h.quit:
	}
}

// reap waits for the readers to drain the pipes, then reaps the process and
// fires the exit notification with its code
func (h *handle) reap(cmd *exec.Cmd) {
	h.readers.Wait()

	err := cmd.Wait()
	close(h.reaped)

	code := 0

	if err != nil {
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			code = exitErr.ExitCode()
		} else {
			code = -1
		}

		h.log.Debug().Err(err).Msgf("Process exited with error (PID: %d)", h.PID())
	}

	h.mu.Lock()
	h.exitCode = code
	h.mu.Unlock()

	h.exited <- code
	close(h.exited)
}
