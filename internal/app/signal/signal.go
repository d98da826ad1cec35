package signal

import (
	"fmt"
	"time"
)

// Kind represents the type of signal
type Kind string

const (
	KindStarted        Kind = "started"
	KindOutputData     Kind = "output_data"
	KindOutputDataDone Kind = "output_data_done"
	KindErrorData      Kind = "error_data"
	KindErrorDataDone  Kind = "error_data_done"
	KindExited         Kind = "exited"
	KindDisposed       Kind = "disposed"
)

// Signal represents one discrete event describing process lifecycle or I/O
// activity. PID is zero until the process has started; Text is set only for
// data signals; ExitCode is set only for exited signals.
type Signal struct {
	Kind      Kind
	PID       int
	Text      string
	ExitCode  int
	Timestamp time.Time
}

// Started builds the first signal of a successful subscription
func Started(pid int) Signal {
	return Signal{Kind: KindStarted, PID: pid}
}

// OutputData builds a signal carrying one line of standard output
func OutputData(pid int, text string) Signal {
	return Signal{Kind: KindOutputData, PID: pid, Text: text}
}

// OutputDataDone builds the stdout end-of-stream marker signal
func OutputDataDone(pid int) Signal {
	return Signal{Kind: KindOutputDataDone, PID: pid}
}

// ErrorData builds a signal carrying one line of standard error
func ErrorData(pid int, text string) Signal {
	return Signal{Kind: KindErrorData, PID: pid, Text: text}
}

// ErrorDataDone builds the stderr end-of-stream marker signal
func ErrorDataDone(pid int) Signal {
	return Signal{Kind: KindErrorDataDone, PID: pid}
}

// Exited builds the terminal signal for a process that exited on its own
func Exited(pid int, exitCode int) Signal {
	return Signal{Kind: KindExited, PID: pid, ExitCode: exitCode}
}

// Disposed builds the terminal signal for a process that was force-disposed
func Disposed(pid int) Signal {
	return Signal{Kind: KindDisposed, PID: pid}
}

// Terminal reports whether the signal ends its stream
func (s Signal) Terminal() bool {
	return s.Kind == KindExited || s.Kind == KindDisposed
}

// Data reports whether the signal carries a captured line
func (s Signal) Data() bool {
	return s.Kind == KindOutputData || s.Kind == KindErrorData
}

// String returns a string representation of the signal
func (s Signal) String() string {
	switch s.Kind {
	case KindOutputData, KindErrorData:
		return fmt.Sprintf("%s{pid: %d, text: %q}", s.Kind, s.PID, s.Text)
	case KindExited:
		return fmt.Sprintf("%s{pid: %d, code: %d}", s.Kind, s.PID, s.ExitCode)
	default:
		return fmt.Sprintf("%s{pid: %d}", s.Kind, s.PID)
	}
}
