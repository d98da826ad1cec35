package process

//go:generate mockgen -source=process.go -destination=process_mock.go -package=process

// Line is one line-read event from a redirected stream. EOF marks the
// end-of-stream sentinel; a Line with EOF set carries no text.
type Line struct {
	Text string
	EOF  bool
}

// Handle is the capability the coordinator needs from an OS process. The
// four event channels fire on threads owned by the platform; each fires its
// terminal value once. Stdout and Stderr deliver an EOF marker and are then
// closed. Exited delivers the exit code; Disposed closes on forced disposal.
type Handle interface {
	Start() error
	PID() int
	ExitCode() int
	StdoutRedirected() bool
	StderrRedirected() bool
	Exited() <-chan int
	Disposed() <-chan struct{}
	Stdout() <-chan Line
	Stderr() <-chan Line
	Dispose()
}

// Factory produces a fresh, not-yet-started Handle. Every subscription
// invokes the factory anew; handles are never shared across subscriptions.
type Factory func() Handle
