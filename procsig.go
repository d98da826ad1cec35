// Package procsig turns an operating-system child process into a single
// coherent stream of typed signals: process start, interleaved stdout/stderr
// lines, stream closure and termination. Streams can be observed push-based
// through an Observer or pulled signal by signal; a stream can also be folded
// into one aggregated completion record.
package procsig

import (
	"go.uber.org/fx"

	"procsig/internal/app/errors"
	"procsig/internal/app/oscmd"
	"procsig/internal/app/process"
	"procsig/internal/app/procstats"
	"procsig/internal/app/record"
	"procsig/internal/app/signal"
	"procsig/internal/app/stream"
	"procsig/internal/config"
	"procsig/internal/config/logger"
)

// Core types re-exported from the implementation packages.
type (
	Signal       = signal.Signal
	Kind         = signal.Kind
	Stream       = stream.Stream
	Observer     = stream.Observer
	Option       = stream.Option
	Record       = record.Record
	CapturedLine = record.CapturedLine
	LineKind     = record.LineKind
	Descriptor   = oscmd.Descriptor
	Handle       = process.Handle
	Factory      = process.Factory
	Line         = process.Line
)

// Signal kinds.
const (
	KindStarted        = signal.KindStarted
	KindOutputData     = signal.KindOutputData
	KindOutputDataDone = signal.KindOutputDataDone
	KindErrorData      = signal.KindErrorData
	KindErrorDataDone  = signal.KindErrorDataDone
	KindExited         = signal.KindExited
	KindDisposed       = signal.KindDisposed
)

// Line kinds.
const (
	LineOutput = record.LineOutput
	LineError  = record.LineError
)

// Sentinel errors.
var (
	ErrNilFactory        = errors.ErrNilFactory
	ErrNilDescriptor     = errors.ErrNilDescriptor
	ErrFailedToStart     = errors.ErrFailedToStartProcess
	ErrStreamCancelled   = errors.ErrStreamCancelled
	ErrExecutableMissing = errors.ErrExecutableRequired
)

// Subscription options.
var (
	WithFailfast = stream.WithFailfast
	WithBuffer   = stream.WithBuffer
)

// Module provides the complete fx wiring for embedding procsig in an fx
// application.
var Module = fx.Options(
	fx.Provide(config.Load),
	logger.Module,
	oscmd.Module,
	stream.Module,
	record.Module,
	procstats.Module,
)

// Subscribe spawns a fresh process described by the descriptor and returns
// its signal stream. Each call spawns an independent process; handles are
// never shared between subscriptions.
func Subscribe(desc *Descriptor, opts ...Option) (*Stream, error) {
	cfg, log, err := bootstrap()
	if err != nil {
		return nil, err
	}

	return open(cfg, log, desc, opts...)
}

// Observe is the push-based variant of Subscribe: the observer's callbacks
// fire on a dedicated goroutine and the returned stream acts as the
// cancellation handle.
func Observe(desc *Descriptor, obs Observer, opts ...Option) (*Stream, error) {
	st, err := Subscribe(desc, opts...)
	if err != nil {
		return nil, err
	}

	go st.Observe(obs)

	return st, nil
}

// Run spawns the process and blocks until it completes, returning the folded
// completion record.
func Run(desc *Descriptor, opts ...Option) (Record, error) {
	cfg, log, err := bootstrap()
	if err != nil {
		return Record{}, err
	}

	st, err := open(cfg, log, desc, opts...)
	if err != nil {
		return Record{}, err
	}

	sampler := procstats.NewSampler(cfg, procstats.NewProvider())

	return record.NewCollector(log).Collect(st, record.WithSampler(sampler)), nil
}

func open(cfg *config.Config, log logger.Logger, desc *Descriptor, opts ...Option) (*Stream, error) {
	factory, err := oscmd.NewSpawner(oscmd.NewLifecycle(log), log).Factory(desc)
	if err != nil {
		return nil, err
	}

	return stream.NewBuilder(cfg, log).Open(factory, opts...)
}

func bootstrap() (*config.Config, logger.Logger, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, nil, err
	}

	return cfg, logger.NewLogger(cfg), nil
}
