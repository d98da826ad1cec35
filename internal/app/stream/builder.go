package stream

import (
	"fmt"

	"procsig/internal/app/errors"
	"procsig/internal/app/process"
	"procsig/internal/app/signal"
	"procsig/internal/config"
	"procsig/internal/config/logger"
)

// Option customizes one subscription
type Option func(*options)

type options struct {
	failfast bool
	buffer   int
}

// WithFailfast selects how start failures surface: raised synchronously out
// of Open (true) or delivered as the stream error (false)
func WithFailfast(failfast bool) Option {
	return func(o *options) {
		o.failfast = failfast
	}
}

// WithBuffer overrides the signal channel capacity for one subscription
func WithBuffer(buffer int) Option {
	return func(o *options) {
		o.buffer = buffer
	}
}

// Builder owns the public subscribe contract: every Open invokes the factory
// anew so no process instance is ever shared across two subscriptions.
type Builder interface {
	Open(factory process.Factory, opts ...Option) (*Stream, error)
}

type builder struct {
	cfg *config.Config
	log logger.Logger
}

// NewBuilder creates a new stream builder
func NewBuilder(cfg *config.Config, log logger.Logger) Builder {
	return &builder{
		cfg: cfg,
		log: log.WithComponent("STREAM"),
	}
}

// Open spawns a fresh process from the factory and returns its signal
// stream. It fails synchronously only on an invalid factory, or on a start
// failure under the failfast policy; otherwise start failures are reported
// through the returned stream's Err after it closes without signals.
func (b *builder) Open(factory process.Factory, opts ...Option) (*Stream, error) {
	if factory == nil {
		return nil, errors.ErrNilFactory
	}

	o := &options{
		failfast: b.cfg.Stream.Failfast,
		buffer:   b.cfg.Stream.Buffer,
	}
	for _, opt := range opts {
		opt(o)
	}

	if o.buffer < 1 {
		o.buffer = 1
	}

	handle := factory()
	if handle == nil {
		return nil, errors.ErrNilHandle
	}

	machine := newSubscriptionFSM(b.log)
	sub := newSubscription(handle, o.buffer, machine, b.log)

	// Listeners attach before the process starts so no event is missed;
	// they stay parked until the Started signal is on the stream.
	sub.listen()

	transition(machine, b.log, Start)

	if err := handle.Start(); err != nil {
		wrapped := fmt.Errorf("%w: %w", errors.ErrFailedToStartProcess, err)

		transition(machine, b.log, Fail)
		sub.teardown(wrapped)

		if o.failfast {
			return nil, wrapped
		}

		b.log.Warn().Err(err).Msg("process start failed, delivering as stream error")

		return &Stream{sub: sub}, nil
	}

	sub.pid = handle.PID()
	sub.emit(signal.Started(sub.pid))
	transition(machine, b.log, Started)
	close(sub.ready)

	b.log.Info().Msgf("subscribed to process (PID: %d)", sub.pid)

	return &Stream{sub: sub}, nil
}
