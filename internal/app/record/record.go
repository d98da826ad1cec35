package record

import (
	"time"

	"procsig/internal/app/procstats"
	"procsig/internal/app/signal"
	"procsig/internal/app/stream"
	"procsig/internal/config/logger"
)

// LineKind tags a captured line with the stream it came from
type LineKind string

const (
	LineOutput LineKind = "output"
	LineError  LineKind = "error"
)

// CapturedLine is one captured output or error line. Seq is assigned in
// emission order across both streams, starting at zero.
type CapturedLine struct {
	Kind      LineKind
	Seq       int
	Text      string
	Timestamp time.Time
}

// Record is the aggregated completion record folded from one signal stream
type Record struct {
	PID      int
	Started  bool
	ExitCode int
	Exited   bool
	Disposed bool
	Err      error
	Lines    []CapturedLine
	Peak     procstats.Stats
	Sampled  bool
}

// Option customizes one fold
type Option func(*options)

type options struct {
	filter  Filter
	sampler procstats.Sampler
}

// WithFilter keeps only captured lines accepted by the filter
func WithFilter(f Filter) Option {
	return func(o *options) {
		o.filter = f
	}
}

// WithSampler tracks peak resource usage of the process while the stream is
// live and folds it into the record
func WithSampler(s procstats.Sampler) Option {
	return func(o *options) {
		o.sampler = s
	}
}

// Collector folds signal streams into completion records
type Collector interface {
	Collect(st *stream.Stream, opts ...Option) Record
}

type collector struct {
	log logger.Logger
}

// NewCollector creates a new Collector instance
func NewCollector(log logger.Logger) Collector {
	return &collector{log: log.WithComponent("RECORD")}
}

// Collect consumes the stream to completion and returns the folded record.
// It blocks until the stream ends; the signal ordering guarantees of the
// stream make the sequence numbering deterministic.
func (c *collector) Collect(st *stream.Stream, opts ...Option) Record {
	o := &options{}
	for _, opt := range opts {
		opt(o)
	}

	rec := Record{}
	seq := 0

	for sig := range st.Signals() {
		switch sig.Kind {
		case signal.KindStarted:
			rec.Started = true
			rec.PID = sig.PID

			if o.sampler != nil {
				go o.sampler.Watch(sig.PID, st.Done())
			}
		case signal.KindOutputData:
			if o.filter == nil || o.filter.Match(sig.Text) {
				rec.Lines = append(rec.Lines, CapturedLine{Kind: LineOutput, Seq: seq, Text: sig.Text, Timestamp: sig.Timestamp})
				seq++
			}
		case signal.KindErrorData:
			if o.filter == nil || o.filter.Match(sig.Text) {
				rec.Lines = append(rec.Lines, CapturedLine{Kind: LineError, Seq: seq, Text: sig.Text, Timestamp: sig.Timestamp})
				seq++
			}
		case signal.KindExited:
			rec.Exited = true
			rec.ExitCode = sig.ExitCode
		case signal.KindDisposed:
			rec.Disposed = true
		case signal.KindOutputDataDone, signal.KindErrorDataDone:
		}
	}

	rec.Err = st.Err()

	if o.sampler != nil {
		rec.Peak = o.sampler.Peak()
		rec.Sampled = true
	}

	c.log.Debug().Msgf("collected record: pid=%d exited=%t disposed=%t lines=%d err=%v",
		rec.PID, rec.Exited, rec.Disposed, len(rec.Lines), rec.Err)

	return rec
}
