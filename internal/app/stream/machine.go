package stream

import (
	"context"

	"github.com/looplab/fsm"

	"procsig/internal/config/logger"
)

// FSM states
const (
	Pending   = "pending"
	Starting  = "starting"
	Running   = "running"
	Completed = "completed"
	Failed    = "failed"
	Cancelled = "cancelled"
)

// FSM events
const (
	Start    = "start"
	Started  = "started"
	Complete = "complete"
	Fail     = "fail"
	Cancel   = "cancel"
)

// newSubscriptionFSM creates a state machine for the subscription lifecycle.
// The machine is observational: the single-fire terminal guarantee comes from
// the tracker and the released flag, the machine records which phase the
// subscription is in and rejects out-of-order transitions.
func newSubscriptionFSM(log logger.Logger) *fsm.FSM {
	return fsm.NewFSM(
		Pending,
		fsm.Events{
			{Name: Start, Src: []string{Pending}, Dst: Starting},
			{Name: Started, Src: []string{Starting}, Dst: Running},
			{Name: Complete, Src: []string{Running}, Dst: Completed},
			{Name: Fail, Src: []string{Pending, Starting, Running}, Dst: Failed},
			{Name: Cancel, Src: []string{Pending, Starting, Running}, Dst: Cancelled},
		},
		fsm.Callbacks{
			"after_event": func(ctx context.Context, e *fsm.Event) {
				log.Debug().Msgf("subscription %s → %s (trigger: %s)", e.Src, e.Dst, e.Event)
			},
		},
	)
}

// transition fires an FSM event and logs rejected transitions at debug level.
// Losing a transition race (e.g. cancel arriving after complete) is expected
// and harmless; the machine simply stays in its terminal state.
func transition(machine *fsm.FSM, log logger.Logger, event string) {
	if err := machine.Event(context.Background(), event); err != nil {
		log.Debug().Err(err).Msgf("subscription transition %q rejected", event)
	}
}
