package app

import (
	"context"

	"github.com/jonboulle/clockwork"
	"github.com/rs/zerolog/log"

	"statusboard/internal/model"
)

type ActivityPublisher interface {
	Publish(ctx context.Context, activity model.Activity) error
}

// ActivityRecorder appends to the audit trail. With a publisher the entry goes
// through the queue and is persisted by the worker; without one, or when the
// publish fails, it is written to the store directly. Recording never fails
// the calling operation.
type ActivityRecorder struct {
	publisher ActivityPublisher
	store     ActivityStore
	clock     clockwork.Clock
}

func NewActivityRecorder(publisher ActivityPublisher, store ActivityStore, clock clockwork.Clock) *ActivityRecorder {
	if clock == nil {
		clock = clockwork.NewRealClock()
	}
	return &ActivityRecorder{publisher: publisher, store: store, clock: clock}
}

func (r *ActivityRecorder) Record(ctx context.Context, actorID, action, targetID string) {
	if r == nil {
		return
	}
	activity := model.Activity{
		ActorID:   actorID,
		Action:    action,
		TargetID:  targetID,
		CreatedAt: r.clock.Now(),
	}

	if r.publisher != nil {
		err := r.publisher.Publish(ctx, activity)
		if err == nil {
			return
		}
		log.Warn().Err(err).Str("action", action).Str("actor_id", actorID).Msg("publish activity failed, writing directly")
	}
	if r.store == nil {
		return
	}
	if err := r.store.Create(ctx, &activity); err != nil {
		log.Error().Err(err).Str("action", action).Str("actor_id", actorID).Msg("persist activity failed")
	}
}
