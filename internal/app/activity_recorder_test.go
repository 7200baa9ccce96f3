package app

import (
	"context"
	"testing"
	"time"

	"github.com/jonboulle/clockwork"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"statusboard/internal/model"
	"statusboard/internal/repository/memory"
)

type capturePublisher struct {
	published []model.Activity
	err       error
}

func (p *capturePublisher) Publish(_ context.Context, activity model.Activity) error {
	if p.err != nil {
		return p.err
	}
	p.published = append(p.published, activity)
	return nil
}

func TestActivityRecorderPrefersPublisher(t *testing.T) {
	clock := clockwork.NewFakeClockAt(time.Date(2026, 2, 2, 0, 0, 0, 0, time.UTC))
	store := memory.NewActivityRepository()
	pub := &capturePublisher{}
	rec := NewActivityRecorder(pub, store, clock)

	rec.Record(context.Background(), "u1", model.ActionStatusCreated, "s1")

	require.Len(t, pub.published, 1)
	assert.Equal(t, "u1", pub.published[0].ActorID)
	assert.Equal(t, clock.Now(), pub.published[0].CreatedAt)

	stored, err := store.ListByActor(context.Background(), "u1")
	require.NoError(t, err)
	assert.Empty(t, stored)
}

func TestActivityRecorderFallsBackToStore(t *testing.T) {
	store := memory.NewActivityRepository()
	rec := NewActivityRecorder(&capturePublisher{err: errBoom}, store, nil)

	rec.Record(context.Background(), "u1", model.ActionStatusLiked, "s1")

	stored, err := store.ListByActor(context.Background(), "u1")
	require.NoError(t, err)
	require.Len(t, stored, 1)
	assert.Equal(t, model.ActionStatusLiked, stored[0].Action)
}

func TestNilActivityRecorderIsNoop(t *testing.T) {
	var rec *ActivityRecorder
	assert.NotPanics(t, func() {
		rec.Record(context.Background(), "u1", model.ActionStatusLiked, "s1")
	})
}
