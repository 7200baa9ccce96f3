package worker

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	amqp "github.com/rabbitmq/amqp091-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"statusboard/internal/model"
	"statusboard/internal/repository/memory"
)

type fakeAcknowledger struct {
	acked    int
	nacked   int
	requeued bool
}

func (f *fakeAcknowledger) Ack(uint64, bool) error { f.acked++; return nil }
func (f *fakeAcknowledger) Nack(_ uint64, _ bool, requeue bool) error {
	f.nacked++
	f.requeued = requeue
	return nil
}
func (f *fakeAcknowledger) Reject(uint64, bool) error { return nil }

type failingWriter struct{}

func (failingWriter) Create(context.Context, *model.Activity) error {
	return errors.New("db down")
}

func delivery(t *testing.T, ack amqp.Acknowledger, v any) amqp.Delivery {
	t.Helper()
	body, err := json.Marshal(v)
	require.NoError(t, err)
	return amqp.Delivery{Acknowledger: ack, Body: body}
}

func TestHandlePersistsAndAcks(t *testing.T) {
	repo := memory.NewActivityRepository()
	w := NewActivityPersistWorker(nil, repo, "activity")
	ack := &fakeAcknowledger{}

	at := time.Date(2026, 4, 4, 4, 4, 4, 0, time.UTC)
	w.handle(context.Background(), delivery(t, ack, model.Activity{
		ActorID: "u1", Action: model.ActionStatusLiked, TargetID: "s1", CreatedAt: at,
	}))

	assert.Equal(t, 1, ack.acked)
	assert.Equal(t, 0, ack.nacked)

	stored, err := repo.ListByActor(context.Background(), "u1")
	require.NoError(t, err)
	require.Len(t, stored, 1)
	assert.Equal(t, "s1", stored[0].TargetID)
	assert.True(t, at.Equal(stored[0].CreatedAt))
}

func TestHandleDropsUndecodable(t *testing.T) {
	w := NewActivityPersistWorker(nil, memory.NewActivityRepository(), "activity")
	ack := &fakeAcknowledger{}

	w.handle(context.Background(), amqp.Delivery{Acknowledger: ack, Body: []byte("{not json")})

	assert.Equal(t, 0, ack.acked)
	assert.Equal(t, 1, ack.nacked)
	assert.False(t, ack.requeued)
}

func TestHandleNacksOnStoreFailure(t *testing.T) {
	w := NewActivityPersistWorker(nil, failingWriter{}, "activity")
	ack := &fakeAcknowledger{}

	w.handle(context.Background(), delivery(t, ack, model.Activity{ActorID: "u1", Action: model.ActionStatusCreated}))

	assert.Equal(t, 1, ack.nacked)
	assert.False(t, ack.requeued)
}

func TestRunStopsWhenDeliveriesClose(t *testing.T) {
	repo := memory.NewActivityRepository()
	w := NewActivityPersistWorker(nil, repo, "activity")
	ack := &fakeAcknowledger{}

	deliveries := make(chan amqp.Delivery, 2)
	deliveries <- delivery(t, ack, model.Activity{ActorID: "u1", Action: model.ActionStatusCreated})
	deliveries <- delivery(t, ack, model.Activity{ActorID: "u1", Action: model.ActionStatusDeleted})
	close(deliveries)

	w.run(context.Background(), deliveries)

	assert.Equal(t, 2, ack.acked)
	stored, err := repo.ListByActor(context.Background(), "u1")
	require.NoError(t, err)
	assert.Len(t, stored, 2)
}
