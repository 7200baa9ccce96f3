package worker

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"

	amqp "github.com/rabbitmq/amqp091-go"
	"github.com/rs/zerolog/log"

	"statusboard/internal/model"
	"statusboard/internal/platform/rabbitmq"
)

type ActivityWriter interface {
	Create(ctx context.Context, activity *model.Activity) error
}

// ActivityPersistWorker drains the activity queue into the activity store.
type ActivityPersistWorker struct {
	conn      *amqp.Connection
	repo      ActivityWriter
	queueName string

	cancel context.CancelFunc
	wg     sync.WaitGroup
}

func NewActivityPersistWorker(conn *amqp.Connection, repo ActivityWriter, queueName string) *ActivityPersistWorker {
	return &ActivityPersistWorker{
		conn:      conn,
		repo:      repo,
		queueName: queueName,
	}
}

func (w *ActivityPersistWorker) Start(ctx context.Context) error {
	if w.cancel != nil {
		return nil
	}

	workerCtx, cancel := context.WithCancel(ctx)
	w.cancel = cancel

	ch, err := w.conn.Channel()
	if err != nil {
		cancel()
		return fmt.Errorf("open worker channel failed: %w", err)
	}

	if err := rabbitmq.DeclareQueue(ch, w.queueName); err != nil {
		_ = ch.Close()
		cancel()
		return err
	}

	deliveries, err := ch.Consume(
		w.queueName,
		"",
		false,
		false,
		false,
		false,
		nil,
	)
	if err != nil {
		_ = ch.Close()
		cancel()
		return fmt.Errorf("consume queue failed: %w", err)
	}

	w.wg.Add(1)
	go func() {
		defer w.wg.Done()
		defer ch.Close()
		w.run(workerCtx, deliveries)
	}()

	log.Info().Str("queue", w.queueName).Msg("activity worker started")
	return nil
}

func (w *ActivityPersistWorker) run(ctx context.Context, deliveries <-chan amqp.Delivery) {
	for {
		select {
		case <-ctx.Done():
			return
		case d, ok := <-deliveries:
			if !ok {
				return
			}
			w.handle(ctx, d)
		}
	}
}

// handle acks a delivery once it is stored. Undecodable or unstorable
// deliveries are dropped without requeue so they cannot wedge the queue.
func (w *ActivityPersistWorker) handle(ctx context.Context, d amqp.Delivery) {
	var activity model.Activity
	if err := json.Unmarshal(d.Body, &activity); err != nil {
		log.Error().Err(err).Msg("worker decode activity failed")
		_ = d.Nack(false, false)
		return
	}

	activity.ID = 0
	if err := w.repo.Create(ctx, &activity); err != nil {
		log.Error().Err(err).Str("action", activity.Action).Str("actor_id", activity.ActorID).Msg("worker persist activity failed")
		_ = d.Nack(false, false)
		return
	}

	_ = d.Ack(false)
}

func (w *ActivityPersistWorker) Close() {
	if w.cancel != nil {
		w.cancel()
	}
	w.wg.Wait()
}
