package queue

import (
	"context"
	"encoding/json"
	"log"

	amqp "github.com/rabbitmq/amqp091-go"
)

// Dispatcher performs the actual fan-out for one newsletter. The worker
// is decoupled from the usecase layer through this contract.
type Dispatcher interface {
	Execute(ctx context.Context, newsletterID string) error
}

type Worker struct {
	Channel    *amqp.Channel
	Dispatcher Dispatcher
}

func NewWorker(ch *amqp.Channel, dispatcher Dispatcher) *Worker {
	return &Worker{
		Channel:    ch,
		Dispatcher: dispatcher,
	}
}

func (w *Worker) Start(queueName string) {
	msgs, err := w.Channel.Consume(
		queueName,
		"",    // consumer
		false, // auto-ack (manual is safer)
		false, // exclusive
		false, // no-local
		false, // no-wait
		nil,   // args
	)
	if err != nil {
		log.Fatalf("❌ [WORKER] Failed to register RabbitMQ consumer: %s", err)
	}

	forever := make(chan bool)

	go func() {
		for d := range msgs {
			var payload DispatchPayload
			if err := json.Unmarshal(d.Body, &payload); err != nil {
				log.Printf("❌ [WORKER] Malformed job: %s", err)
				// Poison message. Reject without requeue so it dead-letters.
				d.Nack(false, false)
				continue
			}

			log.Printf("📥 [WORKER] Dispatching newsletter %s", payload.NewsletterID)

			if err := w.Dispatcher.Execute(context.Background(), payload.NewsletterID); err != nil {
				log.Printf("❌ [WORKER] Dispatch failed for %s: %s", payload.NewsletterID, err)
				d.Nack(false, false)
			} else {
				d.Ack(false)
			}
		}
	}()

	log.Printf(" [*] Worker running, waiting on queue '%s'", queueName)
	<-forever
}
