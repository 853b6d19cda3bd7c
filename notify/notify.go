// Package notify delivers booking emails. Delivery is asynchronous and
// retried; it is never on the path that mutates an appointment, so a dead
// SMTP server cannot fail a booking.
package notify

import (
	"context"
	"log"
	"sync"
	"time"
)

// Message is one outbound email, optionally with an attachment.
type Message struct {
	To             string
	Subject        string
	HTMLBody       string
	AttachmentName string
	Attachment     []byte
}

// Sink is anything that can deliver a Message.
type Sink interface {
	Send(ctx context.Context, msg Message) error
}

const (
	queueSize    = 64
	sendTimeout  = 10 * time.Second
	maxAttempts  = 3
	retryBackoff = 2 * time.Second
)

// Notifier queues messages and delivers them on a background worker,
// retrying transient failures. It implements booking.Notifier.
type Notifier struct {
	sink  Sink
	queue chan Message
	wg    sync.WaitGroup
}

func New(sink Sink) *Notifier {
	n := &Notifier{
		sink:  sink,
		queue: make(chan Message, queueSize),
	}
	n.wg.Add(1)
	go n.worker()
	return n
}

// Close stops accepting messages and waits for the queue to drain.
func (n *Notifier) Close() {
	close(n.queue)
	n.wg.Wait()
}

func (n *Notifier) enqueue(msg Message) {
	select {
	case n.queue <- msg:
	default:
		log.Printf("notify: queue full, dropping %q to %s", msg.Subject, msg.To)
	}
}

func (n *Notifier) worker() {
	defer n.wg.Done()
	for msg := range n.queue {
		n.deliver(msg)
	}
}

func (n *Notifier) deliver(msg Message) {
	var err error
	for attempt := 1; attempt <= maxAttempts; attempt++ {
		ctx, cancel := context.WithTimeout(context.Background(), sendTimeout)
		err = n.sink.Send(ctx, msg)
		cancel()
		if err == nil {
			return
		}
		if attempt < maxAttempts {
			time.Sleep(retryBackoff)
		}
	}
	log.Printf("notify: giving up on %q to %s: %v", msg.Subject, msg.To, err)
}
