package services

import (
	"sync"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

// Sender delivers one text message to the fixed operator channel.
type Sender interface {
	Send(text string) error
}

// Notification is an ephemeral outbound message. It lives in the
// dispatcher queue and is discarded once delivery succeeds or fails;
// nothing is ever persisted or replayed.
type Notification struct {
	ID   uuid.UUID
	Text string
}

// Dispatcher pushes operator notifications out of band. Send enqueues and
// returns immediately; a single background worker drains the queue in FIFO
// order, so a slow or unreachable channel never blocks a booking request.
//
// Delivery is best-effort, at most once: a failed send is logged and
// dropped, and anything still queued when the process exits is lost.
type Dispatcher struct {
	sender Sender
	log    zerolog.Logger

	mu     sync.Mutex
	cond   *sync.Cond
	queue  []Notification
	closed bool

	done chan struct{}
}

// NewDispatcher starts the worker goroutine. The worker runs for the
// lifetime of the process; Stop exists for tests.
func NewDispatcher(sender Sender, log zerolog.Logger) *Dispatcher {
	d := &Dispatcher{
		sender: sender,
		log:    log.With().Str("component", "dispatcher").Logger(),
		done:   make(chan struct{}),
	}
	d.cond = sync.NewCond(&d.mu)
	go d.worker()
	return d
}

// Send enqueues a notification. It never blocks on the network: the queue
// is unbounded and the delivery attempt happens on the worker goroutine.
// Safe for concurrent use. Messages enqueued after Stop are dropped.
func (d *Dispatcher) Send(text string) {
	n := Notification{ID: uuid.New(), Text: text}

	d.mu.Lock()
	if d.closed {
		d.mu.Unlock()
		d.log.Warn().Str("notification", n.ID.String()).Msg("dispatcher stopped, dropping notification")
		return
	}
	d.queue = append(d.queue, n)
	d.mu.Unlock()
	d.cond.Signal()
}

// Stop shuts the worker down. Queued messages are not drained — there is
// no delivery guarantee across shutdown, by the same rule that loses them
// on process exit.
func (d *Dispatcher) Stop() {
	d.mu.Lock()
	if d.closed {
		d.mu.Unlock()
		return
	}
	d.closed = true
	d.mu.Unlock()
	d.cond.Broadcast()
	<-d.done
}

func (d *Dispatcher) worker() {
	defer close(d.done)
	for {
		d.mu.Lock()
		for len(d.queue) == 0 && !d.closed {
			d.cond.Wait()
		}
		if d.closed {
			d.mu.Unlock()
			return
		}
		n := d.queue[0]
		d.queue = d.queue[1:]
		d.mu.Unlock()

		d.deliver(n)
	}
}

func (d *Dispatcher) deliver(n Notification) {
	if err := d.sender.Send(n.Text); err != nil {
		// Terminal for this message: no retry, no requeue.
		d.log.Error().Err(err).Str("notification", n.ID.String()).Msg("notification delivery failed")
		return
	}
	d.log.Info().Str("notification", n.ID.String()).Msg("notification delivered")
}
