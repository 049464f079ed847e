package queue

import (
	"context"
	"hash/fnv"
	"strings"
	"sync"
	"time"

	"github.com/rs/zerolog"

	"github.com/comclic/clinic-records/internal/core/ports"
	"github.com/comclic/clinic-records/internal/pkg/metrics"
)

const (
	defaultWorkers = 2
	channelBuffer  = 256
	sendTimeout    = 30 * time.Second
)

// MailDispatcher delivers outbound mail on a fixed set of workers, sharded by
// recipient so messages to one address go out in order. Enqueue never blocks
// a request: when a worker's buffer is full the message is dropped.
type MailDispatcher struct {
	workers []chan ports.MailMessage
	sender  ports.MailSender
	log     zerolog.Logger

	mu     sync.RWMutex
	closed bool
	wg     sync.WaitGroup
}

// NewMailDispatcher creates a MailDispatcher with numWorkers sharded workers.
// If numWorkers <= 0, defaultWorkers is used.
func NewMailDispatcher(numWorkers int, sender ports.MailSender, log zerolog.Logger) *MailDispatcher {
	return newMailDispatcher(numWorkers, channelBuffer, sender, log)
}

func newMailDispatcher(numWorkers, buffer int, sender ports.MailSender, log zerolog.Logger) *MailDispatcher {
	if numWorkers <= 0 {
		numWorkers = defaultWorkers
	}
	d := &MailDispatcher{
		workers: make([]chan ports.MailMessage, numWorkers),
		sender:  sender,
		log:     log,
	}
	for i := range d.workers {
		d.workers[i] = make(chan ports.MailMessage, buffer)
	}
	return d
}

// Start launches all worker goroutines. Workers stop when ctx is cancelled
// or after Close has drained their queues.
func (d *MailDispatcher) Start(ctx context.Context) {
	for i, ch := range d.workers {
		d.wg.Add(1)
		go d.runWorker(ctx, i, ch)
	}
}

// Enqueue hands msg to the worker responsible for its recipient.
func (d *MailDispatcher) Enqueue(msg ports.MailMessage) {
	d.mu.RLock()
	defer d.mu.RUnlock()

	if d.closed {
		metrics.MailDispatchTotal.WithLabelValues("dropped").Inc()
		d.log.Warn().Str("to", msg.To).Msg("mail dispatcher closed, message dropped")
		return
	}

	select {
	case d.workers[d.shardIndex(msg.To)] <- msg:
		metrics.MailQueueDepth.Inc()
	default:
		metrics.MailDispatchTotal.WithLabelValues("dropped").Inc()
		d.log.Warn().Str("to", msg.To).Msg("mail queue full, message dropped")
	}
}

// Close stops accepting mail and waits for queued messages to be sent.
func (d *MailDispatcher) Close() {
	d.mu.Lock()
	if d.closed {
		d.mu.Unlock()
		return
	}
	d.closed = true
	for _, ch := range d.workers {
		close(ch)
	}
	d.mu.Unlock()

	d.wg.Wait()
}

// shardIndex maps a recipient deterministically to a worker index.
func (d *MailDispatcher) shardIndex(to string) int {
	h := fnv.New32a()
	_, _ = h.Write([]byte(strings.ToLower(to)))
	return int(h.Sum32() % uint32(len(d.workers)))
}

func (d *MailDispatcher) runWorker(ctx context.Context, id int, ch <-chan ports.MailMessage) {
	defer d.wg.Done()
	for {
		select {
		case <-ctx.Done():
			return
		case msg, ok := <-ch:
			if !ok {
				return
			}
			metrics.MailQueueDepth.Dec()
			d.deliver(ctx, id, msg)
		}
	}
}

func (d *MailDispatcher) deliver(ctx context.Context, id int, msg ports.MailMessage) {
	sendCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), sendTimeout)
	defer cancel()

	start := time.Now()
	err := d.sender.Send(sendCtx, msg)
	metrics.MailSendDuration.Observe(time.Since(start).Seconds())

	if err != nil {
		metrics.MailDispatchTotal.WithLabelValues("failed").Inc()
		d.log.Error().Err(err).
			Str("to", msg.To).
			Int("worker_id", id).
			Msg("mail delivery failed")
		return
	}
	metrics.MailDispatchTotal.WithLabelValues("sent").Inc()
	d.log.Debug().Str("to", msg.To).Int("worker_id", id).Msg("mail sent")
}
