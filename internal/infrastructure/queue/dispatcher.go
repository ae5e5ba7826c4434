package queue

import (
	"context"
	"hash/fnv"
	"strconv"

	"github.com/rs/zerolog"

	"github.com/tigrisline/tracking-gateway/internal/api/metrics"
	"github.com/tigrisline/tracking-gateway/internal/core/ports"
)

const (
	defaultWorkers = 2
	defaultBuffer  = 64
)

// Dispatcher routes contact submissions to a fixed set of workers using
// consistent hashing on the sender address, so messages from one sender are
// relayed in the order they arrived.
type Dispatcher struct {
	workers []chan ports.ContactInput
	service ports.ContactService
	log     zerolog.Logger
}

// NewDispatcher creates a Dispatcher with numWorkers sharded workers.
// Non-positive arguments fall back to the defaults.
func NewDispatcher(numWorkers, buffer int, service ports.ContactService, log zerolog.Logger) *Dispatcher {
	if numWorkers <= 0 {
		numWorkers = defaultWorkers
	}
	if buffer <= 0 {
		buffer = defaultBuffer
	}
	d := &Dispatcher{
		workers: make([]chan ports.ContactInput, numWorkers),
		service: service,
		log:     log,
	}
	for i := range d.workers {
		d.workers[i] = make(chan ports.ContactInput, buffer)
	}
	return d
}

// Start launches all worker goroutines. Workers stop when ctx is cancelled.
func (d *Dispatcher) Start(ctx context.Context) {
	for i, ch := range d.workers {
		go d.runWorker(ctx, i, ch)
	}
}

// Enqueue hands a submission to the worker responsible for its sender.
// Returns false when that worker's queue is full.
func (d *Dispatcher) Enqueue(input ports.ContactInput) bool {
	idx := d.shardIndex(input.Email)
	select {
	case d.workers[idx] <- input:
		metrics.ContactQueueDepth.WithLabelValues(strconv.Itoa(idx)).Set(float64(len(d.workers[idx])))
		return true
	default:
		return false
	}
}

// shardIndex maps a sender address deterministically to a worker index.
func (d *Dispatcher) shardIndex(email string) int {
	h := fnv.New32a()
	_, _ = h.Write([]byte(email))
	return int(h.Sum32()) % len(d.workers)
}

func (d *Dispatcher) runWorker(ctx context.Context, id int, ch <-chan ports.ContactInput) {
	worker := strconv.Itoa(id)
	for {
		select {
		case <-ctx.Done():
			return
		case input, ok := <-ch:
			if !ok {
				return
			}
			if err := d.service.Submit(ctx, input); err != nil {
				d.log.Error().Err(err).
					Str("email", input.Email).
					Int("worker_id", id).
					Msg("contact submission failed")
			}
			metrics.ContactQueueDepth.WithLabelValues(worker).Set(float64(len(ch)))
		}
	}
}
