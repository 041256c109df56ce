package ethernet

import (
	"sync"

	"golang-ethmgr/internal/pkg/logging"
	"golang-ethmgr/internal/pkg/metrics"
)

type availabilityEvent struct {
	iface     Interface
	available bool
}

// dispatcher delivers availability events on a single goroutine in arrival
// order. Enqueue never blocks on listener code.
type dispatcher struct {
	mu      sync.Mutex
	cond    *sync.Cond
	queue   []availabilityEvent
	closed  bool
	done    chan struct{}
	deliver func(availabilityEvent)
}

func newDispatcher(deliver func(availabilityEvent)) *dispatcher {
	d := &dispatcher{
		done:    make(chan struct{}),
		deliver: deliver,
	}
	d.cond = sync.NewCond(&d.mu)
	go d.run()
	return d
}

// enqueue queues ev for delivery. It returns ErrManagerClosed after close.
func (d *dispatcher) enqueue(ev availabilityEvent) error {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.closed {
		return ErrManagerClosed
	}
	d.queue = append(d.queue, ev)
	metrics.SetQueueLength(len(d.queue))
	d.cond.Signal()
	return nil
}

func (d *dispatcher) run() {
	defer close(d.done)
	logger := logging.WithComponent("dispatcher")
	for {
		d.mu.Lock()
		for len(d.queue) == 0 && !d.closed {
			d.cond.Wait()
		}
		if len(d.queue) == 0 {
			d.mu.Unlock()
			logger.Debug("Dispatcher stopped")
			return
		}
		ev := d.queue[0]
		d.queue[0] = availabilityEvent{}
		d.queue = d.queue[1:]
		metrics.SetQueueLength(len(d.queue))
		d.mu.Unlock()

		d.deliver(ev)
	}
}

// close stops accepting events and waits until queued events are delivered.
// Calling it from the delivery goroutine deadlocks.
func (d *dispatcher) close() {
	d.mu.Lock()
	d.closed = true
	d.cond.Broadcast()
	d.mu.Unlock()
	<-d.done
}
