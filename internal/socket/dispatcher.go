package socket

import (
	"sync"

	"github.com/eapache/queue"
)

// dispatcher runs posted callbacks one at a time, in posting order, on its
// own goroutine. Posting never blocks on a running callback.
type dispatcher struct {
	mu      sync.Mutex
	cond    *sync.Cond
	pending *queue.Queue
	stopped bool
	done    chan struct{}
}

func newDispatcher() *dispatcher {
	d := &dispatcher{
		pending: queue.New(),
		done:    make(chan struct{}),
	}
	d.cond = sync.NewCond(&d.mu)
	go d.run()
	return d
}

// post enqueues fn. Calls after stop are dropped.
func (d *dispatcher) post(fn func()) {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.stopped {
		return
	}
	d.pending.Add(fn)
	d.cond.Signal()
}

// stop lets queued callbacks finish and ends the goroutine
func (d *dispatcher) stop() {
	d.mu.Lock()
	d.stopped = true
	d.cond.Broadcast()
	d.mu.Unlock()
	<-d.done
}

func (d *dispatcher) run() {
	defer close(d.done)
	for {
		d.mu.Lock()
		for d.pending.Length() == 0 && !d.stopped {
			d.cond.Wait()
		}
		if d.pending.Length() == 0 {
			d.mu.Unlock()
			return
		}
		fn := d.pending.Remove().(func())
		d.mu.Unlock()

		fn()
	}
}
