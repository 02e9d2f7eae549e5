package workflow

import (
	"sync"

	"github.com/sirupsen/logrus"

	"github.com/rare-disease-dx/internal/domain"
)

// StateChange is delivered to listeners after every committed transition.
type StateChange struct {
	Cause ActionKind
	State domain.WorkflowState
}

// Listener observes committed transitions. Changes are delivered one at a
// time in commit order, outside the controller lock, so a listener may call
// Controller.State and Controller.Dispatch. A change dispatched from inside a
// listener is queued and delivered once the current change has reached every
// listener.
type Listener func(StateChange)

type listenerEntry struct {
	id int
	fn Listener
}

type pendingChange struct {
	change StateChange
	after  func()
}

// notifier delivers changes strictly in sequence order without holding the
// controller lock. Whichever caller finds no delivery in progress drains the
// queue; everyone else enqueues and returns.
type notifier struct {
	mu        sync.Mutex
	next      uint64
	queue     map[uint64]pendingChange
	draining  bool
	listeners []listenerEntry
	nextID    int
	logger    *logrus.Logger
}

func newNotifier(logger *logrus.Logger) *notifier {
	return &notifier{
		queue:  make(map[uint64]pendingChange),
		logger: logger,
	}
}

func (n *notifier) subscribe(fn Listener) func() {
	n.mu.Lock()
	defer n.mu.Unlock()
	id := n.nextID
	n.nextID++
	n.listeners = append(n.listeners, listenerEntry{id: id, fn: fn})

	var once sync.Once
	return func() {
		once.Do(func() {
			n.mu.Lock()
			defer n.mu.Unlock()
			for i, l := range n.listeners {
				if l.id == id {
					n.listeners = append(n.listeners[:i:i], n.listeners[i+1:]...)
					return
				}
			}
		})
	}
}

// deliver queues change under seq and, unless another caller is already
// draining, delivers every consecutive queued change. after, if set, runs once
// the change has reached all listeners.
func (n *notifier) deliver(seq uint64, change StateChange, after func()) {
	n.mu.Lock()
	n.queue[seq] = pendingChange{change: change, after: after}
	if n.draining {
		n.mu.Unlock()
		return
	}
	n.draining = true

	for {
		p, ok := n.queue[n.next]
		if !ok {
			n.draining = false
			n.mu.Unlock()
			return
		}
		delete(n.queue, n.next)
		listeners := append([]listenerEntry(nil), n.listeners...)
		n.mu.Unlock()

		for _, l := range listeners {
			n.call(l, p.change)
		}
		if p.after != nil {
			p.after()
		}

		n.mu.Lock()
		n.next++
	}
}

func (n *notifier) call(l listenerEntry, change StateChange) {
	defer func() {
		if r := recover(); r != nil {
			n.logger.WithFields(logrus.Fields{
				"listener": l.id,
				"cause":    change.Cause,
				"panic":    r,
			}).Error("State listener panicked")
		}
	}()
	l.fn(change)
}
