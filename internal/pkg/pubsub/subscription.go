package pubsub

import "sync"

// Subscription is a live registration on one topic. Messages are read from C.
type Subscription[M any] struct {
	id     uint64
	topic  Topic
	filter Filter[M]
	broker *Broker[M]

	mu     sync.Mutex
	queue  []M
	closed bool

	notify chan struct{}
	done   chan struct{}
	out    chan M

	closeOnce sync.Once
	stopAfter func() bool
}

func newSubscription[M any](b *Broker[M], id uint64, topic Topic, filter Filter[M]) *Subscription[M] {
	return &Subscription[M]{
		id:     id,
		topic:  topic,
		filter: filter,
		broker: b,
		notify: make(chan struct{}, 1),
		done:   make(chan struct{}),
		out:    make(chan M),
	}
}

// C yields messages in publish order. It is closed once the subscription is
// closed, without draining what was still queued.
func (s *Subscription[M]) C() <-chan M {
	return s.out
}

// Done is closed when the subscription is closed.
func (s *Subscription[M]) Done() <-chan struct{} {
	return s.done
}

func (s *Subscription[M]) Topic() Topic {
	return s.topic
}

// Close deregisters the subscription. It is safe to call more than once and
// concurrently with Publish.
func (s *Subscription[M]) Close() {
	s.closeOnce.Do(func() {
		s.broker.remove(s)

		s.mu.Lock()
		s.closed = true
		s.queue = nil
		stop := s.stopAfter
		s.mu.Unlock()

		if stop != nil {
			stop()
		}
		close(s.done)
	})
}

func (s *Subscription[M]) bindContext(stop func() bool) {
	s.mu.Lock()
	if s.closed {
		s.mu.Unlock()
		stop()
		return
	}
	s.stopAfter = stop
	s.mu.Unlock()
}

func (s *Subscription[M]) enqueue(msg M) bool {
	s.mu.Lock()
	if s.closed {
		s.mu.Unlock()
		return false
	}
	s.queue = append(s.queue, msg)
	s.mu.Unlock()

	select {
	case s.notify <- struct{}{}:
	default:
	}
	return true
}

func (s *Subscription[M]) pump() {
	defer close(s.out)

	var zero M
	for {
		s.mu.Lock()
		if len(s.queue) == 0 {
			s.mu.Unlock()
			select {
			case <-s.notify:
				continue
			case <-s.done:
				return
			}
		}
		msg := s.queue[0]
		s.queue[0] = zero
		s.queue = s.queue[1:]
		s.mu.Unlock()

		select {
		case s.out <- msg:
		case <-s.done:
			return
		}
	}
}
