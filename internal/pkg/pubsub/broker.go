package pubsub

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"
)

// ErrBrokerClosed is returned by Subscribe after Close.
var ErrBrokerClosed = errors.New("pubsub: broker is closed")

// Topic names a logical channel.
type Topic string

// Filter decides per subscription whether a message is delivered.
// A nil Filter accepts everything.
type Filter[M any] func(msg M) bool

// Broker routes messages of type M by topic. The zero value is not usable;
// construct it with NewBroker.
type Broker[M any] struct {
	logger *slog.Logger

	mu     sync.RWMutex
	subs   map[Topic]map[uint64]*Subscription[M]
	locks  map[Topic]*sync.Mutex
	nextID uint64
	closed bool
}

func NewBroker[M any](logger *slog.Logger) *Broker[M] {
	if logger == nil {
		logger = slog.Default()
	}
	return &Broker[M]{
		logger: logger.With("component", "pubsub"),
		subs:   make(map[Topic]map[uint64]*Subscription[M]),
		locks:  make(map[Topic]*sync.Mutex),
	}
}

// Subscribe registers a subscription on topic. It stays live until Close is
// called on it, ctx is done, or the broker is closed.
func (b *Broker[M]) Subscribe(ctx context.Context, topic Topic, filter Filter[M]) (*Subscription[M], error) {
	if topic == "" {
		return nil, errors.New("pubsub: topic is required")
	}

	b.mu.Lock()
	if b.closed {
		b.mu.Unlock()
		return nil, ErrBrokerClosed
	}
	b.nextID++
	sub := newSubscription(b, b.nextID, topic, filter)
	if b.subs[topic] == nil {
		b.subs[topic] = make(map[uint64]*Subscription[M])
	}
	b.subs[topic][sub.id] = sub
	b.mu.Unlock()

	sub.bindContext(context.AfterFunc(ctx, sub.Close))
	go sub.pump()

	b.logger.DebugContext(ctx, "subscription registered", "topic", topic, "subscription", sub.id)
	return sub, nil
}

// Publish queues msg for every live subscription on topic whose filter
// accepts it and returns how many did. Publishing never fails: a panicking
// filter counts as a rejection, a subscription closed mid-publish is skipped.
func (b *Broker[M]) Publish(ctx context.Context, topic Topic, msg M) int {
	lock := b.topicLock(topic)
	lock.Lock()
	defer lock.Unlock()

	b.mu.RLock()
	targets := make([]*Subscription[M], 0, len(b.subs[topic]))
	for _, sub := range b.subs[topic] {
		targets = append(targets, sub)
	}
	b.mu.RUnlock()

	delivered := 0
	for _, sub := range targets {
		if !b.accepts(ctx, sub, msg) {
			continue
		}
		if !sub.enqueue(msg) {
			b.logger.DebugContext(ctx, "delivery dropped, subscription closed",
				"topic", topic, "subscription", sub.id)
			continue
		}
		delivered++
	}

	return delivered
}

// SubscriberCount returns the number of live subscriptions on topic.
func (b *Broker[M]) SubscriberCount(topic Topic) int {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return len(b.subs[topic])
}

// Topics returns the live subscription count of every topic that has had a
// subscriber since start.
func (b *Broker[M]) Topics() map[Topic]int {
	b.mu.RLock()
	defer b.mu.RUnlock()

	out := make(map[Topic]int, len(b.subs))
	for topic, subs := range b.subs {
		out[topic] = len(subs)
	}
	return out
}

// Close closes every subscription and rejects new ones. Publish keeps
// working and delivers to nobody.
func (b *Broker[M]) Close() {
	b.mu.Lock()
	if b.closed {
		b.mu.Unlock()
		return
	}
	b.closed = true
	var all []*Subscription[M]
	for _, subs := range b.subs {
		for _, sub := range subs {
			all = append(all, sub)
		}
	}
	b.mu.Unlock()

	for _, sub := range all {
		sub.Close()
	}
}

func (b *Broker[M]) topicLock(topic Topic) *sync.Mutex {
	b.mu.RLock()
	lock, ok := b.locks[topic]
	b.mu.RUnlock()
	if ok {
		return lock
	}

	b.mu.Lock()
	defer b.mu.Unlock()
	if lock, ok = b.locks[topic]; !ok {
		lock = &sync.Mutex{}
		b.locks[topic] = lock
	}
	return lock
}

func (b *Broker[M]) remove(sub *Subscription[M]) {
	b.mu.Lock()
	defer b.mu.Unlock()

	subs := b.subs[sub.topic]
	if _, ok := subs[sub.id]; !ok {
		return
	}
	delete(subs, sub.id)
}

func (b *Broker[M]) accepts(ctx context.Context, sub *Subscription[M], msg M) (ok bool) {
	if sub.filter == nil {
		return true
	}

	defer func() {
		if r := recover(); r != nil {
			b.logger.WarnContext(ctx, "subscription filter panicked",
				"topic", sub.topic, "subscription", sub.id, "panic", fmt.Sprint(r))
			ok = false
		}
	}()

	return sub.filter(msg)
}
