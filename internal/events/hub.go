// Package events fans lifecycle notifications out to live subscribers.
package events

import (
	"sync"
	"sync/atomic"
	"time"
)

type Type string

const (
	ReportCreated       Type = "report.created"
	ReportStatusChanged Type = "report.status_changed"
	VoteCast            Type = "vote.cast"
	VoteRemoved         Type = "vote.removed"
)

// Event is published after the transaction that produced it has committed.
type Event struct {
	Type          Type      `json:"type"`
	ReportID      uint      `json:"report_id"`
	ActorID       uint      `json:"actor_id,omitempty"`
	Status        string    `json:"status,omitempty"`
	UpvoteCount   int       `json:"upvote_count"`
	PriorityScore float64   `json:"priority_score"`
	Priority      string    `json:"priority,omitempty"`
	At            time.Time `json:"at"`
}

type Publisher interface {
	Publish(Event)
}

// Nop discards every event.
type Nop struct{}

func (Nop) Publish(Event) {}

const defaultBuffer = 64

// Hub delivers events to every current subscriber. A subscriber whose
// buffer is full misses the event; Publish never blocks.
type Hub struct {
	mu      sync.RWMutex
	subs    map[*Subscription]struct{}
	buffer  int
	closed  bool
	dropped atomic.Uint64
}

type Subscription struct {
	C    <-chan Event
	ch   chan Event
	hub  *Hub
	once sync.Once
}

func NewHub(buffer int) *Hub {
	if buffer <= 0 {
		buffer = defaultBuffer
	}
	return &Hub{
		subs:   make(map[*Subscription]struct{}),
		buffer: buffer,
	}
}

func (h *Hub) Subscribe() *Subscription {
	ch := make(chan Event, h.buffer)
	s := &Subscription{C: ch, ch: ch, hub: h}

	h.mu.Lock()
	defer h.mu.Unlock()
	if h.closed {
		close(ch)
		return s
	}
	h.subs[s] = struct{}{}
	return s
}

// Close detaches the subscription and closes its channel. Safe to call twice.
func (s *Subscription) Close() {
	s.once.Do(func() {
		s.hub.mu.Lock()
		defer s.hub.mu.Unlock()
		if _, ok := s.hub.subs[s]; ok {
			delete(s.hub.subs, s)
			close(s.ch)
		}
	})
}

func (h *Hub) Publish(e Event) {
	h.mu.RLock()
	defer h.mu.RUnlock()
	if h.closed {
		return
	}
	for s := range h.subs {
		select {
		case s.ch <- e:
		default:
			h.dropped.Add(1)
		}
	}
}

// Dropped returns how many deliveries were skipped because a subscriber
// was full.
func (h *Hub) Dropped() uint64 {
	return h.dropped.Load()
}

// Subscribers returns the number of attached subscriptions.
func (h *Hub) Subscribers() int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.subs)
}

// Close detaches and closes every subscription.
func (h *Hub) Close() {
	h.mu.Lock()
	defer h.mu.Unlock()
	if h.closed {
		return
	}
	h.closed = true
	for s := range h.subs {
		delete(h.subs, s)
		close(s.ch)
	}
}
