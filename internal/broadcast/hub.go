// Package broadcast fans incident events out to connected observers.
// Delivery is best-effort and non-durable: observers joining late re-fetch
// current state through the REST API instead of replaying a backlog.
package broadcast

import (
	"sync"
	"sync/atomic"

	"github.com/google/uuid"
	"github.com/shenikar/accident_responder_system/internal/models"
	"github.com/sirupsen/logrus"
)

// Message types pushed to observers.
const (
	TypeNewIncident  = "new_incident"
	TypeStatusUpdate = "status_update"
	TypePong         = "pong"
)

// Message is one server-to-observer frame. Seq is a monotonically increasing
// per-process sequence number used for ordering and debugging.
type Message struct {
	Type  string `json:"type"`
	Seq   uint64 `json:"seq,omitempty"`
	Event string `json:"event,omitempty"`
	Data  any    `json:"data,omitempty"`
}

// Subscription is one connected observer's delivery path. Each subscription
// has its own bounded buffer so a slow observer never stalls the others.
// mu serializes delivery against teardown: the channel is only closed while
// no sender holds it, so a disconnect racing a broadcast cannot panic the
// emitting goroutine.
type Subscription struct {
	id  string
	ch  chan Message
	hub *Hub

	mu     sync.Mutex
	closed bool
}

// ID returns the subscription identifier.
func (s *Subscription) ID() string {
	return s.id
}

// C is the receive side of the subscription's delivery channel. It is closed
// when the subscription is torn down.
func (s *Subscription) C() <-chan Message {
	return s.ch
}

// Close tears the subscription down and releases its resources.
func (s *Subscription) Close() {
	s.hub.unsubscribe(s.id)
}

// send delivers msg without blocking. It reports false when the buffer is
// full; a message arriving after teardown is silently dropped.
func (s *Subscription) send(msg Message) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return true
	}
	select {
	case s.ch <- msg:
		return true
	default:
		return false
	}
}

// shut closes the delivery channel exactly once, under the same mutex the
// senders hold.
func (s *Subscription) shut() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return
	}
	s.closed = true
	close(s.ch)
}

// Hub owns the subscriber registry. Subscriptions are ephemeral: created on
// connect, destroyed on disconnect, delivery failure or heartbeat timeout.
type Hub struct {
	mu      sync.RWMutex
	subs    map[string]*Subscription
	seq     atomic.Uint64
	bufSize int
	logger  *logrus.Logger
}

func NewHub(bufSize int, logger *logrus.Logger) *Hub {
	if bufSize < 1 {
		bufSize = 32
	}
	return &Hub{
		subs:    make(map[string]*Subscription),
		bufSize: bufSize,
		logger:  logger,
	}
}

// Subscribe registers a new observer and returns its delivery handle.
func (h *Hub) Subscribe() *Subscription {
	sub := &Subscription{
		id:  uuid.NewString(),
		ch:  make(chan Message, h.bufSize),
		hub: h,
	}

	h.mu.Lock()
	h.subs[sub.id] = sub
	total := len(h.subs)
	h.mu.Unlock()

	h.logger.WithFields(logrus.Fields{
		"subscription_id": sub.id,
		"total":           total,
	}).Info("Observer subscribed")
	return sub
}

func (h *Hub) unsubscribe(id string) {
	h.mu.Lock()
	sub, ok := h.subs[id]
	if ok {
		delete(h.subs, id)
	}
	total := len(h.subs)
	h.mu.Unlock()

	if !ok {
		return
	}
	sub.shut()
	h.logger.WithFields(logrus.Fields{
		"subscription_id": id,
		"total":           total,
	}).Info("Observer unsubscribed")
}

// Count returns the number of connected observers.
func (h *Hub) Count() int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.subs)
}

// BroadcastNewIncident announces a freshly created incident.
func (h *Hub) BroadcastNewIncident(incident *models.Incident) {
	h.broadcast(Message{Type: TypeNewIncident, Data: incident})
}

// BroadcastStatusUpdate announces an applied lifecycle transition.
func (h *Hub) BroadcastStatusUpdate(incident *models.Incident, event string) {
	h.broadcast(Message{Type: TypeStatusUpdate, Event: event, Data: incident})
}

// broadcast stamps the sequence number and delivers to every subscriber
// without blocking. A subscriber whose buffer is full is torn down; one dead
// observer never affects the emitting operation or the other observers.
func (h *Hub) broadcast(msg Message) {
	msg.Seq = h.seq.Add(1)

	h.mu.RLock()
	subs := make([]*Subscription, 0, len(h.subs))
	for _, sub := range h.subs {
		subs = append(subs, sub)
	}
	h.mu.RUnlock()

	for _, sub := range subs {
		if !sub.send(msg) {
			h.logger.WithField("subscription_id", sub.id).
				Warn("Observer delivery buffer full, dropping subscription")
			h.unsubscribe(sub.id)
		}
	}
}

// CloseAll tears down every subscription, used on shutdown.
func (h *Hub) CloseAll() {
	h.mu.Lock()
	subs := h.subs
	h.subs = make(map[string]*Subscription)
	h.mu.Unlock()

	for _, sub := range subs {
		sub.shut()
	}
}
