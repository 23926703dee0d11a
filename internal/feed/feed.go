// Package feed fans out document changes to in-process subscribers.
package feed

import (
	"log/slog"
	"sync"
)

// Actions reported in a Change.
const (
	ActionCreated = "created"
	ActionUpdated = "updated"
	ActionDeleted = "deleted"
)

// Change describes one write to a document collection.
type Change struct {
	Type       string `json:"type"`
	Collection string `json:"collection"`
	Action     string `json:"action"`
	ID         string `json:"id"`
	FamilyID   string `json:"family_id,omitempty"`
}

// NewChange creates a Change with Type derived from collection and action.
func NewChange(collection, action, id, familyID string) Change {
	return Change{
		Type:       collection + "_" + action,
		Collection: collection,
		Action:     action,
		ID:         id,
		FamilyID:   familyID,
	}
}

// Subscription receives changes for one collection, or for every collection
// when created with an empty name.
type Subscription struct {
	hub        *Hub
	collection string
	ch         chan Change
}

// C returns the channel changes are delivered on. It is closed by Close.
func (s *Subscription) C() <-chan Change {
	return s.ch
}

// Close unsubscribes. Calling it more than once is safe.
func (s *Subscription) Close() {
	s.hub.Unsubscribe(s)
}

func (s *Subscription) wants(c Change) bool {
	return s.collection == "" || s.collection == c.Collection
}

// Hub maintains the set of active subscriptions and publishes changes.
type Hub struct {
	mu     sync.RWMutex
	subs   map[*Subscription]struct{}
	buffer int
	logger *slog.Logger
}

// NewHub creates a Hub whose subscriptions buffer up to buffer changes.
func NewHub(buffer int, logger *slog.Logger) *Hub {
	if buffer < 1 {
		buffer = 1
	}
	return &Hub{
		subs:   make(map[*Subscription]struct{}),
		buffer: buffer,
		logger: logger,
	}
}

// Subscribe registers a new subscription for collection ("" for all).
func (h *Hub) Subscribe(collection string) *Subscription {
	s := &Subscription{
		hub:        h,
		collection: collection,
		ch:         make(chan Change, h.buffer),
	}
	h.mu.Lock()
	h.subs[s] = struct{}{}
	h.mu.Unlock()
	return s
}

// Unsubscribe removes a subscription and closes its channel.
func (h *Hub) Unsubscribe(s *Subscription) {
	h.mu.Lock()
	if _, ok := h.subs[s]; ok {
		delete(h.subs, s)
		close(s.ch)
	}
	h.mu.Unlock()
}

// Publish delivers c to every interested subscription without blocking.
// A subscriber whose buffer is full misses the change.
func (h *Hub) Publish(c Change) {
	h.mu.RLock()
	defer h.mu.RUnlock()

	for s := range h.subs {
		if !s.wants(c) {
			continue
		}
		select {
		case s.ch <- c:
		default:
			h.logger.Debug("subscriber buffer full, dropping change", "type", c.Type, "id", c.ID)
		}
	}
}

// SubscriberCount returns the number of active subscriptions.
func (h *Hub) SubscriberCount() int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.subs)
}
