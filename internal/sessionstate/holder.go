// Package sessionstate holds the client's record of the currently
// authenticated user. Exactly one Holder exists for the lifetime of the
// application; it is constructed once and handed to the transport, the
// guards and the views.
package sessionstate

import (
	"sync"

	"github.com/savasana-io/savasana/internal/models"
)

// Holder is the in-memory session state. All methods are safe for concurrent
// use, and all are total: there are no error conditions.
type Holder struct {
	mu     sync.Mutex
	info   *models.SessionInformation
	logged bool

	nextID      int
	subscribers map[int]func(bool)
}

// NewHolder creates an empty, logged-out holder.
func NewHolder() *Holder {
	return &Holder{subscribers: make(map[int]func(bool))}
}

// LogIn stores the session information and notifies subscribers.
func (h *Holder) LogIn(info *models.SessionInformation) {
	h.mu.Lock()
	h.info = info
	h.logged = true
	subs := h.snapshotSubscribers()
	h.mu.Unlock()

	for _, fn := range subs {
		fn(true)
	}
}

// LogOut clears the session information and notifies subscribers.
func (h *Holder) LogOut() {
	h.mu.Lock()
	h.info = nil
	h.logged = false
	subs := h.snapshotSubscribers()
	h.mu.Unlock()

	for _, fn := range subs {
		fn(false)
	}
}

// IsLogged reports whether a user is currently authenticated.
func (h *Holder) IsLogged() bool {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.logged
}

// SessionInformation returns the stored principal, or nil when logged out.
func (h *Holder) SessionInformation() *models.SessionInformation {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.info
}

// Subscription identifies a registered observer.
type Subscription struct {
	holder *Holder
	id     int
}

// Cancel removes the observer. Safe to call more than once.
func (s *Subscription) Cancel() {
	s.holder.mu.Lock()
	delete(s.holder.subscribers, s.id)
	s.holder.mu.Unlock()
}

// Subscribe registers fn as an observer of the authenticated flag. The
// current value is replayed to fn synchronously before Subscribe returns,
// and fn is invoked on every subsequent change until the subscription is
// cancelled. The stream never completes on its own.
func (h *Holder) Subscribe(fn func(logged bool)) *Subscription {
	h.mu.Lock()
	id := h.nextID
	h.nextID++
	h.subscribers[id] = fn
	current := h.logged
	h.mu.Unlock()

	fn(current)
	return &Subscription{holder: h, id: id}
}

func (h *Holder) snapshotSubscribers() []func(bool) {
	subs := make([]func(bool), 0, len(h.subscribers))
	for _, fn := range h.subscribers {
		subs = append(subs, fn)
	}
	return subs
}
