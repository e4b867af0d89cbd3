// Package observer implements the change-notification channel used by the
// controllers to tell listeners which kind of entity changed.
package observer

import "sync"

// Kind tags carried by notifications.
const (
	KindAuthor    = "author"
	KindManager   = "manager"
	KindNarrator  = "narrator"
	KindPublisher = "publisher"
	KindStand     = "stand"
	KindBook      = "book"
)

// Observer receives the kind tag of a mutated entity.
// Implementations must be comparable (typically pointers) so that
// registration can be de-duplicated.
type Observer interface {
	Update(kind string)
}

// Subject is an ordered set of observers. The zero value is ready to use.
type Subject struct {
	mu        sync.Mutex
	observers []Observer
}

// Register appends o unless it is nil or already registered.
func (s *Subject) Register(o Observer) {
	if o == nil {
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	for _, existing := range s.observers {
		if existing == o {
			return
		}
	}
	s.observers = append(s.observers, o)
}

// Remove drops o if it is registered.
func (s *Subject) Remove(o Observer) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i, existing := range s.observers {
		if existing == o {
			s.observers = append(s.observers[:i], s.observers[i+1:]...)
			return
		}
	}
}

// Notify calls every observer in registration order and returns once all of
// them have returned. The lock is not held during callbacks so observers may
// call back into the controller that notified them.
func (s *Subject) Notify(kind string) {
	s.mu.Lock()
	snapshot := make([]Observer, len(s.observers))
	copy(snapshot, s.observers)
	s.mu.Unlock()

	for _, o := range snapshot {
		o.Update(kind)
	}
}

// Len returns the number of registered observers.
func (s *Subject) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.observers)
}
