package twin

// EventType identifies store change notifications.
type EventType int

const (
	EventComponentsChanged EventType = iota
	EventConnectionsChanged
	EventWiresRouted
	EventSnapshotLoaded
)

// EventListener is called synchronously when an event occurs. The payload
// is the ID of the entity that changed, or empty for whole-store events.
type EventListener func(id string)

// On registers a listener for the given event type. Listeners run on the
// mutating goroutine while the store lock is held, so they must not call
// back into the store.
func (s *Store) On(event EventType, listener EventListener) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.listeners[event] = append(s.listeners[event], listener)
}

func (s *Store) emit(event EventType, id string) {
	for _, listener := range s.listeners[event] {
		listener(id)
	}
}
