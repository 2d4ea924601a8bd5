package cart

import "sync"

// Store owns the cart state for one session and broadcasts each new snapshot
// to subscribers. Handlers reach a session's store from multiple goroutines,
// so all access goes through the mutex.
type Store struct {
	mu      sync.Mutex
	state   State
	subs    map[int]func(State)
	nextSub int
}

func NewStore() *Store {
	return &Store{subs: make(map[int]func(State))}
}

// Dispatch applies the action and returns the resulting snapshot. Subscribers
// are invoked outside the lock so a callback may call Snapshot.
func (s *Store) Dispatch(a Action) State {
	s.mu.Lock()
	s.state = Reduce(s.state, a)
	snap := State{Items: cloneItems(s.state.Items)}
	subs := make([]func(State), 0, len(s.subs))
	for _, fn := range s.subs {
		subs = append(subs, fn)
	}
	s.mu.Unlock()

	for _, fn := range subs {
		fn(snap)
	}
	return snap
}

// Snapshot returns a copy of the current state. Mutating the returned items
// does not affect the store.
func (s *Store) Snapshot() State {
	s.mu.Lock()
	defer s.mu.Unlock()
	return State{Items: cloneItems(s.state.Items)}
}

// Subscribe registers fn to receive every snapshot produced by Dispatch.
// The returned func removes the subscription.
func (s *Store) Subscribe(fn func(State)) (unsubscribe func()) {
	s.mu.Lock()
	id := s.nextSub
	s.nextSub++
	s.subs[id] = fn
	s.mu.Unlock()

	return func() {
		s.mu.Lock()
		delete(s.subs, id)
		s.mu.Unlock()
	}
}
