package session

import (
	"errors"
	"sync"
	"time"

	"github.com/Parv9879/safare/internal/cart"
	"github.com/google/uuid"
)

var ErrNotFound = errors.New("session not found")

// Session is one browser session: a fresh guest cart plus an optional
// authenticated-user marker. An empty user id means guest.
type Session struct {
	ID        string
	CreatedAt time.Time
	Cart      *cart.Store

	mu     sync.Mutex
	userID string
}

// UserID returns the authenticated user id, or "" for a guest session.
func (s *Session) UserID() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.userID
}

func (s *Session) setUserID(userID string) {
	s.mu.Lock()
	s.userID = userID
	s.mu.Unlock()
}

// Manager holds all live sessions in memory. Sessions exist for the process
// lifetime; guest carts die with the process, which is the contract.
type Manager struct {
	mu       sync.RWMutex
	sessions map[string]*Session
}

func NewManager() *Manager {
	return &Manager{sessions: make(map[string]*Session)}
}

// Start creates a new guest session with an empty cart.
func (m *Manager) Start() *Session {
	s := &Session{
		ID:        uuid.NewString(),
		CreatedAt: time.Now(),
		Cart:      cart.NewStore(),
	}

	m.mu.Lock()
	m.sessions[s.ID] = s
	m.mu.Unlock()

	return s
}

func (m *Manager) Get(id string) (*Session, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	s, ok := m.sessions[id]
	return s, ok
}

// Authenticate marks the session as belonging to userID. The cart contents
// carry over: items added as a guest stay in the local cart.
func (m *Manager) Authenticate(id, userID string) error {
	s, ok := m.Get(id)
	if !ok {
		return ErrNotFound
	}
	s.setUserID(userID)
	return nil
}

// Logout resets the cart, then clears the authenticated marker. The reset
// must come first so stale items are never attributed to no user.
func (m *Manager) Logout(id string) error {
	s, ok := m.Get(id)
	if !ok {
		return ErrNotFound
	}
	s.Cart.Dispatch(cart.Reset{})
	s.setUserID("")
	return nil
}
