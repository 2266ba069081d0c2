package session

import (
	"context"
	"errors"
	"strings"
	"sync"

	"github.com/google/uuid"

	domcart "example.com/iskina-storefront/internal/domain/cart"
	domcheckout "example.com/iskina-storefront/internal/domain/checkout"
)

var (
	ErrSessionNotFound = errors.New("session not found")
	ErrRoomRequired    = errors.New("room number is required")
)

// Session is one customer's ordering session: the room number captured up
// front, their cart ledger, and the in-progress checkout, if any. A session
// has one logical actor, so session state is not guarded beyond the store map
// itself.
type Session struct {
	ID         string
	RoomNumber string
	Cart       *domcart.Ledger
	Checkout   *domcheckout.Checkout
}

// Store keeps sessions in memory for the lifetime of the process. Nothing
// here is persisted; abandoning a session abandons its cart and draft.
type Store struct {
	mu       sync.RWMutex
	sessions map[string]*Session
}

func NewStore() *Store {
	return &Store{sessions: make(map[string]*Session)}
}

func (s *Store) Create(roomNumber string) (*Session, error) {
	roomNumber = strings.TrimSpace(roomNumber)
	if roomNumber == "" {
		return nil, ErrRoomRequired
	}

	sess := &Session{
		ID:         uuid.New().String(),
		RoomNumber: roomNumber,
		Cart:       domcart.NewLedger(),
	}

	s.mu.Lock()
	s.sessions[sess.ID] = sess
	s.mu.Unlock()
	return sess, nil
}

func (s *Store) Get(id string) (*Session, error) {
	s.mu.RLock()
	sess, ok := s.sessions[id]
	s.mu.RUnlock()
	if !ok {
		return nil, ErrSessionNotFound
	}
	return sess, nil
}

func (s *Store) Delete(id string) {
	s.mu.Lock()
	delete(s.sessions, id)
	s.mu.Unlock()
}

// Availability gates session creation: the room prompt is suppressed while
// the store is closed.
type Availability interface {
	Gate(ctx context.Context) error
}

type Service struct {
	store *Store
	avail Availability
}

func NewService(store *Store, avail Availability) *Service {
	return &Service{store: store, avail: avail}
}

// Begin captures the room number and opens a session. Refused while the
// store is closed or the settings are not loaded yet.
func (s *Service) Begin(ctx context.Context, roomNumber string) (*Session, error) {
	if err := s.avail.Gate(ctx); err != nil {
		return nil, err
	}
	return s.store.Create(roomNumber)
}
