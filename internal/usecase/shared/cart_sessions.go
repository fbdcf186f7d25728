package shared

import (
	"log/slog"
	"sync"
	"time"

	"jersey-storefront/internal/domain/cart"
	"jersey-storefront/internal/pkg/clock"
)

// CartSessions serializes cart work per session inside one process.
// A cart whose last save failed stays in memory so later requests of the
// session keep its lines; it is dropped once a save succeeds or after idleTTL.
type CartSessions struct {
	stores  CartStoreFactory
	clock   clock.Clock
	idleTTL time.Duration
	logger  *slog.Logger

	mu       sync.Mutex
	sessions map[string]*cartSession
}

type cartSession struct {
	mu       sync.Mutex
	refs     int
	cart     *cart.Cart
	lastUsed time.Time
}

// NewCartSessions keeps unsaved carts for idleTTL after their last use; idleTTL <= 0 keeps them until saved.
func NewCartSessions(stores CartStoreFactory, clk clock.Clock, idleTTL time.Duration, logger *slog.Logger) *CartSessions {
	return &CartSessions{
		stores:   stores,
		clock:    clk,
		idleTTL:  idleTTL,
		logger:   logger,
		sessions: make(map[string]*cartSession),
	}
}

// Acquire blocks until the session is free and returns its cart with the release func.
// The cart must not be used after release.
func (s *CartSessions) Acquire(sessionID string) (*cart.Cart, func()) {
	s.mu.Lock()
	s.evictIdle(s.clock.Now())
	e, ok := s.sessions[sessionID]
	if !ok {
		e = &cartSession{}
		s.sessions[sessionID] = e
	}
	e.refs++
	s.mu.Unlock()

	e.mu.Lock()
	if e.cart == nil {
		e.cart = cart.New(s.stores.ForSession(sessionID),
			cart.WithLogger(s.logger.With(slog.String("session_id", sessionID))))
	}
	c := e.cart

	return c, func() {
		s.mu.Lock()
		defer s.mu.Unlock()
		if !c.Unsaved() {
			e.cart = nil
		}
		e.lastUsed = s.clock.Now()
		e.refs--
		if e.refs == 0 && e.cart == nil {
			delete(s.sessions, sessionID)
		}
		e.mu.Unlock()
	}
}

// Pending is the number of sessions holding unsaved carts or waiting for one.
func (s *CartSessions) Pending() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.sessions)
}

// evictIdle must be called with s.mu held.
func (s *CartSessions) evictIdle(now time.Time) {
	if s.idleTTL <= 0 {
		return
	}
	for id, e := range s.sessions {
		if e.refs == 0 && now.Sub(e.lastUsed) > s.idleTTL {
			s.logger.Warn("dropping unsaved cart after idle timeout", slog.String("session_id", id))
			delete(s.sessions, id)
		}
	}
}
