package auth

import (
	"sync"
	"time"

	"github.com/google/uuid"
)

// Session identifies a signed-in user for the lifetime of the process.
type Session struct {
	Token    string
	Username string
	IssuedAt time.Time
}

// sessionStore keeps sessions in memory, keyed by token.
type sessionStore struct {
	mu       sync.RWMutex
	sessions map[string]Session
}

func newSessionStore() *sessionStore {
	return &sessionStore{sessions: make(map[string]Session)}
}

// OpenSession issues a session for the given user after a successful
// sign-in and returns it.
func (s *Service) OpenSession(username string) Session {
	sess := Session{
		Token:    uuid.NewString(),
		Username: username,
		IssuedAt: time.Now(),
	}
	s.sessions.mu.Lock()
	s.sessions.sessions[sess.Token] = sess
	s.sessions.mu.Unlock()

	s.log.Info("session opened", "username", username)
	return sess
}

// SessionFor looks up a session by token.
func (s *Service) SessionFor(token string) (Session, bool) {
	s.sessions.mu.RLock()
	defer s.sessions.mu.RUnlock()
	sess, ok := s.sessions.sessions[token]
	return sess, ok
}

// Revoke removes a session. Unknown tokens are ignored.
func (s *Service) Revoke(token string) {
	s.sessions.mu.Lock()
	if sess, ok := s.sessions.sessions[token]; ok {
		delete(s.sessions.sessions, token)
		s.log.Info("session revoked", "username", sess.Username)
	}
	s.sessions.mu.Unlock()
}
