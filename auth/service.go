package auth

import (
	"log/slog"

	"github.com/arpancodez/hotelmgsys/crypto"
	"github.com/arpancodez/hotelmgsys/db"
)

// Service validates credentials and registers users.
//
// Validation and registration are placeholders until the users schema
// lands: any non-empty pair is accepted and nothing is persisted.
type Service struct {
	db  *db.Helper
	log *slog.Logger

	sessions *sessionStore
}

// NewService wires the service to its database helper.
func NewService(helper *db.Helper, log *slog.Logger) *Service {
	return &Service{
		db:       helper,
		log:      log,
		sessions: newSessionStore(),
	}
}

// EnsureReady connects the database helper and bootstraps the schema.
// Failures are logged and swallowed; the app runs without a database.
func (s *Service) EnsureReady() {
	if !s.db.Connect() {
		s.log.Warn("database unavailable, continuing without it")
		return
	}
	if err := s.db.EnsureSchema(); err != nil {
		s.log.Error("db init error", "err", err)
	}
}

// Close releases the database connection.
func (s *Service) Close() {
	s.db.Disconnect()
}

// ValidateCredentials reports whether the pair is accepted. Placeholder
// rule: both fields must be non-empty. Does not query the database.
func (s *Service) ValidateCredentials(username, password string) bool {
	return username != "" && password != ""
}

// RegisterUser registers a new account. Rejects empty fields, otherwise
// succeeds unconditionally. The password is hashed here so the call
// shape survives once inserts exist, but the hash is discarded.
//
// TODO: insert into users once the schema is final.
func (s *Service) RegisterUser(username, password string) bool {
	if username == "" || password == "" {
		return false
	}

	salt, key, err := crypto.HashPassword(password, crypto.DefaultParams)
	if err != nil {
		s.log.Error("registration error", "username", username, "err", err)
		return false
	}
	crypto.Wipe(key)
	crypto.Wipe(salt)

	s.log.Info("user registered", "username", username)
	return true
}
