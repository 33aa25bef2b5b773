package auth_test

import (
	"io"
	"log/slog"
	"testing"

	"github.com/arpancodez/hotelmgsys/auth"
	"github.com/arpancodez/hotelmgsys/db"
)

func newService(t *testing.T) *auth.Service {
	t.Helper()
	log := slog.New(slog.NewTextHandler(io.Discard, nil))
	helper := db.NewHelper("sqlite3", "file::memory:?cache=shared", log)
	return auth.NewService(helper, log)
}

func TestValidateCredentials(t *testing.T) {
	svc := newService(t)

	cases := []struct {
		name     string
		username string
		password string
		want     bool
	}{
		{"both filled", "alice", "secret", true},
		{"empty username", "", "secret", false},
		{"empty password", "alice", "", false},
		{"both empty", "", "", false},
		{"single characters", "a", "b", true},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := svc.ValidateCredentials(tc.username, tc.password); got != tc.want {
				t.Fatalf("ValidateCredentials(%q, %q) = %v, want %v",
					tc.username, tc.password, got, tc.want)
			}
		})
	}
}

func TestRegisterUser(t *testing.T) {
	svc := newService(t)

	cases := []struct {
		name     string
		username string
		password string
		want     bool
	}{
		{"valid pair", "bob", "hunter2hunter2", true},
		{"empty username", "", "hunter2", false},
		{"empty password", "bob", "", false},
		{"both empty", "", "", false},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := svc.RegisterUser(tc.username, tc.password); got != tc.want {
				t.Fatalf("RegisterUser(%q, %q) = %v, want %v",
					tc.username, tc.password, got, tc.want)
			}
		})
	}
}

func TestRegisterUser_RepeatSucceeds(t *testing.T) {
	// No uniqueness checks exist yet: registering the same name twice
	// succeeds both times.
	svc := newService(t)
	if !svc.RegisterUser("carol", "pw") || !svc.RegisterUser("carol", "pw") {
		t.Fatal("repeat registration should succeed")
	}
}

func TestSessionLifecycle(t *testing.T) {
	svc := newService(t)

	sess := svc.OpenSession("alice")
	if sess.Token == "" {
		t.Fatal("expected non-empty session token")
	}
	if sess.Username != "alice" {
		t.Fatalf("session username = %q, want %q", sess.Username, "alice")
	}

	got, ok := svc.SessionFor(sess.Token)
	if !ok {
		t.Fatal("expected session lookup to succeed")
	}
	if got.Username != "alice" {
		t.Fatalf("looked-up username = %q, want %q", got.Username, "alice")
	}

	svc.Revoke(sess.Token)
	if _, ok := svc.SessionFor(sess.Token); ok {
		t.Fatal("expected revoked session to be gone")
	}

	// Revoking twice is a no-op.
	svc.Revoke(sess.Token)
}

func TestOpenSession_TokensUnique(t *testing.T) {
	svc := newService(t)
	a := svc.OpenSession("alice")
	b := svc.OpenSession("alice")
	if a.Token == b.Token {
		t.Fatal("expected distinct tokens for distinct sessions")
	}
}

func TestSessionFor_UnknownToken(t *testing.T) {
	svc := newService(t)
	if _, ok := svc.SessionFor("no-such-token"); ok {
		t.Fatal("expected miss for unknown token")
	}
}
