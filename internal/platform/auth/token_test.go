package auth

import (
	"testing"
	"time"

	"github.com/google/uuid"
)

const testSecret = "test-secret-at-least-32-bytes-long!!"

func TestIssuePair_AccessRoundtrip(t *testing.T) {
	issuer := NewIssuer(testSecret, time.Hour, 24*time.Hour)
	userID := uuid.New()

	pair, err := issuer.IssuePair(userID)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if pair.Access == "" || pair.Refresh == "" {
		t.Fatal("expected both tokens to be issued")
	}

	got, err := issuer.ParseAccess(pair.Access)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != userID {
		t.Errorf("expected user %s, got %s", userID, got)
	}
}

func TestParseAccess_RejectsRefreshToken(t *testing.T) {
	issuer := NewIssuer(testSecret, time.Hour, 24*time.Hour)

	pair, err := issuer.IssuePair(uuid.New())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, err := issuer.ParseAccess(pair.Refresh); err == nil {
		t.Fatal("expected refresh token to be rejected")
	}
}

func TestParseAccess_RejectsWrongSecret(t *testing.T) {
	issuer := NewIssuer(testSecret, time.Hour, 24*time.Hour)
	other := NewIssuer("another-secret-also-32-bytes-long!!!", time.Hour, 24*time.Hour)

	pair, err := issuer.IssuePair(uuid.New())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, err := other.ParseAccess(pair.Access); err == nil {
		t.Fatal("expected token signed with a different secret to be rejected")
	}
}

func TestParseAccess_RejectsExpired(t *testing.T) {
	issuer := NewIssuer(testSecret, -time.Minute, 24*time.Hour)

	pair, err := issuer.IssuePair(uuid.New())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, err := issuer.ParseAccess(pair.Access); err == nil {
		t.Fatal("expected expired token to be rejected")
	}
}

func TestParseAccess_RejectsGarbage(t *testing.T) {
	issuer := NewIssuer(testSecret, time.Hour, 24*time.Hour)
	if _, err := issuer.ParseAccess("not.a.token"); err == nil {
		t.Fatal("expected garbage token to be rejected")
	}
}
