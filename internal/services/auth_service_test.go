package services

import (
	"testing"
	"time"
)

type stubAuthStore struct {
	users map[string]*User
}

func newStubAuthStore() *stubAuthStore {
	return &stubAuthStore{users: map[string]*User{}}
}

func (s *stubAuthStore) FindUserByEmail(email string) (*User, error) {
	return s.users[email], nil
}

func (s *stubAuthStore) AddUser(u *User) error {
	s.users[u.Email] = u
	return nil
}

func stubSigner(uid, email string, ttl time.Duration) (string, error) {
	return "token-" + uid, nil
}

func TestRegisterAndLogin(t *testing.T) {
	store := newStubAuthStore()
	svc := NewAuthService(store, stubSigner)

	reg, err := svc.Register("admin@example.com", "hunter22")
	if err != nil {
		t.Fatalf("Register: %v", err)
	}
	if reg.Token == "" || reg.UserID == "" {
		t.Fatalf("expected token and user id, got %+v", reg)
	}
	u := store.users["admin@example.com"]
	if u == nil {
		t.Fatalf("user not persisted")
	}
	if string(u.PassHash) == "hunter22" {
		t.Fatalf("password must not be stored in the clear")
	}

	login, err := svc.Login("admin@example.com", "hunter22")
	if err != nil {
		t.Fatalf("Login: %v", err)
	}
	if login.UserID != reg.UserID {
		t.Fatalf("login returned a different user: %q vs %q", login.UserID, reg.UserID)
	}
}

func TestRegisterConflict(t *testing.T) {
	svc := NewAuthService(newStubAuthStore(), stubSigner)
	if _, err := svc.Register("admin@example.com", "first"); err != nil {
		t.Fatalf("Register: %v", err)
	}
	_, err := svc.Register("admin@example.com", "second")
	if se, ok := AsServiceError(err); !ok || se.Code != ErrorConflict {
		t.Fatalf("expected conflict, got %v", err)
	}
}

func TestRegisterRequiresCredentials(t *testing.T) {
	svc := NewAuthService(newStubAuthStore(), stubSigner)
	for _, c := range []struct{ email, pass string }{
		{"", "pw"}, {"a@b.c", ""}, {"a@b.c", "   "},
	} {
		_, err := svc.Register(c.email, c.pass)
		if se, ok := AsServiceError(err); !ok || se.Code != ErrorInvalid {
			t.Fatalf("Register(%q, %q): expected invalid, got %v", c.email, c.pass, err)
		}
	}
}

func TestLoginRejectsBadCredentials(t *testing.T) {
	store := newStubAuthStore()
	svc := NewAuthService(store, stubSigner)
	if _, err := svc.Register("admin@example.com", "correct"); err != nil {
		t.Fatalf("Register: %v", err)
	}

	_, err := svc.Login("admin@example.com", "wrong")
	if se, ok := AsServiceError(err); !ok || se.Code != ErrorUnauthorized {
		t.Fatalf("expected unauthorized for wrong password, got %v", err)
	}
	_, err = svc.Login("ghost@example.com", "whatever")
	if se, ok := AsServiceError(err); !ok || se.Code != ErrorUnauthorized {
		t.Fatalf("expected unauthorized for unknown user, got %v", err)
	}
}
