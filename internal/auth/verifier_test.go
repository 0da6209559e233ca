package auth

import (
	"errors"
	"testing"

	"github.com/google/uuid"

	"aiwiki/internal/models"
)

func TestDemoVerifierAcceptsAnyCredentials(t *testing.T) {
	v := NewDemoVerifier()

	ident, err := v.Verify("ana@example.com", "whatever")
	if err != nil {
		t.Fatalf("Verify: %v", err)
	}
	if ident.Email != "ana@example.com" {
		t.Errorf("email: got %q", ident.Email)
	}
	if ident.DisplayName != "ana" {
		t.Errorf("display name: got %q, want local part of email", ident.DisplayName)
	}
	if ident.UserID == uuid.Nil {
		t.Error("expected a synthesized user id")
	}
}

func TestDemoVerifierIsDeterministic(t *testing.T) {
	v := NewDemoVerifier()

	first, err := v.Verify("ana@example.com", "pass1")
	if err != nil {
		t.Fatalf("Verify: %v", err)
	}
	second, err := v.Verify("Ana@Example.com", "a completely different password")
	if err != nil {
		t.Fatalf("Verify: %v", err)
	}
	if first.UserID != second.UserID {
		t.Error("same email should map to the same user id across logins")
	}

	other, err := v.Verify("bob@example.com", "pass1")
	if err != nil {
		t.Fatalf("Verify: %v", err)
	}
	if other.UserID == first.UserID {
		t.Error("different emails should map to different user ids")
	}
}

func TestDemoVerifierRejectsMalformedInput(t *testing.T) {
	v := NewDemoVerifier()

	cases := []struct {
		name     string
		email    string
		password string
	}{
		{"empty email", "", "pass"},
		{"no at sign", "ana.example.com", "pass"},
		{"no local part", "@example.com", "pass"},
		{"no domain", "ana@", "pass"},
		{"double at", "ana@@example.com", "pass"},
		{"embedded space", "ana smith@example.com", "pass"},
		{"empty password", "ana@example.com", ""},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if _, err := v.Verify(tc.email, tc.password); !errors.Is(err, ErrInvalidCredentials) {
				t.Errorf("expected ErrInvalidCredentials, got %v", err)
			}
		})
	}
}

func TestDemoRegisterUsesProvidedName(t *testing.T) {
	v := NewDemoVerifier()

	ident, err := v.Register("ana@example.com", "pass", "Ana Popescu")
	if err != nil {
		t.Fatalf("Register: %v", err)
	}
	if ident.DisplayName != "Ana Popescu" {
		t.Errorf("display name: got %q", ident.DisplayName)
	}

	ident, err = v.Register("ana@example.com", "pass", "  ")
	if err != nil {
		t.Fatalf("Register: %v", err)
	}
	if ident.DisplayName != "ana" {
		t.Errorf("blank name should fall back to local part, got %q", ident.DisplayName)
	}
}

// fakeUsers is an in-memory UserDirectory for exercising the local
// verifier without a database. Passwords are stored as plain text in
// the hash field; CheckPassword compares directly.
type fakeUsers struct {
	byEmail map[string]*models.User
}

func newFakeUsers() *fakeUsers {
	return &fakeUsers{byEmail: make(map[string]*models.User)}
}

func (f *fakeUsers) FindByEmail(email string) (*models.User, error) {
	return f.byEmail[email], nil
}

func (f *fakeUsers) Create(email, password, displayName string) (*models.User, error) {
	u := &models.User{
		ID:           uuid.New(),
		Email:        email,
		PasswordHash: password,
		DisplayName:  displayName,
	}
	f.byEmail[email] = u
	return u, nil
}

func (f *fakeUsers) CheckPassword(u *models.User, password string) bool {
	return u.PasswordHash == password
}

func TestLocalVerifierVerify(t *testing.T) {
	users := newFakeUsers()
	users.Create("ana@example.com", "secret", "Ana")
	v := NewLocalVerifier(users)

	ident, err := v.Verify("ana@example.com", "secret")
	if err != nil {
		t.Fatalf("Verify: %v", err)
	}
	if ident.DisplayName != "Ana" {
		t.Errorf("display name: got %q", ident.DisplayName)
	}

	if _, err := v.Verify("ana@example.com", "wrong"); !errors.Is(err, ErrInvalidCredentials) {
		t.Errorf("wrong password: expected ErrInvalidCredentials, got %v", err)
	}
	if _, err := v.Verify("nobody@example.com", "secret"); !errors.Is(err, ErrInvalidCredentials) {
		t.Errorf("unknown email: expected ErrInvalidCredentials, got %v", err)
	}
}

func TestLocalVerifierRegister(t *testing.T) {
	users := newFakeUsers()
	v := NewLocalVerifier(users)

	ident, err := v.Register("ana@example.com", "secret", "")
	if err != nil {
		t.Fatalf("Register: %v", err)
	}
	if ident.DisplayName != "ana" {
		t.Errorf("display name should derive from email, got %q", ident.DisplayName)
	}

	if _, err := v.Register("ana@example.com", "other", "Ana"); !errors.Is(err, ErrEmailTaken) {
		t.Errorf("duplicate email: expected ErrEmailTaken, got %v", err)
	}
	if _, err := v.Register("not-an-email", "secret", ""); !errors.Is(err, ErrInvalidCredentials) {
		t.Errorf("malformed email: expected ErrInvalidCredentials, got %v", err)
	}

	// The new account works for login.
	if _, err := v.Verify("ana@example.com", "secret"); err != nil {
		t.Errorf("Verify after Register: %v", err)
	}
}
