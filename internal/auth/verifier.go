// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// Package auth decides who a login or registration request belongs to.
// The directory ships in demo mode, where any well-formed email and
// password pair is accepted and an identity is synthesized from the
// email. AUTH_MODE=local swaps in real credential checks against the
// users table without touching the handlers.
package auth

import (
	"errors"
	"strings"

	"github.com/google/uuid"
)

var (
	// ErrInvalidCredentials is returned when the email/password pair is
	// rejected. Handlers show it verbatim without distinguishing a
	// missing account from a wrong password.
	ErrInvalidCredentials = errors.New("invalid email or password")

	// ErrEmailTaken is returned by Register when the email already has
	// an account.
	ErrEmailTaken = errors.New("email already registered")
)

// Identity is the authenticated principal a verifier hands back. It
// carries exactly what a session needs.
type Identity struct {
	UserID      uuid.UUID
	Email       string
	DisplayName string
}

// Verifier checks credentials and creates accounts. Implementations
// return ErrInvalidCredentials or ErrEmailTaken for expected rejections
// and a wrapped error for infrastructure failures.
type Verifier interface {
	Verify(email, password string) (*Identity, error)
	Register(email, password, displayName string) (*Identity, error)
}

// demoUserNamespace seeds deterministic demo user ids, so the same
// email maps to the same UserID across logins.
var demoUserNamespace = uuid.MustParse("3c9a6f0e-8a6b-4f0d-9b1e-2f4d5e6a7b8c")

// DemoVerifier accepts any well-formed email with a non-empty password.
// The display name is derived from the part of the email before the @.
type DemoVerifier struct{}

// NewDemoVerifier creates a verifier for demo deployments.
func NewDemoVerifier() *DemoVerifier {
	return &DemoVerifier{}
}

// Verify accepts the credentials and synthesizes an identity.
func (v *DemoVerifier) Verify(email, password string) (*Identity, error) {
	email = strings.TrimSpace(strings.ToLower(email))
	if !WellFormedEmail(email) || password == "" {
		return nil, ErrInvalidCredentials
	}
	return &Identity{
		UserID:      uuid.NewSHA1(demoUserNamespace, []byte(email)),
		Email:       email,
		DisplayName: DisplayNameFromEmail(email),
	}, nil
}

// Register behaves like Verify in demo mode. A provided display name
// overrides the derived one. No account is persisted.
func (v *DemoVerifier) Register(email, password, displayName string) (*Identity, error) {
	ident, err := v.Verify(email, password)
	if err != nil {
		return nil, err
	}
	if name := strings.TrimSpace(displayName); name != "" {
		ident.DisplayName = name
	}
	return ident, nil
}

// WellFormedEmail reports whether s looks like an email address. The
// check is deliberately shallow: a local part, one @, a domain.
func WellFormedEmail(s string) bool {
	at := strings.Index(s, "@")
	if at <= 0 || at == len(s)-1 {
		return false
	}
	if strings.Contains(s[at+1:], "@") {
		return false
	}
	return !strings.ContainsAny(s, " \t\n")
}

// DisplayNameFromEmail derives a display name from the local part of
// an email address.
func DisplayNameFromEmail(email string) string {
	if at := strings.Index(email, "@"); at > 0 {
		return email[:at]
	}
	return email
}
