// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package auth

import (
	"fmt"
	"strings"

	"aiwiki/internal/models"
)

// UserDirectory is the slice of the user store the local verifier needs.
type UserDirectory interface {
	FindByEmail(email string) (*models.User, error)
	Create(email, password, displayName string) (*models.User, error)
	CheckPassword(u *models.User, password string) bool
}

// LocalVerifier checks credentials against the users table with bcrypt.
// Used when AUTH_MODE=local.
type LocalVerifier struct {
	users UserDirectory
}

// NewLocalVerifier creates a verifier backed by the given user store.
func NewLocalVerifier(users UserDirectory) *LocalVerifier {
	return &LocalVerifier{users: users}
}

// Verify looks the user up by email and compares the password hash.
func (v *LocalVerifier) Verify(email, password string) (*Identity, error) {
	email = strings.TrimSpace(strings.ToLower(email))
	user, err := v.users.FindByEmail(email)
	if err != nil {
		return nil, fmt.Errorf("verify %s: %w", email, err)
	}
	if user == nil || !v.users.CheckPassword(user, password) {
		return nil, ErrInvalidCredentials
	}
	return &Identity{
		UserID:      user.ID,
		Email:       user.Email,
		DisplayName: user.DisplayName,
	}, nil
}

// Register creates a new account. The email must be well formed and not
// already registered.
func (v *LocalVerifier) Register(email, password, displayName string) (*Identity, error) {
	email = strings.TrimSpace(strings.ToLower(email))
	if !WellFormedEmail(email) || password == "" {
		return nil, ErrInvalidCredentials
	}

	existing, err := v.users.FindByEmail(email)
	if err != nil {
		return nil, fmt.Errorf("register %s: %w", email, err)
	}
	if existing != nil {
		return nil, ErrEmailTaken
	}

	if strings.TrimSpace(displayName) == "" {
		displayName = DisplayNameFromEmail(email)
	}
	user, err := v.users.Create(email, password, displayName)
	if err != nil {
		return nil, fmt.Errorf("register %s: %w", email, err)
	}
	return &Identity{
		UserID:      user.ID,
		Email:       user.Email,
		DisplayName: user.DisplayName,
	}, nil
}
