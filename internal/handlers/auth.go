// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"aiwiki/internal/auth"
	"aiwiki/internal/middleware"
	"aiwiki/internal/render"
	"aiwiki/internal/session"
)

// Auth groups all authentication-related HTTP handlers. Credential
// decisions are delegated to the configured verifier: demo mode accepts
// any well-formed pair, local mode checks the users table.
type Auth struct {
	renderer *render.Renderer
	sessions *session.Store
	verifier auth.Verifier
	demoMode bool
}

// NewAuth creates a new Auth handler group.
func NewAuth(renderer *render.Renderer, sessions *session.Store, verifier auth.Verifier, demoMode bool) *Auth {
	return &Auth{
		renderer: renderer,
		sessions: sessions,
		verifier: verifier,
		demoMode: demoMode,
	}
}

// LoginPage renders the login form.
func (a *Auth) LoginPage(w http.ResponseWriter, r *http.Request) {
	// Already signed in: back to the directory.
	if middleware.SessionFromCtx(r.Context()) != nil {
		http.Redirect(w, r, "/", http.StatusSeeOther)
		return
	}

	a.renderer.Page(w, r, "login", &render.PageData{
		Title: "Sign In",
		Data:  map[string]any{"DemoMode": a.demoMode, "Email": ""},
	})
}

// LoginSubmit processes the login form and starts a session.
func (a *Auth) LoginSubmit(w http.ResponseWriter, r *http.Request) {
	email := r.FormValue("email")
	password := r.FormValue("password")

	ident, err := a.verifier.Verify(email, password)
	if err != nil {
		if !errors.Is(err, auth.ErrInvalidCredentials) {
			slog.Error("login verify failed", "error", err)
		}
		a.renderer.Page(w, r, "login", &render.PageData{
			Title: "Sign In",
			Data: map[string]any{
				"DemoMode": a.demoMode,
				"Email":    email,
				"Error":    "Invalid email or password.",
			},
		})
		return
	}

	if err := a.startSession(w, r, ident); err != nil {
		slog.Error("session create failed", "error", err)
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}

	slog.Info("user signed in", "email", ident.Email)
	http.Redirect(w, r, "/", http.StatusSeeOther)
}

// RegisterPage renders the registration form.
func (a *Auth) RegisterPage(w http.ResponseWriter, r *http.Request) {
	if middleware.SessionFromCtx(r.Context()) != nil {
		http.Redirect(w, r, "/", http.StatusSeeOther)
		return
	}

	a.renderer.Page(w, r, "register", &render.PageData{
		Title: "Create Account",
		Data:  map[string]any{"DemoMode": a.demoMode, "Name": "", "Email": ""},
	})
}

// RegisterSubmit processes the registration form. The password must be
// confirmed; everything else is up to the verifier.
func (a *Auth) RegisterSubmit(w http.ResponseWriter, r *http.Request) {
	name := r.FormValue("name")
	email := r.FormValue("email")
	password := r.FormValue("password")
	confirm := r.FormValue("confirm")

	renderError := func(msg string) {
		a.renderer.Page(w, r, "register", &render.PageData{
			Title: "Create Account",
			Data: map[string]any{
				"DemoMode": a.demoMode,
				"Name":     name,
				"Email":    email,
				"Error":    msg,
			},
		})
	}

	if msg := validateRegistration(password, confirm); msg != "" {
		renderError(msg)
		return
	}

	ident, err := a.verifier.Register(email, password, name)
	if err != nil {
		switch {
		case errors.Is(err, auth.ErrEmailTaken):
			renderError("That email is already registered.")
		case errors.Is(err, auth.ErrInvalidCredentials):
			renderError("Please enter a valid email address and password.")
		default:
			slog.Error("register failed", "error", err)
			renderError("An unexpected error occurred.")
		}
		return
	}

	if err := a.startSession(w, r, ident); err != nil {
		slog.Error("session create failed", "error", err)
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}

	slog.Info("user registered", "email", ident.Email)
	http.Redirect(w, r, "/", http.StatusSeeOther)
}

// Logout destroys the session and returns to the directory. Favorites
// stay in Valkey and reappear on the next login with the same email.
func (a *Auth) Logout(w http.ResponseWriter, r *http.Request) {
	a.sessions.Destroy(r.Context(), w, r)
	http.Redirect(w, r, "/", http.StatusSeeOther)
}

func (a *Auth) startSession(w http.ResponseWriter, r *http.Request, ident *auth.Identity) error {
	_, err := a.sessions.Create(r.Context(), w, &session.Data{
		UserID:      ident.UserID,
		Email:       ident.Email,
		DisplayName: ident.DisplayName,
	})
	return err
}
