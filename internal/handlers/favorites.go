// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package handlers

import (
	"log/slog"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"aiwiki/internal/favorites"
	"aiwiki/internal/middleware"
)

// Favorites handles the per-user favorite toggle. Requires a session.
type Favorites struct {
	ledger *favorites.Ledger
}

// NewFavorites creates the favorites handler group.
func NewFavorites(ledger *favorites.Ledger) *Favorites {
	return &Favorites{ledger: ledger}
}

// Toggle flips the favorite state of one tool for the signed-in user and
// sends the browser back to the page it came from, so the heart updates
// in place without losing the active filters.
func (h *Favorites) Toggle(w http.ResponseWriter, r *http.Request) {
	sess := middleware.SessionFromCtx(r.Context())
	if sess == nil {
		http.Redirect(w, r, "/login", http.StatusSeeOther)
		return
	}

	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		http.NotFound(w, r)
		return
	}

	favorited, err := h.ledger.Toggle(r.Context(), sess.Email, id)
	if err != nil {
		slog.Error("toggle favorite failed", "error", err, "email", sess.Email, "tool", id)
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}
	slog.Debug("favorite toggled", "email", sess.Email, "tool", id, "favorited", favorited)

	http.Redirect(w, r, backURL(r), http.StatusSeeOther)
}

// backURL returns a safe same-site redirect target from the Referer
// header, falling back to the directory root.
func backURL(r *http.Request) string {
	ref := r.Referer()
	if ref == "" {
		return "/"
	}
	// Only follow relative or same-host referers.
	if strings.HasPrefix(ref, "/") {
		return ref
	}
	if u := r.Host; u != "" {
		for _, scheme := range []string{"http://", "https://"} {
			if strings.HasPrefix(ref, scheme+u+"/") {
				return strings.TrimPrefix(ref, scheme+u)
			}
		}
	}
	return "/"
}
