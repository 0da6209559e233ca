// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// Package favorites persists each user's favorited tool ids in Valkey.
// Sets are stored as JSON arrays under favorites_<email>, written on every
// mutation so a later login always sees the latest state.
package favorites

import (
	"context"
	"encoding/json"
	"fmt"
	"sort"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"

	"aiwiki/internal/catalog"
)

// Ledger reads and writes per-user favorite sets in Valkey.
type Ledger struct {
	client *redis.Client
}

// NewLedger creates a favorites ledger backed by the given Valkey client.
func NewLedger(client *redis.Client) *Ledger {
	return &Ledger{client: client}
}

// Key returns the storage key for a user's favorites. The format is part
// of the external interface; changing it orphans existing sets.
func Key(email string) string {
	return "favorites_" + email
}

// Load returns the favorites set stored for email. A missing key is an
// empty set, not an error: the user simply has no favorites yet.
func (l *Ledger) Load(ctx context.Context, email string) (catalog.Favorites, error) {
	payload, err := l.client.Get(ctx, Key(email)).Bytes()
	if err == redis.Nil {
		return catalog.Favorites{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("favorites load: %w", err)
	}

	var ids []uuid.UUID
	if err := json.Unmarshal(payload, &ids); err != nil {
		return nil, fmt.Errorf("favorites unmarshal: %w", err)
	}

	favs := make(catalog.Favorites, len(ids))
	for _, id := range ids {
		favs[id] = true
	}
	return favs, nil
}

// Save writes the full favorites set for email. Ids are sorted before
// serialization so the stored form is canonical. Favorites never expire.
func (l *Ledger) Save(ctx context.Context, email string, favs catalog.Favorites) error {
	ids := make([]uuid.UUID, 0, len(favs))
	for id, ok := range favs {
		if ok {
			ids = append(ids, id)
		}
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i].String() < ids[j].String() })

	payload, err := json.Marshal(ids)
	if err != nil {
		return fmt.Errorf("favorites marshal: %w", err)
	}

	if err := l.client.Set(ctx, Key(email), payload, 0).Err(); err != nil {
		return fmt.Errorf("favorites save: %w", err)
	}
	return nil
}

// Toggle adds the tool id to the user's set if absent, removes it if
// present, and flushes the result to Valkey. Returns the new membership
// state of the id.
func (l *Ledger) Toggle(ctx context.Context, email string, id uuid.UUID) (bool, error) {
	favs, err := l.Load(ctx, email)
	if err != nil {
		return false, err
	}

	favorited := !favs[id]
	if favorited {
		favs[id] = true
	} else {
		delete(favs, id)
	}

	if err := l.Save(ctx, email, favs); err != nil {
		return false, err
	}
	return favorited, nil
}

// Clear deletes the user's favorites set entirely.
func (l *Ledger) Clear(ctx context.Context, email string) error {
	if err := l.client.Del(ctx, Key(email)).Err(); err != nil {
		return fmt.Errorf("favorites clear: %w", err)
	}
	return nil
}

// Count returns the size of the user's favorites set.
func (l *Ledger) Count(ctx context.Context, email string) (int, error) {
	favs, err := l.Load(ctx, email)
	if err != nil {
		return 0, err
	}
	return len(favs), nil
}
