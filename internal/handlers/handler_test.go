// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// handler_test.go provides shared test infrastructure for handler integration
// tests. Tests are skipped when PostgreSQL or Valkey are unavailable.
package handlers

import (
	"context"
	"database/sql"
	"net/http"
	"os"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/pressly/goose/v3"
	"github.com/redis/go-redis/v9"

	"aiwiki/internal/auth"
	"aiwiki/internal/cache"
	"aiwiki/internal/database"
	"aiwiki/internal/favorites"
	"aiwiki/internal/middleware"
	"aiwiki/internal/models"
	"aiwiki/internal/render"
	"aiwiki/internal/session"
	"aiwiki/internal/store"
)

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

// testDB opens a connection to the test PostgreSQL and runs migrations.
func testDB(t *testing.T) *sql.DB {
	t.Helper()

	host := envOr("POSTGRES_HOST", "localhost")
	port := envOr("POSTGRES_PORT", "5432")
	user := envOr("POSTGRES_USER", "aiwiki")
	pass := envOr("POSTGRES_PASSWORD", "changeme")
	name := envOr("POSTGRES_DB", "aiwiki")
	dsn := "postgres://" + user + ":" + pass + "@" + host + ":" + port + "/" + name + "?sslmode=disable"

	db, err := sql.Open("pgx", dsn)
	if err != nil {
		t.Skipf("skipping: cannot open DB: %v", err)
	}
	if err := db.Ping(); err != nil {
		db.Close()
		t.Skipf("skipping: DB not reachable: %v", err)
	}

	if err := database.Migrate(db); err != nil {
		db.Close()
		t.Fatalf("migrate: %v", err)
	}
	goose.SetBaseFS(nil)

	t.Cleanup(func() { db.Close() })
	return db
}

// testValkeyClient returns a Redis client for handler tests on DB 15.
func testValkeyClient(t *testing.T) *redis.Client {
	t.Helper()

	host := envOr("VALKEY_HOST", "localhost")
	port := envOr("VALKEY_PORT", "6379")
	password := os.Getenv("VALKEY_PASSWORD")

	client := redis.NewClient(&redis.Options{
		Addr:     host + ":" + port,
		Password: password,
		DB:       15,
	})

	ctx := context.Background()
	if err := client.Ping(ctx).Err(); err != nil {
		client.Close()
		t.Skipf("skipping: Valkey not reachable: %v", err)
	}

	t.Cleanup(func() {
		// Clean up test session, cache, and favorites keys.
		for _, pattern := range []string{"session:*", "directory:*", "favorites_*"} {
			keys, _ := client.Keys(ctx, pattern).Result()
			if len(keys) > 0 {
				client.Del(ctx, keys...)
			}
		}
		client.Close()
	})

	return client
}

// testEnv holds all dependencies for handler integration tests.
type testEnv struct {
	DB        *sql.DB
	Valkey    *redis.Client
	Renderer  *render.Renderer
	Sessions  *session.Store
	ToolStore *store.ToolStore
	UserStore *store.UserStore
	Ledger    *favorites.Ledger
	PageCache *cache.DirectoryCache
	Directory *Directory
	Tools     *Tools
	Favorites *Favorites
	Auth      *Auth
}

// newTestEnv creates a complete test environment with all handler
// dependencies, using the demo verifier for auth.
func newTestEnv(t *testing.T) *testEnv {
	t.Helper()

	db := testDB(t)
	vk := testValkeyClient(t)

	renderer, err := render.New(true)
	if err != nil {
		t.Fatalf("render.New: %v", err)
	}

	sessions := session.NewStore(vk, false)
	toolStore := store.NewToolStore(db)
	userStore := store.NewUserStore(db)
	ledger := favorites.NewLedger(vk)
	pageCache := cache.NewDirectoryCache(vk, 1*time.Minute)

	return &testEnv{
		DB:        db,
		Valkey:    vk,
		Renderer:  renderer,
		Sessions:  sessions,
		ToolStore: toolStore,
		UserStore: userStore,
		Ledger:    ledger,
		PageCache: pageCache,
		Directory: NewDirectory(renderer, toolStore, ledger, pageCache),
		Tools:     NewTools(renderer, toolStore, pageCache),
		Favorites: NewFavorites(ledger),
		Auth:      NewAuth(renderer, sessions, auth.NewDemoVerifier(), true),
	}
}

// ctxWithSession adds session data to a context using the middleware key.
func ctxWithSession(ctx context.Context, data *session.Data) context.Context {
	return context.WithValue(ctx, middleware.SessionKey, data)
}

// testSession creates a session.Data for testing.
func testSession(email string) *session.Data {
	return &session.Data{
		UserID:      uuid.New(),
		Email:       email,
		DisplayName: "Test User",
	}
}

// withChiURLParam adds a chi URL parameter to a request.
func withChiURLParam(r *http.Request, key, value string) *http.Request {
	rctx := chi.NewRouteContext()
	rctx.URLParams.Add(key, value)
	return r.WithContext(context.WithValue(r.Context(), chi.RouteCtxKey, rctx))
}

// withChiURLParamAndSession adds both a chi URL param and a session.
func withChiURLParamAndSession(r *http.Request, key, value string, sess *session.Data) *http.Request {
	rctx := chi.NewRouteContext()
	rctx.URLParams.Add(key, value)
	ctx := context.WithValue(r.Context(), chi.RouteCtxKey, rctx)
	ctx = context.WithValue(ctx, middleware.SessionKey, sess)
	return r.WithContext(ctx)
}

// seedTestTool inserts a tool directly through the store and registers
// cleanup by name.
func seedTestTool(t *testing.T, env *testEnv, name string) *models.Tool {
	t.Helper()
	created, err := env.ToolStore.Create(&models.Tool{
		Name:        name,
		Description: "integration test entry",
		Category:    "text-generation",
		Tags:        []string{"test"},
		Website:     "https://" + name + ".example",
		Pricing:     models.PricingFree,
		Rating:      4.0,
	})
	if err != nil {
		t.Fatalf("seed tool: %v", err)
	}
	cleanTools(t, env.DB, name)
	return created
}

// cleanTools removes test tools by name.
func cleanTools(t *testing.T, db *sql.DB, names ...string) {
	t.Helper()
	t.Cleanup(func() {
		for _, n := range names {
			db.Exec("DELETE FROM tools WHERE name = $1", n)
		}
	})
}
