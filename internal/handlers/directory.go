// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// Package handlers wires HTTP requests to the catalog, favorites, and
// session layers and renders the results.
package handlers

import (
	"bytes"
	"log/slog"
	"net/http"

	"aiwiki/internal/cache"
	"aiwiki/internal/catalog"
	"aiwiki/internal/favorites"
	"aiwiki/internal/middleware"
	"aiwiki/internal/models"
	"aiwiki/internal/render"
	"aiwiki/internal/store"
)

// Directory serves the main browse page. Anonymous requests are served
// from the Valkey page cache when possible; pages for logged-in users
// embed per-user favorites and are always rendered fresh.
type Directory struct {
	renderer  *render.Renderer
	toolStore *store.ToolStore
	ledger    *favorites.Ledger
	pageCache *cache.DirectoryCache
}

// NewDirectory creates the directory handler group.
func NewDirectory(renderer *render.Renderer, toolStore *store.ToolStore, ledger *favorites.Ledger, pageCache *cache.DirectoryCache) *Directory {
	return &Directory{
		renderer:  renderer,
		toolStore: toolStore,
		ledger:    ledger,
		pageCache: pageCache,
	}
}

// Option is a generic <select> option view model.
type Option struct {
	Value    string
	Label    string
	Selected bool
}

// CategoryOption is one entry in the category sidebar.
type CategoryOption struct {
	ID     string
	Name   string
	Icon   string
	URL    string
	Count  int
	Active bool
}

// TagOption is one tag chip. State is "show", "hide", or "".
type TagOption struct {
	Name    string
	State   string
	ShowURL string
	HideURL string
}

// ToolCard pairs a tool with the current user's favorite flag.
type ToolCard struct {
	Tool      *models.Tool
	Favorited bool
}

// Index renders the directory page: category sidebar with counts, the
// filter form, tag chips, and the filtered, sorted tool cards.
func (d *Directory) Index(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	c := catalog.ParseCriteria(r.URL.Query())
	sess := middleware.SessionFromCtx(ctx)

	// The favorites filter only makes sense with a signed-in user.
	if sess == nil {
		c = c.WithoutFavoritesOnly()
	}

	// Anonymous full-page requests are cacheable: identical criteria
	// produce identical HTML.
	cacheable := sess == nil && r.Header.Get("HX-Request") == ""
	cacheKey := cache.CriteriaKey(c.CacheKey())
	if cacheable {
		if cached, ok := d.pageCache.Get(ctx, cacheKey); ok {
			w.Header().Set("Content-Type", "text/html; charset=utf-8")
			w.Write(cached)
			return
		}
	}

	tools, err := d.toolStore.List()
	if err != nil {
		slog.Error("list tools failed", "error", err)
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}

	favs := catalog.Favorites{}
	if sess != nil {
		favs, err = d.ledger.Load(ctx, sess.Email)
		if err != nil {
			slog.Error("load favorites failed", "error", err, "email", sess.Email)
			favs = catalog.Favorites{}
		}
	}

	filtered := catalog.Filter(tools, c, favs)

	cards := make([]ToolCard, len(filtered))
	for i := range filtered {
		cards[i] = ToolCard{Tool: &filtered[i], Favorited: favs[filtered[i].ID]}
	}

	data := &render.PageData{
		Title: "Browse AI Tools",
		Data: map[string]any{
			"Criteria":       c,
			"Categories":     categoryOptions(tools, c),
			"PricingOptions": pricingOptions(c),
			"SortOptions":    sortOptions(c),
			"Tags":           tagOptions(tools, c),
			"Tools":          cards,
			"ResultCount":    len(filtered),
			"TotalCount":     len(tools),
			"HasFilters":     c.HasActiveFilters(),
		},
	}

	if !cacheable {
		d.renderer.Page(w, r, "directory", data)
		return
	}

	// Render into a buffer so the result can be cached before writing.
	cw := newCaptureWriter()
	d.renderer.Page(cw, r, "directory", data)
	if cw.status == http.StatusOK {
		d.pageCache.Set(ctx, cacheKey, cw.buf.Bytes())
	}
	cw.flushTo(w)
}

// criteriaURL renders criteria back into a directory link.
func criteriaURL(c catalog.Criteria) string {
	q := c.Values().Encode()
	if q == "" {
		return "/"
	}
	return "/?" + q
}

// categoryOptions builds the sidebar entries. Counts are computed over
// the whole catalog, not the filtered subset, so the sidebar stays
// stable while filters change.
func categoryOptions(tools []models.Tool, c catalog.Criteria) []CategoryOption {
	counts := catalog.CountByCategory(tools)
	cats := models.Categories()
	opts := make([]CategoryOption, 0, len(cats))
	for _, cat := range cats {
		linked := c
		linked.Category = cat.ID
		opts = append(opts, CategoryOption{
			ID:     cat.ID,
			Name:   cat.Name,
			Icon:   cat.Icon,
			URL:    criteriaURL(linked),
			Count:  counts[cat.ID],
			Active: c.Category == cat.ID,
		})
	}
	return opts
}

func pricingOptions(c catalog.Criteria) []Option {
	return []Option{
		{Value: "all", Label: "All Pricing", Selected: c.Pricing == "all"},
		{Value: string(models.PricingFree), Label: "Free", Selected: c.Pricing == string(models.PricingFree)},
		{Value: string(models.PricingFreemium), Label: "Freemium", Selected: c.Pricing == string(models.PricingFreemium)},
		{Value: string(models.PricingPaid), Label: "Paid", Selected: c.Pricing == string(models.PricingPaid)},
	}
}

func sortOptions(c catalog.Criteria) []Option {
	return []Option{
		{Value: string(catalog.SortPopular), Label: "Most Popular", Selected: c.Sort == catalog.SortPopular},
		{Value: string(catalog.SortName), Label: "Name", Selected: c.Sort == catalog.SortName},
		{Value: string(catalog.SortRating), Label: "Top Rated", Selected: c.Sort == catalog.SortRating},
		{Value: string(catalog.SortNewest), Label: "Newest", Selected: c.Sort == catalog.SortNewest},
	}
}

// tagOptions builds one chip per tag in the catalog, each linking to the
// current criteria with that tag's show or hide state toggled.
func tagOptions(tools []models.Tool, c catalog.Criteria) []TagOption {
	shown := make(map[string]bool, len(c.ShowTags))
	for _, t := range c.ShowTags {
		shown[t] = true
	}
	hidden := make(map[string]bool, len(c.HideTags))
	for _, t := range c.HideTags {
		hidden[t] = true
	}

	all := catalog.AllTags(tools)
	opts := make([]TagOption, 0, len(all))
	for _, tag := range all {
		state := ""
		if shown[tag] {
			state = "show"
		} else if hidden[tag] {
			state = "hide"
		}
		opts = append(opts, TagOption{
			Name:    tag,
			State:   state,
			ShowURL: criteriaURL(c.WithShowTagToggled(tag)),
			HideURL: criteriaURL(c.WithHideTagToggled(tag)),
		})
	}
	return opts
}

// captureWriter buffers a rendered response so it can be cached before
// being sent to the client.
type captureWriter struct {
	header http.Header
	buf    bytes.Buffer
	status int
}

func newCaptureWriter() *captureWriter {
	return &captureWriter{header: make(http.Header), status: http.StatusOK}
}

func (cw *captureWriter) Header() http.Header { return cw.header }

func (cw *captureWriter) WriteHeader(code int) { cw.status = code }

func (cw *captureWriter) Write(b []byte) (int, error) { return cw.buf.Write(b) }

// flushTo replays the captured response onto the real writer.
func (cw *captureWriter) flushTo(w http.ResponseWriter) {
	for k, vals := range cw.header {
		for _, v := range vals {
			w.Header().Add(k, v)
		}
	}
	if cw.status != http.StatusOK {
		w.WriteHeader(cw.status)
	}
	w.Write(cw.buf.Bytes())
}
