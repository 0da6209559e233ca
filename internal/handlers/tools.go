// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package handlers

import (
	"errors"
	"log/slog"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"aiwiki/internal/cache"
	"aiwiki/internal/catalog"
	"aiwiki/internal/models"
	"aiwiki/internal/render"
	"aiwiki/internal/store"
)

// Tools groups the add/edit tool handlers. Submissions require a
// session; the router enforces that via RequireAuth.
type Tools struct {
	renderer  *render.Renderer
	toolStore *store.ToolStore
	pageCache *cache.DirectoryCache
}

// NewTools creates the tool form handler group.
func NewTools(renderer *render.Renderer, toolStore *store.ToolStore, pageCache *cache.DirectoryCache) *Tools {
	return &Tools{
		renderer:  renderer,
		toolStore: toolStore,
		pageCache: pageCache,
	}
}

// toolForm holds the raw form fields, echoed back on validation errors.
type toolForm struct {
	Name        string
	Description string
	Category    string
	Tags        string
	Website     string
	Pricing     string
	ImageURL    string
}

func parseToolForm(r *http.Request) toolForm {
	return toolForm{
		Name:        strings.TrimSpace(r.FormValue("name")),
		Description: strings.TrimSpace(r.FormValue("description")),
		Category:    r.FormValue("category"),
		Tags:        r.FormValue("tags"),
		Website:     strings.TrimSpace(r.FormValue("website")),
		Pricing:     r.FormValue("pricing"),
		ImageURL:    strings.TrimSpace(r.FormValue("image_url")),
	}
}

// apply copies validated form fields onto a tool.
func (f toolForm) apply(t *models.Tool) {
	t.Name = f.Name
	t.Description = f.Description
	t.Category = f.Category
	if !models.ValidCategory(t.Category) {
		t.Category = models.AssignableCategories()[0].ID
	}
	t.Tags = catalog.ParseTags(f.Tags)
	t.Website = f.Website
	t.Pricing = models.Pricing(f.Pricing)
	if !models.ValidPricing(t.Pricing) {
		t.Pricing = models.PricingFree
	}
	if f.ImageURL != "" {
		t.ImageURL = &f.ImageURL
	} else {
		t.ImageURL = nil
	}
}

func formFromTool(t *models.Tool) toolForm {
	f := toolForm{
		Name:        t.Name,
		Description: t.Description,
		Category:    t.Category,
		Tags:        catalog.JoinTags(t.Tags),
		Website:     t.Website,
		Pricing:     string(t.Pricing),
	}
	if t.ImageURL != nil {
		f.ImageURL = *t.ImageURL
	}
	return f
}

func pricingChoices() []Option {
	return []Option{
		{Value: string(models.PricingFree), Label: "Free"},
		{Value: string(models.PricingFreemium), Label: "Freemium"},
		{Value: string(models.PricingPaid), Label: "Paid"},
	}
}

// formPage renders the tool form with the given state.
func (h *Tools) formPage(w http.ResponseWriter, r *http.Request, heading, action, submit string, form toolForm, errMsg string) {
	h.renderer.Page(w, r, "tool_form", &render.PageData{
		Title: heading,
		Data: map[string]any{
			"Heading":        heading,
			"Action":         action,
			"Submit":         submit,
			"Form":           form,
			"Error":          errMsg,
			"Categories":     models.AssignableCategories(),
			"PricingChoices": pricingChoices(),
		},
	})
}

// NewForm renders the empty add-tool form with the directory defaults
// preselected.
func (h *Tools) NewForm(w http.ResponseWriter, r *http.Request) {
	form := toolForm{
		Category: models.AssignableCategories()[0].ID,
		Pricing:  string(models.PricingFreemium),
	}
	h.formPage(w, r, "Add a Tool", "/tools", "Add Tool", form, "")
}

// Create inserts a new tool. The store assigns the id, default
// popularity, and the current release year.
func (h *Tools) Create(w http.ResponseWriter, r *http.Request) {
	form := parseToolForm(r)

	if msg := validateTool(form.Name, form.Description, form.Website); msg != "" {
		h.formPage(w, r, "Add a Tool", "/tools", "Add Tool", form, msg)
		return
	}

	tool := &models.Tool{Rating: models.DefaultRating}
	form.apply(tool)

	created, err := h.toolStore.Create(tool)
	if err != nil {
		slog.Error("create tool failed", "error", err)
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}
	slog.Info("tool created", "id", created.ID, "name", created.Name)

	h.pageCache.InvalidateAll(r.Context())
	http.Redirect(w, r, "/", http.StatusSeeOther)
}

// EditForm renders the form prefilled with an existing tool.
func (h *Tools) EditForm(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		http.NotFound(w, r)
		return
	}

	tool, err := h.toolStore.FindByID(id)
	if err != nil {
		slog.Error("find tool failed", "error", err, "id", id)
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}
	if tool == nil {
		http.NotFound(w, r)
		return
	}

	h.formPage(w, r, "Edit "+tool.Name, "/tools/"+id.String(), "Save Changes", formFromTool(tool), "")
}

// Update replaces the mutable fields of an existing tool. The id,
// rating, popularity, and release year are preserved.
func (h *Tools) Update(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		http.NotFound(w, r)
		return
	}

	form := parseToolForm(r)
	action := "/tools/" + id.String()

	if msg := validateTool(form.Name, form.Description, form.Website); msg != "" {
		h.formPage(w, r, "Edit Tool", action, "Save Changes", form, msg)
		return
	}

	tool, err := h.toolStore.FindByID(id)
	if err != nil {
		slog.Error("find tool failed", "error", err, "id", id)
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}
	if tool == nil {
		http.NotFound(w, r)
		return
	}

	form.apply(tool)
	if err := h.toolStore.Update(tool); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			http.NotFound(w, r)
			return
		}
		slog.Error("update tool failed", "error", err, "id", id)
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}
	slog.Info("tool updated", "id", id, "name", tool.Name)

	h.pageCache.InvalidateAll(r.Context())
	http.Redirect(w, r, "/", http.StatusSeeOther)
}
